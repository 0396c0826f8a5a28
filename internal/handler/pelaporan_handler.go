package handler

import (
	"go-banksampah/internal/service"

	"github.com/gofiber/fiber/v2"
)

type PelaporanHandler struct {
	service service.PelaporanService
}

func NewPelaporanHandler(s service.PelaporanService) *PelaporanHandler {
	return &PelaporanHandler{service: s}
}

func (h *PelaporanHandler) CreatePelaporan(c *fiber.Ctx) error {
	var req service.CreatePelaporanRequest
	if err := c.BodyParser(&req); err != nil {
		return badJSON(c, err)
	}

	report, err := h.service.CreatePelaporan(&req)
	if err != nil {
		return respondError(c, err, "Failed to create Pelaporan.")
	}
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"message": "Pelaporan created successfully.", "pelaporan": report})
}

// GetAllPelaporan lists reports, optionally for one reporter
// GET /pelaporan?userId=
func (h *PelaporanHandler) GetAllPelaporan(c *fiber.Ctx) error {
	userID, ok := queryID(c, "userId")
	if !ok {
		return invalidID(c, "user")
	}

	reports, err := h.service.GetAllPelaporan(userID)
	if err != nil {
		return respondError(c, err, "Failed to fetch Pelaporan.")
	}
	return c.JSON(reports)
}

func (h *PelaporanHandler) GetPelaporan(c *fiber.Ctx) error {
	id, ok := paramID(c)
	if !ok {
		return invalidID(c, "pelaporan")
	}

	report, err := h.service.GetPelaporanByID(id)
	if err != nil {
		return respondError(c, err, "Failed to fetch Pelaporan details.")
	}
	return c.JSON(report)
}

func (h *PelaporanHandler) UpdatePelaporan(c *fiber.Ctx) error {
	id, ok := paramID(c)
	if !ok {
		return invalidID(c, "pelaporan")
	}

	var req service.UpdatePelaporanRequest
	if err := c.BodyParser(&req); err != nil {
		return badJSON(c, err)
	}

	report, err := h.service.UpdatePelaporan(id, &req)
	if err != nil {
		return respondError(c, err, "Failed to update Pelaporan.")
	}
	return c.JSON(fiber.Map{"message": "Pelaporan updated successfully.", "pelaporan": report})
}

func (h *PelaporanHandler) DeletePelaporan(c *fiber.Ctx) error {
	id, ok := paramID(c)
	if !ok {
		return invalidID(c, "pelaporan")
	}

	if err := h.service.DeletePelaporan(id); err != nil {
		return respondError(c, err, "Failed to delete Pelaporan.")
	}
	return c.JSON(fiber.Map{"message": "Pelaporan deleted successfully."})
}
