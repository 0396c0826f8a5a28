package handler

import (
	"go-banksampah/internal/service"

	"github.com/gofiber/fiber/v2"
)

type PenukaranHandler struct {
	service service.PenukaranService
}

func NewPenukaranHandler(s service.PenukaranService) *PenukaranHandler {
	return &PenukaranHandler{service: s}
}

// CreatePenukaran records a pending waste deposit
// POST /penukaran
func (h *PenukaranHandler) CreatePenukaran(c *fiber.Ctx) error {
	var req service.CreatePenukaranRequest
	if err := c.BodyParser(&req); err != nil {
		return badJSON(c, err)
	}

	p, err := h.service.CreatePenukaran(&req)
	if err != nil {
		return respondError(c, err, "Failed to create penukaran")
	}
	return c.Status(fiber.StatusCreated).JSON(p)
}

// GetAllPenukaran lists deposits
// GET /penukaran?userId=&status=&dateFrom=&dateTo=&page=&limit=
func (h *PenukaranHandler) GetAllPenukaran(c *fiber.Ctx) error {
	userID, ok := queryID(c, "userId")
	if !ok {
		return invalidID(c, "user")
	}

	items, err := h.service.ListPenukaran(&service.PenukaranQuery{
		UserID:   userID,
		Status:   c.Query("status"),
		DateFrom: c.Query("dateFrom"),
		DateTo:   c.Query("dateTo"),
		Page:     c.QueryInt("page", 1),
		Limit:    c.QueryInt("limit", 10),
	})
	if err != nil {
		return respondError(c, err, "Failed to fetch penukaran")
	}
	return c.JSON(items)
}

func (h *PenukaranHandler) GetPenukaran(c *fiber.Ctx) error {
	id, ok := paramID(c)
	if !ok {
		return invalidID(c, "penukaran")
	}

	p, err := h.service.GetPenukaranByID(id)
	if err != nil {
		return respondError(c, err, "Failed to fetch penukaran")
	}
	return c.JSON(p)
}

// UpdatePenukaran transitions the status and credits points on success
// PUT /penukaran/:id
func (h *PenukaranHandler) UpdatePenukaran(c *fiber.Ctx) error {
	id, ok := paramID(c)
	if !ok {
		return invalidID(c, "penukaran")
	}

	var req service.UpdatePenukaranStatusRequest
	if err := c.BodyParser(&req); err != nil {
		return badJSON(c, err)
	}

	p, err := h.service.UpdateStatus(id, &req)
	if err != nil {
		return respondError(c, err, "Gagal memperbarui status atau poin")
	}
	return c.JSON(fiber.Map{"message": "Status dan poin berhasil diperbarui", "penukaran": p})
}

func (h *PenukaranHandler) DeletePenukaran(c *fiber.Ctx) error {
	id, ok := paramID(c)
	if !ok {
		return invalidID(c, "penukaran")
	}

	if err := h.service.DeletePenukaran(id); err != nil {
		return respondError(c, err, "Failed to delete penukaran")
	}
	return c.SendStatus(fiber.StatusNoContent)
}
