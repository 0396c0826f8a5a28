package handler

import (
	"go-banksampah/internal/service"

	"github.com/gofiber/fiber/v2"
)

type BankSampahHandler struct {
	service service.BankSampahService
}

func NewBankSampahHandler(s service.BankSampahService) *BankSampahHandler {
	return &BankSampahHandler{service: s}
}

// ==================== BANK SAMPAH ====================

func (h *BankSampahHandler) CreateBankSampah(c *fiber.Ctx) error {
	var req service.CreateBankSampahRequest
	if err := c.BodyParser(&req); err != nil {
		return badJSON(c, err)
	}

	bank, err := h.service.CreateBankSampah(&req)
	if err != nil {
		return respondError(c, err, "Failed to create bank sampah.")
	}
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"message": "Bank sampah created successfully.", "bankSampah": bank})
}

func (h *BankSampahHandler) GetAllBankSampah(c *fiber.Ctx) error {
	banks, err := h.service.GetAllBankSampah()
	if err != nil {
		return respondError(c, err, "Failed to fetch bank sampah.")
	}
	return c.JSON(banks)
}

func (h *BankSampahHandler) GetBankSampah(c *fiber.Ctx) error {
	id, ok := paramID(c)
	if !ok {
		return invalidID(c, "bank sampah")
	}

	bank, err := h.service.GetBankSampahByID(id)
	if err != nil {
		return respondError(c, err, "Failed to fetch bank sampah.")
	}
	return c.JSON(bank)
}

func (h *BankSampahHandler) UpdateBankSampah(c *fiber.Ctx) error {
	id, ok := paramID(c)
	if !ok {
		return invalidID(c, "bank sampah")
	}

	var req service.UpdateBankSampahRequest
	if err := c.BodyParser(&req); err != nil {
		return badJSON(c, err)
	}

	bank, err := h.service.UpdateBankSampah(id, &req)
	if err != nil {
		return respondError(c, err, "Failed to update bank sampah.")
	}
	return c.JSON(fiber.Map{"message": "Bank sampah updated successfully.", "bankSampah": bank})
}

func (h *BankSampahHandler) DeleteBankSampah(c *fiber.Ctx) error {
	id, ok := paramID(c)
	if !ok {
		return invalidID(c, "bank sampah")
	}

	if err := h.service.DeleteBankSampah(id); err != nil {
		return respondError(c, err, "Failed to delete bank sampah.")
	}
	return c.JSON(fiber.Map{"message": "Bank sampah deleted successfully."})
}

// ==================== SAMPAH ====================

func (h *BankSampahHandler) CreateSampah(c *fiber.Ctx) error {
	var req service.CreateSampahRequest
	if err := c.BodyParser(&req); err != nil {
		return badJSON(c, err)
	}

	sampah, err := h.service.CreateSampah(&req)
	if err != nil {
		return respondError(c, err, "Failed to create sampah.")
	}
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"message": "Sampah created successfully.", "sampah": sampah})
}

// GetAllSampah lists waste categories, optionally for one bank
// GET /sampah?bankSampahId=
func (h *BankSampahHandler) GetAllSampah(c *fiber.Ctx) error {
	bankID, ok := queryID(c, "bankSampahId")
	if !ok {
		return invalidID(c, "bank sampah")
	}

	items, err := h.service.GetAllSampah(bankID)
	if err != nil {
		return respondError(c, err, "Failed to fetch sampah.")
	}
	return c.JSON(items)
}

func (h *BankSampahHandler) GetSampah(c *fiber.Ctx) error {
	id, ok := paramID(c)
	if !ok {
		return invalidID(c, "sampah")
	}

	sampah, err := h.service.GetSampahByID(id)
	if err != nil {
		return respondError(c, err, "Failed to fetch sampah.")
	}
	return c.JSON(sampah)
}

func (h *BankSampahHandler) UpdateSampah(c *fiber.Ctx) error {
	id, ok := paramID(c)
	if !ok {
		return invalidID(c, "sampah")
	}

	var req service.UpdateSampahRequest
	if err := c.BodyParser(&req); err != nil {
		return badJSON(c, err)
	}

	sampah, err := h.service.UpdateSampah(id, &req)
	if err != nil {
		return respondError(c, err, "Failed to update sampah.")
	}
	return c.JSON(fiber.Map{"message": "Sampah updated successfully.", "sampah": sampah})
}

func (h *BankSampahHandler) DeleteSampah(c *fiber.Ctx) error {
	id, ok := paramID(c)
	if !ok {
		return invalidID(c, "sampah")
	}

	if err := h.service.DeleteSampah(id); err != nil {
		return respondError(c, err, "Failed to delete sampah.")
	}
	return c.JSON(fiber.Map{"message": "Sampah deleted successfully."})
}
