package handler

import (
	"go-banksampah/internal/service"

	"github.com/gofiber/fiber/v2"
)

type TokoHandler struct {
	service service.TokoService
}

func NewTokoHandler(s service.TokoService) *TokoHandler {
	return &TokoHandler{service: s}
}

// ==================== TOKO ====================

func (h *TokoHandler) CreateToko(c *fiber.Ctx) error {
	var req service.CreateTokoRequest
	if err := c.BodyParser(&req); err != nil {
		return badJSON(c, err)
	}

	toko, err := h.service.CreateToko(&req)
	if err != nil {
		return respondError(c, err, "Gagal membuat toko.")
	}
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"message": "Toko berhasil dibuat.", "toko": toko})
}

func (h *TokoHandler) GetAllToko(c *fiber.Ctx) error {
	tokos, err := h.service.GetAllToko()
	if err != nil {
		return respondError(c, err, "Gagal mengambil daftar toko.")
	}
	return c.JSON(tokos)
}

func (h *TokoHandler) GetToko(c *fiber.Ctx) error {
	id, ok := paramID(c)
	if !ok {
		return invalidID(c, "toko")
	}

	toko, err := h.service.GetTokoByID(id)
	if err != nil {
		return respondError(c, err, "Gagal mengambil toko.")
	}
	return c.JSON(toko)
}

func (h *TokoHandler) UpdateToko(c *fiber.Ctx) error {
	id, ok := paramID(c)
	if !ok {
		return invalidID(c, "toko")
	}

	var req service.UpdateTokoRequest
	if err := c.BodyParser(&req); err != nil {
		return badJSON(c, err)
	}

	toko, err := h.service.UpdateToko(id, &req)
	if err != nil {
		return respondError(c, err, "Gagal memperbarui toko.")
	}
	return c.JSON(fiber.Map{"message": "Toko berhasil diperbarui.", "toko": toko})
}

func (h *TokoHandler) DeleteToko(c *fiber.Ctx) error {
	id, ok := paramID(c)
	if !ok {
		return invalidID(c, "toko")
	}

	if err := h.service.DeleteToko(id); err != nil {
		return respondError(c, err, "Gagal menghapus toko.")
	}
	return c.JSON(fiber.Map{"message": "Toko berhasil dihapus."})
}

// ==================== BARANG ====================

func (h *TokoHandler) CreateBarang(c *fiber.Ctx) error {
	var req service.CreateBarangRequest
	if err := c.BodyParser(&req); err != nil {
		return badJSON(c, err)
	}

	barang, err := h.service.CreateBarang(&req)
	if err != nil {
		return respondError(c, err, "Gagal membuat barang.")
	}
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"message": "Barang berhasil dibuat.", "barang": barang})
}

// GetAllBarang lists items, optionally for one shop
// GET /barang?tokoId=
func (h *TokoHandler) GetAllBarang(c *fiber.Ctx) error {
	tokoID, ok := queryID(c, "tokoId")
	if !ok {
		return invalidID(c, "toko")
	}

	items, err := h.service.GetAllBarang(tokoID)
	if err != nil {
		return respondError(c, err, "Gagal mengambil daftar barang.")
	}
	return c.JSON(items)
}

func (h *TokoHandler) GetBarang(c *fiber.Ctx) error {
	id, ok := paramID(c)
	if !ok {
		return invalidID(c, "barang")
	}

	barang, err := h.service.GetBarangByID(id)
	if err != nil {
		return respondError(c, err, "Gagal mengambil barang.")
	}
	return c.JSON(barang)
}

func (h *TokoHandler) UpdateBarang(c *fiber.Ctx) error {
	id, ok := paramID(c)
	if !ok {
		return invalidID(c, "barang")
	}

	var req service.UpdateBarangRequest
	if err := c.BodyParser(&req); err != nil {
		return badJSON(c, err)
	}

	barang, err := h.service.UpdateBarang(id, &req)
	if err != nil {
		return respondError(c, err, "Gagal memperbarui barang.")
	}
	return c.JSON(fiber.Map{"message": "Barang berhasil diperbarui.", "barang": barang})
}

func (h *TokoHandler) DeleteBarang(c *fiber.Ctx) error {
	id, ok := paramID(c)
	if !ok {
		return invalidID(c, "barang")
	}

	if err := h.service.DeleteBarang(id); err != nil {
		return respondError(c, err, "Gagal menghapus barang.")
	}
	return c.JSON(fiber.Map{"message": "Barang berhasil dihapus."})
}
