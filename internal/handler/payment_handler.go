package handler

import (
	"go-banksampah/internal/service"

	"github.com/gofiber/fiber/v2"
)

type PaymentHandler struct {
	service service.PaymentService
}

func NewPaymentHandler(s service.PaymentService) *PaymentHandler {
	return &PaymentHandler{service: s}
}

func (h *PaymentHandler) CreatePayment(c *fiber.Ctx) error {
	var req service.CreatePaymentRequest
	if err := c.BodyParser(&req); err != nil {
		return badJSON(c, err)
	}

	payment, err := h.service.CreatePayment(&req)
	if err != nil {
		return respondError(c, err, "Gagal membuat payment.")
	}
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"message": "Payment berhasil dibuat.", "payment": payment})
}

// GetAllPayments lists payments, optionally for one buyer
// GET /payment?userId=
func (h *PaymentHandler) GetAllPayments(c *fiber.Ctx) error {
	userID, ok := queryID(c, "userId")
	if !ok {
		return invalidID(c, "user")
	}

	payments, err := h.service.GetAllPayments(userID)
	if err != nil {
		return respondError(c, err, "Gagal mengambil daftar payment.")
	}
	return c.JSON(payments)
}

func (h *PaymentHandler) GetPayment(c *fiber.Ctx) error {
	id, ok := paramID(c)
	if !ok {
		return invalidID(c, "payment")
	}

	payment, err := h.service.GetPaymentByID(id)
	if err != nil {
		return respondError(c, err, "Gagal mengambil payment.")
	}
	return c.JSON(payment)
}

// UpdatePayment transitions the status and debits points on success
// PUT /payment/:id
func (h *PaymentHandler) UpdatePayment(c *fiber.Ctx) error {
	id, ok := paramID(c)
	if !ok {
		return invalidID(c, "payment")
	}

	var req service.UpdatePaymentStatusRequest
	if err := c.BodyParser(&req); err != nil {
		return badJSON(c, err)
	}

	payment, err := h.service.UpdateStatus(id, &req)
	if err != nil {
		return respondError(c, err, "Gagal memperbarui payment.")
	}
	return c.JSON(fiber.Map{"message": "Payment berhasil diperbarui.", "payment": payment})
}

func (h *PaymentHandler) DeletePayment(c *fiber.Ctx) error {
	id, ok := paramID(c)
	if !ok {
		return invalidID(c, "payment")
	}

	if err := h.service.DeletePayment(id); err != nil {
		return respondError(c, err, "Gagal menghapus payment.")
	}
	return c.JSON(fiber.Map{"message": "Payment berhasil dihapus."})
}
