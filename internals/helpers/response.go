package helper

import (
	"github.com/gofiber/fiber/v2"
)

// Bentuk response mengikuti kontrak API klien:
// - sukses: body data apa adanya (object/array)
// - error: {"message": "..."} dengan status 4xx/5xx

// JsonOK: response sukses generic (GET detail, list, dsb)
func JsonOK(c *fiber.Ctx, data interface{}) error {
	return c.Status(fiber.StatusOK).JSON(data)
}

// JsonCreated: response sukses create (POST)
func JsonCreated(c *fiber.Ctx, data interface{}) error {
	return c.Status(fiber.StatusCreated).JSON(data)
}

// JsonMessage: response sukses berupa pesan saja (mis. konfirmasi delete)
func JsonMessage(c *fiber.Ctx, message string) error {
	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"message": message,
	})
}

// JsonError: error response sederhana
func JsonError(c *fiber.Ctx, code int, message string) error {
	if code == 0 {
		code = fiber.StatusInternalServerError
	}
	return c.Status(code).JSON(fiber.Map{
		"message": message,
	})
}

// FromFiberError mengubah error (biasanya *fiber.Error) menjadi
// response JSON konsisten. Jika bukan *fiber.Error, fallback ke 500.
func FromFiberError(c *fiber.Ctx, err error) error {
	if fe, ok := err.(*fiber.Error); ok {
		return JsonError(c, fe.Code, fe.Message)
	}
	return JsonError(c, fiber.StatusInternalServerError, err.Error())
}
