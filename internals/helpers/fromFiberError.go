package helper

import (
	"errors"

	"github.com/gofiber/fiber/v2"
)

// FromFiberError menyalurkan *fiber.Error (dari guard token / middleware)
// ke envelope standar. Error lain tidak dibocorkan ke klien.
func FromFiberError(c *fiber.Ctx, err error) error {
	var fe *fiber.Error
	if errors.As(err, &fe) {
		return Error(c, fe.Code, fe.Message)
	}
	return Error(c, fiber.StatusInternalServerError, "Terjadi kesalahan sistem")
}
