// Package validators provides custom go-playground/validator rules shared by
// domain models and API DTOs.
package validators

import (
	"github.com/go-playground/validator/v10"
)

// KeySizeValidation validates the key size based on the algorithm type (AES or RSA).
func KeySizeValidation(fl validator.FieldLevel) bool {
	algorithm := fl.Parent().FieldByName("Algorithm").String()
	keySize := fl.Field().Uint()

	switch algorithm {
	case "AES":
		return keySize == 128 || keySize == 192 || keySize == 256
	case "RSA":
		return keySize == 2048 || keySize == 3072 || keySize == 4096
	default:
		return false
	}
}
