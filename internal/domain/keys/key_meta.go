package keys

import (
	"errors"
	"fmt"
	"time"

	"github.com/go-playground/validator/v10"

	"secure_message_service/internal/pkg/validators"
)

// CryptoKeyMeta represents metadata of a cryptographic key. The key material
// itself lives in the vault; only this metadata is persisted in the database.
type CryptoKeyMeta struct {
	ID              string    `validate:"required,uuid4"`
	KeyPairID       string    `validate:"required,uuid4"`
	Algorithm       string    `validate:"required,oneof=AES RSA"`
	KeySize         uint32    `validate:"required,keysize"`
	Type            string    `validate:"required,oneof=private public symmetric"`
	DateTimeCreated time.Time `validate:"required"`
	UserID          string    `validate:"required"`
}

// Validate for validating CryptoKeyMeta struct
func (k *CryptoKeyMeta) Validate() error {
	validate := validator.New()
	if err := validate.RegisterValidation("keysize", validators.KeySizeValidation); err != nil {
		return fmt.Errorf("failed to register key size validation: %w", err)
	}

	err := validate.Struct(k)
	if err != nil {
		var validationErrors validator.ValidationErrors
		if errors.As(err, &validationErrors) {
			var messages []string
			for _, fieldErr := range validationErrors {
				messages = append(messages, fmt.Sprintf("Field: %s, Tag: %s", fieldErr.Field(), fieldErr.Tag()))
			}
			return fmt.Errorf("validation failed: %v", messages)
		}
		return fmt.Errorf("validation error: %w", err)
	}

	return nil
}

// CryptoKeyQuery represents filter, sorting and pagination options when
// listing key metadata.
type CryptoKeyQuery struct {
	Algorithm       string
	Type            string
	DateTimeCreated time.Time

	Limit  int    `validate:"omitempty,gte=1"`
	Offset int    `validate:"omitempty,gte=0"`
	SortBy string `validate:"omitempty,oneof=id algorithm key_size type date_time_created"`

	SortOrder string `validate:"omitempty,oneof=asc desc"`
}

// NewCryptoKeyQuery creates a query with default pagination applied.
func NewCryptoKeyQuery() *CryptoKeyQuery {
	return &CryptoKeyQuery{
		Limit:  10,
		Offset: 0,
	}
}

// Validate for validating CryptoKeyQuery struct
func (q *CryptoKeyQuery) Validate() error {
	validate := validator.New()

	if err := validate.Struct(q); err != nil {
		return fmt.Errorf("validation failed for CryptoKeyQuery: %w", err)
	}

	return nil
}
