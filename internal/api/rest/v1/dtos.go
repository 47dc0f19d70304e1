package v1

import (
	"errors"
	"fmt"
	"time"

	"github.com/go-playground/validator/v10"

	"secure_message_service/internal/domain/messages"
	"secure_message_service/internal/pkg/validators"
)

// UploadKeyRequest represents the request body for generating keys
type UploadKeyRequest struct {
	Algorithm string `json:"algorithm" validate:"omitempty,oneof=AES RSA"`
	KeySize   uint32 `json:"key_size" validate:"omitempty,keysize"`
}

// Validate for validating UploadKeyRequest struct
func (r *UploadKeyRequest) Validate() error {
	validate := validator.New()
	if err := validate.RegisterValidation("keysize", validators.KeySizeValidation); err != nil {
		return fmt.Errorf("failed to register key size validation: %w", err)
	}

	return translateValidationError(validate.Struct(r))
}

// CryptoKeyMetaResponse represents metadata of a stored cryptographic key
type CryptoKeyMetaResponse struct {
	ID              string    `json:"id"`
	KeyPairID       string    `json:"keyPairID"`
	Algorithm       string    `json:"algorithm"`
	KeySize         uint32    `json:"keySize"`
	Type            string    `json:"type"`
	DateTimeCreated time.Time `json:"dateTimeCreated"`
	UserID          string    `json:"userID"`
}

// EncryptMessageRequest represents the request body for encrypting a payload
// for a stored recipient public key. The optional sign key produces a
// signature over the encrypted payload.
type EncryptMessageRequest struct {
	PlainText       string  `json:"plain_text" validate:"required"`
	EncryptionKeyID string  `json:"encryption_key_id" validate:"required,uuid4"`
	SignKeyID       *string `json:"sign_key_id,omitempty" validate:"omitempty,uuid4"`
}

// Validate for validating EncryptMessageRequest struct
func (r *EncryptMessageRequest) Validate() error {
	validate := validator.New()
	return translateValidationError(validate.Struct(r))
}

// DecryptMessageRequest represents the request body for decrypting a
// SecureMessage with a stored private key. The optional verify key checks the
// message signature before decryption.
type DecryptMessageRequest struct {
	Message         messages.SecureMessage `json:"message" validate:"required"`
	DecryptionKeyID string                 `json:"decryption_key_id" validate:"required,uuid4"`
	VerifyKeyID     *string                `json:"verify_key_id,omitempty" validate:"omitempty,uuid4"`
}

// Validate for validating DecryptMessageRequest struct
func (r *DecryptMessageRequest) Validate() error {
	validate := validator.New()
	if err := validate.Struct(r); err != nil {
		return translateValidationError(err)
	}
	return r.Message.Validate()
}

// SecureMessageResponse is the wire form of an encrypted message. All fields
// are standard base64; the signature is present only when a sign key was used.
type SecureMessageResponse struct {
	Payload   string `json:"payload"`
	Key       string `json:"key"`
	Nonce     string `json:"nonce"`
	Signature string `json:"signature,omitempty"`
}

// DecryptMessageResponse carries the recovered plaintext.
type DecryptMessageResponse struct {
	PlainText string `json:"plain_text"`
}

// ErrorResponse represents an error response
type ErrorResponse struct {
	Message string `json:"message"`
}

// InfoResponse represents an info response
type InfoResponse struct {
	Message string `json:"message"`
}

// translateValidationError flattens validator errors into a single message.
func translateValidationError(err error) error {
	if err == nil {
		return nil
	}
	var validationErrors validator.ValidationErrors
	if errors.As(err, &validationErrors) {
		var fieldMessages []string
		for _, fieldErr := range validationErrors {
			fieldMessages = append(fieldMessages, fmt.Sprintf("Field: %s, Tag: %s", fieldErr.Field(), fieldErr.Tag()))
		}
		return fmt.Errorf("validation failed: %v", fieldMessages)
	}
	return fmt.Errorf("validation error: %w", err)
}
