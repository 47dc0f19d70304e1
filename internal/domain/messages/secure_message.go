package messages

import (
	"encoding/json"
	"errors"
	"fmt"

	"github.com/go-playground/validator/v10"
)

// SecureMessage is the JSON wire format for a hybrid-encrypted payload:
// the payload is AES-GCM ciphertext, the key is the RSA-OAEP-encrypted
// symmetric key and the nonce is the GCM nonce used for the payload. All
// fields are standard base64. The signature is optional and covers the
// base64 payload string.
type SecureMessage struct {
	Payload   string `json:"payload" validate:"required,base64"`
	Key       string `json:"key" validate:"required,base64"`
	Nonce     string `json:"nonce" validate:"required,base64"`
	Signature string `json:"signature,omitempty" validate:"omitempty,base64"`
}

// Validate checks that all required fields are present and base64-encoded
func (m *SecureMessage) Validate() error {
	validate := validator.New()

	err := validate.Struct(m)
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

// Marshal serializes the message to its JSON wire representation.
func (m *SecureMessage) Marshal() ([]byte, error) {
	data, err := json.Marshal(m)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal secure message: %w", err)
	}
	return data, nil
}

// Unmarshal parses a JSON wire representation and validates it.
func Unmarshal(data []byte) (*SecureMessage, error) {
	var msg SecureMessage
	if err := json.Unmarshal(data, &msg); err != nil {
		return nil, fmt.Errorf("failed to parse secure message: %w", err)
	}
	if err := msg.Validate(); err != nil {
		return nil, err
	}
	return &msg, nil
}
