//go:build unit
// +build unit

package messages

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSecureMessageValidation(t *testing.T) {
	tests := []struct {
		name      string
		message   SecureMessage
		shouldErr bool
	}{
		{"Valid without signature", SecureMessage{
			Payload: "cGF5bG9hZA==",
			Key:     "a2V5",
			Nonce:   "bm9uY2U=",
		}, false},
		{"Valid with signature", SecureMessage{
			Payload:   "cGF5bG9hZA==",
			Key:       "a2V5",
			Nonce:     "bm9uY2U=",
			Signature: "c2lnbmF0dXJl",
		}, false},
		{"Missing payload", SecureMessage{
			Key:   "a2V5",
			Nonce: "bm9uY2U=",
		}, true},
		{"Missing key", SecureMessage{
			Payload: "cGF5bG9hZA==",
			Nonce:   "bm9uY2U=",
		}, true},
		{"Missing nonce", SecureMessage{
			Payload: "cGF5bG9hZA==",
			Key:     "a2V5",
		}, true},
		{"Payload not base64", SecureMessage{
			Payload: "not base64!!",
			Key:     "a2V5",
			Nonce:   "bm9uY2U=",
		}, true},
		{"Signature not base64", SecureMessage{
			Payload:   "cGF5bG9hZA==",
			Key:       "a2V5",
			Nonce:     "bm9uY2U=",
			Signature: "not base64!!",
		}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.message.Validate()
			if tt.shouldErr {
				require.Error(t, err, "expected validation error")
			} else {
				require.NoError(t, err, "expected no validation error")
			}
		})
	}
}

func TestSecureMessageMarshalUnmarshal(t *testing.T) {
	msg := &SecureMessage{
		Payload:   "cGF5bG9hZA==",
		Key:       "a2V5",
		Nonce:     "bm9uY2U=",
		Signature: "c2lnbmF0dXJl",
	}

	wire, err := msg.Marshal()
	require.NoError(t, err)
	assert.Contains(t, string(wire), `"payload"`)
	assert.Contains(t, string(wire), `"signature"`)

	parsed, err := Unmarshal(wire)
	require.NoError(t, err)
	assert.Equal(t, msg, parsed)
}

func TestSecureMessageMarshalOmitsEmptySignature(t *testing.T) {
	msg := &SecureMessage{
		Payload: "cGF5bG9hZA==",
		Key:     "a2V5",
		Nonce:   "bm9uY2U=",
	}

	wire, err := msg.Marshal()
	require.NoError(t, err)
	assert.NotContains(t, string(wire), "signature")
}

func TestUnmarshalRejectsInvalidInput(t *testing.T) {
	_, err := Unmarshal([]byte("not json"))
	assert.Error(t, err)

	// Well-formed JSON with a missing required field
	_, err = Unmarshal([]byte(`{"payload": "cGF5bG9hZA==", "key": "a2V5"}`))
	assert.Error(t, err)
}
