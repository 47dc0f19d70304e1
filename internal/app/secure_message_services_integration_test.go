//go:build integration
// +build integration

package app

import (
	"context"
	"encoding/base64"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"secure_message_service/internal/domain/crypto"
	"secure_message_service/internal/domain/keys"
	"secure_message_service/internal/pkg/config"
)

// uploadRSAPair returns the private and public key metadata of a fresh pair
func uploadRSAPair(t *testing.T, services *TestServices, userID string) (privateKey, publicKey *keys.CryptoKeyMeta) {
	t.Helper()

	keyMetas, err := services.CryptoKeyUploadService.Upload(context.Background(), userID, "RSA", 2048)
	require.NoError(t, err)
	require.Len(t, keyMetas, 2)
	return keyMetas[0], keyMetas[1]
}

func TestSecureMessageServices_EncryptDecryptRoundTrip(t *testing.T) {
	services := SetupTestServices(t, config.SqliteDbType)
	userID := uuid.NewString()

	recipientPrivate, recipientPublic := uploadRSAPair(t, services, userID)
	plainText := []byte(`{"Code":"172","Amount":100.0,"Currency":"INR"}`)

	msg, err := services.SecureMessageEncryptService.Encrypt(context.Background(), plainText, recipientPublic.ID, nil)
	require.NoError(t, err)
	assert.NotEmpty(t, msg.Payload)
	assert.NotEmpty(t, msg.Key)
	assert.NotEmpty(t, msg.Nonce)
	assert.Empty(t, msg.Signature)

	decrypted, err := services.SecureMessageDecryptService.Decrypt(context.Background(), msg, recipientPrivate.ID, nil)
	require.NoError(t, err)
	assert.Equal(t, plainText, decrypted)
}

func TestSecureMessageServices_SignedRoundTrip(t *testing.T) {
	services := SetupTestServices(t, config.SqliteDbType)
	userID := uuid.NewString()

	recipientPrivate, recipientPublic := uploadRSAPair(t, services, userID)
	senderPrivate, senderPublic := uploadRSAPair(t, services, userID)

	plainText := []byte("signed payment instruction")

	msg, err := services.SecureMessageEncryptService.Encrypt(context.Background(), plainText, recipientPublic.ID, &senderPrivate.ID)
	require.NoError(t, err)
	assert.NotEmpty(t, msg.Signature)

	decrypted, err := services.SecureMessageDecryptService.Decrypt(context.Background(), msg, recipientPrivate.ID, &senderPublic.ID)
	require.NoError(t, err)
	assert.Equal(t, plainText, decrypted)
}

func TestSecureMessageServices_TamperedPayloadFailsVerification(t *testing.T) {
	services := SetupTestServices(t, config.SqliteDbType)
	userID := uuid.NewString()

	recipientPrivate, recipientPublic := uploadRSAPair(t, services, userID)
	senderPrivate, senderPublic := uploadRSAPair(t, services, userID)

	msg, err := services.SecureMessageEncryptService.Encrypt(context.Background(), []byte("tamper target"), recipientPublic.ID, &senderPrivate.ID)
	require.NoError(t, err)

	cipherText, err := base64.StdEncoding.DecodeString(msg.Payload)
	require.NoError(t, err)
	cipherText[0] ^= 0xff
	msg.Payload = base64.StdEncoding.EncodeToString(cipherText)

	_, err = services.SecureMessageDecryptService.Decrypt(context.Background(), msg, recipientPrivate.ID, &senderPublic.ID)
	require.Error(t, err)
	assert.ErrorIs(t, err, crypto.ErrSignatureMismatch)
}

func TestSecureMessageServices_TamperedPayloadFailsAuthentication(t *testing.T) {
	services := SetupTestServices(t, config.SqliteDbType)
	userID := uuid.NewString()

	recipientPrivate, recipientPublic := uploadRSAPair(t, services, userID)

	msg, err := services.SecureMessageEncryptService.Encrypt(context.Background(), []byte("tamper target"), recipientPublic.ID, nil)
	require.NoError(t, err)

	cipherText, err := base64.StdEncoding.DecodeString(msg.Payload)
	require.NoError(t, err)
	cipherText[0] ^= 0xff
	msg.Payload = base64.StdEncoding.EncodeToString(cipherText)

	_, err = services.SecureMessageDecryptService.Decrypt(context.Background(), msg, recipientPrivate.ID, nil)
	require.Error(t, err)
	assert.ErrorIs(t, err, crypto.ErrAuthentication)
}

func TestSecureMessageServices_RejectsWrongKeyType(t *testing.T) {
	services := SetupTestServices(t, config.SqliteDbType)
	userID := uuid.NewString()

	recipientPrivate, recipientPublic := uploadRSAPair(t, services, userID)

	// Encrypting with a private key ID must fail
	_, err := services.SecureMessageEncryptService.Encrypt(context.Background(), []byte("hello"), recipientPrivate.ID, nil)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "expected 'public'")

	// Decrypting with a public key ID must fail
	msg, err := services.SecureMessageEncryptService.Encrypt(context.Background(), []byte("hello"), recipientPublic.ID, nil)
	require.NoError(t, err)

	_, err = services.SecureMessageDecryptService.Decrypt(context.Background(), msg, recipientPublic.ID, nil)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "expected 'private'")
}

func TestSecureMessageServices_RejectsAESKey(t *testing.T) {
	services := SetupTestServices(t, config.SqliteDbType)
	userID := uuid.NewString()

	keyMetas, err := services.CryptoKeyUploadService.Upload(context.Background(), userID, "AES", 256)
	require.NoError(t, err)
	require.Len(t, keyMetas, 1)

	_, err = services.SecureMessageEncryptService.Encrypt(context.Background(), []byte("hello"), keyMetas[0].ID, nil)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "expected 'RSA'")
}

func TestSecureMessageServices_UnknownKeyID(t *testing.T) {
	services := SetupTestServices(t, config.SqliteDbType)

	_, err := services.SecureMessageEncryptService.Encrypt(context.Background(), []byte("hello"), uuid.NewString(), nil)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "not found")
}
