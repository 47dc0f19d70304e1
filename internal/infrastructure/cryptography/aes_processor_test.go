//go:build unit
// +build unit

package cryptography

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"secure_message_service/internal/domain/crypto"
	pkgTesting "secure_message_service/internal/pkg/testing"
)

const (
	TestAESKey128 = 16
	TestAESKey256 = 32
)

func setupAESProcessor(t *testing.T) crypto.AESProcessor {
	t.Helper()
	logger := pkgTesting.SetupTestLogger(t)
	processor, err := NewAESProcessor(logger)
	require.NoError(t, err)
	return processor
}

func TestAESProcessor(t *testing.T) {
	processor := setupAESProcessor(t)

	t.Run("EncryptDecrypt", func(t *testing.T) {
		key, err := processor.GenerateKey(TestAESKey256)
		assert.NoError(t, err)

		nonce, err := processor.GenerateNonce()
		assert.NoError(t, err)

		plainText := []byte("This is a test message.")

		cipherText, err := processor.Encrypt(plainText, key, nonce)
		assert.NoError(t, err)
		assert.NotNil(t, cipherText)
		assert.Greater(t, len(cipherText), 0)

		decryptedText, err := processor.Decrypt(cipherText, key, nonce)
		assert.NoError(t, err)
		assert.NotNil(t, decryptedText)
		assert.Equal(t, plainText, decryptedText)
	})

	t.Run("GenerateKey", func(t *testing.T) {
		key, err := processor.GenerateKey(TestAESKey128)
		assert.NoError(t, err)
		assert.Equal(t, TestAESKey128, len(key))

		key256, err := processor.GenerateKey(TestAESKey256)
		assert.NoError(t, err)
		assert.Equal(t, TestAESKey256, len(key256))
	})

	t.Run("GenerateKeyInvalidSize", func(t *testing.T) {
		_, err := processor.GenerateKey(17)
		assert.Error(t, err)
		assert.ErrorIs(t, err, crypto.ErrKeyGen)
	})

	t.Run("GenerateNonce", func(t *testing.T) {
		nonce, err := processor.GenerateNonce()
		assert.NoError(t, err)
		assert.Equal(t, crypto.GCMNonceSize, len(nonce))

		otherNonce, err := processor.GenerateNonce()
		assert.NoError(t, err)
		assert.NotEqual(t, nonce, otherNonce, "nonces must differ between calls")
	})

	t.Run("DeriveKey", func(t *testing.T) {
		key, err := processor.DeriveKey([]byte("passphrase"), []byte("salt"), TestAESKey256)
		assert.NoError(t, err)
		assert.Equal(t, TestAESKey256, len(key))

		// Same inputs derive the same key
		sameKey, err := processor.DeriveKey([]byte("passphrase"), []byte("salt"), TestAESKey256)
		assert.NoError(t, err)
		assert.Equal(t, key, sameKey)

		// A different salt derives a different key
		otherKey, err := processor.DeriveKey([]byte("passphrase"), []byte("other salt"), TestAESKey256)
		assert.NoError(t, err)
		assert.NotEqual(t, key, otherKey)
	})

	t.Run("DeriveKeyEmptySalt", func(t *testing.T) {
		_, err := processor.DeriveKey([]byte("passphrase"), nil, TestAESKey256)
		assert.Error(t, err)
		assert.ErrorIs(t, err, crypto.ErrKeyGen)
	})

	t.Run("EncryptionWithInvalidKey", func(t *testing.T) {
		key := []byte("shortkey")
		nonce := make([]byte, crypto.GCMNonceSize)
		plainText := []byte("This is a test.")

		_, err := processor.Encrypt(plainText, key, nonce)
		assert.Error(t, err)
		assert.ErrorIs(t, err, crypto.ErrEncrypt)
	})

	t.Run("EncryptionWithInvalidNonce", func(t *testing.T) {
		key, err := processor.GenerateKey(TestAESKey256)
		assert.NoError(t, err)

		_, err = processor.Encrypt([]byte("This is a test."), key, []byte("short"))
		assert.Error(t, err)
		assert.ErrorIs(t, err, crypto.ErrEncrypt)
	})

	t.Run("DecryptWithWrongKey", func(t *testing.T) {
		key, err := processor.GenerateKey(TestAESKey256)
		assert.NoError(t, err)

		nonce, err := processor.GenerateNonce()
		assert.NoError(t, err)

		plainText := []byte("Test decryption with wrong key.")
		cipherText, err := processor.Encrypt(plainText, key, nonce)
		assert.NoError(t, err)

		wrongKey, err := processor.GenerateKey(TestAESKey256)
		assert.NoError(t, err)

		_, err = processor.Decrypt(cipherText, wrongKey, nonce)
		assert.Error(t, err, "tag mismatch must be a hard failure")
		assert.ErrorIs(t, err, crypto.ErrAuthentication)
	})

	t.Run("DecryptTamperedCiphertext", func(t *testing.T) {
		key, err := processor.GenerateKey(TestAESKey256)
		assert.NoError(t, err)

		nonce, err := processor.GenerateNonce()
		assert.NoError(t, err)

		cipherText, err := processor.Encrypt([]byte("tamper target"), key, nonce)
		assert.NoError(t, err)

		cipherText[0] ^= 0xff

		_, err = processor.Decrypt(cipherText, key, nonce)
		assert.Error(t, err)
		assert.ErrorIs(t, err, crypto.ErrAuthentication)
	})
}
