package cryptography

import (
	"crypto/aes"
	"crypto/cipher"
	"crypto/rand"
	"fmt"

	"golang.org/x/crypto/scrypt"

	cryptoDomain "secure_message_service/internal/domain/crypto"
	"secure_message_service/internal/pkg/logger"
)

// aesProcessor struct that implements the AESProcessor interface
type aesProcessor struct {
	logger logger.Logger
}

// NewAESProcessor creates and returns a new instance of aesProcessor
func NewAESProcessor(logger logger.Logger) (cryptoDomain.AESProcessor, error) {
	return &aesProcessor{
		logger: logger,
	}, nil
}

// GenerateKey generates a random AES key of the specified size.
// Supported key sizes: 16 (AES-128), 24 (AES-192), 32 (AES-256) bytes.
func (a *aesProcessor) GenerateKey(keySize int) ([]byte, error) {
	if err := validKeySize(keySize); err != nil {
		return nil, fmt.Errorf("%w: %w", cryptoDomain.ErrKeyGen, err)
	}

	key := make([]byte, keySize)
	if _, err := rand.Read(key); err != nil {
		return nil, fmt.Errorf("%w: failed to read random bytes: %w", cryptoDomain.ErrKeyGen, err)
	}

	a.logger.Info("Generated AES key")
	return key, nil
}

// GenerateNonce generates a random 12-byte GCM nonce. A nonce is used for
// exactly one encryption call; reuse under the same key breaks GCM's
// confidentiality guarantee.
func (a *aesProcessor) GenerateNonce() ([]byte, error) {
	nonce := make([]byte, cryptoDomain.GCMNonceSize)
	if _, err := rand.Read(nonce); err != nil {
		return nil, fmt.Errorf("%w: failed to read random bytes: %w", cryptoDomain.ErrKeyGen, err)
	}
	return nonce, nil
}

// DeriveKey derives an AES key of the specified size from a passphrase and
// salt using scrypt (N=16384, r=8, p=1).
func (a *aesProcessor) DeriveKey(passphrase, salt []byte, keySize int) ([]byte, error) {
	if err := validKeySize(keySize); err != nil {
		return nil, fmt.Errorf("%w: %w", cryptoDomain.ErrKeyGen, err)
	}
	if len(salt) == 0 {
		return nil, fmt.Errorf("%w: salt cannot be empty", cryptoDomain.ErrKeyGen)
	}

	key, err := scrypt.Key(passphrase, salt, cryptoDomain.ScryptN, cryptoDomain.ScryptR, cryptoDomain.ScryptP, keySize)
	if err != nil {
		return nil, fmt.Errorf("%w: scrypt derivation failed: %w", cryptoDomain.ErrKeyGen, err)
	}

	a.logger.Info("Derived AES key from passphrase")
	return key, nil
}

// Encrypt encrypts plaintext data using AES-GCM with the provided key and nonce.
// No associated data is bound.
func (a *aesProcessor) Encrypt(plainText, key, nonce []byte) ([]byte, error) {
	gcm, err := newGCM(key)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", cryptoDomain.ErrEncrypt, err)
	}
	if len(nonce) != gcm.NonceSize() {
		return nil, fmt.Errorf("%w: nonce must be %d bytes, got %d", cryptoDomain.ErrEncrypt, gcm.NonceSize(), len(nonce))
	}

	cipherText := gcm.Seal(nil, nonce, plainText, nil)

	a.logger.Info("AES-GCM encryption succeeded")
	return cipherText, nil
}

// Decrypt decrypts AES-GCM ciphertext using the provided key and nonce. A tag
// mismatch is a hard failure: no plaintext is returned with ErrAuthentication.
func (a *aesProcessor) Decrypt(cipherText, key, nonce []byte) ([]byte, error) {
	gcm, err := newGCM(key)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", cryptoDomain.ErrEncrypt, err)
	}
	if len(nonce) != gcm.NonceSize() {
		return nil, fmt.Errorf("%w: nonce must be %d bytes, got %d", cryptoDomain.ErrEncrypt, gcm.NonceSize(), len(nonce))
	}

	plainText, err := gcm.Open(nil, nonce, cipherText, nil)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", cryptoDomain.ErrAuthentication, err)
	}

	a.logger.Info("AES-GCM decryption succeeded")
	return plainText, nil
}

func newGCM(key []byte) (cipher.AEAD, error) {
	if err := validKeySize(len(key)); err != nil {
		return nil, err
	}

	block, err := aes.NewCipher(key)
	if err != nil {
		return nil, fmt.Errorf("failed to create cipher: %w", err)
	}

	gcm, err := cipher.NewGCM(block)
	if err != nil {
		return nil, fmt.Errorf("failed to create GCM: %w", err)
	}

	return gcm, nil
}

func validKeySize(keySize int) error {
	switch keySize {
	case cryptoDomain.AESKeySize128, cryptoDomain.AESKeySize192, cryptoDomain.AESKeySize256:
		return nil
	default:
		return fmt.Errorf("key size must be 16, 24 or 32 bytes, got %d", keySize)
	}
}
