package messages

import (
	"context"
	"crypto/rsa"
)

// HybridProcessor performs RSA-wrapped AES-GCM encryption and decryption of
// byte payloads. Each call is a pure, synchronous function over its inputs:
// a fresh 32-byte symmetric key and 12-byte nonce are generated per Encrypt
// and used exactly once, so calls may run fully in parallel.
type HybridProcessor interface {
	// Encrypt encrypts plainText for the holder of recipientPublicKey:
	// it encrypts the payload with AES-256-GCM under a fresh key and nonce,
	// wraps the key with RSA-OAEP and, when senderPrivateKey is non-nil,
	// signs the base64 payload with PKCS#1 v1.5.
	Encrypt(plainText []byte, recipientPublicKey *rsa.PublicKey, senderPrivateKey *rsa.PrivateKey) (*SecureMessage, error)

	// Decrypt unwraps the symmetric key with recipientPrivateKey and decrypts
	// the payload. When senderPublicKey is non-nil the message signature is
	// verified first and a mismatch fails with ErrSignatureMismatch before
	// any plaintext is produced.
	Decrypt(msg *SecureMessage, recipientPrivateKey *rsa.PrivateKey, senderPublicKey *rsa.PublicKey) ([]byte, error)
}

// SecureMessageEncryptService encrypts payloads for stored recipient keys.
type SecureMessageEncryptService interface {
	// Encrypt builds a SecureMessage for the recipient key identified by
	// encryptionKeyID. When signKeyID is non-nil the payload is signed with
	// that stored private key.
	Encrypt(ctx context.Context, plainText []byte, encryptionKeyID string, signKeyID *string) (*SecureMessage, error)
}

// SecureMessageDecryptService decrypts SecureMessages with stored private keys.
// Private-key access is confined to this service; no other component reads
// private key material.
type SecureMessageDecryptService interface {
	// Decrypt recovers the plaintext of msg using the stored private key
	// identified by decryptionKeyID. When verifyKeyID is non-nil the message
	// signature is checked against that stored public key before decryption.
	Decrypt(ctx context.Context, msg *SecureMessage, decryptionKeyID string, verifyKeyID *string) ([]byte, error)
}
