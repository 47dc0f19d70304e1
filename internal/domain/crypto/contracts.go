package crypto

import "crypto/rsa"

// AESProcessor handles AES-GCM symmetric encryption operations.
// AES is used for encrypting/decrypting data with a shared secret key.
// NOTE: AES does NOT support signing/verification operations - use RSA for digital signatures.
//
// Implementations must be stateless and safe for concurrent use: key and
// nonce generation draw from a thread-safe entropy source and no call mutates
// shared state.
type AESProcessor interface {
	// GenerateKey generates a random AES key of the specified size.
	// Supported key sizes: 16 (AES-128), 24 (AES-192), 32 (AES-256) bytes.
	GenerateKey(keySize int) ([]byte, error)

	// GenerateNonce generates a random 12-byte GCM nonce. A nonce is used for
	// exactly one encryption call; reuse under the same key breaks GCM's
	// confidentiality guarantee.
	GenerateNonce() ([]byte, error)

	// DeriveKey derives an AES key of the specified size from a passphrase
	// and salt using scrypt (N=16384, r=8, p=1).
	DeriveKey(passphrase, salt []byte, keySize int) ([]byte, error)

	// Encrypt encrypts plaintext data using AES-GCM with the provided key and
	// nonce. No associated data is bound. Fails with ErrEncrypt on a
	// malformed key or nonce length.
	Encrypt(plainText, key, nonce []byte) ([]byte, error)

	// Decrypt decrypts AES-GCM ciphertext using the provided key and nonce.
	// Fails with ErrAuthentication when the authentication tag does not
	// verify; it never returns unauthenticated plaintext.
	Decrypt(cipherText, key, nonce []byte) ([]byte, error)
}

// RSAProcessor handles RSA asymmetric cryptographic operations.
// RSA supports both encryption/decryption AND digital signatures.
// For payloads beyond the OAEP bound, use hybrid encryption
// (encrypt data with AES, encrypt the AES key with RSA).
type RSAProcessor interface {
	// GenerateKeys generates an RSA key pair with the specified bit size.
	// Recommended sizes: 2048 (minimum), 3072, 4096 bits.
	GenerateKeys(keySize int) (*rsa.PrivateKey, *rsa.PublicKey, error)

	// Encrypt encrypts a short plaintext using RSA-OAEP (SHA-256) with the
	// public key. Fails with ErrPayloadTooLarge when the plaintext exceeds
	// the modulus-minus-padding bound.
	Encrypt(plainText []byte, publicKey *rsa.PublicKey) ([]byte, error)

	// Decrypt decrypts RSA-OAEP ciphertext using the private key.
	// Fails with ErrDecrypt on a padding or key mismatch.
	Decrypt(cipherText []byte, privateKey *rsa.PrivateKey) ([]byte, error)

	// Sign creates a PKCS#1 v1.5 signature over the SHA-256 digest of data.
	Sign(data []byte, privateKey *rsa.PrivateKey) ([]byte, error)

	// Verify verifies a PKCS#1 v1.5 signature using the public key. A
	// mismatching signature yields (false, nil), not an error, so callers
	// control mismatch handling; the error is reserved for malformed inputs.
	Verify(data []byte, signature []byte, publicKey *rsa.PublicKey) (bool, error)

	// EncodePrivateKey encodes the RSA private key as a PEM block (PKCS#1 format).
	EncodePrivateKey(privateKey *rsa.PrivateKey) ([]byte, error)

	// EncodePublicKey encodes the RSA public key as a PEM block (PKIX format).
	EncodePublicKey(publicKey *rsa.PublicKey) ([]byte, error)

	// DecodePrivateKey parses a PEM-encoded RSA private key (PKCS#1 or PKCS#8 format).
	DecodePrivateKey(pemBytes []byte) (*rsa.PrivateKey, error)

	// DecodePublicKey parses a PEM-encoded RSA public key (PKCS#1 or PKIX format).
	DecodePublicKey(pemBytes []byte) (*rsa.PublicKey, error)

	// SavePrivateKeyToFile saves the RSA private key to a PEM-encoded file (PKCS#1 format).
	SavePrivateKeyToFile(privateKey *rsa.PrivateKey, filename string) error

	// SavePublicKeyToFile saves the RSA public key to a PEM-encoded file (PKIX format).
	SavePublicKeyToFile(publicKey *rsa.PublicKey, filename string) error

	// ReadPrivateKey reads an RSA private key from a PEM-encoded file (PKCS#1 format).
	ReadPrivateKey(privateKeyPath string) (*rsa.PrivateKey, error)

	// ReadPublicKey reads an RSA public key from a PEM-encoded file (PKIX format).
	ReadPublicKey(publicKeyPath string) (*rsa.PublicKey, error)
}
