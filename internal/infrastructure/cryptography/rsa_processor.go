package cryptography

import (
	"crypto"
	"crypto/rand"
	"crypto/rsa"
	"crypto/sha256"
	"crypto/x509"
	"encoding/pem"
	"errors"
	"fmt"
	"log"
	"os"
	"path/filepath"

	cryptoDomain "secure_message_service/internal/domain/crypto"
	"secure_message_service/internal/pkg/logger"
)

// rsaProcessor struct that implements the RSAProcessor interface
type rsaProcessor struct {
	logger logger.Logger
}

// NewRSAProcessor creates and returns a new instance of rsaProcessor
func NewRSAProcessor(logger logger.Logger) (cryptoDomain.RSAProcessor, error) {
	return &rsaProcessor{
		logger: logger,
	}, nil
}

// GenerateKeys generates an RSA key pair with the specified bit size.
// Recommended sizes: 2048 (minimum), 3072, 4096 bits.
func (r *rsaProcessor) GenerateKeys(keySize int) (*rsa.PrivateKey, *rsa.PublicKey, error) {
	if keySize < 2048 {
		return nil, nil, fmt.Errorf("%w: key size must be at least 2048 bits, got %d", cryptoDomain.ErrKeyGen, keySize)
	}

	privateKey, err := rsa.GenerateKey(rand.Reader, keySize)
	if err != nil {
		return nil, nil, fmt.Errorf("%w: failed to generate RSA keys: %w", cryptoDomain.ErrKeyGen, err)
	}
	publicKey := &privateKey.PublicKey
	r.logger.Info("Generated RSA key pair")
	return privateKey, publicKey, nil
}

// Encrypt encrypts a short plaintext using RSA-OAEP (SHA-256) with the public key.
// The plaintext is bounded by the modulus size minus padding overhead; in the
// hybrid flow only a 32-byte symmetric key is ever wrapped here.
func (r *rsaProcessor) Encrypt(plainText []byte, publicKey *rsa.PublicKey) ([]byte, error) {
	if publicKey == nil {
		return nil, errors.New("public key cannot be nil")
	}

	// OAEP bound: k - 2*hLen - 2 (190 bytes for RSA-2048 with SHA-256)
	maxSize := publicKey.Size() - 2*sha256.Size - 2
	if len(plainText) > maxSize {
		return nil, fmt.Errorf("%w: plaintext is %d bytes, bound is %d", cryptoDomain.ErrPayloadTooLarge, len(plainText), maxSize)
	}

	cipherText, err := rsa.EncryptOAEP(sha256.New(), rand.Reader, publicKey, plainText, nil)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", cryptoDomain.ErrEncrypt, err)
	}

	r.logger.Info("RSA encryption succeeded")
	return cipherText, nil
}

// Decrypt decrypts RSA-OAEP ciphertext using the private key.
func (r *rsaProcessor) Decrypt(cipherText []byte, privateKey *rsa.PrivateKey) ([]byte, error) {
	if privateKey == nil {
		return nil, errors.New("private key cannot be nil")
	}

	plainText, err := rsa.DecryptOAEP(sha256.New(), rand.Reader, privateKey, cipherText, nil)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", cryptoDomain.ErrDecrypt, err)
	}

	r.logger.Info("RSA decryption succeeded")
	return plainText, nil
}

// Sign creates a PKCS#1 v1.5 signature over the SHA-256 digest of data.
func (r *rsaProcessor) Sign(data []byte, privateKey *rsa.PrivateKey) ([]byte, error) {
	if privateKey == nil {
		return nil, errors.New("private key cannot be nil")
	}

	hashed := sha256.Sum256(data)

	signature, err := rsa.SignPKCS1v15(rand.Reader, privateKey, crypto.SHA256, hashed[:])
	if err != nil {
		return nil, fmt.Errorf("failed to sign data: %w", err)
	}

	r.logger.Info("RSA signing succeeded")
	return signature, nil
}

// Verify verifies a PKCS#1 v1.5 signature using the public key. A mismatching
// signature yields (false, nil); the error is reserved for malformed inputs,
// so callers can tell "invalid signature" apart from "could not verify".
func (r *rsaProcessor) Verify(data []byte, signature []byte, publicKey *rsa.PublicKey) (bool, error) {
	if publicKey == nil {
		return false, errors.New("public key cannot be nil")
	}

	hashed := sha256.Sum256(data)

	err := rsa.VerifyPKCS1v15(publicKey, crypto.SHA256, hashed[:], signature)
	if err != nil {
		if errors.Is(err, rsa.ErrVerification) {
			return false, nil
		}
		return false, fmt.Errorf("failed to verify signature: %w", err)
	}

	r.logger.Info("RSA signature verified successfully")
	return true, nil
}

// EncodePrivateKey encodes the RSA private key as a PEM block (PKCS#1 format).
func (r *rsaProcessor) EncodePrivateKey(privateKey *rsa.PrivateKey) ([]byte, error) {
	if privateKey == nil {
		return nil, errors.New("private key cannot be nil")
	}

	privKeyPem := &pem.Block{
		Type:  "RSA PRIVATE KEY",
		Bytes: x509.MarshalPKCS1PrivateKey(privateKey),
	}
	return pem.EncodeToMemory(privKeyPem), nil
}

// EncodePublicKey encodes the RSA public key as a PEM block (PKIX format).
func (r *rsaProcessor) EncodePublicKey(publicKey *rsa.PublicKey) ([]byte, error) {
	if publicKey == nil {
		return nil, errors.New("public key cannot be nil")
	}

	pubKeyBytes, err := x509.MarshalPKIXPublicKey(publicKey)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal public key: %w", err)
	}

	pubKeyPem := &pem.Block{
		Type:  "PUBLIC KEY",
		Bytes: pubKeyBytes,
	}
	return pem.EncodeToMemory(pubKeyPem), nil
}

// DecodePrivateKey parses a PEM-encoded RSA private key (PKCS#1 or PKCS#8 format).
func (r *rsaProcessor) DecodePrivateKey(pemBytes []byte) (*rsa.PrivateKey, error) {
	block, _ := pem.Decode(pemBytes)
	if block == nil {
		return nil, fmt.Errorf("failed to parse PEM block containing the private key")
	}

	// First try to parse as PKCS#1 format
	privateKey, err := x509.ParsePKCS1PrivateKey(block.Bytes)
	if err == nil {
		return privateKey, nil
	}

	// If PKCS#1 parsing fails, try parsing as PKCS#8 format
	privateKeyInterface, err := x509.ParsePKCS8PrivateKey(block.Bytes)
	if err != nil {
		return nil, fmt.Errorf("unable to parse private key in either PKCS#1 or PKCS#8 format: %w", err)
	}

	privateKey, ok := privateKeyInterface.(*rsa.PrivateKey)
	if !ok {
		return nil, fmt.Errorf("private key is not of type RSA")
	}

	return privateKey, nil
}

// DecodePublicKey parses a PEM-encoded RSA public key (PKCS#1 or PKIX format).
func (r *rsaProcessor) DecodePublicKey(pemBytes []byte) (*rsa.PublicKey, error) {
	block, _ := pem.Decode(pemBytes)
	if block == nil {
		return nil, fmt.Errorf("failed to parse PEM block containing the public key")
	}

	// Try to parse as PKCS#1 format first
	publicKey, err := x509.ParsePKCS1PublicKey(block.Bytes)
	if err == nil {
		return publicKey, nil
	}

	// If PKCS#1 parsing fails, try parsing as PKIX format
	pubKeyInterface, err := x509.ParsePKIXPublicKey(block.Bytes)
	if err != nil {
		return nil, fmt.Errorf("unable to parse public key in either PKCS#1 or PKIX format: %w", err)
	}

	publicKey, ok := pubKeyInterface.(*rsa.PublicKey)
	if !ok {
		return nil, fmt.Errorf("public key is not of type RSA")
	}

	return publicKey, nil
}

// SavePrivateKeyToFile saves the RSA private key to a PEM-encoded file (PKCS#1 format).
func (r *rsaProcessor) SavePrivateKeyToFile(privateKey *rsa.PrivateKey, filename string) error {
	pemBytes, err := r.EncodePrivateKey(privateKey)
	if err != nil {
		return err
	}

	if err := writeKeyFile(filename, pemBytes); err != nil {
		return fmt.Errorf("failed to save private key: %w", err)
	}

	r.logger.Info("Saved RSA private key ", filename)
	return nil
}

// SavePublicKeyToFile saves the RSA public key to a PEM-encoded file (PKIX format).
func (r *rsaProcessor) SavePublicKeyToFile(publicKey *rsa.PublicKey, filename string) error {
	pemBytes, err := r.EncodePublicKey(publicKey)
	if err != nil {
		return err
	}

	if err := writeKeyFile(filename, pemBytes); err != nil {
		return fmt.Errorf("failed to save public key: %w", err)
	}

	r.logger.Info("Saved RSA public key ", filename)
	return nil
}

// ReadPrivateKey reads an RSA private key from a PEM-encoded file (PKCS#1 format).
func (r *rsaProcessor) ReadPrivateKey(privateKeyPath string) (*rsa.PrivateKey, error) {
	privKeyPEM, err := os.ReadFile(filepath.Clean(privateKeyPath))
	if err != nil {
		return nil, fmt.Errorf("unable to read private key file: %w", err)
	}

	return r.DecodePrivateKey(privKeyPEM)
}

// ReadPublicKey reads an RSA public key from a PEM-encoded file (PKIX format).
func (r *rsaProcessor) ReadPublicKey(publicKeyPath string) (*rsa.PublicKey, error) {
	pubKeyPEM, err := os.ReadFile(filepath.Clean(publicKeyPath))
	if err != nil {
		return nil, fmt.Errorf("unable to read public key file: %w", err)
	}

	return r.DecodePublicKey(pubKeyPEM)
}

func writeKeyFile(filename string, pemBytes []byte) error {
	file, err := os.OpenFile(filepath.Clean(filename), os.O_WRONLY|os.O_CREATE|os.O_TRUNC, 0600)
	if err != nil {
		return fmt.Errorf("failed to create key file: %w", err)
	}
	defer func() {
		if err := file.Close(); err != nil {
			log.Printf("warning: failed to close file: %v\n", err)
		}
	}()

	if _, err := file.Write(pemBytes); err != nil {
		return fmt.Errorf("failed to write key file: %w", err)
	}
	return nil
}
