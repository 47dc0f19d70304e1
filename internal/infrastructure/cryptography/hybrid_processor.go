package cryptography

import (
	"crypto/rsa"
	"encoding/base64"
	"errors"
	"fmt"

	cryptoDomain "secure_message_service/internal/domain/crypto"
	"secure_message_service/internal/domain/messages"
	"secure_message_service/internal/pkg/logger"
)

// hybridProcessor struct that implements the HybridProcessor interface by
// composing the AES and RSA processors.
type hybridProcessor struct {
	aesProcessor cryptoDomain.AESProcessor
	rsaProcessor cryptoDomain.RSAProcessor
	logger       logger.Logger
}

// NewHybridProcessor creates and returns a new instance of hybridProcessor
func NewHybridProcessor(aesProcessor cryptoDomain.AESProcessor, rsaProcessor cryptoDomain.RSAProcessor, logger logger.Logger) (messages.HybridProcessor, error) {
	if aesProcessor == nil || rsaProcessor == nil {
		return nil, errors.New("aes and rsa processors cannot be nil")
	}
	return &hybridProcessor{
		aesProcessor: aesProcessor,
		rsaProcessor: rsaProcessor,
		logger:       logger,
	}, nil
}

// Encrypt encrypts plainText for the holder of recipientPublicKey. A fresh
// 256-bit symmetric key and 12-byte nonce are generated per call and used
// exactly once. When senderPrivateKey is non-nil the base64 payload string is
// signed with PKCS#1 v1.5 so the receiving platform can verify it before
// trusting the plaintext.
func (h *hybridProcessor) Encrypt(plainText []byte, recipientPublicKey *rsa.PublicKey, senderPrivateKey *rsa.PrivateKey) (*messages.SecureMessage, error) {
	if recipientPublicKey == nil {
		return nil, errors.New("recipient public key cannot be nil")
	}

	symmetricKey, err := h.aesProcessor.GenerateKey(cryptoDomain.AESKeySize256)
	if err != nil {
		return nil, fmt.Errorf("failed to generate symmetric key: %w", err)
	}

	nonce, err := h.aesProcessor.GenerateNonce()
	if err != nil {
		return nil, fmt.Errorf("failed to generate nonce: %w", err)
	}

	cipherText, err := h.aesProcessor.Encrypt(plainText, symmetricKey, nonce)
	if err != nil {
		return nil, fmt.Errorf("failed to encrypt payload: %w", err)
	}

	encryptedKey, err := h.rsaProcessor.Encrypt(symmetricKey, recipientPublicKey)
	if err != nil {
		return nil, fmt.Errorf("failed to encrypt symmetric key: %w", err)
	}

	msg := &messages.SecureMessage{
		Payload: base64.StdEncoding.EncodeToString(cipherText),
		Key:     base64.StdEncoding.EncodeToString(encryptedKey),
		Nonce:   base64.StdEncoding.EncodeToString(nonce),
	}

	if senderPrivateKey != nil {
		signature, err := h.rsaProcessor.Sign([]byte(msg.Payload), senderPrivateKey)
		if err != nil {
			return nil, fmt.Errorf("failed to sign payload: %w", err)
		}
		msg.Signature = base64.StdEncoding.EncodeToString(signature)
	}

	h.logger.Info("Hybrid encryption succeeded")
	return msg, nil
}

// Decrypt unwraps the symmetric key with recipientPrivateKey and decrypts the
// payload. When senderPublicKey is non-nil the signature is verified first;
// a mismatch fails with ErrSignatureMismatch before any plaintext is produced.
// A failed decrypt is always an error, never an empty result.
func (h *hybridProcessor) Decrypt(msg *messages.SecureMessage, recipientPrivateKey *rsa.PrivateKey, senderPublicKey *rsa.PublicKey) ([]byte, error) {
	if msg == nil {
		return nil, errors.New("secure message cannot be nil")
	}
	if recipientPrivateKey == nil {
		return nil, errors.New("recipient private key cannot be nil")
	}
	if err := msg.Validate(); err != nil {
		return nil, err
	}

	if senderPublicKey != nil {
		if msg.Signature == "" {
			return nil, fmt.Errorf("%w: message carries no signature", cryptoDomain.ErrSignatureMismatch)
		}
		signature, err := base64.StdEncoding.DecodeString(msg.Signature)
		if err != nil {
			return nil, fmt.Errorf("failed to decode signature: %w", err)
		}
		valid, err := h.rsaProcessor.Verify([]byte(msg.Payload), signature, senderPublicKey)
		if err != nil {
			return nil, fmt.Errorf("failed to verify signature: %w", err)
		}
		if !valid {
			return nil, cryptoDomain.ErrSignatureMismatch
		}
	}

	encryptedKey, err := base64.StdEncoding.DecodeString(msg.Key)
	if err != nil {
		return nil, fmt.Errorf("failed to decode encrypted key: %w", err)
	}

	symmetricKey, err := h.rsaProcessor.Decrypt(encryptedKey, recipientPrivateKey)
	if err != nil {
		return nil, fmt.Errorf("failed to unwrap symmetric key: %w", err)
	}

	cipherText, err := base64.StdEncoding.DecodeString(msg.Payload)
	if err != nil {
		return nil, fmt.Errorf("failed to decode payload: %w", err)
	}

	nonce, err := base64.StdEncoding.DecodeString(msg.Nonce)
	if err != nil {
		return nil, fmt.Errorf("failed to decode nonce: %w", err)
	}

	plainText, err := h.aesProcessor.Decrypt(cipherText, symmetricKey, nonce)
	if err != nil {
		return nil, fmt.Errorf("failed to decrypt payload: %w", err)
	}

	h.logger.Info("Hybrid decryption succeeded")
	return plainText, nil
}
