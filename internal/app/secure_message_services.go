package app

import (
	"context"
	"crypto/rsa"
	"fmt"

	"secure_message_service/internal/domain/crypto"
	"secure_message_service/internal/domain/keys"
	"secure_message_service/internal/domain/messages"
	"secure_message_service/internal/pkg/logger"
)

// secureMessageEncryptService implements the SecureMessageEncryptService
// interface. It resolves stored RSA keys and delegates the hybrid scheme to
// the HybridProcessor. Plaintext and SecureMessage contents are never
// persisted or logged.
type secureMessageEncryptService struct {
	cryptoKeyDownloadService keys.CryptoKeyDownloadService
	cryptoKeyRepo            keys.CryptoKeyRepository
	hybridProcessor          messages.HybridProcessor
	rsaProcessor             crypto.RSAProcessor
	logger                   logger.Logger
}

// NewSecureMessageEncryptService creates a new secureMessageEncryptService instance
func NewSecureMessageEncryptService(
	cryptoKeyDownloadService keys.CryptoKeyDownloadService,
	cryptoKeyRepo keys.CryptoKeyRepository,
	hybridProcessor messages.HybridProcessor,
	rsaProcessor crypto.RSAProcessor,
	logger logger.Logger,
) (messages.SecureMessageEncryptService, error) {
	return &secureMessageEncryptService{
		cryptoKeyDownloadService: cryptoKeyDownloadService,
		cryptoKeyRepo:            cryptoKeyRepo,
		hybridProcessor:          hybridProcessor,
		rsaProcessor:             rsaProcessor,
		logger:                   logger,
	}, nil
}

// Encrypt builds a SecureMessage for the recipient public key identified by
// encryptionKeyID. When signKeyID is non-nil the payload is additionally
// signed with that stored private key.
func (s *secureMessageEncryptService) Encrypt(ctx context.Context, plainText []byte, encryptionKeyID string, signKeyID *string) (*messages.SecureMessage, error) {
	recipientPublicKey, err := s.loadPublicKey(ctx, encryptionKeyID)
	if err != nil {
		return nil, fmt.Errorf("failed to load encryption key '%s': %w", encryptionKeyID, err)
	}

	var senderPrivateKey *rsa.PrivateKey
	if signKeyID != nil {
		senderPrivateKey, err = s.loadPrivateKey(ctx, *signKeyID)
		if err != nil {
			return nil, fmt.Errorf("failed to load signing key '%s': %w", *signKeyID, err)
		}
	}

	secureMessage, err := s.hybridProcessor.Encrypt(plainText, recipientPublicKey, senderPrivateKey)
	if err != nil {
		return nil, fmt.Errorf("%w", err)
	}

	return secureMessage, nil
}

func (s *secureMessageEncryptService) loadPublicKey(ctx context.Context, keyID string) (*rsa.PublicKey, error) {
	keyMeta, err := s.cryptoKeyRepo.GetByID(ctx, keyID)
	if err != nil {
		return nil, fmt.Errorf("%w", err)
	}
	if err := requireKey(keyMeta, crypto.KeyTypePublic); err != nil {
		return nil, err
	}

	pemBytes, err := s.cryptoKeyDownloadService.DownloadByID(ctx, keyID)
	if err != nil {
		return nil, fmt.Errorf("%w", err)
	}

	publicKey, err := s.rsaProcessor.DecodePublicKey(pemBytes)
	if err != nil {
		return nil, fmt.Errorf("%w", err)
	}
	return publicKey, nil
}

func (s *secureMessageEncryptService) loadPrivateKey(ctx context.Context, keyID string) (*rsa.PrivateKey, error) {
	keyMeta, err := s.cryptoKeyRepo.GetByID(ctx, keyID)
	if err != nil {
		return nil, fmt.Errorf("%w", err)
	}
	if err := requireKey(keyMeta, crypto.KeyTypePrivate); err != nil {
		return nil, err
	}

	pemBytes, err := s.cryptoKeyDownloadService.DownloadByID(ctx, keyID)
	if err != nil {
		return nil, fmt.Errorf("%w", err)
	}

	privateKey, err := s.rsaProcessor.DecodePrivateKey(pemBytes)
	if err != nil {
		return nil, fmt.Errorf("%w", err)
	}
	return privateKey, nil
}

// secureMessageDecryptService implements the SecureMessageDecryptService
// interface. Private key material is read here and nowhere else; decoded keys
// live only for the duration of a single call.
type secureMessageDecryptService struct {
	cryptoKeyDownloadService keys.CryptoKeyDownloadService
	cryptoKeyRepo            keys.CryptoKeyRepository
	hybridProcessor          messages.HybridProcessor
	rsaProcessor             crypto.RSAProcessor
	logger                   logger.Logger
}

// NewSecureMessageDecryptService creates a new secureMessageDecryptService instance
func NewSecureMessageDecryptService(
	cryptoKeyDownloadService keys.CryptoKeyDownloadService,
	cryptoKeyRepo keys.CryptoKeyRepository,
	hybridProcessor messages.HybridProcessor,
	rsaProcessor crypto.RSAProcessor,
	logger logger.Logger,
) (messages.SecureMessageDecryptService, error) {
	return &secureMessageDecryptService{
		cryptoKeyDownloadService: cryptoKeyDownloadService,
		cryptoKeyRepo:            cryptoKeyRepo,
		hybridProcessor:          hybridProcessor,
		rsaProcessor:             rsaProcessor,
		logger:                   logger,
	}, nil
}

// Decrypt recovers the plaintext of msg with the stored private key identified
// by decryptionKeyID. When verifyKeyID is non-nil the message signature is
// checked against that stored public key before any plaintext is produced.
func (s *secureMessageDecryptService) Decrypt(ctx context.Context, msg *messages.SecureMessage, decryptionKeyID string, verifyKeyID *string) ([]byte, error) {
	recipientPrivateKey, err := s.loadPrivateKey(ctx, decryptionKeyID)
	if err != nil {
		return nil, fmt.Errorf("failed to load decryption key '%s': %w", decryptionKeyID, err)
	}

	var senderPublicKey *rsa.PublicKey
	if verifyKeyID != nil {
		senderPublicKey, err = s.loadPublicKey(ctx, *verifyKeyID)
		if err != nil {
			return nil, fmt.Errorf("failed to load verification key '%s': %w", *verifyKeyID, err)
		}
	}

	plainText, err := s.hybridProcessor.Decrypt(msg, recipientPrivateKey, senderPublicKey)
	if err != nil {
		return nil, fmt.Errorf("%w", err)
	}

	return plainText, nil
}

func (s *secureMessageDecryptService) loadPrivateKey(ctx context.Context, keyID string) (*rsa.PrivateKey, error) {
	keyMeta, err := s.cryptoKeyRepo.GetByID(ctx, keyID)
	if err != nil {
		return nil, fmt.Errorf("%w", err)
	}
	if err := requireKey(keyMeta, crypto.KeyTypePrivate); err != nil {
		return nil, err
	}

	pemBytes, err := s.cryptoKeyDownloadService.DownloadByID(ctx, keyID)
	if err != nil {
		return nil, fmt.Errorf("%w", err)
	}

	privateKey, err := s.rsaProcessor.DecodePrivateKey(pemBytes)
	if err != nil {
		return nil, fmt.Errorf("%w", err)
	}
	return privateKey, nil
}

func (s *secureMessageDecryptService) loadPublicKey(ctx context.Context, keyID string) (*rsa.PublicKey, error) {
	keyMeta, err := s.cryptoKeyRepo.GetByID(ctx, keyID)
	if err != nil {
		return nil, fmt.Errorf("%w", err)
	}
	if err := requireKey(keyMeta, crypto.KeyTypePublic); err != nil {
		return nil, err
	}

	pemBytes, err := s.cryptoKeyDownloadService.DownloadByID(ctx, keyID)
	if err != nil {
		return nil, fmt.Errorf("%w", err)
	}

	publicKey, err := s.rsaProcessor.DecodePublicKey(pemBytes)
	if err != nil {
		return nil, fmt.Errorf("%w", err)
	}
	return publicKey, nil
}

// requireKey ensures a stored key has the expected type and the RSA algorithm
// before its material is fetched from the vault.
func requireKey(keyMeta *keys.CryptoKeyMeta, expectedType string) error {
	if keyMeta.Algorithm != crypto.AlgorithmRSA {
		return fmt.Errorf("key '%s' has algorithm '%s', expected '%s'", keyMeta.ID, keyMeta.Algorithm, crypto.AlgorithmRSA)
	}
	if keyMeta.Type != expectedType {
		return fmt.Errorf("key '%s' has type '%s', expected '%s'", keyMeta.ID, keyMeta.Type, expectedType)
	}
	return nil
}
