// Package app wires the domain contracts together into application services:
// key generation and metadata management, and the hybrid secure message flow.
package app

import (
	"context"
	"encoding/pem"
	"fmt"

	"github.com/google/uuid"

	"secure_message_service/internal/domain/crypto"
	"secure_message_service/internal/domain/keys"
	"secure_message_service/internal/pkg/logger"
)

// cryptoKeyUploadService implements the CryptoKeyUploadService interface for
// generating key material and storing it.
type cryptoKeyUploadService struct {
	vaultConnector keys.VaultConnector
	cryptoKeyRepo  keys.CryptoKeyRepository
	aesProcessor   crypto.AESProcessor
	rsaProcessor   crypto.RSAProcessor
	logger         logger.Logger
}

// NewCryptoKeyUploadService creates a new cryptoKeyUploadService instance
func NewCryptoKeyUploadService(
	vaultConnector keys.VaultConnector,
	cryptoKeyRepo keys.CryptoKeyRepository,
	aesProcessor crypto.AESProcessor,
	rsaProcessor crypto.RSAProcessor,
	logger logger.Logger,
) (keys.CryptoKeyUploadService, error) {
	return &cryptoKeyUploadService{
		vaultConnector: vaultConnector,
		cryptoKeyRepo:  cryptoKeyRepo,
		aesProcessor:   aesProcessor,
		rsaProcessor:   rsaProcessor,
		logger:         logger,
	}, nil
}

// Upload generates cryptographic key material for the requested algorithm,
// stores the PEM in the vault and persists the metadata.
// It returns a slice of CryptoKeyMeta and any error encountered during the upload process.
func (s *cryptoKeyUploadService) Upload(ctx context.Context, userID, keyAlgorithm string, keySize uint32) ([]*keys.CryptoKeyMeta, error) {
	keyPairID := uuid.New().String()

	switch keyAlgorithm {
	case crypto.AlgorithmAES:
		return s.uploadAESKey(ctx, userID, keyPairID, keyAlgorithm, keySize)
	case crypto.AlgorithmRSA:
		return s.uploadRSAKeyPair(ctx, userID, keyPairID, keyAlgorithm, keySize)
	default:
		return nil, fmt.Errorf("unsupported algorithm: %s", keyAlgorithm)
	}
}

// Helper function for generating and uploading an AES key
func (s *cryptoKeyUploadService) uploadAESKey(ctx context.Context, userID, keyPairID, keyAlgorithm string, keySize uint32) ([]*keys.CryptoKeyMeta, error) {
	var keySizeInBytes int
	switch keySize {
	case 128:
		keySizeInBytes = crypto.AESKeySize128
	case 192:
		keySizeInBytes = crypto.AESKeySize192
	case 256:
		keySizeInBytes = crypto.AESKeySize256
	default:
		return nil, fmt.Errorf("key size %v not supported for AES", keySize)
	}

	symmetricKeyBytes, err := s.aesProcessor.GenerateKey(keySizeInBytes)
	if err != nil {
		return nil, fmt.Errorf("%w", err)
	}

	pemBytes := pem.EncodeToMemory(&pem.Block{
		Type:  "AES KEY",
		Bytes: symmetricKeyBytes,
	})

	keyType := crypto.KeyTypeSymmetric
	cryptoKeyMeta, err := s.vaultConnector.Upload(ctx, pemBytes, userID, keyPairID, keyType, keyAlgorithm, keySize)
	if err != nil {
		return nil, fmt.Errorf("%w", err)
	}

	if err := s.cryptoKeyRepo.Create(ctx, cryptoKeyMeta); err != nil {
		return nil, fmt.Errorf("%w", err)
	}

	return []*keys.CryptoKeyMeta{cryptoKeyMeta}, nil
}

// Helper function for generating and uploading an RSA key pair (private and public)
func (s *cryptoKeyUploadService) uploadRSAKeyPair(ctx context.Context, userID, keyPairID, keyAlgorithm string, keySize uint32) ([]*keys.CryptoKeyMeta, error) {
	var keyMetas []*keys.CryptoKeyMeta

	privateKey, publicKey, err := s.rsaProcessor.GenerateKeys(int(keySize))
	if err != nil {
		return nil, fmt.Errorf("%w", err)
	}

	// Upload Private Key
	privateKeyPem, err := s.rsaProcessor.EncodePrivateKey(privateKey)
	if err != nil {
		return nil, fmt.Errorf("failed to encode private key: %w", err)
	}
	keyType := crypto.KeyTypePrivate
	cryptoKeyMeta, err := s.vaultConnector.Upload(ctx, privateKeyPem, userID, keyPairID, keyType, keyAlgorithm, keySize)
	if err != nil {
		return nil, fmt.Errorf("%w", err)
	}

	if err := s.cryptoKeyRepo.Create(ctx, cryptoKeyMeta); err != nil {
		return nil, fmt.Errorf("%w", err)
	}

	keyMetas = append(keyMetas, cryptoKeyMeta)

	// Upload Public Key
	publicKeyPem, err := s.rsaProcessor.EncodePublicKey(publicKey)
	if err != nil {
		return nil, fmt.Errorf("failed to encode public key: %w", err)
	}
	keyType = crypto.KeyTypePublic
	cryptoKeyMeta, err = s.vaultConnector.Upload(ctx, publicKeyPem, userID, keyPairID, keyType, keyAlgorithm, keySize)
	if err != nil {
		return nil, fmt.Errorf("%w", err)
	}

	if err := s.cryptoKeyRepo.Create(ctx, cryptoKeyMeta); err != nil {
		return nil, fmt.Errorf("%w", err)
	}

	keyMetas = append(keyMetas, cryptoKeyMeta)
	return keyMetas, nil
}

// cryptoKeyMetadataService implements the CryptoKeyMetadataService interface to manage cryptographic key metadata.
type cryptoKeyMetadataService struct {
	vaultConnector keys.VaultConnector
	cryptoKeyRepo  keys.CryptoKeyRepository
	logger         logger.Logger
}

// NewCryptoKeyMetadataService creates a new cryptoKeyMetadataService instance
func NewCryptoKeyMetadataService(vaultConnector keys.VaultConnector, cryptoKeyRepo keys.CryptoKeyRepository, logger logger.Logger) (keys.CryptoKeyMetadataService, error) {
	return &cryptoKeyMetadataService{
		vaultConnector: vaultConnector,
		cryptoKeyRepo:  cryptoKeyRepo,
		logger:         logger,
	}, nil
}

// List retrieves all cryptographic key metadata based on a query.
func (s *cryptoKeyMetadataService) List(ctx context.Context, query *keys.CryptoKeyQuery) ([]*keys.CryptoKeyMeta, error) {
	cryptoKeyMetas, err := s.cryptoKeyRepo.List(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("%w", err)
	}

	return cryptoKeyMetas, nil
}

// GetByID retrieves the metadata of a cryptographic key by its ID.
func (s *cryptoKeyMetadataService) GetByID(ctx context.Context, keyID string) (*keys.CryptoKeyMeta, error) {
	keyMeta, err := s.cryptoKeyRepo.GetByID(ctx, keyID)
	if err != nil {
		return nil, fmt.Errorf("%w", err)
	}

	return keyMeta, nil
}

// DeleteByID deletes a cryptographic key's material and metadata by its ID.
func (s *cryptoKeyMetadataService) DeleteByID(ctx context.Context, keyID string) error {
	keyMeta, err := s.GetByID(ctx, keyID)
	if err != nil {
		return fmt.Errorf("failed to get key metadata: %w", err)
	}

	err = s.vaultConnector.Delete(ctx, keyID, keyMeta.KeyPairID, keyMeta.Type)
	if err != nil {
		return fmt.Errorf("failed to delete key from vault: %w", err)
	}

	err = s.cryptoKeyRepo.DeleteByID(ctx, keyID)
	if err != nil {
		return fmt.Errorf("failed to delete key from database: %w", err)
	}
	return nil
}

// cryptoKeyDownloadService implements the CryptoKeyDownloadService interface to handle the download of cryptographic keys.
type cryptoKeyDownloadService struct {
	vaultConnector keys.VaultConnector
	cryptoKeyRepo  keys.CryptoKeyRepository
	logger         logger.Logger
}

// NewCryptoKeyDownloadService creates a new cryptoKeyDownloadService instance
func NewCryptoKeyDownloadService(vaultConnector keys.VaultConnector, cryptoKeyRepo keys.CryptoKeyRepository, logger logger.Logger) (keys.CryptoKeyDownloadService, error) {
	return &cryptoKeyDownloadService{
		vaultConnector: vaultConnector,
		cryptoKeyRepo:  cryptoKeyRepo,
		logger:         logger,
	}, nil
}

// DownloadByID retrieves a cryptographic key's PEM content by its ID.
func (s *cryptoKeyDownloadService) DownloadByID(ctx context.Context, keyID string) ([]byte, error) {
	keyMeta, err := s.cryptoKeyRepo.GetByID(ctx, keyID)
	if err != nil {
		return nil, fmt.Errorf("%w", err)
	}

	pemBytes, err := s.vaultConnector.Download(ctx, keyMeta.ID, keyMeta.KeyPairID, keyMeta.Type)
	if err != nil {
		return nil, fmt.Errorf("%w", err)
	}

	return pemBytes, nil
}
