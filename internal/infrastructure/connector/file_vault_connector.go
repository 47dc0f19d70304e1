// Package connector provides implementations of the key vault storage
// contract. The current implementation is a local filesystem vault writing
// one PEM file per key; it may be replaced with a cloud key management
// system without touching the application services.
package connector

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"

	"secure_message_service/internal/domain/keys"
	"secure_message_service/internal/pkg/config"
	"secure_message_service/internal/pkg/logger"
)

// fileVaultConnector stores key material as PEM files under
// <rootDir>/<keyPairID>/<keyID>-<keyType>.pem. Writing the file once and
// letting both platforms read it replaces the old practice of scraping
// generated keys out of test logs.
type fileVaultConnector struct {
	rootDir string
	logger  logger.Logger
}

// NewFileVaultConnector creates a vault connector rooted at the configured
// directory, creating it when missing.
func NewFileVaultConnector(settings *config.KeyVaultSettings, logger logger.Logger) (keys.VaultConnector, error) {
	if err := settings.Validate(); err != nil {
		return nil, fmt.Errorf("invalid key vault settings: %w", err)
	}

	if err := os.MkdirAll(settings.RootDir, 0700); err != nil {
		return nil, fmt.Errorf("failed to create key vault directory: %w", err)
	}

	return &fileVaultConnector{
		rootDir: settings.RootDir,
		logger:  logger,
	}, nil
}

// Upload stores the PEM bytes of a single key and returns its metadata.
func (v *fileVaultConnector) Upload(ctx context.Context, pemBytes []byte, userID, keyPairID, keyType, keyAlgorithm string, keySize uint32) (*keys.CryptoKeyMeta, error) {
	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("upload canceled: %w", err)
	}

	keyMeta := &keys.CryptoKeyMeta{
		ID:              uuid.New().String(),
		KeyPairID:       keyPairID,
		Algorithm:       keyAlgorithm,
		KeySize:         keySize,
		Type:            keyType,
		DateTimeCreated: time.Now(),
		UserID:          userID,
	}
	if err := keyMeta.Validate(); err != nil {
		return nil, fmt.Errorf("validation error: %w", err)
	}

	dir := filepath.Join(v.rootDir, keyPairID)
	if err := os.MkdirAll(dir, 0700); err != nil {
		return nil, fmt.Errorf("failed to create key pair directory: %w", err)
	}

	if err := os.WriteFile(v.keyPath(keyMeta.ID, keyPairID, keyType), pemBytes, 0600); err != nil {
		return nil, fmt.Errorf("failed to write key file: %w", err)
	}

	v.logger.Info("Stored ", keyType, " key with id ", keyMeta.ID)
	return keyMeta, nil
}

// Download retrieves a key's PEM content by its IDs and type.
func (v *fileVaultConnector) Download(ctx context.Context, keyID, keyPairID, keyType string) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("download canceled: %w", err)
	}

	pemBytes, err := os.ReadFile(v.keyPath(keyID, keyPairID, keyType))
	if err != nil {
		return nil, fmt.Errorf("failed to read key file: %w", err)
	}

	return pemBytes, nil
}

// Delete deletes a key from vault storage by its IDs and type.
func (v *fileVaultConnector) Delete(ctx context.Context, keyID, keyPairID, keyType string) error {
	if err := ctx.Err(); err != nil {
		return fmt.Errorf("delete canceled: %w", err)
	}

	if err := os.Remove(v.keyPath(keyID, keyPairID, keyType)); err != nil {
		return fmt.Errorf("failed to delete key file: %w", err)
	}

	// Drop the key pair directory once it is empty; best effort.
	_ = os.Remove(filepath.Join(v.rootDir, keyPairID))

	v.logger.Info("Deleted ", keyType, " key with id ", keyID)
	return nil
}

func (v *fileVaultConnector) keyPath(keyID, keyPairID, keyType string) string {
	return filepath.Join(v.rootDir, keyPairID, fmt.Sprintf("%s-%s.pem", keyID, keyType))
}
