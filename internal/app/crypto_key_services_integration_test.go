//go:build integration
// +build integration

package app

import (
	"context"
	"encoding/pem"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"secure_message_service/internal/domain/keys"
	"secure_message_service/internal/pkg/config"
)

func TestCryptoKeyUploadService_Upload(t *testing.T) {
	tests := []struct {
		name             string
		algorithm        string
		keySize          uint32
		expectedKeyCount int
		errContains      string
	}{
		{"AES 128", "AES", 128, 1, ""},
		{"AES 192", "AES", 192, 1, ""},
		{"AES 256", "AES", 256, 1, ""},
		{"AES invalid size", "AES", 100, 0, "not supported for AES"},
		{"RSA 2048", "RSA", 2048, 2, ""},
		{"RSA too small", "RSA", 1024, 0, ""},
		{"Unsupported algorithm", "ECDSA", 256, 0, "unsupported algorithm"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			services := SetupTestServices(t, config.SqliteDbType)
			userID := uuid.NewString()

			keyMetas, err := services.CryptoKeyUploadService.Upload(context.Background(), userID, tt.algorithm, tt.keySize)
			if tt.expectedKeyCount == 0 {
				require.Error(t, err)
				if tt.errContains != "" {
					assert.Contains(t, err.Error(), tt.errContains)
				}
				return
			}

			require.NoError(t, err)
			require.Len(t, keyMetas, tt.expectedKeyCount)
			for _, keyMeta := range keyMetas {
				assert.Equal(t, tt.algorithm, keyMeta.Algorithm)
				assert.Equal(t, tt.keySize, keyMeta.KeySize)
				assert.Equal(t, userID, keyMeta.UserID)

				stored, err := services.CryptoKeyMetadataService.GetByID(context.Background(), keyMeta.ID)
				require.NoError(t, err)
				assert.Equal(t, keyMeta.ID, stored.ID)
			}
		})
	}
}

func TestCryptoKeyUploadService_Upload_RSAKeyPairSharesKeyPairID(t *testing.T) {
	services := SetupTestServices(t, config.SqliteDbType)
	userID := uuid.NewString()

	keyMetas, err := services.CryptoKeyUploadService.Upload(context.Background(), userID, "RSA", 2048)
	require.NoError(t, err)
	require.Len(t, keyMetas, 2)

	assert.Equal(t, "private", keyMetas[0].Type)
	assert.Equal(t, "public", keyMetas[1].Type)
	assert.Equal(t, keyMetas[0].KeyPairID, keyMetas[1].KeyPairID)
	assert.NotEqual(t, keyMetas[0].ID, keyMetas[1].ID)
}

func TestCryptoKeyMetadataService_List(t *testing.T) {
	services := SetupTestServices(t, config.SqliteDbType)
	userID := uuid.NewString()

	_, err := services.CryptoKeyUploadService.Upload(context.Background(), userID, "RSA", 2048)
	require.NoError(t, err)
	_, err = services.CryptoKeyUploadService.Upload(context.Background(), userID, "AES", 256)
	require.NoError(t, err)

	query := keys.NewCryptoKeyQuery()
	keyMetas, err := services.CryptoKeyMetadataService.List(context.Background(), query)
	require.NoError(t, err)
	assert.Len(t, keyMetas, 3)

	query = keys.NewCryptoKeyQuery()
	query.Algorithm = "AES"
	keyMetas, err = services.CryptoKeyMetadataService.List(context.Background(), query)
	require.NoError(t, err)
	require.Len(t, keyMetas, 1)
	assert.Equal(t, "symmetric", keyMetas[0].Type)
}

func TestCryptoKeyMetadataService_DeleteByID(t *testing.T) {
	services := SetupTestServices(t, config.SqliteDbType)
	userID := uuid.NewString()

	keyMetas, err := services.CryptoKeyUploadService.Upload(context.Background(), userID, "AES", 256)
	require.NoError(t, err)
	require.Len(t, keyMetas, 1)
	keyID := keyMetas[0].ID

	err = services.CryptoKeyMetadataService.DeleteByID(context.Background(), keyID)
	require.NoError(t, err)

	_, err = services.CryptoKeyMetadataService.GetByID(context.Background(), keyID)
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "not found")

	_, err = services.CryptoKeyDownloadService.DownloadByID(context.Background(), keyID)
	assert.Error(t, err)
}

func TestCryptoKeyMetadataService_DeleteByID_NotFound(t *testing.T) {
	services := SetupTestServices(t, config.SqliteDbType)

	err := services.CryptoKeyMetadataService.DeleteByID(context.Background(), uuid.NewString())
	assert.Error(t, err)
}

func TestCryptoKeyDownloadService_DownloadByID(t *testing.T) {
	services := SetupTestServices(t, config.SqliteDbType)
	userID := uuid.NewString()

	keyMetas, err := services.CryptoKeyUploadService.Upload(context.Background(), userID, "RSA", 2048)
	require.NoError(t, err)
	require.Len(t, keyMetas, 2)

	for _, keyMeta := range keyMetas {
		pemBytes, err := services.CryptoKeyDownloadService.DownloadByID(context.Background(), keyMeta.ID)
		require.NoError(t, err)

		block, _ := pem.Decode(pemBytes)
		require.NotNil(t, block, "downloaded key must be PEM encoded")
	}
}

func TestCryptoKeyDownloadService_DownloadByID_NotFound(t *testing.T) {
	services := SetupTestServices(t, config.SqliteDbType)

	pemBytes, err := services.CryptoKeyDownloadService.DownloadByID(context.Background(), uuid.NewString())
	assert.Nil(t, pemBytes)
	assert.Error(t, err)
}
