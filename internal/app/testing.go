//go:build integration
// +build integration

package app

import (
	"testing"

	"github.com/stretchr/testify/require"

	"secure_message_service/internal/domain/keys"
	"secure_message_service/internal/domain/messages"
	"secure_message_service/internal/infrastructure/connector"
	"secure_message_service/internal/infrastructure/cryptography"
	"secure_message_service/internal/infrastructure/persistence"
	"secure_message_service/internal/pkg/config"
	pkgTesting "secure_message_service/internal/pkg/testing"
)

// TestServices holds fully wired application services for integration tests
type TestServices struct {
	CryptoKeyUploadService      keys.CryptoKeyUploadService
	CryptoKeyMetadataService    keys.CryptoKeyMetadataService
	CryptoKeyDownloadService    keys.CryptoKeyDownloadService
	SecureMessageEncryptService messages.SecureMessageEncryptService
	SecureMessageDecryptService messages.SecureMessageDecryptService
	DBContext                   *persistence.TestContext
}

// SetupTestServices wires application services against an in-memory database
// and a vault rooted in a per-test temp directory
func SetupTestServices(t *testing.T, dbType string) *TestServices {
	t.Helper()

	ctx := persistence.SetupTestDB(t, dbType)
	logger := pkgTesting.SetupTestLogger(t)

	vaultSettings := &config.KeyVaultSettings{RootDir: t.TempDir()}
	vaultConnector, err := connector.NewFileVaultConnector(vaultSettings, logger)
	require.NoError(t, err, "Failed to create vault connector")

	aesProcessor, err := cryptography.NewAESProcessor(logger)
	require.NoError(t, err, "Failed to create AES processor")

	rsaProcessor, err := cryptography.NewRSAProcessor(logger)
	require.NoError(t, err, "Failed to create RSA processor")

	hybridProcessor, err := cryptography.NewHybridProcessor(aesProcessor, rsaProcessor, logger)
	require.NoError(t, err, "Failed to create hybrid processor")

	cryptoKeyUploadService, err := NewCryptoKeyUploadService(vaultConnector, ctx.CryptoKeyRepo, aesProcessor, rsaProcessor, logger)
	require.NoError(t, err, "Failed to create crypto key upload service")

	cryptoKeyMetadataService, err := NewCryptoKeyMetadataService(vaultConnector, ctx.CryptoKeyRepo, logger)
	require.NoError(t, err, "Failed to create crypto key metadata service")

	cryptoKeyDownloadService, err := NewCryptoKeyDownloadService(vaultConnector, ctx.CryptoKeyRepo, logger)
	require.NoError(t, err, "Failed to create crypto key download service")

	secureMessageEncryptService, err := NewSecureMessageEncryptService(cryptoKeyDownloadService, ctx.CryptoKeyRepo, hybridProcessor, rsaProcessor, logger)
	require.NoError(t, err, "Failed to create secure message encrypt service")

	secureMessageDecryptService, err := NewSecureMessageDecryptService(cryptoKeyDownloadService, ctx.CryptoKeyRepo, hybridProcessor, rsaProcessor, logger)
	require.NoError(t, err, "Failed to create secure message decrypt service")

	return &TestServices{
		CryptoKeyUploadService:      cryptoKeyUploadService,
		CryptoKeyMetadataService:    cryptoKeyMetadataService,
		CryptoKeyDownloadService:    cryptoKeyDownloadService,
		SecureMessageEncryptService: secureMessageEncryptService,
		SecureMessageDecryptService: secureMessageDecryptService,
		DBContext:                   ctx,
	}
}
