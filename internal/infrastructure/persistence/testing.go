//go:build integration
// +build integration

package persistence

import (
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"secure_message_service/internal/domain/keys"
	"secure_message_service/internal/infrastructure/persistence/models"
	"secure_message_service/internal/pkg/config"
	pkgTesting "secure_message_service/internal/pkg/testing"
)

// Test constants
const (
	TestKeySize256  = 256
	TestKeySize2048 = 2048

	TestKeyTypePublic    = "public"
	TestKeyTypePrivate   = "private"
	TestKeyTypeSymmetric = "symmetric"

	TestAlgorithmAES = "AES"
	TestAlgorithmRSA = "RSA"
)

// TestContext holds test database and repositories
type TestContext struct {
	DB            *gorm.DB
	CryptoKeyRepo keys.CryptoKeyRepository
}

// SetupTestDB initializes test database with automatic cleanup
func SetupTestDB(t *testing.T, dbType string) *TestContext {
	t.Helper()

	var settings config.DatabaseSettings
	var cleanupFunc func()

	switch dbType {
	case config.SqliteDbType:
		settings = config.DatabaseSettings{
			Type: config.SqliteDbType,
			DSN:  ":memory:",
		}
		cleanupFunc = func() {
			// SQLite in-memory cleanup is automatic
		}

	case config.PostgresDbType:
		uniqueDBName := "test_" + strings.ReplaceAll(uuid.NewString(), "-", "")[:16]
		settings = config.DatabaseSettings{
			Type: config.PostgresDbType,
			DSN:  "user=postgres password=postgres host=localhost port=5432 sslmode=disable",
			Name: uniqueDBName,
		}
		cleanupFunc = func() {
			adminDSN := "user=postgres password=postgres host=localhost port=5432 dbname=postgres sslmode=disable"
			_ = DropDatabase(adminDSN, uniqueDBName)
		}

	default:
		t.Fatalf("Unsupported database type: %s", dbType)
	}

	// Create connection
	db, err := NewDBConnection(settings)
	require.NoError(t, err, "Failed to create database connection")

	// Register cleanup
	t.Cleanup(func() {
		_ = CloseDB(db)
		cleanupFunc()
	})

	// Migrate schema
	err = db.AutoMigrate(&models.CryptoKeyModel{})
	require.NoError(t, err, "Failed to migrate schema")

	// Create repositories
	logger := pkgTesting.SetupTestLogger(t)

	cryptoKeyRepo, err := NewGormCryptoKeyRepository(db, logger)
	require.NoError(t, err, "Failed to create crypto key repository")

	return &TestContext{
		DB:            db,
		CryptoKeyRepo: cryptoKeyRepo,
	}
}

// CreateTestKey creates a test crypto key with default values
func CreateTestKey(t *testing.T, userID string) *keys.CryptoKeyMeta {
	t.Helper()

	return &keys.CryptoKeyMeta{
		ID:              uuid.NewString(),
		KeyPairID:       uuid.NewString(),
		Type:            TestKeyTypePublic,
		Algorithm:       TestAlgorithmRSA,
		KeySize:         TestKeySize2048,
		DateTimeCreated: time.Now(),
		UserID:          userID,
	}
}

// CreateTestKeyWithOptions creates a test key with custom options
func CreateTestKeyWithOptions(t *testing.T, userID, keyType, algorithm string, keySize int) *keys.CryptoKeyMeta {
	t.Helper()

	return &keys.CryptoKeyMeta{
		ID:              uuid.NewString(),
		KeyPairID:       uuid.NewString(),
		Type:            keyType,
		Algorithm:       algorithm,
		KeySize:         uint32(keySize),
		DateTimeCreated: time.Now(),
		UserID:          userID,
	}
}
