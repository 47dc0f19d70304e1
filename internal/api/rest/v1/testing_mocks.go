//go:build unit
// +build unit

package v1

import (
	"context"

	"github.com/stretchr/testify/mock"

	"secure_message_service/internal/domain/keys"
	"secure_message_service/internal/domain/messages"
)

// MockCryptoKeyUploadService is a mock implementation of CryptoKeyUploadService
type MockCryptoKeyUploadService struct {
	mock.Mock
}

func (m *MockCryptoKeyUploadService) Upload(ctx context.Context, userID, keyAlgorithm string, keySize uint32) ([]*keys.CryptoKeyMeta, error) {
	args := m.Called(ctx, userID, keyAlgorithm, keySize)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*keys.CryptoKeyMeta), args.Error(1)
}

// MockCryptoKeyMetadataService is a mock implementation of CryptoKeyMetadataService
type MockCryptoKeyMetadataService struct {
	mock.Mock
}

func (m *MockCryptoKeyMetadataService) List(ctx context.Context, query *keys.CryptoKeyQuery) ([]*keys.CryptoKeyMeta, error) {
	args := m.Called(ctx, query)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*keys.CryptoKeyMeta), args.Error(1)
}

func (m *MockCryptoKeyMetadataService) GetByID(ctx context.Context, keyID string) (*keys.CryptoKeyMeta, error) {
	args := m.Called(ctx, keyID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*keys.CryptoKeyMeta), args.Error(1)
}

func (m *MockCryptoKeyMetadataService) DeleteByID(ctx context.Context, keyID string) error {
	args := m.Called(ctx, keyID)
	return args.Error(0)
}

// MockCryptoKeyDownloadService is a mock implementation of CryptoKeyDownloadService
type MockCryptoKeyDownloadService struct {
	mock.Mock
}

func (m *MockCryptoKeyDownloadService) DownloadByID(ctx context.Context, keyID string) ([]byte, error) {
	args := m.Called(ctx, keyID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]byte), args.Error(1)
}

// MockSecureMessageEncryptService is a mock implementation of SecureMessageEncryptService
type MockSecureMessageEncryptService struct {
	mock.Mock
}

func (m *MockSecureMessageEncryptService) Encrypt(ctx context.Context, plainText []byte, encryptionKeyID string, signKeyID *string) (*messages.SecureMessage, error) {
	args := m.Called(ctx, plainText, encryptionKeyID, signKeyID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*messages.SecureMessage), args.Error(1)
}

// MockSecureMessageDecryptService is a mock implementation of SecureMessageDecryptService
type MockSecureMessageDecryptService struct {
	mock.Mock
}

func (m *MockSecureMessageDecryptService) Decrypt(ctx context.Context, msg *messages.SecureMessage, decryptionKeyID string, verifyKeyID *string) ([]byte, error) {
	args := m.Called(ctx, msg, decryptionKeyID, verifyKeyID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]byte), args.Error(1)
}
