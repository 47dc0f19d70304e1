package keys

import (
	"context"
)

// CryptoKeyUploadService defines methods for generating and storing cryptographic keys.
type CryptoKeyUploadService interface {
	// Upload generates cryptographic key material for the requested algorithm,
	// stores it in the vault and persists its metadata.
	// It returns a slice of CryptoKeyMeta and any error encountered during the upload process.
	Upload(ctx context.Context, userID, keyAlgorithm string, keySize uint32) ([]*CryptoKeyMeta, error)
}

// CryptoKeyMetadataService defines methods for managing cryptographic key metadata and deleting keys.
type CryptoKeyMetadataService interface {
	// List retrieves all cryptographic keys metadata considering a query filter when set.
	// It returns a slice of CryptoKeyMeta and any error encountered during the retrieval process.
	List(ctx context.Context, query *CryptoKeyQuery) ([]*CryptoKeyMeta, error)

	// GetByID retrieves the metadata of a cryptographic key by its unique ID.
	// It returns the CryptoKeyMeta and any error encountered during the retrieval process.
	GetByID(ctx context.Context, keyID string) (*CryptoKeyMeta, error)

	// DeleteByID deletes a cryptographic key and its associated metadata by ID.
	// It returns any error encountered during the deletion process.
	DeleteByID(ctx context.Context, keyID string) error
}

// CryptoKeyDownloadService defines methods for downloading cryptographic keys.
type CryptoKeyDownloadService interface {
	// DownloadByID retrieves a cryptographic key's PEM content by its ID.
	// It returns the key data as a byte slice and any error encountered during the download process.
	DownloadByID(ctx context.Context, keyID string) ([]byte, error)
}

// CryptoKeyRepository defines the interface for CryptoKey-related operations
type CryptoKeyRepository interface {
	Create(ctx context.Context, key *CryptoKeyMeta) error
	List(ctx context.Context, query *CryptoKeyQuery) ([]*CryptoKeyMeta, error)
	GetByID(ctx context.Context, keyID string) (*CryptoKeyMeta, error)
	UpdateByID(ctx context.Context, key *CryptoKeyMeta) error
	DeleteByID(ctx context.Context, keyID string) error
}

// VaultConnector is an interface for interacting with key material storage.
// The current implementation writes PEM files once under a configured root
// directory, a structured handoff both platforms can consume directly. It may
// be replaced with a cloud key management system in the future.
type VaultConnector interface {
	// Upload stores the PEM bytes of a single key
	// and returns the metadata for the stored key.
	Upload(ctx context.Context, pemBytes []byte, userID, keyPairID, keyType, keyAlgorithm string, keySize uint32) (*CryptoKeyMeta, error)

	// Download retrieves a key's PEM content by its IDs and type and returns the data as a byte slice.
	Download(ctx context.Context, keyID, keyPairID, keyType string) ([]byte, error)

	// Delete deletes a key from vault storage by its IDs and type and returns any error encountered.
	Delete(ctx context.Context, keyID, keyPairID, keyType string) error
}
