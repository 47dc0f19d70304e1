// Package persistence provides the GORM-based repository implementation for
// cryptographic key metadata and the database connection management for the
// supported backends (sqlite, postgres).
package persistence
