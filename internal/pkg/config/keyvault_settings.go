package config

import (
	"fmt"

	"github.com/go-playground/validator/v10"
)

// KeyVaultSettings holds the settings for the file-based key vault. Key
// material is written once as PEM files under the root directory so both
// platforms consume the same structured handoff instead of scraping logs.
type KeyVaultSettings struct {
	RootDir string `mapstructure:"root_dir" validate:"required"`
}

// Validate checks that all fields in KeyVaultSettings are valid
func (s *KeyVaultSettings) Validate() error {
	validate := validator.New()

	if err := validate.Struct(s); err != nil {
		return fmt.Errorf("validation failed for KeyVaultSettings: %w", err)
	}

	return nil
}
