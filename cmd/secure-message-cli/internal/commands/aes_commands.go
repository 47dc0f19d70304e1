package commands

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"secure_message_service/internal/domain/crypto"
	"secure_message_service/internal/infrastructure/cryptography"
	"secure_message_service/internal/pkg/logger"
)

// AESCommandHandler encapsulates logic for handling AES operations via CLI.
type AESCommandHandler struct {
	aesProcessor crypto.AESProcessor
	logger       logger.Logger
}

// NewAESCommandHandler initializes and returns an AESCommandHandler instance with
// configured logger and AES processor.
func NewAESCommandHandler() (*AESCommandHandler, error) {
	loggerInstance, err := setupLogger()
	if err != nil {
		return nil, fmt.Errorf("failed to setup logger: %w", err)
	}

	aesProcessor, err := cryptography.NewAESProcessor(loggerInstance)
	if err != nil {
		return nil, fmt.Errorf("failed to create AES processor: %w", err)
	}

	return &AESCommandHandler{
		aesProcessor: aesProcessor,
		logger:       loggerInstance,
	}, nil
}

// GenerateAESKeyCmd generates an AES key and persists it in a selected directory
func (commandHandler *AESCommandHandler) GenerateAESKeyCmd(cmd *cobra.Command, _ []string) {
	keySize, err := cmd.Flags().GetInt("key-size")
	if err != nil {
		commandHandler.logger.Error("invalid key-size flag ", err)
		return
	}

	keyDir, err := cmd.Flags().GetString("key-dir")
	if err != nil {
		commandHandler.logger.Error("invalid key-dir flag ", err)
		return
	}

	uniqueID := uuid.New()

	secretKey, err := commandHandler.aesProcessor.GenerateKey(keySize)
	if err != nil {
		commandHandler.logger.Error(err)
		return
	}

	keyFilePath := filepath.Join(keyDir, fmt.Sprintf("%s-symmetric-key.bin", uniqueID))
	err = os.WriteFile(keyFilePath, secretKey, 0600)
	if err != nil {
		commandHandler.logger.Error(err)
		return
	}
	commandHandler.logger.Info("AES key saved to ", keyFilePath)
}

// DeriveAESKeyCmd derives an AES key from a passphrase and salt using scrypt
// and persists it in a selected directory
func (commandHandler *AESCommandHandler) DeriveAESKeyCmd(cmd *cobra.Command, _ []string) {
	passphrase, err := cmd.Flags().GetString("passphrase")
	if err != nil {
		commandHandler.logger.Error("invalid passphrase flag ", err)
		return
	}

	salt, err := cmd.Flags().GetString("salt")
	if err != nil {
		commandHandler.logger.Error("invalid salt flag ", err)
		return
	}

	keySize, err := cmd.Flags().GetInt("key-size")
	if err != nil {
		commandHandler.logger.Error("invalid key-size flag ", err)
		return
	}

	keyDir, err := cmd.Flags().GetString("key-dir")
	if err != nil {
		commandHandler.logger.Error("invalid key-dir flag ", err)
		return
	}

	uniqueID := uuid.New()

	secretKey, err := commandHandler.aesProcessor.DeriveKey([]byte(passphrase), []byte(salt), keySize)
	if err != nil {
		commandHandler.logger.Error(err)
		return
	}

	keyFilePath := filepath.Join(keyDir, fmt.Sprintf("%s-symmetric-key.bin", uniqueID))
	err = os.WriteFile(keyFilePath, secretKey, 0600)
	if err != nil {
		commandHandler.logger.Error(err)
		return
	}
	commandHandler.logger.Info("Derived AES key saved to ", keyFilePath)
}

// EncryptAESCmd encrypts a file using AES-GCM with a fresh nonce prepended to
// the ciphertext
func (commandHandler *AESCommandHandler) EncryptAESCmd(cmd *cobra.Command, _ []string) {
	inputFilePath, err := cmd.Flags().GetString("input-file")
	if err != nil {
		commandHandler.logger.Error("invalid input-file flag ", err)
		return
	}
	outputFilePath, err := cmd.Flags().GetString("output-file")
	if err != nil {
		commandHandler.logger.Error("invalid output-file flag ", err)
		return
	}
	symmetricKey, err := cmd.Flags().GetString("symmetric-key")
	if err != nil {
		commandHandler.logger.Error("invalid symmetric-key flag ", err)
		return
	}

	plainText, err := os.ReadFile(filepath.Clean(inputFilePath))
	if err != nil {
		commandHandler.logger.Error(err)
		return
	}

	key, err := os.ReadFile(filepath.Clean(symmetricKey))
	if err != nil {
		commandHandler.logger.Error(err)
		return
	}

	nonce, err := commandHandler.aesProcessor.GenerateNonce()
	if err != nil {
		commandHandler.logger.Error(err)
		return
	}

	cipherText, err := commandHandler.aesProcessor.Encrypt(plainText, key, nonce)
	if err != nil {
		commandHandler.logger.Error(err)
		return
	}

	err = os.WriteFile(outputFilePath, append(nonce, cipherText...), 0600)
	if err != nil {
		commandHandler.logger.Error(err)
		return
	}

	commandHandler.logger.Info("Encrypted data saved to ", outputFilePath)
}

// DecryptAESCmd decrypts a file produced by encrypt-aes, reading the nonce
// from the leading bytes
func (commandHandler *AESCommandHandler) DecryptAESCmd(cmd *cobra.Command, _ []string) {
	inputFilePath, err := cmd.Flags().GetString("input-file")
	if err != nil {
		commandHandler.logger.Error("invalid input-file flag ", err)
		return
	}
	outputFilePath, err := cmd.Flags().GetString("output-file")
	if err != nil {
		commandHandler.logger.Error("invalid output-file flag ", err)
		return
	}
	symmetricKey, err := cmd.Flags().GetString("symmetric-key")
	if err != nil {
		commandHandler.logger.Error("invalid symmetric-key flag ", err)
		return
	}

	key, err := os.ReadFile(filepath.Clean(symmetricKey))
	if err != nil {
		commandHandler.logger.Error(err)
		return
	}

	encryptedData, err := os.ReadFile(filepath.Clean(inputFilePath))
	if err != nil {
		commandHandler.logger.Error(err)
		return
	}

	if len(encryptedData) < crypto.GCMNonceSize {
		commandHandler.logger.Error("encrypted file too short to contain a nonce")
		return
	}
	nonce := encryptedData[:crypto.GCMNonceSize]
	cipherText := encryptedData[crypto.GCMNonceSize:]

	decryptedData, err := commandHandler.aesProcessor.Decrypt(cipherText, key, nonce)
	if err != nil {
		commandHandler.logger.Error(err)
		return
	}

	err = os.WriteFile(outputFilePath, decryptedData, 0600)
	if err != nil {
		commandHandler.logger.Error(err)
		return
	}

	commandHandler.logger.Info("Decrypted data saved to ", outputFilePath)
}

// InitAESCommands registers AES-related commands
func InitAESCommands(rootCmd *cobra.Command) error {
	handler, err := NewAESCommandHandler()

	if err != nil {
		return fmt.Errorf("failed to create AES command handler %w", err)
	}

	var generateAESKeyCmd = &cobra.Command{
		Use:   "generate-aes-key",
		Short: "Generate an AES key",
		Run:   handler.GenerateAESKeyCmd,
	}
	generateAESKeyCmd.Flags().IntP("key-size", "", 32, "AES key size in bytes (default 32 bytes for AES-256)")
	generateAESKeyCmd.Flags().StringP("key-dir", "", "", "Directory to store the encryption key")
	rootCmd.AddCommand(generateAESKeyCmd)

	var deriveAESKeyCmd = &cobra.Command{
		Use:   "derive-aes-key",
		Short: "Derive an AES key from a passphrase using scrypt",
		Run:   handler.DeriveAESKeyCmd,
	}
	deriveAESKeyCmd.Flags().StringP("passphrase", "", "", "Passphrase to derive the key from")
	deriveAESKeyCmd.Flags().StringP("salt", "", "", "Salt for the key derivation")
	deriveAESKeyCmd.Flags().IntP("key-size", "", 32, "AES key size in bytes (default 32 bytes for AES-256)")
	deriveAESKeyCmd.Flags().StringP("key-dir", "", "", "Directory to store the derived key")
	rootCmd.AddCommand(deriveAESKeyCmd)

	var encryptAESFileCmd = &cobra.Command{
		Use:   "encrypt-aes",
		Short: "Encrypt a file using AES-GCM",
		Run:   handler.EncryptAESCmd,
	}
	encryptAESFileCmd.Flags().StringP("input-file", "", "", "Path to input file that needs to be encrypted")
	encryptAESFileCmd.Flags().StringP("output-file", "", "", "Path to encrypted output file")
	encryptAESFileCmd.Flags().StringP("symmetric-key", "", "", "Path to the symmetric key")
	rootCmd.AddCommand(encryptAESFileCmd)

	var decryptAESFileCmd = &cobra.Command{
		Use:   "decrypt-aes",
		Short: "Decrypt a file using AES-GCM",
		Run:   handler.DecryptAESCmd,
	}
	decryptAESFileCmd.Flags().StringP("input-file", "", "", "Input encrypted file path")
	decryptAESFileCmd.Flags().StringP("output-file", "", "", "Path to decrypted output file")
	decryptAESFileCmd.Flags().StringP("symmetric-key", "", "", "Path to the symmetric key")
	rootCmd.AddCommand(decryptAESFileCmd)

	return nil
}
