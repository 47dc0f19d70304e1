package commands

import (
	"crypto/rsa"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"secure_message_service/internal/domain/crypto"
	"secure_message_service/internal/domain/messages"
	"secure_message_service/internal/infrastructure/cryptography"
	"secure_message_service/internal/pkg/logger"
)

// MessageCommandHandler encapsulates logic for hybrid secure message
// operations via CLI.
type MessageCommandHandler struct {
	hybridProcessor messages.HybridProcessor
	rsaProcessor    crypto.RSAProcessor
	logger          logger.Logger
}

// NewMessageCommandHandler initializes and returns a MessageCommandHandler
// instance with configured logger and processors.
func NewMessageCommandHandler() (*MessageCommandHandler, error) {
	loggerInstance, err := setupLogger()
	if err != nil {
		return nil, fmt.Errorf("failed to setup logger: %w", err)
	}

	aesProcessor, err := cryptography.NewAESProcessor(loggerInstance)
	if err != nil {
		return nil, fmt.Errorf("failed to create AES processor: %w", err)
	}

	rsaProcessor, err := cryptography.NewRSAProcessor(loggerInstance)
	if err != nil {
		return nil, fmt.Errorf("failed to create RSA processor: %w", err)
	}

	hybridProcessor, err := cryptography.NewHybridProcessor(aesProcessor, rsaProcessor, loggerInstance)
	if err != nil {
		return nil, fmt.Errorf("failed to create hybrid processor: %w", err)
	}

	return &MessageCommandHandler{
		hybridProcessor: hybridProcessor,
		rsaProcessor:    rsaProcessor,
		logger:          loggerInstance,
	}, nil
}

// EncryptMessageCmd encrypts a file into a JSON secure message for a recipient
// public key, optionally signing the payload with a sender private key
func (commandHandler *MessageCommandHandler) EncryptMessageCmd(cmd *cobra.Command, _ []string) {
	inputFilePath, err := cmd.Flags().GetString("input-file")
	if err != nil {
		commandHandler.logger.Error("invalid input-file flag: %v", err)
		return
	}
	outputFilePath, err := cmd.Flags().GetString("output-file")
	if err != nil {
		commandHandler.logger.Error("invalid output-file flag: %v", err)
		return
	}
	publicKeyPath, err := cmd.Flags().GetString("public-key")
	if err != nil {
		commandHandler.logger.Error("invalid public-key flag: %v", err)
		return
	}
	signKeyPath, err := cmd.Flags().GetString("sign-key")
	if err != nil {
		commandHandler.logger.Error("invalid sign-key flag: %v", err)
		return
	}

	recipientPublicKey, err := commandHandler.rsaProcessor.ReadPublicKey(publicKeyPath)
	if err != nil {
		commandHandler.logger.Error("%v", err)
		return
	}

	var senderPrivateKey *rsa.PrivateKey
	if signKeyPath != "" {
		senderPrivateKey, err = commandHandler.rsaProcessor.ReadPrivateKey(signKeyPath)
		if err != nil {
			commandHandler.logger.Error("%v", err)
			return
		}
	}

	plainText, err := os.ReadFile(filepath.Clean(inputFilePath))
	if err != nil {
		commandHandler.logger.Error("%v", err)
		return
	}

	secureMessage, err := commandHandler.hybridProcessor.Encrypt(plainText, recipientPublicKey, senderPrivateKey)
	if err != nil {
		commandHandler.logger.Error("%v", err)
		return
	}

	messageBytes, err := secureMessage.Marshal()
	if err != nil {
		commandHandler.logger.Error("%v", err)
		return
	}

	err = os.WriteFile(outputFilePath, messageBytes, 0600)
	if err != nil {
		commandHandler.logger.Error("%v", err)
		return
	}

	commandHandler.logger.Info("Secure message saved to ", outputFilePath)
}

// DecryptMessageCmd decrypts a JSON secure message with a recipient private
// key, optionally verifying the payload signature with a sender public key
func (commandHandler *MessageCommandHandler) DecryptMessageCmd(cmd *cobra.Command, _ []string) {
	inputFilePath, err := cmd.Flags().GetString("input-file")
	if err != nil {
		commandHandler.logger.Error("invalid input-file flag: %v", err)
		return
	}
	outputFilePath, err := cmd.Flags().GetString("output-file")
	if err != nil {
		commandHandler.logger.Error("invalid output-file flag: %v", err)
		return
	}
	privateKeyPath, err := cmd.Flags().GetString("private-key")
	if err != nil {
		commandHandler.logger.Error("invalid private-key flag: %v", err)
		return
	}
	verifyKeyPath, err := cmd.Flags().GetString("verify-key")
	if err != nil {
		commandHandler.logger.Error("invalid verify-key flag: %v", err)
		return
	}

	recipientPrivateKey, err := commandHandler.rsaProcessor.ReadPrivateKey(privateKeyPath)
	if err != nil {
		commandHandler.logger.Error("%v", err)
		return
	}

	var senderPublicKey *rsa.PublicKey
	if verifyKeyPath != "" {
		senderPublicKey, err = commandHandler.rsaProcessor.ReadPublicKey(verifyKeyPath)
		if err != nil {
			commandHandler.logger.Error("%v", err)
			return
		}
	}

	messageBytes, err := os.ReadFile(filepath.Clean(inputFilePath))
	if err != nil {
		commandHandler.logger.Error("%v", err)
		return
	}

	secureMessage, err := messages.Unmarshal(messageBytes)
	if err != nil {
		commandHandler.logger.Error("%v", err)
		return
	}

	plainText, err := commandHandler.hybridProcessor.Decrypt(secureMessage, recipientPrivateKey, senderPublicKey)
	if err != nil {
		commandHandler.logger.Error("%v", err)
		return
	}

	err = os.WriteFile(outputFilePath, plainText, 0600)
	if err != nil {
		commandHandler.logger.Error("%v", err)
		return
	}

	commandHandler.logger.Info("Decrypted message saved to ", outputFilePath)
}

// InitMessageCommands registers secure message commands
func InitMessageCommands(rootCmd *cobra.Command) error {
	handler, err := NewMessageCommandHandler()
	if err != nil {
		return fmt.Errorf("failed to create message command handler %w", err)
	}

	var encryptMessageCmd = &cobra.Command{
		Use:   "encrypt-message",
		Short: "Encrypt a file into a JSON secure message",
		Run:   handler.EncryptMessageCmd,
	}
	encryptMessageCmd.Flags().StringP("input-file", "", "", "Path to input file which needs to be encrypted")
	encryptMessageCmd.Flags().StringP("output-file", "", "", "Path to secure message output file")
	encryptMessageCmd.Flags().StringP("public-key", "", "", "Path to the recipient RSA public key")
	encryptMessageCmd.Flags().StringP("sign-key", "", "", "Optional path to the sender RSA private key used for signing")
	rootCmd.AddCommand(encryptMessageCmd)

	var decryptMessageCmd = &cobra.Command{
		Use:   "decrypt-message",
		Short: "Decrypt a JSON secure message",
		Run:   handler.DecryptMessageCmd,
	}
	decryptMessageCmd.Flags().StringP("input-file", "", "", "Path to secure message file")
	decryptMessageCmd.Flags().StringP("output-file", "", "", "Path to decrypted output file")
	decryptMessageCmd.Flags().StringP("private-key", "", "", "Path to the recipient RSA private key")
	decryptMessageCmd.Flags().StringP("verify-key", "", "", "Optional path to the sender RSA public key used for verification")
	rootCmd.AddCommand(decryptMessageCmd)

	return nil
}
