// Package main is the entry point for the secure-message-cli application.
// It initializes the root command and registers the AES, RSA and secure
// message sub-commands, then executes the command-line interface.
package main

import (
	"fmt"
	"log"
	"os"

	commands "secure_message_service/cmd/secure-message-cli/internal/commands"

	"github.com/spf13/cobra"
)

func main() {
	if err := run(); err != nil {
		log.Fatalf("Error: %v", err)
	}
}

func run() error {
	rootCmd := &cobra.Command{
		Use:   "secure-message-cli",
		Short: "Hybrid message encryption CLI tool",
		Long: `secure-message-cli is a command-line tool for hybrid message encryption.
It encrypts payloads with AES-256-GCM, wraps the symmetric key with RSA-OAEP and
optionally signs the payload, producing a portable JSON secure message.
Also supports standalone AES and RSA operations for key generation, file
encryption, signing and verification.`,
	}

	// Initialize all command groups BEFORE executing
	if err := initializeCommands(rootCmd); err != nil {
		return fmt.Errorf("failed to initialize commands: %w", err)
	}

	// Execute root command ONCE after all commands are registered
	if err := rootCmd.Execute(); err != nil {
		return fmt.Errorf("command execution failed: %w", err)
	}

	return nil
}

// initializeCommands registers all command groups with the root command.
func initializeCommands(rootCmd *cobra.Command) error {
	// Register AES commands
	if err := commands.InitAESCommands(rootCmd); err != nil {
		return fmt.Errorf("failed to initialize AES commands: %w", err)
	}

	// Register RSA commands
	if err := commands.InitRSACommands(rootCmd); err != nil {
		return fmt.Errorf("failed to initialize RSA commands: %w", err)
	}

	// Register secure message commands
	if err := commands.InitMessageCommands(rootCmd); err != nil {
		return fmt.Errorf("failed to initialize message commands: %w", err)
	}

	return nil
}

// init sets up any necessary initialization before main runs.
func init() {
	// Set log flags for better error messages
	log.SetFlags(log.Ldate | log.Ltime | log.Lshortfile)

	// Ensure proper exit codes on errors
	log.SetOutput(os.Stderr)
}
