// cmd/secure-message-rest-api/main.go
package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	v1 "secure_message_service/internal/api/rest/v1"
	"secure_message_service/internal/app"
	"secure_message_service/internal/domain/crypto"
	"secure_message_service/internal/domain/keys"
	"secure_message_service/internal/domain/messages"
	"secure_message_service/internal/infrastructure/connector"
	"secure_message_service/internal/infrastructure/cryptography"
	"secure_message_service/internal/infrastructure/persistence"
	"secure_message_service/internal/infrastructure/persistence/models"
	"secure_message_service/internal/pkg/config"
	"secure_message_service/internal/pkg/logger"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Application error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	// Parse configuration
	configPath := os.Getenv("CONFIG_PATH")
	if configPath == "" {
		configPath = "../../configs/rest-app.yaml"
	}

	restConfig, err := config.InitializeRestConfig(configPath)
	if err != nil {
		return fmt.Errorf("failed to initialize config: %w", err)
	}

	// Initialize logger
	if err := logger.InitLogger(&restConfig.Logger); err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}

	log, err := logger.GetLogger()
	if err != nil {
		return fmt.Errorf("failed to get logger: %w", err)
	}

	// Initialize application dependencies
	deps, err := initializeDependencies(restConfig, log)
	if err != nil {
		return fmt.Errorf("failed to initialize dependencies: %w", err)
	}

	// Setup and start server with graceful shutdown
	return startServerWithGracefulShutdown(restConfig, deps, log)
}

// appDependencies holds all initialized application components
type appDependencies struct {
	services   *appServices
	processors *cryptoProcessors
}

type cryptoProcessors struct {
	aes    crypto.AESProcessor
	rsa    crypto.RSAProcessor
	hybrid messages.HybridProcessor
}

type appServices struct {
	cryptoKeyUpload      keys.CryptoKeyUploadService
	cryptoKeyDownload    keys.CryptoKeyDownloadService
	cryptoKeyMetadata    keys.CryptoKeyMetadataService
	secureMessageEncrypt messages.SecureMessageEncryptService
	secureMessageDecrypt messages.SecureMessageDecryptService
}

// initializeDependencies sets up all application components
func initializeDependencies(cfg *config.RestConfig, log logger.Logger) (*appDependencies, error) {
	// Initialize database
	db, err := persistence.NewDBConnection(cfg.Database)
	if err != nil {
		return nil, fmt.Errorf("failed to create db connection: %w", err)
	}

	// Run migrations
	if err := db.AutoMigrate(&models.CryptoKeyModel{}); err != nil {
		return nil, fmt.Errorf("failed to migrate schema: %w", err)
	}
	log.Info("Database migrations completed successfully")

	// Initialize repositories
	cryptoKeyRepo, err := persistence.NewGormCryptoKeyRepository(db, log)
	if err != nil {
		return nil, fmt.Errorf("failed to create crypto key repository: %w", err)
	}

	// Initialize key vault connector
	vaultConnector, err := connector.NewFileVaultConnector(&cfg.KeyVault, log)
	if err != nil {
		return nil, fmt.Errorf("failed to create file vault connector: %w", err)
	}
	log.Info("Key vault connector initialized successfully")

	// Initialize cryptographic processors
	processors, err := initializeCryptoProcessors(log)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize processors: %w", err)
	}

	// Initialize services
	services, err := initializeApplicationServices(vaultConnector, cryptoKeyRepo, processors, log)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize services: %w", err)
	}

	return &appDependencies{
		services:   services,
		processors: processors,
	}, nil
}

// startServerWithGracefulShutdown starts the HTTP server and handles graceful shutdown
func startServerWithGracefulShutdown(cfg *config.RestConfig, deps *appDependencies, log logger.Logger) error {
	// Setup router
	r := gin.Default()

	// Configure CORS
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Authorization"},
		ExposeHeaders:    []string{"Content-Length", "Content-Type"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	// Setup API routes
	v1.SetupRoutes(r,
		deps.services.cryptoKeyUpload,
		deps.services.cryptoKeyDownload,
		deps.services.cryptoKeyMetadata,
		deps.services.secureMessageEncrypt,
		deps.services.secureMessageDecrypt,
	)

	// Create HTTP server
	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           r,
		ReadHeaderTimeout: 10 * time.Second, // Prevent Slowloris attack
	}

	// Channel to listen for errors from the server
	serverErrors := make(chan error, 1)

	// Start server in goroutine
	go func() {
		log.Info("Starting server on port ", cfg.Port)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serverErrors <- fmt.Errorf("server failed to start: %w", err)
		}
	}()

	// Channel to listen for interrupt signals
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	// Block until we receive a signal or server error
	select {
	case err := <-serverErrors:
		return err
	case sig := <-quit:
		log.Info("Received signal %v, initiating graceful shutdown", sig)
	}

	// Graceful shutdown with timeout
	ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()

	log.Info("Shutting down server...")
	if err := srv.Shutdown(ctx); err != nil {
		return fmt.Errorf("server forced to shutdown: %w", err)
	}

	log.Info("Server stopped gracefully")
	return nil
}

// initializeCryptoProcessors sets up all cryptographic processors
func initializeCryptoProcessors(log logger.Logger) (*cryptoProcessors, error) {
	aesProcessor, err := cryptography.NewAESProcessor(log)
	if err != nil {
		return nil, fmt.Errorf("failed to create AES processor: %w", err)
	}

	rsaProcessor, err := cryptography.NewRSAProcessor(log)
	if err != nil {
		return nil, fmt.Errorf("failed to create RSA processor: %w", err)
	}

	hybridProcessor, err := cryptography.NewHybridProcessor(aesProcessor, rsaProcessor, log)
	if err != nil {
		return nil, fmt.Errorf("failed to create hybrid processor: %w", err)
	}

	log.Info("Cryptographic processors initialized successfully")
	return &cryptoProcessors{
		aes:    aesProcessor,
		rsa:    rsaProcessor,
		hybrid: hybridProcessor,
	}, nil
}

// initializeApplicationServices sets up all application services
func initializeApplicationServices(
	vaultConn keys.VaultConnector,
	keyRepo keys.CryptoKeyRepository,
	processors *cryptoProcessors,
	log logger.Logger,
) (*appServices, error) {
	cryptoKeyUploadService, err := app.NewCryptoKeyUploadService(
		vaultConn, keyRepo,
		processors.aes, processors.rsa, log,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create crypto key upload service: %w", err)
	}

	cryptoKeyDownloadService, err := app.NewCryptoKeyDownloadService(vaultConn, keyRepo, log)
	if err != nil {
		return nil, fmt.Errorf("failed to create crypto key download service: %w", err)
	}

	cryptoKeyMetadataService, err := app.NewCryptoKeyMetadataService(vaultConn, keyRepo, log)
	if err != nil {
		return nil, fmt.Errorf("failed to create crypto key metadata service: %w", err)
	}

	secureMessageEncryptService, err := app.NewSecureMessageEncryptService(
		cryptoKeyDownloadService, keyRepo,
		processors.hybrid, processors.rsa, log,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create secure message encrypt service: %w", err)
	}

	secureMessageDecryptService, err := app.NewSecureMessageDecryptService(
		cryptoKeyDownloadService, keyRepo,
		processors.hybrid, processors.rsa, log,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create secure message decrypt service: %w", err)
	}

	log.Info("Application services initialized successfully")
	return &appServices{
		cryptoKeyUpload:      cryptoKeyUploadService,
		cryptoKeyDownload:    cryptoKeyDownloadService,
		cryptoKeyMetadata:    cryptoKeyMetadataService,
		secureMessageEncrypt: secureMessageEncryptService,
		secureMessageDecrypt: secureMessageDecryptService,
	}, nil
}
