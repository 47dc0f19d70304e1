package v1

import (
	"github.com/gin-gonic/gin"

	"secure_message_service/internal/domain/keys"
	"secure_message_service/internal/domain/messages"
)

// SetupRoutes sets up all the API routes for version 1.
func SetupRoutes(r *gin.Engine,
	cryptoKeyUploadService keys.CryptoKeyUploadService,
	cryptoKeyDownloadService keys.CryptoKeyDownloadService,
	cryptoKeyMetadataService keys.CryptoKeyMetadataService,
	secureMessageEncryptService messages.SecureMessageEncryptService,
	secureMessageDecryptService messages.SecureMessageDecryptService) {

	v1 := r.Group(BasePath) // lookup in version file

	// Keys Routes
	keyHandler := NewKeyHandler(cryptoKeyUploadService, cryptoKeyDownloadService, cryptoKeyMetadataService)
	v1.POST("/keys", keyHandler.UploadKeys)
	v1.GET("/keys", keyHandler.ListMetadata)
	v1.GET("/keys/:id", keyHandler.GetMetadataByID)
	v1.GET("/keys/:id/file", keyHandler.DownloadByID)
	v1.DELETE("/keys/:id", keyHandler.DeleteByID)

	// Messages Routes
	messageHandler := NewMessageHandler(secureMessageEncryptService, secureMessageDecryptService)
	v1.POST("/messages/encrypt", messageHandler.EncryptMessage)
	v1.POST("/messages/decrypt", messageHandler.DecryptMessage)
}
