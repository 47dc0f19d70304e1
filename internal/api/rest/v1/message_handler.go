package v1

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"secure_message_service/internal/domain/crypto"
	"secure_message_service/internal/domain/messages"
)

// MessageHandler defines the interface for handling secure message operations
type MessageHandler interface {
	EncryptMessage(ctx *gin.Context)
	DecryptMessage(ctx *gin.Context)
}

// MessageHandler struct holds the services
type messageHandler struct {
	secureMessageEncryptService messages.SecureMessageEncryptService
	secureMessageDecryptService messages.SecureMessageDecryptService
}

// NewMessageHandler creates a new MessageHandler
func NewMessageHandler(secureMessageEncryptService messages.SecureMessageEncryptService, secureMessageDecryptService messages.SecureMessageDecryptService) MessageHandler {
	return &messageHandler{
		secureMessageEncryptService: secureMessageEncryptService,
		secureMessageDecryptService: secureMessageDecryptService,
	}
}

// EncryptMessage handles the POST request to encrypt a payload for a stored recipient key
// @Summary Encrypt a payload into a secure message
// @Description Encrypt the payload with AES-256-GCM under a fresh key, wrap the key with RSA-OAEP for the stored recipient key and optionally sign the payload.
// @Tags Message
// @Accept json
// @Produce json
// @Param requestBody body EncryptMessageRequest true "Message Encryption Data"
// @Success 200 {object} SecureMessageResponse
// @Failure 400 {object} ErrorResponse
// @Router /messages/encrypt [post]
func (handler *messageHandler) EncryptMessage(ctx *gin.Context) {

	var request EncryptMessageRequest

	if err := ctx.ShouldBindJSON(&request); err != nil {
		var errorResponse ErrorResponse
		errorResponse.Message = fmt.Sprintf("invalid message data: %v", err.Error())
		ctx.JSON(http.StatusBadRequest, errorResponse)
		return
	}

	if err := request.Validate(); err != nil {
		var errorResponse ErrorResponse
		errorResponse.Message = fmt.Sprintf("validation failed: %v", err.Error())
		ctx.JSON(http.StatusBadRequest, errorResponse)
		return
	}

	secureMessage, err := handler.secureMessageEncryptService.Encrypt(ctx, []byte(request.PlainText), request.EncryptionKeyID, request.SignKeyID)
	if err != nil {
		var errorResponse ErrorResponse
		errorResponse.Message = fmt.Sprintf("error encrypting message: %v", err.Error())
		ctx.JSON(http.StatusBadRequest, errorResponse)
		return
	}

	response := SecureMessageResponse{
		Payload:   secureMessage.Payload,
		Key:       secureMessage.Key,
		Nonce:     secureMessage.Nonce,
		Signature: secureMessage.Signature,
	}

	ctx.JSON(http.StatusOK, response)
}

// DecryptMessage handles the POST request to decrypt a secure message with a stored private key
// @Summary Decrypt a secure message
// @Description Verify the optional signature, unwrap the symmetric key with the stored private key and decrypt the payload.
// @Tags Message
// @Accept json
// @Produce json
// @Param requestBody body DecryptMessageRequest true "Message Decryption Data"
// @Success 200 {object} DecryptMessageResponse
// @Failure 400 {object} ErrorResponse
// @Failure 422 {object} ErrorResponse
// @Router /messages/decrypt [post]
func (handler *messageHandler) DecryptMessage(ctx *gin.Context) {

	var request DecryptMessageRequest

	if err := ctx.ShouldBindJSON(&request); err != nil {
		var errorResponse ErrorResponse
		errorResponse.Message = fmt.Sprintf("invalid message data: %v", err.Error())
		ctx.JSON(http.StatusBadRequest, errorResponse)
		return
	}

	if err := request.Validate(); err != nil {
		var errorResponse ErrorResponse
		errorResponse.Message = fmt.Sprintf("validation failed: %v", err.Error())
		ctx.JSON(http.StatusBadRequest, errorResponse)
		return
	}

	plainText, err := handler.secureMessageDecryptService.Decrypt(ctx, &request.Message, request.DecryptionKeyID, request.VerifyKeyID)
	if err != nil {
		var errorResponse ErrorResponse
		errorResponse.Message = fmt.Sprintf("error decrypting message: %v", err.Error())
		// Tampered or forged messages are a client-supplied data problem,
		// not a malformed request
		if errors.Is(err, crypto.ErrAuthentication) || errors.Is(err, crypto.ErrSignatureMismatch) {
			ctx.JSON(http.StatusUnprocessableEntity, errorResponse)
			return
		}
		ctx.JSON(http.StatusBadRequest, errorResponse)
		return
	}

	response := DecryptMessageResponse{
		PlainText: string(plainText),
	}

	ctx.JSON(http.StatusOK, response)
}
