package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"atomichabits/internal/application/notification/usecases"
	"atomichabits/internal/shared/logger"
	"atomichabits/internal/shared/utils"
)

// TelegramHandler issues deep links that bind a Telegram chat to the
// calling account. The bot process redeems the token on /start.
type TelegramHandler struct {
	issueLinkUseCase *usecases.IssueLinkTokenUseCase
	logger           logger.Interface
}

func NewTelegramHandler(issueLinkUC *usecases.IssueLinkTokenUseCase, logger logger.Interface) *TelegramHandler {
	return &TelegramHandler{
		issueLinkUseCase: issueLinkUC,
		logger:           logger,
	}
}

// GetLink issues a fresh link token. Any previously issued unused tokens
// for the caller are invalidated.
func (h *TelegramHandler) GetLink(c *gin.Context) {
	userID, ok := actorID(c)
	if !ok {
		return
	}

	result, err := h.issueLinkUseCase.Execute(c.Request.Context(), usecases.IssueLinkTokenCommand{
		UserID: userID,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", gin.H{
		"token":      result.Token,
		"deep_link":  result.DeepLink,
		"expires_at": result.ExpiresAt,
	})
}
