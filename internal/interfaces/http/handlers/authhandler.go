package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"atomichabits/internal/application/user/usecases"
	"atomichabits/internal/shared/logger"
	"atomichabits/internal/shared/utils"
)

type AuthHandler struct {
	registerUseCase *usecases.RegisterUserUseCase
	loginUseCase    *usecases.LoginUseCase
	refreshUseCase  *usecases.RefreshTokenUseCase
	logger          logger.Interface
}

func NewAuthHandler(
	registerUC *usecases.RegisterUserUseCase,
	loginUC *usecases.LoginUseCase,
	refreshUC *usecases.RefreshTokenUseCase,
	logger logger.Interface,
) *AuthHandler {
	return &AuthHandler{
		registerUseCase: registerUC,
		loginUseCase:    loginUC,
		refreshUseCase:  refreshUC,
		logger:          logger,
	}
}

type RegisterRequest struct {
	Username  string `json:"username" binding:"required,max=150"`
	Email     string `json:"email" binding:"omitempty,email"`
	Password  string `json:"password" binding:"required"`
	Password2 string `json:"password2" binding:"required"`
}

type LoginRequest struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

type RefreshRequest struct {
	Refresh string `json:"refresh" binding:"required"`
}

func (h *AuthHandler) Register(c *gin.Context) {
	var req RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponseWithError(c, utils.BindingErrorToFieldErrors(err))
		return
	}

	result, err := h.registerUseCase.Execute(c.Request.Context(), usecases.RegisterUserCommand{
		Username:        req.Username,
		Email:           req.Email,
		Password:        req.Password,
		PasswordConfirm: req.Password2,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.CreatedResponse(c, result, "Registration successful")
}

func (h *AuthHandler) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponseWithError(c, utils.BindingErrorToFieldErrors(err))
		return
	}

	result, err := h.loginUseCase.Execute(c.Request.Context(), usecases.LoginCommand{
		Username: req.Username,
		Password: req.Password,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Login successful", gin.H{
		"user":   result.User,
		"tokens": result.Tokens,
	})
}

func (h *AuthHandler) Refresh(c *gin.Context) {
	var req RefreshRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponseWithError(c, utils.BindingErrorToFieldErrors(err))
		return
	}

	tokens, err := h.refreshUseCase.Execute(c.Request.Context(), usecases.RefreshTokenCommand{
		RefreshToken: req.Refresh,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Token refreshed", tokens)
}
