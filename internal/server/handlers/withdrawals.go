package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"

	"github.com/jeyjerry11/Kingcharmer-analytics.co.ng/internal/application/withdrawalservice"
	"github.com/jeyjerry11/Kingcharmer-analytics.co.ng/internal/domain"
)

type WithdrawalHandler struct {
	withdrawalService withdrawalservice.IWithdrawalService
}

func NewWithdrawalHandler(withdrawalService withdrawalservice.IWithdrawalService) *WithdrawalHandler {
	return &WithdrawalHandler{
		withdrawalService: withdrawalService,
	}
}

type sendCodeRequest struct {
	Identifier string `json:"identifier"`
	Code       string `json:"code"`
}

// SendVerificationCode issues a withdrawal one-time code and emails it.
func (h *WithdrawalHandler) SendVerificationCode(c *gin.Context) {
	var req sendCodeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "Invalid request body"})
		return
	}

	err := h.withdrawalService.SendVerificationCode(c.Request.Context(), req.Identifier, req.Code)
	if err != nil {
		if domain.IsValidation(err) {
			c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "Email and code required"})
			return
		}
		log.Error().Err(err).Str("identifier", req.Identifier).Msg("Failed to send verification email")
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Failed to send email."})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "Verification email sent",
	})
}

// RequestWithdrawal consumes the verification code and dispatches the
// withdrawal request email.
func (h *WithdrawalHandler) RequestWithdrawal(c *gin.Context) {
	var req domain.WithdrawalRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "Invalid request body"})
		return
	}

	err := h.withdrawalService.RequestWithdrawal(c.Request.Context(), &req)
	if err != nil {
		if errors.Is(err, domain.ErrInvalidCode) {
			c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "Invalid or expired verification code."})
			return
		}
		if domain.IsValidation(err) {
			c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "Email and code required"})
			return
		}
		log.Error().Err(err).Str("identifier", req.Identifier).Msg("Failed to send withdrawal email")
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Failed to send email."})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "Withdrawal email sent successfully!",
	})
}
