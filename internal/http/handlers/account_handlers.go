package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/Bhavuk-Devex/AVO/domain"
	"github.com/Bhavuk-Devex/AVO/internal/http/responses"
)

// AccountHandlers serves the public signup, verification and sign-in endpoints
type AccountHandlers struct {
	accountSvc domain.AccountService
	writer     *responses.Writer
}

// NewAccountHandlers creates new account handlers
func NewAccountHandlers(accountSvc domain.AccountService, writer *responses.Writer) *AccountHandlers {
	return &AccountHandlers{accountSvc: accountSvc, writer: writer}
}

// EmailRequest carries a bare email
type EmailRequest struct {
	Email string `json:"email"`
}

// OTPRequest represents OTP verification request
type OTPRequest struct {
	Email string `json:"email"`
	OTP   string `json:"otp"`
}

// ResetPasswordRequest represents a password reset
type ResetPasswordRequest struct {
	Email       string `json:"email"`
	NewPassword string `json:"new_password"`
}

// SignInRequest represents sign-in request
type SignInRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// SignUp handles user registration
func (h *AccountHandlers) SignUp(c *gin.Context) {
	var req domain.SignUpInput
	if !h.bind(c, &req) {
		return
	}

	id, err := h.accountSvc.SignUp(c.Request.Context(), req)
	if err != nil {
		h.writer.Error(c, err)
		return
	}

	h.writer.Success(c, gin.H{"message": "User added successfully", "userId": id})
}

// ResendOTP sends a fresh verification code
func (h *AccountHandlers) ResendOTP(c *gin.Context) {
	var req EmailRequest
	if !h.bind(c, &req) {
		return
	}

	if err := h.accountSvc.ResendOTP(c.Request.Context(), req.Email); err != nil {
		h.writer.Error(c, err)
		return
	}

	h.writer.Message(c, "OTP resent successfully.")
}

// VerifyOTP activates the account
func (h *AccountHandlers) VerifyOTP(c *gin.Context) {
	var req OTPRequest
	if !h.bind(c, &req) {
		return
	}

	if err := h.accountSvc.VerifyOTP(c.Request.Context(), req.Email, req.OTP); err != nil {
		h.writer.Error(c, err)
		return
	}

	h.writer.Message(c, "OTP verified successfully. Account activated.")
}

// ForgotPassword starts the reset flow
func (h *AccountHandlers) ForgotPassword(c *gin.Context) {
	var req EmailRequest
	if !h.bind(c, &req) {
		return
	}

	if err := h.accountSvc.ForgotPassword(c.Request.Context(), req.Email); err != nil {
		h.writer.Error(c, err)
		return
	}

	h.writer.Message(c, "OTP sent successfully.")
}

func (h *AccountHandlers) VerifyForgotPasswordOTP(c *gin.Context) {
	var req OTPRequest
	if !h.bind(c, &req) {
		return
	}

	if err := h.accountSvc.VerifyForgotPasswordOTP(c.Request.Context(), req.Email, req.OTP); err != nil {
		h.writer.Error(c, err)
		return
	}

	h.writer.Message(c, "OTP verified. You can reset your password.")
}

func (h *AccountHandlers) ResetPassword(c *gin.Context) {
	var req ResetPasswordRequest
	if !h.bind(c, &req) {
		return
	}

	if err := h.accountSvc.ResetPassword(c.Request.Context(), req.Email, req.NewPassword); err != nil {
		h.writer.Error(c, err)
		return
	}

	h.writer.Message(c, "Password reset successfully.")
}

// SignIn handles user login
func (h *AccountHandlers) SignIn(c *gin.Context) {
	var req SignInRequest
	if !h.bind(c, &req) {
		return
	}

	result, err := h.accountSvc.SignIn(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		h.writer.Error(c, err)
		return
	}

	h.writer.Success(c, gin.H{
		"message":    "Sign in successful.",
		"auth_token": result.AuthToken,
		"user":       result.User,
	})
}

func (h *AccountHandlers) bind(c *gin.Context, req any) bool {
	return bindJSON(c, h.writer, req)
}
