package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/camartes/api/internal/apperrors"
	"github.com/camartes/api/internal/models"
	"github.com/camartes/api/internal/services"
)

func SendSignupOtp(a *services.AuthService) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req models.SendSignupOtpRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}

		code, err := a.RequestSignupOtp(c.Request.Context(), req.Email, req.Phone)
		if err != nil {
			if errors.Is(err, apperrors.ErrConflict) {
				c.JSON(http.StatusBadRequest, gin.H{"error": "User with this email or phone already exists"})
				return
			}
			c.JSON(apperrors.StatusCode(err), gin.H{"error": err.Error()})
			return
		}

		// The code belongs in an email or SMS; it is echoed here because no
		// delivery channel exists yet.
		c.JSON(http.StatusOK, gin.H{"message": "OTP sent successfully", "otp": code})
	}
}

func Signup(a *services.AuthService) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req models.SignupRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}

		if err := a.Signup(c.Request.Context(), &req); err != nil {
			switch {
			case errors.Is(err, apperrors.ErrInvalidCode):
				c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid OTP"})
			case errors.Is(err, apperrors.ErrPasswordMismatch):
				c.JSON(http.StatusBadRequest, gin.H{"error": "Passwords do not match"})
			default:
				c.JSON(apperrors.StatusCode(err), gin.H{"error": err.Error()})
			}
			return
		}

		c.JSON(http.StatusOK, gin.H{"message": "User created successfully"})
	}
}

func SendLoginOtp(a *services.AuthService) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req models.SendOtpRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}

		code, err := a.RequestLoginOtp(c.Request.Context(), req.Identifier, req.Type)
		if err != nil {
			if errors.Is(err, apperrors.ErrNotFound) {
				c.JSON(http.StatusNotFound, gin.H{"error": "User not found"})
				return
			}
			c.JSON(apperrors.StatusCode(err), gin.H{"error": err.Error()})
			return
		}

		c.JSON(http.StatusOK, gin.H{"message": "OTP sent successfully", "otp": code})
	}
}

func Login(a *services.AuthService) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req models.LoginRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}

		user, err := a.Login(c.Request.Context(), &req)
		if err != nil {
			switch {
			case errors.Is(err, apperrors.ErrNotFound):
				c.JSON(http.StatusNotFound, gin.H{"error": "User not found"})
			case errors.Is(err, apperrors.ErrUnauthorized) && req.Password != "":
				c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid credentials"})
			case errors.Is(err, apperrors.ErrUnauthorized):
				c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid OTP"})
			case errors.Is(err, apperrors.ErrBadRequest):
				c.JSON(http.StatusBadRequest, gin.H{"error": "Password or OTP required"})
			default:
				c.JSON(apperrors.StatusCode(err), gin.H{"error": err.Error()})
			}
			return
		}

		c.JSON(http.StatusOK, gin.H{"user": user, "message": "Login successful"})
	}
}
