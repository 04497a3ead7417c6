package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/camartes/api/internal/apperrors"
	"github.com/camartes/api/internal/models"
	"github.com/camartes/api/internal/services"
)

func SaveInitialSelection(p *services.ProfileService) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req models.InitialProfileRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}

		if err := p.SaveInitialSelection(c.Request.Context(), &req); err != nil {
			c.JSON(apperrors.StatusCode(err), gin.H{"error": err.Error()})
			return
		}

		c.JSON(http.StatusOK, gin.H{"message": "Profile saved successfully"})
	}
}

func GetProfile(p *services.ProfileService) gin.HandlerFunc {
	return func(c *gin.Context) {
		profile, err := p.GetProfile(c.Request.Context(), c.Param("userId"))
		if err != nil {
			if errors.Is(err, apperrors.ErrNotFound) {
				c.JSON(http.StatusNotFound, gin.H{"error": "Profile not found"})
				return
			}
			c.JSON(apperrors.StatusCode(err), gin.H{"error": err.Error()})
			return
		}

		c.JSON(http.StatusOK, profile)
	}
}
