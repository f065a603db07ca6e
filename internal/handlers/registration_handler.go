package handlers

import (
	"errors"
	"net/http"

	"github.com/espranza/server/internal/helpers"
	"github.com/espranza/server/internal/models"
	"github.com/espranza/server/internal/services"
	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

func CreateRegistration(r *services.RegistrationService) gin.HandlerFunc {
	return func(c *gin.Context) {
		var reg models.Registration
		if err := c.ShouldBindJSON(&reg); err != nil {
			c.JSON(http.StatusBadRequest, models.ErrorResponse(err.Error()))
			return
		}

		if _, err := r.CreateRegistration(c.Request.Context(), &reg); err != nil {
			if errors.Is(err, services.ErrInvalidRegistration) {
				c.JSON(http.StatusBadRequest, models.ErrorResponse(err.Error()))
				return
			}
			c.JSON(http.StatusInternalServerError, models.ErrorResponse(err.Error()))
			return
		}

		c.JSON(http.StatusOK, models.SuccessResponse(nil, "Registration successful!"))
	}
}

func ListRegistrations(r *services.RegistrationService) gin.HandlerFunc {
	return func(c *gin.Context) {
		regs, err := r.ListRegistrations(c.Request.Context())
		if err != nil {
			c.JSON(http.StatusInternalServerError, models.ErrorResponse(err.Error()))
			return
		}
		c.JSON(http.StatusOK, models.SuccessResponse(regs, ""))
	}
}

func VerifyRegistration(r *services.RegistrationService) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req struct {
			RegistrationID string `json:"registrationId"`
			IsActive       bool   `json:"isActive"`
		}
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, models.ErrorResponse(err.Error()))
			return
		}

		id := helpers.StringTrim(req.RegistrationID)
		if id == "" {
			c.JSON(http.StatusBadRequest, models.ErrorResponse("Registration ID is required"))
			return
		}

		parsedID, err := primitive.ObjectIDFromHex(id)
		if err != nil {
			c.JSON(http.StatusBadRequest, models.ErrorResponse("invalid registration ID format"))
			return
		}

		updated, err := r.VerifyRegistration(c.Request.Context(), parsedID, req.IsActive)
		if err != nil {
			if errors.Is(err, models.ErrRegistrationNotFound) {
				c.JSON(http.StatusNotFound, models.ErrorResponse("Registration not found"))
				return
			}
			c.JSON(http.StatusInternalServerError, models.ErrorResponse(err.Error()))
			return
		}

		c.JSON(http.StatusOK, models.SuccessResponse(updated, "Registration verified successfully!"))
	}
}
