package handlers

import (
	"net/http"

	"github.com/espranza/server/internal/models"
	"github.com/espranza/server/internal/services"
	"github.com/gin-gonic/gin"
)

func ListTeamMembers(s *services.TeamService) gin.HandlerFunc {
	return func(c *gin.Context) {
		members, err := s.ListTeamMembers(c.Request.Context())
		if err != nil {
			c.JSON(http.StatusInternalServerError, models.ErrorResponse(err.Error()))
			return
		}
		c.JSON(http.StatusOK, models.SuccessResponse(members, ""))
	}
}

func UpdateTeamMembers(s *services.TeamService) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req struct {
			TeamMembers []models.TeamMember `json:"teamMembers"`
		}
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, models.ErrorResponse(err.Error()))
			return
		}
		if req.TeamMembers == nil {
			c.JSON(http.StatusBadRequest, models.ErrorResponse("Invalid data format: teamMembers must be an array"))
			return
		}

		if err := s.ReplaceTeamMembers(c.Request.Context(), req.TeamMembers); err != nil {
			c.JSON(http.StatusInternalServerError, models.ErrorResponse(err.Error()))
			return
		}

		c.JSON(http.StatusOK, models.SuccessResponse(nil, "Team list updated successfully!"))
	}
}
