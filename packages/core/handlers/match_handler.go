package handlers

import (
	"errors"
	"net/http"

	"core/models"
	"core/services"

	authMiddleware "auth/middleware"

	"github.com/gin-gonic/gin"
)

type MatchHandler struct {
	matchService *services.MatchService
}

func NewMatchHandler(matchService *services.MatchService) *MatchHandler {
	return &MatchHandler{
		matchService: matchService,
	}
}

// CreateMatch creates a new match
// @Summary Create a new match
// @Description Validate the two team sheets, check every playing member for a scheduling conflict and persist the match
// @Tags matches
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param match body models.CreateMatchRequest true "Match data"
// @Success 201 {object} map[string]interface{}
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Failure 403 {object} map[string]string
// @Failure 500 {object} map[string]string
// @Router /match/createMatch [post]
func (h *MatchHandler) CreateMatch(c *gin.Context) {
	userName, exists := authMiddleware.GetUserName(c)
	if !exists {
		c.JSON(http.StatusUnauthorized, gin.H{
			"error": "Authentication required",
		})
		return
	}

	var req models.CreateMatchRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request body",
		})
		return
	}

	match, err := h.matchService.CreateMatch(userName, req)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrUnauthorizedUser):
			c.JSON(http.StatusForbidden, gin.H{
				"error": "You can only create matches for yourself",
			})
		case errors.Is(err, services.ErrInvalidOversSelected),
			errors.Is(err, services.ErrInvalidMatchDate),
			errors.Is(err, services.ErrTeamsDoNotExist),
			errors.Is(err, services.ErrDuplicatePlayers),
			errors.Is(err, services.ErrPlayersDoNotExist),
			errors.Is(err, services.ErrRoleNotInRoster),
			errors.Is(err, services.ErrMemberNotInTeam),
			errors.Is(err, services.ErrMatchConflict):
			c.JSON(http.StatusBadRequest, gin.H{
				"error": err.Error(),
			})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{
				"error": "Failed to create match",
			})
		}
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message": "Match created successfully",
		"matchId": match.ID,
	})
}

// FetchMatches retrieves the authenticated user's matches by status
// @Summary Fetch matches by status
// @Description Get the authenticated user's matches filtered by matchTimeStatus, projected per status
// @Tags matches
// @Security BearerAuth
// @Produce json
// @Param matchType path string true "Match time status" Enums(NOT_STARTED,UPCOMING,LIVE,ENDED,CANCELLED)
// @Success 200 {array} models.MatchListEntry
// @Failure 401 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Failure 500 {object} map[string]string
// @Router /match/fetchMatches/{matchType} [get]
func (h *MatchHandler) FetchMatches(c *gin.Context) {
	userName, exists := authMiddleware.GetUserName(c)
	if !exists {
		c.JSON(http.StatusUnauthorized, gin.H{
			"error": "Authentication required",
		})
		return
	}

	status := c.Param("matchType")

	matches, err := h.matchService.FetchMatches(userName, status)
	if err != nil {
		if errors.Is(err, services.ErrNoMatchesFound) {
			c.JSON(http.StatusNotFound, gin.H{
				"error": "No matches found",
			})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Failed to fetch matches",
		})
		return
	}

	c.JSON(http.StatusOK, matches)
}
