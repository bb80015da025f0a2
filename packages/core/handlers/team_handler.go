package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"core/models"
	"core/services"

	authMiddleware "auth/middleware"

	"github.com/gin-gonic/gin"
)

type TeamHandler struct {
	teamService *services.TeamService
}

func NewTeamHandler(teamService *services.TeamService) *TeamHandler {
	return &TeamHandler{
		teamService: teamService,
	}
}

// CreateTeam creates a new team
// @Summary Create a new team
// @Description Create a team and record it under every member's teamsPlayedIn
// @Tags teams
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param team body models.CreateTeamRequest true "Team data"
// @Success 201 {object} models.Team
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Failure 500 {object} map[string]string
// @Router /team/createTeam [post]
func (h *TeamHandler) CreateTeam(c *gin.Context) {
	var req models.CreateTeamRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request body",
		})
		return
	}

	team, err := h.teamService.CreateTeam(req)
	if err != nil {
		if errors.Is(err, services.ErrTeamAlreadyExists) {
			c.JSON(http.StatusBadRequest, gin.H{
				"error": "A team with this name already exists",
			})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Failed to create team",
		})
		return
	}

	c.JSON(http.StatusCreated, team)
}

// GetAllTeams retrieves teams with pagination
// @Summary Get all teams
// @Description Get active teams ordered newest first, with a total count
// @Tags teams
// @Produce json
// @Param page_no query int false "Page number (default: 1)" default(1)
// @Param page_size query int false "Items per page (default: 10, max: 20)" default(10)
// @Success 200 {object} models.PaginatedTeamsResponse
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Failure 500 {object} map[string]string
// @Router /team/getAllTeams [get]
func (h *TeamHandler) GetAllTeams(c *gin.Context) {
	pageNoStr := c.DefaultQuery("page_no", "1")
	pageSizeStr := c.DefaultQuery("page_size", "10")

	pageNo, err := strconv.Atoi(pageNoStr)
	if err != nil || pageNo < 1 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid page_no parameter"})
		return
	}

	pageSize, err := strconv.Atoi(pageSizeStr)
	if err != nil || pageSize < 1 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid page_size parameter"})
		return
	}
	if pageSize > services.MaxPageSize {
		c.JSON(http.StatusBadRequest, gin.H{"error": "page_size must not exceed 20"})
		return
	}

	result, err := h.teamService.GetAllTeams(pageNo, pageSize)
	if err != nil {
		if errors.Is(err, services.ErrNoTeamsFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "No teams found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Failed to retrieve teams",
		})
		return
	}

	c.JSON(http.StatusOK, result)
}

// GetTeam retrieves a team by name
// @Summary Get team by name
// @Description Look a team up by name, case-insensitively
// @Tags teams
// @Produce json
// @Param team_name query string true "Team name"
// @Success 200 {object} models.Team
// @Failure 404 {object} map[string]string
// @Failure 500 {object} map[string]string
// @Router /team/getTeam [get]
func (h *TeamHandler) GetTeam(c *gin.Context) {
	teamName := c.Query("team_name")

	team, err := h.teamService.GetTeamByName(teamName)
	if err != nil {
		if errors.Is(err, services.ErrTeamNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Team not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Failed to retrieve team",
		})
		return
	}

	c.JSON(http.StatusOK, team)
}

// UpdateTeam replaces a team's name, location and roster
// @Summary Update a team
// @Description Replace the team's name, location and members, syncing teamsPlayedIn on every affected player
// @Tags teams
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param teamNameOld path string true "Current team name"
// @Param team body models.UpdateTeamRequest true "Updated team data"
// @Success 200 {object} models.Team
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Failure 403 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Failure 500 {object} map[string]string
// @Router /team/updateTeam/{teamNameOld} [put]
func (h *TeamHandler) UpdateTeam(c *gin.Context) {
	userName, exists := authMiddleware.GetUserName(c)
	if !exists {
		c.JSON(http.StatusUnauthorized, gin.H{
			"error": "Authentication required",
		})
		return
	}

	teamNameOld := c.Param("teamNameOld")

	var req models.UpdateTeamRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request body",
		})
		return
	}

	if req.UserName != userName {
		c.JSON(http.StatusForbidden, gin.H{
			"error": "You can only update your own teams",
		})
		return
	}

	team, err := h.teamService.UpdateTeam(teamNameOld, req)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrTeamNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": "Team not found"})
		case errors.Is(err, services.ErrTeamAlreadyExists):
			c.JSON(http.StatusBadRequest, gin.H{
				"error": "A team with this name already exists",
			})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{
				"error": "Failed to update team",
			})
		}
		return
	}

	c.JSON(http.StatusOK, team)
}

// SearchTeams searches teams by name
// @Summary Search teams
// @Description Case-insensitive substring search on team name
// @Tags teams
// @Produce json
// @Param search_query query string true "Search text"
// @Success 200 {array} models.TeamListItem
// @Failure 400 {object} map[string]string
// @Failure 500 {object} map[string]string
// @Router /team/searchTeams [get]
func (h *TeamHandler) SearchTeams(c *gin.Context) {
	query := c.Query("search_query")

	teams, err := h.teamService.SearchTeams(query)
	if err != nil {
		if errors.Is(err, services.ErrInvalidSearchQuery) {
			c.JSON(http.StatusBadRequest, gin.H{"error": "search_query must not be blank"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Failed to search teams",
		})
		return
	}

	c.JSON(http.StatusOK, teams)
}

// GetMembers retrieves a team's roster
// @Summary Get team members
// @Tags teams
// @Produce json
// @Param teamName path string true "Team name"
// @Success 200 {array} models.TeamMember
// @Failure 404 {object} map[string]string
// @Failure 500 {object} map[string]string
// @Router /team/getMembers/{teamName} [get]
func (h *TeamHandler) GetMembers(c *gin.Context) {
	teamName := c.Param("teamName")

	members, err := h.teamService.GetTeamMembers(teamName)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrTeamNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": "Team not found"})
		case errors.Is(err, services.ErrNoMembersFound):
			c.JSON(http.StatusNotFound, gin.H{"error": "No members found for this team"})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{
				"error": "Failed to retrieve team members",
			})
		}
		return
	}

	c.JSON(http.StatusOK, members)
}
