package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"core/models"
	"core/services"

	"github.com/gin-gonic/gin"
)

type PlayerHandler struct {
	playerService *services.PlayerService
}

func NewPlayerHandler(playerService *services.PlayerService) *PlayerHandler {
	return &PlayerHandler{
		playerService: playerService,
	}
}

// AddPlayer creates a new player profile
// @Summary Add a new player
// @Description Create a player profile with zeroed career stats
// @Tags players
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param player body models.AddPlayerRequest true "Player data"
// @Success 201 {object} models.Player
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Failure 500 {object} map[string]string
// @Router /player/addPlayer [post]
func (h *PlayerHandler) AddPlayer(c *gin.Context) {
	var req models.AddPlayerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request body",
		})
		return
	}

	player, err := h.playerService.AddPlayer(req)
	if err != nil {
		if errors.Is(err, services.ErrPlayerAlreadyExists) {
			c.JSON(http.StatusBadRequest, gin.H{
				"error": "A player with this userName already exists",
			})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Failed to add player",
		})
		return
	}

	c.JSON(http.StatusCreated, player)
}

// GetAllPlayers retrieves players with pagination
// @Summary Get all players
// @Description Get active players ordered newest first, with a total count
// @Tags players
// @Security BearerAuth
// @Produce json
// @Param page_no query int false "Page number (default: 1)" default(1)
// @Param page_size query int false "Items per page (default: 10, max: 20)" default(10)
// @Success 200 {object} models.PaginatedPlayersResponse
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Failure 500 {object} map[string]string
// @Router /player/getAllPlayers [get]
func (h *PlayerHandler) GetAllPlayers(c *gin.Context) {
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

	result, err := h.playerService.GetAllPlayers(pageNo, pageSize)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Failed to retrieve players",
		})
		return
	}

	c.JSON(http.StatusOK, result)
}

// GetPlayerDetails retrieves a player by id
// @Summary Get player details by id
// @Tags players
// @Produce json
// @Param player_id query int true "Player ID"
// @Success 200 {object} models.Player
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Failure 500 {object} map[string]string
// @Router /player/getPlayerDetails [get]
func (h *PlayerHandler) GetPlayerDetails(c *gin.Context) {
	playerIDStr := c.Query("player_id")
	playerID, err := strconv.ParseUint(playerIDStr, 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid player_id parameter"})
		return
	}

	player, err := h.playerService.GetPlayerByID(uint(playerID))
	if err != nil {
		if errors.Is(err, services.ErrPlayerNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Player not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Failed to retrieve player",
		})
		return
	}

	c.JSON(http.StatusOK, player)
}

// GetPlayerDetailsByUserName retrieves a player by userName
// @Summary Get player details by userName
// @Tags players
// @Produce json
// @Param userName query string true "Player userName"
// @Success 200 {object} models.Player
// @Failure 404 {object} map[string]string
// @Failure 500 {object} map[string]string
// @Router /player/getPlayerDetailsUserName [get]
func (h *PlayerHandler) GetPlayerDetailsByUserName(c *gin.Context) {
	userName := c.Query("userName")

	player, err := h.playerService.GetPlayerByUserName(userName)
	if err != nil {
		if errors.Is(err, services.ErrPlayerNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Player not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Failed to retrieve player",
		})
		return
	}

	c.JSON(http.StatusOK, player)
}

// SearchPlayers searches players by name or userName
// @Summary Search players
// @Description Case-insensitive substring search on name and userName
// @Tags players
// @Produce json
// @Param search_query query string true "Search text"
// @Success 200 {array} models.PlayerListItem
// @Failure 400 {object} map[string]string
// @Failure 500 {object} map[string]string
// @Router /player/searchPlayers [get]
func (h *PlayerHandler) SearchPlayers(c *gin.Context) {
	query := c.Query("search_query")

	players, err := h.playerService.SearchPlayers(query)
	if err != nil {
		if errors.Is(err, services.ErrInvalidSearchQuery) {
			c.JSON(http.StatusBadRequest, gin.H{"error": "search_query must not be blank"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Failed to search players",
		})
		return
	}

	c.JSON(http.StatusOK, players)
}
