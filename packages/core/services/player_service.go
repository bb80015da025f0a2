package services

import (
	"errors"
	"strings"

	"core/models"
	"core/utils"

	"gorm.io/gorm"
)

var (
	ErrPlayerNotFound      = errors.New("player not found")
	ErrPlayerAlreadyExists = errors.New("player already exists")
	ErrInvalidSearchQuery  = errors.New("invalid search query")
)

// MaxPageSize caps paginated player and team listings.
const MaxPageSize = 20

type PlayerService struct {
	db *gorm.DB
}

func NewPlayerService(db *gorm.DB) *PlayerService {
	return &PlayerService{
		db: db,
	}
}

func (s *PlayerService) AddPlayer(req models.AddPlayerRequest) (*models.Player, error) {
	var existing models.Player
	if err := s.db.Where("user_name = ?", req.UserName).First(&existing).Error; err == nil {
		return nil, ErrPlayerAlreadyExists
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	now := utils.GenerateTimeStamp()
	player := &models.Player{
		UserName:      req.UserName,
		Name:          req.Name,
		Age:           req.Age,
		Location:      req.Location,
		RoleAsBatsman: req.RoleAsBatsman,
		RoleAsBowler:  req.RoleAsBowler,
		BowlingStats:  models.BowlingStats{BestBowling: "0/0"},
		TeamsPlayedIn: models.TeamsPlayedIn{},
		IsActive:      true,
		CreatedAt:     now,
		UpdatedAt:     now,
	}

	if err := s.db.Create(player).Error; err != nil {
		return nil, err
	}

	return player, nil
}

func (s *PlayerService) GetPlayerByID(id uint) (*models.Player, error) {
	var player models.Player
	if err := s.db.First(&player, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrPlayerNotFound
		}
		return nil, err
	}
	return &player, nil
}

func (s *PlayerService) GetPlayerByUserName(userName string) (*models.Player, error) {
	var player models.Player
	if err := s.db.Where("user_name = ?", userName).First(&player).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrPlayerNotFound
		}
		return nil, err
	}
	return &player, nil
}

func (s *PlayerService) GetAllPlayers(pageNo, pageSize int) (*models.PaginatedPlayersResponse, error) {
	var total int64
	if err := s.db.Model(&models.Player{}).Where("is_active = ?", true).Count(&total).Error; err != nil {
		return nil, err
	}

	var players []models.Player
	if err := s.db.Where("is_active = ?", true).
		Order("created_at DESC").
		Offset((pageNo - 1) * pageSize).
		Limit(pageSize).
		Find(&players).Error; err != nil {
		return nil, err
	}

	items := make([]models.PlayerListItem, 0, len(players))
	for _, player := range players {
		items = append(items, models.PlayerListItem{
			ID:            player.ID,
			UserName:      player.UserName,
			Name:          player.Name,
			Age:           player.Age,
			Location:      player.Location,
			RoleAsBatsman: player.RoleAsBatsman,
			RoleAsBowler:  player.RoleAsBowler,
			CreatedAt:     player.CreatedAt,
		})
	}

	return &models.PaginatedPlayersResponse{
		Players:          items,
		TotalPlayerCount: total,
	}, nil
}

// SearchPlayers matches the query as a case-insensitive substring of
// either the display name or the username.
func (s *PlayerService) SearchPlayers(query string) ([]models.PlayerListItem, error) {
	if strings.TrimSpace(query) == "" {
		return nil, ErrInvalidSearchQuery
	}

	pattern := "%" + strings.TrimSpace(query) + "%"
	var players []models.Player
	if err := s.db.Where("name ILIKE ? OR user_name ILIKE ?", pattern, pattern).
		Limit(MaxPageSize).
		Find(&players).Error; err != nil {
		return nil, err
	}

	items := make([]models.PlayerListItem, 0, len(players))
	for _, player := range players {
		items = append(items, models.PlayerListItem{
			ID:            player.ID,
			UserName:      player.UserName,
			Name:          player.Name,
			Location:      player.Location,
			RoleAsBatsman: player.RoleAsBatsman,
			RoleAsBowler:  player.RoleAsBowler,
		})
	}
	return items, nil
}

// AppendTeamPlayedIn adds the denormalized team entry to each member's
// teamsPlayedIn list. Used by the team fan-outs.
func (s *PlayerService) AppendTeamPlayedIn(teamID uint, teamName string, playerIDs []uint) error {
	entry := models.TeamPlayedIn{TeamID: teamID, TeamName: teamName}
	payload, err := jsonbArrayElement(entry)
	if err != nil {
		return err
	}

	return s.db.Model(&models.Player{}).Where("id IN ?", playerIDs).
		Update("teams_played_in", gorm.Expr("COALESCE(teams_played_in, '[]'::jsonb) || ?::jsonb", payload)).Error
}

// RemoveTeamPlayedIn strips the team's entry from the given players,
// used when a roster update drops members.
func (s *PlayerService) RemoveTeamPlayedIn(teamID uint, playerIDs []uint) error {
	if len(playerIDs) == 0 {
		return nil
	}

	return s.db.Model(&models.Player{}).Where("id IN ?", playerIDs).
		Update("teams_played_in", gorm.Expr(
			`(SELECT COALESCE(jsonb_agg(entry), '[]'::jsonb)
			  FROM jsonb_array_elements(COALESCE(teams_played_in, '[]'::jsonb)) AS entry
			  WHERE (entry->>'teamId')::bigint <> ?)`, teamID)).Error
}
