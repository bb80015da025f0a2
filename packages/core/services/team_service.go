package services

import (
	"errors"
	"strings"

	"core/models"
	"core/utils"

	"gorm.io/gorm"
)

var (
	ErrTeamNotFound      = errors.New("team not found")
	ErrTeamAlreadyExists = errors.New("team already exists")
	ErrNoTeamsFound      = errors.New("no teams found")
	ErrNoMembersFound    = errors.New("no members found for this team")
)

type TeamService struct {
	db            *gorm.DB
	playerService *PlayerService
}

func NewTeamService(db *gorm.DB, playerService *PlayerService) *TeamService {
	return &TeamService{
		db:            db,
		playerService: playerService,
	}
}

// GetTeamByName looks a team up by name, case-insensitively; team
// names are unique regardless of casing.
func (s *TeamService) GetTeamByName(teamName string) (*models.Team, error) {
	var team models.Team
	if err := s.db.Where("LOWER(team_name) = LOWER(?)", strings.TrimSpace(teamName)).
		First(&team).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrTeamNotFound
		}
		return nil, err
	}
	return &team, nil
}

func (s *TeamService) CreateTeam(req models.CreateTeamRequest) (*models.Team, error) {
	if _, err := s.GetTeamByName(req.TeamName); err == nil {
		return nil, ErrTeamAlreadyExists
	} else if !errors.Is(err, ErrTeamNotFound) {
		return nil, err
	}

	now := utils.GenerateTimeStamp()
	team := &models.Team{
		UserName:  req.UserName,
		TeamName:  req.TeamName,
		Location:  req.Location,
		Members:   req.Members,
		IsActive:  true,
		CreatedAt: now,
		UpdatedAt: now,
	}

	if err := s.db.Create(team).Error; err != nil {
		return nil, err
	}

	// Fan out the new team onto each member's teamsPlayedIn list.
	// This write is independent of the team insert; a failure leaves
	// the team in place and is surfaced to the caller's logs only.
	memberIDs := make([]uint, 0, len(req.Members))
	for _, member := range req.Members {
		memberIDs = append(memberIDs, member.PlayerID)
	}
	if err := s.playerService.AppendTeamPlayedIn(team.ID, team.TeamName, memberIDs); err != nil {
		return team, err
	}

	return team, nil
}

func (s *TeamService) GetAllTeams(pageNo, pageSize int) (*models.PaginatedTeamsResponse, error) {
	// Count the same set the pages come from, or the total drifts from
	// the listed rows once a team is deactivated.
	var total int64
	if err := s.db.Model(&models.Team{}).Where("is_active = ?", true).Count(&total).Error; err != nil {
		return nil, err
	}
	if total == 0 {
		return nil, ErrNoTeamsFound
	}

	var teams []models.Team
	if err := s.db.Where("is_active = ?", true).
		Order("created_at DESC").
		Offset((pageNo - 1) * pageSize).
		Limit(pageSize).
		Find(&teams).Error; err != nil {
		return nil, err
	}

	items := make([]models.TeamListItem, 0, len(teams))
	for _, team := range teams {
		items = append(items, models.TeamListItem{
			ID:        team.ID,
			UserName:  team.UserName,
			TeamName:  team.TeamName,
			Location:  team.Location,
			CreatedAt: team.CreatedAt,
		})
	}

	return &models.PaginatedTeamsResponse{
		Teams:          items,
		TotalTeamCount: total,
	}, nil
}

// UpdateTeam replaces a team's name, location and roster, then syncs
// the denormalized teamsPlayedIn entries: kept and added members get
// the (possibly renamed) team appended, dropped members lose it.
func (s *TeamService) UpdateTeam(teamNameOld string, req models.UpdateTeamRequest) (*models.Team, error) {
	team, err := s.GetTeamByName(teamNameOld)
	if err != nil {
		return nil, err
	}

	if !strings.EqualFold(req.TeamName, teamNameOld) {
		if _, err := s.GetTeamByName(req.TeamName); err == nil {
			return nil, ErrTeamAlreadyExists
		} else if !errors.Is(err, ErrTeamNotFound) {
			return nil, err
		}
	}

	newIDs := make(map[uint]bool, len(req.Members))
	memberIDs := make([]uint, 0, len(req.Members))
	for _, member := range req.Members {
		newIDs[member.PlayerID] = true
		memberIDs = append(memberIDs, member.PlayerID)
	}

	var removedIDs []uint
	for _, member := range team.Members {
		if !newIDs[member.PlayerID] {
			removedIDs = append(removedIDs, member.PlayerID)
		}
	}

	team.TeamName = req.TeamName
	team.Location = req.Location
	team.Members = req.Members
	team.UpdatedAt = utils.GenerateTimeStamp()

	if err := s.db.Save(team).Error; err != nil {
		return nil, err
	}

	// Re-append under the current name after stripping the old entry,
	// so renamed teams do not leave stale names behind.
	if err := s.playerService.RemoveTeamPlayedIn(team.ID, memberIDs); err != nil {
		return team, err
	}
	if err := s.playerService.AppendTeamPlayedIn(team.ID, team.TeamName, memberIDs); err != nil {
		return team, err
	}
	if err := s.playerService.RemoveTeamPlayedIn(team.ID, removedIDs); err != nil {
		return team, err
	}

	return team, nil
}

func (s *TeamService) SearchTeams(query string) ([]models.TeamListItem, error) {
	if strings.TrimSpace(query) == "" {
		return nil, ErrInvalidSearchQuery
	}

	pattern := "%" + strings.TrimSpace(query) + "%"
	var teams []models.Team
	if err := s.db.Where("team_name ILIKE ?", pattern).
		Limit(MaxPageSize).
		Find(&teams).Error; err != nil {
		return nil, err
	}

	items := make([]models.TeamListItem, 0, len(teams))
	for _, team := range teams {
		items = append(items, models.TeamListItem{
			ID:       team.ID,
			UserName: team.UserName,
			TeamName: team.TeamName,
			Location: team.Location,
		})
	}
	return items, nil
}

// GetTeamMembers returns the roster, rejecting teams with none.
func (s *TeamService) GetTeamMembers(teamName string) (models.TeamMembers, error) {
	team, err := s.GetTeamByName(teamName)
	if err != nil {
		return nil, err
	}
	if len(team.Members) == 0 {
		return nil, ErrNoMembersFound
	}
	return team.Members, nil
}
