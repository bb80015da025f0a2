package services

import (
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"time"

	"core/models"
	"core/utils"

	"gorm.io/gorm"
)

// Rejection reasons for match creation. Handlers map these onto status
// codes: ErrUnauthorizedUser is a 403, the rest of the validation and
// conflict errors are 400s.
var (
	ErrUnauthorizedUser     = errors.New("unauthorized user")
	ErrInvalidOversSelected = errors.New("invalid overs for the selected match type")
	ErrInvalidMatchDate     = errors.New("invalid match date and time")
	ErrTeamsDoNotExist      = errors.New("one or both teams do not exist")
	ErrDuplicatePlayers     = errors.New("duplicate players detected across teams")
	ErrPlayersDoNotExist    = errors.New("one or more players do not exist")
	ErrRoleNotInRoster      = errors.New("role holder is not in playing members")
	ErrMemberNotInTeam      = errors.New("player is not a member of the team")
	ErrMatchConflict        = errors.New("one or more players are already scheduled in another match at the same time")
	ErrNoMatchesFound       = errors.New("no matches found")
)

// upcomingThreshold is how far ahead a match must be scheduled before
// it is stamped UPCOMING. Anything closer is left without a status;
// the hourly sweep picks it up once its start time has passed.
const upcomingThreshold = 10 * time.Minute

type MatchService struct {
	db *gorm.DB
}

func NewMatchService(db *gorm.DB) *MatchService {
	return &MatchService{
		db: db,
	}
}

// ValidateOvers enforces the overs/matchType invariant: ODI plays 50,
// T20 plays 20, CUSTOMIZED anything positive.
func ValidateOvers(matchType string, overs int) error {
	switch matchType {
	case models.MatchTypeODI:
		if overs != 50 {
			return ErrInvalidOversSelected
		}
	case models.MatchTypeT20:
		if overs != 20 {
			return ErrInvalidOversSelected
		}
	case models.MatchTypeCustomized:
		if overs <= 0 {
			return ErrInvalidOversSelected
		}
	default:
		return ErrInvalidOversSelected
	}
	return nil
}

// ResolveMatchTimeStatus returns UPCOMING when the scheduled time is at
// least ten minutes after now, and an empty status otherwise. Matches
// scheduled inside the threshold deliberately stay status-less.
func ResolveMatchTimeStatus(matchDateAndTime string, now time.Time) string {
	scheduled, err := utils.ParseFlexible(matchDateAndTime)
	if err != nil {
		return ""
	}
	if scheduled.Sub(now) >= upcomingThreshold {
		return models.StatusUpcoming
	}
	return ""
}

// CollectPlayerIDs flattens both rosters into a single id list and
// rejects any id that appears twice; a player cannot be fielded on
// both sides, or twice on one.
func CollectPlayerIDs(teamA, teamB models.TeamSideRequest) ([]uint, error) {
	seen := make(map[uint]bool)
	var ids []uint

	for _, side := range []models.TeamSideRequest{teamA, teamB} {
		for _, member := range side.PlayingMembers {
			if seen[member.PlayerID] {
				return nil, ErrDuplicatePlayers
			}
			seen[member.PlayerID] = true
			ids = append(ids, member.PlayerID)
		}
	}
	return ids, nil
}

// ValidateLeadership checks that a side's captain, vice captain and
// scorer are all drawn from its playing members.
func ValidateLeadership(side models.TeamSideRequest) error {
	roster := make(map[uint]bool, len(side.PlayingMembers))
	for _, member := range side.PlayingMembers {
		roster[member.PlayerID] = true
	}

	roles := []struct {
		name string
		ref  models.PlayerRef
	}{
		{"captain", side.Captain},
		{"viceCaptain", side.ViceCaptain},
		{"scorer", side.Scorer},
	}

	for _, role := range roles {
		if !roster[role.ref.PlayerID] {
			return fmt.Errorf("%w: %s of %s is not in playing members", ErrRoleNotInRoster, role.name, side.TeamName)
		}
	}
	return nil
}

// ValidateTeamMembership checks every playing member of a side against
// the Team document's roster. The stored team, not the submission, is
// the membership authority.
func ValidateTeamMembership(side models.TeamSideRequest, team models.Team) error {
	for _, member := range side.PlayingMembers {
		if !team.Members.Contains(member.PlayerID) {
			return fmt.Errorf("%w: player %s is not a member of team %s", ErrMemberNotInTeam, member.Name, team.TeamName)
		}
	}
	return nil
}

// CreateMatch runs the full creation workflow: validate the submission,
// normalize its timestamp, reject scheduling conflicts, persist the
// match, then fan out denormalized summaries to both teams and every
// participating player.
func (s *MatchService) CreateMatch(userNameAuth string, req models.CreateMatchRequest) (*models.Match, error) {
	if req.UserName != userNameAuth {
		return nil, ErrUnauthorizedUser
	}

	if err := ValidateOvers(req.MatchType, req.Overs); err != nil {
		return nil, err
	}

	if _, err := utils.ParseFlexible(req.MatchDateAndTime); err != nil {
		return nil, ErrInvalidMatchDate
	}

	matchTimeStatus := ResolveMatchTimeStatus(req.MatchDateAndTime, time.Now())

	teamIDs := []uint{req.TeamA.TeamID, req.TeamB.TeamID}
	var teams []models.Team
	if err := s.db.Where("id IN ?", teamIDs).Find(&teams).Error; err != nil {
		return nil, err
	}
	if len(teams) != 2 || req.TeamA.TeamID == req.TeamB.TeamID {
		return nil, ErrTeamsDoNotExist
	}

	playerIDs, err := CollectPlayerIDs(req.TeamA, req.TeamB)
	if err != nil {
		return nil, err
	}

	var playerCount int64
	if err := s.db.Model(&models.Player{}).Where("id IN ?", playerIDs).Count(&playerCount).Error; err != nil {
		return nil, err
	}
	if playerCount != int64(len(playerIDs)) {
		return nil, ErrPlayersDoNotExist
	}

	for _, side := range []models.TeamSideRequest{req.TeamA, req.TeamB} {
		if err := ValidateLeadership(side); err != nil {
			return nil, err
		}
	}

	for _, team := range teams {
		side := req.TeamA
		if team.ID == req.TeamB.TeamID {
			side = req.TeamB
		}
		if err := ValidateTeamMembership(side, team); err != nil {
			return nil, err
		}
	}

	normalized, err := utils.ConvertToTimestamp(req.MatchDateAndTime)
	if err != nil {
		return nil, ErrInvalidMatchDate
	}

	conflicting, err := s.countConflicts(normalized, playerIDs)
	if err != nil {
		return nil, err
	}
	if conflicting > 0 {
		return nil, ErrMatchConflict
	}

	now := utils.GenerateTimeStamp()
	match := models.Match{
		UserName:         req.UserName,
		Venue:            req.Venue,
		MatchType:        req.MatchType,
		Overs:            req.Overs,
		MatchDateAndTime: normalized,
		MatchTimeStatus:  matchTimeStatus,
		TeamA:            sideFromRequest(req.TeamA),
		TeamB:            sideFromRequest(req.TeamB),
		CurrentInning:    1,
		CreatedAt:        now,
		UpdatedAt:        now,
	}

	// Match and participant rows commit together; the fan-out below
	// does not share this transaction.
	tx := s.db.Begin()
	defer func() {
		if r := recover(); r != nil {
			tx.Rollback()
		}
	}()

	if err := tx.Create(&match).Error; err != nil {
		tx.Rollback()
		return nil, err
	}

	participants := make([]models.MatchParticipant, 0, len(playerIDs))
	for _, playerID := range playerIDs {
		participants = append(participants, models.MatchParticipant{
			MatchID:          match.ID,
			PlayerID:         playerID,
			MatchDateAndTime: normalized,
		})
	}
	if err := tx.Create(&participants).Error; err != nil {
		tx.Rollback()
		return nil, err
	}

	if err := tx.Commit().Error; err != nil {
		return nil, err
	}

	s.fanOutMatchSummary(&match, teamIDs, playerIDs)

	return &match, nil
}

// countConflicts counts participant rows for any of the given players
// at exactly the normalized timestamp. Equality is on the canonical
// string: two matches one minute apart never conflict.
func (s *MatchService) countConflicts(matchDateAndTime string, playerIDs []uint) (int64, error) {
	var count int64
	err := s.db.Model(&models.MatchParticipant{}).
		Where("match_date_and_time = ? AND player_id IN ?", matchDateAndTime, playerIDs).
		Count(&count).Error
	return count, err
}

// fanOutMatchSummary appends the denormalized summary to both team
// documents and every participating player document. Each write is
// attempted independently; failures are logged and never revert the
// already-committed match.
func (s *MatchService) fanOutMatchSummary(match *models.Match, teamIDs, playerIDs []uint) {
	summary := models.MatchSummary{
		MatchID:          match.ID,
		Venue:            match.Venue,
		MatchType:        match.MatchType,
		Overs:            match.Overs,
		MatchTimeStatus:  match.MatchTimeStatus,
		MatchDateAndTime: match.MatchDateAndTime,
		TeamA:            models.TeamRef{TeamID: match.TeamA.TeamID, TeamName: match.TeamA.TeamName},
		TeamB:            models.TeamRef{TeamID: match.TeamB.TeamID, TeamName: match.TeamB.TeamName},
	}

	payload, err := jsonbArrayElement(summary)
	if err != nil {
		log.Printf("Failed to encode match summary for match %d: %v", match.ID, err)
		return
	}

	if err := s.db.Model(&models.Team{}).Where("id IN ?", teamIDs).
		Update("matches", gorm.Expr("COALESCE(matches, '[]'::jsonb) || ?::jsonb", payload)).Error; err != nil {
		log.Printf("Failed to append match %d summary to teams %v: %v", match.ID, teamIDs, err)
	}

	if err := s.db.Model(&models.Player{}).Where("id IN ?", playerIDs).
		Update("matches", gorm.Expr("COALESCE(matches, '[]'::jsonb) || ?::jsonb", payload)).Error; err != nil {
		log.Printf("Failed to append match %d summary to players %v: %v", match.ID, playerIDs, err)
	}
}

// jsonbArrayElement wraps v in a single-element jsonb array so it can
// be appended to a jsonb list column with the || operator.
func jsonbArrayElement(v interface{}) (string, error) {
	data, err := json.Marshal([]interface{}{v})
	if err != nil {
		return "", err
	}
	return string(data), nil
}

func sideFromRequest(req models.TeamSideRequest) models.TeamSide {
	return models.TeamSide{
		TeamID:         req.TeamID,
		TeamName:       req.TeamName,
		Captain:        req.Captain,
		ViceCaptain:    req.ViceCaptain,
		Scorer:         req.Scorer,
		PlayingMembers: req.PlayingMembers,
	}
}

// ProjectMatch builds the listing entry for a match, widening the base
// projection for ENDED and LIVE statuses.
func ProjectMatch(match models.Match) models.MatchListEntry {
	entry := models.MatchListEntry{
		MatchID:          match.ID,
		MatchType:        match.MatchType,
		Overs:            match.Overs,
		Venue:            match.Venue,
		MatchTimeStatus:  match.MatchTimeStatus,
		MatchDateAndTime: match.MatchDateAndTime,
		CreatedAt:        match.CreatedAt,
		TeamA:            models.TeamRef{TeamID: match.TeamA.TeamID, TeamName: match.TeamA.TeamName},
		TeamB:            models.TeamRef{TeamID: match.TeamB.TeamID, TeamName: match.TeamB.TeamName},
	}

	switch match.MatchTimeStatus {
	case models.StatusEnded:
		entry.Innings = match.Innings
		entry.WinningTeamID = match.WinningTeamID
		winMargin := match.WinMargin
		entry.WinMargin = &winMargin
	case models.StatusLive:
		toss := match.Toss
		currentInning := match.CurrentInning
		entry.Toss = &toss
		entry.CurrentInning = &currentInning
		entry.Innings = match.Innings
	}

	return entry
}

// FetchMatches returns the caller's matches in the given status,
// projected per status. An empty result is reported as not found.
func (s *MatchService) FetchMatches(userName, matchTimeStatus string) ([]models.MatchListEntry, error) {
	var matches []models.Match
	if err := s.db.Where("user_name = ? AND match_time_status = ?", userName, matchTimeStatus).
		Find(&matches).Error; err != nil {
		return nil, err
	}

	if len(matches) == 0 {
		return nil, ErrNoMatchesFound
	}

	entries := make([]models.MatchListEntry, 0, len(matches))
	for _, match := range matches {
		entries = append(entries, ProjectMatch(match))
	}
	return entries, nil
}
