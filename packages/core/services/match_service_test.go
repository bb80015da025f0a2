package services

import (
	"errors"
	"fmt"
	"path/filepath"
	"testing"
	"time"

	"core/models"
	"core/utils"

	"github.com/glebarez/sqlite"
	"gorm.io/gorm"
)

func openTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(filepath.Join(t.TempDir(), "core.db")), &gorm.Config{})
	if err != nil {
		t.Fatalf("open test db: %v", err)
	}
	if err := db.AutoMigrate(&models.Player{}, &models.Team{}, &models.Match{}, &models.MatchParticipant{}); err != nil {
		t.Fatalf("migrate test schema: %v", err)
	}
	return db
}

// seedTwoTeams persists six players split across two teams and returns
// the teams with their member id lists.
func seedTwoTeams(t *testing.T, db *gorm.DB) ([]models.Team, [][]uint) {
	t.Helper()

	var rosters [][]uint
	var teams []models.Team
	for i, teamName := range []string{"Kathmandu Kings", "Pokhara Rhinos"} {
		members := make(models.TeamMembers, 0, 3)
		ids := make([]uint, 0, 3)
		for j := 0; j < 3; j++ {
			player := models.Player{
				UserName: fmt.Sprintf("player_%d_%d", i, j),
				Name:     fmt.Sprintf("Player %d-%d", i, j),
				Age:      20 + j,
				Location: "Kathmandu",
				IsActive: true,
			}
			if err := db.Create(&player).Error; err != nil {
				t.Fatalf("seed player: %v", err)
			}
			members = append(members, models.TeamMember{
				PlayerID: player.ID,
				UserName: player.UserName,
				Name:     player.Name,
			})
			ids = append(ids, player.ID)
		}

		team := models.Team{
			UserName: "ravi_s",
			TeamName: teamName,
			Location: "Kathmandu",
			Members:  members,
			IsActive: true,
		}
		if err := db.Create(&team).Error; err != nil {
			t.Fatalf("seed team: %v", err)
		}
		teams = append(teams, team)
		rosters = append(rosters, ids)
	}

	return teams, rosters
}

func sideRequest(teamID uint, teamName string, memberIDs ...uint) models.TeamSideRequest {
	members := make([]models.PlayerRef, 0, len(memberIDs))
	for _, id := range memberIDs {
		members = append(members, models.PlayerRef{PlayerID: id, UserName: "u", Name: "n"})
	}
	return models.TeamSideRequest{
		TeamID:         teamID,
		TeamName:       teamName,
		Captain:        members[0],
		ViceCaptain:    members[1],
		Scorer:         members[2],
		PlayingMembers: members,
	}
}

func TestValidateOvers(t *testing.T) {
	tests := []struct {
		name      string
		matchType string
		overs     int
		wantErr   bool
	}{
		{"odi exact", models.MatchTypeODI, 50, false},
		{"odi wrong", models.MatchTypeODI, 20, true},
		{"t20 exact", models.MatchTypeT20, 20, false},
		{"t20 wrong", models.MatchTypeT20, 50, true},
		{"customized positive", models.MatchTypeCustomized, 7, false},
		{"customized zero", models.MatchTypeCustomized, 0, true},
		{"customized negative", models.MatchTypeCustomized, -5, true},
		{"unknown type", "TEST", 20, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateOvers(tt.matchType, tt.overs)
			if tt.wantErr && !errors.Is(err, ErrInvalidOversSelected) {
				t.Fatalf("ValidateOvers(%q, %d) = %v, want ErrInvalidOversSelected", tt.matchType, tt.overs, err)
			}
			if !tt.wantErr && err != nil {
				t.Fatalf("ValidateOvers(%q, %d) = %v, want nil", tt.matchType, tt.overs, err)
			}
		})
	}
}

func TestResolveMatchTimeStatus(t *testing.T) {
	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)

	tests := []struct {
		name      string
		scheduled time.Time
		want      string
	}{
		{"well ahead", now.Add(48 * time.Hour), models.StatusUpcoming},
		{"exactly ten minutes", now.Add(10 * time.Minute), models.StatusUpcoming},
		{"just inside threshold", now.Add(10*time.Minute - time.Second), ""},
		{"five minutes ahead", now.Add(5 * time.Minute), ""},
		{"in the past", now.Add(-time.Hour), ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			raw := utils.FormatTimestamp(tt.scheduled)
			if got := ResolveMatchTimeStatus(raw, now); got != tt.want {
				t.Fatalf("ResolveMatchTimeStatus(%q) = %q, want %q", raw, got, tt.want)
			}
		})
	}

	t.Run("unparseable date", func(t *testing.T) {
		if got := ResolveMatchTimeStatus("not-a-date", now); got != "" {
			t.Fatalf("ResolveMatchTimeStatus(garbage) = %q, want empty", got)
		}
	})
}

func TestCollectPlayerIDs(t *testing.T) {
	teamA := sideRequest(1, "Kings", 1, 2, 3)
	teamB := sideRequest(2, "Rhinos", 4, 5, 6)

	ids, err := CollectPlayerIDs(teamA, teamB)
	if err != nil {
		t.Fatalf("CollectPlayerIDs() = %v, want nil", err)
	}
	if len(ids) != 6 {
		t.Fatalf("CollectPlayerIDs() returned %d ids, want 6", len(ids))
	}

	t.Run("player on both sides", func(t *testing.T) {
		overlapping := sideRequest(2, "Rhinos", 3, 5, 6)
		if _, err := CollectPlayerIDs(teamA, overlapping); !errors.Is(err, ErrDuplicatePlayers) {
			t.Fatalf("CollectPlayerIDs(overlap) = %v, want ErrDuplicatePlayers", err)
		}
	})

	t.Run("player twice on one side", func(t *testing.T) {
		doubled := sideRequest(1, "Kings", 1, 2, 2)
		if _, err := CollectPlayerIDs(doubled, teamB); !errors.Is(err, ErrDuplicatePlayers) {
			t.Fatalf("CollectPlayerIDs(doubled) = %v, want ErrDuplicatePlayers", err)
		}
	})
}

func TestValidateLeadership(t *testing.T) {
	side := sideRequest(1, "Kings", 1, 2, 3)
	if err := ValidateLeadership(side); err != nil {
		t.Fatalf("ValidateLeadership(valid) = %v, want nil", err)
	}

	t.Run("captain outside roster", func(t *testing.T) {
		bad := side
		bad.Captain = models.PlayerRef{PlayerID: 99}
		if err := ValidateLeadership(bad); !errors.Is(err, ErrRoleNotInRoster) {
			t.Fatalf("ValidateLeadership(bad captain) = %v, want ErrRoleNotInRoster", err)
		}
	})

	t.Run("scorer outside roster", func(t *testing.T) {
		bad := side
		bad.Scorer = models.PlayerRef{PlayerID: 42}
		if err := ValidateLeadership(bad); !errors.Is(err, ErrRoleNotInRoster) {
			t.Fatalf("ValidateLeadership(bad scorer) = %v, want ErrRoleNotInRoster", err)
		}
	})
}

func TestValidateTeamMembership(t *testing.T) {
	team := models.Team{
		TeamName: "Kings",
		Members: models.TeamMembers{
			{PlayerID: 1}, {PlayerID: 2}, {PlayerID: 3},
		},
	}

	side := sideRequest(1, "Kings", 1, 2, 3)
	if err := ValidateTeamMembership(side, team); err != nil {
		t.Fatalf("ValidateTeamMembership(valid) = %v, want nil", err)
	}

	outsider := sideRequest(1, "Kings", 1, 2, 7)
	if err := ValidateTeamMembership(outsider, team); !errors.Is(err, ErrMemberNotInTeam) {
		t.Fatalf("ValidateTeamMembership(outsider) = %v, want ErrMemberNotInTeam", err)
	}
}

func TestProjectMatch(t *testing.T) {
	winner := uint(1)
	base := models.Match{
		ID:               7,
		MatchType:        models.MatchTypeT20,
		Overs:            20,
		Venue:            "TU Ground",
		MatchDateAndTime: "2025-06-01T12:00:00.000000000Z",
		CreatedAt:        "2025-05-20T09:00:00.000000000Z",
		TeamA:            models.TeamSide{TeamID: 1, TeamName: "Kings"},
		TeamB:            models.TeamSide{TeamID: 2, TeamName: "Rhinos"},
		Toss:             "Kings won the toss",
		CurrentInning:    2,
		Innings:          models.Innings{{InningNumber: 1}},
		WinningTeamID:    &winner,
		WinMargin:        "24 runs",
	}

	t.Run("upcoming keeps the base projection", func(t *testing.T) {
		match := base
		match.MatchTimeStatus = models.StatusUpcoming

		entry := ProjectMatch(match)
		if entry.MatchID != 7 || entry.TeamA.TeamName != "Kings" || entry.TeamB.TeamName != "Rhinos" {
			t.Fatalf("base fields missing in projection: %+v", entry)
		}
		if entry.Innings != nil || entry.WinningTeamID != nil || entry.Toss != nil || entry.CurrentInning != nil {
			t.Fatalf("upcoming projection leaked status fields: %+v", entry)
		}
	})

	t.Run("ended adds result fields only", func(t *testing.T) {
		match := base
		match.MatchTimeStatus = models.StatusEnded

		entry := ProjectMatch(match)
		if entry.Innings == nil || entry.WinningTeamID == nil || *entry.WinningTeamID != winner {
			t.Fatalf("ended projection missing result fields: %+v", entry)
		}
		if entry.WinMargin == nil || *entry.WinMargin != "24 runs" {
			t.Fatalf("ended projection missing win margin: %+v", entry)
		}
		if entry.Toss != nil || entry.CurrentInning != nil {
			t.Fatalf("ended projection leaked live fields: %+v", entry)
		}
	})

	t.Run("live adds progress fields only", func(t *testing.T) {
		match := base
		match.MatchTimeStatus = models.StatusLive

		entry := ProjectMatch(match)
		if entry.Toss == nil || *entry.Toss != "Kings won the toss" {
			t.Fatalf("live projection missing toss: %+v", entry)
		}
		if entry.CurrentInning == nil || *entry.CurrentInning != 2 {
			t.Fatalf("live projection missing current inning: %+v", entry)
		}
		if entry.Innings == nil {
			t.Fatalf("live projection missing innings: %+v", entry)
		}
		if entry.WinningTeamID != nil || entry.WinMargin != nil {
			t.Fatalf("live projection leaked result fields: %+v", entry)
		}
	})
}

func TestCreateMatchRejectsScheduleConflict(t *testing.T) {
	db := openTestDB(t)
	teams, rosters := seedTwoTeams(t, db)
	svc := NewMatchService(db)

	req := models.CreateMatchRequest{
		UserName:         "ravi_s",
		Venue:            "Tribhuvan University Ground",
		MatchType:        models.MatchTypeT20,
		Overs:            20,
		MatchDateAndTime: utils.FormatTimestamp(time.Now().Add(48 * time.Hour)),
		TeamA:            sideRequest(teams[0].ID, teams[0].TeamName, rosters[0]...),
		TeamB:            sideRequest(teams[1].ID, teams[1].TeamName, rosters[1]...),
	}

	match, err := svc.CreateMatch("ravi_s", req)
	if err != nil {
		t.Fatalf("first creation failed: %v", err)
	}
	if match.ID == 0 {
		t.Fatal("expected a persisted match id")
	}

	// Same players at the identical timestamp: the participant rows of
	// the first match must reject the second.
	if _, err := svc.CreateMatch("ravi_s", req); !errors.Is(err, ErrMatchConflict) {
		t.Fatalf("second creation at the same time = %v, want ErrMatchConflict", err)
	}

	// Conflict equality is on the exact timestamp; a minute later the
	// same players are free.
	req.MatchDateAndTime = utils.FormatTimestamp(time.Now().Add(48*time.Hour + time.Minute))
	if _, err := svc.CreateMatch("ravi_s", req); err != nil {
		t.Fatalf("creation one minute later = %v, want nil", err)
	}
}

func TestFetchMatchesEmptyResultIsNotFound(t *testing.T) {
	db := openTestDB(t)
	svc := NewMatchService(db)

	if _, err := svc.FetchMatches("ravi_s", models.StatusEnded); !errors.Is(err, ErrNoMatchesFound) {
		t.Fatalf("FetchMatches on empty table = %v, want ErrNoMatchesFound", err)
	}
}

func TestFetchMatchesFiltersByOwnerAndStatus(t *testing.T) {
	db := openTestDB(t)
	svc := NewMatchService(db)

	seed := []models.Match{
		{UserName: "ravi_s", Venue: "TU Ground", MatchType: models.MatchTypeT20, Overs: 20,
			MatchDateAndTime: utils.GenerateTimeStamp(), MatchTimeStatus: models.StatusUpcoming},
		{UserName: "ravi_s", Venue: "TU Ground", MatchType: models.MatchTypeT20, Overs: 20,
			MatchDateAndTime: utils.GenerateTimeStamp(), MatchTimeStatus: models.StatusUpcoming},
		{UserName: "ravi_s", Venue: "TU Ground", MatchType: models.MatchTypeT20, Overs: 20,
			MatchDateAndTime: utils.GenerateTimeStamp(), MatchTimeStatus: models.StatusEnded},
		{UserName: "anil_g", Venue: "TU Ground", MatchType: models.MatchTypeT20, Overs: 20,
			MatchDateAndTime: utils.GenerateTimeStamp(), MatchTimeStatus: models.StatusUpcoming},
	}
	for i := range seed {
		if err := db.Create(&seed[i]).Error; err != nil {
			t.Fatalf("seed match: %v", err)
		}
	}

	entries, err := svc.FetchMatches("ravi_s", models.StatusUpcoming)
	if err != nil {
		t.Fatalf("FetchMatches(ravi_s, UPCOMING) = %v, want nil", err)
	}
	if len(entries) != 2 {
		t.Fatalf("got %d upcoming matches, want 2", len(entries))
	}

	if _, err := svc.FetchMatches("anil_g", models.StatusEnded); !errors.Is(err, ErrNoMatchesFound) {
		t.Fatalf("FetchMatches(anil_g, ENDED) = %v, want ErrNoMatchesFound", err)
	}
}
