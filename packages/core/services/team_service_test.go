package services

import (
	"errors"
	"fmt"
	"testing"

	"core/models"
)

func TestGetAllTeamsCountsOnlyActiveTeams(t *testing.T) {
	db := openTestDB(t)
	svc := NewTeamService(db, NewPlayerService(db))

	for i := 0; i < 3; i++ {
		team := models.Team{
			UserName: "ravi_s",
			TeamName: fmt.Sprintf("Team %d", i),
			Location: "Kathmandu",
			IsActive: true,
		}
		if err := db.Create(&team).Error; err != nil {
			t.Fatalf("seed team: %v", err)
		}
	}
	if err := db.Model(&models.Team{}).Where("team_name = ?", "Team 2").
		Update("is_active", false).Error; err != nil {
		t.Fatalf("deactivate team: %v", err)
	}

	resp, err := svc.GetAllTeams(1, 10)
	if err != nil {
		t.Fatalf("GetAllTeams = %v, want nil", err)
	}
	if resp.TotalTeamCount != 2 {
		t.Errorf("totalTeamCount = %d, want 2", resp.TotalTeamCount)
	}
	if len(resp.Teams) != 2 {
		t.Errorf("got %d teams, want 2", len(resp.Teams))
	}
}

func TestGetAllTeamsAllInactiveIsNotFound(t *testing.T) {
	db := openTestDB(t)
	svc := NewTeamService(db, NewPlayerService(db))

	team := models.Team{UserName: "ravi_s", TeamName: "Ghost XI", Location: "Kathmandu", IsActive: true}
	if err := db.Create(&team).Error; err != nil {
		t.Fatalf("seed team: %v", err)
	}
	if err := db.Model(&models.Team{}).Where("id = ?", team.ID).
		Update("is_active", false).Error; err != nil {
		t.Fatalf("deactivate team: %v", err)
	}

	if _, err := svc.GetAllTeams(1, 10); !errors.Is(err, ErrNoTeamsFound) {
		t.Fatalf("GetAllTeams with only inactive teams = %v, want ErrNoTeamsFound", err)
	}
}

func TestGetAllPlayersCountsOnlyActivePlayers(t *testing.T) {
	db := openTestDB(t)
	svc := NewPlayerService(db)

	for i := 0; i < 3; i++ {
		player := models.Player{
			UserName: fmt.Sprintf("player_%d", i),
			Name:     fmt.Sprintf("Player %d", i),
			Age:      20 + i,
			Location: "Kathmandu",
			IsActive: true,
		}
		if err := db.Create(&player).Error; err != nil {
			t.Fatalf("seed player: %v", err)
		}
	}
	if err := db.Model(&models.Player{}).Where("user_name = ?", "player_2").
		Update("is_active", false).Error; err != nil {
		t.Fatalf("deactivate player: %v", err)
	}

	resp, err := svc.GetAllPlayers(1, 10)
	if err != nil {
		t.Fatalf("GetAllPlayers = %v, want nil", err)
	}
	if resp.TotalPlayerCount != 2 {
		t.Errorf("totalPlayerCount = %d, want 2", resp.TotalPlayerCount)
	}
	if len(resp.Players) != 2 {
		t.Errorf("got %d players, want 2", len(resp.Players))
	}
}
