package fixtures

import (
	"path/filepath"
	"testing"

	authModels "auth/models"
	"core/models"

	"github.com/glebarez/sqlite"
	"gorm.io/gorm"
)

func openTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(filepath.Join(t.TempDir(), "fixtures.db")), &gorm.Config{})
	if err != nil {
		t.Fatalf("open test db: %v", err)
	}
	if err := db.AutoMigrate(
		&authModels.User{}, &models.Player{}, &models.Team{},
		&models.Match{}, &models.MatchParticipant{},
	); err != nil {
		t.Fatalf("migrate test schema: %v", err)
	}
	return db
}

func TestGenerateTestDataSeedsValidPlayerRoles(t *testing.T) {
	db := openTestDB(t)
	if err := NewFixtures(db).GenerateTestData(); err != nil {
		t.Fatalf("GenerateTestData failed: %v", err)
	}

	batsmanRoles := make(map[string]bool, len(models.BatsmanRoles))
	for _, role := range models.BatsmanRoles {
		batsmanRoles[role] = true
	}
	bowlerRoles := make(map[string]bool, len(models.BowlerRoles))
	for _, role := range models.BowlerRoles {
		bowlerRoles[role] = true
	}

	var players []models.Player
	if err := db.Find(&players).Error; err != nil {
		t.Fatalf("load seeded players: %v", err)
	}
	if len(players) == 0 {
		t.Fatal("expected seeded players")
	}

	// Seed data must pass the same role enums the API enforces.
	for _, player := range players {
		if !batsmanRoles[player.RoleAsBatsman] {
			t.Errorf("player %s has batting role %q outside BatsmanRoles", player.UserName, player.RoleAsBatsman)
		}
		if !bowlerRoles[player.RoleAsBowler] {
			t.Errorf("player %s has bowling role %q outside BowlerRoles", player.UserName, player.RoleAsBowler)
		}
	}
}
