package fixtures

import (
	"fmt"
	"log"
	"time"

	authModels "auth/models"
	authUtils "auth/utils"
	"core/models"
	coreUtils "core/utils"

	"gorm.io/gorm"
)

type Fixtures struct {
	db *gorm.DB
}

func NewFixtures(db *gorm.DB) *Fixtures {
	return &Fixtures{db: db}
}

var fixtureNames = []string{
	"Ravi Sharma", "Anil Gurung", "Bikash Thapa", "Sunil Karki",
	"Dipesh Rai", "Kiran Shrestha", "Nabin Magar", "Prakash Lama",
	"Sagar Adhikari", "Umesh Basnet", "Roshan Tamang", "Hari Poudel",
}

// GenerateTestData seeds users, players, two full teams and a handful
// of matches across every matchTimeStatus.
func (f *Fixtures) GenerateTestData() error {
	log.Println("Starting fixtures generation...")

	users, err := f.generateUsers()
	if err != nil {
		return fmt.Errorf("failed to generate users: %w", err)
	}

	players, err := f.generatePlayers()
	if err != nil {
		return fmt.Errorf("failed to generate players: %w", err)
	}

	teams, err := f.generateTeams(users[0], players)
	if err != nil {
		return fmt.Errorf("failed to generate teams: %w", err)
	}

	matchCount, err := f.generateMatches(users[0], teams)
	if err != nil {
		return fmt.Errorf("failed to generate matches: %w", err)
	}

	log.Println("Fixtures generated successfully!")
	log.Printf("Created %d users, %d players, %d teams and %d matches",
		len(users), len(players), len(teams), matchCount)
	return nil
}

func (f *Fixtures) generateUsers() ([]authModels.User, error) {
	hashedPassword, err := authUtils.HashPassword("password123")
	if err != nil {
		return nil, err
	}

	users := make([]authModels.User, 0, 4)
	specs := []struct {
		userName, email, role string
	}{
		{"ravi_s", "ravi@scoreliklo.test", authModels.RoleAdmin},
		{"anil_g", "anil@scoreliklo.test", authModels.RoleUser},
		{"bikash_t", "bikash@scoreliklo.test", authModels.RoleUser},
		{"sunil_k", "sunil@scoreliklo.test", authModels.RoleUser},
	}

	now := authUtils.GenerateTimeStamp()
	for _, spec := range specs {
		user := authModels.User{
			FirstName: spec.userName,
			UserName:  spec.userName,
			Email:     spec.email,
			Password:  hashedPassword,
			Role:      spec.role,
			IsActive:  true,
			CreatedAt: now,
			UpdatedAt: now,
		}
		if err := f.db.Create(&user).Error; err != nil {
			return nil, err
		}
		users = append(users, user)
	}

	return users, nil
}

func (f *Fixtures) generatePlayers() ([]models.Player, error) {
	players := make([]models.Player, 0, len(fixtureNames))

	for i, name := range fixtureNames {
		now := coreUtils.GenerateTimeStamp()
		batsmanRole := "RHB"
		if i%3 == 0 {
			batsmanRole = "LHB"
		}

		player := models.Player{
			UserName:      fmt.Sprintf("player_%02d", i+1),
			Name:          name,
			Age:           19 + i,
			Location:      "Kathmandu",
			RoleAsBatsman: batsmanRole,
			RoleAsBowler:  models.BowlerRoles[i%len(models.BowlerRoles)],
			BowlingStats:  models.BowlingStats{BestBowling: "0/0"},
			IsActive:      true,
			CreatedAt:     now,
			UpdatedAt:     now,
		}
		if err := f.db.Create(&player).Error; err != nil {
			return nil, err
		}
		players = append(players, player)
	}

	return players, nil
}

func (f *Fixtures) generateTeams(owner authModels.User, players []models.Player) ([]models.Team, error) {
	half := len(players) / 2
	rosters := [][]models.Player{players[:half], players[half:]}
	names := []string{"Kathmandu Kings", "Pokhara Rhinos"}

	teams := make([]models.Team, 0, 2)
	for i, roster := range rosters {
		members := make(models.TeamMembers, 0, len(roster))
		for _, p := range roster {
			members = append(members, models.TeamMember{
				PlayerID:      p.ID,
				UserName:      p.UserName,
				Name:          p.Name,
				Age:           p.Age,
				Location:      p.Location,
				RoleAsBatsman: p.RoleAsBatsman,
				RoleAsBowler:  p.RoleAsBowler,
			})
		}

		now := coreUtils.GenerateTimeStamp()
		team := models.Team{
			UserName:  owner.UserName,
			TeamName:  names[i],
			Location:  "Kathmandu",
			Members:   members,
			IsActive:  true,
			CreatedAt: now,
			UpdatedAt: now,
		}
		if err := f.db.Create(&team).Error; err != nil {
			return nil, err
		}

		// Mirror the entry every member would have picked up on create
		entry := models.TeamPlayedIn{TeamID: team.ID, TeamName: team.TeamName}
		for _, p := range roster {
			if err := f.db.Model(&models.Player{}).Where("id = ?", p.ID).
				Update("teams_played_in", models.TeamsPlayedIn{entry}).Error; err != nil {
				return nil, err
			}
		}

		teams = append(teams, team)
	}

	return teams, nil
}

func (f *Fixtures) teamSide(team models.Team) models.TeamSide {
	members := team.Members
	refs := make([]models.PlayerRef, 0, len(members))
	for _, m := range members {
		refs = append(refs, models.PlayerRef{PlayerID: m.PlayerID, UserName: m.UserName, Name: m.Name})
	}

	return models.TeamSide{
		TeamID:         team.ID,
		TeamName:       team.TeamName,
		Captain:        refs[0],
		ViceCaptain:    refs[1],
		Scorer:         refs[2],
		PlayingMembers: refs,
	}
}

func (f *Fixtures) generateMatches(owner authModels.User, teams []models.Team) (int, error) {
	if len(teams) < 2 {
		return 0, fmt.Errorf("need two teams to seed matches")
	}

	sideA := f.teamSide(teams[0])
	sideB := f.teamSide(teams[1])
	winnerID := teams[0].ID

	specs := []struct {
		status   string
		schedule time.Time
		winner   *uint
	}{
		{models.StatusUpcoming, time.Now().Add(48 * time.Hour), nil},
		{models.StatusLive, time.Now().Add(-time.Hour), nil},
		{models.StatusEnded, time.Now().Add(-72 * time.Hour), &winnerID},
		{models.StatusNotStarted, time.Now().Add(-24 * time.Hour), nil},
	}

	for i, spec := range specs {
		now := coreUtils.GenerateTimeStamp()
		match := models.Match{
			UserName:         owner.UserName,
			Venue:            "Tribhuvan University Ground",
			MatchType:        models.MatchTypeT20,
			Overs:            20,
			MatchDateAndTime: coreUtils.FormatTimestamp(spec.schedule),
			MatchTimeStatus:  spec.status,
			TeamA:            sideA,
			TeamB:            sideB,
			CurrentInning:    1,
			CreatedAt:        now,
			UpdatedAt:        now,
		}
		if spec.status == models.StatusLive {
			match.Toss = fmt.Sprintf("%s won the toss and elected to bat", sideA.TeamName)
		}
		if spec.winner != nil {
			match.WinningTeamID = spec.winner
			match.WinMargin = "24 runs"
		}

		if err := f.db.Create(&match).Error; err != nil {
			return i, err
		}

		participants := make([]models.MatchParticipant, 0,
			len(sideA.PlayingMembers)+len(sideB.PlayingMembers))
		for _, ref := range append(sideA.PlayingMembers, sideB.PlayingMembers...) {
			participants = append(participants, models.MatchParticipant{
				MatchID:          match.ID,
				PlayerID:         ref.PlayerID,
				MatchDateAndTime: match.MatchDateAndTime,
			})
		}
		if err := f.db.Create(&participants).Error; err != nil {
			return i, err
		}
	}

	return len(specs), nil
}

// ClearAllData removes every seeded row.
func (f *Fixtures) ClearAllData() error {
	log.Println("Clearing all fixture data...")

	tables := []string{
		"match_participants",
		"overs",
		"matches",
		"teams",
		"players",
		"events",
		"otps",
		"users",
	}
	for _, table := range tables {
		if err := f.db.Exec("DELETE FROM " + table).Error; err != nil {
			return fmt.Errorf("failed to clear %s: %w", table, err)
		}
	}

	log.Println("All fixture data cleared")
	return nil
}
