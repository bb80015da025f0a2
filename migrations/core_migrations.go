package migrations

import "gorm.io/gorm"

func GetCoreMigrations() []MigrationDefinition {
	return []MigrationDefinition{
		{
			Name: "2025_01_03_000000_create_players_table",
			Up: func(db *gorm.DB) error {
				return db.Exec(`
					CREATE TABLE IF NOT EXISTS players (
						id BIGSERIAL PRIMARY KEY,
						user_name VARCHAR(255) UNIQUE NOT NULL,
						name VARCHAR(255) NOT NULL,
						age INT DEFAULT 0,
						location VARCHAR(255),
						role_as_batsman VARCHAR(8) DEFAULT 'RHB',
						role_as_bowler VARCHAR(32),
						matches_played INT DEFAULT 0,
						total_runs_scored INT DEFAULT 0,
						total_wickets_taken INT DEFAULT 0,
						batting_stats JSONB DEFAULT '{}'::jsonb,
						bowling_stats JSONB DEFAULT '{}'::jsonb,
						fielding_stats JSONB DEFAULT '{}'::jsonb,
						captain_stats JSONB DEFAULT '{}'::jsonb,
						teams_played_in JSONB DEFAULT '[]'::jsonb,
						matches JSONB DEFAULT '[]'::jsonb,
						is_active BOOLEAN DEFAULT true,
						created_at VARCHAR(35),
						updated_at VARCHAR(35)
					);
					CREATE UNIQUE INDEX IF NOT EXISTS idx_players_user_name ON players(user_name);
					CREATE INDEX IF NOT EXISTS idx_players_name ON players(name);
				`).Error
			},
			Down: func(db *gorm.DB) error {
				return db.Exec("DROP TABLE IF EXISTS players CASCADE").Error
			},
		},
		{
			Name: "2025_01_04_000000_create_teams_table",
			Up: func(db *gorm.DB) error {
				return db.Exec(`
					CREATE TABLE IF NOT EXISTS teams (
						id BIGSERIAL PRIMARY KEY,
						user_name VARCHAR(255) NOT NULL,
						team_name VARCHAR(255) NOT NULL,
						location VARCHAR(255),
						members JSONB DEFAULT '[]'::jsonb,
						matches JSONB DEFAULT '[]'::jsonb,
						is_active BOOLEAN DEFAULT true,
						created_at VARCHAR(35),
						updated_at VARCHAR(35)
					);
					CREATE UNIQUE INDEX IF NOT EXISTS idx_teams_team_name_lower ON teams(LOWER(team_name));
					CREATE INDEX IF NOT EXISTS idx_teams_user_name ON teams(user_name);
				`).Error
			},
			Down: func(db *gorm.DB) error {
				return db.Exec("DROP TABLE IF EXISTS teams CASCADE").Error
			},
		},
		{
			Name: "2025_01_05_000000_create_matches_tables",
			Up: func(db *gorm.DB) error {
				if err := db.Exec(`
					CREATE TABLE IF NOT EXISTS matches (
						id BIGSERIAL PRIMARY KEY,
						user_name VARCHAR(255) NOT NULL,
						venue VARCHAR(255),
						match_type VARCHAR(16) NOT NULL,
						overs INT NOT NULL,
						match_date_and_time VARCHAR(35) NOT NULL,
						match_time_status VARCHAR(16),
						team_a JSONB NOT NULL,
						team_b JSONB NOT NULL,
						toss VARCHAR(255),
						current_inning INT DEFAULT 1,
						innings JSONB DEFAULT '[]'::jsonb,
						winning_team_id BIGINT,
						win_margin VARCHAR(64),
						created_at VARCHAR(35),
						updated_at VARCHAR(35)
					);
					CREATE INDEX IF NOT EXISTS idx_matches_user_name ON matches(user_name);
					CREATE INDEX IF NOT EXISTS idx_matches_time_status ON matches(match_time_status);
					CREATE INDEX IF NOT EXISTS idx_matches_date_and_time ON matches(match_date_and_time);
				`).Error; err != nil {
					return err
				}

				return db.Exec(`
					CREATE TABLE IF NOT EXISTS match_participants (
						id BIGSERIAL PRIMARY KEY,
						match_id BIGINT NOT NULL REFERENCES matches(id) ON DELETE CASCADE,
						player_id BIGINT NOT NULL,
						match_date_and_time VARCHAR(35) NOT NULL
					);
					CREATE INDEX IF NOT EXISTS idx_match_participants_schedule ON match_participants(player_id, match_date_and_time);
					CREATE INDEX IF NOT EXISTS idx_match_participants_match_id ON match_participants(match_id);
				`).Error
			},
			Down: func(db *gorm.DB) error {
				if err := db.Exec("DROP TABLE IF EXISTS match_participants CASCADE").Error; err != nil {
					return err
				}
				return db.Exec("DROP TABLE IF EXISTS matches CASCADE").Error
			},
		},
		{
			Name: "2025_01_06_000000_create_overs_table",
			Up: func(db *gorm.DB) error {
				return db.Exec(`
					CREATE TABLE IF NOT EXISTS overs (
						id BIGSERIAL PRIMARY KEY,
						match_id BIGINT NOT NULL REFERENCES matches(id) ON DELETE CASCADE,
						inning_number INT NOT NULL,
						over_number INT NOT NULL,
						bowler JSONB,
						deliveries JSONB DEFAULT '[]'::jsonb,
						history JSONB DEFAULT '[]'::jsonb,
						redo_stack JSONB DEFAULT '[]'::jsonb,
						created_at VARCHAR(35)
					);
					CREATE INDEX IF NOT EXISTS idx_overs_match_id ON overs(match_id);
				`).Error
			},
			Down: func(db *gorm.DB) error {
				return db.Exec("DROP TABLE IF EXISTS overs CASCADE").Error
			},
		},
	}
}
