package migrations

import "gorm.io/gorm"

func GetAuthMigrations() []MigrationDefinition {
	return []MigrationDefinition{
		{
			Name: "2025_01_01_000000_create_users_table",
			Up: func(db *gorm.DB) error {
				return db.Exec(`
					CREATE TABLE IF NOT EXISTS users (
						id SERIAL PRIMARY KEY,
						first_name VARCHAR(255),
						last_name VARCHAR(255),
						user_name VARCHAR(255) UNIQUE NOT NULL,
						email VARCHAR(255) UNIQUE NOT NULL,
						phone VARCHAR(32),
						password VARCHAR(255) NOT NULL,
						role VARCHAR(16) DEFAULT 'USER',
						is_2fa BOOLEAN DEFAULT false,
						is_active BOOLEAN DEFAULT true,
						created_at VARCHAR(35),
						updated_at VARCHAR(35)
					);
					CREATE INDEX IF NOT EXISTS idx_users_email ON users(email);
					CREATE UNIQUE INDEX IF NOT EXISTS idx_users_user_name ON users(user_name);
				`).Error
			},
			Down: func(db *gorm.DB) error {
				return db.Exec("DROP TABLE IF EXISTS users CASCADE").Error
			},
		},
		{
			Name: "2025_01_02_000000_create_otps_table",
			Up: func(db *gorm.DB) error {
				return db.Exec(`
					CREATE TABLE IF NOT EXISTS otps (
						id SERIAL PRIMARY KEY,
						email VARCHAR(255) NOT NULL,
						otp_type VARCHAR(32) NOT NULL,
						hashed_otp VARCHAR(255) NOT NULL,
						otp_expiry VARCHAR(35),
						is_validated BOOLEAN DEFAULT false,
						created_at VARCHAR(35),
						updated_at VARCHAR(35)
					);
					CREATE UNIQUE INDEX IF NOT EXISTS idx_otps_email_type ON otps(email, otp_type);
				`).Error
			},
			Down: func(db *gorm.DB) error {
				return db.Exec("DROP TABLE IF EXISTS otps CASCADE").Error
			},
		},
		{
			Name: "2025_01_03_000000_create_events_table",
			Up: func(db *gorm.DB) error {
				return db.Exec(`
					CREATE TABLE IF NOT EXISTS events (
						id SERIAL PRIMARY KEY,
						event_type VARCHAR(64) NOT NULL,
						user_name VARCHAR(255),
						url VARCHAR(512) NOT NULL,
						ip_address VARCHAR(64),
						http_method VARCHAR(16) NOT NULL,
						request_payload TEXT,
						created_at VARCHAR(35)
					);
					CREATE INDEX IF NOT EXISTS idx_events_event_type ON events(event_type);
					CREATE INDEX IF NOT EXISTS idx_events_user_name ON events(user_name);
				`).Error
			},
			Down: func(db *gorm.DB) error {
				return db.Exec("DROP TABLE IF EXISTS events CASCADE").Error
			},
		},
	}
}
