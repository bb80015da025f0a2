package services

import (
	"log"
	"time"

	"core/models"
	"core/utils"

	"gorm.io/gorm"
)

// StatusSweepService downgrades matches whose scheduled time has passed
// without anyone starting them. LIVE, ENDED and CANCELLED matches are
// never touched; everything else past its start time becomes
// NOT_STARTED. Runs from the cron scheduler.
type StatusSweepService struct {
	db *gorm.DB
}

func NewStatusSweepService(db *gorm.DB) *StatusSweepService {
	return &StatusSweepService{
		db: db,
	}
}

// GetOverdueMatchesCount counts matches the sweep would touch.
func (s *StatusSweepService) GetOverdueMatchesCount() (int64, error) {
	var count int64
	err := s.overdueQuery(time.Now()).Count(&count).Error
	return count, err
}

// SweepOverdueMatches marks every overdue match NOT_STARTED.
func (s *StatusSweepService) SweepOverdueMatches() error {
	now := time.Now()
	result := s.overdueQuery(now).Updates(map[string]interface{}{
		"match_time_status": models.StatusNotStarted,
		"updated_at":        utils.FormatTimestamp(now),
	})
	if result.Error != nil {
		log.Printf("Error sweeping overdue matches: %v", result.Error)
		return result.Error
	}

	log.Printf("Updated %d matches to %s", result.RowsAffected, models.StatusNotStarted)
	return nil
}

func (s *StatusSweepService) overdueQuery(now time.Time) *gorm.DB {
	// Canonical timestamps sort lexicographically, so string comparison
	// against the formatted cutoff is a correct time comparison.
	cutoff := utils.FormatTimestamp(now)
	return s.db.Model(&models.Match{}).
		Where("match_time_status NOT IN ?", []string{models.StatusLive, models.StatusEnded, models.StatusCancelled}).
		Where("match_date_and_time < ?", cutoff)
}
