package cron

import (
	"log"

	"core/services"

	"github.com/robfig/cron/v3"
)

type Scheduler struct {
	cron               *cron.Cron
	statusSweepService *services.StatusSweepService
}

func NewScheduler(statusSweepService *services.StatusSweepService) *Scheduler {
	// Create cron with seconds precision and logging
	c := cron.New(cron.WithSeconds(), cron.WithLogger(cron.VerbosePrintfLogger(log.Default())))

	return &Scheduler{
		cron:               c,
		statusSweepService: statusSweepService,
	}
}

// Start initializes and starts all scheduled jobs
func (s *Scheduler) Start() error {
	log.Println("Starting cron scheduler...")

	// Cron expression: "0 0 * * * *" = at minute 0 of every hour
	_, err := s.cron.AddFunc("0 0 * * * *", s.runStatusSweep)
	if err != nil {
		log.Printf("Error scheduling status sweep job: %v", err)
		return err
	}

	s.cron.Start()
	log.Println("Cron scheduler started successfully")

	return nil
}

// Stop gracefully shuts down the scheduler
func (s *Scheduler) Stop() {
	log.Println("Stopping cron scheduler...")
	s.cron.Stop()
	log.Println("Cron scheduler stopped")
}

// runStatusSweep marks overdue matches NOT_STARTED
func (s *Scheduler) runStatusSweep() {
	log.Println("Running match status sweep...")

	overdueCount, err := s.statusSweepService.GetOverdueMatchesCount()
	if err != nil {
		log.Printf("Error checking overdue matches count: %v", err)
		return
	}

	if overdueCount == 0 {
		log.Println("No overdue matches to sweep")
		return
	}

	log.Printf("Found %d overdue matches to sweep", overdueCount)

	if err := s.statusSweepService.SweepOverdueMatches(); err != nil {
		log.Printf("Error during status sweep: %v", err)
		return
	}

	log.Println("Match status sweep completed successfully")
}

// RunNow manually triggers the status sweep (useful for testing)
func (s *Scheduler) RunNow() {
	log.Println("Manually triggering status sweep...")
	s.runStatusSweep()
}
