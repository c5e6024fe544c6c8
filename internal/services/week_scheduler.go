package services

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/robfig/cron/v3"
	"github.com/sirupsen/logrus"
)

// WeekScheduler advances every club one week on a fixed interval.
type WeekScheduler struct {
	clubs     *ClubService
	logger    *logrus.Entry
	cron      *cron.Cron
	interval  time.Duration
	mu        sync.Mutex
	isRunning bool
}

func NewWeekScheduler(clubs *ClubService, interval time.Duration, logger *logrus.Entry) *WeekScheduler {
	return &WeekScheduler{
		clubs:    clubs,
		logger:   logger,
		cron:     cron.New(),
		interval: interval,
	}
}

func (s *WeekScheduler) Start() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.isRunning {
		return fmt.Errorf("week scheduler is already running")
	}
	if s.interval <= 0 {
		return fmt.Errorf("week scheduler interval must be positive")
	}

	schedule := fmt.Sprintf("@every %s", s.interval.String())
	if _, err := s.cron.AddFunc(schedule, s.AdvanceAll); err != nil {
		return fmt.Errorf("failed to schedule week advance: %w", err)
	}

	s.cron.Start()
	s.isRunning = true
	s.logger.WithField("interval", s.interval).Info("Week scheduler started")
	return nil
}

// Stop waits for a running advance to finish.
func (s *WeekScheduler) Stop() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.isRunning {
		return
	}

	ctx := s.cron.Stop()
	<-ctx.Done()

	s.isRunning = false
	s.logger.Info("Week scheduler stopped")
}

// AdvanceAll advances each club once. A failing club is logged and skipped.
func (s *WeekScheduler) AdvanceAll() {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Minute)
	defer cancel()

	clubs, err := s.clubs.ListClubs(ctx)
	if err != nil {
		s.logger.WithError(err).Error("Failed to list clubs for week advance")
		return
	}

	advanced := 0
	for _, club := range clubs {
		if _, err := s.clubs.AdvanceWeek(ctx, club.ID); err != nil {
			s.logger.WithError(err).WithField("club_id", club.ID).Error("Failed to advance club week")
			continue
		}
		advanced++
	}

	s.logger.WithFields(logrus.Fields{
		"clubs":    len(clubs),
		"advanced": advanced,
	}).Info("Scheduled week advance finished")
}
