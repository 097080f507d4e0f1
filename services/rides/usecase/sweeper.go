package usecase

import (
	"context"
	"time"

	"github.com/piresc/towjek/internal/pkg/logger"
	"github.com/piresc/towjek/services/rides"
)

// Sweeper periodically expires overdue proposals
type Sweeper struct {
	uc       rides.RideUC
	interval time.Duration
}

// NewSweeper creates a sweeper running every interval
func NewSweeper(uc rides.RideUC, interval time.Duration) *Sweeper {
	return &Sweeper{uc: uc, interval: interval}
}

// Run sweeps until ctx is cancelled
func (s *Sweeper) Run(ctx context.Context) {
	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	logger.Info("Proposal expiry sweeper started", logger.Duration("interval", s.interval))

	for {
		select {
		case <-ticker.C:
			if _, err := s.uc.ExpireProposals(ctx); err != nil && ctx.Err() == nil {
				logger.Error("Proposal expiry sweep failed", logger.Err(err))
			}
		case <-ctx.Done():
			logger.Info("Proposal expiry sweeper stopped")
			return
		}
	}
}
