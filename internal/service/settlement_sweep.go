package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"fx-wallet-ledger/internal/core/domain"
	"fx-wallet-ledger/internal/core/ports"

	"github.com/rs/zerolog"
)

const abandonedNote = "no gateway outcome recorded before sweep grace elapsed"

// SweepExecuted finishes what crashed or failed requests left behind:
//   - INITIATED entries past the grace period may or may not have reached the
//     provider, so they become UNKNOWN.
//   - EXECUTED entries past the grace period are applied.
//
// It reports the UNKNOWN backlog and returns how many entries were applied.
func (e *SettlementEngine) SweepExecuted(ctx context.Context) (int, error) {
	cutoff := e.now().Add(-e.cfg.SweepGrace)

	stale, err := e.journal.ListByStatus(ctx, domain.JournalStatusInitiated, cutoff, e.cfg.SweepBatchSize)
	if err != nil {
		return 0, fmt.Errorf("list initiated entries: %w", err)
	}
	for _, entry := range stale {
		moved, err := e.journal.Transition(ctx, nil, entry.ID, domain.JournalStatusInitiated, domain.JournalStatusUnknown, abandonedNote)
		if err != nil {
			return 0, fmt.Errorf("mark entry %s unknown: %w", entry.ID, err)
		}
		if moved {
			e.log.Error().Str("journal_id", entry.ID.String()).Str("reference", entry.Reference).
				Msg("abandoned fx settlement marked unknown")
		}
	}

	executed, err := e.journal.ListByStatus(ctx, domain.JournalStatusExecuted, cutoff, e.cfg.SweepBatchSize)
	if err != nil {
		return 0, fmt.Errorf("list executed entries: %w", err)
	}

	applied := 0
	var errs []error
	for i := range executed {
		entry := &executed[i]
		if _, err := e.applyExchange(ctx, entry); err != nil {
			errs = append(errs, fmt.Errorf("apply %s: %w", entry.ID, err))
			continue
		}
		if entry.Status == domain.JournalStatusApplied {
			applied++
		}
	}
	e.metrics.AddJournalSwept(applied)

	unknown, err := e.journal.CountByStatus(ctx, domain.JournalStatusUnknown)
	if err != nil {
		errs = append(errs, fmt.Errorf("count unknown entries: %w", err))
	} else {
		e.metrics.SetJournalUnknown(unknown)
		if unknown > 0 {
			e.log.Warn().Int64("count", unknown).Msg("settlements awaiting manual reconciliation")
		}
	}

	return applied, errors.Join(errs...)
}

// JournalSweeper periodically runs SweepExecuted.
type JournalSweeper struct {
	settlement ports.SettlementService
	interval   time.Duration
	log        zerolog.Logger
}

// NewJournalSweeper creates a new JournalSweeper.
func NewJournalSweeper(settlement ports.SettlementService, interval time.Duration, log zerolog.Logger) *JournalSweeper {
	if interval <= 0 {
		interval = time.Minute
	}
	return &JournalSweeper{
		settlement: settlement,
		interval:   interval,
		log:        log.With().Str("component", "journal_sweeper").Logger(),
	}
}

// Run sweeps until ctx is done.
func (s *JournalSweeper) Run(ctx context.Context) {
	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	s.log.Info().Dur("interval", s.interval).Msg("journal sweeper started")
	for {
		select {
		case <-ctx.Done():
			s.log.Info().Msg("journal sweeper stopped")
			return
		case <-ticker.C:
			s.sweepOnce(ctx)
		}
	}
}

func (s *JournalSweeper) sweepOnce(ctx context.Context) {
	applied, err := s.settlement.SweepExecuted(ctx)
	if err != nil {
		s.log.Error().Err(err).Int("applied", applied).Msg("journal sweep incomplete")
		return
	}
	if applied > 0 {
		s.log.Info().Int("applied", applied).Msg("journal sweep applied executed settlements")
	}
}
