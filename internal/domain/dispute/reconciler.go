package dispute

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"disputeresolver/internal/messaging"
	"disputeresolver/pkg/logger"
	"disputeresolver/pkg/metrics"

	"github.com/jonboulle/clockwork"
)

// ReconcilerConfig controls the reconciliation schedule.
type ReconcilerConfig struct {
	// Interval between scans.
	Interval time.Duration
	// InitialDelay before the first scan.
	InitialDelay time.Duration
	// DwellDuration a dispute may sit in manual review before it is
	// auto-approved.
	DwellDuration time.Duration
}

// Reconciler promotes disputes stuck in manual review past the dwell
// period to verified failure with a refund. It is the only writer for
// time-based resolution and the only asynchronous mutation path.
type Reconciler struct {
	l       *logger.Logger
	repo    DisputeRepo
	clock   clockwork.Clock
	cfg     ReconcilerConfig
	events  EventSink
	updates messaging.Publisher // nil when no broker is configured
}

// NewReconciler wires the reconciliation scheduler.
func NewReconciler(
	l *logger.Logger,
	repo DisputeRepo,
	clock clockwork.Clock,
	cfg ReconcilerConfig,
	events EventSink,
	updates messaging.Publisher,
) *Reconciler {
	return &Reconciler{
		l:       l,
		repo:    repo,
		clock:   clock,
		cfg:     cfg,
		events:  events,
		updates: updates,
	}
}

// Start runs the periodic scan until ctx is cancelled. Scans are invoked
// synchronously from this loop, so runs never overlap: a slow scan delays
// the next tick instead of racing it.
func (r *Reconciler) Start(ctx context.Context) error {
	r.l.Info("reconciler starting: interval=%s initial_delay=%s dwell=%s",
		r.cfg.Interval, r.cfg.InitialDelay, r.cfg.DwellDuration)

	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-r.clock.After(r.cfg.InitialDelay):
	}

	ticker := r.clock.NewTicker(r.cfg.Interval)
	defer ticker.Stop()

	for {
		if promoted, err := r.RunOnce(ctx); err != nil {
			r.l.Error("reconciliation scan failed: error=%v", err)
		} else if promoted > 0 {
			r.l.Info("reconciliation scan done: promoted=%d", promoted)
		}

		select {
		case <-ctx.Done():
			r.l.Info("reconciler stopped")
			return ctx.Err()
		case <-ticker.Chan():
		}
	}
}

// RunOnce scans manual-review disputes and promotes those past the dwell
// period. A failure on one record is logged and the scan continues; the
// next period picks up whatever was left behind.
func (r *Reconciler) RunOnce(ctx context.Context) (int, error) {
	metrics.ReconcilerRunsTotal.Inc()

	candidates, err := r.repo.GetDisputesInStatus(ctx, StatusManualReview)
	if err != nil {
		return 0, fmt.Errorf("list manual review disputes: %w", err)
	}
	if len(candidates) == 0 {
		return 0, nil
	}

	now := r.clock.Now().UTC()
	promoted := 0

	for _, d := range candidates {
		if now.Sub(d.CreatedAt) < r.cfg.DwellDuration {
			continue
		}

		if err := r.promote(ctx, d, now); err != nil {
			metrics.ReconcilerRecordFailuresTotal.Inc()
			r.l.Error("auto-approve failed: dispute_id=%d error=%v", d.ID, err)
			continue
		}
		promoted++
	}

	return promoted, nil
}

func (r *Reconciler) promote(ctx context.Context, d Dispute, now time.Time) error {
	d.Status = StatusVerifiedFailure
	d.SettlementRef = NewSettlementRef()
	d.Remarks = remarksAutoApproved
	resolvedAt := now
	d.ResolvedAt = &resolvedAt

	if err := r.repo.UpdateDispute(ctx, d); err != nil {
		return fmt.Errorf("update dispute: %w", err)
	}
	metrics.ReconcilerPromotionsTotal.Inc()

	r.l.Info("dispute auto-approved: id=%s transaction_ref=%s settlement_ref=%s",
		d.DisplayID(), d.TransactionRef, d.SettlementRef)

	r.emit(ctx, d, now)
	return nil
}

// emit mirrors the lifecycle manager's best-effort event emission.
func (r *Reconciler) emit(ctx context.Context, d Dispute, now time.Time) {
	payload, _ := json.Marshal(d)

	if r.events != nil {
		ev := NewDisputeEvent{
			DisputeID: d.ID,
			Kind:      DisputeEventAutoApproved,
			Data:      payload,
			CreatedAt: now,
		}
		if err := r.events.CreateDisputeEvent(ctx, ev); err != nil {
			r.l.Error("record dispute event: dispute_id=%d error=%v", d.ID, err)
		}
	}

	if r.updates != nil {
		envelope, err := messaging.NewEnvelope(d.TransactionRef, "dispute.updated", d)
		if err == nil {
			err = r.updates.Publish(ctx, envelope)
		}
		if err != nil {
			r.l.Error("publish dispute update: dispute_id=%d error=%v", d.ID, err)
		}
	}
}
