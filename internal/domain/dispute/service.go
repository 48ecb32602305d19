package dispute

import (
	"context"
	"encoding/json"
	"fmt"
	"regexp"

	"disputeresolver/internal/messaging"
	"disputeresolver/pkg/logger"
	"disputeresolver/pkg/metrics"

	"github.com/jonboulle/clockwork"
)

var phonePattern = regexp.MustCompile(`^\+?[0-9]{10,15}$`)

// FileDisputeRequest is the input for filing a new dispute.
type FileDisputeRequest struct {
	TransactionRef string
	Counterparty   string
	Amount         float64
	FilerPhone     string
	Reason         string
}

// DisputeService orchestrates the dispute lifecycle: filing, lookups
// and administrative deletion. It is the sole writer at filing time.
type DisputeService struct {
	l        *logger.Logger
	repo     DisputeRepo
	verifier VerificationClient
	policy   Policy
	clock    clockwork.Clock
	events   EventSink
	updates  messaging.Publisher // nil when no broker is configured
}

// NewDisputeService wires the lifecycle manager. The updates publisher
// may be nil; event emission is best-effort either way.
func NewDisputeService(
	l *logger.Logger,
	repo DisputeRepo,
	verifier VerificationClient,
	policy Policy,
	clock clockwork.Clock,
	events EventSink,
	updates messaging.Publisher,
) *DisputeService {
	return &DisputeService{
		l:        l,
		repo:     repo,
		verifier: verifier,
		policy:   policy,
		clock:    clock,
		events:   events,
		updates:  updates,
	}
}

// FileDispute runs the filing pipeline: validate, duplicate check, oracle
// call, policy decision, single persist. Either the whole pipeline
// completes or nothing is persisted.
func (s *DisputeService) FileDispute(ctx context.Context, req FileDisputeRequest) (*Dispute, error) {
	if err := validateFiling(req); err != nil {
		return nil, err
	}

	existing, err := s.repo.GetDisputeByTransactionRef(ctx, req.TransactionRef)
	if err != nil {
		return nil, fmt.Errorf("check duplicate dispute: %w", err)
	}
	if existing != nil {
		return nil, ErrAlreadyExists
	}

	newDispute := NewDispute{
		Status: StatusPending,
		DisputeInfo: DisputeInfo{
			TransactionRef: req.TransactionRef,
			Counterparty:   req.Counterparty,
			Amount:         req.Amount,
			FilerPhone:     req.FilerPhone,
			Reason:         req.Reason,
		},
		CreatedAt: s.clock.Now().UTC(),
	}

	// Single best-effort oracle call; failures degrade to a defined outcome.
	result, verr := s.verifier.Check(ctx, req.TransactionRef)
	outcome := Classify(result, verr, req.Amount)
	if outcome == OutcomeOracleUnavailable {
		s.l.Warn("verification oracle unavailable: transaction_ref=%s error=%v", req.TransactionRef, verr)
	}
	metrics.VerificationOutcomesTotal.WithLabelValues(string(outcome)).Inc()

	decision := s.policy.Decide(outcome, req.Amount)
	newDispute.Status = decision.Status
	newDispute.Remarks = decision.Remarks
	if decision.NeedSettlementRef {
		newDispute.SettlementRef = NewSettlementRef()
	}
	if decision.Status.Terminal() {
		resolvedAt := newDispute.CreatedAt
		newDispute.ResolvedAt = &resolvedAt
	}

	created, err := s.repo.CreateDispute(ctx, newDispute)
	if err != nil {
		// The unique index on transaction_ref is the real duplicate guard;
		// the pre-check above merely loses the race.
		return nil, fmt.Errorf("create dispute: %w", err)
	}
	metrics.DisputesFiledTotal.WithLabelValues(string(created.Status)).Inc()

	s.l.Info("dispute filed: id=%s transaction_ref=%s status=%s",
		created.DisplayID(), created.TransactionRef, created.Status)

	s.emit(ctx, *created, DisputeEventFiled)

	return created, nil
}

// GetDispute returns the dispute with the given store ID.
func (s *DisputeService) GetDispute(ctx context.Context, id int64) (*Dispute, error) {
	d, err := s.repo.GetDisputeByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get dispute by id: %w", err)
	}
	if d == nil {
		return nil, ErrNotFound
	}
	return d, nil
}

// ListDisputesByFiler returns all disputes filed from the given phone,
// in store order.
func (s *DisputeService) ListDisputesByFiler(ctx context.Context, filerPhone string) ([]Dispute, error) {
	disputes, err := s.repo.GetDisputesByFiler(ctx, filerPhone)
	if err != nil {
		return nil, fmt.Errorf("list disputes by filer: %w", err)
	}
	return disputes, nil
}

// GetDisputeEvents returns the recorded lifecycle events for a dispute.
func (s *DisputeService) GetDisputeEvents(ctx context.Context, id int64) ([]DisputeEvent, error) {
	if _, err := s.GetDispute(ctx, id); err != nil {
		return nil, err
	}
	if s.events == nil {
		return nil, nil
	}
	events, err := s.events.GetDisputeEvents(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get dispute events: %w", err)
	}
	return events, nil
}

// DeleteDisputesByFiler removes every dispute filed from the given phone.
// Idempotent: deleting with no matching records succeeds.
func (s *DisputeService) DeleteDisputesByFiler(ctx context.Context, filerPhone string) error {
	deleted, err := s.repo.DeleteDisputesByFiler(ctx, filerPhone)
	if err != nil {
		return fmt.Errorf("delete disputes by filer: %w", err)
	}
	s.l.Info("disputes deleted: filer=%s count=%d", filerPhone, deleted)
	return nil
}

func validateFiling(req FileDisputeRequest) error {
	if req.TransactionRef == "" {
		return fmt.Errorf("%w: transaction reference is required", ErrValidation)
	}
	if req.Counterparty == "" {
		return fmt.Errorf("%w: counterparty is required", ErrValidation)
	}
	if req.Amount <= 0 {
		return fmt.Errorf("%w: amount must be positive", ErrValidation)
	}
	if !phonePattern.MatchString(req.FilerPhone) {
		return fmt.Errorf("%w: malformed phone number", ErrValidation)
	}
	return nil
}

// emit records an audit event and publishes a dispute.updated envelope.
// Both are best-effort and never fail the calling operation.
func (s *DisputeService) emit(ctx context.Context, d Dispute, kind DisputeEventKind) {
	payload, _ := json.Marshal(d)

	if s.events != nil {
		ev := NewDisputeEvent{
			DisputeID: d.ID,
			Kind:      kind,
			Data:      payload,
			CreatedAt: s.clock.Now().UTC(),
		}
		if err := s.events.CreateDisputeEvent(ctx, ev); err != nil {
			s.l.Error("record dispute event: dispute_id=%d kind=%s error=%v", d.ID, kind, err)
		}
	}

	if s.updates != nil {
		envelope, err := messaging.NewEnvelope(d.TransactionRef, "dispute.updated", d)
		if err == nil {
			err = s.updates.Publish(ctx, envelope)
		}
		if err != nil {
			s.l.Error("publish dispute update: dispute_id=%d error=%v", d.ID, err)
		}
	}
}
