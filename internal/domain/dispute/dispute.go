// Package dispute implements the dispute resolution engine: the dispute
// lifecycle, the decision policy classifying filings against the bank
// verification oracle, and the reconciler promoting stale manual reviews.
package dispute

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
)

// Dispute is a customer claim that a payment transfer failed and should
// be reversed.
type Dispute struct {
	ID     int64  `json:"id"`
	Status Status `json:"status"`
	DisputeInfo
	SettlementRef string     `json:"settlement_ref,omitempty"`
	Remarks       string     `json:"remarks,omitempty"`
	CreatedAt     time.Time  `json:"created_at"`
	ResolvedAt    *time.Time `json:"resolved_at,omitempty"`
}

// NewDispute is a dispute before the store assigns its ID.
type NewDispute struct {
	Status Status
	DisputeInfo
	SettlementRef string
	Remarks       string
	CreatedAt     time.Time
	ResolvedAt    *time.Time
}

// DisputeInfo carries the filer-supplied fields.
type DisputeInfo struct {
	TransactionRef string  `json:"transaction_ref"`
	Counterparty   string  `json:"counterparty"`
	Amount         float64 `json:"amount"`
	FilerPhone     string  `json:"filer_phone"`
	Reason         string  `json:"reason,omitempty"`
}

// Status is a dispute lifecycle state.
type Status string

const (
	// StatusPending is the transient state between validation and the
	// policy decision. Filing is synchronous, so it is never observable
	// through the API.
	StatusPending Status = "pending"

	StatusVerifiedFailure Status = "verified_failure"
	StatusFalseClaim      Status = "false_claim"
	StatusManualReview    Status = "manual_review"

	// StatusRejected is reserved for a future reviewer-driven rejection
	// path. No engine path assigns it.
	StatusRejected Status = "rejected"
)

// Terminal reports whether s is a terminal state.
func (s Status) Terminal() bool {
	switch s {
	case StatusVerifiedFailure, StatusFalseClaim, StatusRejected:
		return true
	}
	return false
}

// ParseStatus validates a raw status string.
func ParseStatus(raw string) (Status, error) {
	switch s := Status(raw); s {
	case StatusPending, StatusVerifiedFailure, StatusFalseClaim, StatusManualReview, StatusRejected:
		return s, nil
	}
	return "", fmt.Errorf("unknown dispute status: %q", raw)
}

// DisplayID derives the outward-facing dispute identifier from the
// store-assigned ID.
func (d Dispute) DisplayID() string {
	return FormatDisplayID(d.ID)
}

// FormatDisplayID renders a dispute ID as the fixed-width display form,
// e.g. DIS_000042.
func FormatDisplayID(id int64) string {
	return fmt.Sprintf("DIS_%06d", id)
}

const settlementRefPrefix = "NEFT"

// NewSettlementRef generates a settlement reference: the NEFT prefix
// followed by 12 uppercase hex characters from a fresh UUID.
func NewSettlementRef() string {
	raw := strings.ToUpper(strings.ReplaceAll(uuid.NewString(), "-", ""))
	return settlementRefPrefix + raw[:12]
}
