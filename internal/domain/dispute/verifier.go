package dispute

import (
	"context"
	"strings"
)

//go:generate mockgen -source verifier.go -destination mock_verifier.go -package dispute

// VerificationClient consults the bank verification oracle for the true
// status of a transaction. Implementations make a single best-effort
// attempt bounded by an I/O timeout.
type VerificationClient interface {
	Check(ctx context.Context, transactionRef string) (VerificationResult, error)
}

// VerificationResult is the raw oracle answer before classification.
type VerificationResult struct {
	Status string
	Amount float64
}

// Failed reports whether the bank recorded the transaction as failed.
func (r VerificationResult) Failed() bool {
	return strings.EqualFold(r.Status, "FAILED")
}
