package dispute

import "math"

// VerificationOutcome is the normalized answer of the verification oracle
// for a disputed transaction. The policy always receives a defined outcome;
// oracle failures degrade to OutcomeOracleUnavailable instead of propagating.
type VerificationOutcome string

const (
	OutcomeFailedMatching       VerificationOutcome = "failed_matching"
	OutcomeFailedAmountMismatch VerificationOutcome = "failed_amount_mismatch"
	OutcomeSucceeded            VerificationOutcome = "succeeded"
	OutcomeOracleUnavailable    VerificationOutcome = "oracle_unavailable"
)

// DefaultHighAmountThreshold is the boundary above which a verified failure
// routes to manual review instead of an automatic refund.
const DefaultHighAmountThreshold = 5000.0

// amountTolerance is the absolute tolerance when comparing the claimed
// amount against the bank record.
const amountTolerance = 0.01

// Policy holds the dispute classification parameters.
type Policy struct {
	// HighAmountThreshold routes verified failures at or above it to
	// manual review. The boundary is inclusive: amount == threshold never
	// auto-approves.
	HighAmountThreshold float64

	// FailOpenSmallAmounts refunds sub-threshold disputes when the oracle
	// cannot be consulted. This is the riskiest implicit decision in the
	// system, so it is a parameter rather than a constant.
	FailOpenSmallAmounts bool
}

// DefaultPolicy returns the reference policy configuration.
func DefaultPolicy() Policy {
	return Policy{
		HighAmountThreshold:  DefaultHighAmountThreshold,
		FailOpenSmallAmounts: true,
	}
}

// Decision is the policy's verdict for a filing.
type Decision struct {
	Status            Status
	Remarks           string
	NeedSettlementRef bool
}

const (
	remarksRefundInitiated  = "Transaction verified as failed. Refund initiated."
	remarksAmountMismatch   = "Amount mismatch between claim and verified record; requires manual review."
	remarksHighValue        = "High value transaction - pending review."
	remarksFalseClaim       = "Transaction completed successfully. No refund applicable."
	remarksUnverifiedRefund = "Transaction status unverifiable. Refund initiated for low-value dispute."
	remarksUnverifiedReview = "Transaction status unverifiable. Pending manual review."
	remarksAutoApproved     = "Auto-approved after manual review period. Refund initiated."
)

// Decide maps a verification outcome and the disputed amount to a target
// state. Pure and deterministic; first matching rule wins.
func (p Policy) Decide(outcome VerificationOutcome, amount float64) Decision {
	switch outcome {
	case OutcomeFailedAmountMismatch:
		return Decision{Status: StatusManualReview, Remarks: remarksAmountMismatch}

	case OutcomeFailedMatching:
		if amount < p.HighAmountThreshold {
			return Decision{Status: StatusVerifiedFailure, Remarks: remarksRefundInitiated, NeedSettlementRef: true}
		}
		return Decision{Status: StatusManualReview, Remarks: remarksHighValue}

	case OutcomeSucceeded:
		return Decision{Status: StatusFalseClaim, Remarks: remarksFalseClaim}

	default: // OutcomeOracleUnavailable
		if p.FailOpenSmallAmounts && amount < p.HighAmountThreshold {
			return Decision{Status: StatusVerifiedFailure, Remarks: remarksUnverifiedRefund, NeedSettlementRef: true}
		}
		return Decision{Status: StatusManualReview, Remarks: remarksUnverifiedReview}
	}
}

// Classify normalizes a raw oracle response into a VerificationOutcome.
// Any client error means the oracle could not be consulted.
func Classify(result VerificationResult, err error, claimedAmount float64) VerificationOutcome {
	if err != nil {
		return OutcomeOracleUnavailable
	}

	if result.Failed() {
		if math.Abs(result.Amount-claimedAmount) > amountTolerance {
			return OutcomeFailedAmountMismatch
		}
		return OutcomeFailedMatching
	}

	return OutcomeSucceeded
}
