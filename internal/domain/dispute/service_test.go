package dispute

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"disputeresolver/pkg/logger"

	"github.com/jonboulle/clockwork"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

var testNow = time.Date(2026, 3, 14, 10, 0, 0, 0, time.UTC)

func disputeService(t *testing.T, policy Policy) (*DisputeService, *MockDisputeRepo, *MockVerificationClient) {
	t.Helper()

	ctrl := gomock.NewController(t)
	repo := NewMockDisputeRepo(ctrl)
	verifier := NewMockVerificationClient(ctrl)
	clock := clockwork.NewFakeClockAt(testNow)
	service := NewDisputeService(logger.New("error"), repo, verifier, policy, clock, nil, nil)

	return service, repo, verifier
}

func validRequest() FileDisputeRequest {
	return FileDisputeRequest{
		TransactionRef: "TXN1001",
		Counterparty:   "merchant@upi",
		Amount:         1000,
		FilerPhone:     "+911234567890",
		Reason:         "money debited but transfer failed",
	}
}

// echoCreate wires CreateDispute to return the stored record with ID 1.
func echoCreate(repo *MockDisputeRepo, captured *NewDispute) {
	repo.EXPECT().CreateDispute(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, nd NewDispute) (*Dispute, error) {
			*captured = nd
			return &Dispute{
				ID:            1,
				Status:        nd.Status,
				DisputeInfo:   nd.DisputeInfo,
				SettlementRef: nd.SettlementRef,
				Remarks:       nd.Remarks,
				CreatedAt:     nd.CreatedAt,
				ResolvedAt:    nd.ResolvedAt,
			}, nil
		})
}

func TestDisputeService_FileDispute(t *testing.T) {
	t.Parallel()

	t.Run("refunds a verified small failure", func(t *testing.T) {
		service, repo, verifier := disputeService(t, DefaultPolicy())
		req := validRequest()

		repo.EXPECT().GetDisputeByTransactionRef(gomock.Any(), req.TransactionRef).Return(nil, nil)
		verifier.EXPECT().Check(gomock.Any(), req.TransactionRef).
			Return(VerificationResult{Status: "FAILED", Amount: 1000}, nil)
		var stored NewDispute
		echoCreate(repo, &stored)

		created, err := service.FileDispute(context.Background(), req)

		require.NoError(t, err)
		assert.Equal(t, StatusVerifiedFailure, created.Status)
		assert.True(t, strings.HasPrefix(created.SettlementRef, "NEFT"))
		assert.Len(t, created.SettlementRef, 16)
		require.NotNil(t, created.ResolvedAt)
		assert.Equal(t, testNow, *created.ResolvedAt)
		assert.Equal(t, "DIS_000001", created.DisplayID())
		assert.Equal(t, stored.Status, created.Status)
	})

	t.Run("routes a high value failure to manual review", func(t *testing.T) {
		service, repo, verifier := disputeService(t, DefaultPolicy())
		req := validRequest()
		req.TransactionRef = "TXN2002"
		req.Amount = 9000

		repo.EXPECT().GetDisputeByTransactionRef(gomock.Any(), req.TransactionRef).Return(nil, nil)
		verifier.EXPECT().Check(gomock.Any(), req.TransactionRef).
			Return(VerificationResult{Status: "FAILED", Amount: 9000}, nil)
		var stored NewDispute
		echoCreate(repo, &stored)

		created, err := service.FileDispute(context.Background(), req)

		require.NoError(t, err)
		assert.Equal(t, StatusManualReview, created.Status)
		assert.Empty(t, created.SettlementRef)
		assert.Nil(t, created.ResolvedAt)
	})

	t.Run("amount exactly at threshold goes to manual review", func(t *testing.T) {
		service, repo, verifier := disputeService(t, DefaultPolicy())
		req := validRequest()
		req.Amount = 5000

		repo.EXPECT().GetDisputeByTransactionRef(gomock.Any(), req.TransactionRef).Return(nil, nil)
		verifier.EXPECT().Check(gomock.Any(), req.TransactionRef).
			Return(VerificationResult{Status: "FAILED", Amount: 5000}, nil)
		var stored NewDispute
		echoCreate(repo, &stored)

		created, err := service.FileDispute(context.Background(), req)

		require.NoError(t, err)
		assert.Equal(t, StatusManualReview, created.Status)
		assert.Empty(t, created.SettlementRef)
	})

	t.Run("rejects a false claim", func(t *testing.T) {
		service, repo, verifier := disputeService(t, DefaultPolicy())
		req := validRequest()

		repo.EXPECT().GetDisputeByTransactionRef(gomock.Any(), req.TransactionRef).Return(nil, nil)
		verifier.EXPECT().Check(gomock.Any(), req.TransactionRef).
			Return(VerificationResult{Status: "SUCCESS", Amount: 1000}, nil)
		var stored NewDispute
		echoCreate(repo, &stored)

		created, err := service.FileDispute(context.Background(), req)

		require.NoError(t, err)
		assert.Equal(t, StatusFalseClaim, created.Status)
		assert.Empty(t, created.SettlementRef)
		require.NotNil(t, created.ResolvedAt)
	})

	t.Run("amount mismatch forces manual review", func(t *testing.T) {
		service, repo, verifier := disputeService(t, DefaultPolicy())
		req := validRequest()

		repo.EXPECT().GetDisputeByTransactionRef(gomock.Any(), req.TransactionRef).Return(nil, nil)
		verifier.EXPECT().Check(gomock.Any(), req.TransactionRef).
			Return(VerificationResult{Status: "FAILED", Amount: 1200}, nil)
		var stored NewDispute
		echoCreate(repo, &stored)

		created, err := service.FileDispute(context.Background(), req)

		require.NoError(t, err)
		assert.Equal(t, StatusManualReview, created.Status)
	})

	t.Run("oracle outage fails open below threshold", func(t *testing.T) {
		service, repo, verifier := disputeService(t, DefaultPolicy())
		req := validRequest()

		repo.EXPECT().GetDisputeByTransactionRef(gomock.Any(), req.TransactionRef).Return(nil, nil)
		verifier.EXPECT().Check(gomock.Any(), req.TransactionRef).
			Return(VerificationResult{}, errors.New("connection refused"))
		var stored NewDispute
		echoCreate(repo, &stored)

		created, err := service.FileDispute(context.Background(), req)

		require.NoError(t, err)
		assert.Equal(t, StatusVerifiedFailure, created.Status)
		assert.True(t, strings.HasPrefix(created.SettlementRef, "NEFT"))
	})

	t.Run("oracle outage holds high value for review", func(t *testing.T) {
		service, repo, verifier := disputeService(t, DefaultPolicy())
		req := validRequest()
		req.Amount = 9000

		repo.EXPECT().GetDisputeByTransactionRef(gomock.Any(), req.TransactionRef).Return(nil, nil)
		verifier.EXPECT().Check(gomock.Any(), req.TransactionRef).
			Return(VerificationResult{}, errors.New("timeout"))
		var stored NewDispute
		echoCreate(repo, &stored)

		created, err := service.FileDispute(context.Background(), req)

		require.NoError(t, err)
		assert.Equal(t, StatusManualReview, created.Status)
		assert.Empty(t, created.SettlementRef)
	})

	t.Run("fail-open disabled holds small amounts for review", func(t *testing.T) {
		policy := Policy{HighAmountThreshold: DefaultHighAmountThreshold, FailOpenSmallAmounts: false}
		service, repo, verifier := disputeService(t, policy)
		req := validRequest()

		repo.EXPECT().GetDisputeByTransactionRef(gomock.Any(), req.TransactionRef).Return(nil, nil)
		verifier.EXPECT().Check(gomock.Any(), req.TransactionRef).
			Return(VerificationResult{}, errors.New("timeout"))
		var stored NewDispute
		echoCreate(repo, &stored)

		created, err := service.FileDispute(context.Background(), req)

		require.NoError(t, err)
		assert.Equal(t, StatusManualReview, created.Status)
	})

	t.Run("duplicate transaction ref is rejected before verification", func(t *testing.T) {
		service, repo, _ := disputeService(t, DefaultPolicy())
		req := validRequest()

		repo.EXPECT().GetDisputeByTransactionRef(gomock.Any(), req.TransactionRef).
			Return(&Dispute{ID: 7, DisputeInfo: DisputeInfo{TransactionRef: req.TransactionRef}}, nil)

		_, err := service.FileDispute(context.Background(), req)

		assert.ErrorIs(t, err, ErrAlreadyExists)
	})

	t.Run("insert losing the duplicate race surfaces ErrAlreadyExists", func(t *testing.T) {
		service, repo, verifier := disputeService(t, DefaultPolicy())
		req := validRequest()

		// The pre-check sees nothing, but the unique index rejects the
		// insert when a concurrent filing commits first.
		repo.EXPECT().GetDisputeByTransactionRef(gomock.Any(), req.TransactionRef).Return(nil, nil)
		verifier.EXPECT().Check(gomock.Any(), req.TransactionRef).
			Return(VerificationResult{Status: "FAILED", Amount: 1000}, nil)
		repo.EXPECT().CreateDispute(gomock.Any(), gomock.Any()).Return(nil, ErrAlreadyExists)

		_, err := service.FileDispute(context.Background(), req)

		assert.ErrorIs(t, err, ErrAlreadyExists)
	})

	t.Run("settlement refs are unique across filings", func(t *testing.T) {
		service, repo, verifier := disputeService(t, DefaultPolicy())

		refs := make(map[string]struct{})
		for i, txn := range []string{"TXN3001", "TXN3002", "TXN3003"} {
			req := validRequest()
			req.TransactionRef = txn

			repo.EXPECT().GetDisputeByTransactionRef(gomock.Any(), txn).Return(nil, nil)
			verifier.EXPECT().Check(gomock.Any(), txn).
				Return(VerificationResult{Status: "FAILED", Amount: req.Amount}, nil)
			var stored NewDispute
			echoCreate(repo, &stored)

			created, err := service.FileDispute(context.Background(), req)
			require.NoError(t, err, "filing %d", i)

			_, dup := refs[created.SettlementRef]
			require.False(t, dup)
			refs[created.SettlementRef] = struct{}{}
		}
	})

	t.Run("validation failures never reach the repo", func(t *testing.T) {
		service, _, _ := disputeService(t, DefaultPolicy())

		testCases := []struct {
			name   string
			mutate func(*FileDisputeRequest)
		}{
			{"missing transaction ref", func(r *FileDisputeRequest) { r.TransactionRef = "" }},
			{"missing counterparty", func(r *FileDisputeRequest) { r.Counterparty = "" }},
			{"zero amount", func(r *FileDisputeRequest) { r.Amount = 0 }},
			{"negative amount", func(r *FileDisputeRequest) { r.Amount = -5 }},
			{"malformed phone", func(r *FileDisputeRequest) { r.FilerPhone = "12ab" }},
		}

		for _, tc := range testCases {
			t.Run(tc.name, func(t *testing.T) {
				req := validRequest()
				tc.mutate(&req)

				_, err := service.FileDispute(context.Background(), req)

				assert.ErrorIs(t, err, ErrValidation)
			})
		}
	})
}

func TestDisputeService_FileDispute_EmitsEvents(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	repo := NewMockDisputeRepo(ctrl)
	verifier := NewMockVerificationClient(ctrl)
	events := NewMockEventSink(ctrl)
	clock := clockwork.NewFakeClockAt(testNow)
	service := NewDisputeService(logger.New("error"), repo, verifier, DefaultPolicy(), clock, events, nil)

	req := validRequest()
	repo.EXPECT().GetDisputeByTransactionRef(gomock.Any(), req.TransactionRef).Return(nil, nil)
	verifier.EXPECT().Check(gomock.Any(), req.TransactionRef).
		Return(VerificationResult{Status: "FAILED", Amount: 1000}, nil)
	var stored NewDispute
	echoCreate(repo, &stored)

	events.EXPECT().CreateDisputeEvent(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, ev NewDisputeEvent) error {
			assert.Equal(t, int64(1), ev.DisputeID)
			assert.Equal(t, DisputeEventFiled, ev.Kind)
			assert.NotEmpty(t, ev.Data)
			return nil
		})

	_, err := service.FileDispute(context.Background(), req)
	require.NoError(t, err)
}

func TestDisputeService_FileDispute_SinkFailureDoesNotFailFiling(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	repo := NewMockDisputeRepo(ctrl)
	verifier := NewMockVerificationClient(ctrl)
	events := NewMockEventSink(ctrl)
	clock := clockwork.NewFakeClockAt(testNow)
	service := NewDisputeService(logger.New("error"), repo, verifier, DefaultPolicy(), clock, events, nil)

	req := validRequest()
	repo.EXPECT().GetDisputeByTransactionRef(gomock.Any(), req.TransactionRef).Return(nil, nil)
	verifier.EXPECT().Check(gomock.Any(), req.TransactionRef).
		Return(VerificationResult{Status: "FAILED", Amount: 1000}, nil)
	var stored NewDispute
	echoCreate(repo, &stored)
	events.EXPECT().CreateDisputeEvent(gomock.Any(), gomock.Any()).Return(errors.New("index unavailable"))

	created, err := service.FileDispute(context.Background(), req)

	require.NoError(t, err)
	assert.Equal(t, StatusVerifiedFailure, created.Status)
}

func TestDisputeService_GetDispute(t *testing.T) {
	t.Parallel()

	t.Run("returns the dispute when found", func(t *testing.T) {
		service, repo, _ := disputeService(t, DefaultPolicy())
		want := &Dispute{ID: 3, Status: StatusManualReview}

		repo.EXPECT().GetDisputeByID(gomock.Any(), int64(3)).Return(want, nil)

		got, err := service.GetDispute(context.Background(), 3)

		require.NoError(t, err)
		assert.Equal(t, want, got)
	})

	t.Run("missing dispute maps to ErrNotFound", func(t *testing.T) {
		service, repo, _ := disputeService(t, DefaultPolicy())

		repo.EXPECT().GetDisputeByID(gomock.Any(), int64(404)).Return(nil, nil)

		_, err := service.GetDispute(context.Background(), 404)

		assert.ErrorIs(t, err, ErrNotFound)
	})

	t.Run("repo failure is propagated", func(t *testing.T) {
		service, repo, _ := disputeService(t, DefaultPolicy())

		repo.EXPECT().GetDisputeByID(gomock.Any(), int64(3)).Return(nil, errors.New("connection reset"))

		_, err := service.GetDispute(context.Background(), 3)

		assert.Error(t, err)
		assert.NotErrorIs(t, err, ErrNotFound)
	})
}

func TestDisputeService_GetDisputeEvents(t *testing.T) {
	t.Parallel()

	t.Run("missing dispute maps to ErrNotFound", func(t *testing.T) {
		service, repo, _ := disputeService(t, DefaultPolicy())

		repo.EXPECT().GetDisputeByID(gomock.Any(), int64(404)).Return(nil, nil)

		_, err := service.GetDisputeEvents(context.Background(), 404)

		assert.ErrorIs(t, err, ErrNotFound)
	})

	t.Run("returns events from the sink", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		repo := NewMockDisputeRepo(ctrl)
		events := NewMockEventSink(ctrl)
		clock := clockwork.NewFakeClockAt(testNow)
		service := NewDisputeService(logger.New("error"), repo, NewMockVerificationClient(ctrl), DefaultPolicy(), clock, events, nil)

		repo.EXPECT().GetDisputeByID(gomock.Any(), int64(3)).Return(&Dispute{ID: 3}, nil)
		want := []DisputeEvent{{EventID: "ev-1", NewDisputeEvent: NewDisputeEvent{DisputeID: 3, Kind: DisputeEventFiled}}}
		events.EXPECT().GetDisputeEvents(gomock.Any(), int64(3)).Return(want, nil)

		got, err := service.GetDisputeEvents(context.Background(), 3)

		require.NoError(t, err)
		assert.Equal(t, want, got)
	})
}

func TestDisputeService_DeleteDisputesByFiler(t *testing.T) {
	t.Parallel()

	t.Run("deletes all disputes for a filer", func(t *testing.T) {
		service, repo, _ := disputeService(t, DefaultPolicy())

		repo.EXPECT().DeleteDisputesByFiler(gomock.Any(), "+911234567890").Return(int64(3), nil)

		assert.NoError(t, service.DeleteDisputesByFiler(context.Background(), "+911234567890"))
	})

	t.Run("deleting with no matches succeeds", func(t *testing.T) {
		service, repo, _ := disputeService(t, DefaultPolicy())

		repo.EXPECT().DeleteDisputesByFiler(gomock.Any(), "+911234567890").Return(int64(0), nil)

		assert.NoError(t, service.DeleteDisputesByFiler(context.Background(), "+911234567890"))
	})
}
