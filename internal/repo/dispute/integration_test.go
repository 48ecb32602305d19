//go:build integration
// +build integration

package dispute_repo

import (
	"context"
	"testing"
	"time"

	"disputeresolver/internal/domain/dispute"
	"disputeresolver/internal/testinfra"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPgDisputeRepo_Integration(t *testing.T) {
	ctx := context.Background()

	pg, err := testinfra.NewPostgres(ctx)
	require.NoError(t, err)
	defer pg.Cleanup(ctx)

	repo := NewPgDisputeRepo(pg.Pool)

	newDispute := func(txn string, status dispute.Status) dispute.NewDispute {
		return dispute.NewDispute{
			Status: status,
			DisputeInfo: dispute.DisputeInfo{
				TransactionRef: txn,
				Counterparty:   "merchant@upi",
				Amount:         1000,
				FilerPhone:     "+911234567890",
				Reason:         "money debited but transfer failed",
			},
			Remarks:   "High value transaction - pending review.",
			CreatedAt: time.Now().UTC().Truncate(time.Microsecond),
		}
	}

	t.Run("create and read back", func(t *testing.T) {
		require.NoError(t, pg.Truncate(ctx))

		created, err := repo.CreateDispute(ctx, newDispute("TXN1001", dispute.StatusManualReview))
		require.NoError(t, err)
		assert.Positive(t, created.ID)

		byID, err := repo.GetDisputeByID(ctx, created.ID)
		require.NoError(t, err)
		require.NotNil(t, byID)
		assert.Equal(t, created.TransactionRef, byID.TransactionRef)
		assert.Equal(t, dispute.StatusManualReview, byID.Status)

		byRef, err := repo.GetDisputeByTransactionRef(ctx, "TXN1001")
		require.NoError(t, err)
		require.NotNil(t, byRef)
		assert.Equal(t, created.ID, byRef.ID)
	})

	t.Run("unique index rejects a second filing", func(t *testing.T) {
		require.NoError(t, pg.Truncate(ctx))

		_, err := repo.CreateDispute(ctx, newDispute("TXN2002", dispute.StatusManualReview))
		require.NoError(t, err)

		_, err = repo.CreateDispute(ctx, newDispute("TXN2002", dispute.StatusManualReview))
		assert.ErrorIs(t, err, dispute.ErrAlreadyExists)
	})

	t.Run("update promotes a manual review dispute", func(t *testing.T) {
		require.NoError(t, pg.Truncate(ctx))

		created, err := repo.CreateDispute(ctx, newDispute("TXN3003", dispute.StatusManualReview))
		require.NoError(t, err)

		resolvedAt := time.Now().UTC().Truncate(time.Microsecond)
		created.Status = dispute.StatusVerifiedFailure
		created.SettlementRef = dispute.NewSettlementRef()
		created.Remarks = "Auto-approved after manual review period. Refund initiated."
		created.ResolvedAt = &resolvedAt
		require.NoError(t, repo.UpdateDispute(ctx, *created))

		updated, err := repo.GetDisputeByID(ctx, created.ID)
		require.NoError(t, err)
		assert.Equal(t, dispute.StatusVerifiedFailure, updated.Status)
		assert.Equal(t, created.SettlementRef, updated.SettlementRef)
		require.NotNil(t, updated.ResolvedAt)
		assert.Equal(t, resolvedAt, updated.ResolvedAt.UTC())

		inReview, err := repo.GetDisputesInStatus(ctx, dispute.StatusManualReview)
		require.NoError(t, err)
		assert.Empty(t, inReview)
	})

	t.Run("delete by filer", func(t *testing.T) {
		require.NoError(t, pg.Truncate(ctx))

		_, err := repo.CreateDispute(ctx, newDispute("TXN4004", dispute.StatusManualReview))
		require.NoError(t, err)
		_, err = repo.CreateDispute(ctx, newDispute("TXN4005", dispute.StatusManualReview))
		require.NoError(t, err)

		deleted, err := repo.DeleteDisputesByFiler(ctx, "+911234567890")
		require.NoError(t, err)
		assert.Equal(t, int64(2), deleted)

		deleted, err = repo.DeleteDisputesByFiler(ctx, "+911234567890")
		require.NoError(t, err)
		assert.Zero(t, deleted)
	})
}
