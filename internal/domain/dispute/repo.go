package dispute

import "context"

//go:generate mockgen -source repo.go -destination mock_repo.go -package dispute

// DisputeRepo is the persistence port for disputes. The store enforces
// uniqueness on the transaction reference; a conflicting insert returns
// ErrAlreadyExists.
type DisputeRepo interface {
	CreateDispute(ctx context.Context, dispute NewDispute) (*Dispute, error)
	GetDisputeByID(ctx context.Context, id int64) (*Dispute, error)
	GetDisputeByTransactionRef(ctx context.Context, transactionRef string) (*Dispute, error)
	GetDisputesByFiler(ctx context.Context, filerPhone string) ([]Dispute, error)
	GetDisputesInStatus(ctx context.Context, status Status) ([]Dispute, error)
	UpdateDispute(ctx context.Context, dispute Dispute) error
	DeleteDisputesByFiler(ctx context.Context, filerPhone string) (int64, error)
}
