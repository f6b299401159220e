package port

import (
	"context"

	"github.com/google/uuid"

	"github.com/asaparov/tendercrm/internal/core/domain"
	"github.com/asaparov/tendercrm/internal/core/lifecycle"
)

//go:generate mockgen -source=repository.go -destination=mock/repository.go -package=mock
type Repository interface {
	// Tender
	CreateTender(ctx context.Context, tender *domain.Tender) (*domain.Tender, error)
	ReadTender(ctx context.Context, id uuid.UUID) (*domain.Tender, error)
	UpdateTender(ctx context.Context, tender *domain.Tender) (*domain.Tender, error)
	DeleteTender(ctx context.Context, id uuid.UUID) error
	ListTenders(ctx context.Context, limit, offset int) ([]*domain.Tender, error)
	ListTendersByStatuses(ctx context.Context, statuses []domain.TenderStatus) ([]*domain.Tender, error)

	// ApplyTenderPatch writes one lifecycle step as a single statement.
	ApplyTenderPatch(ctx context.Context, id uuid.UUID, patch lifecycle.Patch) (*domain.Tender, error)

	// Expense
	CreateExpense(ctx context.Context, expense *domain.Expense) (*domain.Expense, error)
	DeleteExpense(ctx context.Context, id uuid.UUID) error
	ListExpensesByTender(ctx context.Context, tenderID uuid.UUID) ([]*domain.Expense, error)
}
