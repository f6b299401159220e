package port

import (
	"context"

	"github.com/google/uuid"

	"github.com/asaparov/tendercrm/internal/core/domain"
	"github.com/asaparov/tendercrm/internal/core/finance"
	"github.com/asaparov/tendercrm/internal/core/lifecycle"
)

// AccountingItem pairs an accounting-eligible tender with its summary.
type AccountingItem struct {
	Tender  *domain.Tender
	Summary *finance.Summary
}

// AccountingReport is the portfolio view: per-tender figures plus one
// aggregate with tax computed on the combined gross profit.
type AccountingReport struct {
	Items []AccountingItem
	Total *finance.Summary
}

type Service interface {
	CreateTender(ctx context.Context, tender *domain.Tender) (*domain.Tender, error)
	GetTender(ctx context.Context, id uuid.UUID) (*domain.Tender, error)
	UpdateTender(ctx context.Context, tender *domain.Tender) (*domain.Tender, error)
	DeleteTender(ctx context.Context, id uuid.UUID) error
	ListTenders(ctx context.Context, limit, offset int) ([]*domain.Tender, error)

	LegalNextStates(ctx context.Context, id uuid.UUID) ([]domain.TenderStatus, error)
	Transition(ctx context.Context, id uuid.UUID, next domain.TenderStatus, payload lifecycle.Payload) (*domain.Tender, error)

	AddExpense(ctx context.Context, expense *domain.Expense) (*domain.Expense, error)
	DeleteExpense(ctx context.Context, id uuid.UUID) error
	ListExpenses(ctx context.Context, tenderID uuid.UUID) ([]*domain.Expense, error)

	TenderSummary(ctx context.Context, id uuid.UUID) (*finance.Summary, error)
	AccountingReport(ctx context.Context) (*AccountingReport, error)
}
