package service

import (
	"context"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/asaparov/tendercrm/internal/core/domain"
	"github.com/asaparov/tendercrm/internal/core/finance"
	"github.com/asaparov/tendercrm/internal/core/lifecycle"
	"github.com/asaparov/tendercrm/internal/core/port"
)

// Service orchestrates the pure lifecycle and finance packages against the
// repository and activity-log ports. It owns the sequencing of chained
// transitions; all I/O stays behind the ports.
type Service struct {
	repo     port.Repository
	activity port.ActivityLog
	logger   *zap.Logger
	now      func() time.Time
}

// NewService builds the orchestrator. now is injectable so transition dates
// are testable; nil means the wall clock.
func NewService(repo port.Repository, activity port.ActivityLog,
	logger *zap.Logger, now func() time.Time) (*Service, error) {
	if now == nil {
		now = time.Now
	}
	return &Service{
		repo:     repo,
		activity: activity,
		logger:   logger,
		now:      now,
	}, nil
}

func (s *Service) CreateTender(ctx context.Context, tender *domain.Tender) (*domain.Tender, error) {
	if tender.StartPrice != nil && tender.StartPrice.IsNeg() {
		return nil, domain.ErrInvalidAmount
	}
	if tender.ID == uuid.Nil {
		tender.ID = uuid.New()
	}
	// Every tender starts its life in "new" regardless of what the caller sent.
	tender.Status = domain.TenderStatusNew
	if tender.CreatedAt.IsZero() {
		tender.CreatedAt = s.now()
	}

	created, err := s.repo.CreateTender(ctx, tender)
	if err != nil {
		s.logger.Error("create tender", zap.Error(err))
		return nil, err
	}
	return created, nil
}

func (s *Service) GetTender(ctx context.Context, id uuid.UUID) (*domain.Tender, error) {
	return s.repo.ReadTender(ctx, id)
}

// UpdateTender edits descriptive fields only. Status and the monetary
// progression belong to Transition.
func (s *Service) UpdateTender(ctx context.Context, tender *domain.Tender) (*domain.Tender, error) {
	current, err := s.repo.ReadTender(ctx, tender.ID)
	if err != nil {
		return nil, err
	}
	tender.Status = current.Status
	tender.SubmittedAt = current.SubmittedAt
	tender.SubmittedPrice = current.SubmittedPrice
	tender.WinPrice = current.WinPrice
	tender.CreatedAt = current.CreatedAt

	updated, err := s.repo.UpdateTender(ctx, tender)
	if err != nil {
		s.logger.Error("update tender", zap.Error(err))
		return nil, err
	}
	return updated, nil
}

func (s *Service) DeleteTender(ctx context.Context, id uuid.UUID) error {
	return s.repo.DeleteTender(ctx, id)
}

func (s *Service) ListTenders(ctx context.Context, limit, offset int) ([]*domain.Tender, error) {
	list, err := s.repo.ListTenders(ctx, limit, offset)
	if err != nil {
		s.logger.Error("list tenders", zap.Error(err))
		return nil, err
	}
	return list, nil
}

// LegalNextStates is what the UI renders as available actions for a tender.
func (s *Service) LegalNextStates(ctx context.Context, id uuid.UUID) ([]domain.TenderStatus, error) {
	tender, err := s.repo.ReadTender(ctx, id)
	if err != nil {
		return nil, err
	}
	return domain.LegalNextStates(tender.Status), nil
}

// Transition moves a tender to the requested status. A submit additionally
// schedules the review hop: the first patch must be durably applied before
// the second is attempted, and a failed second write leaves the tender in
// "submitted" with no rollback of the first.
func (s *Service) Transition(ctx context.Context, id uuid.UUID,
	next domain.TenderStatus, payload lifecycle.Payload) (*domain.Tender, error) {
	tender, err := s.repo.ReadTender(ctx, id)
	if err != nil {
		return nil, err
	}

	verdict, err := lifecycle.Validate(tender, next, payload)
	if err != nil {
		return nil, err
	}
	for _, w := range verdict.Warnings {
		s.logger.Warn("transition warning",
			zap.String("tender", id.String()), zap.String("warning", w))
	}

	result, err := lifecycle.Execute(tender, next, payload, s.now())
	if err != nil {
		return nil, err
	}

	updated, err := s.applyStep(ctx, id, result)
	if err != nil {
		return nil, err
	}

	if result.Chained != nil {
		chainResult, err := lifecycle.ExecuteChain(updated, *result.Chained)
		if err != nil {
			return nil, err
		}
		updated, err = s.applyStep(ctx, id, chainResult)
		if err != nil {
			// Known inconsistency window: the tender remains visible in the
			// intermediate status until the caller retries.
			s.logger.Warn("chained transition failed",
				zap.String("tender", id.String()),
				zap.String("to", string(result.Chained.To)),
				zap.Error(err))
			return nil, err
		}
	}

	return updated, nil
}

func (s *Service) applyStep(ctx context.Context, id uuid.UUID, result *lifecycle.Result) (*domain.Tender, error) {
	updated, err := s.repo.ApplyTenderPatch(ctx, id, result.Patch)
	if err != nil {
		s.logger.Error("apply tender patch", zap.Error(err))
		return nil, err
	}
	if err := s.activity.Record(ctx, result.Activity); err != nil {
		// The record is advisory; losing one must not fail the transition.
		s.logger.Warn("record activity", zap.Error(err))
	}
	return updated, nil
}

func (s *Service) AddExpense(ctx context.Context, expense *domain.Expense) (*domain.Expense, error) {
	if !expense.Amount.IsPos() {
		return nil, domain.ErrInvalidAmount
	}
	if _, err := s.repo.ReadTender(ctx, expense.TenderID); err != nil {
		return nil, err
	}
	if expense.ID == uuid.Nil {
		expense.ID = uuid.New()
	}
	if expense.CreatedAt.IsZero() {
		expense.CreatedAt = s.now()
	}

	created, err := s.repo.CreateExpense(ctx, expense)
	if err != nil {
		s.logger.Error("create expense", zap.Error(err))
		return nil, err
	}
	return created, nil
}

func (s *Service) DeleteExpense(ctx context.Context, id uuid.UUID) error {
	return s.repo.DeleteExpense(ctx, id)
}

func (s *Service) ListExpenses(ctx context.Context, tenderID uuid.UUID) ([]*domain.Expense, error) {
	return s.repo.ListExpensesByTender(ctx, tenderID)
}

// TenderSummary is the single-card view: tax computed on this tender alone.
func (s *Service) TenderSummary(ctx context.Context, id uuid.UUID) (*finance.Summary, error) {
	tender, err := s.repo.ReadTender(ctx, id)
	if err != nil {
		return nil, err
	}
	expenses, err := s.repo.ListExpensesByTender(ctx, id)
	if err != nil {
		return nil, err
	}
	summary, err := finance.Summarize(tender, expenses)
	if err != nil {
		s.logger.Error("summarize tender", zap.String("tender", id.String()), zap.Error(err))
		return nil, err
	}
	return summary, nil
}

// AccountingReport is the portfolio view over accounting-eligible tenders.
// Per-tender summaries and the aggregate are two call sites of the same
// calculator; the aggregate tax is computed once on the combined gross profit.
func (s *Service) AccountingReport(ctx context.Context) (*port.AccountingReport, error) {
	tenders, err := s.repo.ListTendersByStatuses(ctx, finance.EligibleStatuses())
	if err != nil {
		s.logger.Error("list accounting tenders", zap.Error(err))
		return nil, err
	}

	report := &port.AccountingReport{
		Items: make([]port.AccountingItem, 0, len(tenders)),
	}
	summaries := make([]*finance.Summary, 0, len(tenders))
	for _, tender := range tenders {
		expenses, err := s.repo.ListExpensesByTender(ctx, tender.ID)
		if err != nil {
			return nil, err
		}
		summary, err := finance.Summarize(tender, expenses)
		if err != nil {
			s.logger.Error("summarize tender",
				zap.String("tender", tender.ID.String()), zap.Error(err))
			return nil, err
		}
		report.Items = append(report.Items, port.AccountingItem{Tender: tender, Summary: summary})
		summaries = append(summaries, summary)
	}

	total, err := finance.Aggregate(summaries)
	if err != nil {
		return nil, err
	}
	report.Total = total

	return report, nil
}
