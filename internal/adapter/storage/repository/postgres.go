package repository

import (
	"context"
	"errors"

	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/asaparov/tendercrm/internal/adapter/storage"
	"github.com/asaparov/tendercrm/internal/core/domain"
	"github.com/asaparov/tendercrm/internal/core/lifecycle"
)

var tenderColumns = []string{
	"id", "name", "purchase_number", "region", "link",
	"published_at", "submitted_at", "submission_deadline",
	"start_price", "submitted_price", "win_price",
	"status", "created_at",
}

type Repository struct {
	db *storage.DB
}

func NewRepository(db *storage.DB) (*Repository, error) {
	return &Repository{db: db}, nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanTender(row rowScanner) (*domain.Tender, error) {
	tender := domain.Tender{}
	err := row.Scan(
		&tender.ID,
		&tender.Name,
		&tender.PurchaseNumber,
		&tender.Region,
		&tender.Link,
		&tender.PublishedAt,
		&tender.SubmittedAt,
		&tender.SubmissionDeadline,
		&tender.StartPrice,
		&tender.SubmittedPrice,
		&tender.WinPrice,
		&tender.Status,
		&tender.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &tender, nil
}

func (r *Repository) CreateTender(ctx context.Context, tender *domain.Tender) (*domain.Tender, error) {
	statement := r.db.QueryBuilder.Insert("tenders").
		Columns(tenderColumns...).
		Values(tender.ID, tender.Name, tender.PurchaseNumber, tender.Region, tender.Link,
			tender.PublishedAt, tender.SubmittedAt, tender.SubmissionDeadline,
			tender.StartPrice, tender.SubmittedPrice, tender.WinPrice,
			tender.Status, tender.CreatedAt)

	sql, args, err := statement.ToSql()
	if err != nil {
		return nil, err
	}

	_, err = r.db.Exec(ctx, sql, args...)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == pgerrcode.UniqueViolation {
			return nil, domain.ErrConflictingData
		}
		return nil, err
	}
	return tender, nil
}

func (r *Repository) ReadTender(ctx context.Context, id uuid.UUID) (*domain.Tender, error) {
	statement := r.db.QueryBuilder.
		Select(tenderColumns...).
		From("tenders").
		Where(sq.Eq{"id": id})

	sql, args, err := statement.ToSql()
	if err != nil {
		return nil, err
	}

	tender, err := scanTender(r.db.QueryRow(ctx, sql, args...))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrDataNotFound
		}
		return nil, err
	}
	return tender, nil
}

// UpdateTender writes the descriptive fields. Status and price progression go
// through ApplyTenderPatch only.
func (r *Repository) UpdateTender(ctx context.Context, tender *domain.Tender) (*domain.Tender, error) {
	statement := r.db.QueryBuilder.Update("tenders").
		Set("name", tender.Name).
		Set("purchase_number", tender.PurchaseNumber).
		Set("region", tender.Region).
		Set("link", tender.Link).
		Set("published_at", tender.PublishedAt).
		Set("submission_deadline", tender.SubmissionDeadline).
		Set("start_price", tender.StartPrice).
		Where(sq.Eq{"id": tender.ID})

	sql, args, err := statement.ToSql()
	if err != nil {
		return nil, err
	}

	tag, err := r.db.Exec(ctx, sql, args...)
	if err != nil {
		return nil, err
	}
	if tag.RowsAffected() == 0 {
		return nil, domain.ErrDataNotFound
	}
	return r.ReadTender(ctx, tender.ID)
}

func (r *Repository) DeleteTender(ctx context.Context, id uuid.UUID) error {
	statement := r.db.QueryBuilder.Delete("tenders").Where(sq.Eq{"id": id})

	sql, args, err := statement.ToSql()
	if err != nil {
		return err
	}

	tag, err := r.db.Exec(ctx, sql, args...)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrDataNotFound
	}
	return nil
}

func (r *Repository) ListTenders(ctx context.Context, limit, offset int) ([]*domain.Tender, error) {
	statement := r.db.QueryBuilder.
		Select(tenderColumns...).
		From("tenders").
		OrderBy("created_at DESC").
		Limit(uint64(limit)).
		Offset(uint64(offset))

	return r.queryTenders(ctx, statement)
}

func (r *Repository) ListTendersByStatuses(ctx context.Context, statuses []domain.TenderStatus) ([]*domain.Tender, error) {
	statement := r.db.QueryBuilder.
		Select(tenderColumns...).
		From("tenders").
		Where(sq.Eq{"status": statuses}).
		OrderBy("created_at DESC")

	return r.queryTenders(ctx, statement)
}

func (r *Repository) queryTenders(ctx context.Context, statement sq.SelectBuilder) ([]*domain.Tender, error) {
	sql, args, err := statement.ToSql()
	if err != nil {
		return nil, err
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	list := make([]*domain.Tender, 0)
	for rows.Next() {
		tender, err := scanTender(rows)
		if err != nil {
			return nil, err
		}
		list = append(list, tender)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return list, nil
}

// ApplyTenderPatch applies one lifecycle step as a single UPDATE, so a step
// is atomic on its own. The two steps of a chained transition remain two
// statements; sequencing them is the service's job.
func (r *Repository) ApplyTenderPatch(ctx context.Context, id uuid.UUID, patch lifecycle.Patch) (*domain.Tender, error) {
	statement := r.db.QueryBuilder.Update("tenders").
		Set("status", patch.Status).
		Where(sq.Eq{"id": id})

	if patch.SubmittedAt != nil {
		statement = statement.Set("submitted_at", *patch.SubmittedAt)
	}
	if patch.SubmittedPrice != nil {
		statement = statement.Set("submitted_price", *patch.SubmittedPrice)
	}
	if patch.WinPrice != nil {
		statement = statement.Set("win_price", *patch.WinPrice)
	}

	sql, args, err := statement.ToSql()
	if err != nil {
		return nil, err
	}

	tag, err := r.db.Exec(ctx, sql, args...)
	if err != nil {
		return nil, err
	}
	if tag.RowsAffected() == 0 {
		return nil, domain.ErrDataNotFound
	}
	return r.ReadTender(ctx, id)
}

func (r *Repository) CreateExpense(ctx context.Context, expense *domain.Expense) (*domain.Expense, error) {
	statement := r.db.QueryBuilder.Insert("expenses").
		Columns("id", "tender_id", "category", "amount", "description", "created_at").
		Values(expense.ID, expense.TenderID, expense.Category,
			expense.Amount, expense.Description, expense.CreatedAt)

	sql, args, err := statement.ToSql()
	if err != nil {
		return nil, err
	}

	_, err = r.db.Exec(ctx, sql, args...)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) {
			switch pgErr.Code {
			case pgerrcode.UniqueViolation:
				return nil, domain.ErrConflictingData
			case pgerrcode.ForeignKeyViolation:
				return nil, domain.ErrDataNotFound
			case pgerrcode.CheckViolation:
				return nil, domain.ErrInvalidAmount
			}
		}
		return nil, err
	}
	return expense, nil
}

func (r *Repository) DeleteExpense(ctx context.Context, id uuid.UUID) error {
	statement := r.db.QueryBuilder.Delete("expenses").Where(sq.Eq{"id": id})

	sql, args, err := statement.ToSql()
	if err != nil {
		return err
	}

	tag, err := r.db.Exec(ctx, sql, args...)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrDataNotFound
	}
	return nil
}

func (r *Repository) ListExpensesByTender(ctx context.Context, tenderID uuid.UUID) ([]*domain.Expense, error) {
	statement := r.db.QueryBuilder.
		Select("id", "tender_id", "category", "amount", "description", "created_at").
		From("expenses").
		Where(sq.Eq{"tender_id": tenderID}).
		OrderBy("created_at")

	sql, args, err := statement.ToSql()
	if err != nil {
		return nil, err
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	list := make([]*domain.Expense, 0)
	for rows.Next() {
		expense := domain.Expense{}
		err := rows.Scan(
			&expense.ID,
			&expense.TenderID,
			&expense.Category,
			&expense.Amount,
			&expense.Description,
			&expense.CreatedAt,
		)
		if err != nil {
			return nil, err
		}
		list = append(list, &expense)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return list, nil
}
