package activity

import (
	"context"
	"encoding/json"

	"github.com/asaparov/tendercrm/internal/adapter/storage"
	"github.com/asaparov/tendercrm/internal/core/domain"
)

// Log is the Postgres-backed activity-log collaborator. The lifecycle builds
// the records; this adapter only persists them.
type Log struct {
	db *storage.DB
}

func NewLog(db *storage.DB) (*Log, error) {
	return &Log{db: db}, nil
}

func (l *Log) Record(ctx context.Context, rec domain.ActivityRecord) error {
	payload, err := json.Marshal(rec.Payload)
	if err != nil {
		return err
	}

	statement := l.db.QueryBuilder.Insert("activity_log").
		Columns("action", "tender_id", "from_status", "to_status", "payload").
		Values(rec.Action, rec.TenderID, rec.FromStatus, rec.ToStatus, payload)

	sql, args, err := statement.ToSql()
	if err != nil {
		return err
	}

	_, err = l.db.Exec(ctx, sql, args...)
	return err
}
