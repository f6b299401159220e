package port

import (
	"context"

	"github.com/asaparov/tendercrm/internal/core/domain"
)

//go:generate mockgen -source=activity.go -destination=mock/activity.go -package=mock

// ActivityLog is the external activity-log collaborator. The lifecycle builds
// the record; the orchestrator hands it over here.
type ActivityLog interface {
	Record(ctx context.Context, rec domain.ActivityRecord) error
}
