package domain

import (
	"time"

	"github.com/google/uuid"
	"github.com/govalues/decimal"
)

// Expense is a cost entry attributed to exactly one tender. Expenses are
// created and removed freely by the accounting view; the lifecycle never
// mutates them.
type Expense struct {
	ID          uuid.UUID
	TenderID    uuid.UUID
	Category    string
	Amount      decimal.Decimal
	Description string
	CreatedAt   time.Time
}
