package domain

import (
	"time"

	"github.com/google/uuid"
	"github.com/govalues/decimal"
)

type TenderStatus string

const (
	TenderStatusNew         TenderStatus = "new"
	TenderStatusSubmitted   TenderStatus = "submitted"
	TenderStatusUnderReview TenderStatus = "under_review"
	TenderStatusWon         TenderStatus = "won"
	TenderStatusInProgress  TenderStatus = "in_progress"
	TenderStatusCompleted   TenderStatus = "completed"
	TenderStatusLost        TenderStatus = "lost"
)

// Tender is the unit of work. Monetary and temporal fields are filled in
// monotonically as the tender advances: submitted price appears no earlier
// than "submitted", win price no earlier than "won".
type Tender struct {
	ID                 uuid.UUID
	Name               string
	PurchaseNumber     string
	Region             string
	Link               string
	PublishedAt        *time.Time
	SubmittedAt        *time.Time
	SubmissionDeadline *time.Time
	StartPrice         *decimal.Decimal
	SubmittedPrice     *decimal.Decimal
	WinPrice           *decimal.Decimal
	Status             TenderStatus
	CreatedAt          time.Time
}
