package domain

import "github.com/google/uuid"

// ActivityRecord describes one executed transition for the external
// activity-log collaborator. The lifecycle only builds the record; persisting
// it is the caller's job.
type ActivityRecord struct {
	Action     string
	TenderID   uuid.UUID
	FromStatus TenderStatus
	ToStatus   TenderStatus
	Payload    map[string]string
}
