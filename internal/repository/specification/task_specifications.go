package specification

import "gorm.io/gorm"

const (
	TaskStatusAll       = "all"
	TaskStatusCompleted = "completed"
	TaskStatusPending   = "pending"
)

// CompletionStatus filters tasks by completion state. Unrecognized values
// behave like "all".
type CompletionStatus struct {
	Status string
}

func (s CompletionStatus) Apply(db *gorm.DB) *gorm.DB {
	switch s.Status {
	case TaskStatusCompleted:
		return db.Where("completed = ?", true)
	case TaskStatusPending:
		return db.Where("completed = ?", false)
	default:
		return db
	}
}
