package attendance

import (
	"time"

	"hrms-backend/internal/platform/clock"
)

type Status string

const (
	StatusPresent Status = "Present"
	StatusAbsent  Status = "Absent"
)

func (s Status) Valid() bool { return s == StatusPresent || s == StatusAbsent }

// Record は (employee, date) ごとに最大1件。Date は UTC 0時の暦日。
type Record struct {
	ID          string
	EmployeeRef string
	Date        time.Time
	Status      Status
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

func (r Record) toDTO() RecordResponse {
	return RecordResponse{
		ID:     r.ID,
		Date:   r.Date.Format(clock.DateLayout),
		Status: r.Status,
	}
}
