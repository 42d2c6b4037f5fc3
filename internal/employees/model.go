package employees

import "time"

// Employee は employees コレクション/テーブルの1件
type Employee struct {
	ID         string
	EmployeeID string
	FullName   string
	Email      string
	Department string
	CreatedAt  time.Time
}

// Tally is the number of attendance records per status for one employee.
type Tally struct {
	Present int64
	Absent  int64
}

func (e Employee) toDTO(t Tally) EmployeeResponse {
	return EmployeeResponse{
		ID:           e.ID,
		EmployeeID:   e.EmployeeID,
		FullName:     e.FullName,
		Email:        e.Email,
		Department:   e.Department,
		CreatedAt:    e.CreatedAt,
		PresentCount: t.Present,
		AbsentCount:  t.Absent,
	}
}
