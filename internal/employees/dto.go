package employees

import "time"

const (
	MsgCreated = "Employee created successfully"
	MsgDeleted = "Employee deleted successfully"
)

type CreateEmployeeRequest struct {
	EmployeeID string `json:"employee_id" validate:"required,max=64"`
	FullName   string `json:"full_name" validate:"required,max=255"`
	Email      string `json:"email" validate:"required,max=255,email"`
	Department string `json:"department" validate:"required,max=255"`
}

type EmployeeResponse struct {
	ID           string    `json:"id"`
	EmployeeID   string    `json:"employee_id"`
	FullName     string    `json:"full_name"`
	Email        string    `json:"email"`
	Department   string    `json:"department"`
	CreatedAt    time.Time `json:"created_at"`
	PresentCount int64     `json:"present_count"`
	AbsentCount  int64     `json:"absent_count"`
}

type CreateEmployeeResponse struct {
	Message  string           `json:"message"`
	ID       string           `json:"id"`
	Employee EmployeeResponse `json:"employee"`
}

type MessageResponse struct {
	Message string `json:"message"`
}
