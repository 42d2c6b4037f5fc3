package attendance

const (
	MsgCreated = "Attendance marked successfully"
	MsgUpdated = "Attendance updated successfully"

	ResultCreated = "created"
	ResultUpdated = "updated"
)

type MarkAttendanceRequest struct {
	EmployeeID string `json:"employee_id"`
	Date       string `json:"date"` // "YYYY-MM-DD" or "today"
	Status     string `json:"status"`
}

type RecordResponse struct {
	ID     string `json:"id"`
	Date   string `json:"date"` // YYYY-MM-DD
	Status Status `json:"status"`
}

type MarkedRecord struct {
	RecordResponse
	EmployeeID string `json:"employee_id"`
}

type MarkAttendanceResponse struct {
	Message string       `json:"message"`
	Result  string       `json:"result"` // created | updated
	Record  MarkedRecord `json:"record"`
}

type EmployeeSummary struct {
	EmployeeID string `json:"employee_id"`
	FullName   string `json:"full_name"`
	Email      string `json:"email"`
	Department string `json:"department"`
}

type HistoryResponse struct {
	Employee    EmployeeSummary  `json:"employee"`
	PresentDays int64            `json:"present_days"`
	AbsentDays  int64            `json:"absent_days"`
	Records     []RecordResponse `json:"records"`
}
