package attendance

import (
	"context"
	"strings"
	"time"

	"hrms-backend/internal/employees"
	"hrms-backend/internal/platform/apperr"
	"hrms-backend/internal/platform/clock"
)

const msgEmployeeNotFound = "Employee not found."

type validMark struct {
	Employee *employees.Employee
	Date     time.Time
	Status   Status
}

// validateAttendance checks the payload shape, then resolves the employee.
func (s *Service) validateAttendance(ctx context.Context, in MarkAttendanceRequest) (validMark, error) {
	fields := map[string]string{}

	employeeID := strings.TrimSpace(in.EmployeeID)
	if employeeID == "" {
		fields["employee_id"] = "This field may not be blank."
	}

	var day time.Time
	if strings.TrimSpace(in.Date) == "" {
		fields["date"] = "This field is required."
	} else if d, err := s.parseDate(in.Date); err != nil {
		fields["date"] = "Date has wrong format. Use YYYY-MM-DD."
	} else {
		day = d
	}

	status := Status(in.Status)
	if !status.Valid() {
		fields["status"] = `"` + in.Status + `" is not a valid choice. Use "Present" or "Absent".`
	}

	if len(fields) > 0 {
		return validMark{}, apperr.ErrFields(fields)
	}

	emp, err := s.employees.FindByEmployeeID(ctx, employeeID)
	if err != nil {
		api := apperr.FromStore(err, "failed to load employee", msgEmployeeNotFound)
		if api.Code == apperr.CodeNotFound {
			api.Fields = map[string]string{"employee_id": msgEmployeeNotFound}
		}
		return validMark{}, api
	}
	return validMark{Employee: emp, Date: day, Status: status}, nil
}

// parseDate accepts YYYY-MM-DD or "today" (in the service clock's zone).
func (s *Service) parseDate(v string) (time.Time, error) {
	v = strings.TrimSpace(v)
	if strings.EqualFold(v, "today") {
		return clock.Today(s.clock), nil
	}
	return time.ParseInLocation(clock.DateLayout, v, time.UTC)
}
