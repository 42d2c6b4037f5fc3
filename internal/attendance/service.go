package attendance

//go:generate mockgen -source=service.go -destination=mocks/mocks.go -package=mocks

import (
	"context"
	"errors"
	"log/slog"
	"strings"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"hrms-backend/internal/employees"
	"hrms-backend/internal/platform/apperr"
	"hrms-backend/internal/platform/clock"
	"hrms-backend/internal/platform/logging"
	"hrms-backend/internal/platform/metrics"
	"hrms-backend/internal/platform/storeerr"
)

// Store persists attendance records keyed by (employee ref, date).
// employeeRef is always Employee.ID, never the business employee_id.
type Store interface {
	// Find returns storeerr.ErrNotFound when nothing is marked for that day.
	Find(ctx context.Context, employeeRef string, day time.Time) (*Record, error)
	// Insert assigns ID and timestamps. A second record for the same
	// (employee, date) fails with storeerr.ErrDuplicate; an unknown
	// employee fails with storeerr.ErrNotFound.
	Insert(ctx context.Context, r *Record) error
	UpdateStatus(ctx context.Context, employeeRef string, day time.Time, status Status) (*Record, error)
	// ListByEmployee returns the employee's records, newest date first.
	ListByEmployee(ctx context.Context, employeeRef string) ([]Record, error)
}

type EmployeeLookup interface {
	FindByEmployeeID(ctx context.Context, employeeID string) (*employees.Employee, error)
}

type Service struct {
	store     Store
	employees EmployeeLookup
	clock     clock.Clock
	logger    *slog.Logger
	metrics   *metrics.Metrics
	tracer    trace.Tracer
}

type Option func(s *Service)

// WithClock sets the clock "today" is resolved against.
func WithClock(c clock.Clock) Option {
	return func(s *Service) { s.clock = c }
}

func WithLogger(logger *slog.Logger) Option {
	return func(s *Service) { s.logger = logger }
}

func WithMetrics(m *metrics.Metrics) Option {
	return func(s *Service) { s.metrics = m }
}

func NewService(store Store, lookup EmployeeLookup, opts ...Option) *Service {
	s := &Service{
		store:     store,
		employees: lookup,
		clock:     clock.New(time.UTC),
		logger:    logging.Discard(),
		tracer:    otel.Tracer("hrms-backend/internal/attendance"),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// MarkResult is the stored record plus whether this call created it.
type MarkResult struct {
	EmployeeID string
	Record     Record
	Created    bool
}

func (r MarkResult) Result() string {
	if r.Created {
		return ResultCreated
	}
	return ResultUpdated
}

func (r MarkResult) Message() string {
	if r.Created {
		return MsgCreated
	}
	return MsgUpdated
}

// POST /attendance/mark/
// 同じ (employee, date) への再マークはステータスの上書き（upsert）
func (s *Service) Mark(ctx context.Context, in MarkAttendanceRequest) (MarkResult, error) {
	ctx, span := s.tracer.Start(ctx, "attendance.Mark")
	defer span.End()

	m, err := s.validateAttendance(ctx, in)
	if err != nil {
		return MarkResult{}, s.fail(ctx, span, "mark_attendance", err, "employee_id", strings.TrimSpace(in.EmployeeID))
	}
	span.SetAttributes(
		attribute.String("employee_id", m.Employee.EmployeeID),
		attribute.String("date", m.Date.Format(clock.DateLayout)),
	)

	rec, created, err := s.upsert(ctx, m)
	if err != nil {
		return MarkResult{}, s.fail(ctx, span, "mark_attendance", err,
			"employee_id", m.Employee.EmployeeID, "date", m.Date.Format(clock.DateLayout))
	}

	res := MarkResult{EmployeeID: m.Employee.EmployeeID, Record: *rec, Created: created}
	s.metrics.IncAttendanceMark(res.Result(), string(rec.Status))
	s.logger.InfoContext(ctx, "attendance marked",
		"op", "mark_attendance",
		"result", res.Result(),
		"employee_id", m.Employee.EmployeeID,
		"date", rec.Date.Format(clock.DateLayout),
		"status", rec.Status,
	)
	return res, nil
}

func (s *Service) upsert(ctx context.Context, m validMark) (*Record, bool, error) {
	ref := m.Employee.ID

	existing, err := s.store.Find(ctx, ref, m.Date)
	switch {
	case err == nil:
		if existing.Status == m.Status {
			return existing, false, nil
		}
		rec, err := s.update(ctx, ref, m)
		return rec, false, err
	case !errors.Is(err, storeerr.ErrNotFound):
		return nil, false, apperr.FromStore(err, "failed to load attendance", "")
	}

	rec := &Record{EmployeeRef: ref, Date: m.Date, Status: m.Status}
	err = s.store.Insert(ctx, rec)
	switch {
	case err == nil:
		return rec, true, nil
	case errors.Is(err, storeerr.ErrDuplicate):
		// 並行マークに先を越された。後勝ちで上書きする
		rec, err := s.update(ctx, ref, m)
		return rec, false, err
	case errors.Is(err, storeerr.ErrNotFound):
		// 検証後に従業員が削除された
		return nil, false, apperr.ErrNotFound(msgEmployeeNotFound)
	}
	return nil, false, apperr.FromStore(err, "failed to save attendance", "")
}

func (s *Service) update(ctx context.Context, ref string, m validMark) (*Record, error) {
	rec, err := s.store.UpdateStatus(ctx, ref, m.Date, m.Status)
	if err != nil {
		return nil, apperr.FromStore(err, "failed to update attendance", "Attendance record not found")
	}
	return rec, nil
}

// GET /attendance/:employee_id/
func (s *Service) History(ctx context.Context, employeeID string) (HistoryResponse, error) {
	ctx, span := s.tracer.Start(ctx, "attendance.History")
	defer span.End()

	employeeID = strings.TrimSpace(employeeID)
	if employeeID == "" {
		return HistoryResponse{}, s.fail(ctx, span, "attendance_history", apperr.ErrValidation("employee_id is required"))
	}

	emp, err := s.employees.FindByEmployeeID(ctx, employeeID)
	if err != nil {
		return HistoryResponse{}, s.fail(ctx, span, "attendance_history",
			apperr.FromStore(err, "failed to load employee", msgEmployeeNotFound), "employee_id", employeeID)
	}

	recs, err := s.store.ListByEmployee(ctx, emp.ID)
	if err != nil {
		return HistoryResponse{}, s.fail(ctx, span, "attendance_history",
			apperr.FromStore(err, "failed to load attendance", ""), "employee_id", employeeID)
	}

	out := HistoryResponse{
		Employee: EmployeeSummary{
			EmployeeID: emp.EmployeeID,
			FullName:   emp.FullName,
			Email:      emp.Email,
			Department: emp.Department,
		},
		Records: make([]RecordResponse, 0, len(recs)),
	}
	for _, r := range recs {
		switch r.Status {
		case StatusPresent:
			out.PresentDays++
		case StatusAbsent:
			out.AbsentDays++
		}
		out.Records = append(out.Records, r.toDTO())
	}
	return out, nil
}

func (s *Service) fail(ctx context.Context, span trace.Span, op string, err error, attrs ...any) error {
	span.RecordError(err)
	span.SetStatus(codes.Error, op)

	level := slog.LevelError
	if apperr.IsClientError(err) {
		level = slog.LevelWarn
	}
	args := append([]any{"op", op, "error", err}, attrs...)
	s.logger.Log(ctx, level, "attendance operation failed", args...)
	return err
}
