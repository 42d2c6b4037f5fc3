package employees

//go:generate mockgen -source=service.go -destination=mocks/mocks.go -package=mocks

import (
	"context"
	"log/slog"
	"strings"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"hrms-backend/internal/platform/apperr"
	"hrms-backend/internal/platform/logging"
	"hrms-backend/internal/platform/metrics"
)

// Store is the persistence contract for employees. Implementations assign
// Employee.ID and CreatedAt on Insert and enforce uniqueness of employee_id
// and email, reporting violations as *storeerr.DuplicateKeyError.
type Store interface {
	Insert(ctx context.Context, e *Employee) error
	FindByEmployeeID(ctx context.Context, employeeID string) (*Employee, error)
	ExistsEmployeeID(ctx context.Context, employeeID string) (bool, error)
	ExistsEmail(ctx context.Context, email string) (bool, error)
	// List returns every employee, most recently created first.
	List(ctx context.Context) ([]Employee, error)
	Count(ctx context.Context) (int64, error)
	// DeleteWithAttendance removes the employee and every attendance record
	// referencing it in one step. storeerr.ErrNotFound if id is unknown.
	DeleteWithAttendance(ctx context.Context, id string) error
}

// AttendanceTally aggregates attendance per employee (keyed by Employee.ID).
type AttendanceTally interface {
	TallyByEmployee(ctx context.Context) (map[string]Tally, error)
}

type Service struct {
	store   Store
	tally   AttendanceTally
	logger  *slog.Logger
	metrics *metrics.Metrics
	tracer  trace.Tracer
}

type Option func(s *Service)

func WithLogger(logger *slog.Logger) Option {
	return func(s *Service) { s.logger = logger }
}

func WithMetrics(m *metrics.Metrics) Option {
	return func(s *Service) { s.metrics = m }
}

func NewService(store Store, tally AttendanceTally, opts ...Option) *Service {
	s := &Service{
		store:  store,
		tally:  tally,
		logger: logging.Discard(),
		tracer: otel.Tracer("hrms-backend/internal/employees"),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// POST /employees/create/
func (s *Service) Create(ctx context.Context, in CreateEmployeeRequest) (EmployeeResponse, error) {
	ctx, span := s.tracer.Start(ctx, "employees.Create")
	defer span.End()

	req, err := s.validateEmployee(ctx, in)
	if err != nil {
		return EmployeeResponse{}, s.fail(ctx, span, "create_employee", err, "employee_id", req.EmployeeID)
	}

	e := &Employee{
		EmployeeID: req.EmployeeID,
		FullName:   req.FullName,
		Email:      req.Email,
		Department: req.Department,
	}
	if err := s.store.Insert(ctx, e); err != nil {
		// 検証後に並行リクエストが同じキーを挿入した場合もここで 409 になる
		return EmployeeResponse{}, s.fail(ctx, span, "create_employee",
			apperr.FromStore(err, "failed to create employee", ""), "employee_id", req.EmployeeID)
	}

	s.metrics.IncEmployeeCreated()
	s.logger.InfoContext(ctx, "employee created", "op", "create_employee", "id", e.ID, "employee_id", e.EmployeeID)
	return e.toDTO(Tally{}), nil
}

// GET /employees/
func (s *Service) List(ctx context.Context) ([]EmployeeResponse, error) {
	ctx, span := s.tracer.Start(ctx, "employees.List")
	defer span.End()

	list, err := s.store.List(ctx)
	if err != nil {
		return nil, s.fail(ctx, span, "list_employees", apperr.FromStore(err, "failed to list employees", ""))
	}
	tallies, err := s.tally.TallyByEmployee(ctx)
	if err != nil {
		return nil, s.fail(ctx, span, "list_employees", apperr.FromStore(err, "failed to count attendance", ""))
	}

	out := make([]EmployeeResponse, 0, len(list))
	for i := 0; i < len(list); i++ {
		out = append(out, list[i].toDTO(tallies[list[i].ID]))
	}
	return out, nil
}

// DELETE /employees/:employee_id/delete/
func (s *Service) Delete(ctx context.Context, employeeID string) error {
	ctx, span := s.tracer.Start(ctx, "employees.Delete")
	defer span.End()

	employeeID = strings.TrimSpace(employeeID)
	if employeeID == "" {
		return s.fail(ctx, span, "delete_employee", apperr.ErrValidation("employee_id is required"))
	}

	e, err := s.store.FindByEmployeeID(ctx, employeeID)
	if err != nil {
		return s.fail(ctx, span, "delete_employee",
			apperr.FromStore(err, "failed to load employee", "Employee not found"), "employee_id", employeeID)
	}
	if err := s.store.DeleteWithAttendance(ctx, e.ID); err != nil {
		return s.fail(ctx, span, "delete_employee",
			apperr.FromStore(err, "failed to delete employee", "Employee not found"), "employee_id", employeeID)
	}

	s.metrics.IncEmployeeDeleted()
	s.logger.InfoContext(ctx, "employee deleted", "op", "delete_employee", "id", e.ID, "employee_id", employeeID)
	return nil
}

// fail logs err with the operation context and records it on the span.
// Caller mistakes are logged at warn, store and internal failures at error.
func (s *Service) fail(ctx context.Context, span trace.Span, op string, err error, attrs ...any) error {
	span.RecordError(err)
	span.SetStatus(codes.Error, op)

	level := slog.LevelError
	if apperr.IsClientError(err) {
		level = slog.LevelWarn
	}
	args := append([]any{"op", op, "error", err}, attrs...)
	s.logger.Log(ctx, level, "employee operation failed", args...)
	return err
}
