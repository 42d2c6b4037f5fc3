package dashboard

//go:generate mockgen -source=service.go -destination=mocks/mocks.go -package=mocks

import (
	"context"
	"log/slog"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
	"golang.org/x/sync/errgroup"

	"hrms-backend/internal/platform/apperr"
	"hrms-backend/internal/platform/clock"
	"hrms-backend/internal/platform/logging"
)

const (
	statusPresent = "Present"
	statusAbsent  = "Absent"
)

type EmployeeCounter interface {
	Count(ctx context.Context) (int64, error)
}

// AttendanceCounter counts records on one date; status "" matches any.
type AttendanceCounter interface {
	CountOn(ctx context.Context, day time.Time, status string) (int64, error)
}

type Service struct {
	employees  EmployeeCounter
	attendance AttendanceCounter
	clock      clock.Clock
	logger     *slog.Logger
	tracer     trace.Tracer
}

type Option func(s *Service)

func WithClock(c clock.Clock) Option {
	return func(s *Service) { s.clock = c }
}

func WithLogger(logger *slog.Logger) Option {
	return func(s *Service) { s.logger = logger }
}

func NewService(emps EmployeeCounter, att AttendanceCounter, opts ...Option) *Service {
	s := &Service{
		employees:  emps,
		attendance: att,
		clock:      clock.New(time.UTC),
		logger:     logging.Discard(),
		tracer:     otel.Tracer("hrms-backend/internal/dashboard"),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// GET /dashboard/summary/
// 4つのカウントは独立しているので並行に取得する
func (s *Service) Summary(ctx context.Context) (SummaryResponse, error) {
	ctx, span := s.tracer.Start(ctx, "dashboard.Summary")
	defer span.End()

	today := clock.Today(s.clock)
	var total, present, absent, marked int64

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() (err error) {
		total, err = s.employees.Count(gctx)
		return err
	})
	g.Go(func() (err error) {
		present, err = s.attendance.CountOn(gctx, today, statusPresent)
		return err
	})
	g.Go(func() (err error) {
		absent, err = s.attendance.CountOn(gctx, today, statusAbsent)
		return err
	})
	g.Go(func() (err error) {
		marked, err = s.attendance.CountOn(gctx, today, "")
		return err
	})
	if err := g.Wait(); err != nil {
		api := apperr.FromStore(err, "failed to load dashboard summary", "")
		span.RecordError(api)
		span.SetStatus(codes.Error, "dashboard_summary")
		s.logger.ErrorContext(ctx, "dashboard operation failed", "op", "dashboard_summary", "error", api)
		return SummaryResponse{}, api
	}

	return SummaryResponse{
		Date:           today.Format(clock.DateLayout),
		TotalEmployees: total,
		PresentToday:   present,
		AbsentToday:    absent,
		NotMarkedToday: max(total-marked, 0),
	}, nil
}
