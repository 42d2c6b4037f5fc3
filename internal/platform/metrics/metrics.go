package metrics

import (
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics holds the service's Prometheus collectors.
type Metrics struct {
	HTTPRequests        *prometheus.CounterVec
	HTTPRequestDuration *prometheus.HistogramVec
	EmployeesCreated    prometheus.Counter
	EmployeesDeleted    prometheus.Counter
	AttendanceMarks     *prometheus.CounterVec
}

// New registers all collectors on reg.
func New(reg prometheus.Registerer) *Metrics {
	f := promauto.With(reg)
	return &Metrics{
		HTTPRequests: f.NewCounterVec(prometheus.CounterOpts{
			Name: "hrms_http_requests_total",
			Help: "HTTP requests by route, method and status",
		}, []string{"route", "method", "status"}),
		HTTPRequestDuration: f.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "hrms_http_request_duration_seconds",
			Help:    "HTTP request latency by route",
			Buckets: []float64{0.001, 0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1, 2.5},
		}, []string{"route", "method"}),
		EmployeesCreated: f.NewCounter(prometheus.CounterOpts{
			Name: "hrms_employees_created_total",
			Help: "Total number of employees created",
		}),
		EmployeesDeleted: f.NewCounter(prometheus.CounterOpts{
			Name: "hrms_employees_deleted_total",
			Help: "Total number of employees deleted (with their attendance)",
		}),
		AttendanceMarks: f.NewCounterVec(prometheus.CounterOpts{
			Name: "hrms_attendance_marks_total",
			Help: "Attendance marks by result (created, updated) and status",
		}, []string{"result", "status"}),
	}
}

// Middleware records per-route request counts and latency.
func (m *Metrics) Middleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		route := c.FullPath()
		if route == "" {
			route = "unmatched"
		}
		method := c.Request.Method
		m.HTTPRequests.WithLabelValues(route, method, strconv.Itoa(c.Writer.Status())).Inc()
		m.HTTPRequestDuration.WithLabelValues(route, method).Observe(time.Since(start).Seconds())
	}
}

// nil-safe helpers so services can run without metrics in tests.

func (m *Metrics) IncEmployeeCreated() {
	if m != nil {
		m.EmployeesCreated.Inc()
	}
}

func (m *Metrics) IncEmployeeDeleted() {
	if m != nil {
		m.EmployeesDeleted.Inc()
	}
}

func (m *Metrics) IncAttendanceMark(result, status string) {
	if m != nil {
		m.AttendanceMarks.WithLabelValues(result, status).Inc()
	}
}
