package dashboard_test

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"hrms-backend/internal/dashboard"
	"hrms-backend/internal/dashboard/mocks"
	"hrms-backend/internal/platform/apperr"
	"hrms-backend/internal/platform/clock"
)

var (
	now   = clock.Fixed(time.Date(2024, 3, 5, 14, 0, 0, 0, time.UTC))
	today = time.Date(2024, 3, 5, 0, 0, 0, 0, time.UTC)
)

func newService(t *testing.T) (*dashboard.Service, *mocks.MockEmployeeCounter, *mocks.MockAttendanceCounter) {
	t.Helper()
	ctrl := gomock.NewController(t)
	emps := mocks.NewMockEmployeeCounter(ctrl)
	att := mocks.NewMockAttendanceCounter(ctrl)
	return dashboard.NewService(emps, att, dashboard.WithClock(now)), emps, att
}

func TestSummary(t *testing.T) {
	svc, emps, att := newService(t)
	emps.EXPECT().Count(gomock.Any()).Return(int64(10), nil)
	att.EXPECT().CountOn(gomock.Any(), today, "Present").Return(int64(6), nil)
	att.EXPECT().CountOn(gomock.Any(), today, "Absent").Return(int64(3), nil)
	att.EXPECT().CountOn(gomock.Any(), today, "").Return(int64(9), nil)

	got, err := svc.Summary(context.Background())
	require.NoError(t, err)
	assert.Equal(t, dashboard.SummaryResponse{
		Date:           "2024-03-05",
		TotalEmployees: 10,
		PresentToday:   6,
		AbsentToday:    3,
		NotMarkedToday: 1,
	}, got)
}

func TestSummaryClampsNotMarked(t *testing.T) {
	svc, emps, att := newService(t)
	emps.EXPECT().Count(gomock.Any()).Return(int64(1), nil)
	att.EXPECT().CountOn(gomock.Any(), today, "Present").Return(int64(2), nil)
	att.EXPECT().CountOn(gomock.Any(), today, "Absent").Return(int64(0), nil)
	att.EXPECT().CountOn(gomock.Any(), today, "").Return(int64(2), nil)

	got, err := svc.Summary(context.Background())
	require.NoError(t, err)
	assert.Zero(t, got.NotMarkedToday)
}

func TestSummaryEmpty(t *testing.T) {
	svc, emps, att := newService(t)
	emps.EXPECT().Count(gomock.Any()).Return(int64(0), nil)
	att.EXPECT().CountOn(gomock.Any(), today, gomock.Any()).Return(int64(0), nil).Times(3)

	got, err := svc.Summary(context.Background())
	require.NoError(t, err)
	assert.Equal(t, dashboard.SummaryResponse{Date: "2024-03-05"}, got)
}

func TestSummaryTodayFollowsClockZone(t *testing.T) {
	ny, err := time.LoadLocation("America/New_York")
	require.NoError(t, err)
	ctrl := gomock.NewController(t)
	emps := mocks.NewMockEmployeeCounter(ctrl)
	att := mocks.NewMockAttendanceCounter(ctrl)
	// 2024-03-05 02:00 UTC は New York ではまだ 03-04
	svc := dashboard.NewService(emps, att,
		dashboard.WithClock(clock.Fixed(time.Date(2024, 3, 5, 2, 0, 0, 0, time.UTC).In(ny))))
	yesterday := today.AddDate(0, 0, -1)

	emps.EXPECT().Count(gomock.Any()).Return(int64(0), nil)
	att.EXPECT().CountOn(gomock.Any(), yesterday, gomock.Any()).Return(int64(0), nil).Times(3)

	got, err := svc.Summary(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "2024-03-04", got.Date)
}

func TestSummaryStoreError(t *testing.T) {
	svc, emps, att := newService(t)
	emps.EXPECT().Count(gomock.Any()).Return(int64(0), errors.New("connection refused"))
	att.EXPECT().CountOn(gomock.Any(), today, gomock.Any()).Return(int64(0), nil).AnyTimes()

	_, err := svc.Summary(context.Background())
	var api *apperr.APIError
	require.ErrorAs(t, err, &api)
	assert.Equal(t, apperr.CodeDatabase, api.Code)
}

func TestSummaryHandler(t *testing.T) {
	gin.SetMode(gin.TestMode)
	svc, emps, att := newService(t)
	emps.EXPECT().Count(gomock.Any()).Return(int64(2), nil)
	att.EXPECT().CountOn(gomock.Any(), today, "Present").Return(int64(1), nil)
	att.EXPECT().CountOn(gomock.Any(), today, "Absent").Return(int64(0), nil)
	att.EXPECT().CountOn(gomock.Any(), today, "").Return(int64(1), nil)

	r := gin.New()
	dashboard.RegisterRoutes(r.Group("/api"), svc)
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/dashboard/summary/", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{
		"date": "2024-03-05",
		"total_employees": 2,
		"present_today": 1,
		"absent_today": 0,
		"not_marked_today": 1
	}`, rec.Body.String())
}
