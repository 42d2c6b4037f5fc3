package attendance_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"

	"hrms-backend/internal/attendance"
	"hrms-backend/internal/attendance/mocks"
	"hrms-backend/internal/employees"
	"hrms-backend/internal/platform/apperr"
	"hrms-backend/internal/platform/clock"
	"hrms-backend/internal/platform/storeerr"
)

var (
	jan1 = time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	jane = &employees.Employee{ID: "01EMP", EmployeeID: "E1", FullName: "Jane Doe", Email: "jane@x.com", Department: "Eng"}
)

type ServiceSuite struct {
	suite.Suite
	ctrl    *gomock.Controller
	store   *mocks.MockStore
	lookup  *mocks.MockEmployeeLookup
	service *attendance.Service
	ctx     context.Context
}

func TestServiceSuite(t *testing.T) {
	suite.Run(t, new(ServiceSuite))
}

func (s *ServiceSuite) SetupTest() {
	s.ctrl = gomock.NewController(s.T())
	s.store = mocks.NewMockStore(s.ctrl)
	s.lookup = mocks.NewMockEmployeeLookup(s.ctrl)
	s.service = attendance.NewService(s.store, s.lookup)
	s.ctx = context.Background()
}

func (s *ServiceSuite) TearDownTest() {
	s.ctrl.Finish()
}

func (s *ServiceSuite) requireCode(err error, code apperr.Code) *apperr.APIError {
	var api *apperr.APIError
	s.Require().ErrorAs(err, &api)
	s.Equal(code, api.Code)
	return api
}

func mark(status string) attendance.MarkAttendanceRequest {
	return attendance.MarkAttendanceRequest{EmployeeID: "E1", Date: "2024-01-01", Status: status}
}

func (s *ServiceSuite) TestMarkCreates() {
	s.lookup.EXPECT().FindByEmployeeID(gomock.Any(), "E1").Return(jane, nil)
	s.store.EXPECT().Find(gomock.Any(), "01EMP", jan1).Return(nil, storeerr.ErrNotFound)
	s.store.EXPECT().Insert(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, r *attendance.Record) error {
		s.Equal("01EMP", r.EmployeeRef)
		s.Equal(jan1, r.Date)
		s.Equal(attendance.StatusPresent, r.Status)
		r.ID = "01ATT"
		return nil
	})

	res, err := s.service.Mark(s.ctx, mark("Present"))
	s.Require().NoError(err)
	s.True(res.Created)
	s.Equal(attendance.ResultCreated, res.Result())
	s.Equal(attendance.MsgCreated, res.Message())
	s.Equal("E1", res.EmployeeID)
	s.Equal("01ATT", res.Record.ID)
}

func (s *ServiceSuite) TestMarkUpdatesExisting() {
	existing := &attendance.Record{ID: "01ATT", EmployeeRef: "01EMP", Date: jan1, Status: attendance.StatusPresent}
	updated := *existing
	updated.Status = attendance.StatusAbsent

	s.lookup.EXPECT().FindByEmployeeID(gomock.Any(), "E1").Return(jane, nil)
	s.store.EXPECT().Find(gomock.Any(), "01EMP", jan1).Return(existing, nil)
	s.store.EXPECT().UpdateStatus(gomock.Any(), "01EMP", jan1, attendance.StatusAbsent).Return(&updated, nil)

	res, err := s.service.Mark(s.ctx, mark("Absent"))
	s.Require().NoError(err)
	s.False(res.Created)
	s.Equal(attendance.MsgUpdated, res.Message())
	s.Equal("01ATT", res.Record.ID)
	s.Equal(attendance.StatusAbsent, res.Record.Status)
}

func (s *ServiceSuite) TestMarkSameStatusSkipsWrite() {
	existing := &attendance.Record{ID: "01ATT", EmployeeRef: "01EMP", Date: jan1, Status: attendance.StatusPresent}
	s.lookup.EXPECT().FindByEmployeeID(gomock.Any(), "E1").Return(jane, nil)
	s.store.EXPECT().Find(gomock.Any(), "01EMP", jan1).Return(existing, nil)

	res, err := s.service.Mark(s.ctx, mark("Present"))
	s.Require().NoError(err)
	s.False(res.Created)
	s.Equal(attendance.ResultUpdated, res.Result())
}

func (s *ServiceSuite) TestMarkRaceFallsBackToUpdate() {
	won := &attendance.Record{ID: "01OTHER", EmployeeRef: "01EMP", Date: jan1, Status: attendance.StatusAbsent}

	s.lookup.EXPECT().FindByEmployeeID(gomock.Any(), "E1").Return(jane, nil)
	gomock.InOrder(
		s.store.EXPECT().Find(gomock.Any(), "01EMP", jan1).Return(nil, storeerr.ErrNotFound),
		s.store.EXPECT().Insert(gomock.Any(), gomock.Any()).Return(storeerr.Duplicate("date")),
		s.store.EXPECT().UpdateStatus(gomock.Any(), "01EMP", jan1, attendance.StatusAbsent).Return(won, nil),
	)

	res, err := s.service.Mark(s.ctx, mark("Absent"))
	s.Require().NoError(err)
	s.False(res.Created)
	s.Equal("01OTHER", res.Record.ID)
}

func (s *ServiceSuite) TestMarkEmployeeDeletedMidway() {
	s.lookup.EXPECT().FindByEmployeeID(gomock.Any(), "E1").Return(jane, nil)
	s.store.EXPECT().Find(gomock.Any(), "01EMP", jan1).Return(nil, storeerr.ErrNotFound)
	s.store.EXPECT().Insert(gomock.Any(), gomock.Any()).Return(storeerr.ErrNotFound)

	_, err := s.service.Mark(s.ctx, mark("Present"))
	s.requireCode(err, apperr.CodeNotFound)
}

func (s *ServiceSuite) TestMarkToday() {
	// 2024-01-01 23:30 UTC は Asia/Tokyo では 2024-01-02
	tokyo, err := time.LoadLocation("Asia/Tokyo")
	s.Require().NoError(err)
	svc := attendance.NewService(s.store, s.lookup,
		attendance.WithClock(clock.Fixed(time.Date(2024, 1, 1, 23, 30, 0, 0, time.UTC).In(tokyo))))
	jan2 := jan1.AddDate(0, 0, 1)

	s.lookup.EXPECT().FindByEmployeeID(gomock.Any(), "E1").Return(jane, nil)
	s.store.EXPECT().Find(gomock.Any(), "01EMP", jan2).Return(nil, storeerr.ErrNotFound)
	s.store.EXPECT().Insert(gomock.Any(), gomock.Any()).Return(nil)

	res, err := svc.Mark(s.ctx, attendance.MarkAttendanceRequest{EmployeeID: "E1", Date: "today", Status: "Present"})
	s.Require().NoError(err)
	s.Equal(jan2, res.Record.Date)
}

func (s *ServiceSuite) TestMarkValidation() {
	cases := []struct {
		name  string
		req   attendance.MarkAttendanceRequest
		field string
	}{
		{"blank employee", attendance.MarkAttendanceRequest{EmployeeID: "  ", Date: "2024-01-01", Status: "Present"}, "employee_id"},
		{"missing date", attendance.MarkAttendanceRequest{EmployeeID: "E1", Status: "Present"}, "date"},
		{"bad date", attendance.MarkAttendanceRequest{EmployeeID: "E1", Date: "01/02/2024", Status: "Present"}, "date"},
		{"impossible date", attendance.MarkAttendanceRequest{EmployeeID: "E1", Date: "2024-02-30", Status: "Present"}, "date"},
		{"bad status", attendance.MarkAttendanceRequest{EmployeeID: "E1", Date: "2024-01-01", Status: "Late"}, "status"},
		{"lowercase status", attendance.MarkAttendanceRequest{EmployeeID: "E1", Date: "2024-01-01", Status: "present"}, "status"},
	}
	for _, tc := range cases {
		s.Run(tc.name, func() {
			_, err := s.service.Mark(s.ctx, tc.req)
			api := s.requireCode(err, apperr.CodeValidation)
			s.Contains(api.Fields, tc.field)
		})
	}
}

func (s *ServiceSuite) TestMarkUnknownEmployee() {
	s.lookup.EXPECT().FindByEmployeeID(gomock.Any(), "E404").Return(nil, storeerr.ErrNotFound)

	_, err := s.service.Mark(s.ctx, attendance.MarkAttendanceRequest{EmployeeID: "E404", Date: "2024-01-01", Status: "Present"})
	api := s.requireCode(err, apperr.CodeNotFound)
	s.Equal("Employee not found.", api.Message)
}

func (s *ServiceSuite) TestMarkStoreTimeout() {
	s.lookup.EXPECT().FindByEmployeeID(gomock.Any(), "E1").Return(jane, nil)
	s.store.EXPECT().Find(gomock.Any(), "01EMP", jan1).
		Return(nil, errors.Join(storeerr.ErrUnavailable, context.DeadlineExceeded))

	_, err := s.service.Mark(s.ctx, mark("Present"))
	api := s.requireCode(err, apperr.CodeDatabase)
	s.True(api.Retryable)
}

func (s *ServiceSuite) TestHistory() {
	s.lookup.EXPECT().FindByEmployeeID(gomock.Any(), "E1").Return(jane, nil)
	s.store.EXPECT().ListByEmployee(gomock.Any(), "01EMP").Return([]attendance.Record{
		{ID: "3", Date: jan1.AddDate(0, 0, 2), Status: attendance.StatusPresent},
		{ID: "2", Date: jan1.AddDate(0, 0, 1), Status: attendance.StatusAbsent},
		{ID: "1", Date: jan1, Status: attendance.StatusPresent},
	}, nil)

	res, err := s.service.History(s.ctx, " E1 ")
	s.Require().NoError(err)
	s.Equal("Jane Doe", res.Employee.FullName)
	s.EqualValues(2, res.PresentDays)
	s.EqualValues(1, res.AbsentDays)
	s.Require().Len(res.Records, 3)
	s.Equal("2024-01-03", res.Records[0].Date)
	s.Equal("2024-01-01", res.Records[2].Date)
}

func (s *ServiceSuite) TestHistoryEmpty() {
	s.lookup.EXPECT().FindByEmployeeID(gomock.Any(), "E1").Return(jane, nil)
	s.store.EXPECT().ListByEmployee(gomock.Any(), "01EMP").Return(nil, nil)

	res, err := s.service.History(s.ctx, "E1")
	s.Require().NoError(err)
	s.Zero(res.PresentDays)
	s.NotNil(res.Records)
	s.Empty(res.Records)
}

func (s *ServiceSuite) TestHistoryUnknownEmployee() {
	s.lookup.EXPECT().FindByEmployeeID(gomock.Any(), "E404").Return(nil, storeerr.ErrNotFound)

	_, err := s.service.History(s.ctx, "E404")
	s.requireCode(err, apperr.CodeNotFound)
}
