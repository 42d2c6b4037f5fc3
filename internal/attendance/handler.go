package attendance

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"hrms-backend/internal/platform/httpx"
)

type Handler struct{ svc *Service }

func RegisterRoutes(r gin.IRoutes, svc *Service) {
	h := &Handler{svc: svc}

	r.POST("/attendance/mark/", h.MarkAttendance)
	r.GET("/attendance/:employee_id/", h.GetHistory)
}

// MarkAttendance godoc
// @Summary  Mark (or overwrite) attendance for one employee and date
// @Tags     attendance
// @Accept   json
// @Produce  json
// @Param    body body MarkAttendanceRequest true "attendance"
// @Success  201 {object} MarkAttendanceResponse "created"
// @Success  200 {object} MarkAttendanceResponse "updated"
// @Failure  400 {object} httpx.ErrorBody
// @Failure  404 {object} httpx.ErrorBody
// @Router   /attendance/mark/ [post]
func (h *Handler) MarkAttendance(c *gin.Context) {
	var req MarkAttendanceRequest
	if err := httpx.BindJSON(c, &req); err != nil {
		httpx.WriteError(c, err)
		return
	}

	res, err := h.svc.Mark(c.Request.Context(), req)
	if err != nil {
		httpx.WriteError(c, err)
		return
	}

	status := http.StatusOK
	if res.Created {
		status = http.StatusCreated
	}
	c.JSON(status, MarkAttendanceResponse{
		Message: res.Message(),
		Result:  res.Result(),
		Record: MarkedRecord{
			RecordResponse: res.Record.toDTO(),
			EmployeeID:     res.EmployeeID,
		},
	})
}

// GetHistory godoc
// @Summary  Attendance history for one employee, newest date first
// @Tags     attendance
// @Produce  json
// @Param    employee_id path string true "employee id"
// @Success  200 {object} HistoryResponse
// @Failure  404 {object} httpx.ErrorBody
// @Router   /attendance/{employee_id}/ [get]
func (h *Handler) GetHistory(c *gin.Context) {
	res, err := h.svc.History(c.Request.Context(), c.Param("employee_id"))
	if err != nil {
		httpx.WriteError(c, err)
		return
	}
	c.JSON(http.StatusOK, res)
}
