package employees

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"hrms-backend/internal/platform/httpx"
)

type Handler struct{ svc *Service }

func RegisterRoutes(r gin.IRoutes, svc *Service) {
	h := &Handler{svc: svc}

	// パスはフロントエンド（hrms-frontend）の呼び出しに合わせて末尾スラッシュ付き
	r.GET("/employees/", h.ListEmployees)
	r.POST("/employees/create/", h.CreateEmployee)
	r.DELETE("/employees/:employee_id/delete/", h.DeleteEmployee)
}

// CreateEmployee godoc
// @Summary  Create an employee
// @Tags     employees
// @Accept   json
// @Produce  json
// @Param    body body CreateEmployeeRequest true "employee"
// @Success  201 {object} CreateEmployeeResponse
// @Failure  400 {object} httpx.ErrorBody
// @Failure  409 {object} httpx.ErrorBody
// @Router   /employees/create/ [post]
func (h *Handler) CreateEmployee(c *gin.Context) {
	var req CreateEmployeeRequest
	if err := httpx.BindJSON(c, &req); err != nil {
		httpx.WriteError(c, err)
		return
	}

	res, err := h.svc.Create(c.Request.Context(), req)
	if err != nil {
		httpx.WriteError(c, err)
		return
	}
	c.Header("Location", "/api/attendance/"+res.EmployeeID+"/")
	c.JSON(http.StatusCreated, CreateEmployeeResponse{Message: MsgCreated, ID: res.ID, Employee: res})
}

// ListEmployees godoc
// @Summary  List employees with attendance counts, newest first
// @Tags     employees
// @Produce  json
// @Success  200 {array}  EmployeeResponse
// @Failure  500 {object} httpx.ErrorBody
// @Router   /employees/ [get]
func (h *Handler) ListEmployees(c *gin.Context) {
	res, err := h.svc.List(c.Request.Context())
	if err != nil {
		httpx.WriteError(c, err)
		return
	}
	c.JSON(http.StatusOK, res)
}

// DeleteEmployee godoc
// @Summary  Delete an employee and all of its attendance records
// @Tags     employees
// @Produce  json
// @Param    employee_id path string true "employee id"
// @Success  200 {object} MessageResponse
// @Failure  404 {object} httpx.ErrorBody
// @Router   /employees/{employee_id}/delete/ [delete]
func (h *Handler) DeleteEmployee(c *gin.Context) {
	if err := h.svc.Delete(c.Request.Context(), c.Param("employee_id")); err != nil {
		httpx.WriteError(c, err)
		return
	}
	c.JSON(http.StatusOK, MessageResponse{Message: MsgDeleted})
}
