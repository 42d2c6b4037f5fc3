package dashboard

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"hrms-backend/internal/platform/httpx"
)

type Handler struct{ svc *Service }

func RegisterRoutes(r gin.IRoutes, svc *Service) {
	h := &Handler{svc: svc}
	r.GET("/dashboard/summary/", h.GetSummary)
}

// GetSummary godoc
// @Summary  Today's headcount and attendance totals
// @Tags     dashboard
// @Produce  json
// @Success  200 {object} SummaryResponse
// @Failure  500 {object} httpx.ErrorBody
// @Router   /dashboard/summary/ [get]
func (h *Handler) GetSummary(c *gin.Context) {
	res, err := h.svc.Summary(c.Request.Context())
	if err != nil {
		httpx.WriteError(c, err)
		return
	}
	c.JSON(http.StatusOK, res)
}
