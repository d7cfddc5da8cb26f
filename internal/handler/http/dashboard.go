package http

import (
	"net/http"

	"github.com/workpulse/hrms-backend-go/internal/domain/dashboard"
	"github.com/workpulse/hrms-backend-go/internal/domain/employee_dashboard"
	"github.com/workpulse/hrms-backend-go/internal/handler/http/response"
)

type DashboardHandler interface {
	GetAdminDashboard(w http.ResponseWriter, r *http.Request)
	GetMyDashboard(w http.ResponseWriter, r *http.Request)
}

type dashboardHandlerImpl struct {
	dashboardService         dashboard.DashboardService
	employeeDashboardService employee_dashboard.EmployeeDashboardService
}

func NewDashboardHandler(
	dashboardService dashboard.DashboardService,
	employeeDashboardService employee_dashboard.EmployeeDashboardService,
) DashboardHandler {
	return &dashboardHandlerImpl{
		dashboardService:         dashboardService,
		employeeDashboardService: employeeDashboardService,
	}
}

// GetAdminDashboard implements DashboardHandler.
func (h *dashboardHandlerImpl) GetAdminDashboard(w http.ResponseWriter, r *http.Request) {
	a, ok := actor(w, r)
	if !ok {
		return
	}

	result, err := h.dashboardService.GetDashboard(r.Context(), a)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

// GetMyDashboard implements DashboardHandler.
func (h *dashboardHandlerImpl) GetMyDashboard(w http.ResponseWriter, r *http.Request) {
	a, ok := actor(w, r)
	if !ok {
		return
	}

	result, err := h.employeeDashboardService.GetMyDashboard(r.Context(), a)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}
