package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/workpulse/hrms-backend-go/internal/domain/employee"
	"github.com/workpulse/hrms-backend-go/internal/handler/http/response"
)

// EmployeeHandler exposes the roster read-side. Records are provisioned out
// of band, so there are no write endpoints.
type EmployeeHandler interface {
	List(w http.ResponseWriter, r *http.Request)
	Get(w http.ResponseWriter, r *http.Request)
}

type employeeHandlerImpl struct {
	employeeRepo employee.EmployeeRepository
}

func NewEmployeeHandler(employeeRepo employee.EmployeeRepository) EmployeeHandler {
	return &employeeHandlerImpl{
		employeeRepo: employeeRepo,
	}
}

// List implements EmployeeHandler.
func (h *employeeHandlerImpl) List(w http.ResponseWriter, r *http.Request) {
	result, err := h.employeeRepo.List(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

// Get implements EmployeeHandler.
func (h *employeeHandlerImpl) Get(w http.ResponseWriter, r *http.Request) {
	result, err := h.employeeRepo.GetByID(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}
