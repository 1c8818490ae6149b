package http

import (
	"net/http"

	"github.com/cmlabs-hris/teamhub-backend-go/internal/domain/employee"
	"github.com/cmlabs-hris/teamhub-backend-go/internal/handler/http/response"
	"github.com/cmlabs-hris/teamhub-backend-go/internal/pkg/sse"
)

type EmployeeHandler interface {
	ListEmployees(w http.ResponseWriter, r *http.Request)
	GetEmployee(w http.ResponseWriter, r *http.Request)
	CreateEmployee(w http.ResponseWriter, r *http.Request)
	UpdateEmployee(w http.ResponseWriter, r *http.Request)
	ArchiveEmployee(w http.ResponseWriter, r *http.Request)
}

type employeeHandlerImpl struct {
	employeeService employee.EmployeeService
	events          *sse.Hub
}

func NewEmployeeHandler(employeeService employee.EmployeeService, events *sse.Hub) EmployeeHandler {
	return &employeeHandlerImpl{
		employeeService: employeeService,
		events:          events,
	}
}

// ListEmployees implements EmployeeHandler
func (h *employeeHandlerImpl) ListEmployees(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	filter := employee.EmployeeFilter{
		Search:     q.Get("search"),
		Department: q.Get("department"),
		Status:     q.Get("status"),
	}

	result, err := h.employeeService.ListEmployees(r.Context(), filter)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

// GetEmployee implements EmployeeHandler
func (h *employeeHandlerImpl) GetEmployee(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r, "Employee")
	if !ok {
		return
	}

	result, err := h.employeeService.GetEmployee(r.Context(), id)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

// CreateEmployee implements EmployeeHandler
func (h *employeeHandlerImpl) CreateEmployee(w http.ResponseWriter, r *http.Request) {
	var req employee.CreateEmployeeRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	result, err := h.employeeService.CreateEmployee(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	publish(h.events, sse.TopicEmployee, "created", result.ID)
	response.Created(w, "Employee created successfully", result)
}

// UpdateEmployee implements EmployeeHandler
func (h *employeeHandlerImpl) UpdateEmployee(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r, "Employee")
	if !ok {
		return
	}

	var req employee.UpdateEmployeeRequest
	if !decodeJSON(w, r, &req) {
		return
	}
	req.ID = id

	result, err := h.employeeService.UpdateEmployee(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	publish(h.events, sse.TopicEmployee, "updated", result.ID)
	response.SuccessWithMessage(w, "Employee updated successfully", result)
}

// ArchiveEmployee implements EmployeeHandler
func (h *employeeHandlerImpl) ArchiveEmployee(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r, "Employee")
	if !ok {
		return
	}

	result, err := h.employeeService.ArchiveEmployee(r.Context(), id)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	publish(h.events, sse.TopicEmployee, "archived", result.ID)
	response.SuccessWithMessage(w, "Employee archived successfully", result)
}
