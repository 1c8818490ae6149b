package http

import (
	"net/http"

	"github.com/cmlabs-hris/teamhub-backend-go/internal/domain/department"
	"github.com/cmlabs-hris/teamhub-backend-go/internal/handler/http/response"
	"github.com/cmlabs-hris/teamhub-backend-go/internal/pkg/sse"
)

type DepartmentHandler interface {
	List(w http.ResponseWriter, r *http.Request)
	Summary(w http.ResponseWriter, r *http.Request)
	Largest(w http.ResponseWriter, r *http.Request)
	Get(w http.ResponseWriter, r *http.Request)
	Create(w http.ResponseWriter, r *http.Request)
	Update(w http.ResponseWriter, r *http.Request)
	Delete(w http.ResponseWriter, r *http.Request)
}

type departmentHandlerImpl struct {
	departmentService department.DepartmentService
	events            *sse.Hub
}

func NewDepartmentHandler(departmentService department.DepartmentService, events *sse.Hub) DepartmentHandler {
	return &departmentHandlerImpl{
		departmentService: departmentService,
		events:            events,
	}
}

// List implements DepartmentHandler. ?search= narrows by name or head.
func (h *departmentHandlerImpl) List(w http.ResponseWriter, r *http.Request) {
	var (
		result []department.DepartmentResponse
		err    error
	)
	if search := r.URL.Query().Get("search"); search != "" {
		result, err = h.departmentService.SearchDepartments(r.Context(), department.DepartmentFilter{Search: search})
	} else {
		result, err = h.departmentService.ListDepartments(r.Context())
	}
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

// Summary implements DepartmentHandler
func (h *departmentHandlerImpl) Summary(w http.ResponseWriter, r *http.Request) {
	result, err := h.departmentService.Summary(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

// Largest implements DepartmentHandler. Responds with null data when no department exists.
func (h *departmentHandlerImpl) Largest(w http.ResponseWriter, r *http.Request) {
	result, err := h.departmentService.LargestDepartment(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

// Get implements DepartmentHandler
func (h *departmentHandlerImpl) Get(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r, "Department")
	if !ok {
		return
	}

	result, err := h.departmentService.GetDepartment(r.Context(), id)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

// Create implements DepartmentHandler
func (h *departmentHandlerImpl) Create(w http.ResponseWriter, r *http.Request) {
	var req department.CreateDepartmentRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	result, err := h.departmentService.CreateDepartment(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	publish(h.events, sse.TopicDepartment, "created", result.ID)
	response.Created(w, "Department created successfully", result)
}

// Update implements DepartmentHandler
func (h *departmentHandlerImpl) Update(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r, "Department")
	if !ok {
		return
	}

	var req department.UpdateDepartmentRequest
	if !decodeJSON(w, r, &req) {
		return
	}
	req.ID = id

	result, err := h.departmentService.UpdateDepartment(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	publish(h.events, sse.TopicDepartment, "updated", result.ID)
	response.SuccessWithMessage(w, "Department updated successfully", result)
}

// Delete implements DepartmentHandler
func (h *departmentHandlerImpl) Delete(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r, "Department")
	if !ok {
		return
	}

	if err := h.departmentService.DeleteDepartment(r.Context(), id); err != nil {
		response.HandleError(w, err)
		return
	}

	publish(h.events, sse.TopicDepartment, "deleted", id)
	response.SuccessWithMessage(w, "Department deleted successfully", nil)
}
