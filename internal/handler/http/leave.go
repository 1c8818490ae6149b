package http

import (
	"net/http"

	"github.com/cmlabs-hris/teamhub-backend-go/internal/domain/leave"
	"github.com/cmlabs-hris/teamhub-backend-go/internal/handler/http/response"
	"github.com/cmlabs-hris/teamhub-backend-go/internal/pkg/sse"
)

type LeaveHandler interface {
	ListRequests(w http.ResponseWriter, r *http.Request)
	ListPending(w http.ResponseWriter, r *http.Request)
	ListEmployeeRequests(w http.ResponseWriter, r *http.Request)
	GetRequest(w http.ResponseWriter, r *http.Request)
	CreateRequest(w http.ResponseWriter, r *http.Request)
	ApproveRequest(w http.ResponseWriter, r *http.Request)
	RejectRequest(w http.ResponseWriter, r *http.Request)
}

type LeaveHandlerImpl struct {
	leaveService leave.LeaveService
	events       *sse.Hub
}

func NewLeaveHandler(leaveService leave.LeaveService, events *sse.Hub) LeaveHandler {
	return &LeaveHandlerImpl{
		leaveService: leaveService,
		events:       events,
	}
}

// ListRequests implements LeaveHandler. Query: search, status, type.
func (h *LeaveHandlerImpl) ListRequests(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	filter := leave.LeaveRequestFilter{
		Search: q.Get("search"),
		Status: q.Get("status"),
		Type:   q.Get("type"),
	}

	result, err := h.leaveService.ListLeaveRequests(r.Context(), filter)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

// ListPending implements LeaveHandler.
func (h *LeaveHandlerImpl) ListPending(w http.ResponseWriter, r *http.Request) {
	result, err := h.leaveService.GetPendingRequests(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

// ListEmployeeRequests implements LeaveHandler. Serves /employees/{id}/leave-requests.
func (h *LeaveHandlerImpl) ListEmployeeRequests(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r, "Employee")
	if !ok {
		return
	}

	result, err := h.leaveService.GetEmployeeRequests(r.Context(), id)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

// GetRequest implements LeaveHandler.
func (h *LeaveHandlerImpl) GetRequest(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r, "Leave request")
	if !ok {
		return
	}

	result, err := h.leaveService.GetLeaveRequest(r.Context(), id)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

// CreateRequest implements LeaveHandler.
func (h *LeaveHandlerImpl) CreateRequest(w http.ResponseWriter, r *http.Request) {
	var req leave.CreateLeaveRequestRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	result, err := h.leaveService.CreateLeaveRequest(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	publish(h.events, sse.TopicLeave, "created", result.ID)
	response.Created(w, "Leave request submitted", result)
}

// ApproveRequest implements LeaveHandler.
func (h *LeaveHandlerImpl) ApproveRequest(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r, "Leave request")
	if !ok {
		return
	}

	result, err := h.leaveService.Approve(r.Context(), id)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	publish(h.events, sse.TopicLeave, "approved", result.ID)
	response.SuccessWithMessage(w, "Leave request approved", result)
}

// RejectRequest implements LeaveHandler.
func (h *LeaveHandlerImpl) RejectRequest(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r, "Leave request")
	if !ok {
		return
	}

	result, err := h.leaveService.Reject(r.Context(), id)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	publish(h.events, sse.TopicLeave, "rejected", result.ID)
	response.SuccessWithMessage(w, "Leave request rejected", result)
}
