package http

import (
	"net/http"

	"github.com/cmlabs-hris/teamhub-backend-go/internal/domain/attendance"
	"github.com/cmlabs-hris/teamhub-backend-go/internal/handler/http/response"
	"github.com/cmlabs-hris/teamhub-backend-go/internal/pkg/sse"
)

type AttendanceHandler interface {
	List(w http.ResponseWriter, r *http.Request)
	CheckIn(w http.ResponseWriter, r *http.Request)
	CheckOut(w http.ResponseWriter, r *http.Request)
	EmployeeHistory(w http.ResponseWriter, r *http.Request)
}

type attendanceHandlerImpl struct {
	attendanceService attendance.AttendanceService
	events            *sse.Hub
}

func NewAttendanceHandler(attendanceService attendance.AttendanceService, events *sse.Hub) AttendanceHandler {
	return &attendanceHandlerImpl{
		attendanceService: attendanceService,
		events:            events,
	}
}

// List implements AttendanceHandler. Query: date, search, status.
func (h *attendanceHandlerImpl) List(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	filter := attendance.AttendanceFilter{
		Date:   q.Get("date"),
		Search: q.Get("search"),
		Status: q.Get("status"),
	}

	result, err := h.attendanceService.ListAttendance(r.Context(), filter)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

// CheckIn implements AttendanceHandler.
func (h *attendanceHandlerImpl) CheckIn(w http.ResponseWriter, r *http.Request) {
	var req attendance.CheckInRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	result, err := h.attendanceService.CheckIn(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	publish(h.events, sse.TopicAttendance, "check_in", result.ID)
	response.SuccessWithMessage(w, "Checked in successfully", result)
}

// CheckOut implements AttendanceHandler.
func (h *attendanceHandlerImpl) CheckOut(w http.ResponseWriter, r *http.Request) {
	var req attendance.CheckOutRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	result, err := h.attendanceService.CheckOut(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	publish(h.events, sse.TopicAttendance, "check_out", result.ID)
	response.SuccessWithMessage(w, "Checked out successfully", result)
}

// EmployeeHistory implements AttendanceHandler. Serves /employees/{id}/attendance?limit=.
func (h *attendanceHandlerImpl) EmployeeHistory(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r, "Employee")
	if !ok {
		return
	}

	result, err := h.attendanceService.GetEmployeeHistory(r.Context(), id, queryInt(r, "limit"))
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}
