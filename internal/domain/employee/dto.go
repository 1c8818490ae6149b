package employee

import (
	"strings"

	"github.com/cmlabs-hris/teamhub-backend-go/internal/pkg/validator"
)

type CreateEmployeeRequest struct {
	Name       string `json:"name"`
	Email      string `json:"email"`
	Phone      string `json:"phone"`
	Role       string `json:"role"`
	Department string `json:"department"`
	JoinDate   string `json:"join_date"`
	Status     string `json:"status,omitempty"`
}

func (r *CreateEmployeeRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.Name) {
		errs.Add("name", "name is required")
	}

	if validator.IsEmpty(r.Email) {
		errs.Add("email", "email is required")
	} else if !validator.IsValidEmail(strings.TrimSpace(r.Email)) {
		errs.Add("email", "email is invalid")
	}

	if validator.IsEmpty(r.Phone) {
		errs.Add("phone", "phone is required")
	} else if !validator.IsValidPhoneNumber(r.Phone) {
		errs.Add("phone", "phone is invalid")
	}

	if validator.IsEmpty(r.Role) {
		errs.Add("role", "role is required")
	}

	if validator.IsEmpty(r.Department) {
		errs.Add("department", "department is required")
	}

	if validator.IsEmpty(r.JoinDate) {
		errs.Add("join_date", "join date is required")
	} else if _, ok := validator.IsValidDate(strings.TrimSpace(r.JoinDate)); !ok {
		errs.Add("join_date", "join date must be in YYYY-MM-DD format")
	}

	if r.Status != "" && !Status(r.Status).IsValid() {
		errs.Add("status", "status must be active or archived")
	}

	return errs.Err()
}

// ToEntity builds the employee to store. Call Validate first.
func (r *CreateEmployeeRequest) ToEntity() Employee {
	joinDate, _ := validator.ParseDate(r.JoinDate)
	status := StatusActive
	if r.Status != "" {
		status = Status(r.Status)
	}
	return Employee{
		Name:       strings.TrimSpace(r.Name),
		Email:      strings.TrimSpace(r.Email),
		Phone:      strings.TrimSpace(r.Phone),
		Role:       strings.TrimSpace(r.Role),
		Department: strings.TrimSpace(r.Department),
		JoinDate:   joinDate,
		Status:     status,
	}
}

type UpdateEmployeeRequest struct {
	ID         int64   `json:"-"`
	Name       *string `json:"name,omitempty"`
	Email      *string `json:"email,omitempty"`
	Phone      *string `json:"phone,omitempty"`
	Role       *string `json:"role,omitempty"`
	Department *string `json:"department,omitempty"`
	JoinDate   *string `json:"join_date,omitempty"`
	Status     *string `json:"status,omitempty"`
}

func (r *UpdateEmployeeRequest) Validate() error {
	var errs validator.ValidationErrors

	if r.ID <= 0 {
		errs.Add("id", "id must be a positive integer")
	}
	if r.Name != nil && validator.IsEmpty(*r.Name) {
		errs.Add("name", "name is required")
	}
	if r.Email != nil && !validator.IsValidEmail(strings.TrimSpace(*r.Email)) {
		errs.Add("email", "email is invalid")
	}
	if r.Phone != nil && !validator.IsValidPhoneNumber(*r.Phone) {
		errs.Add("phone", "phone is invalid")
	}
	if r.Role != nil && validator.IsEmpty(*r.Role) {
		errs.Add("role", "role is required")
	}
	if r.Department != nil && validator.IsEmpty(*r.Department) {
		errs.Add("department", "department is required")
	}
	if r.JoinDate != nil {
		if _, ok := validator.IsValidDate(strings.TrimSpace(*r.JoinDate)); !ok {
			errs.Add("join_date", "join date must be in YYYY-MM-DD format")
		}
	}
	if r.Status != nil && !Status(*r.Status).IsValid() {
		errs.Add("status", "status must be active or archived")
	}

	return errs.Err()
}

// ToPatch converts the request into a store patch. Call Validate first.
func (r *UpdateEmployeeRequest) ToPatch() Patch {
	var patch Patch
	patch.Name = trimmed(r.Name)
	patch.Email = trimmed(r.Email)
	patch.Phone = trimmed(r.Phone)
	patch.Role = trimmed(r.Role)
	patch.Department = trimmed(r.Department)
	if r.JoinDate != nil {
		joinDate, _ := validator.ParseDate(*r.JoinDate)
		patch.JoinDate = &joinDate
	}
	if r.Status != nil {
		status := Status(*r.Status)
		patch.Status = &status
	}
	return patch
}

func trimmed(s *string) *string {
	if s == nil {
		return nil
	}
	v := strings.TrimSpace(*s)
	return &v
}

// EmployeeFilter mirrors the directory page controls. Empty fields are inactive.
type EmployeeFilter struct {
	Search     string `json:"search,omitempty"` // name, email or role
	Department string `json:"department,omitempty"`
	Status     string `json:"status,omitempty"`
}

func (f *EmployeeFilter) Validate() error {
	var errs validator.ValidationErrors
	if f.Status != "" && !Status(f.Status).IsValid() {
		errs.Add("status", "status must be active or archived")
	}
	return errs.Err()
}

type EmployeeResponse struct {
	ID         int64  `json:"id"`
	Name       string `json:"name"`
	Email      string `json:"email"`
	Phone      string `json:"phone"`
	Role       string `json:"role"`
	Department string `json:"department"`
	JoinDate   string `json:"join_date"`
	Status     string `json:"status"`
	CreatedAt  string `json:"created_at"`
	UpdatedAt  string `json:"updated_at"`
}

func NewEmployeeResponse(e Employee) EmployeeResponse {
	return EmployeeResponse{
		ID:         e.ID,
		Name:       e.Name,
		Email:      e.Email,
		Phone:      e.Phone,
		Role:       e.Role,
		Department: e.Department,
		JoinDate:   validator.FormatDate(e.JoinDate),
		Status:     string(e.Status),
		CreatedAt:  e.CreatedAt.Format("2006-01-02 15:04:05"),
		UpdatedAt:  e.UpdatedAt.Format("2006-01-02 15:04:05"),
	}
}

type ListEmployeeResponse struct {
	Employees     []EmployeeResponse `json:"employees"`
	Total         int                `json:"total"`
	ActiveCount   int                `json:"active_count"`
	ArchivedCount int                `json:"archived_count"`
}
