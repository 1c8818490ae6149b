package department

import (
	"strings"

	"github.com/cmlabs-hris/teamhub-backend-go/internal/pkg/validator"
)

type CreateDepartmentRequest struct {
	Name string `json:"name"`
	Head string `json:"head"`
}

func (r *CreateDepartmentRequest) Validate() error {
	var errs validator.ValidationErrors
	if validator.IsEmpty(r.Name) {
		errs.Add("name", "name is required")
	}
	if validator.IsEmpty(r.Head) {
		errs.Add("head", "head is required")
	}
	return errs.Err()
}

func (r *CreateDepartmentRequest) ToEntity() Department {
	return Department{
		Name: strings.TrimSpace(r.Name),
		Head: strings.TrimSpace(r.Head),
	}
}

type UpdateDepartmentRequest struct {
	ID   int64   `json:"-"`
	Name *string `json:"name,omitempty"`
	Head *string `json:"head,omitempty"`
}

func (r *UpdateDepartmentRequest) Validate() error {
	var errs validator.ValidationErrors
	if r.ID <= 0 {
		errs.Add("id", "id must be a positive integer")
	}
	if r.Name != nil && validator.IsEmpty(*r.Name) {
		errs.Add("name", "name cannot be empty")
	}
	if r.Head != nil && validator.IsEmpty(*r.Head) {
		errs.Add("head", "head cannot be empty")
	}
	return errs.Err()
}

func (r *UpdateDepartmentRequest) ToPatch() Patch {
	var patch Patch
	if r.Name != nil {
		name := strings.TrimSpace(*r.Name)
		patch.Name = &name
	}
	if r.Head != nil {
		head := strings.TrimSpace(*r.Head)
		patch.Head = &head
	}
	return patch
}

// DepartmentFilter matches the search box: name or head, case-insensitive.
type DepartmentFilter struct {
	Search string `json:"search,omitempty"`
}

type DepartmentResponse struct {
	ID            int64  `json:"id"`
	Name          string `json:"name"`
	Head          string `json:"head"`
	EmployeeCount int    `json:"employee_count"`
	CreatedAt     string `json:"created_at"`
	UpdatedAt     string `json:"updated_at"`
}

func NewDepartmentResponse(d Department) DepartmentResponse {
	return DepartmentResponse{
		ID:            d.ID,
		Name:          d.Name,
		Head:          d.Head,
		EmployeeCount: d.EmployeeCount,
		CreatedAt:     d.CreatedAt.Format("2006-01-02 15:04:05"),
		UpdatedAt:     d.UpdatedAt.Format("2006-01-02 15:04:05"),
	}
}

type SummaryResponse struct {
	TotalDepartments int                 `json:"total_departments"`
	TotalEmployees   int                 `json:"total_employees"`
	AverageTeamSize  int                 `json:"average_team_size"`
	Largest          *DepartmentResponse `json:"largest,omitempty"`
}
