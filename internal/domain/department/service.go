package department

import "context"

type DepartmentService interface {
	// ListDepartments returns every department with its live active-employee count
	ListDepartments(ctx context.Context) ([]DepartmentResponse, error)

	// LargestDepartment returns the department with the most active employees, nil when there are none
	LargestDepartment(ctx context.Context) (*DepartmentResponse, error)

	SearchDepartments(ctx context.Context, filter DepartmentFilter) ([]DepartmentResponse, error)
	Summary(ctx context.Context) (SummaryResponse, error)

	GetDepartment(ctx context.Context, id int64) (DepartmentResponse, error)
	CreateDepartment(ctx context.Context, req CreateDepartmentRequest) (DepartmentResponse, error)
	UpdateDepartment(ctx context.Context, req UpdateDepartmentRequest) (DepartmentResponse, error)
	DeleteDepartment(ctx context.Context, id int64) error
}
