package department

import (
	"context"
	"fmt"
	"log/slog"
	"math"

	"github.com/cmlabs-hris/teamhub-backend-go/internal/domain/department"
	"github.com/cmlabs-hris/teamhub-backend-go/internal/domain/employee"
	"github.com/cmlabs-hris/teamhub-backend-go/internal/pkg/filter"
	"golang.org/x/sync/errgroup"
)

type DepartmentServiceImpl struct {
	departmentRepo department.DepartmentRepository
	employeeRepo   employee.EmployeeRepository
}

func NewDepartmentService(departmentRepo department.DepartmentRepository, employeeRepo employee.EmployeeRepository) department.DepartmentService {
	return &DepartmentServiceImpl{
		departmentRepo: departmentRepo,
		employeeRepo:   employeeRepo,
	}
}

// roster loads departments and employees concurrently and fills in each
// department's count of active employees.
func (s *DepartmentServiceImpl) roster(ctx context.Context) ([]department.Department, []employee.Employee, error) {
	var (
		departments []department.Department
		employees   []employee.Employee
	)

	g, gCtx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		departments, err = s.departmentRepo.GetAll(gCtx)
		if err != nil {
			return fmt.Errorf("failed to load departments: %w", err)
		}
		return nil
	})
	g.Go(func() error {
		var err error
		employees, err = s.employeeRepo.GetAll(gCtx)
		if err != nil {
			return fmt.Errorf("failed to load employees: %w", err)
		}
		return nil
	})
	if err := g.Wait(); err != nil {
		return nil, nil, err
	}

	active := employee.Active(employees)
	return withCounts(departments, active), active, nil
}

// withCounts overwrites EmployeeCount from the active employee list.
func withCounts(departments []department.Department, active []employee.Employee) []department.Department {
	counts := make(map[string]int, len(departments))
	for _, e := range active {
		counts[e.Department]++
	}
	out := make([]department.Department, len(departments))
	for i, d := range departments {
		d.EmployeeCount = counts[d.Name]
		out[i] = d
	}
	return out
}

// largest is argmax over EmployeeCount; ties go to the first in list order.
func largest(departments []department.Department) *department.Department {
	if len(departments) == 0 {
		return nil
	}
	best := departments[0]
	for _, d := range departments[1:] {
		if d.EmployeeCount > best.EmployeeCount {
			best = d
		}
	}
	return &best
}

func toResponses(departments []department.Department) []department.DepartmentResponse {
	out := make([]department.DepartmentResponse, 0, len(departments))
	for _, d := range departments {
		out = append(out, department.NewDepartmentResponse(d))
	}
	return out
}

// ListDepartments implements department.DepartmentService.
func (s *DepartmentServiceImpl) ListDepartments(ctx context.Context) ([]department.DepartmentResponse, error) {
	departments, _, err := s.roster(ctx)
	if err != nil {
		return nil, err
	}
	return toResponses(departments), nil
}

// LargestDepartment implements department.DepartmentService.
func (s *DepartmentServiceImpl) LargestDepartment(ctx context.Context) (*department.DepartmentResponse, error) {
	departments, _, err := s.roster(ctx)
	if err != nil {
		return nil, err
	}
	best := largest(departments)
	if best == nil {
		return nil, nil
	}
	resp := department.NewDepartmentResponse(*best)
	return &resp, nil
}

// SearchDepartments implements department.DepartmentService.
func (s *DepartmentServiceImpl) SearchDepartments(ctx context.Context, f department.DepartmentFilter) ([]department.DepartmentResponse, error) {
	departments, _, err := s.roster(ctx)
	if err != nil {
		return nil, err
	}
	matched := filter.Apply(departments, filter.Contains(f.Search,
		func(d department.Department) string { return d.Name },
		func(d department.Department) string { return d.Head },
	))
	return toResponses(matched), nil
}

// Summary implements department.DepartmentService.
func (s *DepartmentServiceImpl) Summary(ctx context.Context) (department.SummaryResponse, error) {
	departments, active, err := s.roster(ctx)
	if err != nil {
		return department.SummaryResponse{}, err
	}

	summary := department.SummaryResponse{
		TotalDepartments: len(departments),
		TotalEmployees:   len(active),
	}
	if len(departments) > 0 {
		summary.AverageTeamSize = int(math.Round(float64(len(active)) / float64(len(departments))))
	}
	if best := largest(departments); best != nil {
		resp := department.NewDepartmentResponse(*best)
		summary.Largest = &resp
	}
	return summary, nil
}

// GetDepartment implements department.DepartmentService.
func (s *DepartmentServiceImpl) GetDepartment(ctx context.Context, id int64) (department.DepartmentResponse, error) {
	d, err := s.departmentRepo.GetByID(ctx, id)
	if err != nil {
		return department.DepartmentResponse{}, fmt.Errorf("failed to get department: %w", err)
	}
	return s.withCount(ctx, d)
}

// CreateDepartment implements department.DepartmentService.
func (s *DepartmentServiceImpl) CreateDepartment(ctx context.Context, req department.CreateDepartmentRequest) (department.DepartmentResponse, error) {
	if err := req.Validate(); err != nil {
		return department.DepartmentResponse{}, err
	}

	created, err := s.departmentRepo.Create(ctx, req.ToEntity())
	if err != nil {
		return department.DepartmentResponse{}, fmt.Errorf("failed to create department: %w", err)
	}

	slog.Info("Department created", "department_id", created.ID, "name", created.Name)
	return s.withCount(ctx, created)
}

// UpdateDepartment implements department.DepartmentService. Renaming does
// not move employees; they keep the old department name.
func (s *DepartmentServiceImpl) UpdateDepartment(ctx context.Context, req department.UpdateDepartmentRequest) (department.DepartmentResponse, error) {
	if err := req.Validate(); err != nil {
		return department.DepartmentResponse{}, err
	}

	updated, err := s.departmentRepo.Update(ctx, req.ID, req.ToPatch())
	if err != nil {
		return department.DepartmentResponse{}, fmt.Errorf("failed to update department: %w", err)
	}
	return s.withCount(ctx, updated)
}

// DeleteDepartment implements department.DepartmentService.
func (s *DepartmentServiceImpl) DeleteDepartment(ctx context.Context, id int64) error {
	if err := s.departmentRepo.Delete(ctx, id); err != nil {
		return fmt.Errorf("failed to delete department: %w", err)
	}
	slog.Info("Department deleted", "department_id", id)
	return nil
}

func (s *DepartmentServiceImpl) withCount(ctx context.Context, d department.Department) (department.DepartmentResponse, error) {
	members, err := s.employeeRepo.GetByDepartment(ctx, d.Name)
	if err != nil {
		return department.DepartmentResponse{}, fmt.Errorf("failed to load department members: %w", err)
	}
	d.EmployeeCount = len(employee.Active(members))
	return department.NewDepartmentResponse(d), nil
}
