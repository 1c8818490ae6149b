package fixtures

import (
	"context"
	"fmt"
	"time"

	"github.com/cmlabs-hris/teamhub-backend-go/internal/domain/department"
	"github.com/cmlabs-hris/teamhub-backend-go/internal/domain/employee"
	"github.com/cmlabs-hris/teamhub-backend-go/internal/domain/leave"
)

// ==========================================
// HELPER FUNCTIONS
// ==========================================

func strPtr(s string) *string { return &s }

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// ==========================================
// SEEDED DATA RESULT
// ==========================================

// SeededIDs holds the ids assigned to the demo data, keyed by name
type SeededIDs struct {
	DepartmentIDs map[string]int64 // e.g., "Engineering" -> 1
	EmployeeIDs   map[string]int64 // e.g., "Ana Lopez" -> 7
	LeaveIDs      []int64
}

func NewSeededIDs() *SeededIDs {
	return &SeededIDs{
		DepartmentIDs: make(map[string]int64),
		EmployeeIDs:   make(map[string]int64),
	}
}

// ==========================================
// DEFAULT DEPARTMENTS
// ==========================================

func GetDefaultDepartments() []department.Department {
	return []department.Department{
		{Name: "Engineering", Head: "Grace Hopper"},
		{Name: "Sales", Head: "Daniel Kim"},
		{Name: "Marketing", Head: "Priya Natarajan"},
		{Name: "Human Resources", Head: "Hannah Arendt"},
		{Name: "Finance", Head: "Marcus Webb"},
	}
}

// ==========================================
// DEFAULT EMPLOYEES
// ==========================================

func GetDefaultEmployees() []employee.Employee {
	return []employee.Employee{
		{Name: "Grace Hopper", Email: "grace.hopper@teamhub.dev", Phone: "+1 555 010 0001", Role: "Engineering Manager", Department: "Engineering", JoinDate: date(2019, time.March, 4), Status: employee.StatusActive},
		{Name: "Linus Park", Email: "linus.park@teamhub.dev", Phone: "+1 555 010 0002", Role: "Backend Engineer", Department: "Engineering", JoinDate: date(2021, time.June, 14), Status: employee.StatusActive},
		{Name: "Mei Tanaka", Email: "mei.tanaka@teamhub.dev", Phone: "+1 555 010 0003", Role: "Frontend Engineer", Department: "Engineering", JoinDate: date(2022, time.January, 10), Status: employee.StatusActive},
		{Name: "Daniel Kim", Email: "daniel.kim@teamhub.dev", Phone: "+1 555 010 0004", Role: "Sales Director", Department: "Sales", JoinDate: date(2018, time.September, 1), Status: employee.StatusActive},
		{Name: "Oscar Reyes", Email: "oscar.reyes@teamhub.dev", Phone: "+1 555 010 0005", Role: "Account Executive", Department: "Sales", JoinDate: date(2023, time.February, 20), Status: employee.StatusActive},
		{Name: "Priya Natarajan", Email: "priya.n@teamhub.dev", Phone: "+1 555 010 0006", Role: "Marketing Lead", Department: "Marketing", JoinDate: date(2020, time.August, 17), Status: employee.StatusActive},
		{Name: "Ana Lopez", Email: "ana.lopez@teamhub.dev", Phone: "+1 555 010 0007", Role: "Sales Associate", Department: "Sales", JoinDate: date(2023, time.May, 2), Status: employee.StatusActive},
		{Name: "Hannah Arendt", Email: "hannah.arendt@teamhub.dev", Phone: "+1 555 010 0008", Role: "HR Manager", Department: "Human Resources", JoinDate: date(2017, time.November, 6), Status: employee.StatusActive},
		{Name: "Marcus Webb", Email: "marcus.webb@teamhub.dev", Phone: "+1 555 010 0009", Role: "Controller", Department: "Finance", JoinDate: date(2019, time.July, 22), Status: employee.StatusActive},
		{Name: "Tomas Novak", Email: "tomas.novak@teamhub.dev", Phone: "+1 555 010 0010", Role: "Content Writer", Department: "Marketing", JoinDate: date(2021, time.April, 12), Status: employee.StatusArchived},
	}
}

// ==========================================
// DEFAULT LEAVE REQUESTS
// ==========================================

// GetDefaultLeaveRequests references employees by name; Seed resolves the ids.
func GetDefaultLeaveRequests() map[string][]leave.LeaveRequest {
	return map[string][]leave.LeaveRequest{
		"Linus Park": {
			{StartDate: date(2024, time.March, 1), EndDate: date(2024, time.March, 5), Type: leave.TypeVacation, Reason: strPtr("Family trip"), Status: leave.StatusPending},
		},
		"Oscar Reyes": {
			{StartDate: date(2024, time.January, 10), EndDate: date(2024, time.January, 10), Type: leave.TypeSick, Reason: strPtr("Flu"), Status: leave.StatusApproved, ApprovedBy: strPtr("Hannah Arendt")},
		},
		"Priya Natarajan": {
			{StartDate: date(2024, time.February, 15), EndDate: date(2024, time.February, 16), Type: leave.TypePersonal, Status: leave.StatusPending},
		},
		"Mei Tanaka": {
			{StartDate: date(2024, time.April, 8), EndDate: date(2024, time.April, 12), Type: leave.TypeVacation, Status: leave.StatusRejected, ApprovedBy: strPtr("Grace Hopper")},
		},
	}
}

// Seed writes the demo data through the repositories. Leave requests are
// inserted in a fixed employee order so ids are deterministic.
func Seed(ctx context.Context, departmentRepo department.DepartmentRepository, employeeRepo employee.EmployeeRepository, leaveRepo leave.LeaveRequestRepository) (*SeededIDs, error) {
	ids := NewSeededIDs()

	for _, d := range GetDefaultDepartments() {
		created, err := departmentRepo.Create(ctx, d)
		if err != nil {
			return nil, fmt.Errorf("seed department %q: %w", d.Name, err)
		}
		ids.DepartmentIDs[created.Name] = created.ID
	}

	employees := GetDefaultEmployees()
	for _, e := range employees {
		created, err := employeeRepo.Create(ctx, e)
		if err != nil {
			return nil, fmt.Errorf("seed employee %q: %w", e.Name, err)
		}
		ids.EmployeeIDs[created.Name] = created.ID
	}

	requests := GetDefaultLeaveRequests()
	for _, e := range employees {
		for _, req := range requests[e.Name] {
			req.EmployeeID = ids.EmployeeIDs[e.Name]
			created, err := leaveRepo.Create(ctx, req)
			if err != nil {
				return nil, fmt.Errorf("seed leave request for %q: %w", e.Name, err)
			}
			ids.LeaveIDs = append(ids.LeaveIDs, created.ID)
		}
	}

	return ids, nil
}
