package employee

import (
	"context"
	"testing"

	"github.com/cmlabs-hris/teamhub-backend-go/internal/domain/department"
	"github.com/cmlabs-hris/teamhub-backend-go/internal/domain/employee"
	"github.com/cmlabs-hris/teamhub-backend-go/internal/pkg/validator"
	"github.com/cmlabs-hris/teamhub-backend-go/internal/repository/memory"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fixture struct {
	svc          employee.EmployeeService
	employeeRepo employee.EmployeeRepository
}

func newFixture(t *testing.T) fixture {
	t.Helper()
	ctx := context.Background()
	store := memory.NewStore()
	departmentRepo := memory.NewDepartmentRepository(store)
	employeeRepo := memory.NewEmployeeRepository(store)

	for _, name := range []string{"Engineering", "Sales"} {
		_, err := departmentRepo.Create(ctx, department.Department{Name: name, Head: "Head of " + name})
		require.NoError(t, err)
	}

	return fixture{
		svc:          NewEmployeeService(employeeRepo, departmentRepo),
		employeeRepo: employeeRepo,
	}
}

func validRequest(name, dept string) employee.CreateEmployeeRequest {
	return employee.CreateEmployeeRequest{
		Name:       name,
		Email:      "someone@example.com",
		Phone:      "+1 555 123 4567",
		Role:       "Engineer",
		Department: dept,
		JoinDate:   "2024-01-15",
	}
}

func strPtr(s string) *string { return &s }

func TestCreateEmployee_DefaultsToActive(t *testing.T) {
	f := newFixture(t)

	got, err := f.svc.CreateEmployee(context.Background(), validRequest("Ana Lopez", "Sales"))
	require.NoError(t, err)

	assert.Equal(t, int64(1), got.ID)
	assert.Equal(t, "active", got.Status)
	assert.Equal(t, "2024-01-15", got.JoinDate)
}

func TestCreateEmployee_ReportsAllFailingFields(t *testing.T) {
	f := newFixture(t)

	_, err := f.svc.CreateEmployee(context.Background(), employee.CreateEmployeeRequest{
		Email:    "not-an-email",
		Phone:    "12",
		JoinDate: "15/01/2024",
	})

	var verrs validator.ValidationErrors
	require.ErrorAs(t, err, &verrs)
	fields := verrs.ToMap()
	for _, field := range []string{"name", "email", "phone", "role", "department", "join_date"} {
		assert.Contains(t, fields, field)
	}
}

func TestCreateEmployee_UnknownDepartment(t *testing.T) {
	f := newFixture(t)

	_, err := f.svc.CreateEmployee(context.Background(), validRequest("Ana", "Legal"))

	var verrs validator.ValidationErrors
	require.ErrorAs(t, err, &verrs)
	assert.Contains(t, verrs.ToMap(), "department")
}

func TestUpdateEmployee_Partial(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	created, err := f.svc.CreateEmployee(ctx, validRequest("Ana", "Sales"))
	require.NoError(t, err)

	updated, err := f.svc.UpdateEmployee(ctx, employee.UpdateEmployeeRequest{ID: created.ID, Role: strPtr("Team Lead")})
	require.NoError(t, err)
	assert.Equal(t, "Team Lead", updated.Role)
	assert.Equal(t, "Ana", updated.Name)

	_, err = f.svc.UpdateEmployee(ctx, employee.UpdateEmployeeRequest{ID: 99, Role: strPtr("X")})
	assert.ErrorIs(t, err, employee.ErrEmployeeNotFound)
}

func TestArchiveEmployee(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	created, err := f.svc.CreateEmployee(ctx, validRequest("Ana", "Sales"))
	require.NoError(t, err)

	archived, err := f.svc.ArchiveEmployee(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, "archived", archived.Status)

	_, err = f.svc.ArchiveEmployee(ctx, created.ID)
	assert.ErrorIs(t, err, employee.ErrEmployeeAlreadyArchived)

	_, err = f.svc.ArchiveEmployee(ctx, 404)
	assert.ErrorIs(t, err, employee.ErrEmployeeNotFound)
}

func TestListEmployees_ConjunctiveFilters(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	for _, c := range []struct{ name, dept string }{
		{"Ana Lopez", "Sales"},
		{"Daniel Kim", "Engineering"},
		{"Grace Hopper", "Engineering"},
		{"Hannah Arendt", "Engineering"},
	} {
		_, err := f.svc.CreateEmployee(ctx, validRequest(c.name, c.dept))
		require.NoError(t, err)
	}

	got, err := f.svc.ListEmployees(ctx, employee.EmployeeFilter{Search: "an", Department: "Engineering"})
	require.NoError(t, err)

	names := make([]string, 0, len(got.Employees))
	for _, e := range got.Employees {
		names = append(names, e.Name)
	}
	assert.Equal(t, []string{"Daniel Kim", "Hannah Arendt"}, names)
	assert.Equal(t, 2, got.Total)
	assert.Equal(t, 4, got.ActiveCount)
}

func TestListEmployees_NoFiltersKeepsOrderAndCountsStatuses(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	for _, name := range []string{"C", "A", "B"} {
		_, err := f.svc.CreateEmployee(ctx, validRequest(name, "Sales"))
		require.NoError(t, err)
	}
	_, err := f.svc.ArchiveEmployee(ctx, 2)
	require.NoError(t, err)

	got, err := f.svc.ListEmployees(ctx, employee.EmployeeFilter{})
	require.NoError(t, err)
	require.Len(t, got.Employees, 3)
	assert.Equal(t, "C", got.Employees[0].Name)
	assert.Equal(t, "A", got.Employees[1].Name)
	assert.Equal(t, "B", got.Employees[2].Name)
	assert.Equal(t, 2, got.ActiveCount)
	assert.Equal(t, 1, got.ArchivedCount)

	archivedOnly, err := f.svc.ListEmployees(ctx, employee.EmployeeFilter{Status: "archived"})
	require.NoError(t, err)
	require.Len(t, archivedOnly.Employees, 1)
	assert.Equal(t, "A", archivedOnly.Employees[0].Name)
}

func TestListEmployees_InvalidStatusFilter(t *testing.T) {
	f := newFixture(t)

	_, err := f.svc.ListEmployees(context.Background(), employee.EmployeeFilter{Status: "gone"})
	var verrs validator.ValidationErrors
	assert.ErrorAs(t, err, &verrs)
}
