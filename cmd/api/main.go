package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/cmlabs-hris/teamhub-backend-go/internal/config"
	"github.com/cmlabs-hris/teamhub-backend-go/internal/domain/attendance"
	"github.com/cmlabs-hris/teamhub-backend-go/internal/domain/department"
	"github.com/cmlabs-hris/teamhub-backend-go/internal/domain/employee"
	"github.com/cmlabs-hris/teamhub-backend-go/internal/domain/leave"
	"github.com/cmlabs-hris/teamhub-backend-go/internal/fixtures"
	appHTTP "github.com/cmlabs-hris/teamhub-backend-go/internal/handler/http"
	"github.com/cmlabs-hris/teamhub-backend-go/internal/pkg/cron"
	"github.com/cmlabs-hris/teamhub-backend-go/internal/pkg/database"
	"github.com/cmlabs-hris/teamhub-backend-go/internal/pkg/jwt"
	"github.com/cmlabs-hris/teamhub-backend-go/internal/pkg/sse"
	"github.com/cmlabs-hris/teamhub-backend-go/internal/repository/memory"
	"github.com/cmlabs-hris/teamhub-backend-go/internal/repository/postgresql"
	attendanceService "github.com/cmlabs-hris/teamhub-backend-go/internal/service/attendance"
	dashboardService "github.com/cmlabs-hris/teamhub-backend-go/internal/service/dashboard"
	departmentService "github.com/cmlabs-hris/teamhub-backend-go/internal/service/department"
	employeeService "github.com/cmlabs-hris/teamhub-backend-go/internal/service/employee"
	leaveService "github.com/cmlabs-hris/teamhub-backend-go/internal/service/leave"
	reportService "github.com/cmlabs-hris/teamhub-backend-go/internal/service/report"
)

const version = "v1.0.0"

type repositories struct {
	department department.DepartmentRepository
	employee   employee.EmployeeRepository
	attendance attendance.AttendanceRepository
	leave      leave.LeaveRequestRepository
	close      func()
}

func openRepositories(ctx context.Context, cfg *config.Config) (*repositories, error) {
	switch cfg.Database.Driver {
	case config.StorePostgres:
		dsn := cfg.DatabaseURL()
		if err := database.RunMigrations(dsn); err != nil {
			return nil, err
		}
		db, err := database.NewPostgreSQLDB(ctx, dsn, database.PoolConfig{})
		if err != nil {
			return nil, fmt.Errorf("failed to connect to database: %w", err)
		}
		return &repositories{
			department: postgresql.NewDepartmentRepository(db),
			employee:   postgresql.NewEmployeeRepository(db),
			attendance: postgresql.NewAttendanceRepository(db),
			leave:      postgresql.NewLeaveRequestRepository(db),
			close:      db.Close,
		}, nil

	default:
		store := memory.NewStore()
		repos := &repositories{
			department: memory.NewDepartmentRepository(store),
			employee:   memory.NewEmployeeRepository(store),
			attendance: memory.NewAttendanceRepository(store),
			leave:      memory.NewLeaveRequestRepository(store),
			close:      func() {},
		}
		ids, err := fixtures.Seed(ctx, repos.department, repos.employee, repos.leave)
		if err != nil {
			return nil, fmt.Errorf("failed to seed demo data: %w", err)
		}
		slog.Info("Memory store seeded", "departments", len(ids.DepartmentIDs), "employees", len(ids.EmployeeIDs), "leave_requests", len(ids.LeaveIDs))
		return repos, nil
	}
}

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Error loading config:", err)
		os.Exit(1)
	}

	level, _ := cfg.SlogLevel()
	slog.SetDefault(slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: level})).With(
		slog.String("app", "teamhub"),
		slog.String("env", cfg.App.Env),
	))

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	repos, err := openRepositories(ctx, cfg)
	if err != nil {
		slog.Error("Failed to open record store", "driver", cfg.Database.Driver, "error", err)
		os.Exit(1)
	}
	defer repos.close()

	lateness, err := attendance.NewLatenessPolicy(cfg.Attendance.LateCutoff)
	if err != nil {
		slog.Error("Invalid ATTENDANCE_LATE_CUTOFF", "error", err)
		os.Exit(1)
	}

	JWTService := jwt.NewJWTService(cfg.JWT.Secret, cfg.JWT.AccessExpiration)
	hub := sse.NewHub()

	attendanceSvc := attendanceService.NewAttendanceService(repos.attendance, repos.employee, attendanceService.Options{
		Location: cfg.Location(),
		Lateness: &lateness,
	})
	employeeSvc := employeeService.NewEmployeeService(repos.employee, repos.department)
	departmentSvc := departmentService.NewDepartmentService(repos.department, repos.employee)
	leaveSvc := leaveService.NewLeaveService(repos.leave, repos.employee, cfg.Leave.DefaultApprover)
	dashboardSvc := dashboardService.NewDashboardService(repos.employee, repos.leave, attendanceSvc)
	reportSvc := reportService.NewReportService(attendanceSvc)

	router := appHTTP.NewRouter(
		JWTService,
		appHTTP.NewEmployeeHandler(employeeSvc, hub),
		appHTTP.NewDepartmentHandler(departmentSvc, hub),
		appHTTP.NewAttendanceHandler(attendanceSvc, hub),
		appHTTP.NewReportHandler(reportSvc),
		appHTTP.NewLeaveHandler(leaveSvc, hub),
		appHTTP.NewDashboardHandler(dashboardSvc),
		appHTTP.NewEventsHandler(hub, JWTService),
		appHTTP.RouterConfig{
			Env:            cfg.App.Env,
			Version:        version,
			AllowedOrigins: cfg.App.AllowedOrigins,
			LogLevel:       level,
		},
	)

	if cfg.App.CronEnabled {
		scheduler := cron.NewScheduler()
		cron.NewAttendanceJobs(attendanceSvc).RegisterJobs(scheduler)
		scheduler.Start(ctx)
		defer scheduler.Stop()
	}

	server := &http.Server{
		Addr:              fmt.Sprintf(":%d", cfg.App.Port),
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
		// Request contexts end with the process so open event streams let Shutdown finish.
		BaseContext: func(net.Listener) context.Context { return ctx },
	}

	go func() {
		slog.Info("Server running", "addr", "http://localhost"+server.Addr, "store", cfg.Database.Driver, "late_cutoff", lateness.Cutoff())
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			slog.Error("Server error", "error", err)
			stop()
		}
	}()

	<-ctx.Done()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		slog.Error("Server shutdown failed", "error", err)
	}
	slog.Info("Server stopped")
}
