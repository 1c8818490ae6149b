package dashboard

import "context"

// DashboardService defines the interface for dashboard operations
type DashboardService interface {
	// GetDashboard loads employees, today's attendance and pending leave concurrently
	GetDashboard(ctx context.Context) (*DashboardResponse, error)
}
