package dto

// DashboardOverviewResponse aggregates headline counts for the admin dashboard
type DashboardOverviewResponse struct {
	TotalDonors    int64 `json:"total_donors"`
	EligibleDonors int64 `json:"eligible_donors"`
	ActiveAlerts   int64 `json:"active_alerts"`
	UpcomingCamps  int64 `json:"upcoming_camps"`
	UpcomingEvents int64 `json:"upcoming_events"`
}
