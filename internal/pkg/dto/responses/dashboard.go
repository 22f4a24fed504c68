package responses

import "lunysse-service/internal/app/models"

type DashboardSummary struct {
	TotalPatients         int                     `json:"totalPatients"`
	PendingRequests       int                     `json:"pendingRequests"`
	CompletedSessions     int                     `json:"completedSessions"`
	AttendanceRate        int                     `json:"attendanceRate"`
	IsNewPsychologist     bool                    `json:"isNewPsychologist"`
	TodayAppointments     []models.Appointment    `json:"todayAppointments"`
	UpcomingAppointments  []models.Appointment    `json:"upcomingAppointments"`
	RecentPendingRequests []models.SessionRequest `json:"recentPendingRequests"`
}
