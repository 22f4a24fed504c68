package responses

import (
	"lunysse-service/internal/app/models"
	"time"
)

type RosterReport struct {
	PsychologistID string            `json:"psychologistId"`
	GeneratedAt    time.Time         `json:"generatedAt"`
	Stats          RosterReportStats `json:"stats"`
	Patients       []models.Patient  `json:"patients"`
}

type RosterReportStats struct {
	ActivePatients    int            `json:"activePatients"`
	TotalPatients     int            `json:"totalPatients"`
	TotalSessions     int            `json:"totalSessions"`
	PendingRequests   int            `json:"pendingRequests"`
	CompletedSessions int            `json:"completedSessions"`
	AttendanceRate    int            `json:"attendanceRate"`
	StatusBreakdown   map[string]int `json:"statusBreakdown"`
}

type ExportRosterReport struct {
	ObjectName   string    `json:"objectName"`
	DownloadURL  string    `json:"downloadUrl"`
	GeneratedAt  time.Time `json:"generatedAt"`
	PatientCount int       `json:"patientCount"`
}
