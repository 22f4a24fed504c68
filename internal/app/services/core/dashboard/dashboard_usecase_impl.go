package dashboard

import (
	"context"
	"lunysse-service/internal/app/config"
	"lunysse-service/internal/app/contracts"
	"lunysse-service/internal/app/models"
	"lunysse-service/internal/pkg/constvars"
	"lunysse-service/internal/pkg/dto/responses"
	"lunysse-service/internal/pkg/exceptions"
	"math"
	"sort"
	"time"
)

const recentPendingLimit = 3

type dashboardUsecase struct {
	DataClient contracts.SchedulingDataClient
	Location   *time.Location
	now        func() time.Time
}

func NewDashboardUsecase(dataClient contracts.SchedulingDataClient, internalConfig *config.InternalConfig) contracts.DashboardUsecase {
	loc, err := time.LoadLocation(internalConfig.App.Timezone)
	if err != nil {
		loc = time.UTC
	}
	return &dashboardUsecase{
		DataClient: dataClient,
		Location:   loc,
		now:        time.Now,
	}
}

func (uc *dashboardUsecase) GetSummary(ctx context.Context, session models.Session) (*responses.DashboardSummary, error) {
	patients, err := uc.DataClient.GetPatients(ctx, session.PsychologistID)
	if err != nil {
		return nil, exceptions.ErrDataClientFetch(err, "patients")
	}
	appointments, err := uc.DataClient.GetAppointments(ctx, session.PsychologistID)
	if err != nil {
		return nil, exceptions.ErrDataClientFetch(err, "appointments")
	}
	requests, err := uc.DataClient.GetRequests(ctx, session.PsychologistID)
	if err != nil {
		return nil, exceptions.ErrDataClientFetch(err, "session requests")
	}

	summary := &responses.DashboardSummary{
		TotalPatients:         len(patients),
		IsNewPsychologist:     len(patients) == 0 && len(appointments) == 0,
		TodayAppointments:     []models.Appointment{},
		UpcomingAppointments:  []models.Appointment{},
		RecentPendingRequests: []models.SessionRequest{},
	}

	for _, request := range requests {
		if !request.IsPending() {
			continue
		}
		summary.PendingRequests++
		if len(summary.RecentPendingRequests) < recentPendingLimit {
			summary.RecentPendingRequests = append(summary.RecentPendingRequests, request)
		}
	}

	now := uc.now().In(uc.Location)
	today := now.Format(constvars.AppointmentDateLayout)

	type upcoming struct {
		appointment models.Appointment
		start       time.Time
	}
	var next []upcoming

	for _, appointment := range appointments {
		switch appointment.Status {
		case constvars.AppointmentStatusCompleted:
			summary.CompletedSessions++
		case constvars.AppointmentStatusScheduled:
			if appointment.Date == today {
				summary.TodayAppointments = append(summary.TodayAppointments, appointment)
			}
			if start, ok := appointment.StartsAt(uc.Location); ok && !start.Before(now) {
				next = append(next, upcoming{appointment: appointment, start: start})
			}
		}
	}

	summary.AttendanceRate = AttendanceRate(summary.CompletedSessions, len(appointments))

	sort.SliceStable(next, func(i, j int) bool { return next[i].start.Before(next[j].start) })
	for i := 0; i < len(next) && i < constvars.DashboardUpcomingLimit; i++ {
		summary.UpcomingAppointments = append(summary.UpcomingAppointments, next[i].appointment)
	}

	return summary, nil
}

// AttendanceRate is the rounded percentage of completed over all
// appointments, 0 when there are none.
func AttendanceRate(completed, total int) int {
	if total == 0 {
		return 0
	}
	return int(math.Round(float64(completed) / float64(total) * 100))
}
