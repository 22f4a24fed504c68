package reports

import (
	"context"
	"fmt"
	"lunysse-service/internal/app/config"
	"lunysse-service/internal/app/contracts"
	"lunysse-service/internal/app/models"
	"lunysse-service/internal/app/services/core/dashboard"
	"lunysse-service/internal/pkg/constvars"
	"lunysse-service/internal/pkg/dto/responses"
	"lunysse-service/internal/pkg/exceptions"
	"lunysse-service/internal/pkg/utils"
	"strings"
	"time"

	"github.com/goccy/go-json"
	"go.uber.org/zap"
)

type reportUsecase struct {
	DataClient     contracts.SchedulingDataClient
	Storage        contracts.Storage
	InternalConfig *config.InternalConfig
	Log            *zap.Logger
	now            func() time.Time
}

// NewReportUsecase builds the roster exporter. storage may be nil when
// object storage is disabled; ExportRoster then fails with ErrStorageDisabled.
func NewReportUsecase(dataClient contracts.SchedulingDataClient, storage contracts.Storage, internalConfig *config.InternalConfig, log *zap.Logger) contracts.ReportUsecase {
	return &reportUsecase{
		DataClient:     dataClient,
		Storage:        storage,
		InternalConfig: internalConfig,
		Log:            log,
		now:            time.Now,
	}
}

func (uc *reportUsecase) ExportRoster(ctx context.Context, session models.Session) (*responses.ExportRosterReport, error) {
	if uc.Storage == nil {
		return nil, exceptions.ErrStorageDisabled(nil)
	}

	report, err := uc.BuildRoster(ctx, session)
	if err != nil {
		return nil, err
	}

	payload, err := json.Marshal(report)
	if err != nil {
		return nil, exceptions.ErrCannotMarshalJSON(err)
	}

	bucketName := uc.InternalConfig.Report.BucketName
	objectName := fmt.Sprintf(constvars.ReportObjectNameFormat, session.PsychologistID, report.GeneratedAt.Format(constvars.ReportTimestampLayout))

	objectFields := []zap.Field{
		zap.String(constvars.LoggingBucketKey, bucketName),
		zap.String(constvars.LoggingObjectKey, objectName),
	}
	err = utils.LogOperation(ctx, uc.Log, "reports.upload_roster", func(ctx context.Context) error {
		_, err := uc.Storage.UploadJSON(ctx, bucketName, objectName, payload)
		return err
	}, objectFields...)
	if err != nil {
		return nil, err
	}

	expiry := time.Duration(uc.InternalConfig.Report.PresignedURLExpiryInMinutes) * time.Minute
	var downloadURL string
	err = utils.LogOperation(ctx, uc.Log, "reports.presign_roster", func(ctx context.Context) error {
		url, err := uc.Storage.GetObjectUrlWithExpiryTime(ctx, bucketName, objectName, expiry)
		downloadURL = url
		return err
	}, objectFields...)
	if err != nil {
		return nil, err
	}

	utils.LogBusinessEvent(uc.Log, "roster_report_exported", utils.GetRequestID(ctx),
		zap.String(constvars.LoggingPsychologistIDKey, session.PsychologistID),
		zap.String(constvars.LoggingBucketKey, bucketName),
		zap.String(constvars.LoggingObjectKey, objectName),
	)

	return &responses.ExportRosterReport{
		ObjectName:   objectName,
		DownloadURL:  downloadURL,
		GeneratedAt:  report.GeneratedAt,
		PatientCount: len(report.Patients),
	}, nil
}

// BuildRoster gathers the roster and its statistics without touching storage.
func (uc *reportUsecase) BuildRoster(ctx context.Context, session models.Session) (*responses.RosterReport, error) {
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

	stats := responses.RosterReportStats{
		TotalPatients:   len(patients),
		TotalSessions:   len(appointments),
		StatusBreakdown: map[string]int{},
	}
	for _, patient := range patients {
		status := strings.ToLower(patient.Status)
		stats.StatusBreakdown[status]++
		if strings.EqualFold(patient.Status, constvars.PatientStatusActive) {
			stats.ActivePatients++
		}
	}
	for _, appointment := range appointments {
		if appointment.Status == constvars.AppointmentStatusCompleted {
			stats.CompletedSessions++
		}
	}
	for _, request := range requests {
		if request.IsPending() {
			stats.PendingRequests++
		}
	}
	stats.AttendanceRate = dashboard.AttendanceRate(stats.CompletedSessions, stats.TotalSessions)

	if patients == nil {
		patients = []models.Patient{}
	}

	return &responses.RosterReport{
		PsychologistID: session.PsychologistID,
		GeneratedAt:    uc.now().UTC(),
		Stats:          stats,
		Patients:       patients,
	}, nil
}
