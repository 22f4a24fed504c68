package mockapi

import (
	"lunysse-service/internal/app/models"
	"lunysse-service/internal/pkg/constvars"
	"time"

	"golang.org/x/crypto/bcrypt"
)

// SeedPassword is the password of every seeded psychologist account.
const SeedPassword = "123456"

// Seed loads a demo dataset anchored at now: two psychologists, a small
// roster, pending requests and a mix of past and upcoming appointments.
func (c *Client) Seed(now time.Time) error {
	hash, err := bcrypt.GenerateFromPassword([]byte(SeedPassword), bcrypt.DefaultCost)
	if err != nil {
		return err
	}

	c.AddPsychologist(models.Psychologist{
		ID:           "psy-1",
		Name:         "Dra. Ana Costa",
		Email:        "ana.costa@lunysse.com",
		PasswordHash: string(hash),
		Specialty:    "Terapia Cognitivo-Comportamental",
		CRP:          "06/123456",
	})
	c.AddPsychologist(models.Psychologist{
		ID:           "psy-2",
		Name:         "Dr. Carlos Mendes",
		Email:        "carlos.mendes@lunysse.com",
		PasswordHash: string(hash),
		Specialty:    "Psicologia Clínica",
		CRP:          "06/654321",
	})

	c.AddPatient(models.Patient{
		ID: "pat-1", PsychologistID: "psy-1", Name: "João Silva", Email: "joao.silva@email.com",
		Phone: "(11) 99999-1111", BirthDate: "1988-04-12", Age: 36, Status: constvars.PatientStatusActive,
		TotalSessions: 8, CreatedAt: now.AddDate(0, -3, 0),
	})
	c.AddPatient(models.Patient{
		ID: "pat-2", PsychologistID: "psy-1", Name: "Maria Andrade", Email: "maria.andrade@email.com",
		Phone: "(11) 99999-2222", BirthDate: "1995-09-30", Age: 29, Status: "pendente",
		TotalSessions: 1, CreatedAt: now.AddDate(0, -1, 0),
	})

	c.AddRequest(models.SessionRequest{
		ID: "req-1", PsychologistID: "psy-1", PatientName: "Carla Souza", PatientEmail: "carla.souza@email.com",
		PatientPhone: "(11) 98888-3333", Description: "Crises de ansiedade frequentes no trabalho",
		Urgency: constvars.UrgencyHigh, Status: constvars.RequestStatusPending, CreatedAt: now.AddDate(0, 0, -1),
	})
	c.AddRequest(models.SessionRequest{
		ID: "req-2", PsychologistID: "psy-1", PatientName: "Pedro Lima", PatientEmail: "pedro.lima@email.com",
		PatientPhone: "(11) 97777-4444", Description: "Dificuldade para dormir",
		Urgency: constvars.UrgencyMedium, Status: constvars.RequestStatusPending, CreatedAt: now.AddDate(0, 0, -2),
	})
	c.AddRequest(models.SessionRequest{
		ID: "req-3", PsychologistID: "psy-1", PatientName: "Maria Andrade", PatientEmail: "maria.andrade@email.com",
		PatientPhone: "(11) 99999-2222", Description: "Retorno ao acompanhamento",
		Urgency: constvars.UrgencyLow, Status: constvars.RequestStatusPending, CreatedAt: now.AddDate(0, 0, -3),
	})
	c.AddRequest(models.SessionRequest{
		ID: "req-4", PsychologistID: "psy-1", PatientName: "Lucas Rocha", PatientEmail: "lucas.rocha@email.com",
		Urgency: constvars.UrgencyLow, Status: constvars.RequestStatusRejected, Note: constvars.TriageNoteRejected,
		CreatedAt: now.AddDate(0, 0, -10),
	})

	day := func(offset int) string { return now.AddDate(0, 0, offset).Format(constvars.AppointmentDateLayout) }
	c.AddAppointment(models.Appointment{
		ID: "apt-1", PatientID: "pat-1", PsychologistID: "psy-1", Date: day(-7), Time: "10:00",
		Duration: 50, Description: "Sessão de acompanhamento", Notes: "Paciente apresentou melhora.",
		Status: constvars.AppointmentStatusCompleted,
	})
	c.AddAppointment(models.Appointment{
		ID: "apt-2", PatientID: "pat-1", PsychologistID: "psy-1", Date: day(-14), Time: "10:00",
		Duration: 50, Description: "Sessão de acompanhamento", Status: constvars.AppointmentStatusCanceled,
	})
	c.AddAppointment(models.Appointment{
		ID: "apt-3", PatientID: "pat-2", PsychologistID: "psy-1", Date: day(0), Time: "23:00",
		Duration: 50, Description: "Primeira sessão", Status: constvars.AppointmentStatusScheduled,
	})
	c.AddAppointment(models.Appointment{
		ID: "apt-4", PatientID: "pat-1", PsychologistID: "psy-1", Date: day(3), Time: "14:00",
		Duration: 50, Description: "Sessão de acompanhamento", Status: constvars.AppointmentStatusScheduled,
	})
	return nil
}
