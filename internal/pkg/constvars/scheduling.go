package constvars

// Session request urgency.
const (
	UrgencyHigh   = "alta"
	UrgencyMedium = "media"
	UrgencyLow    = "baixa"
)

// Session request status.
const (
	RequestStatusPending  = "pendente"
	RequestStatusAccepted = "aceito"
	RequestStatusRejected = "rejeitado"
)

const (
	PatientStatusActive        = "Ativo"
	PatientStatusFilterAll     = "todos"
	PatientDefaultBirthDate    = "1990-01-01"
	PatientDefaultAge          = 30
	PatientStatusPendingFilter = "pendente"
)

const (
	AppointmentStatusScheduled = "agendado"
	AppointmentStatusCompleted = "concluido"
	AppointmentStatusCanceled  = "cancelado"
	AppointmentDateLayout      = "2006-01-02"
	AppointmentTimeLayout      = "15:04"
	DashboardUpcomingLimit     = 5
)

const (
	PeriodMorning   = "Manhã"
	PeriodAfternoon = "Tarde"
)

const (
	TriageNoteAccepted = "Paciente aceito"
	TriageNoteRejected = "Recusada pelo psicólogo"
)

const (
	TriageEventAccepted = "accepted"
	TriageEventRejected = "rejected"
)

const (
	SeveritySuccess = "success"
	SeverityError   = "error"
	SeverityInfo    = "info"
)

// User-facing notification messages, kept in the product language.
const (
	NotifyLoadRequestsFailed   = "Erro ao carregar solicitações"
	NotifyPatientAlreadyExists = "Este paciente já existe na sua lista!"
	NotifyRequestAccepted      = "Solicitação aceita com sucesso!"
	NotifyAcceptFailed         = "Erro ao aceitar solicitação"
	NotifyRequestRejected      = "Solicitação rejeitada"
	NotifyRejectFailed         = "Erro ao rejeitar solicitação"
)
