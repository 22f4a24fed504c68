package constvars

const (
	ResponseUnknown = "unknown"
	ResponseSuccess = "success"
	ResponseError   = "error"

	LoginSuccess = "successfully login"

	GetPendingRequestsSuccess  = "get pending session requests successfully"
	AcceptRequestSuccess       = "session request accepted successfully"
	RejectRequestSuccess       = "session request rejected successfully"
	GetAvailabilitySuccess     = "get availability successfully"
	ToggleAvailabilitySuccess  = "availability slot toggled successfully"
	ReplaceAvailabilitySuccess = "availability replaced successfully"
	GetSlotTemplateSuccess     = "get slot template successfully"
	GetPatientsSuccess         = "get patients successfully"
	GetDashboardSuccess        = "get dashboard summary successfully"
	ExportRosterReportSuccess  = "roster report exported successfully"
	GetNotificationsSuccess    = "get notifications successfully"
	DismissNotificationSuccess = "notification dismissed successfully"
)
