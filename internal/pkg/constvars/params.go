package constvars

const (
	URLParamRequestID      = "request_id"
	URLParamNotificationID = "notification_id"
)

const (
	URLQueryParamSearch = "search"
	URLQueryParamStatus = "status"
)
