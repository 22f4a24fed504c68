package constvars

const (
	LoggingRequestIDKey      = "request_id"
	LoggingMethodKey         = "method"
	LoggingEndpointKey       = "endpoint"
	LoggingRemoteAddrKey     = "remote_addr"
	LoggingUserAgentKey      = "user_agent"
	LoggingQueryKey          = "query"
	LoggingStatusCodeKey     = "status_code"
	LoggingDurationKey       = "duration"
	LoggingSuccessKey        = "success"
	LoggingOperationKey      = "operation"
	LoggingErrorTypeKey      = "error_type"
	LoggingErrorCodeKey      = "error_code"
	LoggingErrorMessageKey   = "error_message"
	LoggingPsychologistIDKey = "psychologist_id"
	LoggingSessionRequestKey = "session_request_id"
	LoggingPatientIDKey      = "patient_id"
	LoggingPatientEmailKey   = "patient_email"
	LoggingPendingCountKey   = "pending_count"
	LoggingRedisKey          = "redis_key"
	LoggingLockValueKey      = "lock_value"
	LoggingLockExpirationKey = "lock_expiration"
	LoggingLockStoredKey     = "lock_stored_value"
	LoggingSlotIDKey         = "slot_id"
	LoggingSlotCountKey      = "slot_count"
	LoggingSeverityKey       = "severity"
	LoggingNotificationIDKey = "notification_id"
	LoggingQueueKey          = "queue"
	LoggingBucketKey         = "bucket"
	LoggingObjectKey         = "object"
	LoggingEventKey          = "event"
)
