package constvars

// Validation messages mapper
var CustomValidationErrorMessages = map[string]string{
	"required":       "is required",
	"email":          "must be a valid email",
	"min":            "must be at least %s characters long",
	"max":            "maximum at %s characters long",
	"oneof":          "must be one of [%s]",
	"gte":            "must be greater than or equal to %s",
	"lte":            "must be less than or equal to %s",
	"urgency":        "must be one of [alta, media, baixa]",
	"request_status": "must be one of [pendente, aceito, rejeitado]",
	"slot_time":      "must be one of the available time slots",
	"slot_day":       "must be a non empty day label without '-'",
}

// Tags that require parameter substitution
var TagsWithParams = map[string]bool{
	"min":   true,
	"max":   true,
	"gte":   true,
	"lte":   true,
	"oneof": true,
}

// Error messages for clients
const (
	ErrClientCannotProcessRequest          = "cannot process request"
	ErrClientSomethingWrongWithApplication = "there is something wrong with the application"
	ErrClientNotAuthorized                 = "you are not authorized to access this resource"
	ErrClientNotLoggedIn                   = "your session ended, please login again"
	ErrClientInvalidEmailOrPassword        = "invalid email or password"
	ErrClientServerLongRespond             = "server took too long to respond"
	ErrClientPatientAlreadyExists          = NotifyPatientAlreadyExists
	ErrClientRequestInFlight               = "this session request is already being processed"
	ErrClientRequestNotPending             = "this session request is no longer pending"
	ErrClientLoadRequestsFailed            = NotifyLoadRequestsFailed
	ErrClientAcceptFailed                  = NotifyAcceptFailed
	ErrClientRejectFailed                  = NotifyRejectFailed
	ErrClientAvailabilityBusy              = "availability is being updated, please try again"
	ErrClientNotificationNotFound          = "notification not found"
	ErrClientUnknownSlotDay                = "day must be one of the available days"
	ErrClientStorageUnavailable            = "report storage is not available"
)

// Error messages for developers
const (
	ErrDevValidationFailed             = "validation failed"
	ErrDevInvalidInput                 = "invalid input"
	ErrDevCannotParseJSON              = "cannot parse JSON"
	ErrDevCannotMarshalJSON            = "cannot marshal JSON"
	ErrDevMissingRequestID             = "request ID missing from context"
	ErrDevMissingSessionData           = "session data missing from context"
	ErrDevServerDeadlineExceeded       = "server deadline exceeded"
	ErrDevServerProcess                = "server failed to process something related to machine system"
	ErrDevURLParamValidationFailed     = "URL param '%s' validation failed"
	ErrDevAuthTokenMissing             = "auth token missing"
	ErrDevAuthTokenInvalidOrExpired    = "auth token invalid or expired"
	ErrDevAuthGenerateToken            = "failed to generate auth token"
	ErrDevInvalidCredentials           = "invalid credentials"
	ErrDevPatientAlreadyExists         = "patient with email '%s' already exists in roster"
	ErrDevPatientEmailLocked           = "another accept for email '%s' holds the lock"
	ErrDevRequestInFlight              = "session request '%s' is already in flight"
	ErrDevRequestNotPending            = "session request '%s' is not in the pending list"
	ErrDevDataClientFetch              = "data client failed to fetch %s"
	ErrDevDataClientWrite              = "data client failed to write %s"
	ErrDevAvailabilityLocked           = "availability for psychologist '%s' is locked"
	ErrDevNotificationNotFound         = "notification '%s' not found"
	ErrDevUnknownSlotDay               = "day '%s' is not an available day"
	ErrDevStorageDisabled              = "object storage is disabled"
	ErrDevDBFailedToFindDocument       = "failed to find document in mongo database"
	ErrDevDBFailedToIterateDocuments   = "failed to iterate documents in mongo database"
	ErrDevDBFailedToInsertDocument     = "failed to insert document into mongo database"
	ErrDevDBFailedToUpdateDocument     = "failed to update document in mongo database"
	ErrDevDBFailedToCreateIndex        = "failed to create index in mongo database"
	ErrDevDBDuplicateKey               = "duplicate key in mongo database"
	ErrDevDBNoDocumentMatched          = "no document matched the filter"
	ErrDevRedisSetData                 = "failed to SET data into redis"
	ErrDevRedisGetData                 = "failed to GET data from redis, key %s"
	ErrDevRedisDeleteData              = "failed to DELETE data from redis"
	ErrDevRedisExpire                  = "failed to EXPIRE key in redis"
	ErrDevRedisUnlock                  = "failed to release redis lock"
	ErrDevMinioFailedToCreateObject    = "failed to create object into minio storage with bucket name '%s'"
	ErrDevMinioFailedToGetPresignedURL = "failed to get object URL from minio storage with bucket name '%s'"
	ErrDevRabbitMQPublishMessage       = "failed to publish message into rabbitmq queue '%s'"
	ErrDevMockInjectedFailure          = "mock data client injected failure on %s"
)
