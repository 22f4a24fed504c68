package constvars

type ContextKey string

const (
	CONTEXT_REQUEST_ID_KEY           ContextKey = "request_id"
	CONTEXT_SESSION_DATA_KEY         ContextKey = "session_data"
	CONTEXT_IS_CLIENT_REQUEST_ID_KEY ContextKey = "is_client_request_id"
)

const (
	AppEnvDevelopment = "development"
	AppEnvProduction  = "production"
)

const (
	DataSourceMock  = "mock"
	DataSourceMongo = "mongo"
)

const (
	MongoCollectionPatients        = "patients"
	MongoCollectionSessionRequests = "session_requests"
	MongoCollectionAppointments    = "appointments"
	MongoCollectionPsychologists   = "psychologists"
)

const (
	RedisKeyAvailabilityFormat     = "availability:%s"
	RedisKeyAvailabilityLockFormat = "availability:lock:%s"
	RedisKeyTriageAcceptLockFormat = "triage:accept:%s:%s"
)

const (
	ReportObjectNameFormat = "reports/%s/roster-%s.json"
	ReportTimestampLayout  = "20060102T150405Z"
)

const (
	JWTClaimPsychologistID = "psychologist_id"
	JWTClaimEmail          = "email"
	JWTClaimName           = "name"
	JWTClaimExpiration     = "exp"
	JWTClaimIssuedAt       = "iat"
)
