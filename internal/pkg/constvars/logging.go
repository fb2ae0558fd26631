package constvars

const (
	LoggingRequestIDKey  = "request_id"
	LoggingPatientIDKey  = "patient_id"
	LoggingEntryTypeKey  = "entry_type"
	LoggingEndpointKey   = "endpoint"
	LoggingQueryKey      = "query"
	LoggingMethodKey     = "method"
	LoggingRemoteAddrKey = "remote_addr"
	LoggingUserAgentKey  = "user_agent"
	LoggingStatusCodeKey = "status_code"
	LoggingDurationKey   = "duration"
	LoggingSuccessKey    = "success"
	LoggingErrorTypeKey  = "error_type"
)
