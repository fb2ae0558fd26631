package constvars

// Validation messages mapper
var CustomValidationErrorMessages = map[string]string{
	"required":   "is required",
	"min":        "must be at least %s characters long",
	"max":        "maximum at %s characters long",
	"numeric":    "must be a number",
	"oneof":      "must be one of [%s]",
	"entry_type": "must be one of [HealthCheck, OccupationalHealthcare, Hospital]",
}

// Tags that require parameter substitution
var TagsWithParams = map[string]bool{
	"min":   true,
	"max":   true,
	"oneof": true,
}

// Error messages for clients
const (
	ErrClientCannotProcessRequest          = "failed to process your request"
	ErrClientSomethingWrongWithApplication = "there is something wrong with the application"
	ErrClientServerLongRespond             = "the app taking too long to respond"
	ErrClientCatalogUnavailable            = "diagnosis catalog is currently unavailable"
	ErrClientSubmissionFailed              = "failed to save the new entry, please try again"
	ErrClientTooManySubmissions            = "too many submissions, please wait a moment"
	ErrClientPatientNotFound               = "patient not found"

	// Prefix kept from the web client's error banner.
	ErrClientSubmissionPrefix = "Error: "
)

// Error messages for developers
const (
	ErrDevInvalidInput             = "invalid input"
	ErrDevValidationFailed         = "request validation failed"
	ErrDevCannotParseJSON          = "cannot parse JSON into struct or other data types"
	ErrDevCannotMarshalJSON        = "cannot convert struct or other data types to JSON"
	ErrDevCreateHTTPRequest        = "cannot create HTTP request"
	ErrDevSendHTTPRequest          = "cannot send HTTP request"
	ErrDevServerDeadlineExceeded   = "server deadline exceeded on processing the request"
	ErrDevServerProcess            = "error happened in server process"
	ErrDevMissingRequestID         = "request ID missing from request context"
	ErrDevRecordAPIFetchResource   = "record API failed to serve %s resource"
	ErrDevRecordAPICreateResource  = "record API failed to create %s resource"
	ErrDevRecordAPIDecodeResponse  = "cannot decode record API %s response"
	ErrDevRecordAPIResourceMissing = "record API has no %s resource for the given id"
	ErrDevEntryValidationFailed    = "entry draft validation failed"
	ErrDevUnknownEntryType         = "entry type matches no known variant"
	ErrDevSubmissionRateLimited    = "submission rate limit exceeded"

	ErrDevRedisSetData    = "redis failed to set data"
	ErrDevRedisGetData    = "redis failed to get data"
	ErrDevRedisDeleteData = "redis failed to delete data"
)
