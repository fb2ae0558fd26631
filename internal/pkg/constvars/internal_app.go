package constvars

type ContextKey string

const (
	CONTEXT_REQUEST_ID_KEY           ContextKey = "request_id"
	CONTEXT_IS_CLIENT_REQUEST_ID_KEY ContextKey = "is_client_request_id"
)

const (
	REQUEST_ID_PREFIX = "PTNTR_SVC_"
)

const (
	ResourcePatient   = "Patient"
	ResourceDiagnosis = "Diagnosis"
)

const (
	URLParamPatientID = "patient_id"
)

// Redis keys
const (
	DiagnosisCatalogCacheKey = "patientor:diagnosis_catalog"
)
