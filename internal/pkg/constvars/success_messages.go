package constvars

const (
	// Generic messages
	ResponseUnknown = "unknown"
	ResponseSuccess = "success"
	ResponseError   = "error"

	// Patient record messages
	PatientRecordGetSuccess  = "get patient record successfully"
	DiagnosisCatalogSuccess  = "get diagnosis catalog successfully"
	StatusBannerGetSuccess   = "get status successfully"
	StatusBannerClearSuccess = "clear status successfully"

	// Wording kept from the web client, typo included.
	EntryAddedSuccess = "New entry added succesfully"
)
