package contracts

import "patientor-service/internal/pkg/dto/responses"

// StatusService holds the one transient submission banner. Show replaces the
// current banner and restarts the dismiss timer; an expired or cleared banner
// leaves Current returning nil.
type StatusService interface {
	Show(severity, message string)
	Current() *responses.StatusBanner
	Clear()
}
