package responses

// StatusBanner is the transient submission status. It disappears on its own
// after the configured duration; showing a new banner restarts the clock.
type StatusBanner struct {
	Severity string `json:"severity"`
	Message  string `json:"message"`
}
