package config

type InternalConfig struct {
	App       App
	RecordAPI RecordAPI
	Banner    Banner
	Catalog   Catalog
}

type App struct {
	Env                       string
	Port                      string
	Version                   string
	EndpointPrefix            string
	MaxRequests               int
	ShutdownTimeoutInSeconds  int
	SubmissionsPerMinute      int
	SubmissionBurst           int
	RequestTimeoutInSeconds   int
}

type RecordAPI struct {
	BaseUrl string
}

type Banner struct {
	VisibleDurationInSeconds int
}

type Catalog struct {
	CacheTTLInMinutes int
}
