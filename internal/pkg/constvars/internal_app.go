package constvars

type ContextKey string

const (
	CONTEXT_REQUEST_ID_KEY           ContextKey = "request_id"
	CONTEXT_IS_CLIENT_REQUEST_ID_KEY ContextKey = "is_client_request_id"
)

const (
	REQUEST_ID_PREFIX = "HCAMP_SVC_"
)

const (
	AppEnvDevelopment = "development"
	AppEnvProduction  = "production"
)

const (
	DefaultPage      = 1
	DefaultLimit     = 10
	DefaultSortBy    = "updatedAt"
	SortOrderAsc     = "asc"
	SortOrderDesc    = "desc"
	FirstHundredSize = 100

	TopDiagnosesLimit          = 10
	TopConditionsLimit         = 10
	TopComplaintsLimit         = 10
	TopTreatmentsLimit         = 10
	TopStaffLimit              = 5
	TopLocationDiagnosesLimit  = 5
	TopSearchedDiagnosesLimit  = 5
	HoursInDay                 = 24
	DefaultHourlyLocation      = "Baringo"
	HypertensionSystolicLimit  = 140
	HypertensionDiastolicLimit = 90
)

const (
	PingResponseMessage = "Server is alive"
)

const (
	RedisKeyLocationList  = "healthcamp:locations"
	RedisKeyLocationStats = "healthcamp:location-stats"
)

const (
	LabExportObjectPrefix   = "lab-exports"
	LabExportFileNameFormat = "%s/%s_%s.json"
	LabExportTimeFormat     = "20060102_150405"
	LabExportAllLocations   = "all"
	LabExportReadyEvent     = "lab_export.ready"
)
