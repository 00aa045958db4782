package loggers

const (
	FieldApp        = "app"
	FieldComponent  = "component"
	FieldHttpMethod = "http_method"
	FieldHttpPath   = "http_path"
	FieldHttpStatus = "http_status"
	FieldHttpClient = "http_client"

	FieldDuration   = "duration"
	FieldRequestID  = "request_id"
	FieldErrorStack = "error_stack"
	FieldErrorCode  = "error_code"

	FieldCycleID       = "cycle_id"
	FieldHour          = "hour"
	FieldFeedCount     = "feed_count"
	FieldReportedCount = "reported_count"
	FieldURL           = "url"
	FieldInterval      = "interval"
)
