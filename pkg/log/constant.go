package log

const (
	ModeProduction  = "production"
	ModeDevelopment = "development"

	EncodingConsole = "console"
	EncodingJSON    = "json"

	defaultLevel = "info"

	fieldRequestID = "request_id"
)
