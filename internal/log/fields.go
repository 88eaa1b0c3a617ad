package log

// Common field names for structured logging
const (
	FieldComponent  = "component"
	FieldRequestID  = "request_id"
	FieldMethod     = "method"
	FieldPath       = "path"
	FieldStatusCode = "status_code"
	FieldDuration   = "duration_ms"
	FieldError      = "error"
	FieldSessionID  = "session_id"
	FieldYear       = "year"
	FieldRecords    = "records"
	FieldBuckets    = "buckets"
	FieldTopN       = "top_n"
)

// Components defines standard component names
const (
	ComponentApp      = "app"
	ComponentHTTP     = "http"
	ComponentAnalyst  = "analyst"
	ComponentSessions = "sessions"
	ComponentTrace    = "trace"
)
