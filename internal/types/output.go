package types

// OutputFormat selects how command results are rendered
type OutputFormat string

const (
	OutputFormatJSON  OutputFormat = "json"
	OutputFormatTable OutputFormat = "table"
)

// GlobalFlags holds flags shared by all commands
type GlobalFlags struct {
	Config       string
	LogFile      string
	LogLevel     string
	OutputFormat OutputFormat
	Quiet        bool
	Verbose      bool
}

// CLIError is the stable machine-readable error shape
type CLIError struct {
	Code       string                 `json:"code"`
	Message    string                 `json:"message"`
	HTTPStatus int                    `json:"httpStatus,omitempty"`
	Retryable  bool                   `json:"retryable,omitempty"`
	Context    map[string]interface{} `json:"context,omitempty"`
}

// CLIWarning is a non-fatal notice included in command output
type CLIWarning struct {
	Code     string `json:"code"`
	Message  string `json:"message"`
	Severity string `json:"severity"`
}

// CLIOutput is the JSON envelope for command results
type CLIOutput struct {
	SchemaVersion string       `json:"schemaVersion"`
	TraceID       string       `json:"traceId"`
	Command       string       `json:"command"`
	Data          interface{}  `json:"data"`
	Warnings      []CLIWarning `json:"warnings"`
	Errors        []CLIError   `json:"errors"`
}

// TableRenderer describes data that can be shown as a console table
type TableRenderer interface {
	Headers() []string
	Rows() [][]string
	EmptyMessage() string
}

// TableRenderable lets result types supply their own renderer
type TableRenderable interface {
	AsTableRenderer() TableRenderer
}
