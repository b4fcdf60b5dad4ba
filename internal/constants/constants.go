package constants

import "time"

// File and directory permissions.
const (
	// ConfigDirPerm is the permission for configuration directories.
	ConfigDirPerm = 0750

	// ConfigFilePerm is the permission for configuration files.
	ConfigFilePerm = 0600

	// OutputFilePerm is the permission for files written by --output-file.
	OutputFilePerm = 0644
)

// API endpoint and identification.
const (
	// DefaultBaseURL is the public REST API.
	DefaultBaseURL = "https://api.crossref.org"

	// DefaultUserAgent identifies the client when no agent is configured.
	DefaultUserAgent = "crossref-client"

	// RequestIDHeader carries a unique id per request for log correlation.
	RequestIDHeader = "X-Request-ID"
)

// HTTP and network timeouts.
const (
	// DefaultHTTPTimeout is the default timeout for HTTP requests.
	DefaultHTTPTimeout = 30 * time.Second
)

// Retry limits. Retries are off unless a caller opts in.
const (
	// DefaultRetryWaitMin is the minimum wait between retries.
	DefaultRetryWaitMin = 1 * time.Second

	// DefaultRetryWaitMax is the maximum wait time between retries.
	DefaultRetryWaitMax = 10 * time.Second
)

// Paging limits.
const (
	// MaxRows is the largest page size the API accepts.
	MaxRows = 1000

	// MaxSample is the largest random sample the API returns.
	MaxSample = 100
)

// CLI output formats.
const (
	OutputFormatTable = "table"
	OutputFormatJSON  = "json"
	OutputFormatYAML  = "yaml"
)
