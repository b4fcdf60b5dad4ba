package crossrefclient

import (
	"fmt"
	"net/url"
	"strings"

	"github.com/fivetwenty-io/crossref-client/internal/client"
	"github.com/fivetwenty-io/crossref-client/internal/constants"
	"github.com/fivetwenty-io/crossref-client/pkg/crossref"
)

// New creates a new Crossref API client. The config is copied; the caller's
// value is left untouched.
func New(config *crossref.Config) (crossref.Client, error) {
	if config == nil {
		return nil, crossref.ErrConfigRequired
	}

	cfg := *config

	baseURL, err := normalizeBaseURL(cfg.BaseURL)
	if err != nil {
		return nil, err
	}

	cfg.BaseURL = baseURL
	cfg.UserAgent = UserAgent(cfg.UserAgent, cfg.Mailto)

	c, err := client.New(&cfg)
	if err != nil {
		return nil, fmt.Errorf("failed to create new client: %w", err)
	}

	return c, nil
}

// UserAgent returns the User-Agent header for agent and a contact address.
// An empty agent falls back to the library default; a non-empty mailto adds
// the `(mailto:...)` contact that routes requests to the polite pool.
func UserAgent(agent, mailto string) string {
	if agent == "" {
		agent = constants.DefaultUserAgent
	}

	mailto = strings.TrimSpace(mailto)
	if mailto == "" || strings.Contains(agent, "mailto:") {
		return agent
	}

	return agent + " (mailto:" + mailto + ")"
}

// normalizeBaseURL defaults an empty base URL, trims the trailing slash and
// adds https:// when no scheme is given.
func normalizeBaseURL(raw string) (string, error) {
	baseURL := strings.TrimSuffix(strings.TrimSpace(raw), "/")
	if baseURL == "" {
		return constants.DefaultBaseURL, nil
	}

	if !strings.HasPrefix(baseURL, "http://") && !strings.HasPrefix(baseURL, "https://") {
		baseURL = "https://" + baseURL
	}

	parsed, err := url.Parse(baseURL)
	if err != nil {
		return "", fmt.Errorf("%w: %w", crossref.ErrInvalidBaseURL, err)
	}

	if parsed.Host == "" || parsed.RawQuery != "" {
		return "", fmt.Errorf("%w: %s", crossref.ErrInvalidBaseURL, raw)
	}

	return baseURL, nil
}

// NewDefault creates a client for the public API with default settings.
func NewDefault() (crossref.Client, error) {
	return New(&crossref.Config{})
}

// NewWithBaseURL creates a client for the API at baseURL, e.g. a mirror or a test server.
func NewWithBaseURL(baseURL string) (crossref.Client, error) {
	return New(&crossref.Config{
		BaseURL: baseURL,
	})
}

// NewPolite creates a client for the public API that identifies itself with a
// contact address.
func NewPolite(mailto string) (crossref.Client, error) {
	return New(&crossref.Config{
		Mailto: mailto,
	})
}
