package client

import (
	"context"
	"fmt"

	"github.com/fivetwenty-io/crossref-client/internal/constants"
	"github.com/fivetwenty-io/crossref-client/internal/http"
	"github.com/fivetwenty-io/crossref-client/pkg/crossref"
	"github.com/fivetwenty-io/crossref-client/pkg/crossref/query"
	"github.com/fivetwenty-io/crossref-client/pkg/crossref/response"
)

// Client implements the crossref.Client interface.
type Client struct {
	httpClient *http.Client
	baseURL    string
	logger     crossref.Logger

	// Resource clients
	works    *WorksClient
	funders  *FundersClient
	members  *MembersClient
	journals *JournalsClient
	prefixes *PrefixesClient
	types    *TypesClient
}

// createHTTPClientOptions builds HTTP client options from config.
func createHTTPClientOptions(config *crossref.Config) []http.Option {
	var httpOpts []http.Option

	if config.Logger != nil {
		httpOpts = append(httpOpts, http.WithLogger(&loggerAdapter{logger: config.Logger}))
	}

	if config.Debug {
		httpOpts = append(httpOpts, http.WithDebug(true))
	}

	if config.UserAgent != "" {
		httpOpts = append(httpOpts, http.WithUserAgent(config.UserAgent))
	}

	if config.HTTPTimeout > 0 {
		httpOpts = append(httpOpts, http.WithTimeout(config.HTTPTimeout))
	}

	if config.RetryMax > 0 {
		retryWaitMin := constants.DefaultRetryWaitMin
		retryWaitMax := constants.DefaultRetryWaitMax

		if config.RetryWaitMin > 0 {
			retryWaitMin = config.RetryWaitMin
		}

		if config.RetryWaitMax > 0 {
			retryWaitMax = config.RetryWaitMax
		}

		httpOpts = append(httpOpts, http.WithRetryConfig(config.RetryMax, retryWaitMin, retryWaitMax))
	}

	return httpOpts
}

// New creates a client for the API at config.BaseURL. The User-Agent is taken
// verbatim from config; pkg/crossrefclient composes the polite-pool agent.
func New(config *crossref.Config) (*Client, error) {
	if config == nil {
		return nil, crossref.ErrConfigRequired
	}

	if config.BaseURL == "" {
		return nil, crossref.ErrBaseURLRequired
	}

	httpClient := http.NewClient(config.BaseURL, createHTTPClientOptions(config)...)

	return newClient(httpClient, config.Logger), nil
}

func newClient(httpClient *http.Client, logger crossref.Logger) *Client {
	client := &Client{
		httpClient: httpClient,
		baseURL:    httpClient.BaseURL(),
		logger:     logger,
	}

	client.initializeResourceClients()

	return client
}

func (c *Client) initializeResourceClients() {
	c.works = NewWorksClient(c, c.logger)
	c.funders = NewFundersClient(c, c.logger)
	c.members = NewMembersClient(c, c.logger)
	c.journals = NewJournalsClient(c, c.logger)
	c.prefixes = NewPrefixesClient(c, c.logger)
	c.types = NewTypesClient(c, c.logger)
}

// BaseURL returns the API root requests are sent to.
func (c *Client) BaseURL() string {
	return c.baseURL
}

// Do implements crossref.Fetcher.Do.
//
// The plain-text not-found reply becomes a *crossref.ResourceNotFoundError.
// An error status whose body is still a well-formed envelope, such as a
// validation failure, is returned as that envelope. Any other error status is
// reported as a *crossref.TransportError.
func (c *Client) Do(ctx context.Context, request query.ResourceRequest) (*response.Envelope, error) {
	route, err := request.Route()
	if err != nil {
		return nil, fmt.Errorf("building route: %w", err)
	}

	resp, err := c.httpClient.GetRoute(ctx, route)
	if resp == nil {
		return nil, err
	}

	if response.IsResourceNotFound(resp.Body) {
		return nil, &crossref.ResourceNotFoundError{Request: request}
	}

	env, decodeErr := response.Decode(resp.Body)

	if err != nil {
		if decodeErr == nil {
			return env, nil
		}

		return nil, err
	}

	if decodeErr != nil {
		c.log("Decoding response failed", route, resp.RequestID, decodeErr)

		return nil, fmt.Errorf("parsing %s response: %w", request.Component(), decodeErr)
	}

	if c.logger != nil {
		c.logger.Debug("Fetched envelope", map[string]interface{}{
			"route":        route,
			"message_type": env.MessageType.String(),
			"request_id":   resp.RequestID,
		})
	}

	return env, nil
}

func (c *Client) log(msg, route, requestID string, err error) {
	if c.logger == nil {
		return
	}

	c.logger.Error(msg, map[string]interface{}{
		"route":      route,
		"request_id": requestID,
		"error":      err.Error(),
	})
}

// Works implements crossref.Client.Works.
func (c *Client) Works() crossref.WorksClient {
	return c.works
}

// Funders implements crossref.Client.Funders.
func (c *Client) Funders() crossref.FundersClient {
	return c.funders
}

// Members implements crossref.Client.Members.
func (c *Client) Members() crossref.MembersClient {
	return c.members
}

// Journals implements crossref.Client.Journals.
func (c *Client) Journals() crossref.JournalsClient {
	return c.journals
}

// Prefixes implements crossref.Client.Prefixes.
func (c *Client) Prefixes() crossref.PrefixesClient {
	return c.prefixes
}

// Types implements crossref.Client.Types.
func (c *Client) Types() crossref.TypesClient {
	return c.types
}

// fetch sends request and returns its message as T. A validation failure is
// turned into a *crossref.ValidationError; a route-not-found reply keeps its
// *UnexpectedItemError so the caller can see what the server said.
func fetch[T response.Message](ctx context.Context, fetcher crossref.Fetcher, request query.ResourceRequest) (T, error) {
	var zero T

	env, err := fetcher.Do(ctx, request)
	if err != nil {
		return zero, err
	}

	if env.IsValidationFailure() {
		failures, _ := env.Message.(response.ValidationFailure)

		return zero, &crossref.ValidationError{Failures: failures}
	}

	return response.Expect[T](env)
}

// loggerAdapter adapts crossref.Logger to http.Logger.
type loggerAdapter struct {
	logger crossref.Logger
}

func (l *loggerAdapter) Debug(msg string, fields map[string]interface{}) {
	l.logger.Debug(msg, fields)
}

func (l *loggerAdapter) Info(msg string, fields map[string]interface{}) {
	l.logger.Info(msg, fields)
}

func (l *loggerAdapter) Warn(msg string, fields map[string]interface{}) {
	l.logger.Warn(msg, fields)
}

func (l *loggerAdapter) Error(msg string, fields map[string]interface{}) {
	l.logger.Error(msg, fields)
}
