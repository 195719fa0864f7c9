// Package v1 implements a client for version 1 of the HamDB callsign lookup
// API (https://hamdb.org).
package v1

import (
	"context"
	stderr "errors"
	"io"
	"net/http"
	"sync"
	"sync/atomic"
	"time"

	"github.com/Station-Manager/config"
	"github.com/Station-Manager/errors"
	"github.com/Station-Manager/hamdb/callsign"
	"github.com/Station-Manager/logging"
	"github.com/Station-Manager/types"
	"github.com/Station-Manager/utils"
)

const (
	ServiceName = "hamdb"

	// DefaultEndpoint is the HamDB v1 REST endpoint.
	DefaultEndpoint = "https://api.hamdb.org/v1/"

	// DefaultTimeout bounds every lookup request.
	DefaultTimeout = 5 * time.Second
)

// Client looks up callsigns against HamDB. It is safe for concurrent use.
//
// Use NewClient for a ready client, or inject LoggerService and ConfigService
// and call Initialize.
type Client struct {
	LoggerService *logging.Service `di.inject:"loggingservice"`
	ConfigService *config.Service  `di.inject:"configservice"`
	Config        *types.LookupConfig

	appName  string
	endpoint string
	timeout  time.Duration
	client   *http.Client

	isInitialized atomic.Bool
	initOnce      sync.Once
	initErr       error
}

// Option configures a Client built by NewClient.
type Option func(*Client)

// WithEndpoint overrides DefaultEndpoint.
func WithEndpoint(endpoint string) Option {
	return func(c *Client) {
		c.endpoint = endpoint
	}
}

// WithHTTPClient replaces the default HTTP client. DefaultTimeout still
// applies to each request.
func WithHTTPClient(client *http.Client) Option {
	return func(c *Client) {
		c.client = client
	}
}

// WithLogger sets the logger used to report failed lookups.
func WithLogger(logger *logging.Service) Option {
	return func(c *Client) {
		c.LoggerService = logger
	}
}

// NewClient returns an initialized client. appName identifies the calling
// application to HamDB and is sent verbatim in the request path, so it must
// be URL-safe.
func NewClient(appName string, opts ...Option) *Client {
	c := &Client{
		appName:  appName,
		endpoint: DefaultEndpoint,
		timeout:  DefaultTimeout,
	}
	for _, opt := range opts {
		opt(c)
	}
	if c.client == nil {
		c.client = utils.NewHTTPClient(DefaultTimeout)
	}
	c.isInitialized.Store(true)
	return c
}

// Initialize sets up a client whose LoggerService and ConfigService were
// injected. The HamDB application name is taken from the config's UserAgent
// and the endpoint from its URL, when set. A failed initialization is not
// retried; later calls return the same error.
func (c *Client) Initialize() error {
	const op errors.Op = "v1.Client.Initialize"
	if c.isInitialized.Load() {
		return nil
	}

	c.initOnce.Do(func() {
		c.initErr = c.initialize(op)
		if c.initErr == nil {
			c.isInitialized.Store(true)
		}
	})

	return c.initErr
}

func (c *Client) initialize(op errors.Op) error {
	if c.LoggerService == nil {
		return errors.New(op).Msg("logger service has not been set/injected")
	}

	if c.Config == nil {
		if c.ConfigService == nil {
			return errors.New(op).Msg("application config has not been set/injected")
		}

		cfg, err := c.ConfigService.LookupServiceConfig(ServiceName)
		if err != nil {
			return errors.New(op).Err(err).Msg("getting lookup service config")
		}
		c.Config = &cfg
	}

	if err := c.validateConfig(op); err != nil {
		return err
	}

	c.appName = c.Config.UserAgent
	c.endpoint = DefaultEndpoint
	if c.Config.URL != "" {
		c.endpoint = c.Config.URL
	}
	if c.timeout <= 0 {
		c.timeout = DefaultTimeout
	}
	if c.client == nil {
		c.client = utils.NewHTTPClient(DefaultTimeout)
	}
	if !c.Config.Enabled {
		c.LoggerService.InfoWith().Msg("HamDB callsign lookup is disabled in the config")
	}

	return nil
}

// Lookup retrieves the HamDB record for callsign using a background context.
func (c *Client) Lookup(callsign string) (CallsignLookup, error) {
	return c.LookupWithContext(context.Background(), callsign)
}

// LookupWithContext validates callsign locally, then fetches and decodes its
// HamDB record. The request is bounded by DefaultTimeout as well as ctx.
//
// Failed lookups return an *Error; use errors.Is with ErrCallsignParsing,
// ErrTransport, ErrTimeout, ErrDecode or ErrNotFound to branch on its kind.
func (c *Client) LookupWithContext(ctx context.Context, callsignText string) (CallsignLookup, error) {
	const op errors.Op = "v1.Client.LookupWithContext"
	if ctx == nil {
		ctx = context.Background()
	}

	emptyRetVal := CallsignLookup{}
	if !c.isInitialized.Load() {
		return emptyRetVal, errors.New(op).Msg("client is not initialized")
	}

	parsed, err := callsign.Parse(callsignText)
	if err != nil {
		return emptyRetVal, &Error{Kind: KindCallsignParsing, Err: err}
	}
	base := parsed.Base

	if c.Config != nil && !c.Config.Enabled {
		c.logger().InfoWith().Str("callsign", base).Msg("HamDB callsign lookup is disabled in the config")
		return CallsignLookup{Call: base}, nil
	}

	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, makeURL(c.endpoint, base, c.appName), nil)
	if err != nil {
		return emptyRetVal, c.failed(&Error{Kind: KindTransport, Callsign: base, Err: errors.New(op).Err(err).Msgf("creating HTTP GET request: %v", err)})
	}
	req.Header.Set("User-Agent", c.appName)
	req.Header.Set("Accept", "application/json")

	resp, err := c.client.Do(req)
	if err != nil {
		return emptyRetVal, c.failed(&Error{Kind: transportKind(err), Callsign: base, Err: errors.New(op).Err(err).Msgf("performing HTTP GET request: %v", err)})
	}
	defer func(Body io.ReadCloser) {
		_ = Body.Close()
	}(resp.Body)

	// The envelope decides the outcome; the HTTP status is only logged.
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		c.logger().InfoWith().Str("callsign", base).Str("status", resp.Status).Msg("HamDB returned a non-2xx status")
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return emptyRetVal, c.failed(&Error{Kind: transportKind(err), Callsign: base, Err: errors.New(op).Err(err).Msgf("reading response body: %v", err)})
	}

	lookup, err := c.unmarshalResponse(body, base)
	if err != nil {
		return emptyRetVal, c.failed(err)
	}

	return lookup, nil
}

// failed logs err at a level matching its kind and returns it unchanged.
func (c *Client) failed(err error) error {
	var lookupErr *Error
	if stderr.As(err, &lookupErr) && lookupErr.Kind == KindNotFound {
		c.logger().InfoWith().Str("callsign", lookupErr.Callsign).Msg("Callsign not found in HamDB")
		return err
	}
	if lookupErr != nil {
		c.logger().ErrorWith().Err(err).Str("callsign", lookupErr.Callsign).Msg("HamDB lookup failed")
		return err
	}
	c.logger().ErrorWith().Err(err).Msg("HamDB lookup failed")
	return err
}

func (c *Client) logger() *logging.Service {
	if c.LoggerService == nil {
		return &logging.Service{}
	}
	return c.LoggerService
}
