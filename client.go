package sponsorblock

import (
	"fmt"

	httpclient "sponsorblock/http"
)

// DefaultBaseURL is the public segment service API root.
const DefaultBaseURL = "https://sponsor.ajay.app/api"

// DefaultService is the video host platform segments are looked up for.
const DefaultService = "YouTube"

// Config holds client configuration.
type Config struct {
	// BaseURL is the API root, without a trailing slash
	// (default: DefaultBaseURL).
	BaseURL string

	// Service is the video host platform to look up segments for
	// (default: DefaultService).
	Service string

	// PrivateSearches selects k-anonymity lookups: only a truncated hash of
	// the video ID is sent to the server, never the plaintext ID.
	PrivateSearches bool

	// HashPrefixLength is the number of leading hex characters of the video
	// ID hash sent on private searches. Must be within
	// [MinHashPrefixLength, MaxHashPrefixLength] (default: 4). Ignored when
	// PrivateSearches is false.
	HashPrefixLength int

	// HTTP configures the underlying transport. Nil uses transport defaults.
	HTTP *httpclient.Config
}

// DefaultConfig returns client configuration with safe defaults.
// Private searches are off, matching the public API's most common usage.
func DefaultConfig() *Config {
	return &Config{
		BaseURL:          DefaultBaseURL,
		Service:          DefaultService,
		PrivateSearches:  false,
		HashPrefixLength: MinHashPrefixLength,
		HTTP:             httpclient.DefaultConfig(),
	}
}

// Validate checks the configuration for values the API would reject.
func (c *Config) Validate() error {
	if c.BaseURL == "" {
		return fmt.Errorf("config: base URL required")
	}
	if c.Service == "" {
		return fmt.Errorf("config: service required")
	}
	if c.PrivateSearches &&
		(c.HashPrefixLength < MinHashPrefixLength || c.HashPrefixLength > MaxHashPrefixLength) {
		return fmt.Errorf("config: hash prefix length %d out of range [%d, %d]",
			c.HashPrefixLength, MinHashPrefixLength, MaxHashPrefixLength)
	}
	return nil
}

// Client fetches skip segments from a SponsorBlock-compatible service.
// A Client is safe for concurrent use: it holds no mutable state beyond the
// transport's connection pool.
type Client struct {
	cfg     Config
	http    *httpclient.Client
	metrics *Metrics
}

// New creates a new client with the given configuration. A nil config uses
// DefaultConfig.
func New(cfg *Config) (*Client, error) {
	if cfg == nil {
		cfg = DefaultConfig()
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &Client{
		cfg:     *cfg,
		http:    httpclient.New(cfg.HTTP),
		metrics: newMetrics(),
	}, nil
}

// Metrics returns the client's Prometheus collectors, for embedders that
// expose a metrics endpoint.
func (c *Client) Metrics() *Metrics {
	return c.metrics
}

// Close releases the transport's idle connections.
func (c *Client) Close() error {
	return c.http.Close()
}
