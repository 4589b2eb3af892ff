// Package swapi talks to the Star Wars API: one request for one person and
// the decoding of its body. Failures come back tagged with apierr kinds.
package swapi

import (
	"context"
	"errors"
	"io"
	"net/http"
	"net/url"
	"strconv"

	"github.com/fogfish/opts"
	"github.com/rs/zerolog"

	"github.com/ib-77/tryfetch/internal/apierr"
	"github.com/ib-77/tryfetch/pkg/rop/future"
)

const (
	DefaultBaseURL  = "https://www.swapi.tech/api"
	DefaultPersonID = 1
)

type Config struct {
	BaseURL   string
	PersonID  int
	UserAgent string
}

var ErrNilHTTPClient = errors.New("swapi: nil http client")

type Option = opts.Option[Client]

// WithHTTPClient replaces http.DefaultClient.
func WithHTTPClient(hc *http.Client) Option {
	return opts.Type[Client](func(c *Client) error {
		if hc == nil {
			return ErrNilHTTPClient
		}
		c.http = hc
		return nil
	})
}

type Client struct {
	http      *http.Client
	url       string
	userAgent string
}

func New(cfg Config, options ...Option) (*Client, error) {
	base := cfg.BaseURL
	if base == "" {
		base = DefaultBaseURL
	}
	id := cfg.PersonID
	if id == 0 {
		id = DefaultPersonID
	}

	u, err := url.JoinPath(base, "people", strconv.Itoa(id))
	if err != nil {
		return nil, err
	}

	c := &Client{
		http:      http.DefaultClient,
		url:       u,
		userAgent: cfg.UserAgent,
	}
	if err := opts.Apply(c, options); err != nil {
		return nil, err
	}
	return c, nil
}

func (c *Client) URL() string {
	return c.url
}

// Fetch performs the request and reads the whole body. It fails only when no
// response was obtained; an unsuccessful status is still a Response.
func (c *Client) Fetch(ctx context.Context) (*Response, error) {
	log := zerolog.Ctx(ctx).With().Str("url", c.url).Logger()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.url, nil)
	if err != nil {
		return nil, apierr.Fetch(err)
	}
	req.Header.Set("Accept", "application/json")
	if c.userAgent != "" {
		req.Header.Set("User-Agent", c.userAgent)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		log.Debug().Err(err).Msg("request failed")
		return nil, apierr.Fetch(err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		log.Debug().Err(err).Int("status", resp.StatusCode).Msg("reading body failed")
		return nil, apierr.Fetch(err)
	}

	log.Debug().Int("status", resp.StatusCode).Int("bytes", len(body)).Msg("response received")
	return &Response{StatusCode: resp.StatusCode, Header: resp.Header, Body: body}, nil
}

// FetchAsync starts Fetch and returns the in-flight request.
func (c *Client) FetchAsync(ctx context.Context) *future.Future[*Response] {
	return future.Go(ctx, c.Fetch)
}
