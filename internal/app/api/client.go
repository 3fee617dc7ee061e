//go:generate mockgen -source=client.go -destination=client_mock.go -package=api

package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"

	"logview/internal/app/criteria"
	"logview/internal/app/errors"
	"logview/internal/app/model"
	"logview/internal/config"
	"logview/internal/config/logger"
)

// Endpoints and headers of the log store
const (
	PathLogs    = "/logs"
	PathLoggers = "/loggers"

	HeaderRequestID = "X-Request-ID"

	statusOK = "OK"
)

// Request kinds used in failure messages
const (
	KindLogs    = "Logs"
	KindLog     = "Log"
	KindLoggers = "Loggers"
)

// Client talks to the log store over HTTP
type Client interface {
	Logs(ctx context.Context, c criteria.Criteria) ([]model.LogEntry, error)
	Log(ctx context.Context, id int64) (model.LogEntry, error)
	Loggers(ctx context.Context) ([]model.Logger, error)
	SetLevel(ctx context.Context, id int, level model.Level) (string, error)
}

// Doer executes HTTP requests; *http.Client satisfies it
type Doer interface {
	Do(req *http.Request) (*http.Response, error)
}

// Options configures a client
type Options struct {
	BaseURL string
	Timeout time.Duration
	Doer    Doer
}

// client implements the Client interface
type client struct {
	base    *url.URL
	timeout time.Duration
	doer    Doer
	log     logger.Logger
}

// New creates a client for the configured server
func New(cfg *config.Config, log logger.Logger) (Client, error) {
	return NewWithOptions(Options{
		BaseURL: cfg.Server.URL,
		Timeout: cfg.Server.Timeout,
	}, log)
}

// NewWithOptions creates a client from explicit options
func NewWithOptions(opts Options, log logger.Logger) (Client, error) {
	base, err := url.Parse(strings.TrimRight(opts.BaseURL, "/"))
	if err != nil {
		return nil, fmt.Errorf("%w: '%s': %w", errors.ErrInvalidServerURL, opts.BaseURL, err)
	}

	if base.Scheme != "http" && base.Scheme != "https" || base.Host == "" {
		return nil, fmt.Errorf("%w: '%s'", errors.ErrInvalidServerURL, opts.BaseURL)
	}

	doer := opts.Doer
	if doer == nil {
		doer = &http.Client{}
	}

	return &client{
		base:    base,
		timeout: opts.Timeout,
		doer:    doer,
		log:     log,
	}, nil
}

// Logs fetches one page of entries matching the criteria
func (c *client) Logs(ctx context.Context, q criteria.Criteria) ([]model.LogEntry, error) {
	var entries []model.LogEntry

	if err := c.call(ctx, KindLogs, http.MethodGet, PathLogs, q.Values(), nil, &entries); err != nil {
		return nil, err
	}

	if entries == nil {
		entries = []model.LogEntry{}
	}

	return entries, nil
}

// Log fetches a single entry by id
func (c *client) Log(ctx context.Context, id int64) (model.LogEntry, error) {
	var entry model.LogEntry

	if id == 0 {
		return entry, errors.ErrInvalidLogID
	}

	path := PathLogs + "/" + strconv.FormatInt(id, 10)
	if err := c.call(ctx, KindLog, http.MethodGet, path, nil, nil, &entry); err != nil {
		return model.LogEntry{}, err
	}

	return entry, nil
}

// Loggers fetches all known loggers
func (c *client) Loggers(ctx context.Context) ([]model.Logger, error) {
	var loggers []model.Logger

	if err := c.call(ctx, KindLoggers, http.MethodGet, PathLoggers, nil, nil, &loggers); err != nil {
		return nil, err
	}

	if loggers == nil {
		loggers = []model.Logger{}
	}

	return loggers, nil
}

// SetLevel changes the effective level of a logger and returns the server's text reply
func (c *client) SetLevel(ctx context.Context, id int, level model.Level) (string, error) {
	if !level.Valid() {
		return "", fmt.Errorf("%w: '%s'", errors.ErrInvalidLevel, level)
	}

	body, err := json.Marshal(model.LevelUpdate{ID: id, Level: level})
	if err != nil {
		return "", err
	}

	var reply []byte
	if err := c.call(ctx, KindLoggers, http.MethodPut, PathLoggers, nil, body, &reply); err != nil {
		return "", err
	}

	return string(reply), nil
}

// call performs one request and decodes the reply into out; *[]byte receives the raw body
func (c *client) call(ctx context.Context, kind, method, path string, query url.Values, body []byte, out any) error {
	if c.timeout > 0 {
		var cancel context.CancelFunc

		ctx, cancel = context.WithTimeout(ctx, c.timeout)
		defer cancel()
	}

	u := *c.base
	u.Path = c.base.Path + path

	if query != nil {
		u.RawQuery = query.Encode()
	}

	var reader io.Reader
	if body != nil {
		reader = bytes.NewReader(body)
	}

	req, err := http.NewRequestWithContext(ctx, method, u.String(), reader)
	if err != nil {
		return fmt.Errorf("%w: %w", errors.ErrFailedToCreateRequest, err)
	}

	requestID := uuid.New().String()

	req.Header.Set("Accept", "application/json")
	req.Header.Set(HeaderRequestID, requestID)

	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	c.log.Debug().Str("request_id", requestID).Msgf("%s %s", method, u.String())

	resp, err := c.doer.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if text := StatusText(resp); text != statusOK {
		_, _ = io.Copy(io.Discard, resp.Body)
		return fmt.Errorf("%s request failed, status: %d %s", kind, resp.StatusCode, text)
	}

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return err
	}

	if raw, ok := out.(*[]byte); ok {
		*raw = data
		return nil
	}

	if err := json.Unmarshal(data, out); err != nil {
		return fmt.Errorf("%w: %w", errors.ErrFailedToDecode, err)
	}

	return nil
}

// StatusText returns the reason phrase of a response, e.g. "OK" for "200 OK"
func StatusText(resp *http.Response) string {
	return strings.TrimSpace(strings.TrimPrefix(resp.Status, strconv.Itoa(resp.StatusCode)))
}
