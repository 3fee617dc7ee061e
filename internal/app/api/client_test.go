package api

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"logview/internal/app/criteria"
	"logview/internal/app/errors"
	"logview/internal/app/model"
	"logview/internal/config"
	"logview/internal/config/logger"
)

func newTestClient(t *testing.T, handler http.HandlerFunc) Client {
	t.Helper()

	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	c, err := NewWithOptions(Options{BaseURL: server.URL, Timeout: time.Second}, logger.NewNopLogger())
	require.NoError(t, err)

	return c
}

// writeStatusLine answers with a raw status line so tests control the reason phrase
func writeStatusLine(w http.ResponseWriter, line string, body string) {
	conn, buf, err := w.(http.Hijacker).Hijack()
	if err != nil {
		return
	}
	defer conn.Close()

	_, _ = fmt.Fprintf(buf, "HTTP/1.1 %s\r\nContent-Length: %d\r\nConnection: close\r\n\r\n%s", line, len(body), body)
	_ = buf.Flush()
}

func Test_New(t *testing.T) {
	tests := []struct {
		name    string
		url     string
		wantErr bool
	}{
		{name: "http url", url: "http://localhost:8080"},
		{name: "https url with trailing slash", url: "https://logs.example.com/"},
		{name: "missing scheme", url: "localhost:8080", wantErr: true},
		{name: "unsupported scheme", url: "ftp://logs", wantErr: true},
		{name: "unparsable", url: "http://[::1", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := config.DefaultConfig()
			cfg.Server.URL = tt.url

			c, err := New(cfg, logger.NewNopLogger())
			if tt.wantErr {
				assert.ErrorIs(t, err, errors.ErrInvalidServerURL)
				assert.Nil(t, c)

				return
			}

			require.NoError(t, err)
			assert.NotNil(t, c)
		})
	}
}

func Test_Logs(t *testing.T) {
	var captured *http.Request

	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		captured = r

		w.Header().Set("Content-Type", "application/json")
		_, _ = io.WriteString(w, `[{"id":1,"timestamp":"2024-01-01T00:00:00Z","logger":"app.db","logger_id":3,"level":"info","message":"connected"}]`)
	})

	q := criteria.Defaults()
	q.Search = "db"
	q.ExcludeLoggers.ReplaceAll([]int{3, 1})

	entries, err := c.Logs(context.Background(), q)
	require.NoError(t, err)

	require.Len(t, entries, 1)
	assert.Equal(t, int64(1), entries[0].ID)
	assert.Equal(t, "app.db", entries[0].Logger)
	assert.Equal(t, 3, entries[0].LoggerID)
	assert.Equal(t, model.LevelInfo, entries[0].Level)

	require.NotNil(t, captured)
	assert.Equal(t, http.MethodGet, captured.Method)
	assert.Equal(t, PathLogs, captured.URL.Path)
	assert.Equal(t, []string{"1", "3"}, captured.URL.Query()["excludeLoggers"])
	assert.Equal(t, "db", captured.URL.Query().Get("search"))
	assert.Equal(t, "0", captured.URL.Query().Get("offset"))
	assert.Equal(t, "100", captured.URL.Query().Get("limit"))
	assert.NotContains(t, captured.URL.RawQuery, "%5B")
	assert.Equal(t, "application/json", captured.Header.Get("Accept"))

	_, err = uuid.Parse(captured.Header.Get(HeaderRequestID))
	assert.NoError(t, err)
}

func Test_Logs_ClampsPagination(t *testing.T) {
	var query string

	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		query = r.URL.RawQuery
		_, _ = io.WriteString(w, `[]`)
	})

	q := criteria.Defaults()
	q.Offset = -100
	q.Limit = 0

	entries, err := c.Logs(context.Background(), q)
	require.NoError(t, err)

	assert.Empty(t, entries)
	assert.NotNil(t, entries)
	assert.Equal(t, "limit=100&offset=0", query)
}

func Test_Logs_NullBody(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		_, _ = io.WriteString(w, `null`)
	})

	entries, err := c.Logs(context.Background(), criteria.Defaults())
	require.NoError(t, err)
	assert.Equal(t, []model.LogEntry{}, entries)
}

func Test_StatusFailures(t *testing.T) {
	tests := []struct {
		name     string
		call     func(c Client) error
		expected string
	}{
		{
			name: "logs",
			call: func(c Client) error {
				_, err := c.Logs(context.Background(), criteria.Defaults())
				return err
			},
			expected: "Logs request failed, status: 500 Internal Server Error",
		},
		{
			name: "single log",
			call: func(c Client) error {
				_, err := c.Log(context.Background(), 42)
				return err
			},
			expected: "Log request failed, status: 500 Internal Server Error",
		},
		{
			name: "loggers",
			call: func(c Client) error {
				_, err := c.Loggers(context.Background())
				return err
			},
			expected: "Loggers request failed, status: 500 Internal Server Error",
		},
		{
			name: "set level",
			call: func(c Client) error {
				_, err := c.SetLevel(context.Background(), 1, model.LevelWarn)
				return err
			},
			expected: "Loggers request failed, status: 500 Internal Server Error",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
				http.Error(w, "boom", http.StatusInternalServerError)
			})

			err := tt.call(c)
			require.Error(t, err)
			assert.Equal(t, tt.expected, err.Error())
		})
	}
}

func Test_StatusTextMustBeOK(t *testing.T) {
	tests := []struct {
		name     string
		line     string
		expected string
	}{
		{name: "200 with non standard reason", line: "200 Fine", expected: "Logs request failed, status: 200 Fine"},
		{name: "201 created", line: "201 Created", expected: "Logs request failed, status: 201 Created"},
		{name: "404 not found", line: "404 Not Found", expected: "Logs request failed, status: 404 Not Found"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
				writeStatusLine(w, tt.line, `[]`)
			})

			_, err := c.Logs(context.Background(), criteria.Defaults())
			require.Error(t, err)
			assert.Equal(t, tt.expected, err.Error())
		})
	}
}

func Test_StatusText(t *testing.T) {
	tests := []struct {
		name     string
		resp     *http.Response
		expected string
	}{
		{name: "standard", resp: &http.Response{StatusCode: 200, Status: "200 OK"}, expected: "OK"},
		{name: "custom", resp: &http.Response{StatusCode: 200, Status: "200 Fine"}, expected: "Fine"},
		{name: "bare phrase", resp: &http.Response{StatusCode: 200, Status: "OK"}, expected: "OK"},
		{name: "empty", resp: &http.Response{StatusCode: 200}, expected: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, StatusText(tt.resp))
		})
	}
}

func Test_Log(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/logs/42", r.URL.Path)
		_, _ = io.WriteString(w, `{"id":42,"logger":"app.http","loggerId":7,"level":"error","message":"failed","meta":{"status":502}}`)
	})

	entry, err := c.Log(context.Background(), 42)
	require.NoError(t, err)

	assert.Equal(t, int64(42), entry.ID)
	assert.Equal(t, 7, entry.LoggerID)
	assert.True(t, entry.HasMeta())
	assert.JSONEq(t, `{"status":502}`, string(entry.Meta))
}

func Test_Log_ZeroID(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		t.Error("no request expected")
	})

	_, err := c.Log(context.Background(), 0)
	assert.ErrorIs(t, err, errors.ErrInvalidLogID)
}

func Test_Loggers(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, PathLoggers, r.URL.Path)
		_, _ = io.WriteString(w, `[{"id":2,"name":"b","level":"warn"},{"id":1,"name":"a","level":"debug"}]`)
	})

	loggers, err := c.Loggers(context.Background())
	require.NoError(t, err)

	assert.Equal(t, []model.Logger{
		{ID: 2, Name: "b", Level: model.LevelWarn},
		{ID: 1, Name: "a", Level: model.LevelDebug},
	}, loggers)
}

func Test_SetLevel(t *testing.T) {
	var update model.LevelUpdate

	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPut, r.Method)
		assert.Equal(t, PathLoggers, r.URL.Path)
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))

		assert.NoError(t, json.NewDecoder(r.Body).Decode(&update))
		_, _ = io.WriteString(w, "Logger level updated")
	})

	reply, err := c.SetLevel(context.Background(), 5, model.LevelError)
	require.NoError(t, err)

	assert.Equal(t, "Logger level updated", reply)
	assert.Equal(t, model.LevelUpdate{ID: 5, Level: model.LevelError}, update)
}

func Test_SetLevel_InvalidLevel(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		t.Error("no request expected")
	})

	_, err := c.SetLevel(context.Background(), 5, model.Level("verbose"))
	assert.ErrorIs(t, err, errors.ErrInvalidLevel)
}

func Test_DecodeFailure(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		_, _ = io.WriteString(w, `not json`)
	})

	_, err := c.Loggers(context.Background())
	assert.ErrorIs(t, err, errors.ErrFailedToDecode)
}

func Test_TransportError(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	doer := NewMockDoer(ctrl)
	doer.EXPECT().Do(gomock.Any()).Return(nil, errors.New("timeout"))

	c, err := NewWithOptions(Options{BaseURL: "http://localhost:8080", Doer: doer}, logger.NewNopLogger())
	require.NoError(t, err)

	_, err = c.Loggers(context.Background())
	require.Error(t, err)
	assert.Equal(t, "timeout", err.Error())
}

func Test_Timeout(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		<-r.Context().Done()
	}))
	defer server.Close()

	c, err := NewWithOptions(Options{BaseURL: server.URL, Timeout: 20 * time.Millisecond}, logger.NewNopLogger())
	require.NoError(t, err)

	_, err = c.Loggers(context.Background())
	require.Error(t, err)
	assert.ErrorIs(t, err, context.DeadlineExceeded)
}

func Test_BasePathIsPreserved(t *testing.T) {
	var path string

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		path = r.URL.Path
		_, _ = io.WriteString(w, `[]`)
	}))
	defer server.Close()

	c, err := NewWithOptions(Options{BaseURL: server.URL + "/api/"}, logger.NewNopLogger())
	require.NoError(t, err)

	_, err = c.Loggers(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "/api/loggers", path)
}
