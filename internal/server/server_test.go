package server

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tartampluch/go-datekoans/internal/config"
)

// -----------------------------------------------------------------------------
// Unit Tests (White-Box Testing of Handler Logic)
// -----------------------------------------------------------------------------

func TestHandleReport_ServesText(t *testing.T) {
	srv := NewReportServer("0")
	expectedReport := []byte("8 of 8 lessons passed\n")
	srv.Update(expectedReport, []byte(config.StubVCalendar))

	req := httptest.NewRequest(http.MethodGet, config.RouteReport, nil)
	w := httptest.NewRecorder()
	srv.handleReport(w, req)

	resp := w.Result()
	defer func() { _ = resp.Body.Close() }()

	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, config.MimeTextPlain, resp.Header.Get(config.HeaderContentType))
	assert.Equal(t, config.MimeNoSniff, resp.Header.Get(config.HeaderXContentType))
	assert.NotEmpty(t, resp.Header.Get(config.HeaderETag))

	body, _ := io.ReadAll(resp.Body)
	assert.Equal(t, expectedReport, body)
}

func TestHandleAlmanac_ServesCalendar(t *testing.T) {
	srv := NewReportServer("0")
	almanac := []byte("BEGIN:VCALENDAR\r\nVERSION:2.0\r\nEND:VCALENDAR")
	srv.Update([]byte("report"), almanac)

	req := httptest.NewRequest(http.MethodGet, config.RouteAlmanac, nil)
	w := httptest.NewRecorder()
	srv.handleAlmanac(w, req)

	resp := w.Result()
	defer func() { _ = resp.Body.Close() }()

	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, config.MimeTextCalendar, resp.Header.Get(config.HeaderContentType))

	body, _ := io.ReadAll(resp.Body)
	assert.Equal(t, almanac, body)
}

func TestHandleReport_UnknownPath(t *testing.T) {
	srv := NewReportServer("0")
	srv.Update([]byte("report"), []byte("almanac"))

	req := httptest.NewRequest(http.MethodGet, "/no-such-route", nil)
	w := httptest.NewRecorder()
	srv.handleReport(w, req)

	assert.Equal(t, http.StatusNotFound, w.Result().StatusCode)
}

// TestHandlers_SharedETag verifies that both documents advertise the same
// ETag, since they describe the same run.
func TestHandlers_SharedETag(t *testing.T) {
	srv := NewReportServer("0")
	srv.Update([]byte("report"), []byte("almanac"))

	reqReport := httptest.NewRequest(http.MethodGet, config.RouteReport, nil)
	wReport := httptest.NewRecorder()
	srv.handleReport(wReport, reqReport)

	reqAlmanac := httptest.NewRequest(http.MethodGet, config.RouteAlmanac, nil)
	wAlmanac := httptest.NewRecorder()
	srv.handleAlmanac(wAlmanac, reqAlmanac)

	etag := wReport.Result().Header.Get(config.HeaderETag)
	require.NotEmpty(t, etag)
	assert.Equal(t, etag, wAlmanac.Result().Header.Get(config.HeaderETag))
}

// TestHandler_Caching verifies If-None-Match handling returns 304.
func TestHandler_Caching(t *testing.T) {
	srv := NewReportServer("0")
	srv.Update([]byte("RUN_VERSION_1"), []byte("FEED_VERSION_1"))

	req1 := httptest.NewRequest(http.MethodGet, config.RouteReport, nil)
	w1 := httptest.NewRecorder()
	srv.handleReport(w1, req1)

	etag := w1.Result().Header.Get(config.HeaderETag)
	require.NotEmpty(t, etag, "Server must provide an ETag")

	req2 := httptest.NewRequest(http.MethodGet, config.RouteReport, nil)
	req2.Header.Set(config.HeaderIfNoneMatch, etag)
	w2 := httptest.NewRecorder()
	srv.handleReport(w2, req2)

	resp2 := w2.Result()
	defer func() { _ = resp2.Body.Close() }()

	assert.Equal(t, http.StatusNotModified, resp2.StatusCode)
	body, _ := io.ReadAll(resp2.Body)
	assert.Empty(t, body, "Body must be empty on 304 Not Modified")
}

func TestHandler_MethodNotAllowed(t *testing.T) {
	srv := NewReportServer("0")

	req := httptest.NewRequest(http.MethodPost, config.RouteReport, nil)
	w := httptest.NewRecorder()
	srv.handleReport(w, req)

	resp := w.Result()
	defer func() { _ = resp.Body.Close() }()

	assert.Equal(t, http.StatusMethodNotAllowed, resp.StatusCode)
	assert.NotEmpty(t, resp.Header.Get(config.HeaderAllow))
}

func TestHandler_Initializing(t *testing.T) {
	srv := NewReportServer("0")
	// No Update call: nothing published yet.

	req := httptest.NewRequest(http.MethodGet, config.RouteAlmanac, nil)
	w := httptest.NewRecorder()
	srv.handleAlmanac(w, req)

	resp := w.Result()
	defer func() { _ = resp.Body.Close() }()

	assert.Equal(t, http.StatusServiceUnavailable, resp.StatusCode)
	assert.Equal(t, config.RetryAfterSeconds, resp.Header.Get(config.HeaderRetryAfter))
}

func TestStart_PortValidation(t *testing.T) {
	tests := []struct {
		name string
		port string
		want string
	}{
		{"empty", "", config.ErrPortRequired},
		{"not a number", "abc", config.ErrPortRange},
		{"out of range", "70000", config.ErrPortRange},
		{"zero", "0", config.ErrPortRange},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srv := NewReportServer(tt.port)
			err := srv.Start(context.Background())
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.want)
		})
	}
}

// -----------------------------------------------------------------------------
// Concurrency Tests (Race Detection)
// -----------------------------------------------------------------------------

// TestServer_RaceCondition validates the thread-safety of atomic.Pointer usage
// under concurrent updates and reads. Run with `go test -race`.
func TestServer_RaceCondition(t *testing.T) {
	srv := NewReportServer("0")
	var wg sync.WaitGroup

	duration := 500 * time.Millisecond
	end := time.Now().Add(duration)

	for w := 0; w < 5; w++ {
		wg.Add(1)
		go func(id int) {
			defer wg.Done()
			i := 0
			for time.Now().Before(end) {
				data := fmt.Sprintf("RUN:%d-%d", id, i)
				srv.Update([]byte(data), []byte(data))
				i++
				time.Sleep(1 * time.Microsecond)
			}
		}(w)
	}

	for r := 0; r < 20; r++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for time.Now().Before(end) {
				req := httptest.NewRequest(http.MethodGet, config.RouteAlmanac, nil)
				w := httptest.NewRecorder()

				srv.handleAlmanac(w, req)

				code := w.Code
				if code != http.StatusOK && code != http.StatusServiceUnavailable {
					t.Errorf("Unexpected status code during race test: %d", code)
				}
			}
		}()
	}

	wg.Wait()
}

// -----------------------------------------------------------------------------
// Integration Tests (Real TCP Lifecycle)
// -----------------------------------------------------------------------------

// TestServer_Lifecycle spins up the actual TCP listener to verify network
// binding, both routes, and graceful shutdown.
func TestServer_Lifecycle(t *testing.T) {
	const port = "18199"

	srv := NewReportServer(port)
	ctx, cancel := context.WithCancel(context.Background())
	errChan := make(chan error, 1)

	go func() {
		errChan <- srv.Start(ctx)
	}()

	base := "http://" + config.LocalhostBindAddr + config.AddrSeparator + port

	require.Eventually(t, func() bool {
		resp, err := http.Get(base + config.RouteReport)
		if err != nil {
			return false
		}
		_ = resp.Body.Close()
		return true
	}, 2*time.Second, 50*time.Millisecond, "Server failed to bind/listen in time")

	// 1. Initial state: nothing published yet.
	resp, err := http.Get(base + config.RouteReport)
	require.NoError(t, err)
	assert.Equal(t, http.StatusServiceUnavailable, resp.StatusCode)
	_ = resp.Body.Close()

	// 2. Publish a run.
	srv.Update([]byte("8 of 8 lessons passed"), []byte(config.StubVCalendar))

	// 3. Both routes serve their documents.
	resp, err = http.Get(base + config.RouteReport)
	require.NoError(t, err)
	body, _ := io.ReadAll(resp.Body)
	_ = resp.Body.Close()
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Contains(t, string(body), "lessons passed")

	resp, err = http.Get(base + config.RouteAlmanac)
	require.NoError(t, err)
	body, _ = io.ReadAll(resp.Body)
	_ = resp.Body.Close()
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, config.MimeTextCalendar, resp.Header.Get(config.HeaderContentType))
	assert.Contains(t, string(body), "BEGIN:VCALENDAR")

	// 4. Graceful shutdown.
	cancel()

	select {
	case err := <-errChan:
		assert.NoError(t, err, "Server should shutdown gracefully without error")
	case <-time.After(5 * time.Second):
		t.Fatal("Server shutdown timed out")
	}
}
