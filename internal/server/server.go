// Package server exposes the latest lesson report and almanac feed over
// loopback HTTP.
package server

import (
	"bytes"
	"context"
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strconv"
	"sync/atomic"
	"time"

	"github.com/tartampluch/go-datekoans/internal/config"
)

// snapshot stores one published run and its HTTP caching metadata.
// Both documents share an ETag so the report and the feed always describe
// the same run.
type snapshot struct {
	report       []byte
	almanac      []byte
	etag         string
	lastModified string // RFC1123 format required by HTTP headers
}

// ReportServer serves the rendered report and the almanac ICS feed.
type ReportServer struct {
	// cache uses atomic.Pointer for lock-free reads. The content is read
	// often and replaced rarely (once per run), so this beats a RWMutex on
	// the hot path.
	cache atomic.Pointer[snapshot]
	Port  string
}

// NewReportServer creates a new instance of the server.
func NewReportServer(port string) *ReportServer {
	return &ReportServer{
		Port: port,
	}
}

// Start initializes the HTTP server and blocks until the context is cancelled.
func (s *ReportServer) Start(ctx context.Context) error {
	if s.Port == "" {
		return errors.New(config.ErrPortRequired)
	}
	if n, err := strconv.Atoi(s.Port); err != nil || n < config.MinPort || n > config.MaxPort {
		return errors.New(config.ErrPortRange)
	}

	mux := http.NewServeMux()
	mux.HandleFunc(config.RouteReport, s.handleReport)
	mux.HandleFunc(config.RouteAlmanac, s.handleAlmanac)

	srv := &http.Server{
		Addr:         config.LocalhostBindAddr + config.AddrSeparator + s.Port,
		Handler:      mux,
		ReadTimeout:  config.ServerReadTimeout,
		WriteTimeout: config.ServerWriteTimeout,
		IdleTimeout:  config.ServerIdleTimeout,
	}

	serverError := make(chan error, config.ChannelBufferSize)

	go func() {
		slog.Info(config.MsgServerListen,
			config.LogKeyComponent, config.CompServer,
			config.LogKeyPort, s.Port,
		)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			serverError <- err
		}
	}()

	select {
	case <-ctx.Done():
		slog.Info(config.MsgServerStop, config.LogKeyComponent, config.CompServer)
		shutdownCtx, cancel := context.WithTimeout(context.Background(), config.ShutdownTimeout)
		defer cancel()

		if err := srv.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("%s: %w", config.ErrServerShutdown, err)
		}
		return nil

	case err := <-serverError:
		return fmt.Errorf("%s: %w", config.ErrServerStartup, err)
	}
}

// Update atomically replaces the served run.
func (s *ReportServer) Update(report, almanac []byte) {
	hash := sha256.New()
	hash.Write(report)
	hash.Write(almanac)
	etag := fmt.Sprintf(config.FormatETag, hex.EncodeToString(hash.Sum(nil)))

	item := &snapshot{
		report:       report,
		almanac:      almanac,
		etag:         etag,
		lastModified: time.Now().UTC().Format(http.TimeFormat),
	}

	// Readers see either the previous run or this one, never a mix.
	s.cache.Store(item)

	slog.Debug(config.MsgCacheUpdated,
		config.LogKeyComponent, config.CompServer,
		config.LogKeySizeBytes, len(report)+len(almanac),
		config.LogKeyETag, etag,
	)
}

func (s *ReportServer) handleReport(w http.ResponseWriter, r *http.Request) {
	// The report route doubles as the mux catch-all.
	if r.URL.Path != config.RouteReport {
		http.Error(w, config.HTTPMsgNotFound, http.StatusNotFound)
		return
	}
	s.serve(w, r, config.MimeTextPlain, func(item *snapshot) []byte { return item.report })
}

func (s *ReportServer) handleAlmanac(w http.ResponseWriter, r *http.Request) {
	s.serve(w, r, config.MimeTextCalendar, func(item *snapshot) []byte { return item.almanac })
}

// serve writes one document of the current snapshot with conditional-request
// support.
func (s *ReportServer) serve(w http.ResponseWriter, r *http.Request, mime string, pick func(*snapshot) []byte) {
	if r.Method != http.MethodGet && r.Method != http.MethodHead {
		w.Header().Set(config.HeaderAllow, config.AllowedMethods)
		http.Error(w, config.HTTPMsgMethodNotAll, http.StatusMethodNotAllowed)
		return
	}

	item := s.cache.Load()
	if item == nil {
		w.Header().Set(config.HeaderRetryAfter, config.RetryAfterSeconds)
		http.Error(w, config.HTTPMsgInitializing, http.StatusServiceUnavailable)
		return
	}

	w.Header().Set(config.HeaderContentType, mime)
	w.Header().Set(config.HeaderXContentType, config.MimeNoSniff)
	w.Header().Set(config.HeaderCacheControl, config.CacheControlPrivate)
	w.Header().Set(config.HeaderETag, item.etag)
	w.Header().Set(config.HeaderLastModified, item.lastModified)

	if match := r.Header.Get(config.HeaderIfNoneMatch); match == item.etag {
		w.WriteHeader(http.StatusNotModified)
		return
	}

	if since := r.Header.Get(config.HeaderIfModifiedSince); since != "" {
		if clientTime, err := time.Parse(http.TimeFormat, since); err == nil {
			if serverTime, err := time.Parse(http.TimeFormat, item.lastModified); err == nil {
				if !serverTime.After(clientTime) {
					w.WriteHeader(http.StatusNotModified)
					return
				}
			}
		}
	}

	if r.Method == http.MethodGet {
		if _, err := io.Copy(w, bytes.NewReader(pick(item))); err != nil {
			slog.Error(config.ErrWriteResp,
				config.LogKeyComponent, config.CompServer,
				config.LogKeyError, err,
			)
		}
	}
}
