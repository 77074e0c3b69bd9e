package config

import (
	"io/fs"
	"time"
)

// -----------------------------------------------------------------------------
// Build Information
// -----------------------------------------------------------------------------

// Build variables are injected via -ldflags.
var (
	Version = "dev"
	Commit  = "none"
	Date    = "unknown"
)

// -----------------------------------------------------------------------------
// Application Constants
// -----------------------------------------------------------------------------

const (
	AppName           = "Go Date Koans"
	AppID             = "com.github.tartampluch.go-datekoans"
	LocalhostBindAddr = "127.0.0.1"
	LogFileName       = "app.log"
)

// -----------------------------------------------------------------------------
// Exit Codes
// -----------------------------------------------------------------------------

const (
	ExitCodeSuccess = 0
	ExitCodeError   = 1
	// ExitCodeFailedChecks signals that the run completed but at least one
	// lesson check did not match its expected value.
	ExitCodeFailedChecks = 2
)

// -----------------------------------------------------------------------------
// System & File Permissions
// -----------------------------------------------------------------------------

const (
	// FilePermUserRW represents -rw------- (Read/Write for owner only).
	// Used for the log file.
	FilePermUserRW fs.FileMode = 0600

	// DirPermUserRWX represents drwx------ (Read/Write/Exec for owner only).
	// Used for creating the cache directory.
	DirPermUserRWX fs.FileMode = 0700

	// ChannelBufferSize defines the standard buffer size for internal signaling channels.
	ChannelBufferSize = 1
)

// -----------------------------------------------------------------------------
// CLI Flags & Descriptions
// -----------------------------------------------------------------------------

const (
	FlagVersion     = "version"
	FlagDebug       = "debug"
	FlagLang        = "lang"
	FlagServe       = "serve"
	FlagPort        = "port"
	FlagDescVersion = "Show application version and exit"
	FlagDescDebug   = "Enable debug logging to stdout"
	FlagDescLang    = "Report language (ISO 639-1, e.g. en, fr)"
	FlagDescServe   = "Keep running and serve the report and almanac over HTTP"
	FlagDescPort    = "TCP port for the local HTTP server"

	MsgVersionOutput = "%s version %s (%s/%s)\n"
)

// -----------------------------------------------------------------------------
// Defaults
// -----------------------------------------------------------------------------

const (
	DefaultPort     = "18080"
	DefaultLanguage = "en"

	// UIDSalt seeds deterministic event UID generation for the almanac feed.
	UIDSalt = "go-datekoans-v1-"
)

// SupportedLanguages defines the list of available report languages (ISO 639-1).
var SupportedLanguages = []string{"en", "fr"}

// -----------------------------------------------------------------------------
// Date & Clock Layouts
// -----------------------------------------------------------------------------

// The slash layout and the two clock layouts are external contracts: report
// consumers and the lesson checks rely on these exact textual forms.
const (
	// LayoutDateISO renders a calendar date as 2006-01-02.
	LayoutDateISO = "2006-01-02"

	// LayoutDateTimeSlash renders a combined value as MM/dd/yyyy HH:mm
	// (e.g. "07/04/2016 02:33").
	LayoutDateTimeSlash = "01/02/2006 15:04"

	// LayoutClockMinute parses/renders an hour:minute clock ("07:30").
	LayoutClockMinute = "15:04"

	// LayoutClockSecond parses/renders an hour:minute:second clock ("02:30:45").
	LayoutClockSecond = "15:04:05"

	// LayoutDateTimeISO renders a combined value as 2006-01-02T15:04:05.
	LayoutDateTimeISO = "2006-01-02T15:04:05"
)

// ISO-8601 period components, used by the Period string form (e.g. "P1Y3M").
const (
	ISOPeriodPrefix = "P"
	ISOPeriodZero   = "P0D"
	ISOYear         = "Y"
	ISOMonth        = "M"
	ISODay          = "D"
)

// -----------------------------------------------------------------------------
// Standards: iCalendar (Almanac Feed)
// -----------------------------------------------------------------------------

const (
	ICalVersion = "2.0"
	ICalProdid  = "-//Go Date Koans//Almanac//EN"
	ICalCalName = "Date Koans Almanac"
	ICalMethod  = "PUBLISH"
	ICalScale   = "GREGORIAN"
	ICalDomain  = "godatekoans"

	PropUID        = "UID"
	PropSummary    = "SUMMARY"
	PropDTStart    = "DTSTART"
	PropDTStamp    = "DTSTAMP"
	PropRefresh    = "REFRESH-INTERVAL"
	PropVersion    = "VERSION"
	PropProdid     = "PRODID"
	PropXWRCalName = "X-WR-CALNAME"
	PropCalScale   = "CALSCALE"
	PropMethod     = "METHOD"

	DefaultICalRefresh = 24 * time.Hour

	// UID Generation
	UIDHashLength   = 16
	FormatHashInput = "%s|%s|%s"
	FormatUID       = "%s@%s"
)

// StubVCalendar is the minimal valid iCalendar object used when no events are
// present, so feed consumers never see an invalid body.
const StubVCalendar = "BEGIN:VCALENDAR\r\nVERSION:2.0\r\nPRODID:" + ICalProdid + "\r\nEND:VCALENDAR\r\n"

// -----------------------------------------------------------------------------
// Network & Timeouts
// -----------------------------------------------------------------------------

const (
	ShutdownTimeout    = 5 * time.Second
	ServerReadTimeout  = 10 * time.Second
	ServerWriteTimeout = 30 * time.Second
	ServerIdleTimeout  = 60 * time.Second
	RetryAfterSeconds  = "10"
	AllowedMethods     = "GET, HEAD"
	RouteReport        = "/"
	RouteAlmanac       = "/almanac.ics"
	AddrSeparator      = ":"

	MinPort = 1
	MaxPort = 65535
)

// -----------------------------------------------------------------------------
// HTTP Headers & MIME Types
// -----------------------------------------------------------------------------

const (
	HeaderContentType     = "Content-Type"
	HeaderCacheControl    = "Cache-Control"
	HeaderETag            = "ETag"
	HeaderLastModified    = "Last-Modified"
	HeaderRetryAfter      = "Retry-After"
	HeaderAllow           = "Allow"
	HeaderXContentType    = "X-Content-Type-Options"
	HeaderIfNoneMatch     = "If-None-Match"
	HeaderIfModifiedSince = "If-Modified-Since"

	MimeTextPlain       = "text/plain; charset=utf-8"
	MimeTextCalendar    = "text/calendar; charset=utf-8"
	MimeNoSniff         = "nosniff"
	CacheControlPrivate = "private, no-cache"

	// FormatETag expects a string argument.
	FormatETag = `"%s"`
)

// -----------------------------------------------------------------------------
// Translation Keys (I18n)
// -----------------------------------------------------------------------------

const (
	TKeyReportHeader  = "report_header"
	TKeyReportPass    = "report_pass"
	TKeyReportFail    = "report_fail"
	TKeyReportCheck   = "report_check"
	TKeyReportError   = "report_error"
	TKeyReportSummary = "report_summary"

	// Lesson titles are keyed as TKeyLessonPrefix + slug.
	TKeyLessonPrefix = "lesson_"
)

// -----------------------------------------------------------------------------
// Error Messages (Technical/Logs)
// -----------------------------------------------------------------------------

const (
	ErrDateParse      = "unable to parse calendar date"
	ErrClockParse     = "unable to parse time-of-day"
	ErrPortRequired   = "server port is required"
	ErrPortRange      = "server port must be between 1 and 65535"
	ErrServerStartup  = "server startup failed"
	ErrServerShutdown = "server shutdown failed"
	ErrICalEncode     = "failed to encode almanac feed"
	ErrTitlerMissing  = "internal error: lesson titler is not initialized"
	ErrWriteResp      = "failed to write response body"
	ErrLocalesAccess  = "failed to access embedded locales"
	ErrLocaleLoad     = "failed to load locale file"
	ErrLogFile        = "failed to open log file"
	ErrCacheDir       = "could not determine user cache dir"
	ErrCreateDir      = "could not create app cache dir"
	ErrAppFailed      = "application failed unexpectedly"
)

// -----------------------------------------------------------------------------
// HTTP Server Responses
// -----------------------------------------------------------------------------

const (
	HTTPMsgInitializing = "Report initializing, please try again shortly."
	HTTPMsgMethodNotAll = "Method Not Allowed"
	HTTPMsgNotFound     = "Not Found"
)

// -----------------------------------------------------------------------------
// Log Messages
// -----------------------------------------------------------------------------

const (
	MsgAppStarting   = "Starting application"
	MsgAppStop       = "Application stopped gracefully"
	MsgRunStarted    = "Lesson run started..."
	MsgRunSuccess    = "Lesson run completed"
	MsgLessonDone    = "Lesson evaluated"
	MsgServerListen  = "HTTP server listening"
	MsgServerStop    = "Shutting down HTTP server..."
	MsgCacheUpdated  = "Report cache updated"
	MsgLocaleSkip    = "Skipping non-locale file"
	MsgLocaleBadName = "Skipping malformed locale filename"
	MsgLocaleLoaded  = "Locale loaded successfully"
	MsgTransMissing  = "Missing translation key"
	MsgLangFallback  = "Unknown language requested, falling back to default"
	MsgLogWarning    = "Warning: %s at %s: %v\n"
)

// -----------------------------------------------------------------------------
// Structured Logging Keys (slog)
// -----------------------------------------------------------------------------

const (
	LogKeyComponent = "component"
	LogKeyError     = "error"
	LogKeyFile      = "file"
	LogKeyLang      = "lang"
	LogKeyKey       = "key"
	LogKeyPort      = "port"
	LogKeyLesson    = "lesson"
	LogKeyPassed    = "passed"
	LogKeyFailed    = "failed"
	LogKeyTotal     = "total"
	LogKeyChecks    = "checks"
	LogKeyStats     = "stats"
	LogKeySizeBytes = "size_bytes"
	LogKeyETag      = "etag"
	LogKeyDuration  = "duration_ms"

	// Startup Info Keys
	LogKeyBuild   = "build"
	LogKeyApp     = "app"
	LogKeyVersion = "version"
	LogKeyGoVer   = "go_version"
	LogKeyEnv     = "env"
	LogKeyOS      = "os"
	LogKeyArch    = "arch"
	LogKeyPID     = "pid"
)

// -----------------------------------------------------------------------------
// Log Components
// -----------------------------------------------------------------------------

const (
	CompRunner = "runner"
	CompServer = "server"
	CompI18n   = "i18n"
	CompMain   = "main"
)
