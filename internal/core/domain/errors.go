package domain

import "go.trai.ch/zerr"

var (
	// ErrUnroutableActivity is returned when a task names an activity that has no route.
	ErrUnroutableActivity = zerr.New("unroutable activity")

	// ErrMissingDefault is returned when a task carries no parameter and its route has no default value.
	ErrMissingDefault = zerr.New("no parameter and no default value for activity")

	// ErrCacheMiss is returned when a digest does not reference a cached value.
	ErrCacheMiss = zerr.New("cache miss")

	// ErrPersistFailed is returned when a changed value cannot be written to durable storage.
	ErrPersistFailed = zerr.New("failed to persist value")

	// ErrMessaging is returned when the messaging transport fails during publish or reply wait.
	ErrMessaging = zerr.New("messaging failure")

	// ErrReplyTimeout is returned when no reply arrives within the configured reply timeout.
	ErrReplyTimeout = zerr.New("timed out waiting for reply")

	// ErrMalformedInput is returned when a task input envelope cannot be decoded.
	ErrMalformedInput = zerr.New("malformed task input")

	// ErrQueueUnavailable is returned when the task queue transport fails while polling.
	ErrQueueUnavailable = zerr.New("task queue unavailable")

	// ErrReportFailed is returned when a task outcome cannot be reported to the queue.
	ErrReportFailed = zerr.New("failed to report task outcome")

	// ErrInvalidRoutes is returned when the routing table fails start-up validation.
	ErrInvalidRoutes = zerr.New("invalid routing table")

	// ErrConfigReadFailed is returned when the config file cannot be read.
	ErrConfigReadFailed = zerr.New("failed to read config file")

	// ErrConfigParseFailed is returned when the config file cannot be parsed.
	ErrConfigParseFailed = zerr.New("failed to parse config file")

	// ErrUnsupportedConfigVersion is returned when the config file declares an unknown version.
	ErrUnsupportedConfigVersion = zerr.New("unsupported config version")

	// ErrInvalidConfig is returned when a config value is out of range.
	ErrInvalidConfig = zerr.New("invalid configuration")

	// ErrMissingQueueSettings is returned when serving without queue endpoint, domain or task list.
	ErrMissingQueueSettings = zerr.New("queue endpoint, domain and task list are required")
)
