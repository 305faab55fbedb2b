package domain

import "time"

const (
	// ConfigFileName is the name of the default configuration file.
	ConfigFileName = "relay.yaml"

	// ConfigVersion is the only configuration file version understood by the loader.
	ConfigVersion = "1"

	// ResourceExt is the file extension of persisted channel values.
	ResourceExt = ".xml"

	// ReplySuffix is appended to a channel name to form its reply queue.
	ReplySuffix = "-reply"

	// DefaultResourceRoot is where changed values are persisted when no root is configured.
	DefaultResourceRoot = "/var/run/load-balancer-servo"

	// DefaultRedisAddress is the messaging endpoint used when none is configured.
	DefaultRedisAddress = "localhost:6379"

	// DefaultRegion is the signing region used for the queue service.
	DefaultRegion = "eucalyptus"

	// DefaultActivityVersion is the version under which activity types are registered.
	DefaultActivityVersion = "1.0"

	// DefaultFailureClass is the exception class reported in failure details.
	DefaultFailureClass = "com.eucalyptus.loadbalancing.workflow.LoadBalancingActivityException"

	// DefaultCacheTTL is how long a cached value survives without being touched.
	DefaultCacheTTL = 300 * time.Second

	// DefaultConnectTimeout bounds connection establishment to the queue service.
	DefaultConnectTimeout = 30 * time.Second

	// DefaultReportTimeout bounds a single completion or failure report.
	DefaultReportTimeout = 10 * time.Second

	// DirPerm is the default permission for directories (rwxr-x---).
	DirPerm = 0o750

	// FilePerm is the default permission for files (rw-r--r--).
	FilePerm = 0o644
)
