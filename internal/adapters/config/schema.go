package config

import "time"

// Relayfile represents the structure of the relay.yaml configuration file.
// Pointer fields distinguish "absent" from the zero value so that only the
// keys present in the file override defaults.
type Relayfile struct {
	Version      string                 `yaml:"version"`
	Queue        QueueDTO               `yaml:"queue"`
	Messaging    MessagingDTO           `yaml:"messaging"`
	Storage      StorageDTO             `yaml:"storage"`
	Cache        CacheDTO               `yaml:"cache"`
	Workers      *int                   `yaml:"workers"`
	FailureClass *string                `yaml:"failureClass"`
	Activities   map[string]ActivityDTO `yaml:"activities"`
}

// QueueDTO represents the queue section.
type QueueDTO struct {
	Endpoint        *string        `yaml:"endpoint"`
	Domain          *string        `yaml:"domain"`
	TaskList        *string        `yaml:"taskList"`
	Region          *string        `yaml:"region"`
	ConnectTimeout  *time.Duration `yaml:"connectTimeout"`
	MaxConnections  *int           `yaml:"maxConnections"`
	ActivityVersion *string        `yaml:"activityVersion"`
	Register        *bool          `yaml:"register"`
}

// MessagingDTO represents the messaging section.
type MessagingDTO struct {
	Address      *string        `yaml:"address"`
	Password     *string        `yaml:"password"`
	DB           *int           `yaml:"db"`
	ReplyTimeout *time.Duration `yaml:"replyTimeout"`
}

// StorageDTO represents the storage section.
type StorageDTO struct {
	Root *string `yaml:"root"`
}

// CacheDTO represents the cache section.
type CacheDTO struct {
	TTL *time.Duration `yaml:"ttl"`
}

// ActivityDTO represents one routed activity.
type ActivityDTO struct {
	Channel  string  `yaml:"channel"`
	Default  *string `yaml:"default"`
	Cache    bool    `yaml:"cache"`
	Resource string  `yaml:"resource"`
}
