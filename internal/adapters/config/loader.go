// Package config provides the configuration loader for relay.
package config

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"slices"

	"go.trai.ch/relay/internal/core/domain"
	"go.trai.ch/relay/internal/core/ports"
	"go.trai.ch/zerr"
	"gopkg.in/yaml.v3"
)

var _ ports.ConfigLoader = (*Loader)(nil)

// Loader implements ports.ConfigLoader using a YAML file.
type Loader struct {
	logger ports.Logger
}

// NewLoader creates a new configuration loader.
func NewLoader(logger ports.Logger) *Loader {
	return &Loader{logger: logger}
}

// Load reads the configuration at path and merges it over the defaults.
// An empty path looks for relay.yaml in the working directory and falls back
// to the defaults when it does not exist.
func (l *Loader) Load(path string) (*domain.Config, error) {
	if path == "" {
		path = domain.ConfigFileName
		if _, err := os.Stat(path); errors.Is(err, fs.ErrNotExist) {
			l.logger.Debug("no configuration file, using defaults", "path", path)
			return domain.DefaultConfig(), nil
		}
	}

	cfg, err := Load(path)
	if err != nil {
		return nil, err
	}

	l.logger.Debug("configuration loaded", "path", path, "activities", len(cfg.Routes))
	return cfg, nil
}

// Load reads a configuration file from the given path.
func Load(path string) (*domain.Config, error) {
	data, err := os.ReadFile(filepath.Clean(path)) //nolint:gosec // path is provided by user
	if err != nil {
		return nil, errors.Join(domain.ErrConfigReadFailed, zerr.With(zerr.Wrap(err, "read failed"), "path", path))
	}
	return Parse(data)
}

// Parse decodes a configuration document and merges it over the defaults.
func Parse(data []byte) (*domain.Config, error) {
	var file Relayfile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, errors.Join(domain.ErrConfigParseFailed, zerr.Wrap(err, "invalid yaml"))
	}

	if file.Version != "" && file.Version != domain.ConfigVersion {
		return nil, errors.Join(
			domain.ErrUnsupportedConfigVersion,
			zerr.With(zerr.New("unknown version"), "version", file.Version),
		)
	}

	cfg := domain.DefaultConfig()
	file.apply(cfg)

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (f *Relayfile) apply(cfg *domain.Config) {
	q := &cfg.Queue
	set(&q.Endpoint, f.Queue.Endpoint)
	set(&q.Domain, f.Queue.Domain)
	set(&q.TaskList, f.Queue.TaskList)
	set(&q.Region, f.Queue.Region)
	set(&q.ConnectTimeout, f.Queue.ConnectTimeout)
	set(&q.MaxConnections, f.Queue.MaxConnections)
	set(&q.ActivityVersion, f.Queue.ActivityVersion)
	set(&q.Register, f.Queue.Register)

	m := &cfg.Messaging
	set(&m.Address, f.Messaging.Address)
	set(&m.Password, f.Messaging.Password)
	set(&m.DB, f.Messaging.DB)
	set(&m.ReplyTimeout, f.Messaging.ReplyTimeout)

	set(&cfg.Storage.Root, f.Storage.Root)
	set(&cfg.Cache.TTL, f.Cache.TTL)
	set(&cfg.Workers, f.Workers)
	set(&cfg.FailureClass, f.FailureClass)

	if len(f.Activities) > 0 {
		cfg.Routes = routes(f.Activities)
	}
}

// routes converts the activities map into routes ordered by activity name.
func routes(activities map[string]ActivityDTO) []domain.Route {
	names := make([]string, 0, len(activities))
	for name := range activities {
		names = append(names, name)
	}
	slices.Sort(names)

	res := make([]domain.Route, 0, len(names))
	for _, name := range names {
		dto := activities[name]
		res = append(res, domain.Route{
			Activity: name,
			Channel:  dto.Channel,
			Default:  dto.Default,
			Cache:    dto.Cache,
			Resource: dto.Resource,
		})
	}
	return res
}

func set[T any](dst *T, src *T) {
	if src != nil {
		*dst = *src
	}
}
