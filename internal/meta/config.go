package meta

import (
	"fmt"
	"io/ioutil"
	"math"
	"time"

	"gopkg.in/yaml.v3"
)

// DefaultPollInterval is used when the configuration omits poll_interval.
const DefaultPollInterval = 10 * time.Millisecond

// maxTimeout is the longest timeout representable in one period of a 32-bit millisecond counter.
const maxTimeout = time.Duration(math.MaxUint32) * time.Millisecond

// ApplicationConfig is a top-level block for application-level meta configuration.
type ApplicationConfig struct {
	SentryDSN string `yaml:"sentry_dsn"`
}

// MetricsConfig is a top-level block for metrics configuration.
type MetricsConfig struct {
	Statsd *struct {
		Address    string  `yaml:"addr"`
		SampleRate float32 `yaml:"sample_rate"`
	} `yaml:"statsd"`
}

// TickConfig is a top-level block for tick source configuration.
type TickConfig struct {
	// Start is the counter value the monotonic source reports at startup. Values close to
	// 4294967295 make the counter wrap shortly after launch.
	Start uint32 `yaml:"start"`
}

// WatchConfig describes a single named watch.
type WatchConfig struct {
	Name      string        `yaml:"name"`
	Timeout   time.Duration `yaml:"timeout"`
	AutoReset bool          `yaml:"auto_reset"`
}

// Config describes all application configuration options.
type Config struct {
	Application  *ApplicationConfig `yaml:"application"`
	Metrics      *MetricsConfig     `yaml:"metrics"`
	Tick         *TickConfig        `yaml:"tick"`
	PollInterval time.Duration      `yaml:"poll_interval"`
	Watches      []WatchConfig      `yaml:"watches"`
}

// ParseConfig parses a Config struct instance from a file specified as a path on disk.
func ParseConfig(path string) (*Config, error) {
	data, err := ioutil.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("config: error reading config: err=%v", err)
	}

	return ParseConfigData(data)
}

// ParseConfigData parses and validates a Config from raw YAML.
func ParseConfigData(data []byte) (*Config, error) {
	var cfg *Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("config: error parsing config: err=%v", err)
	}

	if cfg == nil {
		return nil, fmt.Errorf("config: empty config")
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}

	if cfg.Tick == nil {
		cfg.Tick = &TickConfig{}
	}

	if cfg.PollInterval == 0 {
		cfg.PollInterval = DefaultPollInterval
	}

	return cfg, nil
}

// validate the contents of the configuration. Returns an error if validation failed; nil otherwise.
func (c *Config) validate() error {
	/* Metrics */

	// Users can omit the metrics block entirely to disable metrics reporting.
	if c.Metrics != nil && c.Metrics.Statsd != nil {
		if c.Metrics.Statsd.Address == "" {
			return fmt.Errorf("config: missing metrics statsd address")
		}

		if c.Metrics.Statsd.SampleRate < 0 || c.Metrics.Statsd.SampleRate > 1 {
			return fmt.Errorf("config: statsd sample rate must be in range [0.0, 1.0]")
		}
	}

	/* Polling */

	if c.PollInterval < 0 {
		return fmt.Errorf("config: poll interval must not be negative: interval=%v", c.PollInterval)
	}

	/* Watches */

	if len(c.Watches) == 0 {
		return fmt.Errorf("config: no watches specified")
	}

	seen := make(map[string]bool, len(c.Watches))
	for idx, watch := range c.Watches {
		if watch.Name == "" {
			return fmt.Errorf("config: missing watch name: idx=%d", idx)
		}

		if seen[watch.Name] {
			return fmt.Errorf("config: duplicate watch name: idx=%d name=%s", idx, watch.Name)
		}
		seen[watch.Name] = true

		if watch.Timeout < 0 {
			return fmt.Errorf("config: watch timeout must not be negative: name=%s", watch.Name)
		}

		// The checker cannot tell a timeout beyond one counter period from a shorter one.
		if watch.Timeout > maxTimeout {
			return fmt.Errorf(
				"config: watch timeout exceeds counter period: name=%s timeout=%v max=%v",
				watch.Name,
				watch.Timeout,
				maxTimeout,
			)
		}
	}

	return nil
}
