package config

import (
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/imdario/mergo"
	"github.com/rotasegura/beacon/internal/exception"
	"github.com/rotasegura/beacon/internal/util"
	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"
)

// MaxLANGuesses upper bound on generated LAN guesses. Keeps the worst case
// sweep time bounded.
const MaxLANGuesses = 20

// LANConfig represents the bounded LAN guess heuristic
type LANConfig struct {
	// Networks are CIDR blocks or plain hosts
	Networks []string `yaml:"networks"`
	// HostMin and HostMax bound the last octet taken from each CIDR block
	HostMin            int  `yaml:"host_min"`
	HostMax            int  `yaml:"host_max"`
	Limit              int  `yaml:"limit"`
	IncludeLocalSubnet bool `yaml:"include_local_subnet"`
}

// Config represents the data structure of our user provided yaml configuration
type Config struct {
	Platform          string        `yaml:"platform"`
	Ports             []int         `yaml:"ports"`
	StatusPorts       []int         `yaml:"status_ports"`
	HealthPath        string        `yaml:"health_path"`
	ProbeTimeout      time.Duration `yaml:"probe_timeout"`
	DiscoveryDeadline time.Duration `yaml:"discovery_deadline"`
	RequestTimeout    time.Duration `yaml:"request_timeout"`
	EmulatorAlias     string        `yaml:"emulator_alias"`
	Loopback          []string      `yaml:"loopback"`
	ExtraHosts        []string      `yaml:"extra_hosts"`
	LAN               LANConfig     `yaml:"lan"`
}

// Default returns the built in configuration
func Default() *Config {
	return &Config{
		Platform:          "device",
		Ports:             []int{5000},
		StatusPorts:       []int{5000, 3000},
		HealthPath:        "/health",
		ProbeTimeout:      2 * time.Second,
		DiscoveryDeadline: 30 * time.Second,
		RequestTimeout:    15 * time.Second,
		EmulatorAlias:     "10.0.2.2",
		Loopback:          []string{"localhost", "127.0.0.1"},
		ExtraHosts:        []string{},
		LAN: LANConfig{
			Networks: []string{
				"192.168.1.0/24",
				"192.168.0.0/24",
				"192.168.100.0/24",
				"10.0.0.0/24",
			},
			HostMin:            1,
			HostMax:            5,
			Limit:              MaxLANGuesses,
			IncludeLocalSubnet: false,
		},
	}
}

// New returns umarshaled data structure of user provided config
func New(confPath string) (*Config, error) {
	var config Config

	raw, err := os.ReadFile(confPath)

	if err != nil {
		return nil, err
	}

	if err := yaml.Unmarshal(raw, &config); err != nil {
		return nil, err
	}

	return &config, nil
}

// Load returns the user provided config at confPath layered over the
// defaults. A missing file yields the defaults.
func Load(confPath string) (*Config, error) {
	defaults := Default()

	if confPath == "" {
		return defaults, nil
	}

	conf, err := New(confPath)

	if errors.Is(err, os.ErrNotExist) {
		return defaults, nil
	}

	if err != nil {
		return nil, err
	}

	if err := mergo.Merge(conf, defaults); err != nil {
		return nil, err
	}

	if err := conf.Validate(); err != nil {
		return nil, err
	}

	return conf, nil
}

// Validate checks bounds that the discovery layer relies on
func (c *Config) Validate() error {
	if len(c.Ports) == 0 {
		return fmt.Errorf("%w: at least one application port is required", exception.ErrInvalidConfig)
	}

	seen := []int{}

	for _, p := range c.Ports {
		if p <= 0 || p > 65535 {
			return fmt.Errorf("%w: port out of range: %d", exception.ErrInvalidConfig, p)
		}

		if util.SliceIncludes(seen, p) {
			return fmt.Errorf("%w: duplicate port: %d", exception.ErrInvalidConfig, p)
		}

		seen = append(seen, p)
	}

	if c.ProbeTimeout <= 0 {
		return fmt.Errorf("%w: probe timeout must be positive", exception.ErrInvalidConfig)
	}

	if c.LAN.Limit > MaxLANGuesses {
		return fmt.Errorf(
			"%w: lan guess limit %d exceeds %d",
			exception.ErrInvalidConfig,
			c.LAN.Limit,
			MaxLANGuesses,
		)
	}

	if c.LAN.HostMin < 1 || c.LAN.HostMax > 254 || c.LAN.HostMin > c.LAN.HostMax {
		return fmt.Errorf(
			"%w: invalid lan host range %d-%d",
			exception.ErrInvalidConfig,
			c.LAN.HostMin,
			c.LAN.HostMax,
		)
	}

	return nil
}

// Write saves conf to the config file path shared through viper
func Write(conf Config) error {
	configFile, ok := viper.Get("config-file").(string)

	if !ok || configFile == "" {
		return errors.New("failed to find config file path")
	}

	file, err := os.Create(configFile)

	if err != nil {
		return err
	}

	defer file.Close()

	encoder := yaml.NewEncoder(file)
	encoder.SetIndent(2)

	return encoder.Encode(conf)
}
