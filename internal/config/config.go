// Package config loads optional defaults for the CLI from a YAML file and
// TRIORNG_* environment variables. Explicitly-set flags always win.
package config

import (
	"os"

	"github.com/pkg/errors"
	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"
)

// Config holds the file/env-configurable defaults. All of them map 1:1 to
// CLI flags.
type Config struct {
	Bits    int    `mapstructure:"bits" yaml:"bits"`
	Cascade string `mapstructure:"cascade" yaml:"cascade"`
	Output  string `mapstructure:"output" yaml:"output"`
	Verbose bool   `mapstructure:"verbose" yaml:"verbose"`
}

// Default returns the built-in defaults: the full cascade at 64 bits.
func Default() Config {
	return Config{
		Bits:    64,
		Cascade: "openssl,qiskit,cirq",
		Output:  "text",
		Verbose: false,
	}
}

// Load resolves the effective defaults: built-ins, overridden by TRIORNG_*
// environment variables, overridden by the YAML file at path (when non-empty).
func Load(path string) (Config, error) {
	v := viper.New()
	def := Default()
	v.SetDefault("bits", def.Bits)
	v.SetDefault("cascade", def.Cascade)
	v.SetDefault("output", def.Output)
	v.SetDefault("verbose", def.Verbose)

	v.SetEnvPrefix("TRIORNG")
	v.AutomaticEnv()

	if path != "" {
		v.SetConfigFile(path)
		v.SetConfigType("yaml")
		if err := v.ReadInConfig(); err != nil {
			return Config{}, errors.Wrapf(err, "read config file %s", path)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return Config{}, errors.Wrap(err, "unmarshal config")
	}
	return cfg, nil
}

// WriteDefault writes a commented default config file to path. It refuses to
// clobber an existing file.
func WriteDefault(path string) error {
	if _, err := os.Stat(path); err == nil {
		return errors.Errorf("config file %s already exists", path)
	}
	body, err := yaml.Marshal(Default())
	if err != nil {
		return errors.Wrap(err, "marshal default config")
	}
	header := []byte("# triorng configuration. Flags override these values;\n# TRIORNG_* environment variables fill in anything unset here.\n")
	if err := os.WriteFile(path, append(header, body...), 0o644); err != nil {
		return errors.Wrapf(err, "write config file %s", path)
	}
	return nil
}
