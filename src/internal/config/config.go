package config

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"

	"github.com/pelletier/go-toml/v2"

	"github.com/maksimkurb/logsrv-assist/src/internal/errors"
	"github.com/maksimkurb/logsrv-assist/src/internal/log"
)

func LoadConfig(configPath string) (*Config, error) {
	configFile := filepath.Clean(configPath)

	if !filepath.IsAbs(configFile) {
		if path, err := filepath.Abs(configFile); err != nil {
			return nil, errors.NewConfigError("failed to get absolute path", err)
		} else {
			configFile = path
		}
	}

	content, err := os.ReadFile(configFile)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, errors.NewConfigError(fmt.Sprintf("configuration file not found: %s", configFile), nil)
		}
		return nil, errors.NewConfigError("failed to read config file", err)
	}

	var config Config
	if err := toml.Unmarshal(content, &config); err != nil {
		var derr *toml.DecodeError
		if errors.As(err, &derr) {
			log.Errorf("%s", derr.String())
			row, col := derr.Position()
			return nil, errors.NewConfigError(fmt.Sprintf("failed to parse config file at line %d, column %d", row, col), err)
		}
		return nil, errors.NewConfigError("failed to parse config file", err)
	}

	config._absConfigFilePath = configFile

	log.Debugf("Configuration file path: %s", configFile)
	if catalogPath := config.GetAbsCatalogPath(); catalogPath != "" {
		log.Debugf("Property catalog: %s", catalogPath)
	}

	return &config, nil
}

func (c *Config) SerializeConfig() (*bytes.Buffer, error) {
	buf := bytes.Buffer{}
	enc := toml.NewEncoder(&buf)
	enc.SetIndentTables(true)
	if err := enc.Encode(c); err != nil {
		return nil, err
	}
	return &buf, nil
}

// ExampleConfig returns a profile showing every section.
func ExampleConfig() *Config {
	return &Config{
		ConfigVersion: CurrentConfigVersion,
		General: &GeneralConfig{
			SuppressAdvice: false,
		},
		Templates: []*TemplateConfig{
			{Name: "per_host", Path: "/var/log/remote/hst/pme.log"},
			{Name: "daily", Path: "/var/log/remote/hst/yyyy-mm-dd.log"},
		},
		Listeners: []*ListenerConfig{
			{Port: 514, Protocol: "udp"},
		},
		Rulesets: []*RulesetConfig{
			{Name: "remote", Template: "per_host", Port: 10514, Protocol: "tcp", Filters: "*.info,mail.none"},
		},
		TLSListeners: []*TLSListenerConfig{
			{
				Port:     6514,
				CAFile:   "/etc/pki/rsyslog/ca.pem",
				CertFile: "/etc/pki/rsyslog/cert.pem",
				KeyFile:  "/etc/pki/rsyslog/key.pem",
				Filters:  "*.*",
				Ruleset:  "remote_tls",
				Template: "daily",
			},
		},
	}
}
