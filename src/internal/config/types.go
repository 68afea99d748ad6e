package config

import (
	"path/filepath"

	"github.com/maksimkurb/logsrv-assist/src/internal/utils"
)

const CurrentConfigVersion uint8 = 1

type Config struct {
	// ConfigVersion is the configuration file version.
	ConfigVersion uint8 `toml:"config_version" json:"config_version"`
	// General holds general configuration.
	General *GeneralConfig `toml:"general"`
	// Templates are file path patterns rendered as list templates. You can add multiple templates.
	Templates []*TemplateConfig `toml:"template,omitempty"`
	// Listeners are plain tcp/udp inputs without a ruleset.
	Listeners []*ListenerConfig `toml:"listener,omitempty"`
	// Rulesets bind facility/severity filters on an input to a template.
	Rulesets []*RulesetConfig `toml:"ruleset,omitempty"`
	// TLSListeners are TLS-only tcp inputs with their ruleset.
	TLSListeners []*TLSListenerConfig `toml:"tls_listener,omitempty"`

	_absConfigFilePath string
}

type GeneralConfig struct {
	// Catalog is the property catalog file (.json, .yaml or .toml). Relative paths are resolved against the config directory. Empty means the built-in catalog.
	Catalog string `toml:"catalog,omitempty" json:"catalog,omitempty"`
	// SuppressAdvice disables SELinux/firewall hints for non-default ports.
	SuppressAdvice bool `toml:"suppress_advice" json:"suppress_advice"`
}

type TemplateConfig struct {
	// Name is the template name referenced by rulesets.
	Name string `toml:"name" json:"name" validate:"required"`
	// Path is the file path pattern, e.g. "/var/log/remote/hst/pme.log". Pieces matching catalog codes become properties.
	Path string `toml:"path" json:"path" validate:"required"`
}

type ListenerConfig struct {
	// Port is the port to listen on.
	Port int `toml:"port" json:"port" validate:"required,min=1,max=65535"`
	// Protocol is either "tcp" or "udp".
	Protocol string `toml:"protocol" json:"protocol" validate:"required,oneof=tcp udp"`
}

type RulesetConfig struct {
	// Name is the ruleset name.
	Name string `toml:"name" json:"name" validate:"required"`
	// Template is the name of the template used as DynaFile.
	Template string `toml:"template" json:"template" validate:"required"`
	// Port is the port of the input bound to this ruleset.
	Port int `toml:"port" json:"port" validate:"required,min=1,max=65535"`
	// Protocol is either "tcp" or "udp".
	Protocol string `toml:"protocol" json:"protocol" validate:"required,oneof=tcp udp"`
	// Filters is a comma-separated list of facility.severity selectors, e.g. "mail.crit,local3.*".
	Filters string `toml:"filters" json:"filters" validate:"filter_list"`
}

type TLSListenerConfig struct {
	// Port is the TLS port to listen on (tcp).
	Port int `toml:"port" json:"port" validate:"required,min=1,max=65535"`
	// CAFile is the CA certificate path.
	CAFile string `toml:"ca_file" json:"ca_file" validate:"required"`
	// CertFile is the server certificate path.
	CertFile string `toml:"cert_file" json:"cert_file" validate:"required"`
	// KeyFile is the server private key path.
	KeyFile string `toml:"key_file" json:"key_file" validate:"required"`
	// Filters is a comma-separated list of facility.severity selectors.
	Filters string `toml:"filters" json:"filters" validate:"filter_list"`
	// Ruleset is the ruleset name.
	Ruleset string `toml:"ruleset" json:"ruleset" validate:"required"`
	// Template is the name of the template used as DynaFile.
	Template string `toml:"template" json:"template" validate:"required"`
}

func (c *Config) GetConfigDir() string {
	return filepath.Dir(c._absConfigFilePath)
}

// GetAbsCatalogPath returns the catalog path resolved against the config directory,
// or an empty string when the built-in catalog should be used.
func (c *Config) GetAbsCatalogPath() string {
	if c.General == nil || c.General.Catalog == "" {
		return ""
	}
	return utils.GetAbsolutePath(c.General.Catalog, c.GetConfigDir())
}

// FindTemplate returns the template with the given name, or nil.
func (c *Config) FindTemplate(name string) *TemplateConfig {
	for _, tmpl := range c.Templates {
		if tmpl.Name == name {
			return tmpl
		}
	}
	return nil
}
