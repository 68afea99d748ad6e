package commands

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/maksimkurb/logsrv-assist/src/internal/catalog"
	"github.com/maksimkurb/logsrv-assist/src/internal/config"
	"github.com/maksimkurb/logsrv-assist/src/internal/errors"
	"github.com/maksimkurb/logsrv-assist/src/internal/log"
	"github.com/maksimkurb/logsrv-assist/src/internal/rsyslog"
)

type Runner interface {
	Init(args []string, globalArgs *AppContext) error
	Run() error
	Name() string
}

type AppContext struct {
	ConfigPath  string
	CatalogPath string
	Verbose     bool

	// Stdout receives generated configuration text. Defaults to os.Stdout.
	Stdout io.Writer
	// Stdin feeds interactive prompts. Defaults to os.Stdin.
	Stdin io.ReadCloser
}

func (c *AppContext) stdout() io.Writer {
	if c == nil || c.Stdout == nil {
		return os.Stdout
	}
	return c.Stdout
}

func (c *AppContext) stdin() io.ReadCloser {
	if c == nil || c.Stdin == nil {
		return os.Stdin
	}
	return c.Stdin
}

// loadAndValidateConfigOrFail loads the profile from file and validates it.
func loadAndValidateConfigOrFail(configPath string) (*config.Config, error) {
	cfg, err := config.LoadConfig(configPath)
	if err != nil {
		return nil, fmt.Errorf("failed to load configuration: %w", err)
	}

	if err := checkProtocols(cfg); err != nil {
		return nil, err
	}

	if err := cfg.ValidateConfig(); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}

	return cfg, nil
}

// checkProtocols reports the first listener or ruleset whose protocol is
// neither tcp nor udp as an invalid argument.
func checkProtocols(cfg *config.Config) error {
	for i, listener := range cfg.Listeners {
		if _, err := rsyslog.ParseProtocol(listener.Protocol); err != nil {
			return errors.Wrap(errors.ErrCodeInvalidArgument, fmt.Sprintf("listener[%d]", i), err)
		}
	}
	for i, ruleset := range cfg.Rulesets {
		if _, err := rsyslog.ParseProtocol(ruleset.Protocol); err != nil {
			return errors.Wrap(errors.ErrCodeInvalidArgument, fmt.Sprintf("ruleset[%d]", i), err)
		}
	}
	return nil
}

// loadCatalog loads the property catalog at path, or returns the built-in one
// when path is empty.
func loadCatalog(path string) (*catalog.Catalog, error) {
	if path == "" {
		log.Debugf("Using built-in property catalog")
		return catalog.Default(), nil
	}

	cat, err := catalog.Load(path)
	if err != nil {
		return nil, fmt.Errorf("failed to load property catalog: %w", err)
	}
	return cat, nil
}

// writeText writes text to w, terminated by exactly one newline.
func writeText(w io.Writer, text string) error {
	_, err := io.WriteString(w, strings.TrimRight(text, "\n")+"\n")
	return err
}

// printAdvice reports operator hints on the log stream, keeping stdout clean.
func printAdvice(lines []string) {
	for _, line := range lines {
		log.Infof("%s", line)
	}
}
