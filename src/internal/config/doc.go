// Package config handles profile file parsing and validation for logsrv-assist.
//
// A profile is a TOML file describing everything that should end up in the
// generated rsyslog configuration:
//
//   - General settings (property catalog location, advice output)
//   - File path templates turned into rsyslog list templates
//   - Plain tcp/udp listeners
//   - Rulesets binding facility/severity filters to a template
//   - TLS listeners with their certificates and ruleset
//
// # Example Usage
//
//	cfg, err := config.LoadConfig("/etc/logsrv-assist/profile.toml")
//	if err != nil {
//	    log.Fatalf("%v", err)
//	}
//	if err := cfg.ValidateConfig(); err != nil {
//	    log.Fatalf("%v", err)
//	}
//
// ValidateConfig collects every problem it finds and returns them together as
// ValidationErrors, so a single run reports the whole profile.
package config
