// Package generator turns a validated profile into a complete rsyslog
// configuration document.
//
// Blocks are emitted in a fixed order (templates, listeners, rulesets, TLS
// listeners) so the same profile and catalog always produce the same bytes.
package generator
