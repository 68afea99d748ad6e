// Package rsyslog renders listener, TLS listener and ruleset snippets in
// RainerScript syntax.
//
// Snippets are produced by substituting {{tag}} placeholders in fixed
// templates. Arguments are inserted as given: file paths and names are not
// checked or escaped, and only the transport protocol is validated.
package rsyslog
