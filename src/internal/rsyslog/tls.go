package rsyslog

// TLSListener describes a TLS-only TCP listener with its ruleset.
type TLSListener struct {
	Port int
	// CAFile, CertFile and KeyFile are written as given; they are not checked.
	CAFile   string
	CertFile string
	KeyFile  string
	// Filters is the facility/severity selector, written as given.
	Filters  string
	Ruleset  string
	Template string
}

// RenderTLSListener returns the gtls driver settings, a TLS-enabled imtcp
// module load, the input and a ruleset writing matching messages to Template.
func RenderTLSListener(l TLSListener) string {
	return execute(tlsListenerTemplate, map[string]interface{}{
		TMPL_PORT:      formatPort(l.Port),
		TMPL_CA_FILE:   l.CAFile,
		TMPL_CERT_FILE: l.CertFile,
		TMPL_KEY_FILE:  l.KeyFile,
		TMPL_RULESET:   l.Ruleset,
		TMPL_TEMPLATE:  l.Template,
		TMPL_FILTERS:   l.Filters,
	})
}
