package rsyslog

// RenderListener returns a plain listener configuration: the input module load
// and an input bound to port. Only "tcp" and "udp" are accepted.
func RenderListener(port int, protocol string) (string, error) {
	proto, err := ParseProtocol(protocol)
	if err != nil {
		return "", err
	}

	return execute(listenerTemplate, map[string]interface{}{
		TMPL_MODULE: proto.InputModule(),
		TMPL_PORT:   formatPort(port),
	}), nil
}

// RenderRuleset returns the input module load, a ruleset writing every message
// matching filters to the dynamic file template, and an input bound to that ruleset.
// filters is a comma-separated facility/severity list, see JoinFilters.
func RenderRuleset(rulesetName, templateName string, port int, protocol, filters string) (string, error) {
	proto, err := ParseProtocol(protocol)
	if err != nil {
		return "", err
	}

	return execute(rulesetTemplate, map[string]interface{}{
		TMPL_MODULE:   proto.InputModule(),
		TMPL_PORT:     formatPort(port),
		TMPL_RULESET:  rulesetName,
		TMPL_TEMPLATE: templateName,
		TMPL_FILTERS:  JoinFilters(filters),
	}), nil
}
