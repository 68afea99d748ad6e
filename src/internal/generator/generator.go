package generator

import (
	"fmt"

	"github.com/maksimkurb/logsrv-assist/src/internal/catalog"
	"github.com/maksimkurb/logsrv-assist/src/internal/config"
	"github.com/maksimkurb/logsrv-assist/src/internal/errors"
	"github.com/maksimkurb/logsrv-assist/src/internal/log"
	"github.com/maksimkurb/logsrv-assist/src/internal/rsyslog"
	"github.com/maksimkurb/logsrv-assist/src/internal/template"
)

// Generate renders cfg using cat for template property lookups.
// A nil cat means the built-in catalog. cfg is expected to be validated.
func Generate(cfg *config.Config, cat *catalog.Catalog) (*Document, error) {
	if cfg == nil {
		return nil, errors.NewInvalidArgumentError("configuration is required")
	}
	if cat == nil {
		cat = catalog.Default()
	}

	doc := &Document{}
	advice := newAdviceCollector()

	for _, tmpl := range cfg.Templates {
		log.Debugf("Rendering template [%s] from %q", tmpl.Name, tmpl.Path)
		doc.Blocks = append(doc.Blocks, Block{
			Kind: BlockTemplate,
			Name: tmpl.Name,
			Text: template.Generate(tmpl.Name, tmpl.Path, cat),
		})
	}

	for i, listener := range cfg.Listeners {
		name := fmt.Sprintf("%s/%d", listener.Protocol, listener.Port)
		log.Debugf("Rendering listener [%s]", name)

		text, err := rsyslog.RenderListener(listener.Port, listener.Protocol)
		if err != nil {
			return nil, errors.Wrap(errors.ErrCodeInvalidArgument, fmt.Sprintf("listener[%d]", i), err)
		}
		doc.Blocks = append(doc.Blocks, Block{Kind: BlockListener, Name: name, Text: text})
		advice.add(listener.Port, rsyslog.Protocol(listener.Protocol))
	}

	for _, ruleset := range cfg.Rulesets {
		log.Debugf("Rendering ruleset [%s]", ruleset.Name)

		text, err := rsyslog.RenderRuleset(ruleset.Name, ruleset.Template, ruleset.Port, ruleset.Protocol, ruleset.Filters)
		if err != nil {
			return nil, errors.Wrap(errors.ErrCodeInvalidArgument, fmt.Sprintf("ruleset [%s]", ruleset.Name), err)
		}
		doc.Blocks = append(doc.Blocks, Block{Kind: BlockRuleset, Name: ruleset.Name, Text: text})
		advice.add(ruleset.Port, rsyslog.Protocol(ruleset.Protocol))
	}

	for _, listener := range cfg.TLSListeners {
		log.Debugf("Rendering TLS listener [%s] on port %d", listener.Ruleset, listener.Port)

		doc.Blocks = append(doc.Blocks, Block{
			Kind: BlockTLSListener,
			Name: listener.Ruleset,
			Text: rsyslog.RenderTLSListener(rsyslog.TLSListener{
				Port:     listener.Port,
				CAFile:   listener.CAFile,
				CertFile: listener.CertFile,
				KeyFile:  listener.KeyFile,
				Filters:  listener.Filters,
				Ruleset:  listener.Ruleset,
				Template: listener.Template,
			}),
		})
		advice.add(listener.Port, rsyslog.TCP)
	}

	if cfg.General == nil || !cfg.General.SuppressAdvice {
		doc.Advice = advice.lines()
	}

	return doc, nil
}

// adviceCollector merges Suggestions for several ports into one list that
// keeps a single header and a single trailing reload command.
type adviceCollector struct {
	header   string
	footer   string
	commands []string
	seen     map[string]bool
}

func newAdviceCollector() *adviceCollector {
	return &adviceCollector{seen: make(map[string]bool)}
}

func (a *adviceCollector) add(port int, protocol rsyslog.Protocol) {
	lines := rsyslog.Suggestions(port, protocol)
	if len(lines) < 2 {
		return
	}

	a.header = lines[0]
	a.footer = lines[len(lines)-1]
	for _, line := range lines[1 : len(lines)-1] {
		if a.seen[line] {
			continue
		}
		a.seen[line] = true
		a.commands = append(a.commands, line)
	}
}

func (a *adviceCollector) lines() []string {
	if len(a.commands) == 0 {
		return nil
	}

	lines := make([]string, 0, len(a.commands)+2)
	lines = append(lines, a.header)
	lines = append(lines, a.commands...)
	return append(lines, a.footer)
}
