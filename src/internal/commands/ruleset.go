package commands

import (
	"flag"
	"io"

	"github.com/maksimkurb/logsrv-assist/src/internal/config"
	"github.com/maksimkurb/logsrv-assist/src/internal/rsyslog"
)

func CreateRulesetCommand() *RulesetCommand {
	gc := &RulesetCommand{
		fs: flag.NewFlagSet("ruleset", flag.ExitOnError),
	}

	gc.fs.StringVar(&gc.ruleset.Name, "name", "", "Ruleset name")
	gc.fs.StringVar(&gc.ruleset.Template, "template", "", "Name of the template used as DynaFile")
	gc.fs.IntVar(&gc.ruleset.Port, "port", rsyslog.DefaultPort, "Port to listen on")
	gc.fs.StringVar(&gc.ruleset.Protocol, "protocol", string(rsyslog.TCP), "Protocol: tcp or udp")
	gc.fs.StringVar(&gc.ruleset.Filters, "filters", "*.*", "Comma-separated facility.severity selectors, e.g. \"mail.crit,local3.*\"")

	return gc
}

type RulesetCommand struct {
	fs      *flag.FlagSet
	ctx     *AppContext
	ruleset config.RulesetConfig
}

func (g *RulesetCommand) Name() string {
	return g.fs.Name()
}

func (g *RulesetCommand) Init(args []string, ctx *AppContext) error {
	g.ctx = ctx

	if err := g.fs.Parse(args); err != nil {
		return err
	}

	if _, err := rsyslog.ParseProtocol(g.ruleset.Protocol); err != nil {
		return err
	}

	return config.ValidateSection("ruleset", &g.ruleset)
}

func (g *RulesetCommand) Run() error {
	return writeRuleset(g.ctx.stdout(), &g.ruleset)
}

func writeRuleset(w io.Writer, r *config.RulesetConfig) error {
	text, err := rsyslog.RenderRuleset(r.Name, r.Template, r.Port, r.Protocol, r.Filters)
	if err != nil {
		return err
	}
	if err := writeText(w, text); err != nil {
		return err
	}

	printAdvice(rsyslog.Suggestions(r.Port, rsyslog.Protocol(r.Protocol)))
	return nil
}
