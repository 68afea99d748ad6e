package commands

import (
	"flag"
	"io"

	"github.com/maksimkurb/logsrv-assist/src/internal/config"
	"github.com/maksimkurb/logsrv-assist/src/internal/rsyslog"
)

const defaultTLSPort = 6514

func CreateTLSListenerCommand() *TLSListenerCommand {
	gc := &TLSListenerCommand{
		fs: flag.NewFlagSet("tls-listener", flag.ExitOnError),
	}

	gc.fs.IntVar(&gc.listener.Port, "port", defaultTLSPort, "TLS port to listen on")
	gc.fs.StringVar(&gc.listener.CAFile, "ca", "", "CA certificate file")
	gc.fs.StringVar(&gc.listener.CertFile, "cert", "", "Server certificate file")
	gc.fs.StringVar(&gc.listener.KeyFile, "key", "", "Server private key file")
	gc.fs.StringVar(&gc.listener.Filters, "filters", "*.*", "Comma-separated facility.severity selectors")
	gc.fs.StringVar(&gc.listener.Ruleset, "ruleset", "", "Ruleset name")
	gc.fs.StringVar(&gc.listener.Template, "template", "", "Name of the template used as DynaFile")

	return gc
}

type TLSListenerCommand struct {
	fs       *flag.FlagSet
	ctx      *AppContext
	listener config.TLSListenerConfig
}

func (g *TLSListenerCommand) Name() string {
	return g.fs.Name()
}

func (g *TLSListenerCommand) Init(args []string, ctx *AppContext) error {
	g.ctx = ctx

	if err := g.fs.Parse(args); err != nil {
		return err
	}

	return config.ValidateSection("tls_listener", &g.listener)
}

func (g *TLSListenerCommand) Run() error {
	return writeTLSListener(g.ctx.stdout(), &g.listener)
}

func writeTLSListener(w io.Writer, l *config.TLSListenerConfig) error {
	text := rsyslog.RenderTLSListener(rsyslog.TLSListener{
		Port:     l.Port,
		CAFile:   l.CAFile,
		CertFile: l.CertFile,
		KeyFile:  l.KeyFile,
		Filters:  l.Filters,
		Ruleset:  l.Ruleset,
		Template: l.Template,
	})
	if err := writeText(w, text); err != nil {
		return err
	}

	printAdvice(rsyslog.Suggestions(l.Port, rsyslog.TCP))
	return nil
}
