package commands

import (
	"flag"
	"io"

	"github.com/maksimkurb/logsrv-assist/src/internal/config"
	"github.com/maksimkurb/logsrv-assist/src/internal/rsyslog"
)

func CreateListenerCommand() *ListenerCommand {
	gc := &ListenerCommand{
		fs: flag.NewFlagSet("listener", flag.ExitOnError),
	}

	gc.fs.IntVar(&gc.listener.Port, "port", rsyslog.DefaultPort, "Port to listen on")
	gc.fs.StringVar(&gc.listener.Protocol, "protocol", string(rsyslog.TCP), "Protocol: tcp or udp")

	return gc
}

type ListenerCommand struct {
	fs       *flag.FlagSet
	ctx      *AppContext
	listener config.ListenerConfig
}

func (g *ListenerCommand) Name() string {
	return g.fs.Name()
}

func (g *ListenerCommand) Init(args []string, ctx *AppContext) error {
	g.ctx = ctx

	if err := g.fs.Parse(args); err != nil {
		return err
	}

	if _, err := rsyslog.ParseProtocol(g.listener.Protocol); err != nil {
		return err
	}

	return config.ValidateSection("listener", &g.listener)
}

func (g *ListenerCommand) Run() error {
	return writeListener(g.ctx.stdout(), &g.listener)
}

func writeListener(w io.Writer, l *config.ListenerConfig) error {
	text, err := rsyslog.RenderListener(l.Port, l.Protocol)
	if err != nil {
		return err
	}
	if err := writeText(w, text); err != nil {
		return err
	}

	printAdvice(rsyslog.Suggestions(l.Port, rsyslog.Protocol(l.Protocol)))
	return nil
}
