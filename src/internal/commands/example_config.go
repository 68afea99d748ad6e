package commands

import (
	"flag"

	"github.com/maksimkurb/logsrv-assist/src/internal/config"
)

func CreateExampleConfigCommand() *ExampleConfigCommand {
	return &ExampleConfigCommand{
		fs: flag.NewFlagSet("example-config", flag.ExitOnError),
	}
}

type ExampleConfigCommand struct {
	fs  *flag.FlagSet
	ctx *AppContext
}

func (g *ExampleConfigCommand) Name() string {
	return g.fs.Name()
}

func (g *ExampleConfigCommand) Init(args []string, ctx *AppContext) error {
	g.ctx = ctx
	return g.fs.Parse(args)
}

func (g *ExampleConfigCommand) Run() error {
	buf, err := config.ExampleConfig().SerializeConfig()
	if err != nil {
		return err
	}

	_, err = buf.WriteTo(g.ctx.stdout())
	return err
}
