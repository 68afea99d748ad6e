package commands

import (
	"flag"

	"github.com/maksimkurb/logsrv-assist/src/internal/catalog"
)

func CreatePropertiesCommand() *PropertiesCommand {
	gc := &PropertiesCommand{
		fs: flag.NewFlagSet("properties", flag.ExitOnError),
	}

	gc.fs.StringVar(&gc.formatName, "format", string(catalog.FormatJSON), "Output format: json, yaml or toml")

	return gc
}

type PropertiesCommand struct {
	fs         *flag.FlagSet
	ctx        *AppContext
	formatName string
	format     catalog.Format
	catalog    *catalog.Catalog
}

func (g *PropertiesCommand) Name() string {
	return g.fs.Name()
}

func (g *PropertiesCommand) Init(args []string, ctx *AppContext) error {
	g.ctx = ctx

	if err := g.fs.Parse(args); err != nil {
		return err
	}

	format, err := catalog.ParseFormat(g.formatName)
	if err != nil {
		return err
	}
	g.format = format

	cat, err := loadCatalog(ctx.CatalogPath)
	if err != nil {
		return err
	}
	g.catalog = cat

	return nil
}

func (g *PropertiesCommand) Run() error {
	return catalog.EncodeDescriptions(g.ctx.stdout(), catalog.Describe(g.catalog), g.format)
}
