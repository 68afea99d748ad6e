package commands

import (
	"flag"
	"io"

	"github.com/maksimkurb/logsrv-assist/src/internal/catalog"
	"github.com/maksimkurb/logsrv-assist/src/internal/config"
	"github.com/maksimkurb/logsrv-assist/src/internal/template"
)

func CreateTemplateCommand() *TemplateCommand {
	gc := &TemplateCommand{
		fs: flag.NewFlagSet("template", flag.ExitOnError),
	}

	gc.fs.StringVar(&gc.template.Name, "name", "", "Template name")
	gc.fs.StringVar(&gc.template.Path, "path", "", "File path pattern, e.g. \"/var/log/remote/hst/pme.log\"")

	return gc
}

type TemplateCommand struct {
	fs       *flag.FlagSet
	ctx      *AppContext
	template config.TemplateConfig
	catalog  *catalog.Catalog
}

func (g *TemplateCommand) Name() string {
	return g.fs.Name()
}

func (g *TemplateCommand) Init(args []string, ctx *AppContext) error {
	g.ctx = ctx

	if err := g.fs.Parse(args); err != nil {
		return err
	}

	if err := config.ValidateSection("template", &g.template); err != nil {
		return err
	}

	cat, err := loadCatalog(ctx.CatalogPath)
	if err != nil {
		return err
	}
	g.catalog = cat

	return nil
}

func (g *TemplateCommand) Run() error {
	return writeTemplate(g.ctx.stdout(), &g.template, g.catalog)
}

func writeTemplate(w io.Writer, t *config.TemplateConfig, cat *catalog.Catalog) error {
	return writeText(w, template.Generate(t.Name, t.Path, cat))
}
