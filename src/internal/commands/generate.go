package commands

import (
	"bufio"
	"flag"
	"io"
	"os"
	"path/filepath"

	"github.com/maksimkurb/logsrv-assist/src/internal/catalog"
	"github.com/maksimkurb/logsrv-assist/src/internal/config"
	"github.com/maksimkurb/logsrv-assist/src/internal/errors"
	"github.com/maksimkurb/logsrv-assist/src/internal/generator"
	"github.com/maksimkurb/logsrv-assist/src/internal/hashing"
	"github.com/maksimkurb/logsrv-assist/src/internal/log"
	"github.com/maksimkurb/logsrv-assist/src/internal/utils"
)

func CreateGenerateCommand() *GenerateCommand {
	gc := &GenerateCommand{
		fs: flag.NewFlagSet("generate", flag.ExitOnError),
	}

	gc.fs.StringVar(&gc.outputPath, "output", "", "Write the configuration to this file instead of stdout")

	return gc
}

type GenerateCommand struct {
	fs         *flag.FlagSet
	ctx        *AppContext
	cfg        *config.Config
	catalog    *catalog.Catalog
	outputPath string
}

func (g *GenerateCommand) Name() string {
	return g.fs.Name()
}

func (g *GenerateCommand) Init(args []string, ctx *AppContext) error {
	g.ctx = ctx

	if err := g.fs.Parse(args); err != nil {
		return err
	}

	if cfg, err := loadAndValidateConfigOrFail(ctx.ConfigPath); err != nil {
		return err
	} else {
		g.cfg = cfg
	}

	// -catalog on the command line wins over the profile's own catalog.
	catalogPath := ctx.CatalogPath
	if catalogPath == "" {
		catalogPath = g.cfg.GetAbsCatalogPath()
	}

	cat, err := loadCatalog(catalogPath)
	if err != nil {
		return err
	}
	g.catalog = cat

	return nil
}

func (g *GenerateCommand) Run() error {
	doc, err := generator.Generate(g.cfg, g.catalog)
	if err != nil {
		return err
	}

	if g.outputPath == "" {
		if _, err := doc.WriteTo(g.ctx.stdout()); err != nil {
			return err
		}
	} else if err := writeDocumentToFile(g.outputPath, doc); err != nil {
		return err
	}

	log.Debugf("Generated %d block(s)", len(doc.Blocks))
	printAdvice(doc.Advice)
	return nil
}

// writeDocumentToFile writes doc to path unless the file already holds the same content.
func writeDocumentToFile(path string, doc io.WriterTo) error {
	expected := hashing.NewMD5WriterProxy(nil)
	if _, err := doc.WriteTo(expected); err != nil {
		return errors.NewInternalError("failed to render configuration", err)
	}

	if existing, ok, err := hashing.FileChecksum(path); err != nil {
		log.Warnf("Failed to read existing file %s: %v", path, err)
	} else if ok && existing == expected.GetChecksum() {
		log.Infof("Configuration in %s is up to date", path)
		return nil
	}

	if err := replaceFile(path, doc); err != nil {
		return err
	}

	log.Infof("Configuration written to %s", path)
	return nil
}

// replaceFile writes doc to a temporary file next to path and renames it over
// path, so readers never see a partially written file. The mode of an
// existing file is kept.
func replaceFile(path string, doc io.WriterTo) (err error) {
	mode := os.FileMode(0644)
	if info, statErr := os.Stat(path); statErr == nil {
		mode = info.Mode().Perm()
	}

	tmpFile, err := os.CreateTemp(filepath.Dir(path), "."+filepath.Base(path)+".*.tmp")
	if err != nil {
		return errors.NewInternalError("failed to create temporary output file", err)
	}
	tmpPath := tmpFile.Name()
	defer func() {
		if err != nil {
			if removeErr := os.Remove(tmpPath); removeErr != nil && !os.IsNotExist(removeErr) {
				log.Warnf("Failed to remove temporary file %s: %v", tmpPath, removeErr)
			}
		}
	}()

	w := bufio.NewWriter(tmpFile)
	if _, err = doc.WriteTo(w); err == nil {
		err = w.Flush()
	}
	if err != nil {
		utils.CloseOrWarn(tmpFile)
		return errors.NewInternalError("failed to write output file", err)
	}

	if err = tmpFile.Close(); err != nil {
		return errors.NewInternalError("failed to close output file", err)
	}
	if err = os.Chmod(tmpPath, mode); err != nil {
		return errors.NewInternalError("failed to set output file mode", err)
	}
	if err = os.Rename(tmpPath, path); err != nil {
		return errors.NewInternalError("failed to replace output file", err)
	}

	return nil
}
