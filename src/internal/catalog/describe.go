package catalog

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"

	"github.com/maksimkurb/logsrv-assist/src/internal/errors"
)

// Describe projects c to code/description pairs, preserving order.
func Describe(c *Catalog) []PropertyDescription {
	return c.Describe()
}

// EncodeDescriptions writes descriptions to w in the requested format.
// JSON output is indented with four spaces.
func EncodeDescriptions(w io.Writer, descriptions []PropertyDescription, format Format) error {
	if descriptions == nil {
		descriptions = []PropertyDescription{}
	}

	switch format {
	case FormatJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "    ")
		enc.SetEscapeHTML(false)
		if err := enc.Encode(descriptions); err != nil {
			return errors.NewCatalogError("failed to encode descriptions as JSON", err)
		}
	case FormatYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(descriptions); err != nil {
			return errors.NewCatalogError("failed to encode descriptions as YAML", err)
		}
		if err := enc.Close(); err != nil {
			return errors.NewCatalogError("failed to flush YAML encoder", err)
		}
	case FormatTOML:
		enc := toml.NewEncoder(w)
		enc.SetIndentTables(true)
		file := struct {
			Properties []PropertyDescription `toml:"property"`
		}{Properties: descriptions}
		if err := enc.Encode(file); err != nil {
			return errors.NewCatalogError("failed to encode descriptions as TOML", err)
		}
	default:
		return errors.NewCatalogError(fmt.Sprintf("unsupported output format %q", format), nil)
	}

	return nil
}
