package catalog

import (
	_ "embed"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"sync"

	"github.com/go-playground/validator/v10"
	"github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"

	"github.com/maksimkurb/logsrv-assist/src/internal/errors"
	"github.com/maksimkurb/logsrv-assist/src/internal/log"
)

// Format is a catalog serialization format.
type Format string

const (
	FormatJSON Format = "json"
	FormatYAML Format = "yaml"
	FormatTOML Format = "toml"
)

//go:embed properties.json
var defaultCatalogJSON []byte

var (
	defaultOnce    sync.Once
	defaultCatalog *Catalog
)

var validate *validator.Validate

func init() {
	validate = validator.New()

	// Report fields by their serialized name
	validate.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
}

// tomlFile is the TOML layout of a catalog: TOML has no top-level arrays.
type tomlFile struct {
	Properties []PropertyRecord `toml:"property"`
}

// ParseFormat converts a user-supplied format name.
func ParseFormat(name string) (Format, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "json":
		return FormatJSON, nil
	case "yaml", "yml":
		return FormatYAML, nil
	case "toml":
		return FormatTOML, nil
	default:
		return "", errors.NewInvalidArgumentError(fmt.Sprintf("unsupported format %q, use one of: json, yaml, toml", name))
	}
}

// FormatFromPath detects the catalog format from the file extension.
func FormatFromPath(path string) (Format, error) {
	ext := strings.TrimPrefix(filepath.Ext(path), ".")
	if ext == "" {
		return "", errors.NewCatalogError(fmt.Sprintf("cannot detect catalog format of %s: no file extension", path), nil)
	}
	format, err := ParseFormat(ext)
	if err != nil {
		return "", errors.NewCatalogError(fmt.Sprintf("cannot detect catalog format of %s", path), err)
	}
	return format, nil
}

// Default returns the built-in catalog of common rsyslog properties.
func Default() *Catalog {
	defaultOnce.Do(func() {
		c, err := Parse(defaultCatalogJSON, FormatJSON)
		if err != nil {
			panic(fmt.Sprintf("embedded property catalog is invalid: %v", err))
		}
		defaultCatalog = c
	})
	return defaultCatalog
}

// Load reads a property catalog from path. The format is detected from the extension.
func Load(path string) (*Catalog, error) {
	format, err := FormatFromPath(path)
	if err != nil {
		return nil, err
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.NewCatalogError(fmt.Sprintf("failed to read catalog %s", path), err)
	}

	c, err := Parse(data, format)
	if err != nil {
		return nil, err
	}

	log.Debugf("Loaded %d properties from %s", c.Len(), path)
	return c, nil
}

// Parse decodes and validates a catalog. Duplicate codes are rejected.
func Parse(data []byte, format Format) (*Catalog, error) {
	var records []PropertyRecord

	switch format {
	case FormatJSON:
		if err := json.Unmarshal(data, &records); err != nil {
			return nil, errors.NewCatalogError("failed to parse JSON catalog", err)
		}
	case FormatYAML:
		if err := yaml.Unmarshal(data, &records); err != nil {
			return nil, errors.NewCatalogError("failed to parse YAML catalog", err)
		}
	case FormatTOML:
		var file tomlFile
		if err := toml.Unmarshal(data, &file); err != nil {
			return nil, errors.NewCatalogError("failed to parse TOML catalog", err)
		}
		records = file.Properties
	default:
		return nil, errors.NewCatalogError(fmt.Sprintf("unsupported catalog format %q", format), nil)
	}

	if err := validateRecords(records); err != nil {
		return nil, err
	}

	return New(records), nil
}

func validateRecords(records []PropertyRecord) error {
	var problems []string
	seenCodes := make(map[string]int)

	for i, record := range records {
		if err := validate.Struct(record); err != nil {
			var fieldErrs validator.ValidationErrors
			if errors.As(err, &fieldErrs) {
				for _, e := range fieldErrs {
					problems = append(problems, fmt.Sprintf("property[%d].%s: field is required", i, e.Field()))
				}
			} else {
				problems = append(problems, fmt.Sprintf("property[%d]: %v", i, err))
			}
		}

		if record.Code == "" {
			continue
		}
		if first, ok := seenCodes[record.Code]; ok {
			problems = append(problems, fmt.Sprintf("property[%d]: duplicate code %q (first defined at property[%d])", i, record.Code, first))
			continue
		}
		seenCodes[record.Code] = i
	}

	if len(problems) > 0 {
		return errors.NewValidationError("invalid property catalog: "+strings.Join(problems, "; "), nil)
	}
	return nil
}
