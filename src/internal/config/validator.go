package config

import (
	"fmt"

	"github.com/go-playground/validator/v10"

	"github.com/maksimkurb/logsrv-assist/src/internal/errors"
)

// ValidateConfig validates the entire configuration and returns all validation errors
func (c *Config) ValidateConfig() error {
	var validationErrors ValidationErrors

	if c.ConfigVersion > CurrentConfigVersion {
		validationErrors = append(validationErrors, ValidationError{
			FieldPath: "config_version",
			Message:   fmt.Sprintf("unsupported config version %d (latest supported: %d)", c.ConfigVersion, CurrentConfigVersion),
		})
	}

	if c.General != nil {
		if err := validate.Struct(c.General); err != nil {
			validationErrors = append(validationErrors, convertValidatorErrors(err, "general", "")...)
		}
	}

	if len(c.Templates) == 0 && len(c.Listeners) == 0 && len(c.Rulesets) == 0 && len(c.TLSListeners) == 0 {
		validationErrors = append(validationErrors, ValidationError{
			FieldPath: "",
			Message:   "configuration must contain at least one template, listener, ruleset or tls_listener",
		})
		return validationErrors
	}

	ports := make(portRegistry)
	rulesetNames := make(map[string]bool)

	validationErrors = append(validationErrors, c.validateTemplates()...)
	validationErrors = append(validationErrors, c.validateListeners(ports)...)
	validationErrors = append(validationErrors, c.validateRulesets(ports, rulesetNames)...)
	validationErrors = append(validationErrors, c.validateTLSListeners(ports, rulesetNames)...)

	if len(validationErrors) > 0 {
		return validationErrors
	}

	return nil
}

// portRegistry tracks which item first claimed a protocol/port pair.
type portRegistry map[string]string

func (r portRegistry) claim(protocol string, port int, owner string) (string, bool) {
	key := fmt.Sprintf("%s/%d", protocol, port)
	if prev, ok := r[key]; ok {
		return prev, false
	}
	r[key] = owner
	return "", true
}

func (c *Config) validateTemplates() ValidationErrors {
	var validationErrors ValidationErrors
	seenNames := make(map[string]bool)

	for i, tmpl := range c.Templates {
		itemName := tmpl.Name
		if itemName == "" {
			itemName = fmt.Sprintf("template[%d]", i)
		}

		if err := validate.Struct(tmpl); err != nil {
			validationErrors = append(validationErrors, convertValidatorErrors(err, fmt.Sprintf("template.%d", i), itemName)...)
		}

		if tmpl.Name != "" && seenNames[tmpl.Name] {
			validationErrors = append(validationErrors, ValidationError{
				ItemName:  itemName,
				FieldPath: "name",
				Message:   fmt.Sprintf("duplicate template name: %s", tmpl.Name),
			})
		}
		seenNames[tmpl.Name] = true
	}

	return validationErrors
}

func (c *Config) validateListeners(ports portRegistry) ValidationErrors {
	var validationErrors ValidationErrors

	for i, listener := range c.Listeners {
		itemName := fmt.Sprintf("listener[%d]", i)

		if err := validate.Struct(listener); err != nil {
			validationErrors = append(validationErrors, convertValidatorErrors(err, fmt.Sprintf("listener.%d", i), itemName)...)
			continue
		}

		if prev, ok := ports.claim(listener.Protocol, listener.Port, itemName); !ok {
			validationErrors = append(validationErrors, ValidationError{
				ItemName:  itemName,
				FieldPath: "port",
				Message:   fmt.Sprintf("duplicate %s port %d (already used by %s)", listener.Protocol, listener.Port, prev),
			})
		}
	}

	return validationErrors
}

func (c *Config) validateRulesets(ports portRegistry, seenNames map[string]bool) ValidationErrors {
	var validationErrors ValidationErrors

	for i, ruleset := range c.Rulesets {
		itemName := ruleset.Name
		if itemName == "" {
			itemName = fmt.Sprintf("ruleset[%d]", i)
		}

		if err := validate.Struct(ruleset); err != nil {
			validationErrors = append(validationErrors, convertValidatorErrors(err, fmt.Sprintf("ruleset.%d", i), itemName)...)
		}

		validationErrors = append(validationErrors, c.checkRulesetName(ruleset.Name, itemName, "name", seenNames)...)
		validationErrors = append(validationErrors, c.checkTemplateReference(ruleset.Template, itemName)...)

		if ruleset.Port > 0 && (ruleset.Protocol == "tcp" || ruleset.Protocol == "udp") {
			if prev, ok := ports.claim(ruleset.Protocol, ruleset.Port, itemName); !ok {
				validationErrors = append(validationErrors, ValidationError{
					ItemName:  itemName,
					FieldPath: "port",
					Message:   fmt.Sprintf("duplicate %s port %d (already used by %s)", ruleset.Protocol, ruleset.Port, prev),
				})
			}
		}
	}

	return validationErrors
}

func (c *Config) validateTLSListeners(ports portRegistry, seenNames map[string]bool) ValidationErrors {
	var validationErrors ValidationErrors

	for i, listener := range c.TLSListeners {
		itemName := listener.Ruleset
		if itemName == "" {
			itemName = fmt.Sprintf("tls_listener[%d]", i)
		}

		if err := validate.Struct(listener); err != nil {
			validationErrors = append(validationErrors, convertValidatorErrors(err, fmt.Sprintf("tls_listener.%d", i), itemName)...)
		}

		validationErrors = append(validationErrors, c.checkRulesetName(listener.Ruleset, itemName, "ruleset", seenNames)...)
		validationErrors = append(validationErrors, c.checkTemplateReference(listener.Template, itemName)...)

		if listener.Port > 0 {
			if prev, ok := ports.claim("tcp", listener.Port, itemName); !ok {
				validationErrors = append(validationErrors, ValidationError{
					ItemName:  itemName,
					FieldPath: "port",
					Message:   fmt.Sprintf("duplicate tcp port %d (already used by %s)", listener.Port, prev),
				})
			}
		}
	}

	return validationErrors
}

func (c *Config) checkRulesetName(name, itemName, fieldPath string, seenNames map[string]bool) ValidationErrors {
	if name == "" {
		return nil
	}
	if seenNames[name] {
		return ValidationErrors{{
			ItemName:  itemName,
			FieldPath: fieldPath,
			Message:   fmt.Sprintf("duplicate ruleset name: %s", name),
		}}
	}
	seenNames[name] = true
	return nil
}

func (c *Config) checkTemplateReference(name, itemName string) ValidationErrors {
	if name == "" || c.FindTemplate(name) != nil {
		return nil
	}
	return ValidationErrors{{
		ItemName:  itemName,
		FieldPath: "template",
		Message:   fmt.Sprintf("unknown template: %s", name),
	}}
}

// convertValidatorErrors converts go-playground/validator errors to our ValidationError format
func convertValidatorErrors(err error, fieldPrefix string, itemName string) ValidationErrors {
	var validationErrors ValidationErrors

	var validatorErrs validator.ValidationErrors
	if errors.As(err, &validatorErrs) {
		for _, e := range validatorErrs {
			fieldPath := fieldPrefix
			if e.Field() != "" {
				// e.Field() returns the TOML tag name because we registered TagNameFunc
				if fieldPrefix != "" {
					fieldPath = fieldPrefix + "." + e.Field()
				} else {
					fieldPath = e.Field()
				}
			}

			validationErrors = append(validationErrors, ValidationError{
				ItemName:  itemName,
				FieldPath: fieldPath,
				Message:   getValidationMessage(e),
			})
		}
	}

	return validationErrors
}

// ValidateSection validates a single profile item (e.g. a *ListenerConfig built
// from command-line flags) with the same rules ValidateConfig applies.
// Cross-item checks are not run.
func ValidateSection(section string, item any) error {
	if err := validate.Struct(item); err != nil {
		if validationErrors := convertValidatorErrors(err, "", section); len(validationErrors) > 0 {
			return validationErrors
		}
		return errors.NewValidationError(fmt.Sprintf("invalid %s", section), err)
	}
	return nil
}
