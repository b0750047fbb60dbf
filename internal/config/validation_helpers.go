package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"

	stylekiterrors "github.com/alexisbeaulieu97/stylekit/pkg/errors"
)

// ValidateConfig performs schema and cross-field validation on the configuration.
func ValidateConfig(cfg *Config) error {
	if cfg == nil {
		return stylekiterrors.NewValidationError("config", "configuration is nil", nil)
	}

	if err := validatorInstance().Struct(cfg); err != nil {
		return convertValidationError(err)
	}

	seen := make(map[string]int, len(cfg.Backends))
	for i, caps := range cfg.Backends {
		if first, exists := seen[caps.ID]; exists {
			return stylekiterrors.NewValidationError(
				fieldForBackend(i, "id"),
				fmt.Sprintf("duplicate backend id %q (first declared at backends[%d])", caps.ID, first),
				nil,
			)
		}
		seen[caps.ID] = i
	}

	return nil
}

// convertValidationError normalizes validator errors into stylekit validation errors.
func convertValidationError(err error) error {
	if err == nil {
		return nil
	}

	var ves validator.ValidationErrors
	if errors.As(err, &ves) {
		ve := ves[0]
		field := yamlishFieldName(ve)
		msg := fmt.Sprintf("%s failed validation for tag '%s'", field, ve.Tag())
		return stylekiterrors.NewValidationError(field, msg, err)
	}

	return stylekiterrors.NewValidationError("config", err.Error(), err)
}

// yamlishFieldName drops the root struct name from the namespace.
func yamlishFieldName(fe validator.FieldError) string {
	ns := fe.Namespace()
	if _, rest, ok := strings.Cut(ns, "."); ok {
		return rest
	}
	return ns
}

func fieldForBackend(index int, field string) string {
	return fmt.Sprintf("backends[%d].%s", index, field)
}
