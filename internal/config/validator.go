package config

import (
	"fmt"
	"regexp"
	"strings"
	"sync"

	"github.com/go-playground/validator/v10"

	"pigment/internal/theme"
	pigmenterrors "pigment/pkg/errors"
)

var (
	validatorOnce sync.Once
	validateInst  *validator.Validate

	schemaVersionPattern = regexp.MustCompile(`^\d+\.\d+(?:\.\d+)?$`)

	// rendererNames mirrors the renderers registered by the binary.
	rendererNames = map[string]struct{}{"vscode": {}, "alacritty": {}}
)

func validatorInstance() *validator.Validate {
	validatorOnce.Do(func() {
		v := validator.New()

		_ = v.RegisterValidation("schema_version", func(fl validator.FieldLevel) bool {
			return schemaVersionPattern.MatchString(fl.Field().String())
		})

		_ = v.RegisterValidation("renderer_name", func(fl validator.FieldLevel) bool {
			_, ok := rendererNames[fl.Field().String()]
			return ok
		})

		_ = v.RegisterValidation("variant_id", func(fl validator.FieldLevel) bool {
			_, ok := theme.Lookup(fl.Field().String())
			return ok
		})

		validateInst = v
	})

	return validateInst
}

// Validate performs schema validation on the configuration. Override
// values are not checked here; the merge engine skips malformed ones
// with a warning instead of failing the run.
func Validate(cfg *Config) error {
	if cfg == nil {
		return pigmenterrors.NewValidationError("config", "configuration is nil", nil)
	}

	v := validatorInstance()
	if err := v.Struct(cfg); err != nil {
		return convertValidationError(err)
	}

	seen := make(map[string]struct{}, len(cfg.Variants))
	for _, id := range cfg.Variants {
		if _, dup := seen[id]; dup {
			return pigmenterrors.NewValidationError("variants", fmt.Sprintf("duplicate variant id %q", id), nil)
		}
		seen[id] = struct{}{}
	}

	return nil
}

func convertValidationError(err error) error {
	if err == nil {
		return nil
	}

	if ves, ok := err.(validator.ValidationErrors); ok {
		ve := ves[0]
		field := yamlishFieldName(ve)
		msg := fmt.Sprintf("%s failed validation for tag '%s'", field, ve.Tag())
		return pigmenterrors.NewValidationError(field, msg, err)
	}

	return pigmenterrors.NewValidationError("config", err.Error(), err)
}

func yamlishFieldName(fe validator.FieldError) string {
	ns := fe.StructNamespace()
	parts := strings.Split(ns, ".")
	lowered := make([]string, 0, len(parts))
	for _, part := range parts {
		lowered = append(lowered, strings.ToLower(part))
	}
	return strings.Join(lowered, ".")
}
