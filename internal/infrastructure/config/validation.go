package config

import (
	"errors"
	"fmt"
	"reflect"
	"regexp"
	"strings"
	"sync"

	"github.com/go-playground/validator/v10"
	"github.com/robfig/cron/v3"
)

var (
	validatorOnce sync.Once
	validateInst  *validator.Validate

	hexColorPattern = regexp.MustCompile(`^#[0-9a-fA-F]{6}$`)
)

// validatorInstance configures and returns the shared validator instance.
func validatorInstance() *validator.Validate {
	validatorOnce.Do(func() {
		v := validator.New()

		_ = v.RegisterValidation("hex6", func(fl validator.FieldLevel) bool {
			return hexColorPattern.MatchString(fl.Field().String())
		})

		_ = v.RegisterValidation("cronspec", func(fl validator.FieldLevel) bool {
			_, err := cron.ParseStandard(fl.Field().String())
			return err == nil
		})

		// Report fields by their TOML key instead of the Go name.
		v.RegisterTagNameFunc(func(fld reflect.StructField) string {
			name := strings.SplitN(fld.Tag.Get("mapstructure"), ",", 2)[0]
			if name == "" || name == "-" {
				return fld.Name
			}
			return name
		})

		validateInst = v
	})
	return validateInst
}

// IsHexColor reports whether value is a #RRGGBB color.
func IsHexColor(value string) bool {
	return hexColorPattern.MatchString(value)
}

// validateConfig performs comprehensive validation of configuration values
func validateConfig(config *Config) error {
	if config == nil {
		return errors.New("config is nil")
	}

	var validationErrors []string

	if err := validatorInstance().Struct(config); err != nil {
		var ves validator.ValidationErrors
		if !errors.As(err, &ves) {
			return fmt.Errorf("config validation failed: %w", err)
		}
		for _, fe := range ves {
			validationErrors = append(validationErrors, describeFieldError(fe))
		}
	}

	schedule := config.Ambient.Schedule
	if (schedule.Dark == "") != (schedule.Light == "") {
		validationErrors = append(validationErrors, "ambient.schedule needs both dark and light, or neither")
	}

	if len(validationErrors) == 0 {
		return nil
	}
	return fmt.Errorf("config validation failed:\n  - %s", strings.Join(validationErrors, "\n  - "))
}

func describeFieldError(fe validator.FieldError) string {
	field := tomlFieldName(fe)
	switch fe.Tag() {
	case "hex6":
		return fmt.Sprintf("%s must be a hex color like #RRGGBB (got %q)", field, fe.Value())
	case "required":
		return fmt.Sprintf("%s is required", field)
	case "cronspec":
		return fmt.Sprintf("%s must be a cron expression like \"0 19 * * *\" (got %q)", field, fe.Value())
	case "oneof":
		return fmt.Sprintf("%s must be one of: %s (got %q)", field, fe.Param(), fe.Value())
	default:
		return fmt.Sprintf("%s failed validation for tag '%s'", field, fe.Tag())
	}
}

// tomlFieldName drops the root struct name from the namespace, turning
// "Config.appearance.light_palette.text" into "appearance.light_palette.text".
func tomlFieldName(fe validator.FieldError) string {
	ns := fe.Namespace()
	if idx := strings.Index(ns, "."); idx >= 0 {
		return ns[idx+1:]
	}
	return ns
}
