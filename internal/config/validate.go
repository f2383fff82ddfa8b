package config

import (
	"fmt"
	"strings"

	"github.com/heartmarshall/dslconv/internal/domain"
)

var (
	validLevels  = []string{"debug", "info", "warn", "error"}
	validFormats = []string{"json", "text"}
	validMarkups = []string{"default", "none", "custom"}
)

// maxBatchSize keeps a multi-row entry insert under the Postgres limit of
// 65535 bind parameters.
const maxBatchSize = 9000

// Validate performs business-rule validation on the loaded configuration.
// It must be called after loading; LoadFrom calls it automatically.
func (c *Config) Validate() error {
	var errs []domain.FieldError

	if !oneOf(c.Log.Level, validLevels) {
		errs = append(errs, domain.FieldError{Field: "log.level", Message: fmt.Sprintf("must be one of %s", strings.Join(validLevels, ", "))})
	}
	if !oneOf(c.Log.Format, validFormats) {
		errs = append(errs, domain.FieldError{Field: "log.format", Message: fmt.Sprintf("must be one of %s", strings.Join(validFormats, ", "))})
	}
	if c.Database.MinConns > c.Database.MaxConns {
		errs = append(errs, domain.FieldError{Field: "database.min_conns", Message: fmt.Sprintf("must be <= max_conns (%d > %d)", c.Database.MinConns, c.Database.MaxConns)})
	}
	errs = append(errs, c.Convert.validate()...)

	if len(errs) > 0 {
		return domain.NewValidationErrors(errs)
	}
	return nil
}

func (c *ConvertConfig) validate() []domain.FieldError {
	var errs []domain.FieldError

	if !oneOf(c.Markup, validMarkups) {
		errs = append(errs, domain.FieldError{Field: "convert.markup", Message: fmt.Sprintf("must be one of %s (got %q)", strings.Join(validMarkups, ", "), c.Markup)})
	}
	if strings.EqualFold(c.Markup, "custom") && c.RulesPath == "" {
		errs = append(errs, domain.FieldError{Field: "convert.rules_path", Message: "required when markup is custom"})
	}
	if c.Workers <= 0 {
		errs = append(errs, domain.FieldError{Field: "convert.workers", Message: fmt.Sprintf("must be > 0 (got %d)", c.Workers)})
	}
	if c.BatchSize <= 0 || c.BatchSize > maxBatchSize {
		errs = append(errs, domain.FieldError{Field: "convert.batch_size", Message: fmt.Sprintf("must be in 1..%d (got %d)", maxBatchSize, c.BatchSize)})
	}
	if c.Timeout <= 0 {
		errs = append(errs, domain.FieldError{Field: "convert.timeout", Message: fmt.Sprintf("must be > 0 (got %s)", c.Timeout)})
	}

	return errs
}

// RequireDatabase reports an error when no DSN is configured.
func (c *Config) RequireDatabase() error {
	if strings.TrimSpace(c.Database.DSN) == "" {
		return domain.NewValidationError("database.dsn", "required (set DATABASE_DSN)")
	}
	return nil
}

func oneOf(v string, allowed []string) bool {
	for _, a := range allowed {
		if strings.EqualFold(v, a) {
			return true
		}
	}
	return false
}
