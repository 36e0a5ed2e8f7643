package config

import (
	"fmt"
	"strings"
)

// Validate performs business-rule validation on the loaded configuration.
// It must be called after loading; Load calls it automatically.
func (c *Config) Validate() error {
	if err := c.Log.validate(); err != nil {
		return fmt.Errorf("log: %w", err)
	}
	if err := c.Retry.validate(); err != nil {
		return fmt.Errorf("retry: %w", err)
	}
	if err := c.Cascade.validate(); err != nil {
		return fmt.Errorf("cascade: %w", err)
	}
	if c.Inventory.LowStockThreshold < 0 {
		return fmt.Errorf("inventory: low_stock_threshold must be >= 0 (got %d)", c.Inventory.LowStockThreshold)
	}
	if c.Inventory.MaxImportRows <= 0 {
		return fmt.Errorf("inventory: max_import_rows must be > 0 (got %d)", c.Inventory.MaxImportRows)
	}
	if c.Followup.ReplayBatch <= 0 {
		return fmt.Errorf("followup: replay_batch must be > 0 (got %d)", c.Followup.ReplayBatch)
	}
	if c.RateLimit.CascadePerMinute < 0 || c.RateLimit.ImportPerMinute < 0 {
		return fmt.Errorf("rate_limit: limits must be >= 0")
	}
	if c.Redis.Addr == "" {
		return fmt.Errorf("redis: addr is required")
	}
	if c.Tracing.SampleRatio < 0 || c.Tracing.SampleRatio > 1 {
		return fmt.Errorf("tracing: sample_ratio must be within [0, 1] (got %v)", c.Tracing.SampleRatio)
	}
	return nil
}

func (l *LogConfig) validate() error {
	switch strings.ToLower(l.Level) {
	case "debug", "info", "warn", "warning", "error", "":
	default:
		return fmt.Errorf("unknown level %q", l.Level)
	}
	switch strings.ToLower(l.Format) {
	case "json", "text", "":
	default:
		return fmt.Errorf("unknown format %q", l.Format)
	}
	return nil
}

func (r *RetryConfig) validate() error {
	if r.MaxAttempts < 1 {
		return fmt.Errorf("max_attempts must be >= 1 (got %d)", r.MaxAttempts)
	}
	if r.InitialDelay <= 0 {
		return fmt.Errorf("initial_delay must be > 0 (got %v)", r.InitialDelay)
	}
	if r.MaxDelay < r.InitialDelay {
		return fmt.Errorf("max_delay (%v) must be >= initial_delay (%v)", r.MaxDelay, r.InitialDelay)
	}
	if r.Multiplier < 1 {
		return fmt.Errorf("multiplier must be >= 1 (got %v)", r.Multiplier)
	}
	return nil
}

func (c *CascadeConfig) validate() error {
	if c.StepTimeout <= 0 {
		return fmt.Errorf("step_timeout must be > 0 (got %v)", c.StepTimeout)
	}
	if c.MaxBulkDelete <= 0 {
		return fmt.Errorf("max_bulk_delete must be > 0 (got %d)", c.MaxBulkDelete)
	}
	if c.MaxMassUpdate <= 0 {
		return fmt.Errorf("max_mass_update must be > 0 (got %d)", c.MaxMassUpdate)
	}
	if c.ResumeBatch <= 0 {
		return fmt.Errorf("resume_batch must be > 0 (got %d)", c.ResumeBatch)
	}
	if c.ResumeStaleAfter <= c.StepTimeout {
		return fmt.Errorf("resume_stale_after (%v) must exceed step_timeout (%v)", c.ResumeStaleAfter, c.StepTimeout)
	}
	return nil
}
