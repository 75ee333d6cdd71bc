package raybox

import (
	"encoding/json"
	"errors"
	"fmt"
)

// TraceConfig controls ray emission and termination. Values are read every
// frame, so changes take effect on the next BuildFrame.
type TraceConfig struct {
	// ShowRays enables tracing and drawing of ray paths.
	ShowRays bool `json:"showRays"`
	// RayCount is the number of rays emitted per source per frame.
	RayCount int `json:"rayCount"`
	// RayDensity is the percentage (0, 100] of the full circle the rays
	// are spread across. 50 with 100 rays spreads them over 180°.
	RayDensity float64 `json:"rayDensity"`
	// MaxReflections is the bounce budget per ray.
	MaxReflections int `json:"maxReflections"`
	// RayLength is the total travel distance budget per ray.
	RayLength float64 `json:"rayLength"`
}

// DefaultTraceConfig returns the settings the sandbox starts with.
func DefaultTraceConfig() TraceConfig {
	return TraceConfig{
		ShowRays:       true,
		RayCount:       50,
		RayDensity:     50,
		MaxReflections: 100,
		RayLength:      2000,
	}
}

// Validate reports the first out-of-range field, or nil.
func (c TraceConfig) Validate() error {
	switch {
	case c.RayCount <= 0:
		return fmt.Errorf("rayCount must be > 0, got %d", c.RayCount)
	case c.RayDensity <= 0 || c.RayDensity > 100:
		return fmt.Errorf("rayDensity must be in (0, 100], got %v", c.RayDensity)
	case c.MaxReflections < 0:
		return fmt.Errorf("maxReflections must be >= 0, got %d", c.MaxReflections)
	case c.RayLength <= 0:
		return fmt.Errorf("rayLength must be > 0, got %v", c.RayLength)
	}
	return nil
}

// LoadTraceConfig parses JSON over DefaultTraceConfig, so omitted fields keep
// their defaults, and validates the result.
func LoadTraceConfig(jsonData []byte) (TraceConfig, error) {
	cfg := DefaultTraceConfig()
	if len(jsonData) == 0 {
		return cfg, errors.New("parse trace config: empty input")
	}
	if err := json.Unmarshal(jsonData, &cfg); err != nil {
		return TraceConfig{}, fmt.Errorf("parse trace config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return TraceConfig{}, fmt.Errorf("parse trace config: %w", err)
	}
	return cfg, nil
}

// clampTraceConfig pulls interactive edits back into the valid range.
func clampTraceConfig(c TraceConfig) TraceConfig {
	if c.RayCount < 1 {
		c.RayCount = 1
	}
	if c.RayDensity < 1 {
		c.RayDensity = 1
	}
	if c.RayDensity > 100 {
		c.RayDensity = 100
	}
	if c.MaxReflections < 0 {
		c.MaxReflections = 0
	}
	if c.RayLength <= 0 {
		c.RayLength = DefaultTraceConfig().RayLength
	}
	return c
}
