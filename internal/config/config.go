package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"sort"

	"xlsxpack/internal/logger"
)

var (
	// ErrNotFound indicates the config file does not exist.
	ErrNotFound = errors.New("config file not found")
	// ErrParse indicates the config file exists but is not a valid
	// pack configuration.
	ErrParse = errors.New("invalid pack config")
)

const (
	OrientationPortrait  = "portrait"
	OrientationLandscape = "landscape"
)

// SheetSpec names one sheet to include in the pack, where it sorts,
// how it prints and how many pages it is expected to fill.
type SheetSpec struct {
	Name          string `json:"name"`
	Order         int    `json:"order"`
	Orientation   string `json:"orientation"`
	ExpectedPages int    `json:"expected_pages"`
}

// UnmarshalJSON fills defaults for absent keys before decoding, so an
// explicit "order": 0 is preserved while a missing order sorts last.
func (s *SheetSpec) UnmarshalJSON(data []byte) error {
	type alias SheetSpec
	spec := alias{
		Order:         999,
		Orientation:   OrientationPortrait,
		ExpectedPages: 1,
	}
	if err := json.Unmarshal(data, &spec); err != nil {
		return err
	}
	*s = SheetSpec(spec)
	return nil
}

// Config is the pack export configuration. Loaded once, never mutated
// during a run.
type Config struct {
	PackSheets    []SheetSpec `json:"pack_sheets"`
	PageTolerance int         `json:"page_tolerance"`
}

// LoadConfig loads the pack configuration from the specified JSON file path
func LoadConfig(configPath string) (*Config, error) {
	if _, err := os.Stat(configPath); os.IsNotExist(err) {
		return nil, fmt.Errorf("%w: %s", ErrNotFound, configPath)
	}

	data, err := os.ReadFile(configPath)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file %s: %w", configPath, err)
	}

	config := Config{PageTolerance: 2}
	if err := json.Unmarshal(data, &config); err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrParse, configPath, err)
	}

	for i, spec := range config.PackSheets {
		if spec.Name == "" {
			return nil, fmt.Errorf("%w: pack_sheets[%d] is missing a name", ErrParse, i)
		}
		if spec.Orientation != OrientationPortrait && spec.Orientation != OrientationLandscape {
			return nil, fmt.Errorf("%w: pack_sheets[%d] (%s): unknown orientation %q",
				ErrParse, i, spec.Name, spec.Orientation)
		}
		if spec.ExpectedPages < 1 {
			return nil, fmt.Errorf("%w: pack_sheets[%d] (%s): expected_pages must be at least 1",
				ErrParse, i, spec.Name)
		}
	}

	logger.Info("Loaded pack configuration", "path", configPath, "sheets", len(config.PackSheets))
	return &config, nil
}

// SortedSheets returns the sheet specs ascending by order. The sort is
// stable so entries with equal order keep their config file order.
func (c *Config) SortedSheets() []SheetSpec {
	sheets := make([]SheetSpec, len(c.PackSheets))
	copy(sheets, c.PackSheets)
	sort.SliceStable(sheets, func(i, j int) bool {
		return sheets[i].Order < sheets[j].Order
	})
	return sheets
}
