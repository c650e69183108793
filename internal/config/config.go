// Package config loads optional engine settings from a CUE file.
//
// Every setting has a built-in default matching the standard clinical
// constants, so running without a settings file is the common case. The
// file can override paper calibration, QTc prolongation thresholds, and
// the reference-table column roles (for sites that know their schema and
// want to bypass heuristic detection).
package config

import (
	"fmt"
	"os"

	"cuelang.org/go/cue"
	"cuelang.org/go/cue/cuecontext"

	"github.com/neoecg/neoecg/internal/qtc"
	"github.com/neoecg/neoecg/internal/refdata"
	"github.com/neoecg/neoecg/internal/units"
)

// Config is the fully resolved engine configuration.
type Config struct {
	Calibration units.Calibration
	Thresholds  qtc.Thresholds
	Columns     refdata.Overrides
}

// Default returns the configuration used when no settings file is given:
// 25 mm/s paper calibration, neonatal QTc cutoffs, heuristic column roles.
func Default() Config {
	return Config{
		Calibration: units.Default(),
		Thresholds:  qtc.DefaultThresholds(),
	}
}

// Load reads and evaluates a CUE settings file, applying whatever fields it
// defines on top of the defaults. Example:
//
//	calibration: {ms_per_box: 40.0, bpm_numerator: 1500.0}
//	qtc: {bazett_high_ms: 480.0, fridericia_high_ms: 460.0}
//	columns: {parameter: "Parameter", min: "Min", max: "Max"}
func Load(path string) (Config, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, err
	}

	ctx := cuecontext.New()
	v := ctx.CompileBytes(data, cue.Filename(path))
	if err := v.Err(); err != nil {
		return cfg, fmt.Errorf("compile %s: %w", path, err)
	}

	if err := decodeCalibration(v, &cfg); err != nil {
		return cfg, err
	}
	if err := decodeThresholds(v, &cfg); err != nil {
		return cfg, err
	}
	if err := decodeColumns(v, &cfg); err != nil {
		return cfg, err
	}

	return cfg, nil
}

func decodeCalibration(v cue.Value, cfg *Config) error {
	cal := v.LookupPath(cue.ParsePath("calibration"))
	if !cal.Exists() {
		return nil
	}
	var raw struct {
		MsPerBox     *float64 `json:"ms_per_box"`
		BpmNumerator *float64 `json:"bpm_numerator"`
	}
	if err := cal.Decode(&raw); err != nil {
		return fmt.Errorf("calibration: %w", err)
	}
	if raw.MsPerBox != nil {
		cfg.Calibration.MsPerBox = *raw.MsPerBox
	}
	if raw.BpmNumerator != nil {
		cfg.Calibration.BpmNumerator = *raw.BpmNumerator
	}
	return nil
}

func decodeThresholds(v cue.Value, cfg *Config) error {
	th := v.LookupPath(cue.ParsePath("qtc"))
	if !th.Exists() {
		return nil
	}
	var raw struct {
		BazettHighMs     *float64 `json:"bazett_high_ms"`
		FridericiaHighMs *float64 `json:"fridericia_high_ms"`
	}
	if err := th.Decode(&raw); err != nil {
		return fmt.Errorf("qtc: %w", err)
	}
	if raw.BazettHighMs != nil {
		cfg.Thresholds.BazettHighMs = *raw.BazettHighMs
	}
	if raw.FridericiaHighMs != nil {
		cfg.Thresholds.FridericiaHighMs = *raw.FridericiaHighMs
	}
	return nil
}

func decodeColumns(v cue.Value, cfg *Config) error {
	cols := v.LookupPath(cue.ParsePath("columns"))
	if !cols.Exists() {
		return nil
	}
	var raw struct {
		Parameter string `json:"parameter"`
		Min       string `json:"min"`
		Max       string `json:"max"`
		AgeGroup  string `json:"age_group"`
		AgeMin    string `json:"age_min"`
		AgeMax    string `json:"age_max"`
	}
	if err := cols.Decode(&raw); err != nil {
		return fmt.Errorf("columns: %w", err)
	}
	cfg.Columns = refdata.Overrides{
		Parameter: raw.Parameter,
		Min:       raw.Min,
		Max:       raw.Max,
		AgeGroup:  raw.AgeGroup,
		AgeMin:    raw.AgeMin,
		AgeMax:    raw.AgeMax,
	}
	return nil
}
