/*
 * Copyright (C) 2025-2026, Advanced Micro Devices, Inc. All rights reserved.
 * See LICENSE for license information.
 */

package fredfile

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	commonerrors "github.com/epiforge/fredcp/common/pkg/errors"
)

const (
	// MainFileName is the entry point every job input archive must carry.
	MainFileName = "main.fred"

	// runNumberModulus bounds the simulator's run number; the simulator
	// rejects values outside [1, 65536].
	runNumberModulus = 65536
)

// RunConfig is the per-run parameter document uploaded as
// run_{id}_config.json.
type RunConfig struct {
	Params Params `json:"params"`
}

type Params struct {
	StartDate string   `json:"start_date"`
	EndDate   string   `json:"end_date"`
	SynthPop  SynthPop `json:"synth_pop"`
	Seed      int64    `json:"seed"`
}

type SynthPop struct {
	Locations []string `json:"locations"`
}

// LoadRunConfig reads and validates a run configuration document.
func LoadRunConfig(path string) (*RunConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	config := &RunConfig{}
	// run configs carry client fields beyond the simulator parameters,
	// so unknown fields are allowed
	if err = json.Unmarshal(data, config); err != nil {
		return nil, commonerrors.NewBadRequest(
			fmt.Sprintf("run config %s is not valid JSON: %v", filepath.Base(path), err))
	}
	if err = config.Validate(); err != nil {
		return nil, err
	}
	return config, nil
}

// Validate checks the fields the simulator header needs.
func (c *RunConfig) Validate() error {
	if c.Params.StartDate == "" || c.Params.EndDate == "" {
		return commonerrors.NewBadRequest("run config must carry params.start_date and params.end_date")
	}
	if _, err := LegacyDate(c.Params.StartDate); err != nil {
		return err
	}
	if _, err := LegacyDate(c.Params.EndDate); err != nil {
		return err
	}
	if len(c.Params.SynthPop.Locations) == 0 {
		return commonerrors.NewBadRequest("run config must carry params.synth_pop.locations")
	}
	return nil
}

// RunNumber derives the simulator run number from the seed. The simulator
// only accepts [1, 65536], so the seed is folded into that range.
func (c *RunConfig) RunNumber() int64 {
	seed := c.Params.Seed % runNumberModulus
	if seed < 0 {
		seed += runNumberModulus
	}
	return seed + 1
}

// LegacyDate converts an ISO date to the simulator's YYYY-Mon-DD dialect,
// e.g. 2020-01-15 becomes 2020-Jan-15.
func LegacyDate(iso string) (string, error) {
	t, err := time.Parse("2006-01-02", iso)
	if err != nil {
		return "", commonerrors.NewBadRequest(
			fmt.Sprintf("date %q is not in YYYY-MM-DD form", iso))
	}
	return t.Format("2006-Jan-02"), nil
}

// Header renders the parameter lines prepended to the model file. The seed
// rides along as a comment so a packaged results directory records it.
func (c *RunConfig) Header() (string, error) {
	start, err := LegacyDate(c.Params.StartDate)
	if err != nil {
		return "", err
	}
	end, err := LegacyDate(c.Params.EndDate)
	if err != nil {
		return "", err
	}
	var b strings.Builder
	fmt.Fprintf(&b, "start_date = %s\n", start)
	fmt.Fprintf(&b, "end_date = %s\n", end)
	fmt.Fprintf(&b, "locations = %s\n", strings.Join(c.Params.SynthPop.Locations, " "))
	fmt.Fprintf(&b, "# seed = %d\n", c.Params.Seed)
	return b.String(), nil
}

// Prepare writes a copy of the model file at mainPath with the run's header
// prepended and returns the path of the prepared file.
func Prepare(mainPath string, config *RunConfig, runId int64) (string, error) {
	model, err := os.ReadFile(mainPath)
	if err != nil {
		return "", err
	}
	header, err := config.Header()
	if err != nil {
		return "", err
	}
	prepared := filepath.Join(filepath.Dir(mainPath), fmt.Sprintf("run_%d_main.fred", runId))
	content := header + "\n" + string(model)
	if err = os.WriteFile(prepared, []byte(content), 0o644); err != nil {
		return "", err
	}
	return prepared, nil
}
