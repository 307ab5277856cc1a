package cmd

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/dianbrown/QuantumQueue/sim"
	"github.com/dianbrown/QuantumQueue/sim/paging"
)

// Scenario holds one problem instance, loadable from a YAML file. A file
// may carry a scheduling problem (processes + options), a replacement
// problem (frames + sequence), or both. Nil/absent option fields mean
// "not set" — they do not override CLI flags.
type Scenario struct {
	Processes []ProcessConfig `yaml:"processes"`
	Options   OptionsConfig   `yaml:"options"`
	Frames    []FrameConfig   `yaml:"frames"`
	Sequence  []string        `yaml:"sequence"`
}

// ProcessConfig describes one process row of a scheduling problem.
type ProcessConfig struct {
	ID       string `yaml:"id"`
	Priority int    `yaml:"priority"`
	Arrival  int    `yaml:"arrival"`
	Burst    int    `yaml:"burst"`
}

// OptionsConfig holds scheduling options. Pointer fields distinguish
// "not set" from an explicit zero/false.
type OptionsConfig struct {
	Quantum        *int  `yaml:"quantum"`
	HigherIsBetter *bool `yaml:"higher_is_better"`
	Horizon        *int  `yaml:"horizon"`
}

// FrameConfig describes one frame row of a replacement problem.
type FrameConfig struct {
	ID       int    `yaml:"id"`
	LoadTime int    `yaml:"load_time"`
	Page     string `yaml:"page"`
}

// LoadScenario reads and parses a YAML scenario file.
func LoadScenario(path string) (*Scenario, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading scenario: %w", err)
	}
	var sc Scenario
	if err := yaml.Unmarshal(data, &sc); err != nil {
		return nil, fmt.Errorf("parsing scenario: %w", err)
	}
	return &sc, nil
}

// SchedulingInput converts the scenario rows to engine records. Field
// validation is the engine's job; this is pure shape conversion.
func (sc *Scenario) SchedulingInput() []sim.Process {
	processes := make([]sim.Process, len(sc.Processes))
	for i, p := range sc.Processes {
		processes[i] = sim.Process{ID: p.ID, Priority: p.Priority, Arrival: p.Arrival, Burst: p.Burst}
	}
	return processes
}

// ReplacementInput converts the scenario frame rows to engine records.
func (sc *Scenario) ReplacementInput() []paging.Frame {
	frames := make([]paging.Frame, len(sc.Frames))
	for i, f := range sc.Frames {
		frames[i] = paging.Frame{ID: f.ID, LoadTime: f.LoadTime, Page: f.Page}
	}
	return frames
}

// SchedulingOptions merges scenario options with the CLI flag values.
// Scenario file settings win when present; otherwise the flags apply.
func (sc *Scenario) SchedulingOptions(flagQuantum int, flagHigherIsBetter bool, flagHorizon int) sim.Options {
	opt := sim.Options{Quantum: flagQuantum, Horizon: flagHorizon}
	hib := flagHigherIsBetter
	opt.HigherIsBetter = &hib
	if sc.Options.Quantum != nil {
		opt.Quantum = *sc.Options.Quantum
	}
	if sc.Options.Horizon != nil {
		opt.Horizon = *sc.Options.Horizon
	}
	if sc.Options.HigherIsBetter != nil {
		opt.HigherIsBetter = sc.Options.HigherIsBetter
	}
	return opt
}
