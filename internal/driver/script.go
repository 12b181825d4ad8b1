package driver

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/cory-johannsen/armory/internal/game/inventory"
)

// Step is one entry of a replay script.
type Step struct {
	// Trigger sets the trigger level; nil keeps the previous level.
	Trigger *bool `yaml:"trigger"`
	// Ticks is how many ticks the step lasts; 0 counts as 1.
	Ticks int `yaml:"ticks"`
	// Switch requests a weapon switch on the step's first tick.
	Switch inventory.Slot `yaml:"switch"`
	// Reload requests a reload on the step's first tick.
	Reload bool `yaml:"reload"`
}

// Script is a deterministic input recording.
type Script struct {
	// TickSeconds is the fixed dt applied to every tick.
	TickSeconds float64 `yaml:"tick_seconds"`
	Steps       []Step  `yaml:"steps"`
}

// Validate checks the script invariants.
//
// Postcondition: Returns nil if valid, or an error describing all violations.
func (s *Script) Validate() error {
	var errs []error
	if s.TickSeconds <= 0 {
		errs = append(errs, fmt.Errorf("tick_seconds must be > 0, got %v", s.TickSeconds))
	}
	for i, st := range s.Steps {
		if st.Ticks < 0 {
			errs = append(errs, fmt.Errorf("steps[%d].ticks must be >= 0, got %d", i, st.Ticks))
		}
		if st.Switch != "" {
			if _, err := inventory.ParseSlot(string(st.Switch)); err != nil {
				errs = append(errs, fmt.Errorf("steps[%d].switch: %w", i, err))
			}
		}
	}
	if len(errs) > 0 {
		return fmt.Errorf("replay script validation failed: %w", errors.Join(errs...))
	}
	return nil
}

// LoadScript reads and validates a replay script from a YAML file.
//
// Postcondition: Returns a valid Script or a non-nil error.
func LoadScript(path string) (*Script, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading replay %s: %w", path, err)
	}
	var s Script
	if err := yaml.Unmarshal(data, &s); err != nil {
		return nil, fmt.Errorf("parsing replay %s: %w", path, err)
	}
	if err := s.Validate(); err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return &s, nil
}

// ScriptInput plays a Script back as an Input. Once the steps run out every
// Poll returns Quit.
type ScriptInput struct {
	script  *Script
	step    int
	tick    int
	trigger bool
}

// NewScriptInput returns an Input positioned at the first step.
//
// Precondition: s must be non-nil and valid.
func NewScriptInput(s *Script) *ScriptInput {
	return &ScriptInput{script: s}
}

// Poll implements Input.
func (in *ScriptInput) Poll() Sample {
	if in.step >= len(in.script.Steps) {
		return Sample{TriggerDown: in.trigger, Quit: true}
	}
	st := in.script.Steps[in.step]
	if st.Trigger != nil {
		in.trigger = *st.Trigger
	}
	out := Sample{TriggerDown: in.trigger}
	if in.tick == 0 {
		out.SwitchTo = st.Switch
		out.Reload = st.Reload
	}
	in.tick++
	if in.tick >= max(st.Ticks, 1) {
		in.step++
		in.tick = 0
	}
	return out
}
