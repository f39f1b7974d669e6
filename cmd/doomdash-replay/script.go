package main

import (
	"bytes"
	"errors"
	"fmt"
	"io"

	"gopkg.in/yaml.v3"

	"github.com/lixenwraith/doomdash/config"
)

var errBadScript = errors.New("bad script")

// script is a recorded or hand-written input session
// An unset head faces nowhere: dashes follow the hand and uppercuts go straight up
// The first step only seeds the hands, so its moves produce no velocity
type script struct {
	DeltaTime float64      `yaml:"delta_time"`
	Gravity   *config.Vec3 `yaml:"gravity"`
	Start     config.Vec3  `yaml:"start"`
	Head      config.Vec3  `yaml:"head"`
	Steps     []step       `yaml:"steps"`
}

// step holds its inputs for Repeat frames, at least one
type step struct {
	Repeat int          `yaml:"repeat"`
	Head   *config.Vec3 `yaml:"head"`
	Left   *handInput   `yaml:"left"`
	Right  *handInput   `yaml:"right"`
}

// handInput changes only the fields it sets; omitted fields keep their previous value
type handInput struct {
	Grip     *float64     `yaml:"grip"`
	Trigger  *float64     `yaml:"trigger"`
	Position *config.Vec3 `yaml:"position"`
	// Move offsets the position once, on the first frame of the step
	Move *config.Vec3 `yaml:"move"`
}

func loadScript(r io.Reader) (*script, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("read script: %w", err)
	}

	var sc script
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&sc); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, fmt.Errorf("%w: empty", errBadScript)
		}
		return nil, fmt.Errorf("%w: %v", errBadScript, err)
	}

	if sc.DeltaTime <= 0 {
		return nil, fmt.Errorf("%w: delta_time must be positive, got %v", errBadScript, sc.DeltaTime)
	}
	if len(sc.Steps) == 0 {
		return nil, fmt.Errorf("%w: no steps", errBadScript)
	}
	for i, st := range sc.Steps {
		if st.Repeat < 0 {
			return nil, fmt.Errorf("%w: step %d: negative repeat", errBadScript, i)
		}
	}
	return &sc, nil
}

// frames is the total frame count after defaulting repeats
func (sc *script) frames() int {
	n := 0
	for _, st := range sc.Steps {
		n += max(st.Repeat, 1)
	}
	return n
}
