package overlay

import (
	"encoding/json"
	"fmt"
)

// scriptStep represents a single action in a frame script.
type scriptStep struct {
	Action string `json:"action"`
	Label  string `json:"label,omitempty"`
	Text   string `json:"text,omitempty"`
	Frames int    `json:"frames,omitempty"`
}

// frameScript is the top-level JSON structure for a frame script.
type frameScript struct {
	Steps []scriptStep `json:"steps"`
}

// ScriptRunner sequences caption changes and screenshots across frames for
// automated visual checks. Attach to a FrameLoop via SetScript.
//
// Actions: "wait" (frames), "screenshot" (label), "caption" (text).
type ScriptRunner struct {
	steps     []scriptStep
	cursor    int
	waitCount int
	done      bool
}

// LoadScript parses a JSON frame script.
func LoadScript(jsonData []byte) (*ScriptRunner, error) {
	var script frameScript
	if err := json.Unmarshal(jsonData, &script); err != nil {
		return nil, fmt.Errorf("overlay: parse frame script: %w", err)
	}
	if len(script.Steps) == 0 {
		return nil, fmt.Errorf("overlay: parse frame script: no steps")
	}
	for i, st := range script.Steps {
		switch st.Action {
		case "wait", "screenshot", "caption":
		default:
			return nil, fmt.Errorf("overlay: frame script step %d: unknown action %q", i, st.Action)
		}
	}
	return &ScriptRunner{steps: script.Steps}, nil
}

// SetScript attaches a script. The runner's step method is called at the
// start of every drawn frame.
func (l *FrameLoop) SetScript(r *ScriptRunner) {
	l.script = r
}

// Done reports whether all steps have been executed.
func (r *ScriptRunner) Done() bool {
	return r.done
}

// step advances the runner by one frame.
func (r *ScriptRunner) step(l *FrameLoop) {
	if r.done {
		return
	}
	if r.waitCount > 0 {
		r.waitCount--
		return
	}
	if r.cursor >= len(r.steps) {
		r.done = true
		return
	}

	st := r.steps[r.cursor]
	r.cursor++

	switch st.Action {
	case "screenshot":
		l.Screenshot(st.Label)
	case "caption":
		l.caption.Set(st.Text)
	case "wait":
		if st.Frames > 0 {
			r.waitCount = st.Frames - 1 // this frame counts as one
		}
	}

	if r.cursor >= len(r.steps) && r.waitCount == 0 {
		r.done = true
	}
}

// RunScript drives l without sleeping until the script is done or maxFrames
// frames have been attempted, and returns the number of frames drawn.
func (l *FrameLoop) RunScript(r *ScriptRunner, maxFrames int) (int, error) {
	l.SetScript(r)
	defer l.SetScript(nil)
	drawn := 0
	for i := 0; i < maxFrames && !r.Done(); i++ {
		if l.Step() {
			drawn++
		}
	}
	if !r.Done() {
		return drawn, fmt.Errorf("overlay: frame script not finished after %d frames", maxFrames)
	}
	return drawn, nil
}
