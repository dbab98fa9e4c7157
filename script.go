package canvas

import (
	"encoding/json"
	"fmt"

	"github.com/hajimehoshi/ebiten/v2"
)

// scriptStep represents a single action in an event script.
type scriptStep struct {
	Action string `json:"action"`
	Width  int    `json:"width,omitempty"`
	Height int    `json:"height,omitempty"`
	Key    string `json:"key,omitempty"`
	Frames int    `json:"frames,omitempty"`
}

// eventScript is the top-level JSON structure for an event script.
type eventScript struct {
	Steps []scriptStep `json:"steps"`
}

// LoadEventScript parses a JSON event script into an EventQueue for headless
// runs. Supported actions are "redraw" (repeated "frames" times, default 1),
// "resize" (width, height), "key" (an ebiten key name such as "Escape") and
// "quit".
//
//	{"steps": [
//		{"action": "redraw", "frames": 2},
//		{"action": "resize", "width": 800, "height": 600},
//		{"action": "key", "key": "Escape"}
//	]}
func LoadEventScript(jsonData []byte) (*EventQueue, error) {
	var script eventScript
	if err := json.Unmarshal(jsonData, &script); err != nil {
		return nil, fmt.Errorf("parse event script: %w", err)
	}
	if len(script.Steps) == 0 {
		return nil, fmt.Errorf("parse event script: no steps")
	}

	q := &EventQueue{}
	for i, st := range script.Steps {
		switch st.Action {
		case "redraw":
			frames := st.Frames
			if frames < 1 {
				frames = 1
			}
			q.PushRedraw(frames)
		case "resize":
			if st.Width <= 0 || st.Height <= 0 {
				return nil, fmt.Errorf("parse event script: step %d: %w: %dx%d", i, ErrInvalidSize, st.Width, st.Height)
			}
			q.PushResize(st.Width, st.Height)
		case "key":
			var k ebiten.Key
			if err := k.UnmarshalText([]byte(st.Key)); err != nil {
				return nil, fmt.Errorf("parse event script: step %d: %w", i, err)
			}
			q.PushKey(k)
		case "quit":
			q.PushQuit()
		default:
			return nil, fmt.Errorf("parse event script: step %d: unknown action %q", i, st.Action)
		}
	}
	return q, nil
}
