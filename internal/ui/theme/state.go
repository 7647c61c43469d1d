package theme

import (
	"context"
	"encoding/json"
	"fmt"
)

// State is the machine-readable form of a frame, for status bars and scripts.
type State struct {
	DataTheme  string `json:"data_theme"`
	ThemeColor string `json:"theme_color"`
	ToggleIcon string `json:"toggle_icon"`
	Background string `json:"background"`
	Text       string `json:"text"`
	Accent     string `json:"accent"`
}

// StateFromFrame extracts the published fields of a frame.
func StateFromFrame(frame Frame) State {
	return State{
		DataTheme:  frame.Scheme.String(),
		ThemeColor: frame.ThemeColor,
		ToggleIcon: frame.ToggleIcon,
		Background: frame.Palette.Background,
		Text:       frame.Palette.Text,
		Accent:     frame.Palette.Accent,
	}
}

// StateOutput writes State as JSON next to the stylesheet.
type StateOutput struct {
	file fileOutput
}

var _ Output = (*StateOutput)(nil)

// NewStateOutput creates an output writing JSON to path.
func NewStateOutput(path string) *StateOutput {
	return &StateOutput{file: fileOutput{path: path}}
}

// Name implements Output.
func (*StateOutput) Name() string { return "state" }

// Path returns the state file location.
func (s *StateOutput) Path() string { return s.file.path }

// Render implements Output.
func (s *StateOutput) Render(_ context.Context, frame Frame) error {
	data, err := json.MarshalIndent(StateFromFrame(frame), "", "  ")
	if err != nil {
		return fmt.Errorf("encode theme state: %w", err)
	}
	return s.file.write(append(data, '\n'))
}
