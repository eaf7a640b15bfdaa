package ws

import "github.com/plus3/blockfall/runner"

const (
	TypeFrame   = "frame"
	TypeCommand = "command"
	TypeReset   = "reset"
)

// ClientMsg is sent by the browser or bot controlling the game.
type ClientMsg struct {
	Type    string `json:"type"`
	Command string `json:"command,omitempty"`
}

// FrameMsg is pushed to the client whenever the field changes.
type FrameMsg struct {
	Type        string   `json:"type"`
	Step        int64    `json:"step"`
	Width       int      `json:"width"`
	Height      int      `json:"height"`
	Rows        []string `json:"rows"`
	GameOver    bool     `json:"game_over"`
	RowsCleared int      `json:"rows_cleared,omitempty"`
	Reset       bool     `json:"reset,omitempty"`
}

func frameMsg(f runner.Frame) FrameMsg {
	return FrameMsg{
		Type:        TypeFrame,
		Step:        f.Step,
		Width:       f.Grid.Width(),
		Height:      f.Grid.Height(),
		Rows:        f.Grid.Lines(),
		GameOver:    f.GameOver,
		RowsCleared: f.Result.RowsCleared,
		Reset:       f.Reset,
	}
}

// changed reports whether a frame is worth sending.
func changed(f runner.Frame) bool {
	return f.Reset || f.Applied > 0 || f.Result.Stepped
}
