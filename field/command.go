package field

import (
	"fmt"
	"strings"
)

// Command is a discrete player intent.
type Command uint8

const (
	ShiftLeft Command = iota
	ShiftRight
	SoftDrop
	HardDrop
	Rotate
)

// Commands lists every command in declaration order.
var Commands = []Command{ShiftLeft, ShiftRight, SoftDrop, HardDrop, Rotate}

var commandNames = [...]string{
	ShiftLeft:  "shift_left",
	ShiftRight: "shift_right",
	SoftDrop:   "soft_drop",
	HardDrop:   "hard_drop",
	Rotate:     "rotate",
}

func (c Command) String() string {
	if int(c) < len(commandNames) {
		return commandNames[c]
	}
	return fmt.Sprintf("Command(%d)", uint8(c))
}

// ParseCommand accepts the String form of a command, case-insensitively, plus the short aliases
// left, right, down, drop and up.
func ParseCommand(s string) (Command, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "shift_left", "left":
		return ShiftLeft, nil
	case "shift_right", "right":
		return ShiftRight, nil
	case "soft_drop", "down":
		return SoftDrop, nil
	case "hard_drop", "drop":
		return HardDrop, nil
	case "rotate", "up":
		return Rotate, nil
	}
	return 0, fmt.Errorf("unknown command %q", s)
}
