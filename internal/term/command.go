// Package term drives a board from line-oriented terminal input and renders
// it as ANSI frames.
package term

import (
	"fmt"
	"strconv"
	"strings"
)

// Op identifies a terminal command.
type Op int

const (
	OpStartStop Op = iota
	OpStep
	OpClear
	OpRandomize
	OpToggle
	OpQuit
)

// Command is a parsed input line. Row and Col are set for OpToggle.
type Command struct {
	Op       Op
	Row, Col int
}

// ParseCommand parses one input line.
//
//	s | empty line  start/stop
//	n               step one generation
//	c               clear
//	r               randomize
//	t ROW COL       toggle a cell
//	q               quit
func ParseCommand(line string) (Command, error) {
	fields := strings.Fields(strings.ToLower(line))
	if len(fields) == 0 {
		return Command{Op: OpStartStop}, nil
	}
	switch fields[0] {
	case "s", "start", "stop":
		return Command{Op: OpStartStop}, nil
	case "n", "step":
		return Command{Op: OpStep}, nil
	case "c", "clear":
		return Command{Op: OpClear}, nil
	case "r", "random", "randomize":
		return Command{Op: OpRandomize}, nil
	case "q", "quit", "exit":
		return Command{Op: OpQuit}, nil
	case "t", "toggle":
		if len(fields) != 3 {
			return Command{}, fmt.Errorf("toggle wants ROW COL, got %q", line)
		}
		row, err := strconv.Atoi(fields[1])
		if err != nil {
			return Command{}, fmt.Errorf("bad row %q: %w", fields[1], err)
		}
		col, err := strconv.Atoi(fields[2])
		if err != nil {
			return Command{}, fmt.Errorf("bad column %q: %w", fields[2], err)
		}
		return Command{Op: OpToggle, Row: row, Col: col}, nil
	default:
		return Command{}, fmt.Errorf("unknown command %q", fields[0])
	}
}
