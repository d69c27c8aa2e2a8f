package ui

import (
	"bufio"
	"fmt"
	"io"
	"strings"
)

// ParameterSource supplies operator input. The console uses stdin; tests
// use a scripted source so no real terminal is needed.
type ParameterSource interface {
	Prompt(label string) (string, error)
}

// StdinSource reads one line per prompt from an interactive reader.
type StdinSource struct {
	reader *bufio.Reader
	out    io.Writer
}

func NewStdinSource(in io.Reader, out io.Writer) *StdinSource {
	return &StdinSource{reader: bufio.NewReader(in), out: out}
}

func (s *StdinSource) Prompt(label string) (string, error) {
	fmt.Fprintf(s.out, "%s ", Cyan(label+":"))
	line, err := s.reader.ReadString('\n')
	if err != nil && line == "" {
		return "", err
	}
	return strings.TrimSpace(line), nil
}

// ScriptSource replays canned answers in order.
type ScriptSource struct {
	Inputs []string
	next   int
}

func (s *ScriptSource) Prompt(string) (string, error) {
	if s.next >= len(s.Inputs) {
		return "", io.EOF
	}
	answer := s.Inputs[s.next]
	s.next++
	return answer, nil
}

// Confirm gates every destructive action. Only an explicit yes proceeds;
// a rejection, empty answer, or read error all resolve to cancelled. The
// answer is never remembered across invocations.
func Confirm(src ParameterSource, prompt string) bool {
	answer, err := src.Prompt(fmt.Sprintf("%s [y/N]", prompt))
	if err != nil {
		return false
	}
	switch strings.ToLower(strings.TrimSpace(answer)) {
	case "y", "yes":
		return true
	default:
		return false
	}
}
