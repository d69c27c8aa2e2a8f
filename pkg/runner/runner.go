package runner

import (
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
)

// CommandRunner executes one shell command and returns its combined output.
// The local console and the remote ssh session both satisfy it, so every
// component above this line is target-agnostic.
type CommandRunner interface {
	Run(cmd string) (string, error)
	WriteFile(path string, data []byte) error
}

// Local runs commands on the machine the console itself runs on.
type Local struct{}

func NewLocal() *Local {
	return &Local{}
}

func (l *Local) Run(cmd string) (string, error) {
	output, err := exec.Command("bash", "-c", cmd).CombinedOutput()
	outStr := string(output)
	if err != nil {
		return outStr, fmt.Errorf("command '%s' failed: %v, output: %s", cmd, err, strings.TrimSpace(outStr))
	}
	return strings.TrimSpace(outStr), nil
}

func (l *Local) WriteFile(path string, data []byte) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("mkdir -p %s failed: %v", filepath.Dir(path), err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("write file %s failed: %v", path, err)
	}
	return nil
}
