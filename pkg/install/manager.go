package install

import (
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"k8s-sandbox-console/pkg/config"
	"k8s-sandbox-console/pkg/install/strategy"
	"k8s-sandbox-console/pkg/runner"
	"k8s-sandbox-console/pkg/sysinfo"
)

// InstallError is scoped to one tool's install or uninstall attempt. It
// never takes the session down.
type InstallError struct {
	Tool   string
	Reason string
	Err    error
}

func (e *InstallError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("install %s failed (%s): %v", e.Tool, e.Reason, e.Err)
	}
	return fmt.Sprintf("install %s failed (%s)", e.Tool, e.Reason)
}

func (e *InstallError) Unwrap() error { return e.Err }

const (
	ReasonUnsupportedDistro = "unsupported-distro"
	ReasonVersionResolution = "version-resolution-failed"
	ReasonInstallFailed     = "install-failed"
)

// Result classifies an EnsureInstalled call.
type Result string

const (
	AlreadyPresent Result = "already-present"
	Installed      Result = "installed"
)

// Manager resolves tool versions and performs idempotent install and
// uninstall of the external binaries the console depends on.
type Manager struct {
	profile sysinfo.Profile
	arch    string
	run     runner.CommandRunner

	// resolved caches floating-version lookups; a version is resolved at
	// most once per session unless Reresolve drops it.
	resolved map[string]string
}

// httpGetString is swapped out in tests.
var httpGetString = func(url string) (string, error) {
	client := &http.Client{Timeout: 10 * time.Second}
	resp, err := client.Get(url)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("unexpected status %s", resp.Status)
	}
	body, err := io.ReadAll(io.LimitReader(resp.Body, 256))
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(string(body)), nil
}

func NewManager(profile sysinfo.Profile, arch string, run runner.CommandRunner) *Manager {
	if arch == "" {
		arch = "amd64"
	}
	return &Manager{
		profile:  profile,
		arch:     arch,
		run:      run,
		resolved: map[string]string{},
	}
}

// Present reports whether the tool's presence command succeeds.
func (m *Manager) Present(tool config.ToolSpec) bool {
	_, err := m.run.Run(tool.PresenceCmd)
	return err == nil
}

// EnsureInstalled installs the tool unless it is already usable. Calling
// it twice in a row never re-installs.
func (m *Manager) EnsureInstalled(tool config.ToolSpec) (Result, error) {
	if m.Present(tool) {
		return AlreadyPresent, nil
	}
	if err := m.install(tool); err != nil {
		return "", err
	}
	return Installed, nil
}

func (m *Manager) install(tool config.ToolSpec) error {
	if len(tool.Packages) > 0 {
		return m.installPackage(tool)
	}
	return m.installBinary(tool)
}

func (m *Manager) installPackage(tool config.ToolSpec) error {
	pm, ok := strategy.ForFamily(m.profile.Family, m.strategyContext())
	if !ok {
		return &InstallError{Tool: tool.Name, Reason: ReasonUnsupportedDistro,
			Err: fmt.Errorf("no package manager for distro %q", m.profile.ID)}
	}
	pkg, ok := tool.Packages[m.profile.Family]
	if !ok {
		return &InstallError{Tool: tool.Name, Reason: ReasonUnsupportedDistro,
			Err: fmt.Errorf("tool has no %s package", m.profile.Family)}
	}
	if err := pm.Refresh(); err != nil {
		return &InstallError{Tool: tool.Name, Reason: ReasonInstallFailed, Err: err}
	}
	if err := pm.Install(pkg); err != nil {
		return &InstallError{Tool: tool.Name, Reason: ReasonInstallFailed, Err: err}
	}
	return nil
}

func (m *Manager) installBinary(tool config.ToolSpec) error {
	version, err := m.resolveVersion(tool)
	if err != nil {
		return err
	}
	url := fmt.Sprintf(tool.DownloadURL, version, m.arch)
	cmd := fmt.Sprintf("curl -fsSL -o %s %s && chmod +x %s", tool.InstallPath, url, tool.InstallPath)
	if _, err := m.run.Run(cmd); err != nil {
		return &InstallError{Tool: tool.Name, Reason: ReasonInstallFailed, Err: err}
	}
	return nil
}

// Uninstall removes the installed artifact. Absence is a no-op, not an
// error.
func (m *Manager) Uninstall(tool config.ToolSpec) error {
	if !m.Present(tool) {
		return nil
	}
	if len(tool.Packages) > 0 {
		pm, ok := strategy.ForFamily(m.profile.Family, m.strategyContext())
		if !ok {
			return &InstallError{Tool: tool.Name, Reason: ReasonUnsupportedDistro,
				Err: fmt.Errorf("no package manager for distro %q", m.profile.ID)}
		}
		pkg := tool.Packages[m.profile.Family]
		if err := pm.Remove(pkg); err != nil {
			return &InstallError{Tool: tool.Name, Reason: ReasonInstallFailed, Err: err}
		}
		return nil
	}
	if _, err := m.run.Run(fmt.Sprintf("rm -f %s", tool.InstallPath)); err != nil {
		return &InstallError{Tool: tool.Name, Reason: ReasonInstallFailed, Err: err}
	}
	return nil
}

// resolveVersion turns a floating version selector into a concrete
// identifier. Pinned versions pass through untouched; resolution failures
// are reported once and left for the operator to retry.
func (m *Manager) resolveVersion(tool config.ToolSpec) (string, error) {
	if tool.Version != config.VersionStable {
		return tool.Version, nil
	}
	if v, ok := m.resolved[tool.Name]; ok {
		return v, nil
	}
	if tool.VersionURL == "" {
		return "", &InstallError{Tool: tool.Name, Reason: ReasonVersionResolution,
			Err: fmt.Errorf("no version source configured")}
	}
	version, err := httpGetString(tool.VersionURL)
	if err != nil || version == "" {
		return "", &InstallError{Tool: tool.Name, Reason: ReasonVersionResolution, Err: err}
	}
	m.resolved[tool.Name] = version
	return version, nil
}

// Reresolve drops the cached version so the next install fetches a fresh
// one. The explicit update action is the only caller.
func (m *Manager) Reresolve(name string) {
	delete(m.resolved, name)
}

func (m *Manager) strategyContext() *strategy.Context {
	return &strategy.Context{Arch: m.arch, RunCmd: m.run.Run}
}

// Steps builds the pre-flight pipeline for the given tools: each step's
// check is the presence probe, its action the install branch.
func (m *Manager) Steps(tools []config.ToolSpec) []runner.Step {
	steps := make([]runner.Step, 0, len(tools))
	for _, tool := range tools {
		tool := tool
		steps = append(steps, runner.Step{
			Name:   fmt.Sprintf("install %s", tool.Name),
			Check:  func() (bool, error) { return m.Present(tool), nil },
			Action: func() error { return m.install(tool) },
		})
	}
	return steps
}
