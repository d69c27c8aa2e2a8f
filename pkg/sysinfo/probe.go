package sysinfo

import (
	"fmt"
	"net/http"
	"strings"
	"time"

	"k8s-sandbox-console/pkg/config"
	"k8s-sandbox-console/pkg/runner"
)

// EnvironmentError is fatal: pre-flight must not continue when the host
// cannot be classified or the network path for installs is down.
type EnvironmentError struct {
	Reason string
	Err    error
}

func (e *EnvironmentError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("environment check failed (%s): %v", e.Reason, e.Err)
	}
	return fmt.Sprintf("environment check failed (%s)", e.Reason)
}

func (e *EnvironmentError) Unwrap() error { return e.Err }

const (
	ReasonDistroUndetectable = "distro-undetectable"
	ReasonNetworkUnreachable = "network-unreachable"
)

// Profile is the resolved distribution identity. Family selects the
// package-manager strategy for the whole session.
type Profile struct {
	ID      string
	Name    string
	Version string
	Family  string // config.FamilyApt, config.FamilyDnf, or "" when unknown
}

// Report is the pre-flight snapshot of the target host.
type Report struct {
	Profile   Profile
	Arch      string
	Kernel    string
	Virt      string // best-effort, "unknown" when undetectable
	NetworkOK bool
}

var familyByID = map[string]string{
	"debian":    config.FamilyApt,
	"ubuntu":    config.FamilyApt,
	"fedora":    config.FamilyDnf,
	"centos":    config.FamilyDnf,
	"rhel":      config.FamilyDnf,
	"rocky":     config.FamilyDnf,
	"almalinux": config.FamilyDnf,
	"openeuler": config.FamilyDnf,
}

// httpHead is swapped out in tests.
var httpHead = func(url string) error {
	client := &http.Client{Timeout: 5 * time.Second}
	resp, err := client.Head(url)
	if err != nil {
		return err
	}
	resp.Body.Close()
	return nil
}

// Probe resolves the target host's identity and capabilities. Distro and
// network failures are fatal; virtualization detection degrades to unknown.
func Probe(run runner.CommandRunner) (*Report, error) {
	report := &Report{Virt: "unknown"}

	osRelease, err := run.Run("cat /etc/os-release")
	if err != nil {
		return nil, &EnvironmentError{Reason: ReasonDistroUndetectable, Err: err}
	}
	profile, err := ParseOSRelease(osRelease)
	if err != nil {
		return nil, &EnvironmentError{Reason: ReasonDistroUndetectable, Err: err}
	}
	report.Profile = profile

	if err := httpHead(config.NetworkProbeURL); err != nil {
		return nil, &EnvironmentError{Reason: ReasonNetworkUnreachable, Err: err}
	}
	report.NetworkOK = true

	if arch, err := run.Run("uname -m"); err == nil {
		report.Arch = normalizeArch(arch)
	}
	if kernel, err := run.Run("uname -r"); err == nil {
		report.Kernel = strings.TrimSpace(kernel)
	}
	if virt, err := run.Run("systemd-detect-virt"); err == nil && strings.TrimSpace(virt) != "" {
		report.Virt = strings.TrimSpace(virt)
	}

	return report, nil
}

// ParseOSRelease extracts the distribution identity from os-release content.
// A file without an ID field is undetectable.
func ParseOSRelease(content string) (Profile, error) {
	fields := map[string]string{}
	for _, line := range strings.Split(content, "\n") {
		line = strings.TrimSpace(line)
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		key, value, ok := strings.Cut(line, "=")
		if !ok {
			continue
		}
		fields[key] = strings.Trim(value, `"`)
	}

	id := strings.ToLower(fields["ID"])
	if id == "" {
		return Profile{}, fmt.Errorf("os-release has no ID field")
	}

	profile := Profile{
		ID:      id,
		Name:    fields["NAME"],
		Version: fields["VERSION_ID"],
		Family:  familyByID[id],
	}
	if profile.Family == "" {
		for _, like := range strings.Fields(strings.ToLower(fields["ID_LIKE"])) {
			if family, ok := familyByID[like]; ok {
				profile.Family = family
				break
			}
		}
	}
	return profile, nil
}

func normalizeArch(raw string) string {
	switch strings.TrimSpace(raw) {
	case "x86_64":
		return "amd64"
	case "aarch64":
		return "arm64"
	default:
		return strings.TrimSpace(raw)
	}
}
