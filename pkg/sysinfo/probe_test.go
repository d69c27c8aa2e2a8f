package sysinfo

import (
	"errors"
	"fmt"
	"testing"

	"k8s-sandbox-console/pkg/config"
)

type fakeRunner struct {
	outputs map[string]string
	errs    map[string]error
}

func (f *fakeRunner) Run(cmd string) (string, error) {
	if err, ok := f.errs[cmd]; ok {
		return "", err
	}
	return f.outputs[cmd], nil
}

func (f *fakeRunner) WriteFile(string, []byte) error { return nil }

func TestParseOSRelease(t *testing.T) {
	tests := []struct {
		name       string
		content    string
		wantFamily string
		wantID     string
		wantErr    bool
	}{
		{
			name:       "ubuntu",
			content:    "NAME=\"Ubuntu\"\nID=ubuntu\nID_LIKE=debian\nVERSION_ID=\"24.04\"\n",
			wantFamily: config.FamilyApt,
			wantID:     "ubuntu",
		},
		{
			name:       "fedora",
			content:    "NAME=\"Fedora Linux\"\nID=fedora\nVERSION_ID=41\n",
			wantFamily: config.FamilyDnf,
			wantID:     "fedora",
		},
		{
			name:       "openEuler",
			content:    "NAME=\"openEuler\"\nID=\"openEuler\"\nVERSION_ID=\"22.03\"\n",
			wantFamily: config.FamilyDnf,
			wantID:     "openeuler",
		},
		{
			name:       "derivative resolved through ID_LIKE",
			content:    "NAME=\"Linux Mint\"\nID=linuxmint\nID_LIKE=\"ubuntu debian\"\n",
			wantFamily: config.FamilyApt,
			wantID:     "linuxmint",
		},
		{
			name:       "unknown distro keeps empty family",
			content:    "NAME=\"Alpine Linux\"\nID=alpine\n",
			wantFamily: "",
			wantID:     "alpine",
		},
		{
			name:    "missing ID field",
			content: "NAME=\"Mystery\"\n",
			wantErr: true,
		},
		{
			name:    "empty file",
			content: "",
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			profile, err := ParseOSRelease(tt.content)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ParseOSRelease() error = %v, wantErr %v", err, tt.wantErr)
			}
			if err != nil {
				return
			}
			if profile.ID != tt.wantID {
				t.Errorf("ID = %q, want %q", profile.ID, tt.wantID)
			}
			if profile.Family != tt.wantFamily {
				t.Errorf("Family = %q, want %q", profile.Family, tt.wantFamily)
			}
		})
	}
}

func TestProbe(t *testing.T) {
	healthy := &fakeRunner{outputs: map[string]string{
		"cat /etc/os-release": "ID=ubuntu\nNAME=Ubuntu\nVERSION_ID=24.04\n",
		"uname -m":            "x86_64",
		"uname -r":            "6.8.0-51-generic",
		"systemd-detect-virt": "kvm",
	}}

	t.Run("healthy host", func(t *testing.T) {
		restore := stubNetwork(nil)
		defer restore()

		report, err := Probe(healthy)
		if err != nil {
			t.Fatalf("Probe() error = %v", err)
		}
		if report.Profile.Family != config.FamilyApt {
			t.Errorf("Family = %q, want apt", report.Profile.Family)
		}
		if report.Arch != "amd64" {
			t.Errorf("Arch = %q, want amd64", report.Arch)
		}
		if report.Virt != "kvm" {
			t.Errorf("Virt = %q, want kvm", report.Virt)
		}
		if !report.NetworkOK {
			t.Errorf("NetworkOK = false")
		}
	})

	t.Run("missing os-release is fatal", func(t *testing.T) {
		restore := stubNetwork(nil)
		defer restore()

		broken := &fakeRunner{errs: map[string]error{
			"cat /etc/os-release": errors.New("No such file or directory"),
		}}
		_, err := Probe(broken)
		var envErr *EnvironmentError
		if !errors.As(err, &envErr) || envErr.Reason != ReasonDistroUndetectable {
			t.Fatalf("Probe() error = %v, want distro-undetectable", err)
		}
	})

	t.Run("network failure is fatal", func(t *testing.T) {
		restore := stubNetwork(fmt.Errorf("dial tcp: timeout"))
		defer restore()

		_, err := Probe(healthy)
		var envErr *EnvironmentError
		if !errors.As(err, &envErr) || envErr.Reason != ReasonNetworkUnreachable {
			t.Fatalf("Probe() error = %v, want network-unreachable", err)
		}
	})

	t.Run("missing virt detector degrades to unknown", func(t *testing.T) {
		restore := stubNetwork(nil)
		defer restore()

		noVirt := &fakeRunner{
			outputs: healthy.outputs,
			errs:    map[string]error{"systemd-detect-virt": errors.New("command not found")},
		}
		report, err := Probe(noVirt)
		if err != nil {
			t.Fatalf("Probe() error = %v", err)
		}
		if report.Virt != "unknown" {
			t.Errorf("Virt = %q, want unknown", report.Virt)
		}
	})
}

func stubNetwork(err error) func() {
	orig := httpHead
	httpHead = func(string) error { return err }
	return func() { httpHead = orig }
}
