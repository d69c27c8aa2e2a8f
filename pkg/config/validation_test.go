package config

import (
	"errors"
	"testing"
)

func TestApplyDefaultsAndValidate(t *testing.T) {
	tests := []struct {
		name    string
		cfg     *Config
		wantErr bool
	}{
		{
			name:    "Empty config gets defaults",
			cfg:     &Config{},
			wantErr: false,
		},
		{
			name: "Unknown tool override",
			cfg: &Config{
				Tools: map[string]string{"helm": "v3.0.0"},
			},
			wantErr: true,
		},
		{
			name: "Stable kubectl override",
			cfg: &Config{
				Tools: map[string]string{"kubectl": VersionStable},
			},
			wantErr: false,
		},
		{
			name: "Malformed minikube version",
			cfg: &Config{
				Tools: map[string]string{"minikube": "1.34"},
			},
			wantErr: true,
		},
		{
			name: "Remote host without user",
			cfg: &Config{
				Remote: RemoteConfig{Host: "192.168.1.10", Password: "pass"},
			},
			wantErr: true,
		},
		{
			name: "Remote host defaults ssh port",
			cfg: &Config{
				Remote: RemoteConfig{Host: "192.168.1.10", User: "root", Password: "pass"},
			},
			wantErr: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ApplyDefaultsAndValidate(tt.cfg)
			if (err != nil) != tt.wantErr {
				t.Errorf("ApplyDefaultsAndValidate() error = %v, wantErr %v", err, tt.wantErr)
			}
			if err == nil && tt.cfg.LogFile == "" {
				t.Errorf("LogFile default not applied")
			}
		})
	}
}

func TestValidators(t *testing.T) {
	tests := []struct {
		name    string
		fn      func(string, string) error
		value   string
		wantErr bool
	}{
		{"valid name", ValidateName, "web", false},
		{"name with dash", ValidateName, "web-1", false},
		{"empty name", ValidateName, "", true},
		{"uppercase name", ValidateName, "Web", true},
		{"name with shell metachar", ValidateName, "web;rm", true},
		{"valid image", ValidateImage, "nginx:1.27", false},
		{"image with registry", ValidateImage, "registry.k8s.io/pause:3.10", false},
		{"image with spaces", ValidateImage, "nginx; rm -rf /", true},
		{"replicas one", ValidatePositiveInt, "1", false},
		{"replicas zero rejected", ValidatePositiveInt, "0", true},
		{"replicas negative rejected", ValidatePositiveInt, "-3", true},
		{"replicas garbage rejected", ValidatePositiveInt, "three", true},
		{"scale to zero allowed", ValidateNonNegativeInt, "0", false},
		{"scale negative rejected", ValidateNonNegativeInt, "-1", true},
		{"gigabyte quantity", ValidateQuantity, "1Gi", false},
		{"megabyte quantity", ValidateQuantity, "500Mi", false},
		{"bogus quantity", ValidateQuantity, "lots", true},
		{"known kind", ValidateResourceKind, "deployment", false},
		{"unknown kind", ValidateResourceKind, "daemonset", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.fn("param", tt.value)
			if (err != nil) != tt.wantErr {
				t.Fatalf("error = %v, wantErr %v", err, tt.wantErr)
			}
			if err != nil {
				var verr *ValidationError
				if !errors.As(err, &verr) {
					t.Fatalf("error %v is not a *ValidationError", err)
				}
			}
		})
	}
}

func TestToolCatalogAppliesOverrides(t *testing.T) {
	cfg := &Config{Tools: map[string]string{"kubectl": VersionStable}}
	for _, spec := range cfg.ToolCatalog() {
		if spec.Name == "kubectl" && spec.Version != VersionStable {
			t.Fatalf("kubectl version = %q, want %q", spec.Version, VersionStable)
		}
		if spec.Name == "minikube" && spec.Version != MinikubeVersions[0] {
			t.Fatalf("minikube version = %q, want pinned default", spec.Version)
		}
	}
}
