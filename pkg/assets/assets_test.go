package assets

import (
	"strings"
	"testing"

	"gopkg.in/yaml.v3"
)

type manifest struct {
	APIVersion string `yaml:"apiVersion"`
	Kind       string `yaml:"kind"`
	Metadata   struct {
		Name      string `yaml:"name"`
		Namespace string `yaml:"namespace"`
	} `yaml:"metadata"`
}

func TestRenderPV(t *testing.T) {
	data, err := RenderPV(VolumeParams{Name: "data-pv", Capacity: "1Gi", HostPath: "/data/pv"})
	if err != nil {
		t.Fatalf("RenderPV() error = %v", err)
	}

	var m manifest
	if err := yaml.Unmarshal(data, &m); err != nil {
		t.Fatalf("rendered PV is not yaml: %v", err)
	}
	if m.Kind != "PersistentVolume" || m.Metadata.Name != "data-pv" {
		t.Fatalf("unexpected manifest: kind=%q name=%q", m.Kind, m.Metadata.Name)
	}
	if !strings.Contains(string(data), "path: /data/pv") {
		t.Fatalf("host path missing:\n%s", data)
	}
}

func TestRenderPVC(t *testing.T) {
	tests := []struct {
		name      string
		params    VolumeParams
		wantNS    string
		wantInDoc string
	}{
		{
			name:      "with namespace",
			params:    VolumeParams{Name: "data-pvc", Namespace: "staging", Capacity: "500Mi"},
			wantNS:    "staging",
			wantInDoc: "storage: 500Mi",
		},
		{
			name:      "default namespace omitted",
			params:    VolumeParams{Name: "data-pvc", Capacity: "1Gi"},
			wantNS:    "",
			wantInDoc: "storage: 1Gi",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			data, err := RenderPVC(tt.params)
			if err != nil {
				t.Fatalf("RenderPVC() error = %v", err)
			}
			var m manifest
			if err := yaml.Unmarshal(data, &m); err != nil {
				t.Fatalf("rendered PVC is not yaml: %v", err)
			}
			if m.Kind != "PersistentVolumeClaim" {
				t.Fatalf("kind = %q", m.Kind)
			}
			if m.Metadata.Namespace != tt.wantNS {
				t.Fatalf("namespace = %q, want %q", m.Metadata.Namespace, tt.wantNS)
			}
			if !strings.Contains(string(data), tt.wantInDoc) {
				t.Fatalf("missing %q in:\n%s", tt.wantInDoc, data)
			}
		})
	}
}
