package assets

import (
	"bytes"
	"embed"
	"fmt"
	"text/template"

	"gopkg.in/yaml.v3"
)

//go:embed templates/*
var embeddedFiles embed.FS

// VolumeParams fills the persistent-volume manifest templates.
type VolumeParams struct {
	Name      string
	Namespace string
	Capacity  string
	HostPath  string
}

// RenderPV renders the PersistentVolume manifest.
func RenderPV(params VolumeParams) ([]byte, error) {
	return render("templates/pv.yaml", params)
}

// RenderPVC renders the PersistentVolumeClaim manifest.
func RenderPVC(params VolumeParams) ([]byte, error) {
	return render("templates/pvc.yaml", params)
}

func render(path string, params VolumeParams) ([]byte, error) {
	tpl, err := template.ParseFS(embeddedFiles, path)
	if err != nil {
		return nil, fmt.Errorf("failed to parse template %s: %v", path, err)
	}
	var buf bytes.Buffer
	if err := tpl.Execute(&buf, params); err != nil {
		return nil, fmt.Errorf("failed to render template %s: %v", path, err)
	}

	// Catch template/parameter mistakes here instead of at apply time.
	var doc map[string]any
	if err := yaml.Unmarshal(buf.Bytes(), &doc); err != nil {
		return nil, fmt.Errorf("rendered manifest %s is not valid yaml: %v", path, err)
	}
	return buf.Bytes(), nil
}
