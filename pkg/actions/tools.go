package actions

import (
	"fmt"
	"strings"

	"k8s-sandbox-console/pkg/config"
)

func toolParams() []ParamSpec {
	return []ParamSpec{
		{Name: "tool", Prompt: "tool name (docker, conntrack, kubectl, minikube)", Validate: config.ValidateName},
	}
}

func findTool(d *Deps, name string) (config.ToolSpec, error) {
	name = strings.TrimSpace(name)
	for _, spec := range d.Tools {
		if spec.Name == name {
			return spec, nil
		}
	}
	return config.ToolSpec{}, &config.ValidationError{Param: "tool", Reason: fmt.Sprintf("%q is not a managed tool", name)}
}

func installTool(d *Deps, p Params) (string, error) {
	tool, err := findTool(d, p["tool"])
	if err != nil {
		return "", err
	}
	result, err := d.Installer.EnsureInstalled(tool)
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("%s: %s", tool.Name, result), nil
}

func uninstallTool(d *Deps, p Params) (string, error) {
	tool, err := findTool(d, p["tool"])
	if err != nil {
		return "", err
	}
	if err := d.Installer.Uninstall(tool); err != nil {
		return "", err
	}
	return fmt.Sprintf("%s removed", tool.Name), nil
}

// updateTool drops the cached version resolution and reinstalls, the one
// path that re-resolves a floating version mid-session.
func updateTool(d *Deps, p Params) (string, error) {
	tool, err := findTool(d, p["tool"])
	if err != nil {
		return "", err
	}
	d.Installer.Reresolve(tool.Name)
	if err := d.Installer.Uninstall(tool); err != nil {
		return "", err
	}
	result, err := d.Installer.EnsureInstalled(tool)
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("%s: %s", tool.Name, result), nil
}
