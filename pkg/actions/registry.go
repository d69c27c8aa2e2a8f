package actions

import (
	"errors"
	"fmt"
	"io"

	"k8s-sandbox-console/pkg/cluster"
	"k8s-sandbox-console/pkg/config"
	"k8s-sandbox-console/pkg/install"
	"k8s-sandbox-console/pkg/sysinfo"
	"k8s-sandbox-console/pkg/ui"
)

// ErrCancelled marks a declined confirmation. It is informational, not an
// error condition.
var ErrCancelled = errors.New("cancelled by operator")

// Outcome classifies a finished action for the audit trail.
type Outcome string

const (
	Succeeded       Outcome = "succeeded"
	ExternalFailure Outcome = "external-failure"
	Cancelled       Outcome = "user-cancelled"
	Invalid         Outcome = "validation-failed"
)

// ParamSpec describes one prompted parameter and its local precondition.
type ParamSpec struct {
	Name     string
	Prompt   string
	Validate func(param, value string) error // nil accepts anything
}

type Params map[string]string

func (p Params) Int(name string) int {
	var n int
	fmt.Sscanf(p[name], "%d", &n)
	return n
}

// Deps is everything a handler may touch. Built once per session,
// read-only afterwards.
type Deps struct {
	Runtime    cluster.Runtime
	Installer  *install.Manager
	Tools      []config.ToolSpec
	Report     *sysinfo.Report
	Prompter   ui.ParameterSource
	Out        io.Writer
	Privileged func() bool
}

type HandlerFunc func(d *Deps, p Params) (string, error)

// Descriptor is one catalog entry. The catalog is data: adding an action
// is a new entry here, never a new switch arm in the loop.
type Descriptor struct {
	Selector    string
	Label       string
	Destructive bool
	Params      []ParamSpec
	Handler     HandlerFunc
}

// Execute runs the full per-action state machine: params → gate → invoke.
// It is the single place where the confirmation gate sits, for top-level
// actions and sub-menu actions alike.
func Execute(d *Deps, desc Descriptor) (string, error) {
	params, err := collectParams(d.Prompter, desc.Params)
	if err != nil {
		return "", err
	}
	if desc.Destructive && !ui.Confirm(d.Prompter, fmt.Sprintf("Proceed with %s?", desc.Label)) {
		return "", ErrCancelled
	}
	return desc.Handler(d, params)
}

// Classify maps a handler error to the logged outcome.
func Classify(err error) Outcome {
	var (
		valErr  *config.ValidationError
		extErr  *cluster.ExternalError
		instErr *install.InstallError
	)
	switch {
	case err == nil:
		return Succeeded
	case errors.Is(err, ErrCancelled):
		return Cancelled
	case errors.As(err, &valErr):
		return Invalid
	case errors.As(err, &extErr), errors.As(err, &instErr):
		return ExternalFailure
	default:
		return ExternalFailure
	}
}

func collectParams(src ui.ParameterSource, specs []ParamSpec) (Params, error) {
	params := Params{}
	for _, spec := range specs {
		value, err := src.Prompt(spec.Prompt)
		if err != nil {
			return nil, ErrCancelled
		}
		if spec.Validate != nil {
			if err := spec.Validate(spec.Name, value); err != nil {
				return nil, err
			}
		}
		params[spec.Name] = value
	}
	return params, nil
}

// runSubMenu renders a second-level catalog and executes one selection.
// Destructive sub-actions go through the same gate in Execute.
func runSubMenu(d *Deps, title string, items []Descriptor) (string, error) {
	menu := make([]ui.MenuItem, 0, len(items))
	for _, item := range items {
		menu = append(menu, ui.MenuItem{Selector: item.Selector, Label: item.Label, Destructive: item.Destructive})
	}
	ui.RenderMenu(d.Out, title, menu)

	choice, err := d.Prompter.Prompt("select")
	if err != nil {
		return "", ErrCancelled
	}
	for _, item := range items {
		if item.Selector == choice {
			return Execute(d, item)
		}
	}
	if choice == "q" {
		return "", ErrCancelled
	}
	return "", &config.ValidationError{Param: "selection", Reason: fmt.Sprintf("%q is not an option", choice)}
}

// optionalName accepts an empty value (default namespace) and otherwise
// applies the name rules.
func optionalName(param, value string) error {
	if value == "" {
		return nil
	}
	return config.ValidateName(param, value)
}

var (
	namespaceParam = ParamSpec{Name: "namespace", Prompt: "namespace (empty for default)", Validate: optionalName}
	nameParam      = ParamSpec{Name: "name", Prompt: "name", Validate: config.ValidateName}
)

// Catalog is the static action registry the command loop dispatches on.
func Catalog() []Descriptor {
	return []Descriptor{
		{Selector: "1", Label: "start cluster", Destructive: true, Handler: startCluster},
		{Selector: "2", Label: "stop cluster", Destructive: true, Handler: stopCluster},
		{Selector: "3", Label: "delete cluster", Destructive: true, Handler: deleteCluster},
		{Selector: "4", Label: "create workload", Destructive: true, Params: workloadParams(false), Handler: createWorkload},
		{Selector: "5", Label: "create replicated workload", Destructive: true, Params: workloadParams(true), Handler: createReplicatedWorkload},
		{Selector: "6", Label: "scale workload", Destructive: true, Params: scaleParams(), Handler: scaleWorkload},
		{Selector: "7", Label: "delete resource", Destructive: true, Params: deleteResourceParams(), Handler: deleteResource},
		{Selector: "8", Label: "namespace operations", Handler: namespaceMenu},
		{Selector: "9", Label: "rbac operations", Handler: rbacMenu},
		{Selector: "10", Label: "secret operations", Handler: secretMenu},
		{Selector: "11", Label: "volume operations", Handler: volumeMenu},
		{Selector: "12", Label: "service account operations", Handler: serviceAccountMenu},
		{Selector: "13", Label: "cluster info", Handler: clusterInfo},
		{Selector: "14", Label: "list pods", Params: []ParamSpec{namespaceParam}, Handler: listPods},
		{Selector: "15", Label: "list services", Params: []ParamSpec{namespaceParam}, Handler: listServices},
		{Selector: "16", Label: "view pod logs", Params: []ParamSpec{nameParam, namespaceParam}, Handler: podLogs},
		{Selector: "17", Label: "install tool", Destructive: true, Params: toolParams(), Handler: installTool},
		{Selector: "18", Label: "uninstall tool", Destructive: true, Params: toolParams(), Handler: uninstallTool},
		{Selector: "19", Label: "update tool", Destructive: true, Params: toolParams(), Handler: updateTool},
	}
}
