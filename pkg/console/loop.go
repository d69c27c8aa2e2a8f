package console

import (
	"errors"
	"fmt"
	"strings"

	"k8s-sandbox-console/pkg/actions"
	"k8s-sandbox-console/pkg/cluster"
	"k8s-sandbox-console/pkg/ui"
)

func (s *Session) deps() *actions.Deps {
	return &actions.Deps{
		Runtime:    s.Runtime,
		Installer:  s.Installer,
		Tools:      s.Config.ToolCatalog(),
		Report:     s.Report,
		Prompter:   s.Prompter,
		Out:        s.Out,
		Privileged: s.Privileged,
	}
}

// Loop renders the catalog, dispatches one selection at a time and only
// returns on an explicit exit. Every outcome is logged before the menu
// shows again.
func (s *Session) Loop() error {
	catalog := actions.Catalog()
	menu := make([]ui.MenuItem, 0, len(catalog))
	for _, desc := range catalog {
		menu = append(menu, ui.MenuItem{Selector: desc.Selector, Label: desc.Label, Destructive: desc.Destructive})
	}

	for {
		ui.RenderMenu(s.Out, "Cluster sandbox console", menu)

		choice, err := s.Prompter.Prompt("select action")
		if err != nil {
			return nil
		}
		choice = strings.TrimSpace(choice)
		if choice == "q" || choice == "exit" || choice == "0" {
			return nil
		}

		desc, ok := findAction(catalog, choice)
		if !ok {
			s.Audit.Info("invalid option %q", choice)
			ui.Noticef(s.Out, "invalid option %q", choice)
			continue
		}

		s.dispatch(desc)
	}
}

func (s *Session) dispatch(desc actions.Descriptor) {
	s.Audit.Info("action attempted: %s", desc.Label)

	out, err := actions.Execute(s.deps(), desc)
	switch actions.Classify(err) {
	case actions.Succeeded:
		s.Audit.Info("%s succeeded", desc.Label)
		ui.Successf(s.Out, "%s succeeded", desc.Label)
		if out != "" {
			fmt.Fprintln(s.Out, out)
		}
	case actions.Cancelled:
		s.Audit.Info("%s user-cancelled", desc.Label)
		ui.Noticef(s.Out, "%s cancelled", desc.Label)
	case actions.Invalid:
		s.Audit.Error("%s rejected: %v", desc.Label, err)
		ui.Failf(s.Out, "%v", err)
	default:
		s.Audit.Error("%s failed: %v", desc.Label, err)
		ui.Failf(s.Out, "%s failed: %v", desc.Label, err)
		var extErr *cluster.ExternalError
		if errors.As(err, &extErr) && extErr.Output != "" {
			fmt.Fprintln(s.Out, strings.TrimSpace(extErr.Output))
		}
	}
}

func findAction(catalog []actions.Descriptor, selector string) (actions.Descriptor, bool) {
	for _, desc := range catalog {
		if desc.Selector == selector {
			return desc, true
		}
	}
	return actions.Descriptor{}, false
}
