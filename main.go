package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"k8s-sandbox-console/pkg/config"
	"k8s-sandbox-console/pkg/console"
	"k8s-sandbox-console/pkg/ui"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		ui.Failf(os.Stderr, "%v", err)
		os.Exit(1)
	}
}

type rootFlags struct {
	configPath string
	logFile    string
	remote     string
	sshUser    string
	sshPass    string
	sshPort    int
}

func newRootCmd() *cobra.Command {
	flags := &rootFlags{}

	cmd := &cobra.Command{
		Use:          "sandbox-console",
		Short:        "Interactive operator console for a single-node Kubernetes sandbox",
		Long:         "Installs the cluster tooling, brings up a local cluster and issues lifecycle operations against it from a numbered action menu.",
		SilenceUsage: true,
		RunE: func(_ *cobra.Command, _ []string) error {
			return runConsole(flags)
		},
	}

	cmd.PersistentFlags().StringVar(&flags.configPath, "config", "", "path to an optional yaml config file")
	cmd.PersistentFlags().StringVar(&flags.logFile, "log-file", "", "audit log path (default "+config.DefaultLogFile+")")
	cmd.PersistentFlags().StringVar(&flags.remote, "remote", "", "operate on a remote host over ssh instead of locally")
	cmd.PersistentFlags().StringVar(&flags.sshUser, "ssh-user", "root", "ssh user for --remote")
	cmd.PersistentFlags().StringVar(&flags.sshPass, "ssh-password", "", "ssh password for --remote")
	cmd.PersistentFlags().IntVar(&flags.sshPort, "ssh-port", config.DefaultSSHPort, "ssh port for --remote")

	cmd.AddCommand(&cobra.Command{
		Use:   "console",
		Short: "Pre-flight, then the interactive action menu (the default)",
		RunE: func(_ *cobra.Command, _ []string) error {
			return runConsole(flags)
		},
	})
	cmd.AddCommand(newPreflightCmd(flags))
	cmd.AddCommand(newToolCmd(flags, "install", "Install one managed tool"))
	cmd.AddCommand(newToolCmd(flags, "uninstall", "Uninstall one managed tool"))

	return cmd
}

func runConsole(flags *rootFlags) error {
	s, err := newSession(flags)
	if err != nil {
		return err
	}
	defer s.Close()

	if err := s.Preflight(); err != nil {
		return err
	}
	return s.Loop()
}

func newPreflightCmd(flags *rootFlags) *cobra.Command {
	return &cobra.Command{
		Use:   "preflight",
		Short: "Probe the environment and install missing tools, then exit",
		RunE: func(_ *cobra.Command, _ []string) error {
			s, err := newSession(flags)
			if err != nil {
				return err
			}
			defer s.Close()
			return s.Preflight()
		},
	}
}

func newToolCmd(flags *rootFlags, verb, short string) *cobra.Command {
	return &cobra.Command{
		Use:   verb + " <tool>",
		Short: short,
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := newSession(flags)
			if err != nil {
				return err
			}
			defer s.Close()

			if err := s.Probe(); err != nil {
				return err
			}

			var tool *config.ToolSpec
			for _, spec := range s.Config.ToolCatalog() {
				if spec.Name == args[0] {
					spec := spec
					tool = &spec
					break
				}
			}
			if tool == nil {
				return fmt.Errorf("%q is not a managed tool", args[0])
			}

			if verb == "uninstall" {
				if err := s.Installer.Uninstall(*tool); err != nil {
					s.Audit.Error("uninstall %s failed: %v", tool.Name, err)
					return err
				}
				s.Audit.Info("uninstalled %s", tool.Name)
				ui.Successf(cmd.OutOrStdout(), "%s removed", tool.Name)
				return nil
			}

			result, err := s.Installer.EnsureInstalled(*tool)
			if err != nil {
				s.Audit.Error("install %s failed: %v", tool.Name, err)
				return err
			}
			s.Audit.Info("install %s: %s", tool.Name, result)
			ui.Successf(cmd.OutOrStdout(), "%s: %s", tool.Name, result)
			return nil
		},
	}
}

func newSession(flags *rootFlags) (*console.Session, error) {
	cfg, err := config.Load(flags.configPath)
	if err != nil {
		return nil, err
	}
	if flags.logFile != "" {
		cfg.LogFile = flags.logFile
	}
	if flags.remote != "" {
		cfg.Remote.Host = flags.remote
		cfg.Remote.User = flags.sshUser
		cfg.Remote.Password = flags.sshPass
		cfg.Remote.SSHPort = flags.sshPort
	}
	if err := config.ApplyDefaultsAndValidate(cfg); err != nil {
		return nil, err
	}
	return console.NewSession(cfg, os.Stdin, os.Stdout)
}
