package console

import (
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"k8s-sandbox-console/pkg/audit"
	"k8s-sandbox-console/pkg/cluster"
	"k8s-sandbox-console/pkg/config"
	"k8s-sandbox-console/pkg/install"
	"k8s-sandbox-console/pkg/runner"
	"k8s-sandbox-console/pkg/ssh"
	"k8s-sandbox-console/pkg/sysinfo"
	"k8s-sandbox-console/pkg/ui"
)

// Session is the process-wide state: resolved environment, tool manager,
// runtime client and the open audit log. Built once at startup, read-only
// afterwards, closed at exit.
type Session struct {
	Config    *config.Config
	Report    *sysinfo.Report
	Runner    runner.CommandRunner
	Runtime   cluster.Runtime
	Installer *install.Manager
	Audit     *audit.Logger
	Prompter  ui.ParameterSource
	Out       io.Writer

	sshClient *ssh.Client
}

// NewSession wires the execution target (local or remote) and opens the
// audit sink. The environment is not probed yet; Probe does that.
func NewSession(cfg *config.Config, in io.Reader, out io.Writer) (*Session, error) {
	s := &Session{
		Config:   cfg,
		Out:      out,
		Prompter: ui.NewStdinSource(in, out),
	}

	if cfg.Remote.Host != "" {
		client, err := ssh.NewClient(cfg.Remote.Host, cfg.Remote.SSHPort, cfg.Remote.User, cfg.Remote.Password)
		if err != nil {
			return nil, fmt.Errorf("remote session to %s failed: %v", cfg.Remote.Host, err)
		}
		s.sshClient = client
		s.Runner = client
	} else {
		s.Runner = runner.NewLocal()
	}

	logger, err := audit.New(cfg.LogFile, out)
	if err != nil {
		if s.sshClient != nil {
			s.sshClient.Close()
		}
		return nil, err
	}
	s.Audit = logger
	return s, nil
}

func (s *Session) Close() {
	if s.Audit != nil {
		s.Audit.Info("session closed")
		s.Audit.Close()
	}
	if s.sshClient != nil {
		s.sshClient.Close()
	}
}

// Probe resolves the environment and wires the components that depend on
// it. Failures here are fatal: installs cannot proceed on an unknown
// package manager or without a network path.
func (s *Session) Probe() error {
	report, err := sysinfo.Probe(s.Runner)
	if err != nil {
		s.Audit.Error("pre-flight failed: %v", err)
		return err
	}
	s.Report = report
	s.Installer = install.NewManager(report.Profile, report.Arch, s.Runner)
	s.Runtime = cluster.NewCLI(s.Runner)

	s.Audit.Info("detected %s %s (%s family) | kernel %s | arch %s | virt %s",
		report.Profile.Name, report.Profile.Version, report.Profile.Family,
		report.Kernel, report.Arch, report.Virt)
	s.Audit.Info("network check passed")
	fmt.Fprintf(s.Out, "detected %s %s | kernel %s | arch %s | virt %s\n",
		report.Profile.Name, report.Profile.Version, report.Kernel, report.Arch, report.Virt)
	return nil
}

// Preflight probes the environment and then brings the managed tools up
// through the install pipeline. A tool install failure is reported but
// leaves the session usable; the operator can retry from the menu.
func (s *Session) Preflight() error {
	if err := s.Probe(); err != nil {
		return err
	}

	tools := s.Config.ToolCatalog()
	steps := s.Installer.Steps(tools)
	rep := &auditedReporter{
		next:  ui.NewPipeline("pre-flight", len(steps), s.Out),
		audit: s.Audit,
	}
	if err := runner.RunPipeline(steps, rep); err != nil {
		ui.Failf(s.Out, "pre-flight install incomplete: %v", err)
	}
	return nil
}

// Privileged reports whether commands on the target run as root. The
// answer picks the cluster execution driver.
func (s *Session) Privileged() bool {
	if s.sshClient == nil {
		return os.Geteuid() == 0
	}
	out, err := s.Runner.Run("id -u")
	return err == nil && strings.TrimSpace(out) == "0"
}

// auditedReporter forwards pipeline progress to the UI and mirrors every
// step outcome into the audit log before the pipeline moves on.
type auditedReporter struct {
	next  runner.Reporter
	audit *audit.Logger
}

func (r *auditedReporter) StepStarted(name string) { r.next.StepStarted(name) }

func (r *auditedReporter) StepSkipped(name string, d time.Duration) {
	r.audit.Info("%s: already satisfied", name)
	r.next.StepSkipped(name, d)
}

func (r *auditedReporter) StepCompleted(name string, d time.Duration) {
	r.audit.Info("%s: done in %v", name, d.Round(time.Millisecond))
	r.next.StepCompleted(name, d)
}

func (r *auditedReporter) StepFailed(name string, err error, d time.Duration) {
	r.audit.Error("%s: %v", name, err)
	r.next.StepFailed(name, err, d)
}

func (r *auditedReporter) PipelineDone(ok bool, d time.Duration) {
	r.next.PipelineDone(ok, d)
}
