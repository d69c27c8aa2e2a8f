package strategy

import "k8s-sandbox-console/pkg/config"

// PackageManager abstracts the host package manager for one distribution
// family. The exit status of the underlying command is the only
// success/failure signal.
type PackageManager interface {
	Name() string
	Refresh() error
	Install(pkg string) error
	Remove(pkg string) error
}

// Context carries what a strategy needs to run commands on the target.
type Context struct {
	Arch   string
	RunCmd func(string) (string, error)
}

// ForFamily maps a resolved distro family to its package manager. The
// second return is false for families this console cannot drive.
func ForFamily(family string, ctx *Context) (PackageManager, bool) {
	switch family {
	case config.FamilyApt:
		return &AptManager{Ctx: ctx}, true
	case config.FamilyDnf:
		return &DnfManager{Ctx: ctx}, true
	default:
		return nil, false
	}
}
