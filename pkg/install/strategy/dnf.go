package strategy

import "fmt"

// DnfManager drives dnf-based hosts (Fedora, CentOS, RHEL, Rocky,
// openEuler). openEuler ships dnf, so it folds into the same family.
type DnfManager struct {
	Ctx *Context
}

func (d *DnfManager) Name() string { return "dnf" }

func (d *DnfManager) Refresh() error {
	_, err := d.Ctx.RunCmd("dnf makecache")
	return err
}

func (d *DnfManager) Install(pkg string) error {
	_, err := d.Ctx.RunCmd(fmt.Sprintf("dnf install -y %s", pkg))
	return err
}

func (d *DnfManager) Remove(pkg string) error {
	_, err := d.Ctx.RunCmd(fmt.Sprintf("dnf remove -y %s", pkg))
	return err
}
