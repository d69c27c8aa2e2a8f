package strategy

import "fmt"

// AptManager drives apt-based hosts (Debian, Ubuntu and derivatives).
type AptManager struct {
	Ctx *Context
}

func (a *AptManager) Name() string { return "apt" }

func (a *AptManager) Refresh() error {
	_, err := a.Ctx.RunCmd("apt-get update -y")
	return err
}

func (a *AptManager) Install(pkg string) error {
	_, err := a.Ctx.RunCmd(fmt.Sprintf("DEBIAN_FRONTEND=noninteractive apt-get install -y %s", pkg))
	return err
}

func (a *AptManager) Remove(pkg string) error {
	_, err := a.Ctx.RunCmd(fmt.Sprintf("DEBIAN_FRONTEND=noninteractive apt-get remove -y %s", pkg))
	return err
}
