package actions

import (
	"k8s-sandbox-console/pkg/assets"
	"k8s-sandbox-console/pkg/config"
)

func namespaceMenu(d *Deps, _ Params) (string, error) {
	return runSubMenu(d, "Namespace operations", []Descriptor{
		{Selector: "1", Label: "create namespace", Destructive: true,
			Params: []ParamSpec{nameParam},
			Handler: func(d *Deps, p Params) (string, error) {
				return d.Runtime.CreateNamespace(p["name"])
			}},
		{Selector: "2", Label: "delete namespace", Destructive: true,
			Params: []ParamSpec{nameParam},
			Handler: func(d *Deps, p Params) (string, error) {
				return d.Runtime.DeleteNamespace(p["name"])
			}},
		{Selector: "3", Label: "list namespaces",
			Handler: func(d *Deps, _ Params) (string, error) {
				return d.Runtime.ListNamespaces()
			}},
	})
}

func rbacMenu(d *Deps, _ Params) (string, error) {
	return runSubMenu(d, "RBAC operations", []Descriptor{
		{Selector: "1", Label: "create role", Destructive: true,
			Params: []ParamSpec{
				nameParam,
				{Name: "verbs", Prompt: "verbs (comma-separated, e.g. get,list)"},
				{Name: "resources", Prompt: "resources (comma-separated, e.g. pods)"},
				namespaceParam,
			},
			Handler: func(d *Deps, p Params) (string, error) {
				return d.Runtime.CreateRole(p["namespace"], p["name"], p["verbs"], p["resources"])
			}},
		{Selector: "2", Label: "create rolebinding", Destructive: true,
			Params: []ParamSpec{
				nameParam,
				{Name: "role", Prompt: "role to bind", Validate: config.ValidateName},
				{Name: "serviceaccount", Prompt: "service account (namespace:name)"},
				namespaceParam,
			},
			Handler: func(d *Deps, p Params) (string, error) {
				return d.Runtime.CreateRoleBinding(p["namespace"], p["name"], p["role"], p["serviceaccount"])
			}},
		{Selector: "3", Label: "list roles and bindings",
			Params: []ParamSpec{namespaceParam},
			Handler: func(d *Deps, p Params) (string, error) {
				return d.Runtime.ListRoles(p["namespace"])
			}},
	})
}

func secretMenu(d *Deps, _ Params) (string, error) {
	return runSubMenu(d, "Secret operations", []Descriptor{
		{Selector: "1", Label: "create secret", Destructive: true,
			Params: []ParamSpec{
				nameParam,
				// Pair syntax is deliberately not validated; the external
				// tool owns the k=v grammar and its error messages.
				{Name: "literals", Prompt: "literals (k=v,k2=v2)"},
				namespaceParam,
			},
			Handler: func(d *Deps, p Params) (string, error) {
				return d.Runtime.CreateSecret(p["namespace"], p["name"], p["literals"])
			}},
		{Selector: "2", Label: "delete secret", Destructive: true,
			Params: []ParamSpec{nameParam, namespaceParam},
			Handler: func(d *Deps, p Params) (string, error) {
				return d.Runtime.DeleteResource(p["namespace"], "secret", p["name"])
			}},
		{Selector: "3", Label: "list secrets",
			Params: []ParamSpec{namespaceParam},
			Handler: func(d *Deps, p Params) (string, error) {
				return d.Runtime.ListSecrets(p["namespace"])
			}},
	})
}

func volumeMenu(d *Deps, _ Params) (string, error) {
	capacityParam := ParamSpec{Name: "capacity", Prompt: "capacity (e.g. 1Gi)", Validate: config.ValidateQuantity}
	return runSubMenu(d, "Volume operations", []Descriptor{
		{Selector: "1", Label: "create persistent volume", Destructive: true,
			Params: []ParamSpec{nameParam, capacityParam,
				{Name: "hostpath", Prompt: "host path (e.g. /data/pv1)"}},
			Handler: func(d *Deps, p Params) (string, error) {
				manifest, err := assets.RenderPV(assets.VolumeParams{
					Name: p["name"], Capacity: p["capacity"], HostPath: p["hostpath"],
				})
				if err != nil {
					return "", err
				}
				return d.Runtime.ApplyManifest(p["name"], manifest)
			}},
		{Selector: "2", Label: "create persistent volume claim", Destructive: true,
			Params: []ParamSpec{nameParam, capacityParam, namespaceParam},
			Handler: func(d *Deps, p Params) (string, error) {
				manifest, err := assets.RenderPVC(assets.VolumeParams{
					Name: p["name"], Namespace: p["namespace"], Capacity: p["capacity"],
				})
				if err != nil {
					return "", err
				}
				return d.Runtime.ApplyManifest(p["name"], manifest)
			}},
		{Selector: "3", Label: "delete volume", Destructive: true,
			Params: []ParamSpec{
				{Name: "kind", Prompt: "kind (pv or pvc)", Validate: config.ValidateResourceKind},
				nameParam, namespaceParam,
			},
			Handler: func(d *Deps, p Params) (string, error) {
				return d.Runtime.DeleteResource(p["namespace"], p["kind"], p["name"])
			}},
		{Selector: "4", Label: "list volumes",
			Params: []ParamSpec{namespaceParam},
			Handler: func(d *Deps, p Params) (string, error) {
				return d.Runtime.ListVolumes(p["namespace"])
			}},
	})
}

func serviceAccountMenu(d *Deps, _ Params) (string, error) {
	return runSubMenu(d, "Service account operations", []Descriptor{
		{Selector: "1", Label: "create service account", Destructive: true,
			Params: []ParamSpec{nameParam, namespaceParam},
			Handler: func(d *Deps, p Params) (string, error) {
				return d.Runtime.CreateServiceAccount(p["namespace"], p["name"])
			}},
		{Selector: "2", Label: "delete service account", Destructive: true,
			Params: []ParamSpec{nameParam, namespaceParam},
			Handler: func(d *Deps, p Params) (string, error) {
				return d.Runtime.DeleteResource(p["namespace"], "serviceaccount", p["name"])
			}},
		{Selector: "3", Label: "list service accounts",
			Params: []ParamSpec{namespaceParam},
			Handler: func(d *Deps, p Params) (string, error) {
				return d.Runtime.ListServiceAccounts(p["namespace"])
			}},
	})
}
