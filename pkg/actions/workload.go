package actions

import "k8s-sandbox-console/pkg/config"

func workloadParams(replicated bool) []ParamSpec {
	params := []ParamSpec{
		nameParam,
		{Name: "image", Prompt: "image reference", Validate: config.ValidateImage},
	}
	if replicated {
		params = append(params, ParamSpec{Name: "replicas", Prompt: "replica count (>= 1)", Validate: config.ValidatePositiveInt})
	}
	return append(params, namespaceParam)
}

func scaleParams() []ParamSpec {
	return []ParamSpec{
		nameParam,
		{Name: "replicas", Prompt: "replica count (>= 0)", Validate: config.ValidateNonNegativeInt},
		namespaceParam,
	}
}

func deleteResourceParams() []ParamSpec {
	return []ParamSpec{
		{Name: "kind", Prompt: "resource kind", Validate: config.ValidateResourceKind},
		nameParam,
		namespaceParam,
	}
}

func createWorkload(d *Deps, p Params) (string, error) {
	return d.Runtime.CreatePod(p["namespace"], p["name"], p["image"])
}

func createReplicatedWorkload(d *Deps, p Params) (string, error) {
	return d.Runtime.CreateDeployment(p["namespace"], p["name"], p["image"], p.Int("replicas"))
}

func scaleWorkload(d *Deps, p Params) (string, error) {
	return d.Runtime.ScaleDeployment(p["namespace"], p["name"], p.Int("replicas"))
}

func deleteResource(d *Deps, p Params) (string, error) {
	return d.Runtime.DeleteResource(p["namespace"], p["kind"], p["name"])
}
