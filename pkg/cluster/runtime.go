package cluster

import "fmt"

// ExternalError wraps a non-success exit of the cluster tooling. The
// session always continues; retrying is the operator's decision.
type ExternalError struct {
	Op     string
	Output string
	Err    error
}

func (e *ExternalError) Error() string {
	return fmt.Sprintf("%s failed: %v", e.Op, e.Err)
}

func (e *ExternalError) Unwrap() error { return e.Err }

// Runtime is the capability surface of the cluster tooling, one method per
// logical operation. The console never parses structured output: list and
// info calls return the tool's raw text for the operator.
//
// A client-library implementation can replace the CLI one without touching
// the action catalog.
type Runtime interface {
	StartCluster(driver string) (string, error)
	StopCluster() (string, error)
	DeleteCluster() (string, error)
	ClusterInfo() (string, error)

	CreatePod(namespace, name, image string) (string, error)
	CreateDeployment(namespace, name, image string, replicas int) (string, error)
	ScaleDeployment(namespace, name string, replicas int) (string, error)
	DeleteResource(namespace, kind, name string) (string, error)

	CreateNamespace(name string) (string, error)
	DeleteNamespace(name string) (string, error)
	ListNamespaces() (string, error)

	CreateRole(namespace, name, verbs, resources string) (string, error)
	CreateRoleBinding(namespace, name, role, serviceAccount string) (string, error)
	ListRoles(namespace string) (string, error)

	CreateSecret(namespace, name, literals string) (string, error)
	ListSecrets(namespace string) (string, error)

	CreateServiceAccount(namespace, name string) (string, error)
	ListServiceAccounts(namespace string) (string, error)

	ApplyManifest(name string, manifest []byte) (string, error)
	ListVolumes(namespace string) (string, error)

	ListPods(namespace string) (string, error)
	ListServices(namespace string) (string, error)
	PodLogs(namespace, name string) (string, error)
}
