package cluster

import (
	"fmt"
	"path"
	"strings"

	"k8s-sandbox-console/pkg/config"
	"k8s-sandbox-console/pkg/runner"
)

// CLI drives the cluster through the minikube and kubectl binaries with a
// fixed argument grammar. Exit status is the only success signal.
type CLI struct {
	run runner.CommandRunner
}

func NewCLI(run runner.CommandRunner) *CLI {
	return &CLI{run: run}
}

func (c *CLI) invoke(op, cmd string) (string, error) {
	out, err := c.run.Run(cmd)
	if err != nil {
		return out, &ExternalError{Op: op, Output: out, Err: err}
	}
	return out, nil
}

func inNamespace(cmd, namespace string) string {
	if namespace == "" {
		return cmd
	}
	return fmt.Sprintf("%s -n %s", cmd, namespace)
}

func (c *CLI) StartCluster(driver string) (string, error) {
	cmd := fmt.Sprintf("minikube start --driver=%s", driver)
	// The none driver runs as root and minikube refuses that without
	// --force.
	if driver == config.DriverNone {
		cmd += " --force"
	}
	return c.invoke("start cluster", cmd)
}

func (c *CLI) StopCluster() (string, error) {
	return c.invoke("stop cluster", "minikube stop")
}

func (c *CLI) DeleteCluster() (string, error) {
	return c.invoke("delete cluster", "minikube delete")
}

func (c *CLI) ClusterInfo() (string, error) {
	return c.invoke("cluster info", "kubectl cluster-info")
}

func (c *CLI) CreatePod(namespace, name, image string) (string, error) {
	cmd := inNamespace(fmt.Sprintf("kubectl run %s --image=%s", name, image), namespace)
	return c.invoke("create workload", cmd)
}

func (c *CLI) CreateDeployment(namespace, name, image string, replicas int) (string, error) {
	cmd := inNamespace(fmt.Sprintf("kubectl create deployment %s --image=%s --replicas=%d", name, image, replicas), namespace)
	return c.invoke("create replicated workload", cmd)
}

func (c *CLI) ScaleDeployment(namespace, name string, replicas int) (string, error) {
	cmd := inNamespace(fmt.Sprintf("kubectl scale deployment %s --replicas=%d", name, replicas), namespace)
	return c.invoke("scale workload", cmd)
}

func (c *CLI) DeleteResource(namespace, kind, name string) (string, error) {
	cmd := inNamespace(fmt.Sprintf("kubectl delete %s %s", kind, name), namespace)
	return c.invoke("delete resource", cmd)
}

func (c *CLI) CreateNamespace(name string) (string, error) {
	return c.invoke("create namespace", fmt.Sprintf("kubectl create namespace %s", name))
}

func (c *CLI) DeleteNamespace(name string) (string, error) {
	return c.invoke("delete namespace", fmt.Sprintf("kubectl delete namespace %s", name))
}

func (c *CLI) ListNamespaces() (string, error) {
	return c.invoke("list namespaces", "kubectl get namespaces")
}

func (c *CLI) CreateRole(namespace, name, verbs, resources string) (string, error) {
	cmd := inNamespace(fmt.Sprintf("kubectl create role %s --verb=%s --resource=%s", name, verbs, resources), namespace)
	return c.invoke("create role", cmd)
}

func (c *CLI) CreateRoleBinding(namespace, name, role, serviceAccount string) (string, error) {
	cmd := inNamespace(fmt.Sprintf("kubectl create rolebinding %s --role=%s --serviceaccount=%s", name, role, serviceAccount), namespace)
	return c.invoke("create rolebinding", cmd)
}

func (c *CLI) ListRoles(namespace string) (string, error) {
	return c.invoke("list roles", inNamespace("kubectl get roles,rolebindings", namespace))
}

// CreateSecret passes literal pairs straight through. Pair syntax is the
// external tool's problem; a malformed pair comes back as its error.
func (c *CLI) CreateSecret(namespace, name, literals string) (string, error) {
	cmd := fmt.Sprintf("kubectl create secret generic %s", name)
	for _, pair := range strings.Split(literals, ",") {
		cmd += fmt.Sprintf(" --from-literal=%s", strings.TrimSpace(pair))
	}
	return c.invoke("create secret", inNamespace(cmd, namespace))
}

func (c *CLI) ListSecrets(namespace string) (string, error) {
	return c.invoke("list secrets", inNamespace("kubectl get secrets", namespace))
}

func (c *CLI) CreateServiceAccount(namespace, name string) (string, error) {
	cmd := inNamespace(fmt.Sprintf("kubectl create serviceaccount %s", name), namespace)
	return c.invoke("create serviceaccount", cmd)
}

func (c *CLI) ListServiceAccounts(namespace string) (string, error) {
	return c.invoke("list serviceaccounts", inNamespace("kubectl get serviceaccounts", namespace))
}

// ApplyManifest stages the rendered manifest on the target and applies it.
// Staging through the runner keeps remote sessions working.
func (c *CLI) ApplyManifest(name string, manifest []byte) (string, error) {
	target := path.Join("/tmp/sandbox-console", name+".yaml")
	if err := c.run.WriteFile(target, manifest); err != nil {
		return "", &ExternalError{Op: "apply manifest", Err: err}
	}
	return c.invoke("apply manifest", fmt.Sprintf("kubectl apply -f %s", target))
}

func (c *CLI) ListVolumes(namespace string) (string, error) {
	return c.invoke("list volumes", inNamespace("kubectl get pv,pvc", namespace))
}

func (c *CLI) ListPods(namespace string) (string, error) {
	return c.invoke("list pods", inNamespace("kubectl get pods", namespace))
}

func (c *CLI) ListServices(namespace string) (string, error) {
	return c.invoke("list services", inNamespace("kubectl get services", namespace))
}

func (c *CLI) PodLogs(namespace, name string) (string, error) {
	return c.invoke("view logs", inNamespace(fmt.Sprintf("kubectl logs %s", name), namespace))
}
