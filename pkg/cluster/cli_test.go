package cluster

import (
	"errors"
	"fmt"
	"strings"
	"testing"
)

type fakeRunner struct {
	commands []string
	files    map[string][]byte
	failWith string // commands containing this substring fail
	output   string
}

func (f *fakeRunner) Run(cmd string) (string, error) {
	f.commands = append(f.commands, cmd)
	if f.failWith != "" && strings.Contains(cmd, f.failWith) {
		return f.output, fmt.Errorf("command '%s' failed: exit status 1", cmd)
	}
	return f.output, nil
}

func (f *fakeRunner) WriteFile(path string, data []byte) error {
	if f.files == nil {
		f.files = map[string][]byte{}
	}
	f.files[path] = data
	return nil
}

func TestCommandGrammar(t *testing.T) {
	tests := []struct {
		name string
		call func(c *CLI) (string, error)
		want string
	}{
		{
			name: "start cluster docker driver",
			call: func(c *CLI) (string, error) { return c.StartCluster("docker") },
			want: "minikube start --driver=docker",
		},
		{
			name: "start cluster none driver forces",
			call: func(c *CLI) (string, error) { return c.StartCluster("none") },
			want: "minikube start --driver=none --force",
		},
		{
			name: "create pod",
			call: func(c *CLI) (string, error) { return c.CreatePod("", "web", "nginx") },
			want: "kubectl run web --image=nginx",
		},
		{
			name: "create deployment with replicas",
			call: func(c *CLI) (string, error) { return c.CreateDeployment("", "web", "nginx", 3) },
			want: "kubectl create deployment web --image=nginx --replicas=3",
		},
		{
			name: "scale in namespace",
			call: func(c *CLI) (string, error) { return c.ScaleDeployment("staging", "web", 5) },
			want: "kubectl scale deployment web --replicas=5 -n staging",
		},
		{
			name: "delete resource",
			call: func(c *CLI) (string, error) { return c.DeleteResource("", "deployment", "web") },
			want: "kubectl delete deployment web",
		},
		{
			name: "create namespace",
			call: func(c *CLI) (string, error) { return c.CreateNamespace("staging") },
			want: "kubectl create namespace staging",
		},
		{
			name: "create role",
			call: func(c *CLI) (string, error) { return c.CreateRole("staging", "reader", "get,list", "pods") },
			want: "kubectl create role reader --verb=get,list --resource=pods -n staging",
		},
		{
			name: "create rolebinding",
			call: func(c *CLI) (string, error) {
				return c.CreateRoleBinding("staging", "reader-bind", "reader", "staging:bot")
			},
			want: "kubectl create rolebinding reader-bind --role=reader --serviceaccount=staging:bot -n staging",
		},
		{
			name: "secret literals pass through untouched",
			call: func(c *CLI) (string, error) { return c.CreateSecret("", "creds", "user=admin,pass=s3cret") },
			want: "kubectl create secret generic creds --from-literal=user=admin --from-literal=pass=s3cret",
		},
		{
			name: "malformed secret pair still passes through",
			call: func(c *CLI) (string, error) { return c.CreateSecret("", "creds", "justakey") },
			want: "kubectl create secret generic creds --from-literal=justakey",
		},
		{
			name: "create serviceaccount",
			call: func(c *CLI) (string, error) { return c.CreateServiceAccount("staging", "bot") },
			want: "kubectl create serviceaccount bot -n staging",
		},
		{
			name: "pod logs",
			call: func(c *CLI) (string, error) { return c.PodLogs("", "web-1234") },
			want: "kubectl logs web-1234",
		},
		{
			name: "cluster info",
			call: func(c *CLI) (string, error) { return c.ClusterInfo() },
			want: "kubectl cluster-info",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			run := &fakeRunner{}
			if _, err := tt.call(NewCLI(run)); err != nil {
				t.Fatalf("call error = %v", err)
			}
			if len(run.commands) != 1 {
				t.Fatalf("invocations = %d, want 1 (%v)", len(run.commands), run.commands)
			}
			if run.commands[0] != tt.want {
				t.Fatalf("command = %q, want %q", run.commands[0], tt.want)
			}
		})
	}
}

func TestExternalFailureClassification(t *testing.T) {
	run := &fakeRunner{failWith: "scale", output: `Error from server (NotFound): deployments.apps "ghost" not found`}
	c := NewCLI(run)

	out, err := c.ScaleDeployment("", "ghost", 2)
	var extErr *ExternalError
	if !errors.As(err, &extErr) {
		t.Fatalf("error = %v, want *ExternalError", err)
	}
	if !strings.Contains(out, "NotFound") {
		t.Fatalf("raw output not surfaced: %q", out)
	}
	if extErr.Op != "scale workload" {
		t.Fatalf("Op = %q", extErr.Op)
	}
}

func TestApplyManifestStagesFile(t *testing.T) {
	run := &fakeRunner{}
	c := NewCLI(run)

	manifest := []byte("apiVersion: v1\nkind: PersistentVolumeClaim\n")
	if _, err := c.ApplyManifest("pvc-data", manifest); err != nil {
		t.Fatalf("ApplyManifest() error = %v", err)
	}
	staged, ok := run.files["/tmp/sandbox-console/pvc-data.yaml"]
	if !ok {
		t.Fatalf("manifest not staged, files: %v", run.files)
	}
	if string(staged) != string(manifest) {
		t.Fatalf("staged content mismatch")
	}
	if run.commands[len(run.commands)-1] != "kubectl apply -f /tmp/sandbox-console/pvc-data.yaml" {
		t.Fatalf("apply command = %q", run.commands[len(run.commands)-1])
	}
}
