package config

const (
	DefaultLogFile = "sandbox-console.log"
	DefaultSSHPort = 22

	// VersionStable asks the resolver for the latest stable identifier at
	// call time instead of the pinned default.
	VersionStable = "stable"
)

// Package-manager families. A detected distro resolves to exactly one of
// these; everything else is unsupported.
const (
	FamilyApt = "apt"
	FamilyDnf = "dnf"
)

// Cluster execution drivers.
const (
	DriverNone   = "none"
	DriverDocker = "docker"
)

// NetworkProbeURL is the endpoint the pre-flight reachability check hits.
// Install and version resolution depend on the same network path.
var NetworkProbeURL = "https://dl.k8s.io/release/stable.txt"

var (
	MinikubeVersions = []string{"v1.34.0", "latest"}
	KubectlVersions  = []string{"v1.31.0", VersionStable}
)

// ResourceKinds is the fixed set delete-resource accepts.
var ResourceKinds = []string{
	"pod",
	"deployment",
	"replicaset",
	"service",
	"namespace",
	"secret",
	"serviceaccount",
	"pv",
	"pvc",
}

// DefaultTools is the built-in ToolSpec catalog with pinned versions.
// Overrides come from the session config, never from mutation at runtime.
func DefaultTools() []ToolSpec {
	return []ToolSpec{
		{
			Name:        "docker",
			PresenceCmd: "docker --version",
			Packages: map[string]string{
				FamilyApt: "docker.io",
				FamilyDnf: "docker",
			},
		},
		{
			Name:        "conntrack",
			PresenceCmd: "conntrack --version",
			Packages: map[string]string{
				FamilyApt: "conntrack",
				FamilyDnf: "conntrack-tools",
			},
		},
		{
			Name:        "kubectl",
			Version:     KubectlVersions[0],
			VersionURL:  "https://dl.k8s.io/release/stable.txt",
			PresenceCmd: "kubectl version --client",
			InstallPath: "/usr/local/bin/kubectl",
			DownloadURL: "https://dl.k8s.io/release/%s/bin/linux/%s/kubectl",
		},
		{
			Name:        "minikube",
			Version:     MinikubeVersions[0],
			PresenceCmd: "minikube version",
			InstallPath: "/usr/local/bin/minikube",
			DownloadURL: "https://storage.googleapis.com/minikube/releases/%s/minikube-linux-%s",
		},
	}
}
