package actions

import "k8s-sandbox-console/pkg/config"

// startCluster picks the execution driver from the session's privilege
// level: root runs the isolation-less none driver (no nested
// virtualization needed), everyone else gets the container-backed one.
func startCluster(d *Deps, _ Params) (string, error) {
	driver := config.DriverDocker
	if d.Privileged() {
		driver = config.DriverNone
	}
	return d.Runtime.StartCluster(driver)
}

func stopCluster(d *Deps, _ Params) (string, error) {
	return d.Runtime.StopCluster()
}

func deleteCluster(d *Deps, _ Params) (string, error) {
	return d.Runtime.DeleteCluster()
}

func clusterInfo(d *Deps, _ Params) (string, error) {
	return d.Runtime.ClusterInfo()
}

func listPods(d *Deps, p Params) (string, error) {
	return d.Runtime.ListPods(p["namespace"])
}

func listServices(d *Deps, p Params) (string, error) {
	return d.Runtime.ListServices(p["namespace"])
}

func podLogs(d *Deps, p Params) (string, error) {
	return d.Runtime.PodLogs(p["namespace"], p["name"])
}
