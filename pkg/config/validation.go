package config

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

// ValidationError marks a parameter that failed a local precondition. The
// action aborts before any external invocation.
type ValidationError struct {
	Param  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid %s: %s", e.Param, e.Reason)
}

func stringInSlice(str string, slice []string) bool {
	for _, item := range slice {
		if item == str {
			return true
		}
	}
	return false
}

// ApplyDefaultsAndValidate applies default values and validates the configuration
func ApplyDefaultsAndValidate(cfg *Config) error {
	if cfg.LogFile == "" {
		cfg.LogFile = DefaultLogFile
	}
	if cfg.Tools == nil {
		cfg.Tools = map[string]string{}
	}

	known := DefaultTools()
	for name := range cfg.Tools {
		found := false
		for _, spec := range known {
			if spec.Name == name {
				found = true
				break
			}
		}
		if !found {
			return fmt.Errorf("Error: tool %s in config is not managed by this console.", name)
		}
	}

	if v, ok := cfg.Tools["minikube"]; ok && v != "" && !stringInSlice(v, MinikubeVersions) && !strings.HasPrefix(v, "v") {
		return fmt.Errorf("Error: minikube version %s is not supported.", v)
	}
	if v, ok := cfg.Tools["kubectl"]; ok && v != "" && v != VersionStable && !strings.HasPrefix(v, "v") {
		return fmt.Errorf("Error: kubectl version %s is not supported.", v)
	}

	if cfg.Remote.Host != "" {
		if strings.TrimSpace(cfg.Remote.User) == "" {
			return fmt.Errorf("Error: remote user is required.")
		}
		if strings.TrimSpace(cfg.Remote.Password) == "" {
			return fmt.Errorf("Error: remote password is required.")
		}
		if cfg.Remote.SSHPort == 0 {
			cfg.Remote.SSHPort = DefaultSSHPort
		}
	}
	return nil
}

// nameRe matches the DNS-1123 subset the cluster tool accepts for resource
// and namespace names. Keeping it strict also keeps shell-out safe.
var nameRe = regexp.MustCompile(`^[a-z0-9]([-a-z0-9.]*[a-z0-9])?$`)

// ValidateName checks a resource or namespace name.
func ValidateName(param, value string) error {
	if strings.TrimSpace(value) == "" {
		return &ValidationError{Param: param, Reason: "must not be empty"}
	}
	if !nameRe.MatchString(value) {
		return &ValidationError{Param: param, Reason: "must be a lowercase DNS-style name"}
	}
	return nil
}

// ValidateImage checks an image reference. Only shell-hostile characters are
// rejected; registry syntax is left to the external tool.
func ValidateImage(param, value string) error {
	if strings.TrimSpace(value) == "" {
		return &ValidationError{Param: param, Reason: "must not be empty"}
	}
	if strings.ContainsAny(value, " \t'\"`$;|&<>") {
		return &ValidationError{Param: param, Reason: "contains illegal characters"}
	}
	return nil
}

// ValidatePositiveInt checks replica counts for create-replicated-workload.
func ValidatePositiveInt(param, value string) error {
	n, err := strconv.Atoi(strings.TrimSpace(value))
	if err != nil || n < 1 {
		return &ValidationError{Param: param, Reason: "must be a positive integer"}
	}
	return nil
}

// ValidateNonNegativeInt checks replica counts for scale-workload.
func ValidateNonNegativeInt(param, value string) error {
	n, err := strconv.Atoi(strings.TrimSpace(value))
	if err != nil || n < 0 {
		return &ValidationError{Param: param, Reason: "must be a non-negative integer"}
	}
	return nil
}

var quantityRe = regexp.MustCompile(`^[0-9]+(\.[0-9]+)?(Ki|Mi|Gi|Ti)?$`)

// ValidateQuantity checks storage capacities like 500Mi or 1Gi.
func ValidateQuantity(param, value string) error {
	if !quantityRe.MatchString(strings.TrimSpace(value)) {
		return &ValidationError{Param: param, Reason: "must be a quantity like 500Mi or 1Gi"}
	}
	return nil
}

// ValidateResourceKind restricts delete-resource to the fixed kind set.
func ValidateResourceKind(param, value string) error {
	if !stringInSlice(strings.TrimSpace(value), ResourceKinds) {
		return &ValidationError{Param: param, Reason: fmt.Sprintf("must be one of %s", strings.Join(ResourceKinds, ", "))}
	}
	return nil
}
