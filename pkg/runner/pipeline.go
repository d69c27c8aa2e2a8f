package runner

import "time"

// Step is one idempotent unit of work: Check reports whether the desired
// state already holds, Action establishes it.
type Step struct {
	Name   string
	Check  func() (bool, error)
	Action func() error
}

// Reporter observes pipeline progress. The console wires a progress bar
// plus the audit log behind this.
type Reporter interface {
	StepStarted(name string)
	StepSkipped(name string, d time.Duration)
	StepCompleted(name string, d time.Duration)
	StepFailed(name string, err error, d time.Duration)
	PipelineDone(ok bool, d time.Duration)
}

// RunPipeline executes steps in order, stopping at the first failure.
// A passing check skips the step's action, which is what makes re-running
// the whole pipeline safe.
func RunPipeline(steps []Step, rep Reporter) error {
	start := time.Now()
	var err error
	for _, step := range steps {
		if err = runStep(step, rep); err != nil {
			break
		}
	}
	rep.PipelineDone(err == nil, time.Since(start))
	return err
}

func runStep(step Step, rep Reporter) error {
	start := time.Now()
	rep.StepStarted(step.Name)

	ok, err := step.Check()
	if err != nil {
		rep.StepFailed(step.Name, err, time.Since(start))
		return err
	}
	if ok {
		rep.StepSkipped(step.Name, time.Since(start))
		return nil
	}

	if err := step.Action(); err != nil {
		rep.StepFailed(step.Name, err, time.Since(start))
		return err
	}
	rep.StepCompleted(step.Name, time.Since(start))
	return nil
}
