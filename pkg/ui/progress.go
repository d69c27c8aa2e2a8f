package ui

import (
	"fmt"
	"io"
	"sync"
	"time"

	"github.com/fatih/color"
	"github.com/mattn/go-runewidth"
	"github.com/vbauerster/mpb/v8"
	"github.com/vbauerster/mpb/v8/decor"
)

var (
	Cyan   = color.New(color.FgCyan).SprintFunc()
	Green  = color.New(color.FgGreen).SprintFunc()
	Yellow = color.New(color.FgYellow).SprintFunc()
	Red    = color.New(color.FgRed).SprintFunc()
)

// Pipeline renders a step pipeline as a single progress bar with a live
// status decorator, and appends one aligned line per finished step.
// It implements runner.Reporter.
type Pipeline struct {
	out      io.Writer
	progress *mpb.Progress
	bar      *mpb.Bar

	mu          sync.Mutex
	totalSteps  int
	currentStep int
	currentName string
	status      string
	err         error
	finished    bool
}

func NewPipeline(title string, totalSteps int, out io.Writer) *Pipeline {
	pl := &Pipeline{out: out, totalSteps: totalSteps}
	pl.progress = mpb.New(mpb.WithWidth(40), mpb.WithOutput(out))

	statusDecorator := decor.Any(func(_ decor.Statistics) string {
		pl.mu.Lock()
		defer pl.mu.Unlock()

		if pl.err != nil {
			return Red(fmt.Sprintf("✖ failed: [%s]", pl.currentName))
		}
		if pl.finished {
			return Green("✔ done")
		}
		if pl.currentStep == 0 {
			return Yellow("⏳ waiting...")
		}
		return fmt.Sprintf("⏳ [%02d/%02d] %s: %s", pl.currentStep, pl.totalSteps, pl.currentName, pl.status)
	})

	pl.bar = pl.progress.MustAdd(int64(totalSteps),
		mpb.BarStyle().Build(),
		mpb.PrependDecorators(
			decor.Name(title, decor.WC{W: 16, C: decor.DindentRight | decor.DSyncWidth}),
			decor.Percentage(decor.WCSyncWidth),
		),
		mpb.AppendDecorators(
			decor.Name(" "),
			statusDecorator,
		),
	)
	return pl
}

func (pl *Pipeline) StepStarted(name string) {
	pl.mu.Lock()
	defer pl.mu.Unlock()
	pl.currentStep++
	pl.currentName = name
	pl.status = Cyan("checking...")
}

func (pl *Pipeline) StepSkipped(name string, d time.Duration) {
	pl.endStep(name, Yellow("- skipped"), d)
}

func (pl *Pipeline) StepCompleted(name string, d time.Duration) {
	pl.endStep(name, Green("✔ done"), d)
}

func (pl *Pipeline) StepFailed(name string, err error, d time.Duration) {
	pl.mu.Lock()
	pl.err = err
	pl.mu.Unlock()
	pl.endStep(name, Red("✖ error"), d)
	fmt.Fprintf(pl.out, "     %s: %v\n", Red("Error"), err)
}

func (pl *Pipeline) PipelineDone(ok bool, d time.Duration) {
	pl.mu.Lock()
	pl.finished = true
	pl.mu.Unlock()

	pl.bar.Abort(false)
	pl.progress.Wait()

	status := Green("ok")
	if !ok {
		status = Red("failed")
	}
	fmt.Fprintf(pl.out, "%s pipeline %s, total: %v\n", Green("✨"), status, d.Round(time.Millisecond))
}

func (pl *Pipeline) endStep(name, status string, d time.Duration) {
	pl.mu.Lock()
	defer pl.mu.Unlock()

	paddedName := runewidth.FillRight(name, 40)
	paddedStatus := runewidth.FillRight(status, 15)
	fmt.Fprintf(pl.out, "%s %s %s (%v)\n", Cyan("▶ [STEP]"), paddedName, paddedStatus, d.Round(time.Millisecond))
	if pl.err == nil {
		pl.bar.Increment()
	}
}
