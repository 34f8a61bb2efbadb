package training

import (
	"fmt"
	"io/ioutil"
	"strings"
	"sync"

	log "github.com/sirupsen/logrus"

	"github.com/srikesh3005/SynthoML/pkg/errs"
	"github.com/srikesh3005/SynthoML/pkg/executor"
	"github.com/srikesh3005/SynthoML/pkg/inference"
)

// stderrTailBytes bounds how much of a failed run's stderr goes into the
// status message.
const stderrTailBytes = 2048

// Runner launches training runs as local subprocesses so a crashing fit
// never takes the serving process down. Only one run is in flight at a time.
type Runner struct {
	exec      executor.Executor
	tracker   *StatusTracker
	cache     *inference.Cache
	trainPath string

	mu sync.Mutex
}

// NewRunner builds a runner that invokes the training binary at trainPath
// through exec and invalidates cache entries for freshly trained models.
func NewRunner(exec executor.Executor, tracker *StatusTracker, cache *inference.Cache, trainPath string) *Runner {
	return &Runner{
		exec:      exec,
		tracker:   tracker,
		cache:     cache,
		trainPath: trainPath,
	}
}

// Start kicks off a background training run. It returns immediately once the
// subprocess has started; progress is observable through the status tracker.
func (r *Runner) Start(dataPath string, epochs int, outputPath string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if !r.tracker.Begin(epochs) {
		return errs.NewInvalidArgument("training already in progress, wait for it to complete")
	}

	command := fmt.Sprintf("%s --data %q --epochs %d --output %q", r.trainPath, dataPath, epochs, outputPath)
	log.Infof("starting training subprocess: %s", command)

	handle, err := r.exec.Execute(command)
	if err != nil {
		r.tracker.Fail(err.Error())
		return err
	}

	go r.watch(handle, outputPath)
	return nil
}

// watch waits for the training subprocess to finish and settles the status.
func (r *Runner) watch(handle executor.TaskHandle, outputPath string) {
	handle.Wait(0)

	exitCode, err := handle.ExitCode()
	if err != nil {
		r.tracker.Fail(err.Error())
		return
	}

	if exitCode == 0 {
		log.Infof("training finished, reloading model %q", outputPath)
		r.cache.Invalidate(outputPath)
		r.tracker.Succeed()
	} else {
		reason := stderrTail(handle.StderrFile())
		if reason == "" {
			reason = fmt.Sprintf("training process exited with code %d", exitCode)
		}
		log.Errorf("training failed (exit code %d): %s", exitCode, reason)
		r.tracker.Fail(reason)
	}

	if err := handle.EraseOutput(); err != nil {
		log.Warnf("cannot erase training output files: %v", err)
	}
}

// stderrTail returns the trailing portion of the captured stderr.
func stderrTail(path string) string {
	content, err := ioutil.ReadFile(path)
	if err != nil {
		return ""
	}
	if len(content) > stderrTailBytes {
		content = content[len(content)-stderrTailBytes:]
	}
	return strings.TrimSpace(string(content))
}
