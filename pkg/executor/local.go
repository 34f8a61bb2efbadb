package executor

import (
	"io/ioutil"
	"os"
	"os/exec"
	"syscall"
	"time"

	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"

	"github.com/srikesh3005/SynthoML/pkg/utils/errcollection"
)

// Local runs commands on the local machine via `sh -c`, as the current user.
// Stdout and stderr are captured to files in the configured directory so the
// orchestration layer can surface training output after the process exits.
type Local struct {
	outputDir string
}

// NewLocal returns a Local executor writing output files to dir. An empty
// dir means the system temporary directory.
func NewLocal(dir string) Local {
	return Local{outputDir: dir}
}

// Name returns a user-friendly name of the executor.
func (l Local) Name() string {
	return "Local Executor"
}

// Execute runs the command asynchronously and returns a handle able to stop
// and monitor the process.
func (l Local) Execute(command string) (TaskHandle, error) {
	stdoutFile, err := ioutil.TempFile(l.outputDir, "stdout")
	if err != nil {
		return nil, errors.Wrap(err, "creating stdout file")
	}
	stderrFile, err := ioutil.TempFile(l.outputDir, "stderr")
	if err != nil {
		stdoutFile.Close()
		return nil, errors.Wrap(err, "creating stderr file")
	}

	log.Debug("Starting ", command)

	cmd := exec.Command("sh", "-c", command)
	// The process gets its own group so Stop can kill the whole tree,
	// including any children the command spawns.
	cmd.SysProcAttr = &syscall.SysProcAttr{Setpgid: true}
	cmd.Stdout = stdoutFile
	cmd.Stderr = stderrFile

	if err := cmd.Start(); err != nil {
		stdoutFile.Close()
		stderrFile.Close()
		return nil, errors.Wrapf(err, "starting %q", command)
	}

	log.Debug("Started with pid ", cmd.Process.Pid)

	task := &localTask{
		command:    command,
		pid:        cmd.Process.Pid,
		stdoutPath: stdoutFile.Name(),
		stderrPath: stderrFile.Name(),
		done:       make(chan struct{}),
	}

	go func() {
		defer stdoutFile.Close()
		defer stderrFile.Close()

		// The exit state is read from ProcessState regardless of the
		// Wait error, in both the success and failure cases.
		cmd.Wait()

		waitStatus := cmd.ProcessState.Sys().(syscall.WaitStatus)
		if waitStatus.Exited() {
			task.exitCode = waitStatus.ExitStatus()
		} else {
			task.exitCode = -int(waitStatus.Signal())
		}

		log.Debug("Ended ", command, " with status code ", task.exitCode)
		close(task.done)
	}()

	return task, nil
}

// localTask implements TaskHandle for processes started by Local.
type localTask struct {
	command    string
	pid        int
	stdoutPath string
	stderrPath string
	exitCode   int
	done       chan struct{}
}

// Status returns the current state of the task.
func (task *localTask) Status() TaskState {
	select {
	case <-task.done:
		return TERMINATED
	default:
		return RUNNING
	}
}

// ExitCode returns the exit code. It errors when the task still runs.
func (task *localTask) ExitCode() (int, error) {
	if task.Status() != TERMINATED {
		return 0, errors.Errorf("task %q is still running", task.command)
	}
	return task.exitCode, nil
}

// Stop terminates the task and everything in its process group.
func (task *localTask) Stop() error {
	if task.Status() == TERMINATED {
		return nil
	}

	// A negated pid addresses the whole process group.
	log.Debug("Sending SIGTERM to process group ", task.pid)
	if err := syscall.Kill(-task.pid, syscall.SIGTERM); err != nil {
		return errors.Wrapf(err, "stopping %q", task.command)
	}

	<-task.done
	return nil
}

// Wait blocks until the task terminates or the timeout elapses; a zero
// timeout waits indefinitely.
func (task *localTask) Wait(timeout time.Duration) bool {
	if timeout == 0 {
		<-task.done
		return true
	}

	select {
	case <-task.done:
		return true
	case <-time.After(timeout):
		return false
	}
}

// StdoutFile returns the path of the file capturing the task's stdout.
func (task *localTask) StdoutFile() string {
	return task.stdoutPath
}

// StderrFile returns the path of the file capturing the task's stderr.
func (task *localTask) StderrFile() string {
	return task.stderrPath
}

// EraseOutput removes the stdout and stderr capture files.
func (task *localTask) EraseOutput() error {
	var errs errcollection.ErrorCollection
	if err := os.Remove(task.stdoutPath); err != nil && !os.IsNotExist(err) {
		errs.Add(err)
	}
	if err := os.Remove(task.stderrPath); err != nil && !os.IsNotExist(err) {
		errs.Add(err)
	}
	return errs.GetErrIfAny()
}
