// Package executor abstracts running external commands for the training
// orchestration layer. The service launches model training as a separate
// process so a crashing or long-running fit never takes the API down.
package executor

import (
	"time"
)

// TaskState is an enum presenting current task state.
type TaskState int

const (
	// RUNNING task state means that task is still running.
	RUNNING TaskState = iota
	// TERMINATED task state means that task completed or stopped.
	TERMINATED
)

// Executor is responsible for creating an execution environment for a given
// command. It returns a TaskHandle when the command started gracefully; the
// command runs asynchronously.
type Executor interface {
	// Execute runs the command on the underlying platform.
	Execute(command string) (TaskHandle, error)
	// Name returns a user-friendly name of the executor.
	Name() string
}

// TaskHandle represents a process that can be stopped or monitored.
type TaskHandle interface {
	// Stop terminates the task and everything in its process group.
	Stop() error
	// Status returns the current state of the task.
	Status() TaskState
	// ExitCode returns the exit code. It errors when the task still runs.
	ExitCode() (int, error)
	// Wait blocks until the task terminates or the timeout elapses; a zero
	// timeout waits indefinitely. It returns true when the task terminated.
	Wait(timeout time.Duration) bool
	// StdoutFile returns the path of the file capturing the task's stdout.
	StdoutFile() string
	// StderrFile returns the path of the file capturing the task's stderr.
	StderrFile() string
	// EraseOutput removes the stdout and stderr capture files.
	EraseOutput() error
}
