package xec

import "os/exec"

// ExitError is returned from Run or Output
// when the command exits with a non-zero exit code.
type ExitError = exec.ExitError

// Execer controls actual execution of commands.
// It provides a way to intercept command execution for testing.
type Execer interface {
	Run(*exec.Cmd) error
	Output(*exec.Cmd) ([]byte, error)
}

type realExecer struct{}

// DefaultExecer is the default implementation of Execer.
// It uses the real os/exec package to execute commands.
var DefaultExecer Execer = realExecer{}

func (realExecer) Run(cmd *exec.Cmd) error              { return cmd.Run() }
func (realExecer) Output(cmd *exec.Cmd) ([]byte, error) { return cmd.Output() }
