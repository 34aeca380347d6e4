// Package xec is a wrapper around os/exec
// that centralizes command execution.
//
// It provides support for logging command output
// and capturing stderr for error reporting.
//
// # Stderr handling
//
// [Cmd] treats stderr as follows:
//
//   - if the logger is at debug level or lower,
//     stderr for the command is written directly to the logger
//     with the prefix "$name: " (e.g. "git: ").
//   - if the logger is above debug level,
//     stderr for the command is captured
//     and surfaced in the error if the command fails.
//
// Use WithStderr to redirect stderr elsewhere,
// and WithLogPrefix to change the prefix for log messages.
package xec

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/exec"
	"strings"

	"go.abhg.dev/log/silog"
)

var _osEnviron = os.Environ

// Cmd is an external command being prepared or run.
type Cmd struct {
	cmd     *exec.Cmd
	log     *prefixLogger
	_execer Execer

	// Wraps an error with stderr output.
	wrap func(error) error
}

// Command constructs a Cmd to execute a program with the given arguments.
//
// ctx controls the lifetime of the command,
// and log is used to log command output and errors.
// If log is nil, stderr is buffered and surfaced in the error
// if the command fails.
func Command(ctx context.Context, log *silog.Logger, name string, args ...string) *Cmd {
	if log == nil {
		log = silog.Nop(&silog.Options{
			Level: silog.LevelInfo,
		})
	}
	logger := &prefixLogger{Logger: log, prefix: name}
	stderr, wrap := outputLogWriter("stderr", logger)
	cmd := exec.CommandContext(ctx, name, args...)
	cmd.Stderr = stderr
	cmd.Env = _osEnviron()
	return &Cmd{
		cmd:     cmd,
		log:     logger,
		wrap:    wrap,
		_execer: DefaultExecer,
	}
}

// WithExecer sets the Execer used to run the command.
// If nil, the DefaultExecer is used.
func (c *Cmd) WithExecer(execer Execer) *Cmd {
	c._execer = execer
	return c
}

func (c *Cmd) execer() Execer {
	if c._execer != nil {
		return c._execer
	}
	return DefaultExecer
}

// Run runs the command, blocking until it completes.
//
// It returns an error if the command fails with a non-zero exit code.
func (c *Cmd) Run() error {
	return c.wrap(c.execer().Run(c.cmd))
}

// Output runs the command and returns its stdout.
// It returns an error if the command fails with a non-zero exit code.
func (c *Cmd) Output() ([]byte, error) {
	out, err := c.execer().Output(c.cmd)
	return out, c.wrap(err)
}

// OutputChomp runs the command and returns its stdout,
// with a trailing newline removed.
// It returns an error if the command fails with a non-zero exit code.
func (c *Cmd) OutputChomp() (string, error) {
	out, err := c.Output()
	out, _ = bytes.CutSuffix(out, []byte{'\n'})
	return string(out), err
}

// WithLogPrefix changes the prefix used for log messages from this command.
func (c *Cmd) WithLogPrefix(prefix string) *Cmd {
	c.log.SetPrefix(prefix)
	return c
}

// WithDir sets the working directory for the command.
func (c *Cmd) WithDir(dir string) *Cmd {
	c.cmd.Dir = dir
	return c
}

// WithStdout redirects the command's stdout to the given writer.
func (c *Cmd) WithStdout(w io.Writer) *Cmd {
	c.cmd.Stdout = w
	return c
}

// CaptureStdout configures the command to also capture stdout (like stderr)
// and surface it either in the logs or in the returned error (if any).
func (c *Cmd) CaptureStdout() *Cmd {
	stdout, wrap := outputLogWriter("stdout", c.log)
	c.cmd.Stdout = stdout
	oldWrap := c.wrap
	c.wrap = func(err error) error {
		return wrap(oldWrap(err))
	}
	return c
}

// WithStderr sets the writer for the command's stderr.
//
// By default, stderr is either logged to the logger
// or captured to be surfaced in the error.
func (c *Cmd) WithStderr(w io.Writer) *Cmd {
	c.cmd.Stderr = w
	// Clear out the stderr wrapping behavior.
	c.wrap = func(err error) error { return err }
	return c
}

// WithStdin supplies the command's stdin from the given reader.
func (c *Cmd) WithStdin(r io.Reader) *Cmd {
	c.cmd.Stdin = r
	return c
}

// WithStdinString supplies the command's stdin from the given string.
func (c *Cmd) WithStdinString(s string) *Cmd {
	return c.WithStdin(strings.NewReader(s))
}

// Returns an io.Writer that will record an output stream for later use,
// and a wrap function that will wrap an error with the recorded output.
func outputLogWriter(name string, logger *prefixLogger) (w io.Writer, wrap func(error) error) {
	if logger.Level() <= silog.LevelDebug {
		// If logging is enabled, return an io.Writer
		// that writes to the logger.
		w, flush := silog.Writer(logger, silog.LevelDebug)
		return w, func(err error) error {
			flush()
			return err
		}
	}

	// Otherwise, buffer it all in-memory to put into the error.
	var buf bytes.Buffer
	return &buf, func(err error) error {
		if err == nil {
			return err
		}

		// buf.Bytes is safe to read here:
		// err != nil guarantees that the command has exited.
		output := bytes.TrimSpace(buf.Bytes())
		if len(output) == 0 {
			return err
		}

		return errors.Join(err, fmt.Errorf("%s:\n%s", name, output))
	}
}

type prefixLogger struct {
	*silog.Logger

	prefix string
}

var _ silog.LeveledLogger = (*prefixLogger)(nil)

func (pl *prefixLogger) SetPrefix(prefix string) {
	pl.prefix = prefix
}

func (pl *prefixLogger) Log(level silog.Level, msg string, kvs ...any) {
	if pl.prefix != "" {
		msg = pl.prefix + ": " + msg
	}
	pl.Logger.Log(level, msg, kvs...)
}
