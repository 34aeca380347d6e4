package gittest

import (
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"strings"

	"github.com/rogpeppe/go-internal/testscript"
)

// Fixture is a temporary directory holding a Git repository
// built by running a testscript file.
type Fixture struct {
	dir string
}

// Dir returns the directory of the fixture.
func (f *Fixture) Dir() string {
	return f.dir
}

// Cleanup removes the temporary directory created by the fixture.
func (f *Fixture) Cleanup() {
	_ = os.RemoveAll(f.dir)
}

// LoadFixtureScript builds a fixture by running the given testscript text.
// In addition to testscript defaults, the script has access to
// [CmdGit], [CmdAs], and [CmdAt].
func LoadFixtureScript(script []byte) (*Fixture, error) {
	// testscript.Params expects a directory of script files.
	tmpDir, err := os.MkdirTemp("", "gittest-fixture-")
	if err != nil {
		return nil, fmt.Errorf("create temp dir: %w", err)
	}
	defer func() {
		_ = os.RemoveAll(tmpDir)
	}()

	tmpScript := filepath.Join(tmpDir, "fixture.txt")
	if err := os.WriteFile(tmpScript, script, 0o644); err != nil {
		return nil, fmt.Errorf("write script: %w", err)
	}

	return LoadFixtureFile(tmpScript)
}

// LoadFixtureFile builds a fixture by running the testscript file
// at the given path.
func LoadFixtureFile(path string) (*Fixture, error) {
	env := DefaultConfig().EnvMap()
	env["EDITOR"] = "false"
	env["GIT_AUTHOR_NAME"] = "Test"
	env["GIT_AUTHOR_EMAIL"] = "test@example.com"
	env["GIT_COMMITTER_NAME"] = "Test"
	env["GIT_COMMITTER_EMAIL"] = "test@example.com"

	var (
		t          fixtureT
		fixtureDir string
	)

	// Runs in a separate goroutine because FailNow and Skip
	// stop the goroutine with runtime.Goexit.
	done := make(chan struct{})
	go func() {
		defer close(done)

		testscript.RunT(&t, testscript.Params{
			Files: []string{path},
			// Don't delete fixtureDir when this returns.
			TestWork:           true,
			RequireUniqueNames: true,
			Setup: func(e *testscript.Env) error {
				for k, v := range env {
					e.Setenv(k, v)
				}

				fixtureDir = e.WorkDir
				return nil
			},
			Cmds: map[string]func(*testscript.TestScript, bool, []string){
				"git": CmdGit,
				"as":  CmdAs,
				"at":  CmdAt,
			},
		})
	}()
	<-done

	if t.skipped || t.failed {
		return nil, fmt.Errorf("fixture script failed or was skipped:\n%s", t.msgs.String())
	}

	if fixtureDir == "" {
		return nil, fmt.Errorf("fixture script did not run")
	}
	if _, err := os.Stat(fixtureDir); err != nil {
		return nil, fmt.Errorf("inspect fixture dir: %w", err)
	}

	return &Fixture{dir: fixtureDir}, nil
}

// fixtureT implements testscript.T so that a testscript can run
// outside of a test function.
type fixtureT struct {
	failed  bool
	skipped bool
	msgs    strings.Builder
}

var _ testscript.T = (*fixtureT)(nil)

// Parallel and Run are no-ops so that testscript.RunT is synchronous.
func (*fixtureT) Parallel()                              {}
func (f *fixtureT) Run(_ string, run func(testscript.T)) { run(f) }

func (f *fixtureT) FailNow() {
	f.failed = true
	runtime.Goexit()
}

func (f *fixtureT) Fatal(args ...interface{}) {
	fmt.Fprintln(&f.msgs, fmt.Sprint(args...))
	f.FailNow()
}

func (f *fixtureT) Log(args ...interface{}) {
	fmt.Fprintln(&f.msgs, fmt.Sprint(args...))
}

func (f *fixtureT) Skip(args ...interface{}) {
	f.skipped = true
	fmt.Fprintln(&f.msgs, fmt.Sprint(args...))
	runtime.Goexit()
}

func (f *fixtureT) Verbose() bool { return false }
