package install

import (
	"bytes"
	"fmt"
	"os"
	"os/exec"
	"strings"

	"github.com/LiteObject/WindowsUtils/pkg/errors"
	"github.com/LiteObject/WindowsUtils/pkg/types"
)

// Strategy is the uniform attempt contract for one installation
// method. force is the conflict resolver's overwrite grant for this
// file.
type Strategy interface {
	// Name identifies the strategy in results and reports
	Name() string

	// Attempt tries to install the font, without retrying
	Attempt(ctx types.ExecContext, f types.FontFile, force bool) types.Outcome
}

// CommandRunner runs an external command. The shell strategy uses it
// to reach the Windows shell's install action through PowerShell;
// tests supply scripted runners.
type CommandRunner interface {
	Run(name string, args ...string) error
}

// execRunner is the real CommandRunner.
type execRunner struct{}

func (execRunner) Run(name string, args ...string) error {
	if _, err := exec.LookPath(name); err != nil {
		return err
	}
	cmd := exec.Command(name, args...)
	var stderr bytes.Buffer
	cmd.Stderr = &stderr
	if err := cmd.Run(); err != nil {
		if stderr.Len() > 0 {
			return fmt.Errorf("%w: %s", err, strings.TrimSpace(stderr.String()))
		}
		return err
	}
	return nil
}

// classify maps a store error to an outcome. Permission failures are
// fatal for the strategy that hit them; anything else is recoverable.
// The admin flag only enriches the reason, the chain advances either
// way.
func classify(ctx types.ExecContext, err error) types.Outcome {
	reason := err.Error()
	if errors.IsErrorCode(err, errors.ErrPermission) || os.IsPermission(err) {
		if !ctx.IsAdmin {
			reason += " (not running as administrator)"
		}
		return types.Fatal(reason)
	}
	return types.Recoverable(reason)
}
