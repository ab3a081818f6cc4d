package execx

import (
	"context"
	"os/exec"
	"strings"

	"github.com/m-mizutani/ctxlog"
	"github.com/m-mizutani/goerr/v2"

	"github.com/h2oman/phoenix/pkg/domain/types"
)

// Runner executes one external tool invocation and returns its combined
// stdout/stderr. Infra clients depend on this interface so tests can
// substitute canned tool output.
type Runner interface {
	Run(ctx context.Context, name string, args ...string) ([]byte, error)
}

type runner struct{}

// New returns a Runner backed by os/exec.
func New() Runner {
	return &runner{}
}

// Run executes the command and captures combined output. On a non-zero exit
// the tool's own diagnostic output is attached to the error verbatim.
func (r *runner) Run(ctx context.Context, name string, args ...string) ([]byte, error) {
	logger := ctxlog.From(ctx)
	logger.Debug("running external tool",
		"command", name,
		"args", strings.Join(args, " "),
	)

	cmd := exec.CommandContext(ctx, name, args...)
	out, err := cmd.CombinedOutput()
	if err != nil {
		return out, goerr.Wrap(err, "command failed",
			goerr.T(types.TagTool),
			goerr.V("command", name+" "+strings.Join(args, " ")),
			goerr.V("output", string(out)),
		)
	}
	return out, nil
}
