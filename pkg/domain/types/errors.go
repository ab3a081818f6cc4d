package types

import "github.com/m-mizutani/goerr/v2"

// Error tags distinguish the failure classes of a release run. Precondition
// failures happen before any side effect; tool failures carry the invoked
// command's verbatim output as a goerr value.
var (
	TagPrecondition = goerr.NewTag("precondition")
	TagTool         = goerr.NewTag("tool")
)

// WrapStage annotates a stage failure with the stage identifier so the
// operator can tell which step of the pipeline aborted the run.
func WrapStage(stage Stage, err error) error {
	return goerr.Wrap(err, string(stage)+" stage failed", goerr.V("stage", string(stage)))
}

// FailedStage returns the stage recorded by WrapStage, or an empty Stage if
// the error did not come from a pipeline stage.
func FailedStage(err error) Stage {
	if goErr := goerr.Unwrap(err); goErr != nil {
		if v, ok := goErr.Values()["stage"]; ok {
			if s, ok := v.(string); ok {
				return Stage(s)
			}
		}
	}
	return ""
}
