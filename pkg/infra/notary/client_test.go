package notary_test

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/m-mizutani/gt"

	"github.com/h2oman/phoenix/pkg/infra/notary"
)

type fakeRunner struct {
	out  []byte
	err  error
	cmds []string
}

func (f *fakeRunner) Run(ctx context.Context, name string, args ...string) ([]byte, error) {
	f.cmds = append(f.cmds, name+" "+strings.Join(args, " "))
	return f.out, f.err
}

func TestSubmit_Accepted(t *testing.T) {
	run := &fakeRunner{out: []byte(`Conducting pre-submission checks for phoenix-1.2.3.zip
  id: 2efe2717-52ef-43a5-96dc-0797e4ca1041
  status: In Progress
Waiting for processing to complete.
  status: Accepted
Processing complete
`)}
	c := notary.NewClient(run)

	err := c.Submit(context.Background(), "phoenix-1.2.3.zip", "NOTARISATION_PASSWORD")
	gt.NoError(t, err)

	gt.Equal(t, len(run.cmds), 1)
	gt.String(t, run.cmds[0]).Contains("notarytool submit phoenix-1.2.3.zip")
	gt.String(t, run.cmds[0]).Contains("--keychain-profile NOTARISATION_PASSWORD")
	gt.String(t, run.cmds[0]).Contains("--wait")
}

func TestSubmit_Rejected(t *testing.T) {
	run := &fakeRunner{out: []byte(`  id: 2efe2717-52ef-43a5-96dc-0797e4ca1041
  status: In Progress
  status: Invalid
`)}
	c := notary.NewClient(run)

	err := c.Submit(context.Background(), "phoenix-1.2.3.zip", "NOTARISATION_PASSWORD")
	gt.Error(t, err)
	gt.String(t, err.Error()).Contains("not accepted")
}

func TestSubmit_ToolFailure(t *testing.T) {
	run := &fakeRunner{err: errors.New("exit status 1")}
	c := notary.NewClient(run)

	err := c.Submit(context.Background(), "phoenix-1.2.3.zip", "NOTARISATION_PASSWORD")
	gt.Error(t, err)
	gt.String(t, err.Error()).Contains("submission failed")
}

func TestStaple(t *testing.T) {
	run := &fakeRunner{}
	c := notary.NewClient(run)

	gt.NoError(t, c.Staple(context.Background(), "export/Phoenix.app"))
	gt.Equal(t, len(run.cmds), 1)
	gt.String(t, run.cmds[0]).Contains("stapler staple export/Phoenix.app")
}
