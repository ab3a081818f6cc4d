package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/m-mizutani/gt"

	"github.com/h2oman/phoenix/pkg/cli/config"
)

func TestProject_Load(t *testing.T) {
	path := filepath.Join(t.TempDir(), "phoenix.toml")
	body := `app_name = "Phoenix"
workspace = "App/Phoenix.xcworkspace"
scheme = "Phoenix Release"
configuration = "Release"
export_options = "ci/ExportOptions.plist"
feed_public_key = "c29tZSBwdWJsaWMga2V5IGJ5dGVzIGhlcmUhISE="
feed_url = "https://updates.example.com/phoenix/"
`
	gt.NoError(t, os.WriteFile(path, []byte(body), 0o644))

	cfg := config.Project{Path: path}
	project, err := cfg.Load()
	gt.NoError(t, err)

	gt.Equal(t, project.AppName, "Phoenix")
	gt.Equal(t, project.Workspace, "App/Phoenix.xcworkspace")
	gt.Equal(t, project.Scheme, "Phoenix Release")
	gt.Equal(t, project.ExportOptions, "ci/ExportOptions.plist")
	gt.Equal(t, project.FeedURL, "https://updates.example.com/phoenix/")
}

func TestProject_Load_MissingFileUsesDefaults(t *testing.T) {
	cfg := config.Project{Path: filepath.Join(t.TempDir(), "phoenix.toml")}
	project, err := cfg.Load()
	gt.NoError(t, err)

	gt.Equal(t, project.AppName, "Phoenix")
	gt.Equal(t, project.Workspace, "Phoenix.xcworkspace")
	gt.Equal(t, project.Scheme, "Phoenix")
	gt.Equal(t, project.Configuration, "Release")
	gt.Equal(t, project.ExportOptions, "ExportOptions.plist")
}

func TestProject_Load_PartialFileKeepsDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "phoenix.toml")
	gt.NoError(t, os.WriteFile(path, []byte(`scheme = "Phoenix Beta"`), 0o644))

	cfg := config.Project{Path: path}
	project, err := cfg.Load()
	gt.NoError(t, err)

	gt.Equal(t, project.Scheme, "Phoenix Beta")
	gt.Equal(t, project.Workspace, "Phoenix.xcworkspace")
}

func TestProject_Load_InvalidTOML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "phoenix.toml")
	gt.NoError(t, os.WriteFile(path, []byte(`app_name = [broken`), 0o644))

	cfg := config.Project{Path: path}
	_, err := cfg.Load()
	gt.Error(t, err)
}

func TestProject_Load_EmptyField(t *testing.T) {
	path := filepath.Join(t.TempDir(), "phoenix.toml")
	gt.NoError(t, os.WriteFile(path, []byte(`workspace = ""`), 0o644))

	cfg := config.Project{Path: path}
	_, err := cfg.Load()
	gt.Error(t, err)
}
