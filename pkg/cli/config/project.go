package config

import (
	"os"

	"github.com/m-mizutani/goerr/v2"
	"github.com/pelletier/go-toml/v2"
	"github.com/urfave/cli/v3"

	"github.com/h2oman/phoenix/pkg/domain/model"
)

// Project holds the project configuration file location
type Project struct {
	Path string
}

// Flags returns CLI flags for project configuration
func (c *Project) Flags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:        "config",
			Aliases:     []string{"c"},
			Usage:       "Project configuration file",
			Value:       "phoenix.toml",
			Destination: &c.Path,
			Sources:     cli.EnvVars("PHOENIX_CONFIG"),
		},
	}
}

// Load reads the project file over the built-in Phoenix defaults. A missing
// file is fine; the defaults describe the app this tool ships with.
func (c *Project) Load() (*model.Project, error) {
	project := &model.Project{
		AppName:       "Phoenix",
		Workspace:     "Phoenix.xcworkspace",
		Scheme:        "Phoenix",
		Configuration: "Release",
		ExportOptions: "ExportOptions.plist",
	}

	data, err := os.ReadFile(c.Path)
	if err != nil {
		if os.IsNotExist(err) {
			return project, nil
		}
		return nil, goerr.Wrap(err, "failed to read project configuration", goerr.V("path", c.Path))
	}

	if err := toml.Unmarshal(data, project); err != nil {
		return nil, goerr.Wrap(err, "failed to parse project configuration", goerr.V("path", c.Path))
	}

	if err := project.Validate(); err != nil {
		return nil, goerr.Wrap(err, "invalid project configuration", goerr.V("path", c.Path))
	}
	return project, nil
}
