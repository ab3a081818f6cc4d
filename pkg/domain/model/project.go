package model

import "github.com/m-mizutani/goerr/v2"

// Project describes the Xcode project being released. Loaded from
// phoenix.toml; every field has a default matching the Phoenix app so the
// file is optional.
type Project struct {
	AppName       string `toml:"app_name"`
	Workspace     string `toml:"workspace"`
	Scheme        string `toml:"scheme"`
	Configuration string `toml:"configuration"`
	ExportOptions string `toml:"export_options"`

	// FeedPublicKey is the base64 ed25519 public key of the update feed.
	// When set, the Sign stage verifies the generated signature against it.
	FeedPublicKey string `toml:"feed_public_key"`

	// FeedURL is the base URL the update feed serves archives from, used for
	// the enclosure URL of generated appcast entries.
	FeedURL string `toml:"feed_url"`
}

// Validate checks that the fields required to drive the build toolchain are
// present.
func (p *Project) Validate() error {
	switch {
	case p.AppName == "":
		return goerr.New("project app_name must not be empty")
	case p.Workspace == "":
		return goerr.New("project workspace must not be empty")
	case p.Scheme == "":
		return goerr.New("project scheme must not be empty")
	case p.Configuration == "":
		return goerr.New("project configuration must not be empty")
	case p.ExportOptions == "":
		return goerr.New("project export_options must not be empty")
	}
	return nil
}
