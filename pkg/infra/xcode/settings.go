package xcode

import (
	"bufio"
	"bytes"
	"strings"

	"github.com/m-mizutani/goerr/v2"

	"github.com/h2oman/phoenix/pkg/domain/model"
)

const (
	keyMarketingVersion = "MARKETING_VERSION"
	keyBuildNumber      = "CURRENT_PROJECT_VERSION"
)

// parseBuildSettings extracts the version pair from -showBuildSettings
// output, which lists one "    KEY = value" line per setting. Both keys must
// be present.
func parseBuildSettings(out []byte) (*model.VersionInfo, error) {
	var info model.VersionInfo

	scanner := bufio.NewScanner(bytes.NewReader(out))
	for scanner.Scan() {
		key, value, ok := strings.Cut(scanner.Text(), "=")
		if !ok {
			continue
		}
		switch strings.TrimSpace(key) {
		case keyMarketingVersion:
			info.MarketingVersion = strings.TrimSpace(value)
		case keyBuildNumber:
			info.BuildNumber = strings.TrimSpace(value)
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, goerr.Wrap(err, "failed to scan build settings output")
	}

	if info.MarketingVersion == "" {
		return nil, goerr.New("build settings missing "+keyMarketingVersion,
			goerr.V("output", string(out)))
	}
	if info.BuildNumber == "" {
		return nil, goerr.New("build settings missing "+keyBuildNumber,
			goerr.V("output", string(out)))
	}
	return &info, nil
}
