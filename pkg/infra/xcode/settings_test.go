package xcode

import (
	"testing"

	"github.com/m-mizutani/gt"
)

func TestParseBuildSettings(t *testing.T) {
	out := []byte(`Build settings for action build and target Phoenix:
    ACTION = build
    CURRENT_PROJECT_VERSION = 45
    DEPLOYMENT_LOCATION = NO
    MARKETING_VERSION = 1.2.3
    PRODUCT_NAME = Phoenix
`)

	info, err := parseBuildSettings(out)
	gt.NoError(t, err)
	gt.Equal(t, info.MarketingVersion, "1.2.3")
	gt.Equal(t, info.BuildNumber, "45")
	gt.Equal(t, info.String(), "1.2.3 (45)")
}

func TestParseBuildSettings_MissingKeys(t *testing.T) {
	tests := []struct {
		name string
		out  string
		want string
	}{
		{
			name: "No marketing version",
			out:  "    CURRENT_PROJECT_VERSION = 45\n",
			want: "MARKETING_VERSION",
		},
		{
			name: "No build number",
			out:  "    MARKETING_VERSION = 1.2.3\n",
			want: "CURRENT_PROJECT_VERSION",
		},
		{
			name: "Empty output",
			out:  "",
			want: "MARKETING_VERSION",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := parseBuildSettings([]byte(tt.out))
			gt.Error(t, err)
			gt.String(t, err.Error()).Contains(tt.want)
		})
	}
}
