package sparkle_test

import (
	"testing"

	"github.com/m-mizutani/gt"

	"github.com/h2oman/phoenix/pkg/infra/sparkle"
)

func TestExtractAttribute(t *testing.T) {
	out := []byte(`sparkle:edSignature="wL+nXYZ012/abc==" length="1234567"`)

	sig, err := sparkle.ExtractAttribute(out, "sparkle:edSignature")
	gt.NoError(t, err)
	gt.Equal(t, sig, "wL+nXYZ012/abc==")

	length, err := sparkle.ExtractAttribute(out, "length")
	gt.NoError(t, err)
	gt.Equal(t, length, "1234567")
}

func TestExtractAttribute_Missing(t *testing.T) {
	tests := []struct {
		name string
		out  string
	}{
		{
			name: "No attribute at all",
			out:  "error: unable to sign archive",
		},
		{
			name: "Empty value",
			out:  `sparkle:edSignature=""`,
		},
		{
			name: "Different attribute only",
			out:  `length="42"`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := sparkle.ExtractAttribute([]byte(tt.out), "sparkle:edSignature")
			gt.Error(t, err)
			gt.String(t, err.Error()).Contains("signature not found")
		})
	}
}
