package sparkle

import (
	"regexp"

	"github.com/m-mizutani/goerr/v2"
)

// ExtractAttribute pulls a `name="value"` attribute out of structured tool
// output. sign_update prints a ready-to-paste enclosure fragment such as
//
//	sparkle:edSignature="wL+…==" length="1234567"
//
// and only the attribute value is wanted. A missing attribute is an explicit
// error rather than an empty result.
func ExtractAttribute(out []byte, name string) (string, error) {
	re, err := regexp.Compile(regexp.QuoteMeta(name) + `="([^"]*)"`)
	if err != nil {
		return "", goerr.Wrap(err, "invalid attribute name", goerr.V("name", name))
	}

	m := re.FindSubmatch(out)
	if m == nil || len(m[1]) == 0 {
		return "", goerr.New("signature not found in signing tool output",
			goerr.V("attribute", name),
			goerr.V("output", string(out)),
		)
	}
	return string(m[1]), nil
}
