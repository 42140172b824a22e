package drpconv

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/atemtools/drp-processor/drp"
)

// The writer version is informational: old, new, or garbage values must
// never affect the conversion.
func TestReconstructToleratesAnyAppVersion(t *testing.T) {
	for _, appVersion := range []string{"", "8.2.3", "8.6", "9.5.1", "not-a-version"} {
		header := testHeader()
		header.AppVersion = appVersion

		result, err := Reconstruct(header, []*drp.SwitchEvent{event("10:00:01:00")})
		require.NoError(t, err, "appVersion %q", appVersion)
		assert.Len(t, result.Cuts, 1)
	}
}
