package drpconv

import (
	"github.com/hashicorp/go-version"

	"github.com/atemtools/drp-processor/drp"
)

// minWriterVersion is the oldest ATEM Software Control release whose
// logs this converter has been verified against.
const minWriterVersion = "8.6"

// checkAppVersion warns when the log was written by an application
// older than the oldest verified one. A missing or malformed version
// field is never fatal; the field is informational only.
func checkAppVersion(header *drp.Header) {
	if header.AppVersion == "" {
		return
	}

	written, err := version.NewVersion(header.AppVersion)
	if err != nil {
		logger.Debugf("Ignoring malformed appVersion %q: %v", header.AppVersion, err)
		return
	}

	minimum := version.Must(version.NewVersion(minWriterVersion))
	if written.LessThan(minimum) {
		logger.Warnf("Log was written by version %s, older than the oldest verified version %s", written, minimum)
	}
}
