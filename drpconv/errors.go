package drpconv

import "errors"

// Fatal reconstruction errors. All of them abort the conversion with no
// partial result; callers can match them with errors.Is.
var (
	ErrNoSources     = errors.New("no sources in header")
	ErrNoEvents      = errors.New("no switch events in log")
	ErrBadVideoMode  = errors.New("unrecognized video mode")
	ErrUnknownSource = errors.New("unknown source index")
)
