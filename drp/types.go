package drp

// Log contains all of the information from a DRP switcher log.
type Log struct {
	Header *Header
	Events []*SwitchEvent
}

// Header is the first record of a DRP file: the show's reference
// timecode, the video mode, the source catalogue, and the mix-effect
// state at the start of the recording.
type Header struct {
	MasterTimecode  string           `json:"masterTimecode"`
	VideoMode       string           `json:"videoMode"`
	AppVersion      string           `json:"appVersion"`
	Sources         []Source         `json:"sources"`
	MixEffectBlocks []MixEffectBlock `json:"mixEffectBlocks"`
}

// Source is one entry of the header's source catalogue.
//
// A source without a file path (an unrecorded feed, such as a still or
// a black generator) is still valid; it simply has no backing media.
type Source struct {
	Index int    `json:"_index_"`
	Name  string `json:"name"`
	File  string `json:"file"`
}

// MixEffectBlock carries the program-bus state of one mix effect.
// Source is nil when the record does not name an on-air source.
type MixEffectBlock struct {
	Source *int `json:"source"`
}

// SwitchEvent is one record of the switch-event stream: the master
// timecode at which the switcher sampled the on-air state, and the
// mix-effect blocks at that instant.
type SwitchEvent struct {
	MasterTimecode  string           `json:"masterTimecode"`
	MixEffectBlocks []MixEffectBlock `json:"mixEffectBlocks"`
}

// InitialSource returns the source index that was on air before the
// first switch. A header that does not carry one defaults to index 0.
func (h *Header) InitialSource() int {
	if len(h.MixEffectBlocks) > 0 && h.MixEffectBlocks[0].Source != nil {
		return *h.MixEffectBlocks[0].Source
	}
	return 0
}

// Source returns the new on-air source index carried by the event, or
// false when the event carries none. An event without a source marks
// the end of the show.
func (e *SwitchEvent) Source() (int, bool) {
	if len(e.MixEffectBlocks) > 0 && e.MixEffectBlocks[0].Source != nil {
		return *e.MixEffectBlocks[0].Source, true
	}
	return 0, false
}

// SourceByIndex returns the catalogue entry with the given index.
func (h *Header) SourceByIndex(index int) *Source {
	for i := range h.Sources {
		if h.Sources[i].Index == index {
			return &h.Sources[i]
		}
	}
	return nil
}
