package models

// TrackStatus represents the completion state of a track.
type TrackStatus string

const (
	// TrackStatusDone indicates the track is complete.
	TrackStatusDone TrackStatus = "done"
	// TrackStatusInProgress indicates work on the track has started.
	TrackStatusInProgress TrackStatus = "in_progress"
	// TrackStatusNotStarted indicates no work has been done yet.
	TrackStatusNotStarted TrackStatus = "not_started"
)

// Valid returns true if the status is a known value.
func (s TrackStatus) Valid() bool {
	switch s {
	case TrackStatusDone, TrackStatusInProgress, TrackStatusNotStarted:
		return true
	default:
		return false
	}
}

// Track is a named unit of project work with a static status and percentage.
// Tracks are catalog data and are never mutated after startup.
type Track struct {
	// Label is the display name of the track.
	Label string `yaml:"label"`
	// Value is the completion percentage.
	Value Percent `yaml:"value"`
	// Status is the completion state.
	Status TrackStatus `yaml:"status"`
}

// HasDetails reports whether the dashboard offers a details view for the track.
func (t Track) HasDetails() bool {
	return t.Status == TrackStatusInProgress
}
