package domain

// RequestStatus is the transient status shared by the ingest and feed
// operations: a single busy flag plus a human-readable note.
type RequestStatus struct {
	Busy bool
	Note string
}

// AudioState is one story's narration playback state.
type AudioState string

const (
	AudioIdle    AudioState = "idle"
	AudioLoading AudioState = "loading"
	AudioPlaying AudioState = "playing"
	AudioError   AudioState = "error"
)
