package core

// Event is the single discrete input a host reports for one frame.
// Hosts translate raw keys into this closed set; the simulation never sees keys.
type Event int

const (
	EventNone    Event = iota // No key this frame
	EventConfirm              // P - start or restart a run
	EventFlap                 // Space - flap while playing
	EventQuit                 // Q - leave the game
	EventOther                // Any other key; ignored by every mode
)

// String returns a human-readable name for the event.
func (e Event) String() string {
	switch e {
	case EventNone:
		return "None"
	case EventConfirm:
		return "Confirm"
	case EventFlap:
		return "Flap"
	case EventQuit:
		return "Quit"
	case EventOther:
		return "Other"
	default:
		return "Unknown"
	}
}
