package runner

// Cues is the audio hook the simulation fires on notable events.
// Implementations must be cheap and non-blocking. The game never depends
// on a cue being heard; a missing backend simply means silence.
type Cues interface {
	Jump()
	Crash()
	Milestone()
	SpeedUp()
	PowerUp()
}

// NopCues ignores every cue. It is the default emitter and the one used
// for headless sessions.
type NopCues struct{}

func (NopCues) Jump()      {}
func (NopCues) Crash()     {}
func (NopCues) Milestone() {}
func (NopCues) SpeedUp()   {}
func (NopCues) PowerUp()   {}
