package audio

// Sound identifies a short effect tone
type Sound uint8

const (
	SoundEat Sound = iota
	SoundGrow
)

func (s Sound) String() string {
	switch s {
	case SoundEat:
		return "Eat"
	case SoundGrow:
		return "Grow"
	default:
		return "Unknown"
	}
}

// Player plays effect sounds without blocking the caller
type Player interface {
	Play(Sound)
	SetMuted(bool)
	Muted() bool
	Close()
}
