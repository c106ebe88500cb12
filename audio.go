package grove

// Audio plays named sound effects. Play must not block the game loop.
type Audio interface {
	Play(name string)
}

// NopAudio discards every sound.
type NopAudio struct{}

func (NopAudio) Play(string) {}
