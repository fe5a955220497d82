package ui

type AnimationStep int

const (
	Idle AnimationStep = iota
	Reveal
	GameOver
)
