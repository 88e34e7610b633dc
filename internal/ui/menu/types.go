package menu

type Action int

const (
	ActionNone Action = iota
	ActionStartLevel
	ActionOpenSettings
	ActionBack
	ActionQuitGame
)
