package styles

// Nerd Font icons (requires a Nerd Font to display correctly)
const (
	IconVersion   = "" // tag
	IconGitBranch = "" // git branch
	IconCalendar  = "" // calendar
	IconGithub    = "" // github
	IconHeart     = "" // heart
	IconGo        = "" // go gopher
	IconArrow     = "" // arrow right
	IconKeyboard  = "" // keyboard
	IconCheck     = "" // check
	IconX         = "" // x
	IconWarning   = "" // warning
	IconConfig    = "" // config
	IconRedo      = "" // redispatch
)
