package views

import "promptbuilder/internal/domain"

// ViewState contains common state shared by all view models.
// Embed this struct in view models to get width/height and message handling.
type ViewState struct {
	Width      int
	Height     int
	Message    string
	MessageErr bool
}

// SetSize updates the view dimensions
func (s *ViewState) SetSize(width, height int) {
	s.Width = width
	s.Height = height
}

// SetMessage sets a message to display in the view
func (s *ViewState) SetMessage(msg string, isErr bool) {
	s.Message = msg
	s.MessageErr = isErr
}

// ClearMessage clears the current message
func (s *ViewState) ClearMessage() {
	s.Message = ""
	s.MessageErr = false
}

// Messages for view switching
type SwitchToBrowserMsg struct{}

type SwitchToHelpMsg struct{}

type SwitchToSearchMsg struct{}

type SwitchToSettingsMsg struct{}

// SwitchToRenameMsg opens the tag editor for the tag at Index
type SwitchToRenameMsg struct {
	Index int
	Tag   string
}

// SwitchToConfirmClearMsg asks before removing every tag
type SwitchToConfirmClearMsg struct{}

// ReloadMsg asks the app to fetch the category data again
type ReloadMsg struct{}

// LoadedMsg reports the end of a load
type LoadedMsg struct {
	Err error
}

// GenerateMsg asks the app to run the generation trigger
type GenerateMsg struct{}

// GeneratedMsg reports the end of a generation run
type GeneratedMsg struct {
	Err error
}

// RemoteSnapshotMsg carries state mirrored from another window
type RemoteSnapshotMsg struct {
	Snapshot domain.Snapshot
}

// StatusMsg shows a message in the browser
type StatusMsg struct {
	Text  string
	IsErr bool
}
