package ports

// LinkOpener opens a URL in the user's browser
type LinkOpener interface {
	OpenURL(url string) error
}
