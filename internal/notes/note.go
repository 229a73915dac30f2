package notes

import "path/filepath"

// DefaultExtension is the extension given to notes and drafts when none is configured.
const DefaultExtension = "md"

// Item is anything the selector can put in front of the user.
type Item interface {
	Label() string
}

// Note represents a saved memo in the notes directory
type Note struct {
	Title string // Filename with the extension stripped
	Path  string // Path to the file inside the notes directory
}

// Label returns the filename including its extension.
func (n Note) Label() string {
	return filepath.Base(n.Path)
}

// Filename joins a title and extension into a note filename.
func Filename(title, ext string) string {
	if ext == "" {
		return title
	}
	return title + "." + ext
}
