package viewer

import (
	"errors"
	"path/filepath"
	"strings"

	"github.com/sqweek/dialog"
)

// ErrCancelled is returned when the user dismisses a file dialog.
var ErrCancelled = errors.New("dialog cancelled")

// Dialogs picks files interactively. Implementations return ErrCancelled
// when the user closes the dialog without choosing a file.
type Dialogs interface {
	OpenFile(title, startDir string) (string, error)
	SaveFile(title, startDir string) (string, error)
}

// FileFilter is a named group of file extensions offered by a dialog.
type FileFilter struct {
	Description string
	Extensions  []string
}

// FileFilters lists the mesh document types, default first.
var FileFilters = []FileFilter{
	{Description: "JSON Mesh", Extensions: []string{"json"}},
	{Description: "YAML Mesh", Extensions: []string{"yaml", "yml"}},
}

// EnsureExtension appends the default filter extension unless path already
// ends in one of the mesh extensions.
func EnsureExtension(path string) string {
	ext := strings.TrimPrefix(strings.ToLower(filepath.Ext(path)), ".")
	for _, f := range FileFilters {
		for _, e := range f.Extensions {
			if ext == e {
				return path
			}
		}
	}
	return path + "." + FileFilters[0].Extensions[0]
}

// NativeDialogs returns the platform file dialogs.
func NativeDialogs() Dialogs {
	return nativeDialogs{}
}

type nativeDialogs struct{}

func (nativeDialogs) builder(title, startDir string) *dialog.FileBuilder {
	b := dialog.File().Title(title)
	for _, f := range FileFilters {
		b = b.Filter(f.Description, f.Extensions...)
	}
	b = b.Filter("All Files", "*")
	if startDir != "" {
		b = b.SetStartDir(startDir)
	}
	return b
}

func (d nativeDialogs) OpenFile(title, startDir string) (string, error) {
	path, err := d.builder(title, startDir).Load()
	return path, translateDialogError(err)
}

func (d nativeDialogs) SaveFile(title, startDir string) (string, error) {
	path, err := d.builder(title, startDir).Save()
	return path, translateDialogError(err)
}

func translateDialogError(err error) error {
	if err == dialog.ErrCancelled {
		return ErrCancelled
	}
	return err
}
