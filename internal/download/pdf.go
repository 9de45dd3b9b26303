// Package download describes the fixed resume PDF offered on the background
// view. The file is never generated; it is only checked and measured.
package download

import (
	"bytes"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path"
	"path/filepath"

	"github.com/ledongthuc/pdf"
)

// ErrNotPDF is returned when the file does not carry a PDF header.
var ErrNotPDF = errors.New("not a PDF document")

// Info is what the page needs to render the download card.
type Info struct {
	Name  string `json:"name"`
	URL   string `json:"url"`
	Size  int64  `json:"size"`
	Pages int    `json:"pages"`
	Title string `json:"title,omitempty"`
}

// Label is the link text shown on the download card.
func (i Info) Label() string {
	switch i.Pages {
	case 0:
		return "Download Full Resume"
	case 1:
		return "Download Full Resume (1 page)"
	default:
		return fmt.Sprintf("Download Full Resume (%d pages)", i.Pages)
	}
}

// Inspect reads the PDF at file from the local filesystem.
func Inspect(file, urlPrefix string) (Info, error) {
	data, err := os.ReadFile(file)
	if err != nil {
		return Info{}, fmt.Errorf("reading resume pdf: %w", err)
	}
	return InspectBytes(filepath.Base(file), urlPrefix, data)
}

// InspectFS reads the PDF at name from fsys.
func InspectFS(fsys fs.FS, name, urlPrefix string) (Info, error) {
	data, err := fs.ReadFile(fsys, name)
	if err != nil {
		return Info{}, fmt.Errorf("reading resume pdf: %w", err)
	}
	return InspectBytes(path.Base(name), urlPrefix, data)
}

// InspectBytes parses data as a PDF and returns its metadata. The download
// URL is urlPrefix joined with name.
func InspectBytes(name, urlPrefix string, data []byte) (info Info, err error) {
	if !bytes.HasPrefix(data, []byte("%PDF-")) {
		return Info{}, fmt.Errorf("%s: %w", name, ErrNotPDF)
	}

	// The pdf package panics on many malformed objects.
	defer func() {
		if r := recover(); r != nil {
			info, err = Info{}, fmt.Errorf("parsing %s: %v", name, r)
		}
	}()

	r, err := pdf.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return Info{}, fmt.Errorf("parsing %s: %w", name, err)
	}

	info = Info{
		Name:  name,
		URL:   path.Join(urlPrefix, name),
		Size:  int64(len(data)),
		Pages: r.NumPage(),
	}
	if title := r.Trailer().Key("Info").Key("Title"); !title.IsNull() {
		info.Title = title.Text()
	}
	return info, nil
}
