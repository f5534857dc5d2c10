package kml

import (
	"archive/zip"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/beevik/etree"
)

// mainEntry is the conventional name of the document inside a KMZ
// archive.
const mainEntry = "doc.kml"

// OpenKMZ parses the KML document inside the zip archive at path. The
// first entry named *.kml is taken as the main document; when none is,
// the first entry is.
func OpenKMZ(path string) (*etree.Document, error) {
	archive, err := zip.OpenReader(path)
	if err != nil {
		return nil, err
	}
	defer archive.Close()

	if len(archive.File) == 0 {
		return nil, fmt.Errorf("kmz archive %s has no entries", path)
	}
	entry := archive.File[0]
	for _, f := range archive.File {
		if strings.HasSuffix(strings.ToLower(f.Name), ".kml") {
			entry = f
			break
		}
	}

	r, err := entry.Open()
	if err != nil {
		return nil, err
	}
	defer r.Close()
	return Parse(r)
}

// SaveKMZ writes doc as the doc.kml entry of a new zip archive at
// path.
func SaveKMZ(doc *etree.Document, path string) error {
	out, err := os.Create(path)
	if err != nil {
		return err
	}
	defer out.Close()

	archive := zip.NewWriter(out)
	w, err := archive.Create(mainEntry)
	if err != nil {
		return err
	}
	if _, err := doc.WriteTo(w); err != nil {
		return err
	}
	return archive.Close()
}

// Compress copies the KML file at path into a sibling .kmz archive and
// returns the archive path. The file's content goes in verbatim under
// the doc.kml entry.
func Compress(path string) (string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return "", err
	}

	target := strings.TrimSuffix(path, filepath.Ext(path)) + ".kmz"
	out, err := os.Create(target)
	if err != nil {
		return "", err
	}
	defer out.Close()

	archive := zip.NewWriter(out)
	w, err := archive.Create(mainEntry)
	if err != nil {
		return "", err
	}
	if _, err := w.Write(data); err != nil {
		return "", err
	}
	if err := archive.Close(); err != nil {
		return "", err
	}
	return target, nil
}
