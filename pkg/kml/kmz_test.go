package kml

import (
	"archive/zip"
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestKMZRoundTrip(t *testing.T) {
	doc := NewDocument("districts")
	pm := Add(DocumentElement(doc), "Placemark")
	Add(pm, "Point", "coordinates").SetText("-84.39,33.75")

	path := filepath.Join(t.TempDir(), "districts.kmz")
	require.NoError(t, SaveKMZ(doc, path))

	reopened, err := OpenKMZ(path)
	require.NoError(t, err)
	assert.Equal(t, "districts", DocumentElement(reopened).SelectElement("name").Text())
	assert.Len(t, Placemarks(reopened), 1)
}

func TestCompress(t *testing.T) {
	dir := t.TempDir()
	source := filepath.Join(dir, "map.kml")
	doc := NewDocument("map")
	require.NoError(t, doc.WriteToFile(source))
	raw, err := os.ReadFile(source)
	require.NoError(t, err)

	target, err := Compress(source)
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, "map.kmz"), target)

	archive, err := zip.OpenReader(target)
	require.NoError(t, err)
	defer archive.Close()
	require.Len(t, archive.File, 1)
	assert.Equal(t, "doc.kml", archive.File[0].Name)

	r, err := archive.File[0].Open()
	require.NoError(t, err)
	defer r.Close()
	inside, err := io.ReadAll(r)
	require.NoError(t, err)
	assert.Equal(t, raw, inside)
}
