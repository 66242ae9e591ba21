package songfile

import (
	"archive/zip"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeMXL(t *testing.T, path string, entries map[string]string) {
	t.Helper()
	f, err := os.Create(path)
	require.NoError(t, err)
	defer f.Close()

	w := zip.NewWriter(f)
	for name, content := range entries {
		entry, err := w.Create(name)
		require.NoError(t, err)
		_, err = entry.Write([]byte(content))
		require.NoError(t, err)
	}
	require.NoError(t, w.Close())
}

func TestExtractXMLFromMXL(t *testing.T) {
	dir := t.TempDir()
	mxlPath := filepath.Join(dir, "song.mxl")
	writeMXL(t, mxlPath, map[string]string{
		"META-INF/container.xml": "<container/>",
		"container.xml":          "<container/>",
		"score.xml":              "<score-partwise/>",
	})

	xmlPath, err := ExtractXMLFromMXL(mxlPath, dir)
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, "song.xml"), xmlPath)

	data, err := os.ReadFile(xmlPath)
	require.NoError(t, err)
	assert.Equal(t, "<score-partwise/>", string(data))
}

func TestExtractXMLFromMXLNoScore(t *testing.T) {
	dir := t.TempDir()
	mxlPath := filepath.Join(dir, "empty.mxl")
	writeMXL(t, mxlPath, map[string]string{
		"META-INF/container.xml": "<container/>",
		"image.png":              "not xml",
	})

	_, err := ExtractXMLFromMXL(mxlPath, dir)
	assert.ErrorContains(t, err, "no score xml")
}
