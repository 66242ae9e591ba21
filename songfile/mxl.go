package songfile

import (
	"archive/zip"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
)

// ExtractXMLFromMXL pulls the score XML out of a compressed .mxl archive
// and writes it next to the other plain XML files in xmlDir, returning the
// written path. The score is the first .xml entry that is neither under
// META-INF/ nor the container manifest.
func ExtractXMLFromMXL(mxlPath, xmlDir string) (string, error) {
	r, err := zip.OpenReader(mxlPath)
	if err != nil {
		return "", fmt.Errorf("could not open mxl archive %v: %w", mxlPath, err)
	}
	defer r.Close()

	stem := strings.TrimSuffix(filepath.Base(mxlPath), filepath.Ext(mxlPath))
	xmlPath := filepath.Join(xmlDir, stem+".xml")

	for _, entry := range r.File {
		name := entry.Name
		if !strings.HasSuffix(name, ".xml") ||
			strings.HasPrefix(name, "META-INF") ||
			name == "container.xml" {
			continue
		}

		src, err := entry.Open()
		if err != nil {
			return "", fmt.Errorf("could not read %v from %v: %w", name, mxlPath, err)
		}
		defer src.Close()

		dst, err := os.Create(xmlPath)
		if err != nil {
			return "", err
		}
		defer dst.Close()

		if _, err := io.Copy(dst, src); err != nil {
			return "", fmt.Errorf("could not extract %v from %v: %w", name, mxlPath, err)
		}
		return xmlPath, nil
	}

	return "", fmt.Errorf("no score xml found inside %v", mxlPath)
}
