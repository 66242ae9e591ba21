package constants

import "os"

// GetSongsDir is where converted and edited song JSON files live.
func GetSongsDir() string {
	path := os.Getenv("SONGS_PATH")
	if path != "" {
		return path
	}
	return "./songs"
}

// GetSheetXMLDir is where score XML extracted from OCR output lands.
func GetSheetXMLDir() string {
	path := os.Getenv("SHEETXML_PATH")
	if path != "" {
		return path
	}
	return "./sheetxml"
}
