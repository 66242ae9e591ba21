package cmd

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/MartyIce/songplayer/constants"
	"github.com/MartyIce/songplayer/db"
	"github.com/MartyIce/songplayer/model"
	"github.com/MartyIce/songplayer/quantize"
	"github.com/MartyIce/songplayer/sheet"
	"github.com/MartyIce/songplayer/songfile"
	"github.com/MartyIce/songplayer/util"
)

func init() {
	rootCmd.AddCommand(convertCmd)
}

var convertCmd = &cobra.Command{
	Use:   "convert [sheet-dir]",
	Short: "Converts score XML into song files",
	Long:  `Converts score XML (extracting any .mxl archives first) into quantized song JSON files.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		dir := constants.GetSheetXMLDir()
		if len(args) == 1 {
			dir = args[0]
		}
		return runConvert(dir)
	},
}

func runConvert(dir string) error {
	// Unpack any compressed scores sitting next to the plain XML.
	mxlPaths, err := util.GatherFilePaths(dir, ".mxl")
	if err != nil {
		return fmt.Errorf("could not read sheet dir %v: %w", dir, err)
	}
	for _, mxlPath := range mxlPaths {
		xmlPath, err := songfile.ExtractXMLFromMXL(mxlPath, dir)
		if err != nil {
			fmt.Printf("Skipping %v because: %v\n", mxlPath, err)
			continue
		}
		fmt.Printf("Extracted %v\n", xmlPath)
	}

	pieces, err := sheet.GatherPieces(dir)
	if err != nil {
		return fmt.Errorf("could not read sheet dir %v: %w", dir, err)
	}
	if len(pieces) == 0 {
		fmt.Printf("No score XML found in %v\n", dir)
		return nil
	}

	bases := util.SortedKeys(pieces)

	var overrides map[string]db.SongMetadata
	if db.Enabled() {
		overrides, err = db.GetSongMetadatas(bases)
		if err != nil {
			return err
		}
	}

	songsDir := constants.GetSongsDir()
	if err := os.MkdirAll(songsDir, 0777); err != nil {
		return err
	}

	for i, base := range bases {
		fmt.Printf("Converting %v of %v pieces\n", i+1, len(bases))
		song := quantize.Apply(sheet.ImportPiece(pieces[base]))

		// Untitled pieces get a uuid-suffixed file name; decide before
		// the overrides backfill the title from the base name.
		name := base
		if song.Title == "" {
			name = "untitled-" + uuid.New().String()
		}
		applyOverrides(&song, base, overrides)

		path := filepath.Join(songsDir, name+".json")
		if err := songfile.Save(song, path); err != nil {
			return err
		}
		fmt.Printf("Wrote %v (%v notes)\n", path, len(song.Notes))
	}
	return nil
}

func applyOverrides(song *model.Song, base string, overrides map[string]db.SongMetadata) {
	if song.Title == "" {
		song.Title = base
	}
	if m, ok := overrides[base]; ok {
		if m.Title != "" {
			song.Title = m.Title
		}
		if m.Artist != "" {
			song.Artist = m.Artist
		}
	}
}
