package cmd

import (
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/MartyIce/songplayer/gm"
	"github.com/MartyIce/songplayer/songfile"
)

var exportOutput string

func init() {
	exportCmd.Flags().StringVar(&exportOutput, "output", "", "output .mid path (defaults to the song path with a .mid extension)")
	rootCmd.AddCommand(exportCmd)
}

var exportCmd = &cobra.Command{
	Use:   "export <file>",
	Short: "Exports a song as a MIDI file",
	Long:  `Exports a song as a General MIDI file`,
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return runExport(args[0])
	},
}

func runExport(path string) error {
	song, err := songfile.Load(path)
	if err != nil {
		return err
	}

	out := exportOutput
	if out == "" {
		out = strings.TrimSuffix(path, ".json") + ".mid"
	}

	f, err := os.Create(out)
	if err != nil {
		return err
	}
	defer f.Close()

	return gm.Export(song, f)
}
