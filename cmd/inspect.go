package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/MartyIce/songplayer/songfile"
)

func init() {
	rootCmd.AddCommand(inspectCmd)
}

var inspectCmd = &cobra.Command{
	Use:   "inspect <file>",
	Short: "Prints a song summary",
	Long:  `Prints a song summary`,
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return inspect(args[0])
	},
}

func inspect(path string) error {
	song, err := songfile.Load(path)
	if err != nil {
		return err
	}

	var measures int
	var rests int
	var end float64
	for _, note := range song.Notes {
		if note.Measure > measures {
			measures = note.Measure
		}
		if note.Rest {
			rests++
		}
		if off := note.Time + note.Duration; off > end {
			end = off
		}
	}

	fmt.Printf("title:  %v\n", song.Title)
	fmt.Printf("artist: %v\n", song.Artist)
	fmt.Printf("bpm:    %v\n", song.BPM)
	fmt.Printf("time:   %v/%v\n", song.TimeSignature[0], song.TimeSignature[1])
	fmt.Printf("tuning: %v\n", song.Tuning)
	fmt.Printf("notes:  %v (%v rests) across %v measures, %v beats\n",
		len(song.Notes), rests, measures, end)
	return nil
}
