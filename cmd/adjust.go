package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/MartyIce/songplayer/adjust"
	"github.com/MartyIce/songplayer/model"
	"github.com/MartyIce/songplayer/songfile"
)

var (
	adjustMeasure  int
	adjustNote     string
	adjustDuration float64
	adjustRest     bool
	adjustStart    float64
	adjustOffset   float64
	adjustOutput   string
)

func init() {
	adjustCmd.Flags().IntVar(&adjustMeasure, "measure", 0, "0-based measure index")
	adjustCmd.Flags().StringVar(&adjustNote, "note", "", `note to add, e.g. "G4" (add only)`)
	adjustCmd.Flags().Float64Var(&adjustDuration, "duration", 0, "note duration in beats (add only)")
	adjustCmd.Flags().BoolVar(&adjustRest, "rest", false, "add a rest instead of a note (add only)")
	adjustCmd.Flags().Float64Var(&adjustStart, "start", 0, "start time in beats (shift-time only)")
	adjustCmd.Flags().Float64Var(&adjustOffset, "offset", 0, "offset in beats, may be negative (shift-time only)")
	adjustCmd.Flags().StringVar(&adjustOutput, "output", "", "output path (defaults to overwriting the input)")
	rootCmd.AddCommand(adjustCmd)
}

var adjustCmd = &cobra.Command{
	Use:   "adjust <add|shift|remove|shift-time> <file>",
	Short: "Edits measures in a song file",
	Long: `Edits measures in a song file.

  add        opens a measure at --measure and places a --note/--rest there
  shift      opens an empty measure at --measure
  remove     deletes the measure at --measure (its notes are discarded!)
  shift-time moves every note at or after --start by --offset beats`,
	Args: cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		return runAdjust(args[0], args[1])
	},
}

func runAdjust(action, path string) error {
	song, err := songfile.Load(path)
	if err != nil {
		return err
	}

	switch action {
	case "add":
		newNote := model.Note{Pitch: adjustNote, Rest: adjustRest, Duration: adjustDuration}
		song, err = adjust.AddMeasureWithNote(song, adjustMeasure, newNote)
	case "shift":
		song, err = adjust.ShiftMeasures(song, adjustMeasure)
	case "remove":
		song, err = adjust.RemoveMeasure(song, adjustMeasure)
	case "shift-time":
		song, err = adjust.ShiftTime(song, adjustStart, adjustOffset)
	default:
		return fmt.Errorf("unknown action %q (want add, shift, remove or shift-time)", action)
	}
	if err != nil {
		return err
	}

	out := adjustOutput
	if out == "" {
		out = path
	}
	return songfile.Save(song, out)
}
