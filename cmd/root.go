package cmd

import (
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "songplayer",
	Short: "Sheet music to song timeline tools",
	Long:  `Converts OCR'd sheet music into flat song timelines and edits their measures.`,
}

func Execute() {
	cobra.CheckErr(rootCmd.Execute())
}
