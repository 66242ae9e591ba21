package main

import "github.com/MartyIce/songplayer/cmd"

func main() {
	cmd.Execute()
}
