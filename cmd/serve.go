package cmd

import (
	"encoding/json"
	"fmt"
	"log"
	"net/http"
	"os"
	"path/filepath"
	"strings"

	"github.com/gorilla/mux"
	"github.com/rs/cors"
	"github.com/spf13/cobra"

	"github.com/MartyIce/songplayer/adjust"
	"github.com/MartyIce/songplayer/constants"
	"github.com/MartyIce/songplayer/model"
	"github.com/MartyIce/songplayer/songfile"
)

func init() {
	rootCmd.AddCommand(serveCmd)
}

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serves the songs directory over HTTP",
	Long:  `Serves the songs directory over HTTP with measure-editing endpoints`,
	Run: func(cmd *cobra.Command, args []string) {
		serve()
	},
}

func songPath(name string) string {
	// Base() keeps requests from escaping the songs dir.
	return filepath.Join(constants.GetSongsDir(), filepath.Base(name)+".json")
}

func writeError(w http.ResponseWriter, status int, err error) {
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(model.ErrorResponse{Error: err.Error()})
}

func HandleListSongs(w http.ResponseWriter, r *http.Request) {
	entries, err := os.ReadDir(constants.GetSongsDir())
	if err != nil {
		writeError(w, 500, err)
		return
	}

	names := make([]string, 0)
	for _, entry := range entries {
		if !entry.IsDir() && strings.HasSuffix(entry.Name(), ".json") {
			names = append(names, songfile.SongName(entry.Name()))
		}
	}
	json.NewEncoder(w).Encode(names)
}

func HandleGetSong(w http.ResponseWriter, r *http.Request) {
	name := mux.Vars(r)["name"]
	song, err := songfile.Load(songPath(name))
	if err != nil {
		writeError(w, 404, err)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(song)
}

func HandleAdjustSong(w http.ResponseWriter, r *http.Request) {
	name := mux.Vars(r)["name"]
	path := songPath(name)

	song, err := songfile.Load(path)
	if err != nil {
		writeError(w, 404, err)
		return
	}

	var input model.AdjustRequestBody
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		writeError(w, 400, fmt.Errorf("could not parse request body: %w", err))
		return
	}

	switch input.Action {
	case "add":
		newNote := model.Note{Pitch: input.Note, Rest: input.Rest, Duration: input.Duration}
		song, err = adjust.AddMeasureWithNote(song, input.Measure, newNote)
	case "shift":
		song, err = adjust.ShiftMeasures(song, input.Measure)
	case "remove":
		song, err = adjust.RemoveMeasure(song, input.Measure)
	case "shift-time":
		song, err = adjust.ShiftTime(song, input.Start, input.Offset)
	default:
		writeError(w, 400, fmt.Errorf("unknown action %q", input.Action))
		return
	}
	if err != nil {
		writeError(w, 400, err)
		return
	}

	if err := songfile.Save(song, path); err != nil {
		writeError(w, 500, err)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(song)
}

func serve() {
	router := mux.NewRouter().StrictSlash(true)
	router.HandleFunc("/songs", HandleListSongs).Methods("GET")
	router.HandleFunc("/songs/{name}", HandleGetSong).Methods("GET")
	router.HandleFunc("/songs/{name}/adjust", HandleAdjustSong).Methods("POST")

	handler := cors.Default().Handler(router)
	log.Fatal(http.ListenAndServe(":8080", handler))
}
