package api

import (
	"net/http"
	"time"

	"github.com/gorilla/mux"
	"github.com/rs/zerolog"

	"github.com/keepsakehq/keepsake/server/internal/api/recovery"
	"github.com/keepsakehq/keepsake/server/internal/auth"
	"github.com/keepsakehq/keepsake/server/internal/config"
	"github.com/keepsakehq/keepsake/server/internal/services"
	"github.com/keepsakehq/keepsake/server/internal/store"
	"github.com/keepsakehq/keepsake/server/internal/uploads"
)

// NewRouter wires all routes to handlers. Read/update/delete of memories
// and memory upload sit behind the session guard; memory create stays open
// to match the existing front end.
func NewRouter(cfg *config.Config, st store.Store, intake *uploads.Intake, log zerolog.Logger) *mux.Router {
	root := mux.NewRouter()
	root.Use(recovery.Middleware)

	// Auth
	authn := auth.NewAuthenticator(st.Secret(), st.Sessions(),
		time.Duration(cfg.SessionTTLHours)*time.Hour)
	authHandler := NewAuthHandler(authn)
	root.HandleFunc("/check-password", authHandler.CheckPassword).Methods("POST")

	guard := auth.Middleware(auth.NewSessionAuthorizer(st.Sessions()))

	// Memories
	memorySvc := services.NewMemoryService(st, intake, log)
	memory := NewMemoryHandler(memorySvc)
	root.HandleFunc("/add-memory", memory.AddMemory).Methods("POST")
	root.Handle("/memories", guard(http.HandlerFunc(memory.ListMemories))).Methods("GET")
	root.Handle("/memories/{id}", guard(http.HandlerFunc(memory.UpdateMemory))).Methods("PUT")
	root.Handle("/memories/{id}", guard(http.HandlerFunc(memory.DeleteMemory))).Methods("DELETE")
	root.Handle("/upload-memory", guard(http.HandlerFunc(memory.UploadMemory))).Methods("POST")

	// Playlist
	songSvc := services.NewSongService(st, intake, log)
	song := NewSongHandler(songSvc)
	root.HandleFunc("/songs", song.ListSongs).Methods("GET")
	root.HandleFunc("/upload-song", song.UploadSong).Methods("POST")
	root.HandleFunc("/songs/{filename}", song.DeleteSong).Methods("DELETE")

	// Dates
	datesSvc := services.NewDatesService(st)
	dates := NewDatesHandler(datesSvc)
	root.HandleFunc("/dates", dates.GetDates).Methods("GET")
	root.HandleFunc("/dates", dates.SetDates).Methods("POST")

	// Health
	health := NewHealthHandler()
	root.HandleFunc("/ping", health.Ping).Methods("GET")

	// Static assets: stored uploads, then the front-end bundle.
	root.PathPrefix(uploads.URLPrefix).Handler(
		http.StripPrefix(uploads.URLPrefix, http.FileServer(http.Dir(intake.Dir()))))
	root.PathPrefix("/").Handler(http.FileServer(http.Dir(cfg.StaticDir)))

	return root
}
