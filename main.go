package main

import (
	"database/sql"
	"log"
	"net/http"
	"time"

	"github.com/gorilla/sessions"
	"github.com/joho/godotenv"
)

// App holds the process-scoped state every handler needs: the datastore, the
// cookie session store and the broadcast hub. It is created on startup and
// torn down on shutdown; nothing here lives in package-level globals.
type App struct {
	db    *sql.DB
	store *sessions.CookieStore
	hub   *Hub
}

func NewApp(db *sql.DB, store *sessions.CookieStore, hub *Hub) *App {
	return &App{db: db, store: store, hub: hub}
}

func main() {
	godotenv.Load()
	cfg := NewConfigFromEnv()

	db, err := openDB(cfg.Database)
	if err != nil {
		log.Fatalf("opening database: %v", err)
	}
	defer db.Close()

	if err := initSchema(db); err != nil {
		log.Fatalf("initializing schema: %v", err)
	}

	hub := NewHub()
	go hub.Run()
	defer hub.Shutdown()

	app := NewApp(db, newStore(cfg.SessionSecret), hub)

	server := &http.Server{
		Addr:         cfg.Port,
		Handler:      app.setupRouter(),
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	log.Printf("Server is running, visit http://localhost%s", cfg.Port)
	log.Fatal(server.ListenAndServe())
}
