package main

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"

	"github.com/gorilla/mux"
	"github.com/gorilla/websocket"
)

// GET / — landing page
func (app *App) indexHandler(w http.ResponseWriter, r *http.Request) {
	app.renderTemplate(w, "index.html", map[string]interface{}{})
}

// GET /register
func (app *App) registerPageHandler(w http.ResponseWriter, r *http.Request) {
	app.renderTemplate(w, "register.html", map[string]interface{}{})
}

// GET /login
func (app *App) loginPageHandler(w http.ResponseWriter, r *http.Request) {
	app.renderTemplate(w, "login.html", map[string]interface{}{})
}

// GET /chat.html — the chat view; posting is gated by the session, viewing is not
func (app *App) chatPageHandler(w http.ResponseWriter, r *http.Request) {
	_, name, _ := app.currentSession(r)
	app.renderTemplate(w, "chat.html", map[string]interface{}{
		"Name": name,
	})
}

// POST /auth/register — always re-renders the register view; a new account is
// not logged in automatically
func (app *App) registerHandler(w http.ResponseWriter, r *http.Request) {
	err := app.register(
		r.FormValue("name"),
		r.FormValue("email"),
		r.FormValue("password"),
		r.FormValue("password_confirm"),
	)

	message := "Account registered"
	var vErr *ValidationError
	var cErr *ConflictError
	switch {
	case err == nil:
	case errors.As(err, &vErr):
		message = vErr.Msg
	case errors.As(err, &cErr):
		message = cErr.Msg
	default:
		log.Printf("Error registering account: %v", err)
		message = "Something went wrong during registration"
	}

	app.renderTemplate(w, "register.html", map[string]interface{}{
		"Message": message,
	})
}

// POST /auth/login
func (app *App) loginHandler(w http.ResponseWriter, r *http.Request) {
	acct, err := app.login(r.FormValue("name"), r.FormValue("password"))

	var message string
	switch {
	case err == nil:
		if err := app.setSession(w, r, acct); err != nil {
			log.Printf("Error saving session: %v", err)
			message = "Something went wrong during login"
			break
		}
		http.Redirect(w, r, "/chat.html", http.StatusFound)
		return
	case errors.Is(err, ErrNoAccount):
		message = "Account does not exist"
	case errors.Is(err, ErrBadCredentials):
		message = "Wrong password"
	default:
		log.Printf("Error logging in: %v", err)
		message = "Something went wrong during login"
	}

	app.renderTemplate(w, "login.html", map[string]interface{}{
		"Message": message,
	})
}

// GET /logout
func (app *App) logoutHandler(w http.ResponseWriter, r *http.Request) {
	if err := app.clearSession(w, r); err != nil {
		log.Printf("Error destroying session: %v", err)
		http.Redirect(w, r, "/chat.html", http.StatusFound)
		return
	}
	http.Redirect(w, r, "/login", http.StatusFound)
}

// GET /message — full history as JSON
func (app *App) listMessagesHandler(w http.ResponseWriter, r *http.Request) {
	messages, err := app.listMessages()
	if err != nil {
		log.Printf("Error fetching messages: %v", err)
		w.WriteHeader(http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(messages)
}

// POST /message — requires a session; persists then broadcasts to everyone,
// including the poster
func (app *App) postMessageHandler(w http.ResponseWriter, r *http.Request) {
	accountID, name, ok := app.currentSession(r)
	if !ok {
		w.WriteHeader(http.StatusUnauthorized)
		return
	}

	text := r.FormValue("message")
	chatID, err := app.postMessage(accountID, text)
	if err != nil {
		log.Printf("Error saving message: %v", err)
		w.WriteHeader(http.StatusInternalServerError)
		return
	}

	app.hub.Emit("message", ChatMessage{ChatID: chatID, Message: text, Name: name})
	w.WriteHeader(http.StatusOK)
}

// POST /message/delete — deletes by id alone; no session or ownership check
func (app *App) deleteMessageFormHandler(w http.ResponseWriter, r *http.Request) {
	id := r.FormValue("messageID")
	if err := app.deleteMessage(id); err != nil {
		log.Printf("Error deleting message: %v", err)
		w.WriteHeader(http.StatusInternalServerError)
		return
	}
	app.hub.Emit("messageDeleted", id)
	w.WriteHeader(http.StatusOK)
}

// DELETE /message/{id}
func (app *App) deleteMessageHandler(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]
	w.Header().Set("Content-Type", "application/json")
	if err := app.deleteMessage(id); err != nil {
		log.Printf("Error deleting message: %v", err)
		w.WriteHeader(http.StatusInternalServerError)
		json.NewEncoder(w).Encode(map[string]string{"error": "Failed to delete message"})
		return
	}
	app.hub.Emit("messageDeleted", id)
	json.NewEncoder(w).Encode(map[string]string{"message": "Message deleted successfully"})
}

// GET /profile
func (app *App) profileHandler(w http.ResponseWriter, r *http.Request) {
	accountID, _, ok := app.currentSession(r)
	if !ok {
		http.Redirect(w, r, "/login", http.StatusFound)
		return
	}

	acct, err := getAccountByID(app.db, accountID)
	if errors.Is(err, ErrNoAccount) {
		http.Redirect(w, r, "/login", http.StatusFound)
		return
	}
	if err != nil {
		log.Printf("Error fetching profile: %v", err)
		w.WriteHeader(http.StatusInternalServerError)
		return
	}

	app.renderTemplate(w, "profile.html", map[string]interface{}{
		"Name":  acct.Name,
		"Email": acct.Email,
	})
}

// POST /profile/update
func (app *App) profileUpdateHandler(w http.ResponseWriter, r *http.Request) {
	accountID, _, ok := app.currentSession(r)
	if !ok {
		http.Redirect(w, r, "/login", http.StatusFound)
		return
	}

	name := r.FormValue("name")
	email := r.FormValue("email")

	err := app.updateProfile(accountID, name, email)
	var vErr *ValidationError
	if errors.As(err, &vErr) {
		app.renderTemplate(w, "profile.html", map[string]interface{}{
			"Message": vErr.Msg,
			"Name":    name,
			"Email":   email,
		})
		return
	}
	if err != nil {
		log.Printf("Error updating profile: %v", err)
		w.WriteHeader(http.StatusInternalServerError)
		return
	}

	// Keep the session's display name in step with the rename so pushed
	// events carry the new name.
	session, _ := app.store.Get(r, sessionName)
	session.Values["name"] = name
	session.Save(r, w)

	app.renderTemplate(w, "profile.html", map[string]interface{}{
		"Message": "Profile updated",
		"Name":    name,
		"Email":   email,
	})
}

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	// The push channel is open to every visitor; frames carry nothing beyond
	// what GET /message already serves.
	CheckOrigin: func(r *http.Request) bool { return true },
}

// GET /ws — upgrade to the push channel; no authentication required
func (app *App) wsHandler(w http.ResponseWriter, r *http.Request) {
	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		log.Printf("WebSocket upgrade failed: %v", err)
		return
	}

	client := newWSClient(app.hub, conn, r.RemoteAddr)
	app.hub.register <- client
	go client.writePump()
	go client.readPump()
}

func (app *App) setupRouter() *mux.Router {
	r := mux.NewRouter()

	r.HandleFunc("/", app.indexHandler).Methods("GET")
	r.HandleFunc("/register", app.registerPageHandler).Methods("GET")
	r.HandleFunc("/login", app.loginPageHandler).Methods("GET")
	r.HandleFunc("/chat.html", app.chatPageHandler).Methods("GET")

	r.HandleFunc("/auth/register", app.registerHandler).Methods("POST")
	r.HandleFunc("/auth/login", app.loginHandler).Methods("POST")
	r.HandleFunc("/logout", app.logoutHandler).Methods("GET")

	r.HandleFunc("/message", app.listMessagesHandler).Methods("GET")
	r.HandleFunc("/message", app.postMessageHandler).Methods("POST")
	r.HandleFunc("/message/delete", app.deleteMessageFormHandler).Methods("POST")
	r.HandleFunc("/message/{id}", app.deleteMessageHandler).Methods("DELETE")

	r.HandleFunc("/profile", app.profileHandler).Methods("GET")
	r.HandleFunc("/profile/update", app.profileUpdateHandler).Methods("POST")

	r.HandleFunc("/ws", app.wsHandler).Methods("GET")
	r.PathPrefix("/static/").Handler(http.StripPrefix("/static/", http.FileServer(http.Dir("static"))))

	return r
}
