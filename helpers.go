package main

import (
	"html/template"
	"log"
	"net/http"

	"github.com/gorilla/sessions"
)

const sessionName = "session"

// --- Session helpers ---

func newStore(secret string) *sessions.CookieStore {
	s := sessions.NewCookieStore([]byte(secret))
	s.Options = &sessions.Options{
		Path:     "/",
		HttpOnly: true,
	}
	return s
}

// currentSession returns the logged-in account's id and display name, or
// ok=false when the request carries no valid session.
func (app *App) currentSession(r *http.Request) (id int, name string, ok bool) {
	session, _ := app.store.Get(r, sessionName)
	rawID, present := session.Values["account_id"]
	if !present {
		return 0, "", false
	}
	id, ok = rawID.(int)
	if !ok {
		return 0, "", false
	}
	name, _ = session.Values["name"].(string)
	return id, name, true
}

// setSession binds the session cookie to the given account.
func (app *App) setSession(w http.ResponseWriter, r *http.Request, acct *Account) error {
	session, _ := app.store.Get(r, sessionName)
	session.Values["account_id"] = acct.ID
	session.Values["name"] = acct.Name
	return session.Save(r, w)
}

// clearSession destroys the current session. Clearing an absent session is
// not an error.
func (app *App) clearSession(w http.ResponseWriter, r *http.Request) error {
	session, _ := app.store.Get(r, sessionName)
	delete(session.Values, "account_id")
	delete(session.Values, "name")
	session.Options.MaxAge = -1
	return session.Save(r, w)
}

// --- Template helpers ---

func (app *App) renderTemplate(w http.ResponseWriter, templateFile string, data map[string]interface{}) {
	tmpl := template.Must(template.New("layout.html").
		ParseFiles("templates/layout.html", "templates/"+templateFile))

	if err := tmpl.ExecuteTemplate(w, "layout.html", data); err != nil {
		log.Printf("Error rendering %s: %v", templateFile, err)
	}
}
