package main

import (
	"fmt"
	"regexp"
	"strings"
	"unicode"

	"golang.org/x/crypto/bcrypt"
)

var emailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

const passwordSpecials = "!@#$%^&*"

// checkPasswordPolicy enforces the registration password rules: at least 8
// characters with a digit, a lowercase letter, an uppercase letter and one
// of !@#$%^&*.
func checkPasswordPolicy(password string) bool {
	if len(password) < 8 {
		return false
	}
	var digit, lower, upper, special bool
	for _, r := range password {
		switch {
		case unicode.IsDigit(r):
			digit = true
		case unicode.IsLower(r):
			lower = true
		case unicode.IsUpper(r):
			upper = true
		case strings.ContainsRune(passwordSpecials, r):
			special = true
		}
	}
	return digit && lower && upper && special
}

// register validates the input, checks for an existing account with the same
// name or email, and stores the new account with a bcrypt password hash.
// It does not log the new account in.
func (app *App) register(name, email, password, confirm string) error {
	if name == "" || email == "" || password == "" || confirm == "" {
		return &ValidationError{"Please fill in all fields"}
	}
	if password != confirm {
		return &ValidationError{"The passwords do not match"}
	}
	if !checkPasswordPolicy(password) {
		return &ValidationError{"Password must be at least 8 characters and contain a digit, a lowercase letter, an uppercase letter and a special character"}
	}
	if !emailPattern.MatchString(email) {
		return &ValidationError{"Invalid email address"}
	}

	exists, err := accountExists(app.db, name, email)
	if err != nil {
		return err
	}
	if exists {
		return &ConflictError{"Name or email already exists"}
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("hashing password: %w", err)
	}

	if _, err := app.db.Exec("INSERT INTO account (name, email, pw_hash) VALUES (?, ?, ?)",
		name, email, string(hash)); err != nil {
		return fmt.Errorf("inserting account: %w", err)
	}
	return nil
}

// login verifies the credentials and returns the matching account. It returns
// ErrNoAccount for an unknown name and ErrBadCredentials for a wrong password
// so the login view can tell the two apart.
func (app *App) login(name, password string) (*Account, error) {
	acct, err := getAccountByName(app.db, name)
	if err != nil {
		return nil, err
	}
	if bcrypt.CompareHashAndPassword([]byte(acct.PwHash), []byte(password)) != nil {
		return nil, ErrBadCredentials
	}
	return acct, nil
}

// updateProfile changes the name and email of the given account. The account
// id comes from the session, never from client input.
func (app *App) updateProfile(accountID int, name, email string) error {
	if !emailPattern.MatchString(email) {
		return &ValidationError{"Invalid email address"}
	}
	if _, err := app.db.Exec("UPDATE account SET name = ?, email = ? WHERE account_id = ?",
		name, email, accountID); err != nil {
		return fmt.Errorf("updating profile: %w", err)
	}
	return nil
}
