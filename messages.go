package main

import "fmt"

// listMessages returns the full chat history in insertion order. The author
// name is joined from the account table on every call, so renaming an account
// retroactively changes the attribution of its old messages.
func (app *App) listMessages() ([]ChatMessage, error) {
	rows, err := app.db.Query(`
		SELECT message.message_id, message.text, account.name
		FROM message
		JOIN account ON message.account_id = account.account_id
		ORDER BY message.message_id`)
	if err != nil {
		return nil, fmt.Errorf("querying messages: %w", err)
	}
	defer rows.Close()

	messages := []ChatMessage{}
	for rows.Next() {
		var m ChatMessage
		if err := rows.Scan(&m.ChatID, &m.Message, &m.Name); err != nil {
			return nil, fmt.Errorf("scanning message: %w", err)
		}
		messages = append(messages, m)
	}
	return messages, rows.Err()
}

// postMessage persists a message for the given account and returns the new
// message id so the pushed event can carry it.
func (app *App) postMessage(accountID int, text string) (int, error) {
	res, err := app.db.Exec("INSERT INTO message (account_id, text) VALUES (?, ?)", accountID, text)
	if err != nil {
		return 0, fmt.Errorf("inserting message: %w", err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("reading message id: %w", err)
	}
	return int(id), nil
}

// deleteMessage removes a message by id. Deleting an id that does not exist
// is not an error; no ownership check is performed.
func (app *App) deleteMessage(id string) error {
	if _, err := app.db.Exec("DELETE FROM message WHERE message_id = ?", id); err != nil {
		return fmt.Errorf("deleting message %s: %w", id, err)
	}
	return nil
}
