package db

import (
	"fmt"

	"github.com/tgienger/todocmd/internal/models"
)

// Sync replaces the indexed rows of list with the entries of c
func (db *DB) Sync(list string, c models.Collection) error {
	tx, err := db.Begin()
	if err != nil {
		return err
	}
	defer tx.Rollback()

	if _, err := tx.Exec("DELETE FROM entries WHERE list = ?", list); err != nil {
		return err
	}

	insertEntry, err := tx.Prepare("INSERT INTO entries (list, position, raw) VALUES (?, ?, ?)")
	if err != nil {
		return err
	}
	defer insertEntry.Close()

	insertElement, err := tx.Prepare("INSERT INTO elements (entry_id, position, kind, value) VALUES (?, ?, ?, ?)")
	if err != nil {
		return err
	}
	defer insertElement.Close()

	for i, e := range c.Entries {
		result, err := insertEntry.Exec(list, i+1, e.String())
		if err != nil {
			return fmt.Errorf("index %s entry %d: %w", list, i+1, err)
		}
		id, err := result.LastInsertId()
		if err != nil {
			return err
		}
		for j, el := range e.Elements {
			if _, err := insertElement.Exec(id, j, el.Kind().String(), models.Value(el)); err != nil {
				return fmt.Errorf("index %s entry %d: %w", list, i+1, err)
			}
		}
	}

	return tx.Commit()
}

// EntriesTagged returns indexed entries holding an element of the given
// kind and value, ordered by list then position
func (db *DB) EntriesTagged(kind models.Kind, value string) ([]models.IndexedEntry, error) {
	rows, err := db.Query(`
		SELECT DISTINCT e.id, e.list, e.position, e.raw
		FROM entries e
		JOIN elements el ON el.entry_id = e.id
		WHERE el.kind = ? AND el.value = ?
		ORDER BY e.list DESC, e.position
	`, kind.String(), value)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var entries []models.IndexedEntry
	for rows.Next() {
		var e models.IndexedEntry
		if err := rows.Scan(&e.ID, &e.List, &e.Position, &e.Raw); err != nil {
			return nil, err
		}
		entries = append(entries, e)
	}
	return entries, rows.Err()
}

// EntryCount returns the number of indexed entries of list
func (db *DB) EntryCount(list string) (int, error) {
	var count int
	err := db.QueryRow("SELECT COUNT(*) FROM entries WHERE list = ?", list).Scan(&count)
	return count, err
}
