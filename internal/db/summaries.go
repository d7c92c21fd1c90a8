package db

import (
	"github.com/tgienger/todocmd/internal/models"
)

// ListProjects returns one summary per project, busiest first
func (db *DB) ListProjects() ([]models.Summary, error) {
	return db.summaries(models.KindProject)
}

// ListContexts returns one summary per context, busiest first
func (db *DB) ListContexts() ([]models.Summary, error) {
	return db.summaries(models.KindContext)
}

func (db *DB) summaries(kind models.Kind) ([]models.Summary, error) {
	rows, err := db.Query(`
		SELECT el.value,
			COUNT(DISTINCT CASE WHEN e.list = ? THEN e.id END) AS open_count,
			COUNT(DISTINCT CASE WHEN e.list = ? THEN e.id END) AS done_count
		FROM elements el
		JOIN entries e ON e.id = el.entry_id
		WHERE el.kind = ?
		GROUP BY el.value
		ORDER BY open_count DESC, el.value
	`, ListTodo, ListDone, kind.String())
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var summaries []models.Summary
	for rows.Next() {
		s := models.Summary{Kind: kind}
		if err := rows.Scan(&s.Name, &s.Open, &s.Done); err != nil {
			return nil, err
		}
		summaries = append(summaries, s)
	}
	return summaries, rows.Err()
}
