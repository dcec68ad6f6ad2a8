package messages

import (
	"context"
	"database/sql"
)

type infra struct {
	db *sql.DB
}

func NewInfra(db *sql.DB) Repo {
	return &infra{db: db}
}

// EnsureSchema предполагает, что authorized_users уже создана:
// users_messages ссылается на неё по user_id.
func (i *infra) EnsureSchema(ctx context.Context) error {
	_, err := i.db.ExecContext(ctx, `
		CREATE TABLE IF NOT EXISTS users_messages (
			id SERIAL PRIMARY KEY,
			time TIMESTAMP DEFAULT NOW(),
			user_id INTEGER REFERENCES authorized_users (user_id) ON DELETE CASCADE,
			request TEXT NOT NULL,
			response TEXT NOT NULL
		)
	`)
	return err
}

func (i *infra) Insert(ctx context.Context, userID int64, request, response string) error {
	_, err := i.db.ExecContext(ctx, `
		INSERT INTO users_messages (user_id, request, response)
		VALUES ($1, $2, $3)
	`, userID, request, response)
	return err
}

func (i *infra) ListByUser(ctx context.Context, userID int64) ([]*Entry, error) {
	rows, err := i.db.QueryContext(ctx, `
		SELECT id, time, user_id, request, response
		FROM users_messages
		WHERE user_id = $1
		ORDER BY id
	`, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []*Entry

	for rows.Next() {
		var e Entry
		if err := rows.Scan(
			&e.ID,
			&e.Time,
			&e.UserID,
			&e.Request,
			&e.Response,
		); err != nil {
			return nil, err
		}
		out = append(out, &e)
	}

	return out, rows.Err()
}
