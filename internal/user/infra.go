package user

import (
	"context"
	"database/sql"
	"errors"
)

type infra struct {
	db *sql.DB
}

func NewInfra(db *sql.DB) Repo {
	return &infra{db: db}
}

func (i *infra) EnsureSchema(ctx context.Context) error {
	_, err := i.db.ExecContext(ctx, `
		CREATE TABLE IF NOT EXISTS authorized_users (
			user_id INTEGER PRIMARY KEY,
			username VARCHAR(255) UNIQUE,
			first_name VARCHAR(255),
			last_name VARCHAR(255),
			phone_number VARCHAR(20)
		)
	`)
	return err
}

func (i *infra) Add(ctx context.Context, u *AuthorizedUser) (int64, error) {
	var id int64

	err := i.db.QueryRowContext(ctx, `
		INSERT INTO authorized_users (
			user_id,
			username,
			first_name,
			last_name,
			phone_number
		) VALUES ($1, $2, $3, $4, $5)
		RETURNING user_id
	`,
		u.UserID,
		u.Username,
		u.FirstName,
		u.LastName,
		u.PhoneNumber,
	).Scan(&id)

	if err != nil {
		return 0, err
	}

	return id, nil
}

func (i *infra) Exists(ctx context.Context, userID int64) (bool, int64, error) {
	var id int64

	err := i.db.QueryRowContext(ctx, `
		SELECT user_id FROM authorized_users WHERE user_id = $1
	`, userID).Scan(&id)

	if errors.Is(err, sql.ErrNoRows) {
		return false, 0, nil
	}
	if err != nil {
		return false, 0, err
	}

	return true, id, nil
}

func (i *infra) FindByPhone(ctx context.Context, phone string) (bool, int64, string, error) {
	var (
		id    int64
		found string
	)

	err := i.db.QueryRowContext(ctx, `
		SELECT user_id, phone_number FROM authorized_users WHERE phone_number = $1
	`, phone).Scan(&id, &found)

	if errors.Is(err, sql.ErrNoRows) {
		return false, 0, "", nil
	}
	if err != nil {
		return false, 0, "", err
	}

	return true, id, found, nil
}

func (i *infra) ListAll(ctx context.Context) ([]*AuthorizedUser, error) {
	rows, err := i.db.QueryContext(ctx, `
		SELECT username, phone_number FROM authorized_users
	`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []*AuthorizedUser

	for rows.Next() {
		var (
			u     AuthorizedUser
			phone sql.NullString
		)
		if err := rows.Scan(&u.Username, &phone); err != nil {
			return nil, err
		}
		if phone.Valid {
			u.PhoneNumber = &phone.String
		}
		out = append(out, &u)
	}

	return out, rows.Err()
}

func (i *infra) UpdatePhone(ctx context.Context, userID int64, phone string) error {
	_, err := i.db.ExecContext(ctx, `
		UPDATE authorized_users SET phone_number = $1 WHERE user_id = $2
	`, phone, userID)
	return err
}
