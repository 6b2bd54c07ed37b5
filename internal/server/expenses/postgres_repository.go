package expenses

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"spenttribe/internal/common"
)

type PostgresRepository struct {
	db *sql.DB
}

func NewPostgresRepository(db *sql.DB) (*PostgresRepository, error) {
	return &PostgresRepository{db: db}, nil
}

func (r *PostgresRepository) Create(ctx context.Context, e *Expense) (*Expense, error) {

	query :=
		`INSERT INTO expenses (user_id, amount, description, category, date)
		 VALUES ($1, $2, $3, $4, $5)
		 RETURNING id
		 `

	err := r.db.QueryRowContext(ctx, query,
		e.UserID, e.Amount, e.Description, e.Category, e.Date).Scan(&e.ID)

	if err != nil {
		return nil, fmt.Errorf("error performing sql request: %w", err)
	}

	return e, nil
}

func (r *PostgresRepository) List(ctx context.Context, rng *MonthRange) ([]Expense, error) {

	query :=
		`SELECT e.id, e.user_id, e.amount, e.description, e.category, e.date, COALESCE(u.username, '')
		 FROM expenses e
		 LEFT JOIN users u ON u.id = e.user_id
		 `
	args := []any{}

	if rng != nil {
		query += ` WHERE e.date >= $1 AND e.date < $2`
		args = append(args, rng.Start, rng.End)
	}

	query += ` ORDER BY e.date DESC`

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("error performing sql request: %w", err)
	}
	defer rows.Close()

	list := []Expense{}
	for rows.Next() {
		var e Expense
		if err := rows.Scan(&e.ID, &e.UserID, &e.Amount, &e.Description, &e.Category, &e.Date, &e.Username); err != nil {
			return nil, fmt.Errorf("error scanning row: %w", err)
		}
		list = append(list, e)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating rows: %w", err)
	}

	return list, nil
}

func (r *PostgresRepository) GetByID(ctx context.Context, id string) (*Expense, error) {

	query :=
		`SELECT id, user_id, amount, description, category, date, COALESCE(receipt_key, '')
		 FROM expenses
		 WHERE id = $1
		 `

	e := &Expense{}
	err := r.db.QueryRowContext(ctx, query, id).
		Scan(&e.ID, &e.UserID, &e.Amount, &e.Description, &e.Category, &e.Date, &e.ReceiptKey)

	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, common.ErrorNotFound
		}
		return nil, fmt.Errorf("error performing sql request: %w", err)
	}

	return e, nil
}

func (r *PostgresRepository) Delete(ctx context.Context, id, userID string) error {

	query := `DELETE FROM expenses WHERE id = $1 AND user_id = $2`

	res, err := r.db.ExecContext(ctx, query, id, userID)
	if err != nil {
		return fmt.Errorf("error performing sql request: %w", err)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("error reading affected rows: %w", err)
	}
	if affected == 0 {
		return common.ErrorNotFound
	}

	return nil
}

func (r *PostgresRepository) SetReceiptKey(ctx context.Context, id, userID, key string) error {

	query := `UPDATE expenses SET receipt_key = $3 WHERE id = $1 AND user_id = $2`

	res, err := r.db.ExecContext(ctx, query, id, userID, key)
	if err != nil {
		return fmt.Errorf("error performing sql request: %w", err)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("error reading affected rows: %w", err)
	}
	if affected == 0 {
		return common.ErrorNotFound
	}

	return nil
}
