package repository

import (
	"context"
	"errors"
	"fmt"

	"lotofacil/database"
	"lotofacil/domain/entities"

	"github.com/jackc/pgx/v5"
)

const drawResultColumns = `contest_id, draw_date, numbers, created_at, updated_at`

// DrawResultRepository implements draw result data access
type DrawResultRepository struct {
	q Queryable
}

// NewDrawResultRepository creates a new draw result repository
func NewDrawResultRepository(db *database.DB) *DrawResultRepository {
	return &DrawResultRepository{q: db.Pool}
}

// NewDrawResultRepositoryScoped creates a draw result repository bound to a transaction
func NewDrawResultRepositoryScoped(tx Queryable) *DrawResultRepository {
	return &DrawResultRepository{q: tx}
}

const upsertDrawResultQuery = `
	INSERT INTO draw_results (contest_id, draw_date, numbers)
	VALUES ($1, $2, $3)
	ON CONFLICT (contest_id) DO UPDATE
	SET draw_date = EXCLUDED.draw_date,
		numbers = EXCLUDED.numbers,
		updated_at = NOW()
	RETURNING created_at, updated_at
`

// Upsert inserts a draw result or replaces the stored one with the same contest id
func (r *DrawResultRepository) Upsert(ctx context.Context, draw *entities.DrawResult) error {
	err := r.q.QueryRow(ctx, upsertDrawResultQuery, draw.ContestID, draw.Date, toInt32s(draw.Numbers)).
		Scan(&draw.CreatedAt, &draw.UpdatedAt)
	if err != nil {
		return fmt.Errorf("failed to upsert draw result %d: %w", draw.ContestID, err)
	}
	return nil
}

// UpsertBatch upserts draws in a single round trip and returns how many rows were written
func (r *DrawResultRepository) UpsertBatch(ctx context.Context, draws []*entities.DrawResult) (int, error) {
	if len(draws) == 0 {
		return 0, nil
	}

	batch := &pgx.Batch{}
	for _, draw := range draws {
		batch.Queue(upsertDrawResultQuery, draw.ContestID, draw.Date, toInt32s(draw.Numbers))
	}

	results := r.q.SendBatch(ctx, batch)
	defer results.Close()

	stored := 0
	for _, draw := range draws {
		if err := results.QueryRow().Scan(&draw.CreatedAt, &draw.UpdatedAt); err != nil {
			return stored, fmt.Errorf("failed to upsert draw result %d: %w", draw.ContestID, err)
		}
		stored++
	}

	return stored, nil
}

// GetByContestID retrieves a draw result, returning nil when the contest is not stored
func (r *DrawResultRepository) GetByContestID(ctx context.Context, contestID int) (*entities.DrawResult, error) {
	query := `SELECT ` + drawResultColumns + ` FROM draw_results WHERE contest_id = $1`

	draw, err := scanDrawResult(r.q.QueryRow(ctx, query, contestID))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get draw result %d: %w", contestID, err)
	}
	return draw, nil
}

// GetLatest retrieves the draw with the highest contest id
func (r *DrawResultRepository) GetLatest(ctx context.Context) (*entities.DrawResult, error) {
	query := `SELECT ` + drawResultColumns + ` FROM draw_results ORDER BY contest_id DESC LIMIT 1`

	draw, err := scanDrawResult(r.q.QueryRow(ctx, query))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get latest draw result: %w", err)
	}
	return draw, nil
}

// GetRecent returns up to limit draws newest first. limit <= 0 returns everything.
func (r *DrawResultRepository) GetRecent(ctx context.Context, limit int) ([]*entities.DrawResult, error) {
	query := `SELECT ` + drawResultColumns + ` FROM draw_results ORDER BY contest_id DESC`
	args := []any{}
	if limit > 0 {
		query += ` LIMIT $1`
		args = append(args, limit)
	}

	rows, err := r.q.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to get recent draw results: %w", err)
	}
	return collectDrawResults(rows)
}

// GetUpTo returns up to limit draws with contest id <= contestID, newest first
func (r *DrawResultRepository) GetUpTo(ctx context.Context, contestID int, limit int) ([]*entities.DrawResult, error) {
	query := `SELECT ` + drawResultColumns + ` FROM draw_results WHERE contest_id <= $1 ORDER BY contest_id DESC`
	args := []any{contestID}
	if limit > 0 {
		query += ` LIMIT $2`
		args = append(args, limit)
	}

	rows, err := r.q.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to get draw results up to %d: %w", contestID, err)
	}
	return collectDrawResults(rows)
}

// GetMissingContestIDs returns the ids in [from, to] without a stored result, ascending
func (r *DrawResultRepository) GetMissingContestIDs(ctx context.Context, from, to int) ([]int, error) {
	if from > to {
		return nil, nil
	}

	query := `
		SELECT s.id
		FROM generate_series($1::int, $2::int) AS s(id)
		LEFT JOIN draw_results d ON d.contest_id = s.id
		WHERE d.contest_id IS NULL
		ORDER BY s.id
	`

	rows, err := r.q.Query(ctx, query, from, to)
	if err != nil {
		return nil, fmt.Errorf("failed to find missing contests in %d..%d: %w", from, to, err)
	}
	defer rows.Close()

	var missing []int
	for rows.Next() {
		var id int32
		if err := rows.Scan(&id); err != nil {
			return nil, fmt.Errorf("failed to scan missing contest id: %w", err)
		}
		missing = append(missing, int(id))
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate missing contest ids: %w", err)
	}

	return missing, nil
}

// Count returns the number of stored draw results
func (r *DrawResultRepository) Count(ctx context.Context) (int64, error) {
	var count int64
	if err := r.q.QueryRow(ctx, `SELECT COUNT(*) FROM draw_results`).Scan(&count); err != nil {
		return 0, fmt.Errorf("failed to count draw results: %w", err)
	}
	return count, nil
}

// Delete removes a draw result
func (r *DrawResultRepository) Delete(ctx context.Context, contestID int) error {
	tag, err := r.q.Exec(ctx, `DELETE FROM draw_results WHERE contest_id = $1`, contestID)
	if err != nil {
		return fmt.Errorf("failed to delete draw result %d: %w", contestID, err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("%w: contest %d", entities.ErrDrawNotFound, contestID)
	}
	return nil
}

func scanDrawResult(row pgx.Row) (*entities.DrawResult, error) {
	var draw entities.DrawResult
	var numbers []int32
	if err := row.Scan(&draw.ContestID, &draw.Date, &numbers, &draw.CreatedAt, &draw.UpdatedAt); err != nil {
		return nil, err
	}
	draw.Numbers = entities.NewNumberSet(fromInt32s(numbers)...)
	return &draw, nil
}

func collectDrawResults(rows pgx.Rows) ([]*entities.DrawResult, error) {
	defer rows.Close()

	var draws []*entities.DrawResult
	for rows.Next() {
		draw, err := scanDrawResult(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan draw result: %w", err)
		}
		draws = append(draws, draw)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate draw results: %w", err)
	}

	return draws, nil
}
