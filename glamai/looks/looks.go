package looks

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

var (
	ErrLookNotFound  = errors.New("look not found")
	ErrDuplicateLook = errors.New("look already saved")
)

type Repository struct {
	db *pgxpool.Pool
}

func NewRepository(db *pgxpool.Pool) *Repository {
	return &Repository{db: db}
}

// returns the content digest used for duplicate detection; saving the exact
// same before/after/style/color combination twice is rejected
func Digest(req CreateLookRequest) string {
	h := sha256.New()
	h.Write([]byte(req.Before))
	h.Write([]byte{0})
	h.Write([]byte(req.After))
	h.Write([]byte{0})
	h.Write([]byte(req.Style))
	h.Write([]byte{0})
	h.Write([]byte(req.Color))

	return hex.EncodeToString(h.Sum(nil))
}

func (r *Repository) Create(ctx context.Context, userID string, req CreateLookRequest) (*Look, error) {
	var look Look

	err := r.db.QueryRow(
		ctx,
		queryCreate,
		userID,
		req.Before,
		req.After,
		req.Style,
		req.Color,
		Digest(req),
	).Scan(
		&look.ID,
		&look.UserID,
		&look.Before,
		&look.After,
		&look.Style,
		&look.Color,
		&look.Digest,
		&look.CreatedAt,
	)

	if err != nil {
		// unique violation on (user_id, digest)
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return nil, ErrDuplicateLook
		}

		return nil, err
	}

	return &look, nil
}

func (r *Repository) List(ctx context.Context, userID string, limit, offset int) ([]Look, int, error) {
	// get total count first
	var total int
	if err := r.db.QueryRow(ctx, queryCountByUser, userID).Scan(&total); err != nil {
		return nil, 0, err
	}

	rows, err := r.db.Query(ctx, queryList, userID, limit, offset)
	if err != nil {
		return nil, 0, err
	}

	defer rows.Close()
	var result []Look

	for rows.Next() {
		var l Look
		err := rows.Scan(
			&l.ID,
			&l.UserID,
			&l.Before,
			&l.After,
			&l.Style,
			&l.Color,
			&l.Digest,
			&l.CreatedAt,
		)
		if err != nil {
			return nil, 0, err
		}

		result = append(result, l)
	}

	if err := rows.Err(); err != nil {
		return nil, 0, err
	}

	return result, total, nil
}

func (r *Repository) Get(ctx context.Context, lookID, userID string) (*Look, error) {
	var look Look

	err := r.db.QueryRow(ctx, queryGet, lookID, userID).Scan(
		&look.ID,
		&look.UserID,
		&look.Before,
		&look.After,
		&look.Style,
		&look.Color,
		&look.Digest,
		&look.CreatedAt,
	)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrLookNotFound
		}

		return nil, err
	}

	return &look, nil
}

func (r *Repository) Delete(ctx context.Context, lookID, userID string) error {
	result, err := r.db.Exec(ctx, queryDelete, lookID, userID)
	if err != nil {
		return err
	}

	if result.RowsAffected() == 0 {
		return ErrLookNotFound
	}

	return nil
}
