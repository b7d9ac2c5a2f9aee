package repos

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"toystore/internal/domain"
)

const toyColumns = `id, toy_name, price, photo_url, available_quantity, ratings, description, category, seller_email`

// ToyRepo keeps toys in a sqlite table. Ids are random UUIDs.
type ToyRepo struct{ db *sqlx.DB }

func NewToyRepo(db *sqlx.DB) *ToyRepo { return &ToyRepo{db: db} }

func (r *ToyRepo) Name() string { return "sqlite" }

func (r *ToyRepo) Ping(ctx context.Context) error { return r.db.PingContext(ctx) }

func parseUUID(id string) (string, error) {
	u, err := uuid.Parse(id)
	if err != nil {
		return "", fmt.Errorf("%w: %q", domain.ErrInvalidID, id)
	}
	return u.String(), nil
}

// orderBy ties on id in the same direction so asc and desc are exact reverses.
func orderBy(d domain.Direction) string {
	switch d {
	case domain.DirAsc:
		return ` ORDER BY price ASC, id ASC`
	case domain.DirDesc:
		return ` ORDER BY price DESC, id DESC`
	}
	return ` ORDER BY rowid`
}

// sqlite treats a negative LIMIT as no limit.
func limitArg(limit *int) int {
	if limit == nil {
		return -1
	}
	return *limit
}

func (r *ToyRepo) List(ctx context.Context, q domain.ListQuery) ([]domain.Toy, error) {
	out := []domain.Toy{}
	err := r.db.SelectContext(ctx, &out,
		`SELECT `+toyColumns+` FROM toys`+orderBy(q.Sort)+` LIMIT ?`, limitArg(q.Limit))
	return out, err
}

func (r *ToyRepo) ListPhotos(ctx context.Context, q domain.ListQuery) ([]domain.PhotoLink, error) {
	out := []domain.PhotoLink{}
	err := r.db.SelectContext(ctx, &out,
		`SELECT photo_url FROM toys`+orderBy(q.Sort)+` LIMIT ?`, limitArg(q.Limit))
	return out, err
}

// Find returns toys matching f. A limit of 0 returns every match.
func (r *ToyRepo) Find(ctx context.Context, f domain.Filter, limit int) ([]domain.Toy, error) {
	where := `1 = 1`
	args := []any{}
	if f.ToyName != nil {
		where += ` AND toy_name = ?`
		args = append(args, *f.ToyName)
	}
	if f.Category != nil {
		where += ` AND category = ?`
		args = append(args, *f.Category)
	}
	if f.SellerEmail != nil {
		where += ` AND seller_email = ?`
		args = append(args, *f.SellerEmail)
	}
	if limit <= 0 {
		limit = -1
	}
	args = append(args, limit)

	out := []domain.Toy{}
	err := r.db.SelectContext(ctx, &out,
		`SELECT `+toyColumns+` FROM toys WHERE `+where+` ORDER BY rowid LIMIT ?`, args...)
	return out, err
}

// Get returns nil without error when no toy has the id.
func (r *ToyRepo) Get(ctx context.Context, id string) (*domain.Toy, error) {
	key, err := parseUUID(id)
	if err != nil {
		return nil, err
	}
	var t domain.Toy
	err = r.db.GetContext(ctx, &t, `SELECT `+toyColumns+` FROM toys WHERE id = ?`, key)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &t, nil
}

func (r *ToyRepo) Insert(ctx context.Context, t domain.Toy) (domain.InsertResult, error) {
	t.ID = uuid.NewString()
	_, err := r.db.NamedExecContext(ctx, `
		INSERT INTO toys(`+toyColumns+`)
		VALUES(:id, :toy_name, :price, :photo_url, :available_quantity, :ratings, :description, :category, :seller_email)
	`, t)
	if err != nil {
		return domain.InsertResult{}, err
	}
	return domain.InsertResult{Acknowledged: true, InsertedID: t.ID}, nil
}

// Update overwrites the mutable fields of the toy with t.ID.
func (r *ToyRepo) Update(ctx context.Context, t domain.Toy) (domain.UpdateResult, error) {
	key, err := parseUUID(t.ID)
	if err != nil {
		return domain.UpdateResult{}, err
	}
	res, err := r.db.ExecContext(ctx, `
		UPDATE toys
		SET toy_name = ?, price = ?, photo_url = ?, available_quantity = ?,
		    ratings = ?, description = ?, category = ?
		WHERE id = ?
	`, t.ToyName, t.Price, t.PhotoURL, t.AvailableQuantity, t.Ratings, t.Description, t.Category, key)
	if err != nil {
		return domain.UpdateResult{}, err
	}
	n, _ := res.RowsAffected()
	return domain.UpdateResult{Acknowledged: true, MatchedCount: n, ModifiedCount: n}, nil
}

func (r *ToyRepo) Delete(ctx context.Context, id string) (domain.DeleteResult, error) {
	key, err := parseUUID(id)
	if err != nil {
		return domain.DeleteResult{}, err
	}
	res, err := r.db.ExecContext(ctx, `DELETE FROM toys WHERE id = ?`, key)
	if err != nil {
		return domain.DeleteResult{}, err
	}
	n, _ := res.RowsAffected()
	return domain.DeleteResult{Acknowledged: true, DeletedCount: n}, nil
}

func (r *ToyRepo) EnsureNameIndex(ctx context.Context) error {
	_, err := r.db.ExecContext(ctx,
		`CREATE INDEX IF NOT EXISTS `+domain.SearchIndexName+` ON toys(toy_name)`)
	return err
}

// SearchByName matches keyword anywhere in toy_name, ignoring ASCII case.
func (r *ToyRepo) SearchByName(ctx context.Context, keyword string) ([]domain.Toy, error) {
	out := []domain.Toy{}
	err := r.db.SelectContext(ctx, &out, `
		SELECT `+toyColumns+` FROM toys
		WHERE ? = '' OR instr(LOWER(toy_name), LOWER(?)) > 0
		ORDER BY rowid
	`, keyword, keyword)
	return out, err
}
