package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"time"

	"github.com/Sri-dinesh/CogniSketch-Backend/api/internal/calc"
)

var ErrNotFound = sql.ErrNoRows

// CalcRepo caches normalized results so a resubmitted sketch skips the paid
// inference call. Keyed by (image_hash, vars_hash, engine, model): the same
// drawing under a different variable context is a different computation.
type CalcRepo struct{ DB *sql.DB }

func NewCalcRepo(db *sql.DB) *CalcRepo { return &CalcRepo{DB: db} }

// FindByHash returns the freshest cached ResultList for the key, or
// ErrNotFound. maxAge > 0 limits how old a hit may be.
func (r *CalcRepo) FindByHash(ctx context.Context, imageHash, varsHash, engine, model string, maxAge time.Duration) (calc.ResultList, error) {
	const q = `
select created_at, result_json
from calc_results
where image_hash = $1 and vars_hash = $2 and engine = $3 and model = $4
order by created_at desc
limit 1`
	row := r.DB.QueryRowContext(ctx, q, imageHash, varsHash, engine, model)

	var (
		ts time.Time
		js []byte
	)
	if err := row.Scan(&ts, &js); err != nil {
		return nil, err
	}
	if maxAge > 0 && time.Since(ts) > maxAge {
		return nil, ErrNotFound
	}
	var rl calc.ResultList
	if err := json.Unmarshal(js, &rl); err != nil {
		// broken JSON in the cache counts as a miss
		return nil, ErrNotFound
	}
	return rl, nil
}

// Upsert stores (or refreshes) the normalized results for the key.
func (r *CalcRepo) Upsert(ctx context.Context, imageHash, varsHash, engine, model string, results calc.ResultList) error {
	js, err := json.Marshal(results)
	if err != nil {
		return err
	}
	const q = `
insert into calc_results (image_hash, vars_hash, engine, model, result_json, created_at)
values ($1,$2,$3,$4,$5, now())
on conflict (image_hash, vars_hash, engine, model) do update
set result_json = excluded.result_json,
    created_at = excluded.created_at`
	_, err = r.DB.ExecContext(ctx, q, imageHash, varsHash, engine, model, js)
	return err
}
