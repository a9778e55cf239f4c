package database

import (
	"context"
	"database/sql"

	sq "github.com/Masterminds/squirrel"
	"github.com/pkg/errors"
	"github.com/rs/zerolog"
	"github.com/varoOP/seasondb/internal/domain"
)

var animeColumns = []string{
	"id", "title", "type", "image_url", "producers", "genres",
	"date_start", "date_end", "synopsis", "last_modified",
}

// AnimeRepo implements domain.AnimeRepository on sqlite
type AnimeRepo struct {
	log zerolog.Logger
	db  *DB
}

var _ domain.AnimeRepository = (*AnimeRepo)(nil)

// NewAnimeRepo creates a new anime repository
func NewAnimeRepo(log zerolog.Logger, db *DB) *AnimeRepo {
	return &AnimeRepo{
		log: log.With().Str("repo", "anime").Logger(),
		db:  db,
	}
}

type queryer interface {
	QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
}

// FindItem returns the anime with the given id or domain.ErrNotFound
func (r *AnimeRepo) FindItem(ctx context.Context, id int) (*domain.Anime, error) {
	return r.findItem(ctx, r.db.handler, id)
}

func (r *AnimeRepo) findItem(ctx context.Context, q queryer, id int) (*domain.Anime, error) {
	queryBuilder := r.db.squirrel.
		Select(animeColumns...).
		From("anime").
		Where(sq.Eq{"id": id})

	query, args, err := queryBuilder.ToSql()
	if err != nil {
		return nil, errors.Wrap(err, "error building query")
	}

	r.log.Trace().Str("query", query).Interface("args", args).Msg("FindItem")

	item, err := scanAnime(q.QueryRowContext(ctx, query, args...))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, errors.Wrapf(domain.ErrNotFound, "id %d", id)
		}
		return nil, errors.Wrap(err, "error executing query")
	}

	return item, nil
}

// UpdateItem inserts the anime or merges it into the stored record
func (r *AnimeRepo) UpdateItem(ctx context.Context, item *domain.Anime) error {
	return r.updateItem(ctx, r.db.handler, item)
}

func (r *AnimeRepo) updateItem(ctx context.Context, q queryer, item *domain.Anime) error {
	if item == nil || item.ID <= 0 {
		return errors.New("anime item must have a positive id")
	}

	merged := item.Clone()
	existing, err := r.findItem(ctx, q, item.ID)
	switch {
	case err == nil:
		existing.Update(item)
		merged = existing
	case !errors.Is(err, domain.ErrNotFound):
		return err
	}

	queryBuilder := r.db.squirrel.
		Replace("anime").
		Columns(animeColumns...).
		Values(
			merged.ID,
			merged.Title,
			int(merged.Type),
			merged.ImageURL,
			domain.JoinList(merged.Producers),
			domain.JoinList(merged.Genres),
			merged.DateStart.String(),
			merged.DateEnd.String(),
			merged.Synopsis,
			merged.LastModified,
		)

	query, args, err := queryBuilder.ToSql()
	if err != nil {
		return errors.Wrap(err, "error building query")
	}

	r.log.Trace().Str("query", query).Interface("args", args).Msg("UpdateItem")

	if _, err := q.ExecContext(ctx, query, args...); err != nil {
		return errors.Wrap(err, "error executing query")
	}

	return nil
}

// Items returns all anime ordered by id
func (r *AnimeRepo) Items(ctx context.Context) ([]*domain.Anime, error) {
	queryBuilder := r.db.squirrel.
		Select(animeColumns...).
		From("anime").
		OrderBy("id ASC")

	query, args, err := queryBuilder.ToSql()
	if err != nil {
		return nil, errors.Wrap(err, "error building query")
	}

	r.log.Trace().Str("query", query).Interface("args", args).Msg("Items")

	rows, err := r.db.handler.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, errors.Wrap(err, "error executing query")
	}
	defer rows.Close()

	var items []*domain.Anime
	for rows.Next() {
		item, err := scanAnime(rows)
		if err != nil {
			return nil, errors.Wrap(err, "error scanning row")
		}
		items = append(items, item)
	}

	if err := rows.Err(); err != nil {
		return nil, errors.Wrap(err, "error iterating rows")
	}

	return items, nil
}

// ImportItems upserts all items in a single transaction
func (r *AnimeRepo) ImportItems(ctx context.Context, items []*domain.Anime) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	for _, item := range items {
		if err := r.updateItem(ctx, tx, item); err != nil {
			return errors.Wrapf(err, "failed to import anime %d", item.ID)
		}
	}

	if err := tx.Commit(); err != nil {
		return errors.Wrap(err, "failed to commit import")
	}

	r.log.Debug().Int("count", len(items)).Msg("imported anime")
	return nil
}

type scanner interface {
	Scan(dest ...any) error
}

func scanAnime(s scanner) (*domain.Anime, error) {
	var (
		item               domain.Anime
		typ                int
		producers, genres  string
		dateStart, dateEnd string
	)

	if err := s.Scan(
		&item.ID,
		&item.Title,
		&typ,
		&item.ImageURL,
		&producers,
		&genres,
		&dateStart,
		&dateEnd,
		&item.Synopsis,
		&item.LastModified,
	); err != nil {
		return nil, err
	}

	item.Type = domain.SeriesType(typ)
	item.Producers = domain.SplitList(producers)
	item.Genres = domain.SplitList(genres)
	item.DateStart = domain.ParseDate(dateStart)
	item.DateEnd = domain.ParseDate(dateEnd)

	return &item, nil
}
