package repository

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/lib/pq"

	"filmforge-backend/internal/domains/movie/model"
	"filmforge-backend/internal/infrastructure/database"
)

type postgresMovieRepository struct {
	pool *pgxpool.Pool
}

func NewPostgresMovieRepository(pool *pgxpool.Pool) MovieRepository {
	return &postgresMovieRepository{pool: pool}
}

const movieColumns = `m.id, m.title, m.budget, m.start_date, m.release_date, m.genre_id, m.director_id, m.created_at, m.updated_at`

func scanMovie(row pgx.Row) (*model.Movie, error) {
	m := &model.Movie{}
	var budget int64
	err := row.Scan(&m.ID, &m.Title, &budget, &m.StartDate, &m.ReleaseDate,
		&m.GenreID, &m.DirectorID, &m.CreatedAt, &m.UpdatedAt)
	if err != nil {
		return nil, err
	}
	m.Budget = uint64(budget)
	m.Roster = []model.RosterEntry{}
	return m, nil
}

func (r *postgresMovieRepository) Create(ctx context.Context, m *model.Movie) error {
	query := `
		INSERT INTO movies (id, title, budget, start_date, release_date, genre_id, director_id, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
	`
	_, err := database.Conn(ctx, r.pool).Exec(ctx, query,
		m.ID, m.Title, int64(m.Budget), m.StartDate, m.ReleaseDate,
		m.GenreID, m.DirectorID, m.CreatedAt, m.UpdatedAt)
	return database.MapError(err, "failed to create movie", nil, nil)
}

func (r *postgresMovieRepository) GetByID(ctx context.Context, id uuid.UUID) (*model.Movie, error) {
	q := database.Conn(ctx, r.pool)

	m, err := scanMovie(q.QueryRow(ctx, `SELECT `+movieColumns+` FROM movies m WHERE m.id = $1`, id))
	if err != nil {
		return nil, database.MapError(err, "failed to get movie", model.ErrMovieNotFound, nil)
	}
	if err := r.loadRosters(ctx, q, []*model.Movie{m}); err != nil {
		return nil, err
	}
	return m, nil
}

func (r *postgresMovieRepository) GetByActorID(ctx context.Context, actorID uuid.UUID) (*model.Movie, error) {
	q := database.Conn(ctx, r.pool)

	query := `
		SELECT ` + movieColumns + `
		FROM movies m
		JOIN movie_actors ma ON ma.movie_id = m.id
		WHERE ma.actor_id = $1
		ORDER BY m.start_date DESC, m.id
		LIMIT 1
	`
	m, err := scanMovie(q.QueryRow(ctx, query, actorID))
	if err != nil {
		return nil, database.MapError(err, "failed to get movie of actor", model.ErrMovieNotFound, nil)
	}
	if err := r.loadRosters(ctx, q, []*model.Movie{m}); err != nil {
		return nil, err
	}
	return m, nil
}

func (r *postgresMovieRepository) List(ctx context.Context, filter model.ListFilter, offset, limit int) ([]*model.Movie, int, error) {
	q := database.Conn(ctx, r.pool)

	var (
		conditions []string
		args       []interface{}
	)
	if filter.DirectorID != nil {
		args = append(args, *filter.DirectorID)
		conditions = append(conditions, fmt.Sprintf("m.director_id = $%d", len(args)))
	}
	if filter.GenreID != nil {
		args = append(args, *filter.GenreID)
		conditions = append(conditions, fmt.Sprintf("m.genre_id = $%d", len(args)))
	}
	where := ""
	if len(conditions) > 0 {
		where = " WHERE " + strings.Join(conditions, " AND ")
	}

	var total int
	if err := q.QueryRow(ctx, `SELECT COUNT(*) FROM movies m`+where, args...).Scan(&total); err != nil {
		return nil, 0, database.MapError(err, "failed to count movies", nil, nil)
	}

	query := fmt.Sprintf(`SELECT %s FROM movies m%s ORDER BY m.start_date DESC, m.id LIMIT $%d OFFSET $%d`,
		movieColumns, where, len(args)+1, len(args)+2)
	rows, err := q.Query(ctx, query, append(args, limit, offset)...)
	if err != nil {
		return nil, 0, database.MapError(err, "failed to list movies", nil, nil)
	}
	defer rows.Close()

	movies := make([]*model.Movie, 0, limit)
	for rows.Next() {
		m, err := scanMovie(rows)
		if err != nil {
			return nil, 0, database.MapError(err, "failed to scan movie", nil, nil)
		}
		movies = append(movies, m)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, database.MapError(err, "failed to iterate movies", nil, nil)
	}
	rows.Close()

	if err := r.loadRosters(ctx, q, movies); err != nil {
		return nil, 0, err
	}
	return movies, total, nil
}

// loadRosters fills the roster of every movie with a single query.
func (r *postgresMovieRepository) loadRosters(ctx context.Context, q database.Querier, movies []*model.Movie) error {
	if len(movies) == 0 {
		return nil
	}

	ids := make([]string, len(movies))
	byID := make(map[uuid.UUID]*model.Movie, len(movies))
	for i, m := range movies {
		ids[i] = m.ID.String()
		byID[m.ID] = m
	}

	query := `
		SELECT ma.movie_id, a.id, a.name, a.fee
		FROM movie_actors ma
		JOIN actors a ON a.id = ma.actor_id
		WHERE ma.movie_id = ANY($1::uuid[])
		ORDER BY ma.created_at, a.name
	`
	rows, err := q.Query(ctx, query, pq.Array(ids))
	if err != nil {
		return database.MapError(err, "failed to load rosters", nil, nil)
	}
	defer rows.Close()

	for rows.Next() {
		var (
			movieID uuid.UUID
			entry   model.RosterEntry
			fee     int64
		)
		if err := rows.Scan(&movieID, &entry.ActorID, &entry.Name, &fee); err != nil {
			return database.MapError(err, "failed to scan roster", nil, nil)
		}
		entry.Fee = uint64(fee)
		if m, ok := byID[movieID]; ok {
			m.Roster = append(m.Roster, entry)
		}
	}
	if err := rows.Err(); err != nil {
		return database.MapError(err, "failed to iterate rosters", nil, nil)
	}
	return nil
}

func (r *postgresMovieRepository) Update(ctx context.Context, m *model.Movie) error {
	query := `
		UPDATE movies
		SET title = $2, budget = $3, start_date = $4, release_date = $5,
		    genre_id = $6, director_id = $7, updated_at = $8
		WHERE id = $1
	`
	tag, err := database.Conn(ctx, r.pool).Exec(ctx, query,
		m.ID, m.Title, int64(m.Budget), m.StartDate, m.ReleaseDate,
		m.GenreID, m.DirectorID, m.UpdatedAt)
	if err != nil {
		return database.MapError(err, "failed to update movie", nil, nil)
	}
	if tag.RowsAffected() == 0 {
		return model.ErrMovieNotFound
	}
	return nil
}

func (r *postgresMovieRepository) Delete(ctx context.Context, id uuid.UUID) error {
	tag, err := database.Conn(ctx, r.pool).Exec(ctx, `DELETE FROM movies WHERE id = $1`, id)
	if err != nil {
		return database.MapError(err, "failed to delete movie", nil, nil)
	}
	if tag.RowsAffected() == 0 {
		return model.ErrMovieNotFound
	}
	return nil
}

func (r *postgresMovieRepository) ReplaceRoster(ctx context.Context, movieID uuid.UUID, actorIDs []uuid.UUID) error {
	q := database.Conn(ctx, r.pool)

	if _, err := q.Exec(ctx, `DELETE FROM movie_actors WHERE movie_id = $1`, movieID); err != nil {
		return database.MapError(err, "failed to clear roster", nil, nil)
	}
	for _, actorID := range actorIDs {
		if err := r.AddActor(ctx, movieID, actorID); err != nil {
			return err
		}
	}
	return nil
}

func (r *postgresMovieRepository) AddActor(ctx context.Context, movieID, actorID uuid.UUID) error {
	query := `
		INSERT INTO movie_actors (movie_id, actor_id)
		VALUES ($1, $2)
		ON CONFLICT (movie_id, actor_id) DO NOTHING
	`
	_, err := database.Conn(ctx, r.pool).Exec(ctx, query, movieID, actorID)
	return database.MapError(err, "failed to add actor to roster", nil, nil)
}

func (r *postgresMovieRepository) RemoveActor(ctx context.Context, movieID, actorID uuid.UUID) error {
	_, err := database.Conn(ctx, r.pool).Exec(ctx,
		`DELETE FROM movie_actors WHERE movie_id = $1 AND actor_id = $2`, movieID, actorID)
	return database.MapError(err, "failed to remove actor from roster", nil, nil)
}
