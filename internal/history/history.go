package history

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	_ "modernc.org/sqlite"
)

var ErrNotFound = errors.New("game not found")

var schema = []string{`create table if not exists games (
	id text primary key,
	player text not null,
	variant text not null,
	score integer not null,
	level integer not null,
	lines integer not null,
	pieces integer not null,
	frames integer not null,
	seed integer not null,
	finished_at integer not null
)`,
	`create index if not exists games_variant_score on games (variant, score desc)`,
}

// Game is a finished game
type Game struct {
	ID         uuid.UUID
	Player     string
	Variant    string
	Score      int
	Level      int
	Lines      int
	Pieces     int
	Frames     int
	Seed       int64
	FinishedAt time.Time
}

// Store is the sqlite table of finished games
type Store struct {
	db *sql.DB
}

// Open opens or creates the history database at path
func Open(ctx context.Context, path string) (*Store, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("could not open history database: %w", err)
	}
	// sqlite allows a single writer
	db.SetMaxOpenConns(1)

	for _, statement := range schema {
		if _, err := db.ExecContext(ctx, statement); err != nil {
			db.Close()
			return nil, fmt.Errorf("could not create history schema: %w", err)
		}
	}
	return &Store{db: db}, nil
}

// Close closes the database
func (s *Store) Close() error {
	return s.db.Close()
}

// Record inserts game, assigning an ID and a finish time when missing
func (s *Store) Record(ctx context.Context, game Game) (Game, error) {
	if game.ID == uuid.Nil {
		game.ID = uuid.New()
	}
	if game.FinishedAt.IsZero() {
		game.FinishedAt = time.Now()
	}
	_, err := s.db.ExecContext(ctx,
		`insert into games (id, player, variant, score, level, lines, pieces, frames, seed, finished_at)
		values (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		game.ID.String(), game.Player, game.Variant, game.Score, game.Level, game.Lines,
		game.Pieces, game.Frames, game.Seed, game.FinishedAt.UnixMilli())
	if err != nil {
		return Game{}, fmt.Errorf("could not record game: %w", err)
	}
	return game, nil
}

// Get returns the game with id
func (s *Store) Get(ctx context.Context, id uuid.UUID) (Game, error) {
	games, err := s.query(ctx, `select * from games where id = ?`, id.String())
	if err != nil {
		return Game{}, err
	}
	if len(games) == 0 {
		return Game{}, fmt.Errorf("%w: %s", ErrNotFound, id)
	}
	return games[0], nil
}

// Top returns the best scores of variant, or of every variant when empty
func (s *Store) Top(ctx context.Context, variant string, limit int) ([]Game, error) {
	if variant == "" {
		return s.query(ctx, `select * from games order by score desc, finished_at limit ?`, limit)
	}
	return s.query(ctx, `select * from games where variant = ? order by score desc, finished_at limit ?`, variant, limit)
}

// Recent returns the last finished games, newest first
func (s *Store) Recent(ctx context.Context, limit int) ([]Game, error) {
	return s.query(ctx, `select * from games order by finished_at desc limit ?`, limit)
}

func (s *Store) query(ctx context.Context, query string, args ...any) ([]Game, error) {
	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("could not query games: %w", err)
	}
	defer rows.Close()

	games := []Game{}
	for rows.Next() {
		var game Game
		var id string
		var finishedAt int64
		err := rows.Scan(&id, &game.Player, &game.Variant, &game.Score, &game.Level, &game.Lines,
			&game.Pieces, &game.Frames, &game.Seed, &finishedAt)
		if err != nil {
			return nil, fmt.Errorf("could not read game: %w", err)
		}
		if game.ID, err = uuid.Parse(id); err != nil {
			return nil, fmt.Errorf("bad game id %q: %w", id, err)
		}
		game.FinishedAt = time.UnixMilli(finishedAt)
		games = append(games, game)
	}
	return games, rows.Err()
}
