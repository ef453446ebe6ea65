// Package storage provides SQLite-based persistence for the orientation catalog.
// Uses the pure-Go modernc.org/sqlite driver to avoid CGO dependencies.
package storage

import (
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "modernc.org/sqlite" // Pure Go SQLite driver

	"github.com/vovakirdan/blokus/internal/catalog"
	"github.com/vovakirdan/blokus/internal/piece"
)

// ErrCorrupt is returned when a stored orientation does not match the
// shape rebuilt from its cells.
var ErrCorrupt = errors.New("storage: stored orientation is inconsistent")

// Store manages the SQLite database connection for catalog persistence.
type Store struct {
	db *sql.DB
}

// PieceRecord represents a stored piece definition.
type PieceRecord struct {
	ID           string
	Name         string
	Position     int
	Cells        []piece.Point
	Orientations int
	CreatedAt    time.Time
}

// Stats summarizes the stored catalog.
type Stats struct {
	Pieces       int
	Orientations int
	SavedAt      time.Time
}

// Open creates or opens a SQLite database at the given path.
// It creates the parent directories if needed and runs migrations.
func Open(dbPath string) (*Store, error) {
	// Expand ~ to home directory
	if dbPath != "" && dbPath[0] == '~' {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("storage: cannot expand home directory: %w", err)
		}
		dbPath = filepath.Join(home, dbPath[1:])
	}

	// Create parent directories
	dir := filepath.Dir(dbPath)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("storage: cannot create directory %s: %w", dir, err)
	}

	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot open database: %w", err)
	}

	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("storage: cannot connect to database: %w", err)
	}

	store := &Store{db: db}

	if err := store.migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("storage: migration failed: %w", err)
	}

	return store, nil
}

// migrate creates the database schema if it doesn't exist.
func (s *Store) migrate() error {
	schema := `
		CREATE TABLE IF NOT EXISTS pieces (
			id TEXT PRIMARY KEY,
			name TEXT NOT NULL,
			position INTEGER NOT NULL,
			cells TEXT NOT NULL,
			size INTEGER NOT NULL,
			created_at DATETIME DEFAULT CURRENT_TIMESTAMP
		);

		CREATE TABLE IF NOT EXISTS orientations (
			piece_id TEXT NOT NULL REFERENCES pieces(id) ON DELETE CASCADE,
			idx INTEGER NOT NULL,
			width INTEGER NOT NULL,
			height INTEGER NOT NULL,
			points TEXT NOT NULL,
			attach TEXT NOT NULL,
			PRIMARY KEY (piece_id, idx)
		);
		CREATE INDEX IF NOT EXISTS idx_pieces_position ON pieces(position);
	`

	_, err := s.db.Exec(schema)
	return err
}

// Close closes the database connection.
func (s *Store) Close() error {
	if s.db != nil {
		return s.db.Close()
	}
	return nil
}

// SaveCatalog replaces the stored catalog with c.
// Returns the number of orientations written.
func (s *Store) SaveCatalog(c *catalog.Catalog) (int, error) {
	tx, err := s.db.Begin()
	if err != nil {
		return 0, fmt.Errorf("storage: cannot begin transaction: %w", err)
	}
	defer tx.Rollback()

	if _, err := tx.Exec("DELETE FROM orientations"); err != nil {
		return 0, fmt.Errorf("storage: cannot clear orientations: %w", err)
	}
	if _, err := tx.Exec("DELETE FROM pieces"); err != nil {
		return 0, fmt.Errorf("storage: cannot clear pieces: %w", err)
	}

	written := 0
	for pos, e := range c.List() {
		_, err := tx.Exec(
			"INSERT INTO pieces (id, name, position, cells, size) VALUES (?, ?, ?, ?, ?)",
			e.ID, e.Name, pos, encodePoints(e.Base.Points()), e.Base.Size(),
		)
		if err != nil {
			return 0, fmt.Errorf("storage: cannot save piece %s: %w", e.ID, err)
		}

		for idx, o := range e.Orientations {
			_, err := tx.Exec(
				`INSERT INTO orientations (piece_id, idx, width, height, points, attach)
				 VALUES (?, ?, ?, ?, ?, ?)`,
				e.ID, idx, o.Width(), o.Height(), encodePoints(o.Points()), encodePoints(o.Attach()),
			)
			if err != nil {
				return 0, fmt.Errorf("storage: cannot save orientation %s/%d: %w", e.ID, idx, err)
			}
			written++
		}
	}

	if err := tx.Commit(); err != nil {
		return 0, fmt.Errorf("storage: cannot commit catalog: %w", err)
	}
	return written, nil
}

// PieceIDs returns the stored piece IDs in catalog order.
func (s *Store) PieceIDs() ([]string, error) {
	rows, err := s.db.Query("SELECT id FROM pieces ORDER BY position")
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query pieces: %w", err)
	}
	defer rows.Close()

	var ids []string
	for rows.Next() {
		var id string
		if err := rows.Scan(&id); err != nil {
			return nil, fmt.Errorf("storage: cannot scan row: %w", err)
		}
		ids = append(ids, id)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}

	return ids, nil
}

// Piece retrieves a stored piece by ID. Returns nil if it does not exist.
func (s *Store) Piece(id string) (*PieceRecord, error) {
	var rec PieceRecord
	var cells string
	var createdAt any

	err := s.db.QueryRow(
		`SELECT p.id, p.name, p.position, p.cells, p.created_at,
		        (SELECT COUNT(*) FROM orientations o WHERE o.piece_id = p.id)
		 FROM pieces p
		 WHERE p.id = ?`,
		id,
	).Scan(&rec.ID, &rec.Name, &rec.Position, &cells, &createdAt, &rec.Orientations)

	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query piece: %w", err)
	}

	rec.Cells, err = decodePoints(cells)
	if err != nil {
		return nil, fmt.Errorf("storage: piece %s: %w", id, err)
	}
	rec.CreatedAt = parseTime(createdAt)

	return &rec, nil
}

// Orientations rebuilds the stored orientations of a piece.
// Each orientation is reconstructed from its cells and checked against the
// stored bounds and attachment cells.
func (s *Store) Orientations(pieceID string) ([]piece.Shape, error) {
	rows, err := s.db.Query(
		`SELECT idx, width, height, points, attach
		 FROM orientations
		 WHERE piece_id = ?
		 ORDER BY idx`,
		pieceID,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query orientations: %w", err)
	}
	defer rows.Close()

	var shapes []piece.Shape
	for rows.Next() {
		var idx, width, height int
		var points, attach string
		if err := rows.Scan(&idx, &width, &height, &points, &attach); err != nil {
			return nil, fmt.Errorf("storage: cannot scan row: %w", err)
		}

		shape, err := rebuild(points, attach, width, height)
		if err != nil {
			return nil, fmt.Errorf("storage: orientation %s/%d: %w", pieceID, idx, err)
		}
		shapes = append(shapes, shape)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}

	return shapes, nil
}

// Stats returns the size of the stored catalog and when it was saved.
func (s *Store) Stats() (*Stats, error) {
	stats := &Stats{}

	var savedAt any
	err := s.db.QueryRow(
		`SELECT COUNT(*), MAX(created_at) FROM pieces`,
	).Scan(&stats.Pieces, &savedAt)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot get catalog stats: %w", err)
	}
	stats.SavedAt = parseTime(savedAt)

	err = s.db.QueryRow("SELECT COUNT(*) FROM orientations").Scan(&stats.Orientations)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot count orientations: %w", err)
	}

	return stats, nil
}

// rebuild reconstructs a shape and verifies it against the stored columns.
func rebuild(points, attach string, width, height int) (piece.Shape, error) {
	cells, err := decodePoints(points)
	if err != nil {
		return piece.Shape{}, err
	}

	shape, err := piece.New(cells)
	if err != nil {
		return piece.Shape{}, fmt.Errorf("%w: %w", ErrCorrupt, err)
	}

	if shape.Width() != width || shape.Height() != height {
		return piece.Shape{}, fmt.Errorf("%w: bounds %dx%d, stored %dx%d",
			ErrCorrupt, shape.Width(), shape.Height(), width, height)
	}
	if got := encodePoints(shape.Attach()); got != attach {
		return piece.Shape{}, fmt.Errorf("%w: attach %q, stored %q", ErrCorrupt, got, attach)
	}

	return shape, nil
}

// parseTime handles both time.Time and string datetime values.
func parseTime(v any) time.Time {
	switch t := v.(type) {
	case time.Time:
		return t
	case string:
		if parsed, err := time.Parse("2006-01-02 15:04:05", t); err == nil {
			return parsed
		}
	}
	return time.Time{}
}
