package storage

import (
	"database/sql"
	"embed"
	"fmt"
	"sort"
	"strconv"
	"strings"

	_ "modernc.org/sqlite"

	"github.com/kalambet/folio/internal/resume"
)

//go:embed migrations/*.sql
var migrationsFS embed.FS

// Store wraps a SQLite database holding one resume document.
type Store struct {
	db       *sql.DB
	readOnly bool
}

// Open opens the SQLite database at path. A read-only store never runs
// migrations and rejects writes; it is what the server uses. Pass ":memory:"
// for an in-memory database (used by tests).
func Open(path string, readOnly bool) (*Store, error) {
	dsn := path
	if readOnly && path != ":memory:" {
		dsn = "file:" + path + "?mode=ro"
	}

	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("opening database: %w", err)
	}
	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("pinging database: %w", err)
	}

	// A single connection keeps ":memory:" databases coherent.
	db.SetMaxOpenConns(1)

	if _, err := db.Exec("PRAGMA foreign_keys = ON"); err != nil {
		db.Close()
		return nil, fmt.Errorf("enabling foreign keys: %w", err)
	}

	s := &Store{db: db, readOnly: readOnly}
	if !readOnly {
		if err := s.migrate(); err != nil {
			db.Close()
			return nil, fmt.Errorf("running migrations: %w", err)
		}
	}
	return s, nil
}

// Close closes the underlying database connection.
func (s *Store) Close() error {
	return s.db.Close()
}

// migrate applies embedded SQL migrations that have not been run yet.
func (s *Store) migrate() error {
	if _, err := s.db.Exec(`CREATE TABLE IF NOT EXISTS schema_version (
		version INTEGER PRIMARY KEY,
		applied_at DATETIME DEFAULT CURRENT_TIMESTAMP
	)`); err != nil {
		return fmt.Errorf("creating schema_version table: %w", err)
	}

	entries, err := migrationsFS.ReadDir("migrations")
	if err != nil {
		return fmt.Errorf("reading migrations directory: %w", err)
	}
	sort.Slice(entries, func(i, j int) bool {
		return entries[i].Name() < entries[j].Name()
	})

	for _, entry := range entries {
		if entry.IsDir() || !strings.HasSuffix(entry.Name(), ".sql") {
			continue
		}
		version, err := parseMigrationVersion(entry.Name())
		if err != nil {
			return err
		}

		var exists int
		if err := s.db.QueryRow("SELECT COUNT(*) FROM schema_version WHERE version = ?", version).Scan(&exists); err != nil {
			return fmt.Errorf("checking migration %d: %w", version, err)
		}
		if exists > 0 {
			continue
		}

		content, err := migrationsFS.ReadFile("migrations/" + entry.Name())
		if err != nil {
			return fmt.Errorf("reading migration %s: %w", entry.Name(), err)
		}

		tx, err := s.db.Begin()
		if err != nil {
			return fmt.Errorf("beginning transaction for migration %d: %w", version, err)
		}
		if _, err := tx.Exec(string(content)); err != nil {
			tx.Rollback()
			return fmt.Errorf("applying migration %d: %w", version, err)
		}
		if _, err := tx.Exec("INSERT INTO schema_version (version) VALUES (?)", version); err != nil {
			tx.Rollback()
			return fmt.Errorf("recording migration %d: %w", version, err)
		}
		if err := tx.Commit(); err != nil {
			return fmt.Errorf("committing migration %d: %w", version, err)
		}
	}
	return nil
}

func parseMigrationVersion(name string) (int, error) {
	prefix, _, ok := strings.Cut(name, "_")
	if !ok {
		return 0, fmt.Errorf("migration %s: missing version prefix", name)
	}
	v, err := strconv.Atoi(prefix)
	if err != nil {
		return 0, fmt.Errorf("migration %s: invalid version: %w", name, err)
	}
	return v, nil
}

const (
	sectionEducation = "education"
	sectionWork      = "work"
	sectionResearch  = "research"
	sectionLanguages = "languages"
)

// ImportResume replaces the stored document with r in one transaction.
func (s *Store) ImportResume(r *resume.Resume) error {
	if s.readOnly {
		return fmt.Errorf("importing resume: store is read-only")
	}

	tx, err := s.db.Begin()
	if err != nil {
		return fmt.Errorf("beginning import: %w", err)
	}
	defer tx.Rollback()

	for _, table := range []string{"degrees", "content_items", "skills"} {
		if _, err := tx.Exec("DELETE FROM " + table); err != nil {
			return fmt.Errorf("clearing %s: %w", table, err)
		}
	}

	for i, sk := range r.Skills {
		if _, err := tx.Exec(
			"INSERT INTO skills (position, title, category, proficiency) VALUES (?, ?, ?, ?)",
			i, sk.Title, sk.Category, sk.Proficiency,
		); err != nil {
			return fmt.Errorf("inserting skill %q: %w", sk.Title, err)
		}
	}

	for i, ed := range r.Education {
		id, err := insertItem(tx, sectionEducation, i, ed.ContentItem)
		if err != nil {
			return err
		}
		for j, d := range ed.Degrees {
			if _, err := tx.Exec(
				"INSERT INTO degrees (item_id, position, title, description) VALUES (?, ?, ?, ?)",
				id, j, d.Title, d.Description,
			); err != nil {
				return fmt.Errorf("inserting degree %q: %w", d.Title, err)
			}
		}
	}

	sections := []struct {
		name  string
		items []resume.ContentItem
	}{
		{sectionWork, r.Work},
		{sectionResearch, r.Research},
		{sectionLanguages, r.Languages},
	}
	for _, sec := range sections {
		for i, it := range sec.items {
			if _, err := insertItem(tx, sec.name, i, it); err != nil {
				return err
			}
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("committing import: %w", err)
	}
	return nil
}

func insertItem(tx *sql.Tx, section string, position int, it resume.ContentItem) (int64, error) {
	res, err := tx.Exec(
		"INSERT INTO content_items (section, position, title, description, link) VALUES (?, ?, ?, ?, ?)",
		section, position, it.Title, it.Description, it.Link,
	)
	if err != nil {
		return 0, fmt.Errorf("inserting %s item %q: %w", section, it.Title, err)
	}
	return res.LastInsertId()
}

// LoadResume reads the whole document in stored order. It does not validate.
func (s *Store) LoadResume() (*resume.Resume, error) {
	r := &resume.Resume{}

	rows, err := s.db.Query("SELECT title, category, proficiency FROM skills ORDER BY position, id")
	if err != nil {
		return nil, fmt.Errorf("querying skills: %w", err)
	}
	for rows.Next() {
		var sk resume.Skill
		if err := rows.Scan(&sk.Title, &sk.Category, &sk.Proficiency); err != nil {
			rows.Close()
			return nil, fmt.Errorf("scanning skill: %w", err)
		}
		r.Skills = append(r.Skills, sk)
	}
	if err := rows.Err(); err != nil {
		rows.Close()
		return nil, fmt.Errorf("iterating skills: %w", err)
	}
	rows.Close()

	education, ids, err := s.loadItems(sectionEducation)
	if err != nil {
		return nil, err
	}
	for i, it := range education {
		degrees, err := s.loadDegrees(ids[i])
		if err != nil {
			return nil, err
		}
		r.Education = append(r.Education, resume.EducationItem{ContentItem: it, Degrees: degrees})
	}

	if r.Work, _, err = s.loadItems(sectionWork); err != nil {
		return nil, err
	}
	if r.Research, _, err = s.loadItems(sectionResearch); err != nil {
		return nil, err
	}
	if r.Languages, _, err = s.loadItems(sectionLanguages); err != nil {
		return nil, err
	}
	return r, nil
}

func (s *Store) loadItems(section string) ([]resume.ContentItem, []int64, error) {
	rows, err := s.db.Query(
		"SELECT id, title, description, link FROM content_items WHERE section = ? ORDER BY position, id",
		section,
	)
	if err != nil {
		return nil, nil, fmt.Errorf("querying %s: %w", section, err)
	}
	defer rows.Close()

	var items []resume.ContentItem
	var ids []int64
	for rows.Next() {
		var id int64
		var it resume.ContentItem
		if err := rows.Scan(&id, &it.Title, &it.Description, &it.Link); err != nil {
			return nil, nil, fmt.Errorf("scanning %s item: %w", section, err)
		}
		items = append(items, it)
		ids = append(ids, id)
	}
	if err := rows.Err(); err != nil {
		return nil, nil, fmt.Errorf("iterating %s: %w", section, err)
	}
	return items, ids, nil
}

func (s *Store) loadDegrees(itemID int64) ([]resume.Degree, error) {
	rows, err := s.db.Query(
		"SELECT title, description FROM degrees WHERE item_id = ? ORDER BY position, id",
		itemID,
	)
	if err != nil {
		return nil, fmt.Errorf("querying degrees: %w", err)
	}
	defer rows.Close()

	var degrees []resume.Degree
	for rows.Next() {
		var d resume.Degree
		if err := rows.Scan(&d.Title, &d.Description); err != nil {
			return nil, fmt.Errorf("scanning degree: %w", err)
		}
		degrees = append(degrees, d)
	}
	return degrees, rows.Err()
}
