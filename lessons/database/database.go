package database

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"io"
	"strings"

	// Registers the "sqlite3" driver with database/sql.
	_ "github.com/mattn/go-sqlite3"

	"github.com/katalvlaran/golessons/curriculum"
)

var (
	// ErrTaskNotFound reports a lookup or update that matched no row.
	ErrTaskNotFound = errors.New("database: task not found")
	// ErrEmptyTitle rejects tasks with no title.
	ErrEmptyTitle = errors.New("database: empty title")
)

// Task is one row of the tasks table.
type Task struct {
	ID    int64
	Title string
	Done  bool
}

// Store wraps a *sql.DB with a task-list schema.
type Store struct {
	db *sql.DB
}

// Open connects to the SQLite database at dsn and ensures the schema
// exists. For ":memory:" databases the pool is capped at one connection,
// because every new SQLite connection to :memory: would otherwise get
// its own empty database.
func Open(dsn string) (*Store, error) {
	db, err := sql.Open("sqlite3", dsn)
	if err != nil {
		return nil, fmt.Errorf("database: open: %w", err)
	}
	if strings.Contains(dsn, ":memory:") {
		db.SetMaxOpenConns(1)
	}
	if _, err := db.Exec(`
		CREATE TABLE IF NOT EXISTS tasks (
			id    INTEGER PRIMARY KEY AUTOINCREMENT,
			title TEXT    NOT NULL,
			done  INTEGER NOT NULL DEFAULT 0
		)
	`); err != nil {
		db.Close()
		return nil, fmt.Errorf("database: create schema: %w", err)
	}
	return &Store{db: db}, nil
}

// Close releases the connection pool.
func (s *Store) Close() error {
	return s.db.Close()
}

// Ping verifies a connection can actually be established; sql.Open alone
// only validates the DSN.
func (s *Store) Ping(ctx context.Context) error {
	return s.db.PingContext(ctx)
}

// Add inserts one task and returns its generated id.
func (s *Store) Add(ctx context.Context, title string) (int64, error) {
	if strings.TrimSpace(title) == "" {
		return 0, ErrEmptyTitle
	}
	res, err := s.db.ExecContext(ctx,
		"INSERT INTO tasks (title) VALUES (?)", title)
	if err != nil {
		return 0, fmt.Errorf("database: insert: %w", err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("database: last insert id: %w", err)
	}
	return id, nil
}

// Get fetches one task by primary key.
func (s *Store) Get(ctx context.Context, id int64) (Task, error) {
	var t Task
	err := s.db.QueryRowContext(ctx,
		"SELECT id, title, done FROM tasks WHERE id = ?", id).
		Scan(&t.ID, &t.Title, &t.Done)
	if errors.Is(err, sql.ErrNoRows) {
		return Task{}, fmt.Errorf("%w: id %d", ErrTaskNotFound, id)
	}
	if err != nil {
		return Task{}, fmt.Errorf("database: scan task: %w", err)
	}
	return t, nil
}

// List returns every task ordered by id.
func (s *Store) List(ctx context.Context) ([]Task, error) {
	rows, err := s.db.QueryContext(ctx,
		"SELECT id, title, done FROM tasks ORDER BY id")
	if err != nil {
		return nil, fmt.Errorf("database: query tasks: %w", err)
	}
	defer rows.Close()

	tasks := make([]Task, 0)
	for rows.Next() {
		var t Task
		if err := rows.Scan(&t.ID, &t.Title, &t.Done); err != nil {
			return nil, fmt.Errorf("database: scan row: %w", err)
		}
		tasks = append(tasks, t)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("database: iterate rows: %w", err)
	}
	return tasks, nil
}

// MarkDone flags one task as completed.
func (s *Store) MarkDone(ctx context.Context, id int64) error {
	res, err := s.db.ExecContext(ctx,
		"UPDATE tasks SET done = 1 WHERE id = ?", id)
	if err != nil {
		return fmt.Errorf("database: update: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("database: rows affected: %w", err)
	}
	if n == 0 {
		return fmt.Errorf("%w: id %d", ErrTaskNotFound, id)
	}
	return nil
}

// Delete removes one task.
func (s *Store) Delete(ctx context.Context, id int64) error {
	res, err := s.db.ExecContext(ctx,
		"DELETE FROM tasks WHERE id = ?", id)
	if err != nil {
		return fmt.Errorf("database: delete: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("database: rows affected: %w", err)
	}
	if n == 0 {
		return fmt.Errorf("%w: id %d", ErrTaskNotFound, id)
	}
	return nil
}

// AddMany inserts all titles inside one transaction: either every row
// lands or none does. An empty title anywhere aborts the whole batch.
func (s *Store) AddMany(ctx context.Context, titles ...string) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("database: begin: %w", err)
	}
	for _, title := range titles {
		if strings.TrimSpace(title) == "" {
			_ = tx.Rollback()
			return fmt.Errorf("database: batch aborted: %w", ErrEmptyTitle)
		}
		if _, err := tx.ExecContext(ctx,
			"INSERT INTO tasks (title) VALUES (?)", title); err != nil {
			_ = tx.Rollback()
			return fmt.Errorf("database: batch insert: %w", err)
		}
	}
	if err := tx.Commit(); err != nil {
		return fmt.Errorf("database: commit: %w", err)
	}
	return nil
}

// Count returns the number of stored tasks.
func (s *Store) Count(ctx context.Context) (int, error) {
	var n int
	if err := s.db.QueryRowContext(ctx,
		"SELECT COUNT(*) FROM tasks").Scan(&n); err != nil {
		return 0, fmt.Errorf("database: count: %w", err)
	}
	return n, nil
}

// Lesson describes this package to the curriculum.
func Lesson() curriculum.Lesson {
	return curriculum.Lesson{
		Number:   27,
		Slug:     "database",
		Title:    "SQL databases",
		Part:     curriculum.PartStdlib,
		Synopsis: "database/sql with SQLite: queries, scanning, transactions",
		Topics:   []string{"database/sql", "sqlite3", "Scan", "transactions", "ErrNoRows"},
		Run:      Run,
	}
}

// Run prints the annotated demonstration.
func Run(ctx context.Context, w io.Writer) error {
	nb := curriculum.NewNotebook(w)
	nb.Heading("SQL databases")

	nb.Step("Open a pool, not a connection")
	store, err := Open(":memory:")
	if err != nil {
		return err
	}
	defer store.Close()
	nb.Say("sql.Open validates the DSN and builds a lazy connection pool;")
	nb.Say("the blank import of mattn/go-sqlite3 registered the driver.")
	nb.Show("Ping err", store.Ping(ctx))

	nb.Step("INSERT via Exec")
	for _, title := range []string{"write the schema", "load the fixtures", "wire the handler"} {
		id, err := store.Add(ctx, title)
		if err != nil {
			return err
		}
		nb.Sayf("inserted #%d %q", id, title)
	}
	nb.Say("Placeholders (?) keep values out of the SQL text, which is")
	nb.Say("what defeats injection. LastInsertId returns the new key.")

	nb.Step("QueryRow + Scan reads one row")
	task, err := store.Get(ctx, 2)
	if err != nil {
		return err
	}
	nb.Sayf("Get(2) -> #%d %q done=%v", task.ID, task.Title, task.Done)
	_, err = store.Get(ctx, 99)
	nb.Show("Get(99) is ErrTaskNotFound", errors.Is(err, ErrTaskNotFound))
	nb.Say("sql.ErrNoRows surfaces at Scan time; wrapping it in a domain")
	nb.Say("sentinel keeps SQL details out of the callers.")

	nb.Step("Query + Next walks many rows")
	if err := store.MarkDone(ctx, 1); err != nil {
		return err
	}
	tasks, err := store.List(ctx)
	if err != nil {
		return err
	}
	for _, t := range tasks {
		box := " "
		if t.Done {
			box = "x"
		}
		nb.Sayf("[%s] #%d %s", box, t.ID, t.Title)
	}
	nb.Say("Iterate with rows.Next, Scan each row, then check rows.Err:")
	nb.Say("errors can arrive mid-stream, after Next returns false.")

	nb.Step("UPDATE reports matches, not success")
	err = store.MarkDone(ctx, 99)
	nb.Show("MarkDone(99)", err)
	nb.Say("An UPDATE matching zero rows is not an SQL error; checking")
	nb.Say("RowsAffected is what turns it into one.")

	nb.Step("Transactions are all-or-nothing")
	if err := store.AddMany(ctx, "review notes", "cut release"); err != nil {
		return err
	}
	n, err := store.Count(ctx)
	if err != nil {
		return err
	}
	nb.Show("count after good batch", n)
	err = store.AddMany(ctx, "valid task", "")
	nb.Show("bad batch err is ErrEmptyTitle", errors.Is(err, ErrEmptyTitle))
	n, err = store.Count(ctx)
	if err != nil {
		return err
	}
	nb.Show("count after failed batch", n)
	nb.Say("The failing batch inserted one valid row and then rolled the")
	nb.Say("whole transaction back, so the count is unchanged.")

	nb.Step("DELETE")
	if err := store.Delete(ctx, 3); err != nil {
		return err
	}
	n, err = store.Count(ctx)
	if err != nil {
		return err
	}
	nb.Show("count after delete", n)

	nb.Takeaways(
		"*sql.DB is a concurrency-safe pool; open it once, share it",
		"always use placeholders, never string-build SQL",
		"check RowsAffected when absence matters",
		"wrap multi-statement writes in a transaction",
	)
	return nb.Err()
}
