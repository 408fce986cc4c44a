package sqlite

import (
	"context"
	"database/sql"
	"strconv"
	"strings"
	"sync"
	"time"

	"todolist/internal/errors"
	"todolist/internal/repository/sqlite/migrations"

	_ "modernc.org/sqlite"
)

// Repository defines the interface for database operations
type Repository interface {
	// Create operations
	CreateTask(ctx context.Context, task *Task) error

	// Read operations
	GetTask(ctx context.Context, id string) (*Task, error)
	ListTasks(ctx context.Context) ([]*Task, error)

	// Update operations
	UpdateTask(ctx context.Context, id string, name string, description string) (*Task, error)
	ToggleTaskCompleted(ctx context.Context, id string) (*Task, error)

	// Delete operations
	DeleteTask(ctx context.Context, id string) error

	// Utility
	Close() error
}

// Options tunes a repository. Zero timeouts leave the caller's context untouched.
type Options struct {
	QueryTimeout time.Duration
	WriteTimeout time.Duration
	BusyTimeout  time.Duration
}

// SQLiteRepository implements the Repository interface
type SQLiteRepository struct {
	db   *sql.DB
	opts Options

	// writeMu admits one writer at a time; reads never take it.
	writeMu sync.Mutex
}

const memoryPath = ":memory:"

// New creates a new SQLite repository instance
func New(dbPath string) (*SQLiteRepository, error) {
	return NewWithOptions(dbPath, Options{})
}

// NewWithOptions creates a new SQLite repository with timeouts applied to every operation
func NewWithOptions(dbPath string, opts Options) (*SQLiteRepository, error) {
	db, err := sql.Open("sqlite", dataSourceName(dbPath, opts))
	if err != nil {
		return nil, errors.NewStorageError("open database", err)
	}

	// Every connection to :memory: is a separate database.
	if dbPath == memoryPath {
		db.SetMaxOpenConns(1)
	}

	if err := db.Ping(); err != nil {
		db.Close()
		return nil, errors.NewStorageError("open database", err)
	}

	if err := migrations.RunMigrations(db); err != nil {
		db.Close()
		return nil, errors.NewStorageError("run migrations", err)
	}

	return &SQLiteRepository{db: db, opts: opts}, nil
}

func dataSourceName(dbPath string, opts Options) string {
	if dbPath == memoryPath {
		return dbPath
	}
	busy := opts.BusyTimeout
	if busy <= 0 {
		busy = 5 * time.Second
	}
	sep := "?"
	if strings.Contains(dbPath, "?") {
		sep = "&"
	}
	return dbPath + sep +
		"_pragma=busy_timeout(" + formatMillis(busy) + ")" +
		"&_pragma=journal_mode(WAL)"
}

func formatMillis(d time.Duration) string {
	return strconv.FormatInt(d.Milliseconds(), 10)
}

// Close closes the database connection
func (r *SQLiteRepository) Close() error {
	return r.db.Close()
}

func (r *SQLiteRepository) readContext(ctx context.Context) (context.Context, context.CancelFunc) {
	if r.opts.QueryTimeout > 0 {
		return context.WithTimeout(ctx, r.opts.QueryTimeout)
	}
	return ctx, func() {}
}

func (r *SQLiteRepository) writeContext(ctx context.Context) (context.Context, context.CancelFunc) {
	if r.opts.WriteTimeout > 0 {
		return context.WithTimeout(ctx, r.opts.WriteTimeout)
	}
	return ctx, func() {}
}

const selectTask = `SELECT id, name, description, created_at, is_completed FROM tasks`

// CreateTask inserts a new task. The caller assigns ID and CreatedAt.
func (r *SQLiteRepository) CreateTask(ctx context.Context, task *Task) error {
	ctx, cancel := r.writeContext(ctx)
	defer cancel()

	r.writeMu.Lock()
	defer r.writeMu.Unlock()

	query := `
	INSERT INTO tasks (id, name, description, created_at, is_completed)
	VALUES (?, ?, ?, ?, ?)`

	return Execute(ctx, r.db, query, task.ID, task.Name, task.Description, FormatTimeForDB(task.CreatedAt), task.IsCompleted)
}

// GetTask retrieves a task by ID
func (r *SQLiteRepository) GetTask(ctx context.Context, id string) (*Task, error) {
	ctx, cancel := r.readContext(ctx)
	defer cancel()

	return QuerySingle(ctx, r.db, selectTask+` WHERE id = ?`, ScanTask, "task", id, id)
}

// ListTasks retrieves all tasks, oldest first
func (r *SQLiteRepository) ListTasks(ctx context.Context) ([]*Task, error) {
	ctx, cancel := r.readContext(ctx)
	defer cancel()

	return QueryMultiple(ctx, r.db, selectTask+` ORDER BY created_at ASC, id ASC`, ScanTasks, "tasks")
}

// UpdateTask changes the name and description of a task and returns the stored row
func (r *SQLiteRepository) UpdateTask(ctx context.Context, id string, name string, description string) (*Task, error) {
	ctx, cancel := r.writeContext(ctx)
	defer cancel()

	r.writeMu.Lock()
	defer r.writeMu.Unlock()

	var updated *Task
	err := WithTx(ctx, r.db, func(tx *sql.Tx) error {
		query := `UPDATE tasks SET name = ?, description = ? WHERE id = ?`
		if err := ExecuteWithRowsAffected(ctx, tx, query, "task", id, name, description, id); err != nil {
			return err
		}
		task, err := QuerySingle(ctx, tx, selectTask+` WHERE id = ?`, ScanTask, "task", id, id)
		if err != nil {
			return err
		}
		updated = task
		return nil
	})
	if err != nil {
		return nil, err
	}
	return updated, nil
}

// ToggleTaskCompleted flips is_completed and returns the stored row
func (r *SQLiteRepository) ToggleTaskCompleted(ctx context.Context, id string) (*Task, error) {
	ctx, cancel := r.writeContext(ctx)
	defer cancel()

	r.writeMu.Lock()
	defer r.writeMu.Unlock()

	var toggled *Task
	err := WithTx(ctx, r.db, func(tx *sql.Tx) error {
		query := `UPDATE tasks SET is_completed = NOT is_completed WHERE id = ?`
		if err := ExecuteWithRowsAffected(ctx, tx, query, "task", id, id); err != nil {
			return err
		}
		task, err := QuerySingle(ctx, tx, selectTask+` WHERE id = ?`, ScanTask, "task", id, id)
		if err != nil {
			return err
		}
		toggled = task
		return nil
	})
	if err != nil {
		return nil, err
	}
	return toggled, nil
}

// DeleteTask deletes a task by ID
func (r *SQLiteRepository) DeleteTask(ctx context.Context, id string) error {
	ctx, cancel := r.writeContext(ctx)
	defer cancel()

	r.writeMu.Lock()
	defer r.writeMu.Unlock()

	query := `DELETE FROM tasks WHERE id = ?`
	return ExecuteWithRowsAffected(ctx, r.db, query, "task", id, id)
}
