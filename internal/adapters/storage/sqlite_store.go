package storage

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"
	"github.com/mattn/go-sqlite3"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
	"gorm.io/gorm/logger"

	"github.com/aura-ide/aura/internal/domain"
	"github.com/aura-ide/aura/internal/logging"
	"github.com/aura-ide/aura/internal/ports"
)

// SQLiteStore implements ports.WorkspaceStore using GORM
type SQLiteStore struct {
	db *gorm.DB
}

// Verify interface compliance at compile time
var _ ports.WorkspaceStore = (*SQLiteStore)(nil)

// gormLogger wraps the aura logger for GORM
type gormLogger struct {
	level logger.LogLevel
}

func (l *gormLogger) LogMode(level logger.LogLevel) logger.Interface {
	return &gormLogger{level: level}
}

func (l *gormLogger) Info(ctx context.Context, msg string, data ...any) {
	if l.level >= logger.Info {
		logging.Logger.Info(fmt.Sprintf(msg, data...))
	}
}

func (l *gormLogger) Warn(ctx context.Context, msg string, data ...any) {
	if l.level >= logger.Warn {
		logging.Logger.Warn(fmt.Sprintf(msg, data...))
	}
}

func (l *gormLogger) Error(ctx context.Context, msg string, data ...any) {
	if l.level >= logger.Error {
		logging.Logger.Error(fmt.Sprintf(msg, data...))
	}
}

func (l *gormLogger) Trace(ctx context.Context, begin time.Time, fc func() (sql string, rowsAffected int64), err error) {
	if l.level < logger.Info {
		return
	}

	elapsed := time.Since(begin)
	sql, rows := fc()

	switch {
	case err != nil && !errors.Is(err, gorm.ErrRecordNotFound):
		logging.Logger.Error("gorm query error", "error", err, "duration", elapsed, "sql", sql, "rows", rows)
	case elapsed > 200*time.Millisecond:
		logging.Logger.Warn("slow query", "duration", elapsed, "sql", sql, "rows", rows)
	default:
		logging.Logger.Debug("gorm query", "duration", elapsed, "sql", sql, "rows", rows)
	}
}

func newGormLogger() logger.Interface {
	if os.Getenv("AURA_DEBUG") == "1" {
		return (&gormLogger{}).LogMode(logger.Info)
	}
	return (&gormLogger{}).LogMode(logger.Silent)
}

// NewSQLiteStore opens (and migrates) the workspace database at dbPath
func NewSQLiteStore(dbPath string) (*SQLiteStore, error) {
	if len(dbPath) > 0 && dbPath[0] == '~' {
		homeDir, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("failed to get home directory: %w", err)
		}
		dbPath = filepath.Join(homeDir, dbPath[1:])
	}

	if err := os.MkdirAll(filepath.Dir(dbPath), 0755); err != nil {
		return nil, fmt.Errorf("failed to create directory: %w", err)
	}

	db, err := gorm.Open(sqlite.Open(dbPath), &gorm.Config{
		PrepareStmt: false,
		NowFunc:     func() time.Time { return time.Now().UTC() },
		Logger:      newGormLogger(),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	// WAL lets the TUI, the CLI and SSH sessions share the file
	db.Exec("PRAGMA journal_mode=WAL")
	db.Exec("PRAGMA busy_timeout=5000")
	db.Exec("PRAGMA synchronous=NORMAL")

	if err := db.AutoMigrate(&ExpansionModel{}, &EventModel{}, &RunModel{}); err != nil {
		return nil, fmt.Errorf("failed to migrate workspace schema: %w", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, err
	}
	sqlDB.SetMaxOpenConns(10)
	sqlDB.SetMaxIdleConns(5)
	sqlDB.SetConnMaxLifetime(0)

	return &SQLiteStore{db: db}, nil
}

// Close closes the database connection
func (s *SQLiteStore) Close() error {
	sqlDB, err := s.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}

// LoadExpansion implements ExpansionStore.LoadExpansion
func (s *SQLiteStore) LoadExpansion(ctx context.Context) (domain.ExpansionState, error) {
	var rows []ExpansionModel
	err := withRetry(func() error {
		return s.db.WithContext(ctx).Find(&rows).Error
	}, 3)
	if err != nil {
		return nil, fmt.Errorf("failed to load expansion state: %w", err)
	}

	state := make(domain.ExpansionState, len(rows))
	for _, row := range rows {
		state[row.Path] = row.Expanded
	}
	return state, nil
}

// SaveExpansion implements ExpansionStore.SaveExpansion
func (s *SQLiteStore) SaveExpansion(ctx context.Context, path string, expanded bool) error {
	row := ExpansionModel{Path: path, Expanded: expanded}
	return withRetry(func() error {
		return s.db.WithContext(ctx).Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "path"}},
			DoUpdates: clause.AssignmentColumns([]string{"expanded", "updated_at"}),
		}).Create(&row).Error
	}, 3)
}

// AppendEvent implements EventJournal.AppendEvent
func (s *SQLiteStore) AppendEvent(ctx context.Context, sessionID string, entry domain.EventLogEntry) error {
	row := domainToEventModel(sessionID, entry)
	return withRetry(func() error {
		return s.db.WithContext(ctx).Create(&row).Error
	}, 3)
}

// ListEvents implements EventJournal.ListEvents.
// It returns the newest limit entries in append order, whatever order they
// were written in: by append time, then by sequence number.
func (s *SQLiteStore) ListEvents(ctx context.Context, limit int) ([]domain.EventLogEntry, error) {
	var rows []EventModel
	err := withRetry(func() error {
		query := s.db.WithContext(ctx).Order("created_at DESC, seq DESC, id DESC")
		if limit > 0 {
			query = query.Limit(limit)
		}
		return query.Find(&rows).Error
	}, 3)
	if err != nil {
		return nil, fmt.Errorf("failed to list events: %w", err)
	}

	entries := make([]domain.EventLogEntry, len(rows))
	for i, row := range rows {
		entries[len(rows)-1-i] = eventModelToDomain(row)
	}
	return entries, nil
}

// RecordRun implements RunHistory.RecordRun
func (s *SQLiteStore) RecordRun(ctx context.Context, record domain.RunRecord) error {
	if record.ID == "" {
		record.ID = uuid.New().String()
	}
	row := domainToRunModel(record)
	return withRetry(func() error {
		return s.db.WithContext(ctx).Create(&row).Error
	}, 3)
}

// ListRuns implements RunHistory.ListRuns, newest first
func (s *SQLiteStore) ListRuns(ctx context.Context, limit int) ([]domain.RunRecord, error) {
	var rows []RunModel
	err := withRetry(func() error {
		query := s.db.WithContext(ctx).Order("created_at DESC")
		if limit > 0 {
			query = query.Limit(limit)
		}
		return query.Find(&rows).Error
	}, 3)
	if err != nil {
		return nil, fmt.Errorf("failed to list runs: %w", err)
	}

	records := make([]domain.RunRecord, len(rows))
	for i, row := range rows {
		records[i] = runModelToDomain(row)
	}
	return records, nil
}

// withRetry retries operations on SQLITE_BUSY with linear backoff
func withRetry(fn func() error, maxRetries int) error {
	for i := 0; i < maxRetries; i++ {
		err := fn()
		if err == nil {
			return nil
		}

		var sqliteErr sqlite3.Error
		if errors.As(err, &sqliteErr) && (sqliteErr.Code == sqlite3.ErrBusy || sqliteErr.Code == sqlite3.ErrLocked) {
			time.Sleep(time.Millisecond * time.Duration(50*(i+1)))
			continue
		}

		return err
	}
	return fmt.Errorf("operation failed after %d retries", maxRetries)
}
