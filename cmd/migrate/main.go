package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/ahpc/backend/internal/config"
	"github.com/ahpc/backend/internal/logging"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

const usageText = `Usage: migrate [command]

Commands:
  (default)   未適用のマイグレーションを順番に適用
  status      マイグレーションごとの適用状態を表示
  reset       全テーブルを DROP し、集約スキーマで再作成
  fresh       全テーブルを DROP し、全マイグレーションを順番に適用`

var errUsage = errors.New("unknown command")

// database は migrator が使う pgxpool.Pool のサブセット。
type database interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

// migrator は migrations/ の SQL を schema_migrations に記録しながら適用する。
type migrator struct {
	db  database
	dir string
	out io.Writer
}

func main() {
	cfg := config.Load()
	logging.Setup(cfg.SentryDSN)
	defer logging.Flush()

	ctx := context.Background()
	pool, err := pgxpool.New(ctx, cfg.DatabaseURL)
	if err != nil {
		logging.Fatal("connect failed", "error", err)
	}
	defer pool.Close()

	cmd := ""
	if len(os.Args) > 1 {
		cmd = os.Args[1]
	}

	m := &migrator{db: pool, dir: findMigrationDir(), out: os.Stdout}
	if err := m.run(ctx, cmd); err != nil {
		if errors.Is(err, errUsage) {
			fmt.Fprintln(os.Stderr, usageText)
			os.Exit(2)
		}
		logging.Fatal("migrate failed", "command", cmd, "error", err)
	}
}

func (m *migrator) run(ctx context.Context, cmd string) error {
	switch cmd {
	case "":
		return m.up(ctx)
	case "status":
		return m.status(ctx)
	case "reset":
		if err := m.dropAll(ctx); err != nil {
			return err
		}
		return m.consolidated(ctx)
	case "fresh":
		if err := m.dropAll(ctx); err != nil {
			return err
		}
		return m.up(ctx)
	default:
		return fmt.Errorf("%w %q", errUsage, cmd)
	}
}

func findMigrationDir() string {
	if _, err := os.Stat("migrations"); err == nil {
		return "migrations"
	}
	return "../migrations"
}

// migrationNames は *.up.sql の名前 (拡張子なし) を昇順で返す。
func (m *migrator) migrationNames() ([]string, error) {
	entries, err := os.ReadDir(m.dir)
	if err != nil {
		return nil, fmt.Errorf("read migrations dir: %w", err)
	}
	var names []string
	for _, e := range entries {
		if name, ok := strings.CutSuffix(e.Name(), ".up.sql"); ok && !e.IsDir() {
			names = append(names, name)
		}
	}
	sort.Strings(names)
	return names, nil
}

func (m *migrator) ensureTable(ctx context.Context) error {
	_, err := m.db.Exec(ctx, `CREATE TABLE IF NOT EXISTS schema_migrations (
		name TEXT PRIMARY KEY,
		applied_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
	)`)
	if err != nil {
		return fmt.Errorf("create schema_migrations: %w", err)
	}
	return nil
}

// isApplied は name が schema_migrations に記録済みかを返す。
func isApplied(ctx context.Context, db database, name string) (bool, error) {
	var applied bool
	err := db.QueryRow(ctx, `SELECT EXISTS (SELECT 1 FROM schema_migrations WHERE name = $1)`, name).Scan(&applied)
	if err != nil {
		return false, fmt.Errorf("check %s: %w", name, err)
	}
	return applied, nil
}

func (m *migrator) execFile(ctx context.Context, filename string) error {
	sql, err := os.ReadFile(filepath.Join(m.dir, filename))
	if err != nil {
		return fmt.Errorf("read %s: %w", filename, err)
	}
	if _, err := m.db.Exec(ctx, string(sql)); err != nil {
		return fmt.Errorf("apply %s: %w", filename, err)
	}
	return nil
}

func (m *migrator) record(ctx context.Context, name string) error {
	_, err := m.db.Exec(ctx, `INSERT INTO schema_migrations (name) VALUES ($1) ON CONFLICT DO NOTHING`, name)
	if err != nil {
		return fmt.Errorf("record %s: %w", name, err)
	}
	return nil
}

// up は未適用のマイグレーションだけを適用する。
func (m *migrator) up(ctx context.Context) error {
	if err := m.ensureTable(ctx); err != nil {
		return err
	}
	names, err := m.migrationNames()
	if err != nil {
		return err
	}

	applied := 0
	for _, name := range names {
		done, err := isApplied(ctx, m.db, name)
		if err != nil {
			return err
		}
		if done {
			continue
		}
		if err := m.execFile(ctx, name+".up.sql"); err != nil {
			return err
		}
		if err := m.record(ctx, name); err != nil {
			return err
		}
		applied++
		slog.Info("migration applied", "migration", name)
	}
	slog.Info("migrations up to date", "applied", applied, "total", len(names))
	return nil
}

func (m *migrator) status(ctx context.Context) error {
	if err := m.ensureTable(ctx); err != nil {
		return err
	}
	names, err := m.migrationNames()
	if err != nil {
		return err
	}

	pending := 0
	for _, name := range names {
		done, err := isApplied(ctx, m.db, name)
		if err != nil {
			return err
		}
		state := "applied"
		if !done {
			state = "pending"
			pending++
		}
		fmt.Fprintf(m.out, "%-8s %s\n", state, name)
	}
	slog.Info("migration status", "pending", pending)
	return nil
}

func (m *migrator) dropAll(ctx context.Context) error {
	if err := m.execFile(ctx, "000_drop_all.sql"); err != nil {
		return err
	}
	slog.Info("all tables dropped")
	return nil
}

// consolidated は集約スキーマを適用し、全マイグレーションを適用済みとして記録する。
func (m *migrator) consolidated(ctx context.Context) error {
	if err := m.execFile(ctx, "000_consolidated.sql"); err != nil {
		return err
	}
	if err := m.ensureTable(ctx); err != nil {
		return err
	}
	names, err := m.migrationNames()
	if err != nil {
		return err
	}
	for _, name := range names {
		if err := m.record(ctx, name); err != nil {
			return err
		}
	}
	slog.Info("consolidated schema applied", "migrations_marked", len(names))
	return nil
}
