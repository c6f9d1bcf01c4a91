package migration

import (
	"context"
	"log/slog"

	"github.com/jackc/pgconn"
)

// Execer is the part of *pgxpool.Pool migrations need.
type Execer interface {
	Exec(ctx context.Context, sql string, args ...interface{}) (pgconn.CommandTag, error)
}

// Migration represents a database migration
type Migration struct {
	Name string
	Up   func(ctx context.Context, db Execer) error
}

func statement(sql string) func(ctx context.Context, db Execer) error {
	return func(ctx context.Context, db Execer) error {
		_, err := db.Exec(ctx, sql)
		return err
	}
}

// Migrations lists the schema steps in order. Every step is idempotent.
func Migrations() []Migration {
	return []Migration{
		{Name: "create_profiles", Up: statement(`
			CREATE TABLE IF NOT EXISTS profiles (
				id SERIAL PRIMARY KEY,
				name TEXT NOT NULL,
				email TEXT,
				avatar TEXT,
				phone TEXT,
				city TEXT,
				country TEXT,
				linkedin TEXT,
				website TEXT,
				title TEXT,
				title_en TEXT,
				summary TEXT,
				summary_en TEXT,
				bio TEXT,
				bio_en TEXT
			)`)},
		{Name: "add_cv_fields_to_profiles", Up: statement(`
			ALTER TABLE profiles
				ADD COLUMN IF NOT EXISTS github TEXT,
				ADD COLUMN IF NOT EXISTS location TEXT,
				ADD COLUMN IF NOT EXISTS driving_license TEXT,
				ADD COLUMN IF NOT EXISTS birth_date DATE,
				ADD COLUMN IF NOT EXISTS portfolio_url TEXT`)},
		{Name: "create_projects", Up: statement(`
			CREATE TABLE IF NOT EXISTS projects (
				id SERIAL PRIMARY KEY,
				slug TEXT NOT NULL UNIQUE,
				title TEXT NOT NULL,
				title_en TEXT,
				description TEXT,
				description_en TEXT,
				image TEXT,
				tech_stack TEXT[] NOT NULL DEFAULT '{}',
				repo_url TEXT,
				demo_url TEXT,
				is_visible BOOLEAN NOT NULL DEFAULT TRUE
			)`)},
		{Name: "create_experiences", Up: statement(`
			CREATE TABLE IF NOT EXISTS experiences (
				id SERIAL PRIMARY KEY,
				position TEXT NOT NULL,
				position_en TEXT,
				company TEXT NOT NULL,
				location TEXT,
				start_date TIMESTAMPTZ NOT NULL,
				end_date TIMESTAMPTZ,
				description TEXT,
				description_en TEXT,
				is_visible BOOLEAN NOT NULL DEFAULT TRUE
			)`)},
		{Name: "create_education", Up: statement(`
			CREATE TABLE IF NOT EXISTS education (
				id SERIAL PRIMARY KEY,
				degree TEXT NOT NULL,
				degree_en TEXT,
				school TEXT NOT NULL,
				start_date TIMESTAMPTZ NOT NULL,
				end_date TIMESTAMPTZ,
				description TEXT,
				description_en TEXT,
				is_visible BOOLEAN NOT NULL DEFAULT TRUE
			)`)},
		{Name: "add_pdf_flags", Up: statement(`
			ALTER TABLE projects ADD COLUMN IF NOT EXISTS is_visible_in_pdf BOOLEAN NOT NULL DEFAULT TRUE;
			ALTER TABLE experiences
				ADD COLUMN IF NOT EXISTS is_visible_in_pdf BOOLEAN NOT NULL DEFAULT TRUE,
				ADD COLUMN IF NOT EXISTS show_description_in_pdf BOOLEAN NOT NULL DEFAULT TRUE;
			ALTER TABLE education
				ADD COLUMN IF NOT EXISTS is_visible_in_pdf BOOLEAN NOT NULL DEFAULT TRUE,
				ADD COLUMN IF NOT EXISTS show_description_in_pdf BOOLEAN NOT NULL DEFAULT TRUE`)},
		{Name: "add_created_at", Up: statement(`
			ALTER TABLE experiences ADD COLUMN IF NOT EXISTS created_at TIMESTAMPTZ NOT NULL DEFAULT now();
			ALTER TABLE education ADD COLUMN IF NOT EXISTS created_at TIMESTAMPTZ NOT NULL DEFAULT now()`)},
		{Name: "create_skills", Up: statement(`
			CREATE TABLE IF NOT EXISTS skills (
				id SERIAL PRIMARY KEY,
				name TEXT NOT NULL,
				category TEXT,
				category_en TEXT,
				is_visible BOOLEAN NOT NULL DEFAULT TRUE
			)`)},
		{Name: "create_languages", Up: statement(`
			CREATE TABLE IF NOT EXISTS languages (
				id SERIAL PRIMARY KEY,
				name TEXT NOT NULL,
				name_en TEXT,
				level TEXT,
				level_en TEXT,
				is_visible BOOLEAN NOT NULL DEFAULT TRUE
			)`)},
		{Name: "create_published_cv", Up: statement(`
			CREATE TABLE IF NOT EXISTS published_cv (
				slot TEXT PRIMARY KEY,
				file_name TEXT NOT NULL,
				content BYTEA NOT NULL,
				size INTEGER NOT NULL,
				published_at TIMESTAMPTZ NOT NULL
			)`)},
	}
}

// RunMigrations executes all necessary database migrations on startup
func RunMigrations(ctx context.Context, db Execer) error {
	slog.Info("Starting database migrations")

	for _, m := range Migrations() {
		if err := m.Up(ctx, db); err != nil {
			slog.Error("Migration failed", "name", m.Name, "error", err)
			return err
		}
		slog.Info("Migration completed", "name", m.Name)
	}

	slog.Info("All migrations completed successfully")
	return nil
}
