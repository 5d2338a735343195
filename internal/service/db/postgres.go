package db

import (
	"database/sql"
	"fmt"
	"time"

	_ "github.com/lib/pq"

	"github.com/solutions/afroverseas/internal/common/utils"
)

// NewPostgres 打开数据库连接池。
func NewPostgres(conf utils.PostgresConfig) (*sql.DB, error) {
	dsn := fmt.Sprintf("host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		conf.Host, conf.Port, conf.User, conf.Password, conf.Database, conf.SSLMode)
	db, err := sql.Open("postgres", dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to open postgres: %w", err)
	}
	db.SetMaxOpenConns(conf.MaxConnections)
	db.SetMaxIdleConns(conf.MaxIdle)
	db.SetConnMaxLifetime(5 * time.Minute)
	return db, nil
}

// EnsureSchema 启动时建表。线上迁移由外部工具负责，这里只保证表存在。
func EnsureSchema(db *sql.DB) error {
	statements := []string{
		`CREATE TABLE IF NOT EXISTS jobs (
			id BIGSERIAL PRIMARY KEY,
			job_code TEXT NOT NULL UNIQUE,
			title TEXT NOT NULL,
			company TEXT NOT NULL,
			location TEXT NOT NULL DEFAULT '',
			country TEXT NOT NULL DEFAULT '',
			job_type TEXT NOT NULL DEFAULT '',
			salary_range TEXT NOT NULL DEFAULT '',
			experience TEXT NOT NULL DEFAULT '',
			qualification TEXT NOT NULL DEFAULT '',
			description TEXT NOT NULL DEFAULT '',
			project_duration TEXT NOT NULL DEFAULT '',
			passport_req TEXT NOT NULL DEFAULT '',
			benefits TEXT NOT NULL DEFAULT '',
			interview_info TEXT NOT NULL DEFAULT '',
			posted_on TIMESTAMPTZ NOT NULL DEFAULT now(),
			is_active BOOLEAN NOT NULL DEFAULT TRUE
		)`,
		`CREATE TABLE IF NOT EXISTS candidates (
			id BIGSERIAL PRIMARY KEY,
			name TEXT NOT NULL,
			skills TEXT NOT NULL DEFAULT '',
			experience_years INTEGER NOT NULL DEFAULT 0,
			whatsapp TEXT NOT NULL DEFAULT '',
			cv_url TEXT NOT NULL DEFAULT '',
			video_url TEXT NOT NULL DEFAULT '',
			booking_count INTEGER NOT NULL DEFAULT 0,
			is_featured BOOLEAN NOT NULL DEFAULT FALSE
		)`,
		`CREATE TABLE IF NOT EXISTS leads (
			id BIGSERIAL PRIMARY KEY,
			ref_number TEXT NOT NULL UNIQUE,
			type TEXT NOT NULL,
			email TEXT NOT NULL DEFAULT '',
			whatsapp TEXT NOT NULL,
			service_type TEXT NOT NULL DEFAULT '',
			country TEXT NOT NULL DEFAULT '',
			sub_type TEXT NOT NULL DEFAULT '',
			appointment_date TEXT NOT NULL DEFAULT '',
			arrival_time TEXT NOT NULL DEFAULT '',
			address TEXT NOT NULL DEFAULT '',
			payment_method TEXT NOT NULL DEFAULT '',
			receipt_url TEXT NOT NULL DEFAULT '',
			status TEXT NOT NULL,
			candidate_ids TEXT NOT NULL DEFAULT '',
			message TEXT NOT NULL DEFAULT '',
			created_at TIMESTAMPTZ NOT NULL DEFAULT now()
		)`,
	}
	for _, statement := range statements {
		if _, err := db.Exec(statement); err != nil {
			return fmt.Errorf("failed to ensure schema: %w", err)
		}
	}
	return nil
}
