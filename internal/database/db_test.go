package database

import (
	"context"
	"fmt"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/go-sql-driver/mysql"
	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/at-ishikawa/jin/internal/config"
)

func TestDSN(t *testing.T) {
	base := config.DatabaseConfig{
		Host:     "localhost",
		Port:     3306,
		Database: "jin",
		Username: "user",
		Password: "secret",
	}

	tests := []struct {
		name       string
		modify     func(cfg *config.DatabaseConfig)
		wantAddr   string
		wantParams []string
		wantTLS    bool
	}{
		{
			name:       "defaults to utf8mb4",
			modify:     func(cfg *config.DatabaseConfig) {},
			wantAddr:   "localhost:3306",
			wantParams: []string{"charset=utf8mb4"},
		},
		{
			name: "params are merged and may override the charset",
			modify: func(cfg *config.DatabaseConfig) {
				cfg.Params = map[string]string{"charset": "utf8", "loc": "UTC"}
			},
			wantAddr:   "localhost:3306",
			wantParams: []string{"charset=utf8&", "loc=UTC"},
		},
		{
			name: "tls and custom host",
			modify: func(cfg *config.DatabaseConfig) {
				cfg.Host = "db.example.com"
				cfg.Port = 3307
				cfg.TLS = true
			},
			wantAddr:   "db.example.com:3307",
			wantParams: []string{"charset=utf8mb4"},
			wantTLS:    true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := base
			tt.modify(&cfg)

			dsn := DSN(cfg)
			got, err := mysql.ParseDSN(dsn)
			require.NoError(t, err)
			assert.Equal(t, "user", got.User)
			assert.Equal(t, "secret", got.Passwd)
			assert.Equal(t, "tcp", got.Net)
			assert.Equal(t, tt.wantAddr, got.Addr)
			assert.Equal(t, "jin", got.DBName)
			assert.True(t, got.ParseTime)
			assert.True(t, got.MultiStatements)
			for _, param := range tt.wantParams {
				assert.Contains(t, dsn, param)
			}
			assert.Equal(t, tt.wantTLS, got.TLS != nil)
		})
	}
}

func TestOpen(t *testing.T) {
	db, err := Open(config.DatabaseConfig{
		Host:            "localhost",
		Port:            3306,
		Database:        "jin",
		Username:        "user",
		MaxOpenConns:    4,
		ConnMaxLifetime: 60,
	})
	require.NoError(t, err)
	defer db.Close()

	assert.Equal(t, "mysql", db.DriverName())
	assert.Equal(t, 4, db.Stats().MaxOpenConnections)
}

func TestRunInTx(t *testing.T) {
	tests := []struct {
		name      string
		fn        func(ctx context.Context, tx *sqlx.Tx) error
		setupMock func(mock sqlmock.Sqlmock)
		wantErr   bool
		errMsg    string
	}{
		{
			name: "commits on success",
			fn: func(ctx context.Context, tx *sqlx.Tx) error {
				return nil
			},
			setupMock: func(mock sqlmock.Sqlmock) {
				mock.ExpectBegin()
				mock.ExpectCommit()
			},
		},
		{
			name: "rolls back on error",
			fn: func(ctx context.Context, tx *sqlx.Tx) error {
				return fmt.Errorf("something failed")
			},
			setupMock: func(mock sqlmock.Sqlmock) {
				mock.ExpectBegin()
				mock.ExpectRollback()
			},
			wantErr: true,
			errMsg:  "something failed",
		},
		{
			name: "begin error",
			fn: func(ctx context.Context, tx *sqlx.Tx) error {
				return nil
			},
			setupMock: func(mock sqlmock.Sqlmock) {
				mock.ExpectBegin().WillReturnError(fmt.Errorf("begin failed"))
			},
			wantErr: true,
			errMsg:  "begin transaction",
		},
		{
			name: "commit error",
			fn: func(ctx context.Context, tx *sqlx.Tx) error {
				return nil
			},
			setupMock: func(mock sqlmock.Sqlmock) {
				mock.ExpectBegin()
				mock.ExpectCommit().WillReturnError(fmt.Errorf("commit failed"))
			},
			wantErr: true,
			errMsg:  "commit transaction",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			db, mock, err := sqlmock.New()
			require.NoError(t, err)
			defer db.Close()

			sqlxDB := sqlx.NewDb(db, "mysql")
			tt.setupMock(mock)

			err = RunInTx(context.Background(), sqlxDB, tt.fn)
			if tt.wantErr {
				assert.Error(t, err)
				assert.Contains(t, err.Error(), tt.errMsg)
			} else {
				require.NoError(t, err)
			}
			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestBuildMultiRowInsert(t *testing.T) {
	tests := []struct {
		name    string
		table   string
		columns []string
		rows    int
		want    string
	}{
		{
			name:    "single row",
			table:   "vocabulary_cards",
			columns: []string{"set_type", "position"},
			rows:    1,
			want:    "INSERT INTO vocabulary_cards (set_type, position) VALUES (?, ?)",
		},
		{
			name:    "multiple rows",
			table:   "vocabulary_cards",
			columns: []string{"set_type", "position", "translation"},
			rows:    3,
			want:    "INSERT INTO vocabulary_cards (set_type, position, translation) VALUES (?, ?, ?), (?, ?, ?), (?, ?, ?)",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, BuildMultiRowInsert(tt.table, tt.columns, tt.rows))
		})
	}
}
