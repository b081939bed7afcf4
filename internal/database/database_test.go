package database

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/vocalog/diary-api/internal/models"
)

func TestInitialize(t *testing.T) {
	tests := []struct {
		name    string
		dbPath  string
		wantErr bool
	}{
		{
			name:    "successful connection with in-memory database",
			dbPath:  ":memory:",
			wantErr: false,
		},
		{
			name:    "successful connection with file database",
			dbPath:  filepath.Join(t.TempDir(), "test.db"),
			wantErr: false,
		},
		{
			name:    "empty database path falls back to in-memory",
			dbPath:  "",
			wantErr: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			conn, err := Initialize(tt.dbPath, false)

			if tt.wantErr {
				assert.Error(t, err)
				return
			}

			assert.NoError(t, err)
			assert.NotNil(t, conn)
			assert.NotNil(t, conn.DB)

			if conn != nil {
				conn.Close()
			}
		})
	}
}

func TestBuildDSN(t *testing.T) {
	tests := []struct {
		name   string
		dbPath string
		want   string
	}{
		{
			name:   "file path gains pragmas",
			dbPath: "data/diary.db",
			want:   "data/diary.db?_busy_timeout=5000&_journal_mode=WAL&_foreign_keys=on",
		},
		{
			name:   "in-memory path untouched",
			dbPath: ":memory:",
			want:   ":memory:",
		},
		{
			name:   "explicit query string untouched",
			dbPath: "data/diary.db?_journal_mode=DELETE",
			want:   "data/diary.db?_journal_mode=DELETE",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, buildDSN(tt.dbPath))
		})
	}
}

func TestDB_Close(t *testing.T) {
	conn, err := Initialize(":memory:", false)
	require.NoError(t, err)
	require.NotNil(t, conn)

	err = conn.Close()
	assert.NoError(t, err)

	err = conn.HealthCheck()
	assert.Error(t, err, "HealthCheck should fail after database is closed")
}

func TestDB_HealthCheck(t *testing.T) {
	tests := []struct {
		name      string
		setupConn func() (*DB, func())
		wantErr   bool
	}{
		{
			name: "healthy connection",
			setupConn: func() (*DB, func()) {
				conn, _ := Initialize(":memory:", false)
				return conn, func() {
					if conn != nil {
						conn.Close()
					}
				}
			},
			wantErr: false,
		},
		{
			name: "closed connection",
			setupConn: func() (*DB, func()) {
				conn, _ := Initialize(":memory:", false)
				conn.Close()
				return conn, func() {}
			},
			wantErr: true,
		},
		{
			name: "nil connection",
			setupConn: func() (*DB, func()) {
				return nil, func() {}
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			conn, cleanup := tt.setupConn()
			defer cleanup()

			err := conn.HealthCheck()

			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestDB_AutoMigrateAllModels(t *testing.T) {
	conn, err := Initialize(":memory:", false)
	require.NoError(t, err)
	require.NotNil(t, conn)
	defer conn.Close()

	err = conn.AutoMigrate(models.AllModels()...)
	require.NoError(t, err)

	for _, table := range []string{"episodes", "shards", "published_shards", "profiles", "invitations", "vote_events"} {
		var count int64
		err := conn.DB.Raw("SELECT COUNT(*) FROM sqlite_master WHERE type='table' AND name=?", table).Scan(&count).Error
		assert.NoError(t, err)
		assert.Equal(t, int64(1), count, "table %s should exist", table)
	}
}

func TestDB_Transaction(t *testing.T) {
	conn, err := Initialize(":memory:", false)
	require.NoError(t, err)
	require.NotNil(t, conn)
	defer conn.Close()

	err = conn.AutoMigrate(models.AllModels()...)
	require.NoError(t, err)

	t.Run("successful transaction", func(t *testing.T) {
		err := conn.DB.Transaction(func(tx *gorm.DB) error {
			for i := 0; i < 3; i++ {
				shard := models.Shard{Source: models.ShardSourceMic}
				if err := tx.Create(&shard).Error; err != nil {
					return err
				}
			}
			return nil
		})

		assert.NoError(t, err)

		var count int64
		conn.DB.Model(&models.Shard{}).Count(&count)
		assert.Equal(t, int64(3), count)
	})

	t.Run("failed transaction rolls back", func(t *testing.T) {
		var countBefore int64
		conn.DB.Model(&models.Shard{}).Count(&countBefore)

		err := conn.DB.Transaction(func(tx *gorm.DB) error {
			shard := models.Shard{Source: models.ShardSourceMic}
			if err := tx.Create(&shard).Error; err != nil {
				return err
			}
			return gorm.ErrInvalidTransaction
		})

		assert.Error(t, err)

		var countAfter int64
		conn.DB.Model(&models.Shard{}).Count(&countAfter)
		assert.Equal(t, countBefore, countAfter)
	})
}
