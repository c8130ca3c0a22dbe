package history

import (
	"context"
	"fmt"
	"strings"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"facility-reservation-backend/internal/db"
	"facility-reservation-backend/internal/model"
	"facility-reservation-backend/internal/store"
)

func newTestStore(t *testing.T) store.Store {
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", strings.ReplaceAll(t.Name(), "/", "_"))
	gormDB, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	sqlDB, err := gormDB.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { sqlDB.Close() })

	require.NoError(t, db.Migrate(gormDB))
	return store.NewGormStore(gormDB, 5*time.Second)
}

func TestPoolRecord(t *testing.T) {
	pool := NewPool(1, newTestStore(t))

	// Workers not started: the entry should sit in the jobs channel.
	pool.Record(model.HistoryEntry{ReservationID: "res-1", ActionType: model.ActionCreated})

	select {
	case entry := <-pool.Jobs():
		assert.Equal(t, "res-1", entry.ReservationID)
		assert.False(t, entry.CreatedAt.IsZero())
	case <-time.After(1 * time.Second):
		t.Fatal("timed out waiting for entry to be enqueued")
	}
}

func TestPoolWorkerWrites(t *testing.T) {
	s := newTestStore(t)
	pool := NewPool(2, s)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	pool.Start(ctx)

	pool.Record(model.HistoryEntry{
		UserID:        "user-a",
		ReservationID: "res-1",
		ActionType:    model.ActionCancelled,
		ChangeSet:     map[string]string{"status": "cancelled"},
	})

	// The append is asynchronous; poll until the row lands.
	deadline := time.After(2 * time.Second)
	for {
		var rows []model.HistoryEntry
		require.NoError(t, s.DB().Find(&rows).Error)
		if len(rows) == 1 {
			assert.Equal(t, model.ActionCancelled, rows[0].ActionType)
			assert.NotEmpty(t, rows[0].ID)
			return
		}
		select {
		case <-deadline:
			t.Fatal("timed out waiting for history entry to be written")
		case <-time.After(10 * time.Millisecond):
		}
	}
}

func TestPoolRecordNeverBlocks(t *testing.T) {
	// No workers running and a full buffer: Record must drop, not block.
	pool := NewPool(1, newTestStore(t))

	done := make(chan struct{})
	go func() {
		for i := 0; i < 20; i++ {
			pool.Record(model.HistoryEntry{ReservationID: fmt.Sprintf("res-%d", i)})
		}
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(1 * time.Second):
		t.Fatal("Record blocked on a full buffer")
	}
}

func TestSyncSwallowsStorageFailure(t *testing.T) {
	sqlDB, mock, err := sqlmock.New()
	require.NoError(t, err)

	gormDB, err := gorm.Open(postgres.New(postgres.Config{Conn: sqlDB}), &gorm.Config{})
	require.NoError(t, err)

	mock.ExpectBegin()
	mock.ExpectQuery(`INSERT INTO "history_entries"`).
		WillReturnError(fmt.Errorf("connection refused"))
	mock.ExpectRollback()

	rec := &Sync{Store: store.NewGormStore(gormDB, time.Second)}

	// Must not panic and must not surface the failure.
	rec.Record(model.HistoryEntry{ReservationID: "res-1", ActionType: model.ActionCreated})
}
