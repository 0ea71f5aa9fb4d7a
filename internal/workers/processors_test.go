// internal/workers/processors_test.go
package workers_test

import (
	"context"
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/hibiken/asynq"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/ammerola/phone-inventory/internal/adapters/memory"
	redis_a "github.com/ammerola/phone-inventory/internal/adapters/redis_adapter"
	"github.com/ammerola/phone-inventory/internal/adapters/storage"
	"github.com/ammerola/phone-inventory/internal/core/domain"
	"github.com/ammerola/phone-inventory/internal/core/services"
	"github.com/ammerola/phone-inventory/internal/workers"
	"github.com/ammerola/phone-inventory/test/helpers"
	"github.com/ammerola/phone-inventory/test/mocks"
)

func newCache(t *testing.T) *redis_a.Cache {
	t.Helper()
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { client.Close() })
	return redis_a.NewCache(client, time.Minute, helpers.TestLogger())
}

func TestStockAlertTask(t *testing.T) {
	at := time.Date(2024, 5, 1, 10, 0, 0, 0, time.UTC)
	alert := domain.StockAlert{
		PhoneID:        "65a1b2c3d4e5f60718293a4b",
		Name:           "iPhone 15",
		Brand:          "Apple",
		Quantity:       2,
		Status:         domain.StatusLowStock,
		PreviousStatus: domain.StatusInStock,
		RaisedAt:       at,
	}

	task, err := workers.NewStockAlertTask(alert)
	require.NoError(t, err)
	assert.Equal(t, workers.TypeStockAlert, task.Type())

	var payload map[string]interface{}
	require.NoError(t, json.Unmarshal(task.Payload(), &payload))
	assert.Equal(t, "65a1b2c3d4e5f60718293a4b", payload["phoneId"])
	assert.Equal(t, "low_stock", payload["status"])
	assert.Equal(t, "in_stock", payload["previousStatus"])

	var decoded workers.StockAlertPayload
	require.NoError(t, json.Unmarshal(task.Payload(), &decoded))
	assert.Equal(t, alert, decoded.Alert())
}

func TestStockAlertProcessor_ProcessStockAlert(t *testing.T) {
	ctx := context.Background()
	cache := newCache(t)
	processor := workers.NewStockAlertProcessor(cache, helpers.TestLogger())

	for i := 0; i < workers.MaxStockAlerts+5; i++ {
		task, err := workers.NewStockAlertTask(domain.StockAlert{
			PhoneID:  domain.NewID(),
			Quantity: i,
			Status:   domain.StatusLowStock,
		})
		require.NoError(t, err)
		require.NoError(t, processor.ProcessStockAlert(ctx, task))
	}

	var alerts []domain.StockAlert
	require.NoError(t, cache.Range(ctx, redis_a.StockAlertsKey, 1000, &alerts))
	require.Len(t, alerts, workers.MaxStockAlerts)
	assert.Equal(t, workers.MaxStockAlerts+4, alerts[0].Quantity, "newest first")

	err := processor.ProcessStockAlert(ctx, asynq.NewTask(workers.TypeStockAlert, []byte("{")))
	require.Error(t, err)
	assert.ErrorIs(t, err, asynq.SkipRetry)
}

func TestStockAlertProcessor_WithoutCache(t *testing.T) {
	processor := workers.NewStockAlertProcessor(nil, helpers.TestLogger())
	task, err := workers.NewStockAlertTask(domain.StockAlert{PhoneID: domain.NewID(), Status: domain.StatusOutOfStock})
	require.NoError(t, err)
	assert.NoError(t, processor.ProcessStockAlert(context.Background(), task))
}

func TestReportWarmupProcessor_WarmupReports(t *testing.T) {
	tests := []struct {
		name    string
		err     error
		wantErr bool
	}{
		{name: "warms_up", err: nil},
		{name: "propagates_failure", err: errors.New("redis down"), wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			reports := mocks.NewMockReportService(ctrl)
			reports.EXPECT().Warmup(gomock.Any()).Return(tt.err)

			processor := workers.NewReportWarmupProcessor(reports, helpers.TestLogger())
			err := processor.WarmupReports(context.Background(), workers.NewReportWarmupTask())
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestCleanupProcessor_PurgeDeleted(t *testing.T) {
	ctx := context.Background()
	store := memory.NewStore()
	svc := services.NewPhoneService(store, helpers.TestLogger())

	old, err := store.Insert(ctx, helpers.CreateTestPhone())
	require.NoError(t, err)
	recent, err := store.Insert(ctx, helpers.CreateTestPhone())
	require.NoError(t, err)

	_, err = store.SoftDelete(ctx, old, time.Now().UTC().Add(-48*time.Hour))
	require.NoError(t, err)
	_, err = store.SoftDelete(ctx, recent, time.Now().UTC())
	require.NoError(t, err)

	disabled := workers.NewCleanupProcessor(svc, 0, helpers.TestLogger())
	require.NoError(t, disabled.PurgeDeleted(ctx, workers.NewPurgeDeletedTask()))
	got, err := store.FindOne(ctx, old, domain.IncludeDeleted)
	require.NoError(t, err)
	assert.NotNil(t, got, "zero retention keeps records")

	processor := workers.NewCleanupProcessor(svc, 24*time.Hour, helpers.TestLogger())
	require.NoError(t, processor.PurgeDeleted(ctx, workers.NewPurgeDeletedTask()))

	got, err = store.FindOne(ctx, old, domain.IncludeDeleted)
	require.NoError(t, err)
	assert.Nil(t, got)

	got, err = store.FindOne(ctx, recent, domain.IncludeDeleted)
	require.NoError(t, err)
	assert.NotNil(t, got)
}

func TestSnapshotProcessor_TakeSnapshot(t *testing.T) {
	ctx := context.Background()
	store := memory.NewStore()
	_, err := store.Insert(ctx, helpers.CreateTestPhone())
	require.NoError(t, err)

	exporter := services.NewExportService(store, store, helpers.TestLogger())
	dir := t.TempDir()

	processor := workers.NewSnapshotProcessor(exporter, storage.NewLocalStorage(dir, helpers.TestLogger()), helpers.TestLogger())
	require.NoError(t, processor.TakeSnapshot(ctx, workers.NewSnapshotTask()))

	matches, err := filepath.Glob(filepath.Join(dir, "snapshots", "*", "*", "*", "inventory-*.xlsx"))
	require.NoError(t, err)
	require.Len(t, matches, 1)

	info, err := os.Stat(matches[0])
	require.NoError(t, err)
	assert.Positive(t, info.Size())
}

func TestSnapshotProcessor_Failures(t *testing.T) {
	ctx := context.Background()

	t.Run("disabled_without_storage", func(t *testing.T) {
		processor := workers.NewSnapshotProcessor(nil, nil, helpers.TestLogger())
		assert.NoError(t, processor.TakeSnapshot(ctx, workers.NewSnapshotTask()))
	})

	t.Run("upload_failure", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		objects := mocks.NewMockObjectStorage(ctrl)
		objects.EXPECT().
			Upload(gomock.Any(), gomock.Cond(func(key any) bool {
				return strings.HasPrefix(key.(string), storage.SnapshotPrefix+"/")
			}), gomock.Any(), gomock.Any()).
			Return("", errors.New("access denied"))

		store := memory.NewStore()
		exporter := services.NewExportService(store, store, helpers.TestLogger())
		processor := workers.NewSnapshotProcessor(exporter, objects, helpers.TestLogger())

		err := processor.TakeSnapshot(ctx, workers.NewSnapshotTask())
		assert.ErrorContains(t, err, "access denied")
	})
}
