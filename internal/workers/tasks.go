// internal/workers/tasks.go
package workers

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/hibiken/asynq"

	"github.com/ammerola/phone-inventory/internal/core/domain"
)

const (
	TypeStockAlert        = "phone:stock_alert"
	TypeReportWarmup      = "report:warmup"
	TypePurgeDeleted      = "phone:purge_deleted"
	TypeInventorySnapshot = "inventory:snapshot"
)

// Queue names
const (
	QueueCritical = "critical"
	QueueDefault  = "default"
	QueueLow      = "low"
)

// StockAlertPayload is the payload of a stock alert task
type StockAlertPayload struct {
	PhoneID        string             `json:"phoneId"`
	Name           string             `json:"name"`
	Brand          string             `json:"brand"`
	Quantity       int                `json:"quantity"`
	Status         domain.StockStatus `json:"status"`
	PreviousStatus domain.StockStatus `json:"previousStatus,omitempty"`
	RaisedAt       time.Time          `json:"raisedAt"`
}

// Alert converts the payload back into a domain alert
func (p StockAlertPayload) Alert() domain.StockAlert {
	return domain.StockAlert{
		PhoneID:        domain.ID(p.PhoneID),
		Name:           p.Name,
		Brand:          p.Brand,
		Quantity:       p.Quantity,
		Status:         p.Status,
		PreviousStatus: p.PreviousStatus,
		RaisedAt:       p.RaisedAt,
	}
}

// NewStockAlertTask builds the task announcing alert
func NewStockAlertTask(alert domain.StockAlert) (*asynq.Task, error) {
	b, err := json.Marshal(StockAlertPayload{
		PhoneID:        alert.PhoneID.String(),
		Name:           alert.Name,
		Brand:          alert.Brand,
		Quantity:       alert.Quantity,
		Status:         alert.Status,
		PreviousStatus: alert.PreviousStatus,
		RaisedAt:       alert.RaisedAt,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to marshal stock alert payload: %w", err)
	}
	return asynq.NewTask(TypeStockAlert, b,
		asynq.Queue(QueueCritical),
		asynq.MaxRetry(3),
		asynq.Retention(24*time.Hour)), nil
}

// NewReportWarmupTask builds the task recomputing cached reports
func NewReportWarmupTask() *asynq.Task {
	return asynq.NewTask(TypeReportWarmup, nil,
		asynq.Queue(QueueDefault),
		asynq.MaxRetry(1),
		asynq.Unique(time.Minute))
}

// NewPurgeDeletedTask builds the task removing old soft deleted phones
func NewPurgeDeletedTask() *asynq.Task {
	return asynq.NewTask(TypePurgeDeleted, nil,
		asynq.Queue(QueueLow),
		asynq.MaxRetry(3),
		asynq.Unique(time.Hour))
}

// NewSnapshotTask builds the task uploading an inventory workbook
func NewSnapshotTask() *asynq.Task {
	return asynq.NewTask(TypeInventorySnapshot, nil,
		asynq.Queue(QueueLow),
		asynq.MaxRetry(3),
		asynq.Unique(time.Hour))
}
