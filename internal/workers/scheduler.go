// internal/workers/scheduler.go
package workers

import (
	"fmt"
	"log/slog"
	"time"

	"github.com/hibiken/asynq"
)

// Schedule controls which periodic tasks are registered
type Schedule struct {
	ReportWarmupInterval time.Duration
	PurgeCron            string
	SnapshotCron         string
	PurgeEnabled         bool
	SnapshotEnabled      bool
}

// PeriodicTask pairs a cron spec with the task it enqueues
type PeriodicTask struct {
	Spec string
	Task *asynq.Task
}

// PeriodicTasks lists the tasks enabled by s
func (s Schedule) PeriodicTasks() []PeriodicTask {
	var tasks []PeriodicTask

	if s.ReportWarmupInterval > 0 {
		tasks = append(tasks, PeriodicTask{
			Spec: fmt.Sprintf("@every %s", s.ReportWarmupInterval),
			Task: NewReportWarmupTask(),
		})
	}
	if s.PurgeEnabled && s.PurgeCron != "" {
		tasks = append(tasks, PeriodicTask{Spec: s.PurgeCron, Task: NewPurgeDeletedTask()})
	}
	if s.SnapshotEnabled && s.SnapshotCron != "" {
		tasks = append(tasks, PeriodicTask{Spec: s.SnapshotCron, Task: NewSnapshotTask()})
	}

	return tasks
}

// Registrar is the subset of asynq.Scheduler used to register tasks
type Registrar interface {
	Register(cronspec string, task *asynq.Task, opts ...asynq.Option) (string, error)
}

// RegisterPeriodicTasks registers every enabled task with the scheduler
func RegisterPeriodicTasks(r Registrar, s Schedule, logger *slog.Logger) error {
	for _, pt := range s.PeriodicTasks() {
		entryID, err := r.Register(pt.Spec, pt.Task)
		if err != nil {
			return fmt.Errorf("failed to register %s: %w", pt.Task.Type(), err)
		}
		logger.Info("periodic task registered",
			slog.String("type", pt.Task.Type()),
			slog.String("spec", pt.Spec),
			slog.String("entry_id", entryID))
	}
	return nil
}

// NewServeMux routes every task type to its processor
func NewServeMux(
	alerts *StockAlertProcessor,
	warmup *ReportWarmupProcessor,
	cleanup *CleanupProcessor,
	snapshot *SnapshotProcessor,
) *asynq.ServeMux {
	mux := asynq.NewServeMux()
	mux.HandleFunc(TypeStockAlert, alerts.ProcessStockAlert)
	mux.HandleFunc(TypeReportWarmup, warmup.WarmupReports)
	mux.HandleFunc(TypePurgeDeleted, cleanup.PurgeDeleted)
	mux.HandleFunc(TypeInventorySnapshot, snapshot.TakeSnapshot)
	return mux
}
