package background

import (
	"errors"
	"time"

	"github.com/RichardKnop/machinery/v1"
	"github.com/robfig/cron/v3"
	"github.com/sirupsen/logrus"

	"github.com/bitmark-inc/cityworks-api/external/objectstore"
	"github.com/bitmark-inc/cityworks-api/report"
	"github.com/bitmark-inc/cityworks-api/store"
)

var log = logrus.WithField("prefix", "background")

// BackgroundManager runs the queued report jobs and the scheduled jobs
type BackgroundManager struct {
	store   store.MongoStore
	reports *report.Generator

	taskServer *machinery.Server
	queue      *Queue

	worker *machinery.Worker
	cron   *cron.Cron

	now func() time.Time
}

// New returns a manager. Without a task server, jobs run in the calling
// goroutine.
func New(mongoStore store.MongoStore, objects objectstore.ObjectStore, taskServer *machinery.Server) *BackgroundManager {
	m := &BackgroundManager{
		store:      mongoStore,
		reports:    report.NewGenerator(mongoStore, objects),
		taskServer: taskServer,
		cron: cron.New(
			cron.WithLocation(time.UTC),
			cron.WithLogger(cron.VerbosePrintfLogger(log)),
			cron.WithChain(cron.Recover(cron.PrintfLogger(log))),
		),
		now: func() time.Time { return time.Now().UTC() },
	}
	if taskServer != nil {
		m.queue = NewQueue(taskServer)
	}
	return m
}

func (m *BackgroundManager) RegisterTask(name string, taskFunc interface{}) error {
	return m.taskServer.RegisterTask(name, taskFunc)
}

// RegisterTasks registers every job the worker executes
func (m *BackgroundManager) RegisterTasks() error {
	if err := m.RegisterTask(TaskGenerateReport, m.GenerateReport); err != nil {
		return err
	}
	return m.RegisterTask(TaskLogOverdueTasks, m.LogOverdueTasks)
}

// Run starts the scheduler and spawns workers to execute background jobs.
// It blocks until the worker quits.
func (m *BackgroundManager) Run(concurrency int) error {
	if m.worker != nil {
		return errors.New("background worker has started")
	}
	if concurrency <= 0 {
		concurrency = 5
	}

	m.cron.Start()
	m.worker = m.taskServer.NewWorker("cityworks-worker", concurrency)
	return m.worker.Launch()
}

// Stop waits for running scheduled jobs and quits the worker
func (m *BackgroundManager) Stop() {
	<-m.cron.Stop().Done()
	if m.worker != nil {
		m.worker.Quit()
	}
}
