package background

import (
	"context"
	"time"

	"github.com/bitmark-inc/cityworks-api/schema"
)

const (
	DefaultWeeklyReportSpec = "0 6 * * MON"
	DefaultOverdueCheckSpec = "0 1 * * *"

	week = 7 * 24 * time.Hour
)

type ScheduleConfig struct {
	WeeklyReport string
	OverdueCheck string
}

func (c ScheduleConfig) withDefaults() ScheduleConfig {
	if c.WeeklyReport == "" {
		c.WeeklyReport = DefaultWeeklyReportSpec
	}
	if c.OverdueCheck == "" {
		c.OverdueCheck = DefaultOverdueCheckSpec
	}
	return c
}

// Schedule adds the periodic jobs. They start with Run.
func (m *BackgroundManager) Schedule(cfg ScheduleConfig) error {
	cfg = cfg.withDefaults()

	if _, err := m.cron.AddFunc(cfg.WeeklyReport, func() {
		ctx, cancel := context.WithTimeout(context.Background(), jobTimeout)
		defer cancel()

		r, err := m.CreateScheduledReport(ctx, schema.ReportInfrastructure, week)
		if err != nil {
			log.WithError(err).Error("weekly infrastructure report failed")
			return
		}
		log.WithField("report_id", r.ID.Hex()).Info("weekly infrastructure report created")
	}); err != nil {
		return err
	}

	if _, err := m.cron.AddFunc(cfg.OverdueCheck, func() {
		if err := m.LogOverdueTasks(); err != nil {
			log.WithError(err).Error("overdue task check failed")
		}
	}); err != nil {
		return err
	}

	return nil
}
