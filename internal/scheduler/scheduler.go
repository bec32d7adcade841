package scheduler

import (
	"context"
	"os"
	"path/filepath"
	"time"

	"github.com/robfig/cron/v3"
	"go.uber.org/zap"

	"github.com/sarvasvaa/dairyops/internal/config"
	"github.com/sarvasvaa/dairyops/internal/domain/models"
	"github.com/sarvasvaa/dairyops/internal/service/reportgen"
)

// ReportSource fetches the record sets backing a scheduled report.
type ReportSource interface {
	ReportData(ctx context.Context, period models.Period) (*models.ReportData, error)
}

// Scheduler manages scheduled tasks.
type Scheduler struct {
	cron   *cron.Cron
	source ReportSource
	cfg    config.ReportingConfig
	loc    *time.Location
	logger *zap.Logger
}

// NewScheduler creates a new scheduler instance.
func NewScheduler(cfg config.ReportingConfig, source ReportSource, loc *time.Location, logger *zap.Logger) *Scheduler {
	if logger == nil {
		logger = zap.NewNop()
	}
	if loc == nil {
		loc = time.Local
	}

	return &Scheduler{
		cron:   cron.New(cron.WithLocation(loc)),
		source: source,
		cfg:    cfg,
		loc:    loc,
		logger: logger,
	}
}

// Start registers the weekly report job and starts the cron loop.
func (s *Scheduler) Start() {
	s.logger.Info("starting scheduler", zap.String("schedule", s.cfg.CronSchedule))

	if _, err := s.cron.AddFunc(s.cfg.CronSchedule, s.generateWeeklyReport); err != nil {
		s.logger.Error("failed to schedule weekly report", zap.Error(err))
	}

	s.cron.Start()
}

// Stop stops the scheduler.
func (s *Scheduler) Stop() {
	s.logger.Info("stopping scheduler")
	s.cron.Stop()
}

func (s *Scheduler) generateWeeklyReport() {
	s.logger.Info("generating weekly report")
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
	defer cancel()

	period := models.Period{
		Kind: models.PeriodWeek,
		Date: time.Now().In(s.loc).Format("2006-01-02"),
	}

	data, err := s.source.ReportData(ctx, period)
	if err != nil {
		s.logger.Error("failed to fetch weekly report data", zap.Error(err))
		return
	}

	doc, err := reportgen.Assemble(data, period)
	if err != nil {
		s.logger.Error("failed to assemble weekly report", zap.Error(err))
		return
	}

	pdf, err := reportgen.Render(doc)
	if err != nil {
		s.logger.Error("failed to render weekly report", zap.Error(err))
		return
	}

	if err := os.MkdirAll(s.cfg.OutputDir, 0o755); err != nil {
		s.logger.Error("failed to create report directory", zap.Error(err))
		return
	}

	path := filepath.Join(s.cfg.OutputDir, reportgen.ArchiveName(period))
	if err := os.WriteFile(path, pdf, 0o644); err != nil {
		s.logger.Error("failed to write weekly report", zap.Error(err))
		return
	}

	s.logger.Info("weekly report written", zap.String("path", path))
}
