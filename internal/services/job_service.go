package services

import (
	"context"
	"errors"

	"go.opentelemetry.io/otel/trace"
	"go.uber.org/zap"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/justsurfingit/ats-api/internal/apperrors"
	"github.com/justsurfingit/ats-api/internal/database"
	"github.com/justsurfingit/ats-api/internal/dtos"
	"github.com/justsurfingit/ats-api/internal/models"
	"github.com/justsurfingit/ats-api/internal/telemetry"
)

type JobService struct {
	Provider *database.Provider
	Logger   *zap.Logger
	Tracer   trace.Tracer
}

func NewJobService(provider *database.Provider, logger *zap.Logger, tracer trace.Tracer) *JobService {
	return &JobService{
		Provider: provider,
		Logger:   logger,
		Tracer:   tracer,
	}
}

// ListJobs returns every row of Jobs, empty slice when there are none.
func (s *JobService) ListJobs(ctx context.Context) (jobs []models.Job, err error) {
	ctx, span := s.Tracer.Start(ctx, "JobService.ListJobs")
	defer func() { telemetry.RecordError(span, err); span.End() }()

	conn, err := s.Provider.Acquire(ctx)
	if err != nil {
		return nil, err
	}
	defer conn.Release()

	jobs = []models.Job{}
	if err := conn.DB.Find(&jobs).Error; err != nil {
		return nil, apperrors.Execution(err)
	}
	span.SetAttributes(telemetry.Int("jobs.count", len(jobs)))
	return jobs, nil
}

func (s *JobService) GetJob(ctx context.Context, id uint) (job *models.Job, err error) {
	ctx, span := s.Tracer.Start(ctx, "JobService.GetJob")
	defer func() { telemetry.RecordError(span, err); span.End() }()
	span.SetAttributes(telemetry.Int("job.id", int(id)))

	conn, err := s.Provider.Acquire(ctx)
	if err != nil {
		return nil, err
	}
	defer conn.Release()

	job = &models.Job{}
	if err := conn.DB.Where("job_id = ?", id).Take(job).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.NotFound("Job not found", err)
		}
		return nil, apperrors.Execution(err)
	}
	return job, nil
}

// CreateJob inserts one job in its own transaction. Status is left to the
// column default.
func (s *JobService) CreateJob(ctx context.Context, req *dtos.JobCreationRequest) (id uint, err error) {
	ctx, span := s.Tracer.Start(ctx, "JobService.CreateJob")
	defer func() { telemetry.RecordError(span, err); span.End() }()

	conn, err := s.Provider.Acquire(ctx)
	if err != nil {
		return 0, err
	}
	defer conn.Release()

	job := &models.Job{
		RecruiterID: uint(req.RecruiterID),
		Title:       string(req.Title),
		Department:  string(req.Department),
		Location:    string(req.Location),
	}
	span.SetAttributes(
		telemetry.String("job.title", job.Title),
		telemetry.Int("job.recruiter_id", int(job.RecruiterID)),
	)
	err = conn.DB.Transaction(func(tx *gorm.DB) error {
		return tx.Omit(clause.Associations).Create(job).Error
	})
	if err != nil {
		s.Logger.Warn("Job insert rolled back",
			zap.Uint("recruiter_id", job.RecruiterID),
			zap.Error(err),
		)
		if database.IsForeignKeyViolation(err) {
			return 0, apperrors.InvalidReference("Referenced recruiter does not exist", err)
		}
		return 0, apperrors.Execution(err)
	}

	s.Logger.Info("Job created", zap.Uint("job_id", job.ID), zap.Uint("recruiter_id", job.RecruiterID))
	return job.ID, nil
}
