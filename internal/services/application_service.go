package services

import (
	"context"

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

type ApplicationService struct {
	Provider *database.Provider
	Logger   *zap.Logger
	Tracer   trace.Tracer
}

func NewApplicationService(provider *database.Provider, logger *zap.Logger, tracer trace.Tracer) *ApplicationService {
	return &ApplicationService{
		Provider: provider,
		Logger:   logger,
		Tracer:   tracer,
	}
}

// SubmitApplication records a candidate applying to a job with status
// Applied. Whether the job and candidate exist is left to the foreign keys.
func (s *ApplicationService) SubmitApplication(ctx context.Context, req *dtos.ApplicationRequest) (id uint, err error) {
	ctx, span := s.Tracer.Start(ctx, "ApplicationService.SubmitApplication")
	defer func() { telemetry.RecordError(span, err); span.End() }()

	conn, err := s.Provider.Acquire(ctx)
	if err != nil {
		return 0, err
	}
	defer conn.Release()

	app := &models.Application{
		JobID:       uint(req.JobID),
		CandidateID: uint(req.CandidateID),
		Status:      models.ApplicationStatusApplied,
	}
	err = conn.DB.Transaction(func(tx *gorm.DB) error {
		return tx.Omit(clause.Associations).Create(app).Error
	})
	if err != nil {
		s.Logger.Warn("Application insert rolled back",
			zap.Uint("job_id", app.JobID),
			zap.Uint("candidate_id", app.CandidateID),
			zap.Error(err),
		)
		if database.IsForeignKeyViolation(err) {
			return 0, apperrors.InvalidReference("Referenced job or candidate does not exist", err)
		}
		return 0, apperrors.Execution(err)
	}

	s.Logger.Info("Application submitted",
		zap.Uint("application_id", app.ID),
		zap.Uint("job_id", app.JobID),
		zap.Uint("candidate_id", app.CandidateID),
	)
	return app.ID, nil
}

// ListApplications joins every application with its candidate and job, newest
// first. Inner joins: an application whose candidate or job is gone is not listed.
func (s *ApplicationService) ListApplications(ctx context.Context) (details []models.ApplicationDetail, err error) {
	ctx, span := s.Tracer.Start(ctx, "ApplicationService.ListApplications")
	defer func() { telemetry.RecordError(span, err); span.End() }()

	conn, err := s.Provider.Acquire(ctx)
	if err != nil {
		return nil, err
	}
	defer conn.Release()

	var apps []models.Application
	err = conn.DB.
		InnerJoins("Candidate").
		InnerJoins("Job").
		Order(clause.OrderBy{Columns: []clause.OrderByColumn{
			{Column: clause.Column{Table: clause.CurrentTable, Name: "created_at"}, Desc: true},
			{Column: clause.Column{Table: clause.CurrentTable, Name: "application_id"}, Desc: true},
		}}).
		Find(&apps).Error
	if err != nil {
		return nil, apperrors.Execution(err)
	}

	details = make([]models.ApplicationDetail, 0, len(apps))
	for _, a := range apps {
		details = append(details, models.NewApplicationDetail(a))
	}
	span.SetAttributes(telemetry.Int("applications.count", len(details)))
	return details, nil
}
