package services_test

import (
	"context"
	"testing"
	"time"

	"go.opentelemetry.io/otel/codes"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.opentelemetry.io/otel/sdk/trace/tracetest"
	"go.uber.org/zap"
	"gorm.io/gorm/clause"

	"github.com/justsurfingit/ats-api/internal/apperrors"
	"github.com/justsurfingit/ats-api/internal/database"
	"github.com/justsurfingit/ats-api/internal/database/dbtest"
	"github.com/justsurfingit/ats-api/internal/dtos"
	"github.com/justsurfingit/ats-api/internal/models"
	"github.com/justsurfingit/ats-api/internal/services"
)

func newServices(provider *database.Provider) (*services.JobService, *services.ApplicationService, *tracetest.SpanRecorder) {
	recorder := tracetest.NewSpanRecorder()
	tracer := sdktrace.NewTracerProvider(sdktrace.WithSpanProcessor(recorder)).Tracer("test")
	logger := zap.NewNop()
	return services.NewJobService(provider, logger, tracer),
		services.NewApplicationService(provider, logger, tracer),
		recorder
}

func TestCreateJobDefaultsToOpen(t *testing.T) {
	_, provider := dbtest.OpenSeeded(t)
	jobs, _, _ := newServices(provider)
	ctx := context.Background()

	before := time.Now().Add(-time.Minute)
	id, err := jobs.CreateJob(ctx, &dtos.JobCreationRequest{
		Title: "QA Engineer", Department: "Engineering", Location: "Remote", RecruiterID: 2,
	})
	if err != nil {
		t.Fatalf("CreateJob() error = %v", err)
	}

	job, err := jobs.GetJob(ctx, id)
	if err != nil {
		t.Fatalf("GetJob() error = %v", err)
	}
	if job.Status != models.JobStatusOpen {
		t.Errorf("status = %q, want Open", job.Status)
	}
	if job.RecruiterID != 2 {
		t.Errorf("recruiter_id = %d, want 2", job.RecruiterID)
	}
	if job.CreatedAt.Before(before) {
		t.Errorf("created_at %v was not set at insert", job.CreatedAt)
	}
}

func TestGetJobNotFound(t *testing.T) {
	_, provider := dbtest.OpenSeeded(t)
	jobs, _, _ := newServices(provider)

	_, err := jobs.GetJob(context.Background(), 404)
	if !apperrors.Is(err, apperrors.KindNotFound) {
		t.Fatalf("err = %v, want NotFound", err)
	}
}

func TestSeededPausedJobIsListed(t *testing.T) {
	_, provider := dbtest.OpenSeeded(t)
	jobs, _, _ := newServices(provider)

	list, err := jobs.ListJobs(context.Background())
	if err != nil {
		t.Fatal(err)
	}
	paused := 0
	for _, j := range list {
		if j.Status == models.JobStatusPaused {
			paused++
		}
	}
	if paused != 1 {
		t.Errorf("expected exactly one Paused job, got %d", paused)
	}
}

func TestInvalidReferences(t *testing.T) {
	db, provider := dbtest.OpenSeeded(t)
	jobs, apps, _ := newServices(provider)
	ctx := context.Background()

	_, err := jobs.CreateJob(ctx, &dtos.JobCreationRequest{Title: "T", Department: "D", Location: "L", RecruiterID: 99})
	if !apperrors.Is(err, apperrors.KindInvalidReference) {
		t.Errorf("CreateJob err = %v, want InvalidReference", err)
	}

	_, err = apps.SubmitApplication(ctx, &dtos.ApplicationRequest{CandidateID: 99, JobID: 1})
	if !apperrors.Is(err, apperrors.KindInvalidReference) {
		t.Errorf("SubmitApplication err = %v, want InvalidReference", err)
	}

	var count int64
	db.Model(&models.Application{}).Count(&count)
	if count != 0 {
		t.Errorf("rolled back insert left %d rows", count)
	}
}

func TestSubmitApplicationStatusApplied(t *testing.T) {
	_, provider := dbtest.OpenSeeded(t)
	_, apps, _ := newServices(provider)
	ctx := context.Background()

	id, err := apps.SubmitApplication(ctx, &dtos.ApplicationRequest{CandidateID: 5, JobID: 4})
	if err != nil {
		t.Fatalf("SubmitApplication() error = %v", err)
	}

	list, err := apps.ListApplications(ctx)
	if err != nil {
		t.Fatal(err)
	}
	if len(list) != 1 || list[0].ApplicationID != id {
		t.Fatalf("unexpected applications %+v", list)
	}
	got := list[0]
	if got.Status != models.ApplicationStatusApplied || got.CandidateName != "Eva Taylor" || got.JobTitle != "DevOps Engineer" {
		t.Errorf("unexpected detail %+v", got)
	}
}

func TestConnectivityFailure(t *testing.T) {
	jobs, apps, recorder := newServices(dbtest.ClosedProvider(t))
	ctx := context.Background()

	_, err := jobs.ListJobs(ctx)
	if !apperrors.Is(err, apperrors.KindConnectivity) {
		t.Errorf("ListJobs err = %v, want Connectivity", err)
	}
	_, err = apps.ListApplications(ctx)
	if !apperrors.Is(err, apperrors.KindConnectivity) {
		t.Errorf("ListApplications err = %v, want Connectivity", err)
	}

	for _, span := range recorder.Ended() {
		if span.Status().Code != codes.Error {
			t.Errorf("span %s status = %v, want Error", span.Name(), span.Status().Code)
		}
	}
	if len(recorder.Ended()) != 2 {
		t.Errorf("expected 2 spans, got %d", len(recorder.Ended()))
	}
}

func TestSpansPerOperation(t *testing.T) {
	_, provider := dbtest.OpenSeeded(t)
	jobs, _, recorder := newServices(provider)

	if _, err := jobs.ListJobs(context.Background()); err != nil {
		t.Fatal(err)
	}

	ended := recorder.Ended()
	if len(ended) != 1 || ended[0].Name() != "JobService.ListJobs" {
		t.Fatalf("unexpected spans %v", ended)
	}
	if ended[0].Status().Code == codes.Error {
		t.Error("successful call recorded an error")
	}
}

func TestListApplicationsNewestFirstWithIDTiebreak(t *testing.T) {
	db, provider := dbtest.OpenSeeded(t)
	_, apps, _ := newServices(provider)

	same := time.Date(2026, 3, 1, 9, 0, 0, 0, time.UTC)
	rows := []models.Application{
		{JobID: 1, CandidateID: 1, Status: models.ApplicationStatusApplied, CreatedAt: same},
		{JobID: 2, CandidateID: 2, Status: models.ApplicationStatusApplied, CreatedAt: same},
		{JobID: 3, CandidateID: 3, Status: models.ApplicationStatusApplied, CreatedAt: same.Add(-time.Hour)},
		{JobID: 4, CandidateID: 4, Status: models.ApplicationStatusApplied, CreatedAt: same.Add(time.Hour)},
	}
	for i := range rows {
		if err := db.Omit(clause.Associations).Create(&rows[i]).Error; err != nil {
			t.Fatalf("insert %d: %v", i, err)
		}
	}

	list, err := apps.ListApplications(context.Background())
	if err != nil {
		t.Fatal(err)
	}

	want := []uint{rows[3].ID, rows[1].ID, rows[0].ID, rows[2].ID}
	if len(list) != len(want) {
		t.Fatalf("got %d applications, want %d", len(list), len(want))
	}
	for i, id := range want {
		if list[i].ApplicationID != id {
			t.Errorf("position %d: application %d, want %d", i, list[i].ApplicationID, id)
		}
	}
}

func TestCreateJobSpanAttributes(t *testing.T) {
	_, provider := dbtest.OpenSeeded(t)
	jobs, _, recorder := newServices(provider)

	if _, err := jobs.CreateJob(context.Background(), &dtos.JobCreationRequest{
		Title: "SRE", Department: "Infrastructure", Location: "Remote", RecruiterID: 3,
	}); err != nil {
		t.Fatal(err)
	}

	ended := recorder.Ended()
	if len(ended) != 1 {
		t.Fatalf("expected 1 span, got %d", len(ended))
	}
	attrs := map[string]string{}
	for _, kv := range ended[0].Attributes() {
		attrs[string(kv.Key)] = kv.Value.Emit()
	}
	if attrs["job.title"] != "SRE" || attrs["job.recruiter_id"] != "3" {
		t.Errorf("unexpected attributes %v", attrs)
	}
}
