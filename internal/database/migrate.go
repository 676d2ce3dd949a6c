package database

import (
	"context"
	"fmt"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/justsurfingit/ats-api/internal/models"
)

// Migrate creates Recruiters, Jobs, Candidates and Applications with their
// keys, unique emails and foreign keys. Existing tables are left alone.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&models.Recruiter{},
		&models.Job{},
		&models.Candidate{},
		&models.Application{},
	)
}

var seedRecruiters = []models.Recruiter{
	{FullName: "John Smith", Email: "john.smith@techcorp.com", Company: "TechCorp"},
	{FullName: "Sarah Johnson", Email: "sarah.johnson@innovate.com", Company: "Innovate Solutions"},
	{FullName: "Michael Chen", Email: "michael.chen@dataworks.com", Company: "DataWorks Inc"},
	{FullName: "Emily Rodriguez", Email: "emily.rodriguez@cloudify.com", Company: "Cloudify"},
	{FullName: "David Kim", Email: "david.kim@startupx.com", Company: "StartupX"},
}

// recruiter index (0-based into seedRecruiters) for each seeded job
var seedJobs = []struct {
	recruiter int
	job       models.Job
}{
	{0, models.Job{Title: "Senior Python Developer", Department: "Engineering", Location: "San Francisco, CA", Status: models.JobStatusOpen}},
	{1, models.Job{Title: "Data Scientist", Department: "Data Analytics", Location: "New York, NY", Status: models.JobStatusOpen}},
	{2, models.Job{Title: "Frontend Engineer", Department: "Engineering", Location: "Remote", Status: models.JobStatusOpen}},
	{3, models.Job{Title: "DevOps Engineer", Department: "Infrastructure", Location: "Austin, TX", Status: models.JobStatusPaused}},
	{4, models.Job{Title: "Product Manager", Department: "Product", Location: "Seattle, WA", Status: models.JobStatusOpen}},
}

var seedCandidates = []models.Candidate{
	{FullName: "Alice Williams", Email: "alice.williams@email.com", Phone: "+1-555-0101", ResumeURL: "https://resume.com/alice"},
	{FullName: "Bob Martinez", Email: "bob.martinez@email.com", Phone: "+1-555-0102", ResumeURL: "https://resume.com/bob"},
	{FullName: "Carol Davis", Email: "carol.davis@email.com", Phone: "+1-555-0103", ResumeURL: "https://resume.com/carol"},
	{FullName: "Daniel Brown", Email: "daniel.brown@email.com", Phone: "+1-555-0104", ResumeURL: "https://resume.com/daniel"},
	{FullName: "Eva Taylor", Email: "eva.taylor@email.com", Phone: "+1-555-0105", ResumeURL: "https://resume.com/eva"},
}

// SeedCounts is what Seed inserted.
type SeedCounts struct {
	Recruiters int
	Jobs       int
	Candidates int
}

// Seed inserts the demo recruiters, jobs and candidates in one transaction.
// Any failure rolls the whole seed back.
func Seed(ctx context.Context, db *gorm.DB) (SeedCounts, error) {
	var counts SeedCounts

	err := db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		recruiters := make([]models.Recruiter, len(seedRecruiters))
		copy(recruiters, seedRecruiters)
		if err := tx.Create(&recruiters).Error; err != nil {
			return fmt.Errorf("insert recruiters: %w", err)
		}
		counts.Recruiters = len(recruiters)

		jobs := make([]models.Job, 0, len(seedJobs))
		for _, s := range seedJobs {
			job := s.job
			job.RecruiterID = recruiters[s.recruiter].ID
			jobs = append(jobs, job)
		}
		if err := tx.Omit(clause.Associations).Create(&jobs).Error; err != nil {
			return fmt.Errorf("insert jobs: %w", err)
		}
		counts.Jobs = len(jobs)

		candidates := make([]models.Candidate, len(seedCandidates))
		copy(candidates, seedCandidates)
		if err := tx.Create(&candidates).Error; err != nil {
			return fmt.Errorf("insert candidates: %w", err)
		}
		counts.Candidates = len(candidates)
		return nil
	})
	if err != nil {
		return SeedCounts{}, err
	}
	return counts, nil
}
