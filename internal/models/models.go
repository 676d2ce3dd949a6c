package models

import (
	"time"
)

type JobStatus string

const (
	JobStatusOpen   JobStatus = "Open"
	JobStatusPaused JobStatus = "Paused"
	JobStatusClosed JobStatus = "Closed"
)

// Only status ever written by the API.
const ApplicationStatusApplied = "Applied"

// Table and column names are part of the external contract with the
// schema/seed tooling, so every model pins them explicitly.

type Recruiter struct {
	ID       uint   `gorm:"column:recruiter_id;primaryKey" json:"recruiter_id"`
	FullName string `gorm:"column:full_name;size:100;not null" json:"full_name"`
	Email    string `gorm:"column:email;size:100;uniqueIndex;not null" json:"email"`
	Company  string `gorm:"column:company;size:100" json:"company"`
}

func (Recruiter) TableName() string { return "Recruiters" }

type Job struct {
	ID uint `gorm:"column:job_id;primaryKey" json:"job_id"`

	// Foreign Key
	RecruiterID uint `gorm:"column:recruiter_id;not null;index" json:"recruiter_id"`
	// Only here so AutoMigrate emits the constraint, never loaded
	Recruiter Recruiter `gorm:"foreignKey:RecruiterID;references:ID" json:"-"`

	Title      string    `gorm:"column:title;size:150;not null" json:"title"`
	Department string    `gorm:"column:department;size:100" json:"department"`
	Location   string    `gorm:"column:location;size:100" json:"location"`
	Status     JobStatus `gorm:"column:status;size:10;not null;default:'Open';check:chk_jobs_status,status IN ('Open','Paused','Closed')" json:"status"`
	CreatedAt  time.Time `gorm:"column:created_at" json:"created_at"`
}

func (Job) TableName() string { return "Jobs" }

type Candidate struct {
	ID        uint   `gorm:"column:candidate_id;primaryKey" json:"candidate_id"`
	FullName  string `gorm:"column:full_name;size:100;not null" json:"full_name"`
	Email     string `gorm:"column:email;size:100;uniqueIndex;not null" json:"email"`
	Phone     string `gorm:"column:phone;size:20" json:"phone"`
	ResumeURL string `gorm:"column:resume_url;size:255" json:"resume_url"`
}

func (Candidate) TableName() string { return "Candidates" }

type Application struct {
	ID uint `gorm:"column:application_id;primaryKey" json:"application_id"`

	JobID uint `gorm:"column:job_id;not null;index" json:"job_id"`
	Job   Job  `gorm:"foreignKey:JobID;references:ID" json:"-"`

	CandidateID uint      `gorm:"column:candidate_id;not null;index" json:"candidate_id"`
	Candidate   Candidate `gorm:"foreignKey:CandidateID;references:ID" json:"-"`

	Status    string    `gorm:"column:status;size:20;not null;default:'Applied'" json:"status"`
	CreatedAt time.Time `gorm:"column:created_at" json:"created_at"`
}

func (Application) TableName() string { return "Applications" }

// ApplicationDetail is one row of the applications listing: the application
// joined with its candidate and job.
type ApplicationDetail struct {
	ApplicationID  uint      `json:"application_id"`
	CandidateName  string    `json:"candidate_name"`
	CandidateEmail string    `json:"candidate_email"`
	JobTitle       string    `json:"job_title"`
	Department     string    `json:"department"`
	Location       string    `json:"location"`
	Status         string    `json:"status"`
	CreatedAt      time.Time `json:"created_at"`
}

// NewApplicationDetail flattens an application whose Job and Candidate were
// filled by the join.
func NewApplicationDetail(a Application) ApplicationDetail {
	return ApplicationDetail{
		ApplicationID:  a.ID,
		CandidateName:  a.Candidate.FullName,
		CandidateEmail: a.Candidate.Email,
		JobTitle:       a.Job.Title,
		Department:     a.Job.Department,
		Location:       a.Job.Location,
		Status:         a.Status,
		CreatedAt:      a.CreatedAt,
	}
}
