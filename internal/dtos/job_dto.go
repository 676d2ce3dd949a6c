package dtos

// Required keys of POST /jobs, in the order they are checked.
var JobCreationRequiredFields = []string{"title", "department", "location", "recruiter_id"}

type JobCreationRequest struct {
	Title       Text `json:"title"`
	Department  Text `json:"department"`
	Location    Text `json:"location"`
	RecruiterID ID   `json:"recruiter_id"`
}

type JobCreatedResponse struct {
	Message string `json:"message"`
	JobID   uint   `json:"job_id"`
}

// Required keys of POST /apply.
var ApplicationRequiredFields = []string{"candidate_id", "job_id"}

type ApplicationRequest struct {
	CandidateID ID `json:"candidate_id"`
	JobID       ID `json:"job_id"`
}

type ApplicationCreatedResponse struct {
	Message       string `json:"message"`
	ApplicationID uint   `json:"application_id"`
}
