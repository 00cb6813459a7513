package model

// Candidate represents a submitted job application stored in the candidates
// table. The score columns are written out of band by the external scoring
// service; this service only ever reads them. Every score is independently
// nullable, so a partially scored candidate is a valid state.
type Candidate struct {
	ID uint `gorm:"primaryKey;autoIncrement" json:"id"`

	// JobID references JobPosting.JobID and is never rewritten after intake.
	JobID      uint       `gorm:"not null;index;uniqueIndex:idx_candidates_job_email,priority:1;<-:create" json:"job_id"`
	JobPosting JobPosting `gorm:"foreignKey:JobID;references:JobID" json:"-"`

	UserName  string `gorm:"type:text;not null" json:"user_name"`
	UserEmail string `gorm:"type:text;not null;uniqueIndex:idx_candidates_job_email,priority:2" json:"user_email"`

	// ResumeURL is a locator into the blob store, not the resume bytes.
	ResumeURL string `gorm:"type:text" json:"resume_url"`

	ParameterScore     *float64 `json:"parameter_score"`
	JobSimilarityScore *float64 `json:"job_similarity_score"`
	GithubScore        *float64 `json:"github_score"`
	TotalScore         *float64 `json:"total_score"`
	MatchPercentage    *float64 `json:"match_percentage"`
}

// TableName keeps the table name aligned with the external schema.
func (Candidate) TableName() string {
	return "candidates"
}

// ScoreUpdate carries the subset of score fields present in an out-of-band
// update from the scoring service. Absent fields stay untouched in the store.
type ScoreUpdate struct {
	ParameterScore     *float64 `json:"parameter_score"`
	JobSimilarityScore *float64 `json:"job_similarity_score"`
	GithubScore        *float64 `json:"github_score"`
	TotalScore         *float64 `json:"total_score"`
	MatchPercentage    *float64 `json:"match_percentage"`
}

// Changes returns the populated fields as a column/value map for a partial
// update. An empty map means the update carried no score at all.
func (s ScoreUpdate) Changes() map[string]interface{} {
	changes := map[string]interface{}{}
	if s.ParameterScore != nil {
		changes["parameter_score"] = *s.ParameterScore
	}
	if s.JobSimilarityScore != nil {
		changes["job_similarity_score"] = *s.JobSimilarityScore
	}
	if s.GithubScore != nil {
		changes["github_score"] = *s.GithubScore
	}
	if s.TotalScore != nil {
		changes["total_score"] = *s.TotalScore
	}
	if s.MatchPercentage != nil {
		changes["match_percentage"] = *s.MatchPercentage
	}
	return changes
}
