// Package model contain gorm model for recording data to database
package model

import "time"

// JobPosting is gorm model for the job_details table. Postings are created
// out of band and treated as read-only by this service.
type JobPosting struct {
	JobID                  uint      `gorm:"column:job_id;primaryKey;autoIncrement;->" json:"job_id"`
	JobTitle               string    `gorm:"type:text" json:"job_title"`
	JobDetails             string    `gorm:"type:text" json:"job_details"`
	SkillsRequirement      string    `gorm:"type:text" json:"skills_requirement"`
	EducationRequirement   string    `gorm:"type:text" json:"education_requirement"`
	ExperienceRequirement  string    `gorm:"type:text" json:"experience_requirement"`
	AdditionalRequirements *string   `gorm:"type:text" json:"additional_requirements"`
	CreatedAt              time.Time `gorm:"type:timestamp;default:CURRENT_TIMESTAMP;->" json:"created_at"`

	Candidates []Candidate `gorm:"foreignKey:JobID" json:"-"`
}

// TableName keeps the table name aligned with the external schema.
func (JobPosting) TableName() string {
	return "job_details"
}
