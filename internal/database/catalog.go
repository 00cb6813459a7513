package database

import (
	"context"
	"errors"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/JainamOswal18/TheBetterHack2025/internal/model"
	"github.com/JainamOswal18/TheBetterHack2025/internal/review"
)

// ListPostings returns every job posting, newest first. Ties on the
// creation timestamp break by job_id descending so repeated calls are stable.
func (d *DBinstanceStruct) ListPostings(ctx context.Context) ([]model.JobPosting, error) {
	postings := []model.JobPosting{}
	err := d.WithContext(ctx).
		Order(clause.OrderByColumn{Column: clause.Column{Name: "created_at"}, Desc: true}).
		Order(clause.OrderByColumn{Column: clause.Column{Name: "job_id"}, Desc: true}).
		Find(&postings).Error
	return postings, err
}

// GetPosting fetches one posting by id. Returns gorm.ErrRecordNotFound when absent.
func (d *DBinstanceStruct) GetPosting(ctx context.Context, jobID uint) (model.JobPosting, error) {
	posting := model.JobPosting{}
	err := d.WithContext(ctx).Where("job_id = ?", jobID).First(&posting).Error
	return posting, err
}

// CreateCandidate persists a freshly submitted application.
func (d *DBinstanceStruct) CreateCandidate(ctx context.Context, candidate *model.Candidate) error {
	return d.WithContext(ctx).Create(candidate).Error
}

// GetCandidate fetches one candidate by id. Returns gorm.ErrRecordNotFound when absent.
func (d *DBinstanceStruct) GetCandidate(ctx context.Context, id uint) (model.Candidate, error) {
	candidate := model.Candidate{}
	err := d.WithContext(ctx).Where("id = ?", id).First(&candidate).Error
	return candidate, err
}

// ListCandidates returns candidates ordered by id descending (newest first),
// optionally filtered to one job posting. Score columns come back exactly as
// the scorer last wrote them, nulls included.
func (d *DBinstanceStruct) ListCandidates(ctx context.Context, jobID *uint) ([]model.Candidate, error) {
	candidates := []model.Candidate{}
	query := d.WithContext(ctx).
		Order(clause.OrderByColumn{Column: clause.Column{Name: "id"}, Desc: true})
	if jobID != nil {
		query = query.Where("job_id = ?", *jobID)
	}
	err := query.Find(&candidates).Error
	return candidates, err
}

// AttachScores applies a partial score update from the scoring service and
// returns the refreshed candidate. Fields absent from the update stay
// untouched; an update with no fields is a no-op read.
func (d *DBinstanceStruct) AttachScores(ctx context.Context, id uint, update model.ScoreUpdate) (model.Candidate, error) {
	candidate, err := d.GetCandidate(ctx, id)
	if err != nil {
		return candidate, err
	}

	changes := update.Changes()
	if len(changes) == 0 {
		return candidate, nil
	}

	if err := d.WithContext(ctx).Model(&candidate).Updates(changes).Error; err != nil {
		return candidate, err
	}

	return d.GetCandidate(ctx, id)
}

// DeleteCandidate removes a candidate row by id. Returns review.ErrNotFound
// when the row is already gone, so a concurrent double-reject stays benign.
func (d *DBinstanceStruct) DeleteCandidate(ctx context.Context, id uint) error {
	result := d.WithContext(ctx).Where("id = ?", id).Delete(&model.Candidate{})
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return review.ErrNotFound
		}
		return result.Error
	}
	if result.RowsAffected == 0 {
		return review.ErrNotFound
	}
	return nil
}
