package database

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/JainamOswal18/TheBetterHack2025/internal/model"
	"github.com/JainamOswal18/TheBetterHack2025/internal/review"
)

func seedCatalogCandidate(t *testing.T, email string) model.Candidate {
	t.Helper()
	candidate := model.Candidate{
		JobID:     TestPosting1.JobID,
		UserName:  "Catalog Test",
		UserEmail: email,
		ResumeURL: "https://files.example.com/resume/resumes/catalog.pdf",
	}
	require.NoError(t, testDB.CreateCandidate(context.Background(), &candidate))
	return candidate
}

func TestListPostingsOrder(t *testing.T) {
	postings, err := testDB.ListPostings(context.Background())
	require.NoError(t, err)
	require.GreaterOrEqual(t, len(postings), 3)

	for i := 1; i < len(postings); i++ {
		prev, cur := postings[i-1], postings[i]
		newerOrTied := prev.CreatedAt.After(cur.CreatedAt) ||
			(prev.CreatedAt.Equal(cur.CreatedAt) && prev.JobID > cur.JobID)
		assert.True(t, newerOrTied, "postings must come back newest first")
	}
}

func TestGetPostingNotFound(t *testing.T) {
	_, err := testDB.GetPosting(context.Background(), 99999)
	assert.True(t, errors.Is(err, gorm.ErrRecordNotFound))
}

func TestListCandidatesNewestFirstAndFiltered(t *testing.T) {
	first := seedCatalogCandidate(t, "catalog.list.1@example.com")
	second := seedCatalogCandidate(t, "catalog.list.2@example.com")

	candidates, err := testDB.ListCandidates(context.Background(), &TestPosting1.JobID)
	require.NoError(t, err)
	require.GreaterOrEqual(t, len(candidates), 2)

	seen := map[uint]bool{}
	for i, candidate := range candidates {
		if i > 0 {
			assert.Greater(t, candidates[i-1].ID, candidate.ID, "candidates must come back newest first")
		}
		assert.Equal(t, TestPosting1.JobID, candidate.JobID)
		seen[candidate.ID] = true
	}
	assert.True(t, seen[first.ID])
	assert.True(t, seen[second.ID])
}

func TestAttachScoresPartial(t *testing.T) {
	candidate := seedCatalogCandidate(t, "catalog.scores@example.com")

	total := 77.0
	updated, err := testDB.AttachScores(context.Background(), candidate.ID, model.ScoreUpdate{TotalScore: &total})
	require.NoError(t, err)

	require.NotNil(t, updated.TotalScore)
	assert.Equal(t, 77.0, *updated.TotalScore)
	assert.Nil(t, updated.ParameterScore)
	assert.Nil(t, updated.GithubScore)

	// An update with no fields is a no-op read.
	updated, err = testDB.AttachScores(context.Background(), candidate.ID, model.ScoreUpdate{})
	require.NoError(t, err)
	require.NotNil(t, updated.TotalScore)
	assert.Equal(t, 77.0, *updated.TotalScore)
}

func TestAttachScoresMissingCandidate(t *testing.T) {
	total := 10.0
	_, err := testDB.AttachScores(context.Background(), 99999, model.ScoreUpdate{TotalScore: &total})
	assert.True(t, errors.Is(err, gorm.ErrRecordNotFound))
}

func TestDeleteCandidate(t *testing.T) {
	candidate := seedCatalogCandidate(t, "catalog.delete@example.com")

	require.NoError(t, testDB.DeleteCandidate(context.Background(), candidate.ID))

	_, err := testDB.GetCandidate(context.Background(), candidate.ID)
	assert.True(t, errors.Is(err, gorm.ErrRecordNotFound))

	// Deleting an already-gone row reports not-found, not success.
	err = testDB.DeleteCandidate(context.Background(), candidate.ID)
	assert.True(t, errors.Is(err, review.ErrNotFound))
}

func TestCreateCandidateDuplicateRejected(t *testing.T) {
	first := seedCatalogCandidate(t, "catalog.duplicate@example.com")
	_ = first

	dup := model.Candidate{
		JobID:     TestPosting1.JobID,
		UserName:  "Catalog Test",
		UserEmail: "catalog.duplicate@example.com",
		ResumeURL: "https://files.example.com/resume/resumes/other.pdf",
	}
	err := testDB.CreateCandidate(context.Background(), &dup)
	assert.Error(t, err, "one application per posting per email")

	// The same email may still apply to a different posting.
	other := model.Candidate{
		JobID:     TestPosting2.JobID,
		UserName:  "Catalog Test",
		UserEmail: "catalog.duplicate@example.com",
		ResumeURL: "https://files.example.com/resume/resumes/third.pdf",
	}
	assert.NoError(t, testDB.CreateCandidate(context.Background(), &other))
}
