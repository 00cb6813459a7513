// Package review provides the HTTP surface of the reviewer workbench.
package review

import (
	"errors"
	"fmt"
	"log"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/JainamOswal18/TheBetterHack2025/internal/database"
	"github.com/JainamOswal18/TheBetterHack2025/internal/model"
	rvw "github.com/JainamOswal18/TheBetterHack2025/internal/review"
	"github.com/JainamOswal18/TheBetterHack2025/internal/utilities"
)

// ReviewController handles reviewer actions over the candidate pipeline.
type ReviewController struct {
	DB        *database.DBinstanceStruct
	Workbench *rvw.Workbench
}

// NewReviewController creates a new instance of ReviewController.
func NewReviewController(db *database.DBinstanceStruct, wb *rvw.Workbench) *ReviewController {
	return &ReviewController{
		DB:        db,
		Workbench: wb,
	}
}

// CandidateView is a candidate annotated with this session's accept flag.
type CandidateView struct {
	model.Candidate
	IsAccepted bool `json:"is_accepted"`
}

type rejectResponse struct {
	Message string `json:"message"`
	Warning string `json:"warning,omitempty"`
}

// GetCandidates lists candidates newest first, annotated with the session
// accept decision, optionally filtered to one job posting.
// @Summary List candidates with their scores and session accept state
// @Tags Review
// @Produce json
// @Param Authorization header string true "Insert your access token" default(Bearer <your access token>)
// @Param job_id query integer false "Only candidates for this job posting"
// @Success 200 {array} CandidateView "Candidates ordered by id descending"
// @Failure 400 {object} utilities.ErrorResponse "Invalid job_id filter"
// @Failure 401 {object} utilities.ErrorResponse "Invalid token"
// @Failure 403 {object} utilities.ErrorResponse "Not logged in as reviewer"
// @Failure 500 {object} utilities.ErrorResponse "Database error"
// @Router /candidates [get]
func (rc *ReviewController) GetCandidates(c *gin.Context) {
	var jobFilter *uint
	if raw := c.Query("job_id"); raw != "" {
		id, err := strconv.ParseUint(raw, 10, 64)
		if err != nil {
			c.JSON(http.StatusBadRequest, utilities.ErrorResponse{Error: "Invalid job_id filter"})
			return
		}
		jobID := uint(id)
		jobFilter = &jobID
	}

	candidates, err := rc.DB.ListCandidates(c.Request.Context(), jobFilter)
	if err != nil {
		c.JSON(http.StatusInternalServerError, utilities.ErrorResponse{
			Error: fmt.Sprint("Failed to fetch candidates: ", err.Error()),
		})
		return
	}

	views := []CandidateView{}
	for _, candidate := range candidates {
		views = append(views, CandidateView{
			Candidate:  candidate,
			IsAccepted: rc.Workbench.Accepted(candidate.ID),
		})
	}

	c.JSON(http.StatusOK, views)
}

// AcceptCandidate marks a candidate accepted for this reviewer session.
// Idempotent, and deliberately touches no durable store: the flag is lost on
// restart, matching the product's session-only accept semantics.
// @Summary Accept a candidate for this session
// @Tags Review
// @Produce json
// @Param Authorization header string true "Insert your access token" default(Bearer <your access token>)
// @Param id path integer true "Candidate ID"
// @Success 200 {object} utilities.MessageResponse "Candidate accepted"
// @Failure 400 {object} utilities.ErrorResponse "Invalid candidate id"
// @Failure 401 {object} utilities.ErrorResponse "Invalid token"
// @Failure 403 {object} utilities.ErrorResponse "Not logged in as reviewer"
// @Router /candidates/{id}/accept [post]
func (rc *ReviewController) AcceptCandidate(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, utilities.ErrorResponse{Error: "Invalid candidate id"})
		return
	}

	rc.Workbench.Accept(uint(id))

	c.JSON(http.StatusOK, utilities.MessageResponse{Message: "Candidate accepted"})
}

// RejectCandidate removes a candidate: metadata record first, then the
// resume blob best-effort. A failed blob delete still removes the candidate
// from the pipeline and reports a warning for operator reconciliation.
// @Summary Reject a candidate and delete their record and resume
// @Tags Review
// @Produce json
// @Param Authorization header string true "Insert your access token" default(Bearer <your access token>)
// @Param id path integer true "Candidate ID"
// @Success 200 {object} rejectResponse "Candidate removed; warning set when the resume blob was left behind"
// @Failure 400 {object} utilities.ErrorResponse "Invalid candidate id"
// @Failure 401 {object} utilities.ErrorResponse "Invalid token"
// @Failure 403 {object} utilities.ErrorResponse "Not logged in as reviewer"
// @Failure 404 {object} utilities.ErrorResponse "Candidate not found (possibly already rejected)"
// @Failure 500 {object} utilities.ErrorResponse "Metadata store error, nothing was deleted"
// @Router /candidates/{id} [delete]
func (rc *ReviewController) RejectCandidate(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, utilities.ErrorResponse{Error: "Invalid candidate id"})
		return
	}

	candidate, err := rc.DB.GetCandidate(c.Request.Context(), uint(id))
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			// Benign race: another reviewer got there first.
			log.Printf("reject of candidate %d: record already gone", id)
			c.JSON(http.StatusNotFound, utilities.ErrorResponse{Error: "Candidate not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, utilities.ErrorResponse{
			Error: fmt.Sprintf("Failed to retrieve candidate: %s", err.Error()),
		})
		return
	}

	outcome, err := rc.Workbench.Reject(c.Request.Context(), candidate.ID, candidate.ResumeURL)
	if err != nil {
		if errors.Is(err, rvw.ErrNotFound) {
			log.Printf("reject of candidate %d: record already gone", id)
			c.JSON(http.StatusNotFound, utilities.ErrorResponse{Error: "Candidate not found"})
			return
		}
		// Metadata delete failed; the candidate is untouched and the
		// reviewer can retry.
		c.JSON(http.StatusInternalServerError, utilities.ErrorResponse{
			Error: fmt.Sprintf("Failed to reject candidate: %s", err.Error()),
		})
		return
	}

	resp := rejectResponse{Message: "Candidate rejected"}
	if outcome.BlobErr != nil {
		resp.Warning = outcome.BlobErr.Error()
	}

	c.JSON(http.StatusOK, resp)
}
