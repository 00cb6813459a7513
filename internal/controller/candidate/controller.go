// Package candidate provides HTTP handlers for application intake, resume
// retrieval, and out-of-band score attachment.
package candidate

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"log"
	"net/http"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"

	"github.com/JainamOswal18/TheBetterHack2025/internal/database"
	"github.com/JainamOswal18/TheBetterHack2025/internal/model"
	"github.com/JainamOswal18/TheBetterHack2025/internal/scoring"
	"github.com/JainamOswal18/TheBetterHack2025/internal/storage"
	"github.com/JainamOswal18/TheBetterHack2025/internal/utilities"
)

const uniqueViolation = "23505"

// CandidateController handles candidate related endpoints.
type CandidateController struct {
	DB      *database.DBinstanceStruct
	Storage storage.Client
	Scorer  scoring.ScoreProvider
	// PublicBaseURL prefixes stored resume locators, e.g. the storage
	// service's public host. Defaults to STORAGE_PUBLIC_URL.
	PublicBaseURL string
}

// NewCandidateController creates a new instance of CandidateController.
func NewCandidateController(db *database.DBinstanceStruct, store storage.Client, scorer scoring.ScoreProvider) *CandidateController {
	return &CandidateController{
		DB:            db,
		Storage:       store,
		Scorer:        scorer,
		PublicBaseURL: os.Getenv("STORAGE_PUBLIC_URL"),
	}
}

type submissionForm struct {
	FullName string `form:"fullName" binding:"required"`
	Email    string `form:"email" binding:"required,email"`
	JobID    uint   `form:"jobId" binding:"required"`
}

// SubmitApplication accepts a candidate's multipart submission for a posting.
// The resume goes to the blob store first; the returned locator is recorded
// on the candidate row before the request can succeed. If the row insert
// fails the uploaded blob is left behind and logged for reconciliation.
// @Summary Submit a job application with a PDF resume
// @Description Only file that smaller than 10 MB with .pdf extension is permitted
// @Tags Application
// @Accept mpfd
// @Produce json
// @Param fullName formData string true "Applicant full name"
// @Param email formData string true "Applicant email address"
// @Param jobId formData integer true "Job posting being applied to"
// @Param resume formData file true "Resume file (PDF)"
// @Success 201 {object} model.Candidate "Application recorded"
// @Failure 400 {object} utilities.ErrorResponse "Malformed submission or duplicate application"
// @Failure 404 {object} utilities.ErrorResponse "Job posting not found"
// @Failure 413 {object} utilities.ErrorResponse "File size is larger than 10 MB"
// @Failure 415 {object} utilities.ErrorResponse "File extension is not allowed"
// @Failure 500 {object} utilities.ErrorResponse "Storage or database error"
// @Failure 502 {object} utilities.ErrorResponse "Scoring service did not accept the submission"
// @Router /application [post]
func (cc *CandidateController) SubmitApplication(c *gin.Context) {

	var form submissionForm
	if err := c.ShouldBind(&form); err != nil {
		c.JSON(http.StatusBadRequest, utilities.ErrorResponse{
			Error: fmt.Sprintf("Invalid submission: %s", err.Error()),
		})
		return
	}

	// The posting must exist before anything is stored.
	if _, err := cc.DB.GetPosting(c.Request.Context(), form.JobID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, utilities.ErrorResponse{Error: "Job posting not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, utilities.ErrorResponse{
			Error: fmt.Sprintf("Failed to retrieve job posting: %s", err.Error()),
		})
		return
	}

	rawFile, err := c.FormFile("resume")
	var maxBytesError *http.MaxBytesError
	if errors.As(err, &maxBytesError) {
		c.JSON(http.StatusRequestEntityTooLarge, utilities.ErrorResponse{
			Error: err.Error(),
		})
		return
	}
	if err != nil {
		c.JSON(http.StatusBadRequest, utilities.ErrorResponse{
			Error: "Resume file is required",
		})
		return
	}

	extension := strings.ToLower(filepath.Ext(rawFile.Filename))
	if extension != ".pdf" {
		c.JSON(http.StatusUnsupportedMediaType, utilities.ErrorResponse{
			Error: fmt.Sprintf("Unsupported file extension: %s", extension),
		})
		return
	}

	f, err := rawFile.Open()
	if err != nil {
		c.JSON(http.StatusInternalServerError, utilities.ErrorResponse{Error: "Cannot open file"})
		return
	}
	defer func() {
		if err := f.Close(); err != nil {
			log.Printf("failed to close uploaded file: %v", err)
		}
	}()

	fileBytes, err := io.ReadAll(f)
	if err != nil {
		c.JSON(http.StatusInternalServerError, utilities.ErrorResponse{Error: "Cannot read file"})
		return
	}

	objectPath := storage.NewResumeObjectPath()
	if err := cc.Storage.Upload(c.Request.Context(), objectPath, bytes.NewReader(fileBytes)); err != nil {
		c.JSON(http.StatusInternalServerError, utilities.ErrorResponse{
			Error: fmt.Sprintf("Failed to store resume: %s", err.Error()),
		})
		return
	}

	locator := storage.BuildLocator(cc.PublicBaseURL, cc.Storage.Bucket(), objectPath)
	candidate := model.Candidate{
		JobID:     form.JobID,
		UserName:  form.FullName,
		UserEmail: form.Email,
		ResumeURL: locator,
	}

	if err := cc.DB.CreateCandidate(c.Request.Context(), &candidate); err != nil {
		// The blob is already stored; losing the insert orphans it.
		log.Printf("warning: orphaned resume blob %q after failed candidate insert: %v", objectPath, err)

		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == uniqueViolation {
			c.JSON(http.StatusBadRequest, utilities.ErrorResponse{
				Error: "You have already applied to this job posting",
			})
			return
		}
		c.JSON(http.StatusInternalServerError, utilities.ErrorResponse{
			Error: fmt.Sprintf("Failed to record application: %s", err.Error()),
		})
		return
	}

	// Forward to the scoring service. Scores arrive out of band; a scorer
	// outage keeps the recorded application with null scores.
	if err := cc.Scorer.SubmitResume(c.Request.Context(), scoring.Submission{
		JobID:    form.JobID,
		FullName: form.FullName,
		Email:    form.Email,
		FileName: rawFile.Filename,
		Resume:   fileBytes,
	}); err != nil {
		log.Printf("scorer submission failed for candidate %d: %v", candidate.ID, err)
		c.JSON(http.StatusBadGateway, utilities.ErrorResponse{
			Error: fmt.Sprintf("Application recorded but scoring submission failed: %s", err.Error()),
		})
		return
	}

	c.JSON(http.StatusCreated, candidate)
}

// AttachScores applies an out-of-band score update from the scoring service.
// Any subset of the score fields may be present; absent fields are untouched.
// @Summary Attach scores to a candidate
// @Description Called by the scoring service; any subset of score fields may be present
// @Tags Application
// @Accept json
// @Produce json
// @Param Authorization header string true "Insert your access token" default(Bearer <your access token>)
// @Param id path integer true "Candidate ID"
// @Param Scores body model.ScoreUpdate true "Score fields to attach"
// @Success 200 {object} model.Candidate "Candidate with the updated scores"
// @Failure 400 {object} utilities.ErrorResponse "Invalid candidate id or body"
// @Failure 404 {object} utilities.ErrorResponse "Candidate not found"
// @Failure 500 {object} utilities.ErrorResponse "Database error"
// @Router /candidate/{id}/scores [patch]
func (cc *CandidateController) AttachScores(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, utilities.ErrorResponse{Error: "Invalid candidate id"})
		return
	}

	var update model.ScoreUpdate
	if err := c.ShouldBindJSON(&update); err != nil {
		c.JSON(http.StatusBadRequest, utilities.ErrorResponse{
			Error: fmt.Sprintf("Invalid request body: %s", err.Error()),
		})
		return
	}

	candidate, err := cc.DB.AttachScores(c.Request.Context(), uint(id), update)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, utilities.ErrorResponse{Error: "Candidate not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, utilities.ErrorResponse{
			Error: fmt.Sprintf("Failed to attach scores: %s", err.Error()),
		})
		return
	}

	c.JSON(http.StatusOK, candidate)
}

// DownloadResume streams a candidate's resume from the blob store. The file
// is served as "<user_name>_resume.pdf"; pass disposition=inline to view it
// in the browser instead of downloading.
// @Summary Retrieve a candidate's resume
// @Tags Application
// @Produce octet-stream
// @Param Authorization header string true "Insert your access token" default(Bearer <your access token>)
// @Param id path integer true "Candidate ID"
// @Param disposition query string false "Set to 'inline' to view online instead of downloading"
// @Success 200 {string} binary "Resume bytes"
// @Failure 400 {object} utilities.ErrorResponse "Invalid candidate id"
// @Failure 404 {object} utilities.ErrorResponse "Candidate or resume not found"
// @Failure 500 {object} utilities.ErrorResponse "Storage error"
// @Router /candidate/{id}/resume [get]
func (cc *CandidateController) DownloadResume(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, utilities.ErrorResponse{Error: "Invalid candidate id"})
		return
	}

	candidate, err := cc.DB.GetCandidate(c.Request.Context(), uint(id))
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, utilities.ErrorResponse{Error: "Candidate not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, utilities.ErrorResponse{
			Error: fmt.Sprintf("Failed to retrieve candidate: %s", err.Error()),
		})
		return
	}

	objectPath, ok := storage.ObjectPath(candidate.ResumeURL, cc.Storage.Bucket())
	if !ok {
		c.JSON(http.StatusNotFound, utilities.ErrorResponse{Error: "Candidate has no stored resume"})
		return
	}

	reader, size, err := cc.Storage.Download(c.Request.Context(), objectPath)
	if err != nil {
		c.JSON(http.StatusInternalServerError, utilities.ErrorResponse{
			Error: fmt.Sprintf("Failed to download resume from storage: %s", err.Error()),
		})
		return
	}
	defer func() {
		if err := reader.Close(); err != nil {
			log.Printf("failed to close storage reader: %v", err)
		}
	}()

	disposition := "attachment"
	if c.Query("disposition") == "inline" {
		disposition = "inline"
	}
	filename := fmt.Sprintf("%s_resume.pdf", candidate.UserName)
	c.Writer.Header().Set("Content-Disposition", fmt.Sprintf("%s; filename=%q", disposition, filename))
	c.Writer.Header().Set("Content-Type", "application/pdf")
	if size > 0 {
		c.Writer.Header().Set("Content-Length", fmt.Sprint(size))
	}

	if _, err := io.Copy(c.Writer, reader); err != nil {
		if !c.Writer.Written() {
			c.JSON(http.StatusInternalServerError, utilities.ErrorResponse{
				Error: "Failed to send file content",
			})
		} else {
			c.Abort()
		}
	}
}
