// Package jobpost provides HTTP handlers for the job catalog.
package jobpost

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/JainamOswal18/TheBetterHack2025/internal/database"
	"github.com/JainamOswal18/TheBetterHack2025/internal/utilities"
)

// PostingController handles job catalog endpoints. The catalog is read-only
// from this service's point of view; postings are managed out of band.
type PostingController struct {
	DB *database.DBinstanceStruct
}

// NewPostingController creates a new instance of PostingController
func NewPostingController(db *database.DBinstanceStruct) *PostingController {
	return &PostingController{
		DB: db,
	}
}

// GetPostings fetches all job postings, newest first.
// @Summary List job postings, newest first
// @Tags Jobs
// @Produce json
// @Success 200 {array} model.JobPosting "Job postings ordered by creation time descending"
// @Failure 500 {object} utilities.ErrorResponse "Database error"
// @Router /jobs [get]
func (pc *PostingController) GetPostings(c *gin.Context) {
	postings, err := pc.DB.ListPostings(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, utilities.ErrorResponse{
			Error: fmt.Sprint("Failed to fetch job postings: ", err.Error()),
		})
		return
	}

	c.JSON(http.StatusOK, postings)
}

// GetPostingByID fetches a job posting by its ID.
// @Summary Get job posting by ID
// @Tags Jobs
// @Produce json
// @Param id path integer true "ID of desired job posting"
// @Success 200 {object} model.JobPosting "Return the job posting with the specified ID"
// @Failure 400 {object} utilities.ErrorResponse "Invalid posting id"
// @Failure 404 {object} utilities.ErrorResponse "Job posting not found"
// @Failure 500 {object} utilities.ErrorResponse "Database error"
// @Router /jobs/{id} [get]
func (pc *PostingController) GetPostingByID(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, utilities.ErrorResponse{Error: "Invalid posting id"})
		return
	}

	posting, err := pc.DB.GetPosting(c.Request.Context(), uint(id))
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, utilities.ErrorResponse{Error: "Job posting not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, utilities.ErrorResponse{
			Error: fmt.Sprintf("Failed to retrieve job posting: %s", err.Error()),
		})
		return
	}

	c.JSON(http.StatusOK, posting)
}
