package scoring

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSubmitResumeForwardsMultipartForm(t *testing.T) {
	var gotPath string
	var gotFields map[string]string
	var gotFileName string
	var gotFile []byte

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path

		require.NoError(t, r.ParseMultipartForm(1<<20))
		gotFields = map[string]string{
			"fullName": r.FormValue("fullName"),
			"email":    r.FormValue("email"),
			"jobId":    r.FormValue("jobId"),
		}

		file, header, err := r.FormFile("resume")
		require.NoError(t, err)
		defer file.Close()
		gotFileName = header.Filename
		gotFile, err = io.ReadAll(file)
		require.NoError(t, err)

		w.WriteHeader(http.StatusOK)
	}))
	defer server.Close()

	client := &Client{BaseURL: server.URL, HTTPClient: server.Client()}

	err := client.SubmitResume(context.Background(), Submission{
		JobID:    42,
		FullName: "Jane Applicant",
		Email:    "jane@example.com",
		FileName: "jane_cv.pdf",
		Resume:   []byte("%PDF-1.4 fake"),
	})
	require.NoError(t, err)

	assert.Equal(t, "/submit-resume", gotPath)
	assert.Equal(t, "Jane Applicant", gotFields["fullName"])
	assert.Equal(t, "jane@example.com", gotFields["email"])
	assert.Equal(t, "42", gotFields["jobId"])
	assert.Equal(t, "jane_cv.pdf", gotFileName)
	assert.Equal(t, []byte("%PDF-1.4 fake"), gotFile)
}

func TestSubmitResumeNonSuccessStatus(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer server.Close()

	client := &Client{BaseURL: server.URL, HTTPClient: server.Client()}

	err := client.SubmitResume(context.Background(), Submission{
		JobID:    1,
		FullName: "Jane Applicant",
		Email:    "jane@example.com",
		FileName: "cv.pdf",
		Resume:   []byte("data"),
	})
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrSubmissionFailed)
}

func TestSubmitResumeConnectionFailure(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {}))
	server.Close()

	client := &Client{BaseURL: server.URL, HTTPClient: &http.Client{}}

	err := client.SubmitResume(context.Background(), Submission{
		JobID:    1,
		FullName: "Jane Applicant",
		Email:    "jane@example.com",
		FileName: "cv.pdf",
		Resume:   []byte("data"),
	})
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrSubmissionFailed)
}
