package storage

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewResumeObjectPath(t *testing.T) {
	first := NewResumeObjectPath()
	second := NewResumeObjectPath()

	assert.True(t, strings.HasPrefix(first, "resumes/"))
	assert.True(t, strings.HasSuffix(first, ".pdf"))
	assert.NotEqual(t, first, second, "object paths must be unique")
}

func TestBuildLocatorRoundTrip(t *testing.T) {
	locator := BuildLocator("https://storage.example.com", "resume", "resumes/abc.pdf")
	assert.Equal(t, "https://storage.example.com/resume/resumes/abc.pdf", locator)

	path, ok := ObjectPath(locator, "resume")
	require.True(t, ok)
	assert.Equal(t, "resumes/abc.pdf", path)
}

func TestBuildLocatorTrimsTrailingSlash(t *testing.T) {
	locator := BuildLocator("https://storage.example.com/", "resume", "resumes/abc.pdf")
	assert.Equal(t, "https://storage.example.com/resume/resumes/abc.pdf", locator)
}

func TestObjectPath(t *testing.T) {
	tests := []struct {
		name     string
		locator  string
		wantPath string
		wantOK   bool
	}{
		{
			name:     "full locator",
			locator:  "https://storage.example.com/resume/resumes/abc.pdf",
			wantPath: "resumes/abc.pdf",
			wantOK:   true,
		},
		{
			name:     "bare delimiter",
			locator:  "resume/resumes/abc.pdf",
			wantPath: "resumes/abc.pdf",
			wantOK:   true,
		},
		{
			name:     "last occurrence wins",
			locator:  "https://resume/mirror/resume/resumes/abc.pdf",
			wantPath: "resumes/abc.pdf",
			wantOK:   true,
		},
		{
			name:    "no delimiter",
			locator: "no-delimiter-here",
			wantOK:  false,
		},
		{
			name:    "delimiter with empty tail",
			locator: "https://storage.example.com/resume/",
			wantOK:  false,
		},
		{
			name:    "empty locator",
			locator: "",
			wantOK:  false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path, ok := ObjectPath(tt.locator, "resume")
			assert.Equal(t, tt.wantOK, ok)
			assert.Equal(t, tt.wantPath, path)
		})
	}
}
