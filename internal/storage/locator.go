// Package storage provides the resume blob store client and the locator
// addressing rules shared by intake, review and reconciliation.
package storage

import (
	"fmt"
	"strings"

	"github.com/google/uuid"
)

const resumeObjectPrefix = "resumes"

// NewResumeObjectPath returns a fresh object path for an uploaded resume.
func NewResumeObjectPath() string {
	return fmt.Sprintf("%s/%s.pdf", resumeObjectPrefix, uuid.NewString())
}

// BuildLocator builds the locator recorded on a candidate row. The locator
// embeds the bucket scope so ObjectPath can recover the object path later
// without any other context.
func BuildLocator(baseURL, bucket, objectPath string) string {
	return fmt.Sprintf("%s/%s/%s", strings.TrimRight(baseURL, "/"), bucket, objectPath)
}

// ObjectPath recovers the object path from a locator: everything after the
// last occurrence of "<bucket>/". The path depth is opaque, only the bucket
// delimiter matters. The second return is false when the locator carries no
// delimiter, meaning the record has no addressable blob.
func ObjectPath(locator, bucket string) (string, bool) {
	delimiter := bucket + "/"
	idx := strings.LastIndex(locator, delimiter)
	if idx < 0 {
		return "", false
	}
	path := locator[idx+len(delimiter):]
	if path == "" {
		return "", false
	}
	return path, true
}
