package database

import (
	"context"
	"log"
	"testing"
	"time"

	"github.com/google/uuid"
	// Load env
	_ "github.com/joho/godotenv/autoload"
	"github.com/testcontainers/testcontainers-go"
)

var testDB *DBinstanceStruct
var testTeardown func(context.Context, ...testcontainers.TerminateOption) error

func TestMain(m *testing.M) {
	var err error
	testTeardown, testDB, err = GetTestDB()
	if err != nil {
		log.Fatalf("could not start postgres container: %v", err)
	}

	m.Run()

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if testTeardown != nil && testTeardown(ctx) != nil {
		log.Fatalf("could not teardown postgres container: %v", err)
	}
}

func TestNew(t *testing.T) {
	db, err := NewDBInstance(testDB.Config)
	if err != nil {
		t.Fatalf("Database failed to initialize: %s", err)
	}
	if db.Close() != nil {
		t.Fatalf("expected Close() to return nil")
	}
}

func TestHealth(t *testing.T) {
	stats := testDB.Health()

	if stats["status"] != "up" {
		t.Fatalf("expected status to be up, got %s", stats["status"])
	}

	if _, ok := stats["error"]; ok {
		t.Fatalf("expected error not to be present")
	}

	if stats["message"] != "It's healthy" {
		t.Fatalf("expected message to be 'It's healthy', got %s", stats["message"])
	}
}

func TestSeededFixtures(t *testing.T) {
	if TestReviewerUser.ID == uuid.Nil || TestReviewerUser.Username != "reviewer_1" {
		t.Fatalf("reviewer account was not seeded: %+v", TestReviewerUser)
	}
	if TestPosting1.JobID == 0 || TestPosting2.JobID == 0 || TestPosting3.JobID == 0 {
		t.Fatalf("job postings were not seeded")
	}
	if !TestPosting1.CreatedAt.After(TestPosting2.CreatedAt) {
		t.Fatalf("expected posting timestamps to be staggered")
	}
}
