package database

import (
	"context"
	"database/sql"
	"fmt"
	"log"
	"time"

	"github.com/docker/go-connections/nat"
	"github.com/google/uuid"
	// Raw postgres driver for the pre-migration bootstrap.
	_ "github.com/lib/pq"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"

	// Load env
	_ "github.com/joho/godotenv/autoload"

	m "github.com/JainamOswal18/TheBetterHack2025/internal/model"
	"github.com/JainamOswal18/TheBetterHack2025/internal/utilities"
)

var testDBInstance *DBinstanceStruct
var teardown func(context.Context, ...testcontainers.TerminateOption) error

// Exported seeded test fixtures
var (
	TestReviewerUser m.User

	// Exported plain password shared by seeded accounts
	TestSeedPassword = "SeedPass123!"

	// Exported seeded job postings, TestPosting1 is the newest
	TestPosting1 m.JobPosting
	TestPosting2 m.JobPosting
	TestPosting3 m.JobPosting
)

// GetTestDB starts a PostgreSQL test container and returns a teardown function,
// the DB instance, and any error encountered during setup.
func GetTestDB() (func(context.Context, ...testcontainers.TerminateOption) error, *DBinstanceStruct, error) {

	if testDBInstance != nil && teardown != nil {
		return teardown, testDBInstance, nil
	}

	// Database configuration
	var (
		dbName = "database"
		dbPwd  = "password"
		dbUser = "user"
	)

	dbContainer, err := postgres.Run(
		context.Background(),
		"postgres:latest",
		postgres.WithDatabase(dbName),
		postgres.WithUsername(dbUser),
		postgres.WithPassword(dbPwd),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(5*time.Second)),
	)
	if err != nil {
		return nil, nil, err
	}

	dbHost, err := dbContainer.Host(context.Background())
	if err != nil {
		return dbContainer.Terminate, nil, err
	}

	dbPort, err := dbContainer.MappedPort(context.Background(), nat.Port("5432/tcp"))
	if err != nil {
		return dbContainer.Terminate, nil, err
	}

	dsn := fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=disable",
		dbHost, dbPort.Port(), dbUser, dbPwd, dbName)

	// Install the uuid extension over the raw driver before GORM connects.
	if err := installExtensionRaw(dsn); err != nil {
		return dbContainer.Terminate, nil, err
	}

	config := &DBConfig{
		useConstr: true,
		Constr:    dsn,
	}

	db, err := NewDBInstance(config)
	if err != nil {
		return dbContainer.Terminate, nil, err
	}

	if err := seedTestData(db); err != nil {
		_ = dbContainer.Terminate(context.Background())
		return nil, nil, err
	}

	testDBInstance = db
	teardown = dbContainer.Terminate

	return dbContainer.Terminate, db, nil
}

func installExtensionRaw(dsn string) error {
	db, err := sql.Open("postgres", dsn)
	if err != nil {
		return err
	}
	defer func() {
		if err := db.Close(); err != nil {
			log.Printf("failed to close bootstrap connection: %v", err)
		}
	}()

	_, err = db.ExecContext(context.Background(), `CREATE EXTENSION IF NOT EXISTS "uuid-ossp";`)
	return err
}

// seedTestData inserts a reviewer account and sample job postings if empty.
func seedTestData(db *DBinstanceStruct) error {
	var userCount int64
	if err := db.Model(&m.User{}).Count(&userCount).Error; err != nil {
		return err
	}

	if userCount > 0 {
		return loadTestData(db)
	}

	hashedPwd, err := utilities.HashPassword(TestSeedPassword)
	if err != nil {
		return err
	}

	email := "reviewer@example.com"
	TestReviewerUser = m.User{
		ID:       uuid.New(),
		Username: "reviewer_1",
		Email:    &email,
		Role:     m.RoleAdmin,
		Password: hashedPwd,
	}
	if err := db.Create(&TestReviewerUser).Error; err != nil {
		return err
	}

	addReq := "Portfolio of shipped projects"
	postings := []m.JobPosting{
		{
			JobTitle:              "Backend Engineer",
			JobDetails:            "Build and operate Go services and database layers.",
			SkillsRequirement:     "Go, SQL, REST APIs",
			EducationRequirement:  "Bachelor's in CS or equivalent experience",
			ExperienceRequirement: "2+ years backend development",
		},
		{
			JobTitle:               "Frontend Developer",
			JobDetails:             "Build the applicant-facing pages and the review dashboard.",
			SkillsRequirement:      "TypeScript, React",
			EducationRequirement:   "Bachelor's degree",
			ExperienceRequirement:  "1+ years frontend development",
			AdditionalRequirements: &addReq,
		},
		{
			JobTitle:              "Data Analyst",
			JobDetails:            "Support score analytics and reporting dashboards.",
			SkillsRequirement:     "SQL, statistics",
			EducationRequirement:  "Bachelor's degree",
			ExperienceRequirement: "Internship or 1 year experience",
		},
	}
	if err := db.Create(&postings).Error; err != nil {
		return err
	}

	// Stagger creation timestamps so the newest-first ordering is testable.
	// created_at is read-only through the model, so set it with raw SQL.
	base := time.Now().Add(-72 * time.Hour)
	for i := range postings {
		createdAt := base.Add(time.Duration(len(postings)-i) * time.Hour)
		if err := db.Exec("UPDATE job_details SET created_at = ? WHERE job_id = ?", createdAt, postings[i].JobID).Error; err != nil {
			return err
		}
		postings[i].CreatedAt = createdAt
	}

	TestPosting1 = postings[0]
	TestPosting2 = postings[1]
	TestPosting3 = postings[2]

	return nil
}

// loadTestData populates exported variables when records already exist.
func loadTestData(db *DBinstanceStruct) error {
	if err := db.Where("username = ?", "reviewer_1").First(&TestReviewerUser).Error; err != nil {
		return err
	}

	var postings []m.JobPosting
	if err := db.Order("job_id ASC").Limit(3).Find(&postings).Error; err != nil {
		return err
	}
	if len(postings) > 0 {
		TestPosting1 = postings[0]
	}
	if len(postings) > 1 {
		TestPosting2 = postings[1]
	}
	if len(postings) > 2 {
		TestPosting3 = postings[2]
	}

	return nil
}
