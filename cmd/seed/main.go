// Command seed loads a YAML dataset of professionals through the bulk
// reconciler, so re-running it updates existing records instead of
// duplicating them.
//
// Usage:
//
//	go run ./cmd/seed -file seed/professionals.yaml
//	go run ./cmd/seed -memory   # dry run against an in-memory store
package main

import (
	"context"
	"database/sql"
	"flag"
	"log"
	"os"
	"strings"
	"time"

	_ "github.com/lib/pq" // PostgreSQL driver
	"gopkg.in/yaml.v3"

	"github.com/ignite/professional-directory/internal/config"
	"github.com/ignite/professional-directory/internal/repository/memory"
	"github.com/ignite/professional-directory/internal/repository/postgres"
	"github.com/ignite/professional-directory/internal/service/professional"
)

type seedEntry struct {
	FullName    *string `yaml:"full_name"`
	Email       *string `yaml:"email"`
	Phone       *string `yaml:"phone"`
	CompanyName *string `yaml:"company_name"`
	JobTitle    *string `yaml:"job_title"`
	Source      *string `yaml:"source"`
}

func main() {
	var (
		file     = flag.String("file", "seed/professionals.yaml", "YAML dataset to load")
		inMemory = flag.Bool("memory", false, "dry run against an in-memory store")
	)
	flag.Parse()

	data, err := os.ReadFile(*file)
	if err != nil {
		log.Fatalf("Failed to read dataset: %v", err)
	}

	var entries []seedEntry
	if err := yaml.Unmarshal(data, &entries); err != nil {
		log.Fatalf("Failed to parse dataset: %v", err)
	}

	batch := make([]professional.Input, len(entries))
	for i, e := range entries {
		batch[i] = professional.Input{
			FullName:    e.FullName,
			Email:       e.Email,
			Phone:       e.Phone,
			CompanyName: e.CompanyName,
			JobTitle:    e.JobTitle,
			Source:      e.Source,
		}
	}

	repo, cleanup, err := openRepo(*inMemory)
	if err != nil {
		log.Fatalf("Failed to open store: %v", err)
	}
	defer cleanup()

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	res := professional.NewService(repo).Reconcile(ctx, batch)

	for _, p := range res.Created {
		log.Printf("  Created: %s", p.FullName)
	}
	for _, p := range res.Updated {
		log.Printf("  Updated: %s", p.FullName)
	}
	for _, e := range res.Errors {
		log.Printf("  Error at index %d: %s", e.Index, e.Reason)
	}
	log.Printf("Sample data loaded: %d created, %d updated, %d errors",
		len(res.Created), len(res.Updated), len(res.Errors))
}

func openRepo(inMemory bool) (professional.Repository, func(), error) {
	if inMemory {
		return memory.NewProfessionalRepo(), func() {}, nil
	}

	cfg, err := config.LoadFromEnv("config/config.yaml")
	if err != nil {
		return nil, nil, err
	}
	dbURL := cfg.Database.URL
	if dbURL == "" {
		log.Fatal("DATABASE_URL not set (pass -memory for a dry run)")
	}
	if !strings.Contains(dbURL, "connect_timeout") {
		sep := "?"
		if strings.Contains(dbURL, "?") {
			sep = "&"
		}
		dbURL += sep + "connect_timeout=5"
	}

	db, err := sql.Open("postgres", dbURL)
	if err != nil {
		return nil, nil, err
	}
	return postgres.NewProfessionalRepo(db), func() { db.Close() }, nil
}
