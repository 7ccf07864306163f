package main

import (
	"context"
	"database/sql"
	"fmt"
	"log"
	"time"

	"lightnote/internal/adapters/repository/postgres"
	"lightnote/internal/config"
	noteservice "lightnote/internal/core/service/note"

	_ "github.com/lib/pq"
)

type sampleNote struct {
	content     string
	sourceURL   string
	sourceTitle string
	tags        []string
}

var sampleNotes = []sampleNote{
	{
		content:     "Design is an iterative process. The best designs come from repeated attempts and refinement, not from a single stroke.",
		sourceURL:   "https://example.com/design-principles",
		sourceTitle: "Design Principles and Best Practices",
		tags:        []string{"design", "ux"},
	},
	{
		content:     "Rules of Hooks: only call Hooks at the top level, and only from React function components. Never inside loops, conditions or nested functions.",
		sourceURL:   "https://reactjs.org/docs/hooks-rules.html",
		sourceTitle: "Rules of Hooks – React",
		tags:        []string{"react", "frontend", "programming"},
	},
	{
		content:     "PostgreSQL is a powerful, open source object-relational database system with over 30 years of active development that has earned it a strong reputation for reliability, feature robustness, and performance.",
		sourceURL:   "https://www.postgresql.org/about/",
		sourceTitle: "About PostgreSQL",
		tags:        []string{"database", "backend"},
	},
	{
		content:     "Next.js has two forms of pre-rendering: Static Generation and Server-side Rendering. The difference is in when it generates the HTML for a page.",
		sourceURL:   "https://nextjs.org/docs/basic-features/pages",
		sourceTitle: "Next.js Pages",
		tags:        []string{"nextjs", "frontend", "react"},
	},
	{
		content:     "In effective writing the key is clarity, brevity and specificity. Avoid vague language, prefer the active voice, keep paragraphs short.",
		sourceURL:   "https://example.com/effective-writing",
		sourceTitle: "Key Principles of Effective Writing",
		tags:        []string{"writing", "communication"},
	},
	{
		content:     "A note without tags, for checking how the empty-tag case renders. It is also long enough to exercise the excerpt path where overflowing content gets an ellipsis.",
		sourceURL:   "https://example.com/no-tags",
		sourceTitle: "Test note - no tags",
		tags:        []string{},
	},
}

// Wipes all notes and tags and loads the sample set through the service
// layer, so seeding exercises the same path as real captures.
func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	dsn := fmt.Sprintf(
		"host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		cfg.Database.Host,
		cfg.Database.Port,
		cfg.Database.User,
		cfg.Database.Password,
		cfg.Database.Name,
		cfg.Database.SSLMode,
	)
	db, err := sql.Open("postgres", dsn)
	if err != nil {
		log.Fatalf("failed to open database: %v", err)
	}
	defer db.Close()

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := db.PingContext(ctx); err != nil {
		log.Fatalf("failed to ping database: %v", err)
	}

	if _, err := db.ExecContext(ctx, `DELETE FROM notes`); err != nil {
		log.Fatalf("failed to clear notes: %v", err)
	}
	if _, err := db.ExecContext(ctx, `DELETE FROM tags`); err != nil {
		log.Fatalf("failed to clear tags: %v", err)
	}

	service := noteservice.NewNoteService(postgres.NewUnitOfWork(db))

	for _, sample := range sampleNotes {
		title := sample.sourceTitle
		if _, err := service.SaveNote(ctx, sample.content, sample.sourceURL, &title, sample.tags); err != nil {
			log.Fatalf("failed to seed note %q: %v", sample.sourceTitle, err)
		}
	}

	log.Printf("seeded %d sample notes", len(sampleNotes))
}
