package main

import (
	"context"
	"fmt"
	"os"

	"github.com/codecraft-labs/codecraft-backend/internal/backing"
	"github.com/codecraft-labs/codecraft-backend/internal/config"
	"github.com/codecraft-labs/codecraft-backend/internal/models"
	"github.com/codecraft-labs/codecraft-backend/internal/store"
	"github.com/codecraft-labs/codecraft-backend/pkg/logger"
)

// Console audit of the persisted contribution document: counts by type,
// per-contributor totals and history depths.
func main() {
	config.LoadConfig()
	logger.Init(config.AppConfig.Environment)

	var (
		b   backing.Store
		err error
	)
	switch config.AppConfig.StoreBackend {
	case "postgres":
		b, err = backing.NewSQLStore(config.AppConfig.DatabaseURL)
	default:
		b, err = backing.NewRedisStore(config.AppConfig.RedisAddr, config.AppConfig.RedisPassword)
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to connect backing store: %v\n", err)
		os.Exit(1)
	}
	defer b.Close()

	s := store.New(context.Background(), b, config.AppConfig.StoreKey)

	added, edited := 0, 0
	byContributor := make(map[string]int)
	for _, c := range s.All() {
		switch c.Type {
		case models.TypeAdded:
			added++
		case models.TypeEdited:
			edited++
		}
		if c.ContributedBy != nil {
			byContributor[c.ContributedBy.Email]++
		}
		if c.EditedBy != nil {
			byContributor[c.EditedBy.Email]++
		}
	}

	fmt.Printf("Contributions: %d (added: %d, edited: %d)\n", s.Count(), added, edited)
	for email, n := range byContributor {
		fmt.Printf("  %-40s %d\n", email, n)
	}
	for _, c := range s.All() {
		if len(c.EditHistory) > 0 {
			fmt.Printf("  %s: %d history entries, last edit %s\n",
				c.ID, len(c.EditHistory), c.EditHistory[len(c.EditHistory)-1].Date.Format("2006-01-02"))
		}
	}
}
