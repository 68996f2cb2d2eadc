package config

import (
	"fmt"
	"log"
	"os"
	"path/filepath"
	"sort"
)

// ApplyMigrations runs every .sql file in dir in lexical order, each inside
// its own transaction. Intended for local setup; production schemas are
// managed out of band.
func ApplyMigrations(dir string) error {
	if DB == nil {
		return fmt.Errorf("db not connected")
	}

	files, err := filepath.Glob(filepath.Join(dir, "*.sql"))
	if err != nil {
		return err
	}
	sort.Strings(files)

	for _, file := range files {
		content, err := os.ReadFile(file)
		if err != nil {
			return fmt.Errorf("read %s: %w", file, err)
		}

		tx, err := DB.Begin()
		if err != nil {
			return err
		}
		if _, err := tx.Exec(string(content)); err != nil {
			_ = tx.Rollback()
			return fmt.Errorf("apply %s: %w", file, err)
		}
		if err := tx.Commit(); err != nil {
			return err
		}
		log.Printf("migration %s applied.", file)
	}
	return nil
}
