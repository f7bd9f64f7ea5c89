package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
	"gorm.io/gorm"

	"github.com/flowmanager-dev/flowmanager/internal/database"
)

var rootCmd = &cobra.Command{
	Use:   "flowctl",
	Short: "Operational tooling for FlowManager",
	Long: `flowctl is the FlowManager admin CLI.

Available subcommands:
  create-user - Interactively create a user with credential and profile
  delete-user - Interactively delete a user and all dependent records
  list-users  - Print all users
  seed        - Create a batch of test users`,
	SilenceUsage: true,
}

// openDB connects using DATABASE_URL and runs migrations. Every subcommand
// goes through here, so the CLI fails fast when the variable is missing.
func openDB() (*gorm.DB, error) {
	_ = godotenv.Load()

	dsn := os.Getenv("DATABASE_URL")
	if dsn == "" {
		return nil, fmt.Errorf("DATABASE_URL environment variable is not set")
	}

	db, err := database.Connect(dsn)
	if err != nil {
		return nil, err
	}
	if err := database.Migrate(db); err != nil {
		return nil, err
	}
	return db, nil
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
