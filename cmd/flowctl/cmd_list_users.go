package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/flowmanager-dev/flowmanager/internal/store"
)

var listUsersCmd = &cobra.Command{
	Use:   "list-users",
	Short: "Print all users",
	RunE:  runListUsers,
}

func init() {
	rootCmd.AddCommand(listUsersCmd)
}

func runListUsers(cmd *cobra.Command, args []string) error {
	db, err := openDB()
	if err != nil {
		return err
	}

	users, err := store.ListUsers(db)
	if err != nil {
		return err
	}

	fmt.Printf("%-6s %-40s %-15s %s\n", "ID", "EMAIL", "ROLE", "NAME")
	for _, user := range users {
		name := ""
		if user.Profile != nil {
			name = user.Profile.FirstName + " " + user.Profile.LastName
		}
		fmt.Printf("%-6d %-40s %-15s %s\n", user.ID, user.Email, user.Role.Name, name)
	}
	fmt.Printf("%d user(s)\n", len(users))
	return nil
}
