package main

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/flowmanager-dev/flowmanager/internal/store"
)

var deleteUserCmd = &cobra.Command{
	Use:   "delete-user",
	Short: "Interactively delete a user and all dependent records",
	Long: `Looks a user up by email, previews the dependent records that would be
removed (profile, credential, assignments, work logs, vacations), asks for
confirmation, and only then performs the cascading delete.`,
	RunE: runDeleteUser,
}

func init() {
	rootCmd.AddCommand(deleteUserCmd)
}

func runDeleteUser(cmd *cobra.Command, args []string) error {
	db, err := openDB()
	if err != nil {
		return err
	}

	reader := bufio.NewReader(os.Stdin)

	email, err := prompt(reader, "Email of user to delete: ")
	if err != nil {
		return err
	}

	user, err := store.GetUserByEmail(db, email)
	if err != nil {
		return err
	}

	counts, err := store.CountUserRelations(db, user.ID)
	if err != nil {
		return err
	}

	fmt.Printf("User %d <%s>\n", user.ID, user.Email)
	fmt.Printf("  profile:     %s\n", yesNo(counts.HasProfile))
	fmt.Printf("  credential:  %s\n", yesNo(counts.HasCredential))
	fmt.Printf("  assignments: %d\n", counts.Assignments)
	fmt.Printf("  work logs:   %d\n", counts.WorkLogs)
	fmt.Printf("  vacations:   %d\n", counts.Vacations)

	answer, err := prompt(reader, "Delete this user and all records above? [y/N]: ")
	if err != nil {
		return err
	}
	if strings.ToLower(answer) != "y" {
		fmt.Println("Aborted, nothing deleted.")
		return nil
	}

	result, err := store.DeleteUser(db, user.ID)
	if err != nil {
		return err
	}

	fmt.Printf("Deleted user <%s>\n", result.Email)
	return nil
}

func yesNo(v bool) string {
	if v {
		return "yes"
	}
	return "no"
}
