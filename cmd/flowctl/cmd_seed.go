package main

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/flowmanager-dev/flowmanager/internal/store"
)

var (
	seedCount    int
	seedPrefix   string
	seedPassword string
)

var seedCmd = &cobra.Command{
	Use:   "seed",
	Short: "Create a batch of test users",
	Long: `Creates N test users named <prefix>1@example.test through
<prefix>N@example.test with the given password. Emails that already exist are
skipped.`,
	RunE: runSeed,
}

func init() {
	seedCmd.Flags().IntVar(&seedCount, "count", 10, "number of test users to create")
	seedCmd.Flags().StringVar(&seedPrefix, "prefix", "testuser", "email local-part prefix")
	seedCmd.Flags().StringVar(&seedPassword, "password", "pw123456", "password for all seeded users")
	rootCmd.AddCommand(seedCmd)
}

func runSeed(cmd *cobra.Command, args []string) error {
	db, err := openDB()
	if err != nil {
		return err
	}

	created, skipped := 0, 0
	for i := 1; i <= seedCount; i++ {
		email := fmt.Sprintf("%s%d@example.test", seedPrefix, i)

		_, err := store.CreateUser(db, store.CreateUserParams{
			Email:    email,
			Password: seedPassword,
			Profile: &store.ProfileParams{
				FirstName:         "Test",
				LastName:          fmt.Sprintf("User %d", i),
				VacationDaysTotal: 26,
			},
		})
		if err != nil {
			var emailTaken *store.EmailTakenError
			if errors.As(err, &emailTaken) {
				skipped++
				continue
			}
			return err
		}
		created++
	}

	fmt.Printf("Seeded %d user(s), skipped %d existing\n", created, skipped)
	return nil
}
