package main

import (
	"bufio"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/flowmanager-dev/flowmanager/internal/models"
	"github.com/flowmanager-dev/flowmanager/internal/store"
)

var createUserCmd = &cobra.Command{
	Use:   "create-user",
	Short: "Interactively create a user with credential and profile",
	RunE:  runCreateUser,
}

func init() {
	rootCmd.AddCommand(createUserCmd)
}

func prompt(reader *bufio.Reader, label string) (string, error) {
	fmt.Print(label)
	line, err := reader.ReadString('\n')
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(line), nil
}

func runCreateUser(cmd *cobra.Command, args []string) error {
	db, err := openDB()
	if err != nil {
		return err
	}

	reader := bufio.NewReader(os.Stdin)

	email, err := prompt(reader, "Email: ")
	if err != nil {
		return err
	}
	password, err := prompt(reader, "Password: ")
	if err != nil {
		return err
	}
	roleName, err := prompt(reader, fmt.Sprintf("Role [%s]: ", models.RoleUser))
	if err != nil {
		return err
	}

	params := store.CreateUserParams{
		Email:    email,
		Password: password,
		RoleName: roleName,
	}

	firstName, err := prompt(reader, "First name (empty to skip profile): ")
	if err != nil {
		return err
	}
	if firstName != "" {
		lastName, err := prompt(reader, "Last name: ")
		if err != nil {
			return err
		}
		position, err := prompt(reader, "Position: ")
		if err != nil {
			return err
		}
		daysRaw, err := prompt(reader, "Vacation days total [26]: ")
		if err != nil {
			return err
		}
		days := 26
		if daysRaw != "" {
			days, err = strconv.Atoi(daysRaw)
			if err != nil {
				return fmt.Errorf("invalid vacation days: %q", daysRaw)
			}
		}
		params.Profile = &store.ProfileParams{
			FirstName:         firstName,
			LastName:          lastName,
			Position:          position,
			VacationDaysTotal: days,
		}
	}

	user, err := store.CreateUser(db, params)
	if err != nil {
		return err
	}

	fmt.Printf("Created user %d <%s> with role %s\n", user.ID, user.Email, user.Role.Name)
	return nil
}
