package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/lcampos/quill/internal/ui"
	"github.com/lcampos/quill/internal/workspace"
)

var userCmd = &cobra.Command{
	Use:   "user",
	Short: "List and inspect workspace users",
}

var userListCmd = &cobra.Command{
	Use:   "list",
	Short: "List workspace users",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		users, err := getClient().Users(cmd.Context())
		if err != nil {
			return handleError(apiErrorCode(err), err, "")
		}

		if isJSONOutput() {
			outputSuccess(users, &Meta{Count: len(users)})
			return nil
		}

		if len(users) == 0 {
			fmt.Println("No users.")
			return nil
		}
		table := ui.NewTable(3)
		for i := range users {
			table.AddRow(users[i].Name, userEmail(&users[i]), ui.ID(users[i].ID))
		}
		table.SetCount(len(users), "user", "users")
		fmt.Print(table.String())
		return nil
	},
}

var userGetCmd = &cobra.Command{
	Use:   "get <id>",
	Short: "Show one user",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		user, err := getClient().User(cmd.Context(), args[0])
		if err != nil {
			code := apiErrorCode(err)
			if code == ErrPageNotFound {
				code = ErrUserNotFound
			}
			return handleError(code, err, "")
		}
		return printUser(user)
	},
}

var userMeCmd = &cobra.Command{
	Use:   "me",
	Short: "Show the user behind the current token",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		user, err := getClient().Me(cmd.Context())
		if err != nil {
			return handleError(apiErrorCode(err), err, "")
		}
		return printUser(user)
	},
}

func printUser(user *workspace.User) error {
	if isJSONOutput() {
		outputSuccess(user, nil)
		return nil
	}
	fmt.Println(ui.Header(user.Name))
	fmt.Println(ui.ID(user.ID))
	if email := userEmail(user); email != "" {
		fmt.Println(email)
	}
	if user.Type != "" {
		fmt.Println(ui.Hint(user.Type))
	}
	return nil
}

func userEmail(user *workspace.User) string {
	if user.Person != nil {
		return user.Person.Email
	}
	return ""
}

func init() {
	userCmd.AddCommand(userListCmd)
	userCmd.AddCommand(userGetCmd)
	userCmd.AddCommand(userMeCmd)
	rootCmd.AddCommand(userCmd)
}
