package main

import (
	"context"

	"stays/internal/config"
	"stays/internal/facade"
	"stays/pkg/hasher"
	"stays/pkg/logger"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// createAdminCommand constructs the 'create-admin' subcommand that seeds an
// admin user. Admins cannot be created through the HTTP API.
func createAdminCommand(cfg *config.Config) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "create-admin",
		Short: "Creates an admin user",
		Run: func(cmd *cobra.Command, args []string) {
			ctx := context.Background()

			firstName, _ := cmd.Flags().GetString("first-name")
			lastName, _ := cmd.Flags().GetString("last-name")
			email, _ := cmd.Flags().GetString("email")
			password, _ := cmd.Flags().GetString("password")

			strg, closeStrg := getStorage(ctx, cfg)
			defer closeStrg()

			f := facade.New(strg, hasher.NewBcrypt(cfg.Auth.BcryptCost))

			user, err := f.CreateUser(ctx, facade.NewUser{
				FirstName: firstName,
				LastName:  lastName,
				Email:     email,
				Password:  password,
				IsAdmin:   true,
			})
			if err != nil {
				logger.Fatal(ctx, "could not create admin user", zap.Error(err))
			}

			logger.Info(ctx, "admin user created", zap.String("id", user.ID.String()))
		},
	}

	cmd.Flags().String("first-name", "Admin", "First name")
	cmd.Flags().String("last-name", "User", "Last name")
	cmd.Flags().String("email", "", "Email address")
	cmd.Flags().String("password", "", "Plaintext password, hashed before storing")
	_ = cmd.MarkFlagRequired("email")
	_ = cmd.MarkFlagRequired("password")

	return cmd
}
