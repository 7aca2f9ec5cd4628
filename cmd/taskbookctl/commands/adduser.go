package commands

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"syscall"
	"time"

	"github.com/spf13/cobra"
	"golang.org/x/crypto/bcrypt"
	"golang.org/x/term"

	"github.com/taskbook/api/internal/config"
	"github.com/taskbook/api/internal/database"
	"github.com/taskbook/api/internal/models"
)

// NewAddUserCmd creates the adduser command.
func NewAddUserCmd() *cobra.Command {
	var email string
	var password string
	cmd := &cobra.Command{
		Use:   "adduser",
		Short: "Create an account",
		Long:  "Create an account directly in the database, bypassing the signup rate limit. Prompts for the password when --password is not given.",
		RunE: func(cmd *cobra.Command, args []string) error {
			email = strings.ToLower(strings.TrimSpace(email))
			if email == "" {
				return fmt.Errorf("--email is required")
			}

			if password == "" {
				fmt.Print("Password: ")
				raw, err := term.ReadPassword(int(syscall.Stdin))
				fmt.Println()
				if err != nil {
					return fmt.Errorf("read password: %w", err)
				}
				password = string(raw)
			}
			if len(password) < 6 {
				return fmt.Errorf("password must be at least 6 characters")
			}

			cfg, err := config.Load()
			if err != nil {
				return fmt.Errorf("load config: %w", err)
			}
			db, err := database.New(cfg.DatabaseURL)
			if err != nil {
				return fmt.Errorf("connect to database: %w", err)
			}
			defer func() { _ = db.Close() }()

			hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
			if err != nil {
				return fmt.Errorf("hash password: %w", err)
			}

			ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
			defer cancel()
			user := &models.User{Email: email, PasswordHash: string(hash)}
			if err := database.NewUserRepository(db).Create(ctx, user); err != nil {
				if errors.Is(err, database.ErrAlreadyExists) {
					return fmt.Errorf("an account with email %s already exists", email)
				}
				return fmt.Errorf("create user: %w", err)
			}
			fmt.Printf("Created account %s (%s).\n", user.Email, user.ID)
			return nil
		},
	}
	cmd.Flags().StringVar(&email, "email", "", "Account email (required)")
	cmd.Flags().StringVar(&password, "password", "", "Account password (prompted when omitted)")
	return cmd
}
