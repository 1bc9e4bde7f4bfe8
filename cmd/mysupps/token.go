package main

import (
	"My-Supps-Backend/domain"
	"My-Supps-Backend/internal/utils"
	"My-Supps-Backend/pkg/jwt"
	"time"

	"github.com/google/uuid"
	"github.com/spf13/cobra"
)

var (
	tokenUser string
	tokenTTL  time.Duration
)

var tokenCmd = &cobra.Command{
	Use:   "token",
	Short: "Issue a bearer token for local testing.",
	RunE: func(cmd *cobra.Command, _ []string) error {
		if utils.GetConfig("JWT_SECRET") == "" {
			return domain.ErrMissingSecret
		}
		if tokenUser == "" {
			tokenUser = uuid.NewString()
		} else if _, err := uuid.Parse(tokenUser); err != nil {
			return domain.ErrParseUUID
		}

		service := jwt.NewJWTService(utils.GetConfig("JWT_SECRET"), utils.GetConfig("JWT_ISSUER"))
		token, err := service.GenerateTokenUserWithTTL(tokenUser, domain.RoleUser, tokenTTL)
		if err != nil {
			return err
		}
		cmd.Printf("user:  %s\ntoken: %s\n", tokenUser, token)
		return nil
	},
}

func init() {
	tokenCmd.Flags().StringVar(&tokenUser, "user", "", "user id (a new one is generated when empty)")
	tokenCmd.Flags().DurationVar(&tokenTTL, "ttl", 2*time.Hour, "token lifetime")
}
