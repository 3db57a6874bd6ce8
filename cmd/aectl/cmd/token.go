package cmd

import (
	"github.com/spf13/cobra"

	"github.com/donaldgifford/aliexpress/pkg/aliexpress/system"
)

func tokenCmd() *cobra.Command {
	tokenRoot := &cobra.Command{
		Use:   "token",
		Short: "Create and refresh sessions",
		Long: "Exchange an authorization code for a session, or renew a session\n" +
			"with its refresh token. The access token is the value of --session.",
	}

	tokenRoot.AddCommand(
		tokenCreateCmd(),
		tokenRefreshCmd(),
	)

	return tokenRoot
}

func tokenCreateCmd() *cobra.Command {
	var (
		code     string
		uuid     string
		security bool
	)

	cmd := &cobra.Command{
		Use:   "create",
		Short: "Exchange an authorization code for a session",
		Example: `  aectl token create --code 3_500000_abcdef
  aectl token create --code 3_500000_abcdef --security`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			c, err := newClient()
			if err != nil {
				return err
			}

			req := system.GenerateTokenRequest{Code: code, UUID: uuid}
			var tok *system.Token
			if security {
				tok, err = system.New(c).GenerateSecurityToken(cmd.Context(), req)
			} else {
				tok, err = system.New(c).GenerateToken(cmd.Context(), req)
			}
			if err != nil {
				return err
			}

			return printTokenOutput(cmd, tok)
		},
	}
	cmd.Flags().StringVar(&code, "code", "", "authorization code")
	cmd.Flags().StringVar(&uuid, "uuid", "", "optional request uuid")
	cmd.Flags().BoolVar(&security, "security", false, "create a security session")
	cobra.CheckErr(cmd.MarkFlagRequired("code"))

	return cmd
}

func tokenRefreshCmd() *cobra.Command {
	var (
		refreshToken string
		security     bool
	)

	cmd := &cobra.Command{
		Use:     "refresh",
		Short:   "Renew a session with its refresh token",
		Example: `  aectl token refresh --refresh-token 50001600c12abcdef`,
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			c, err := newClient()
			if err != nil {
				return err
			}

			req := system.RefreshTokenRequest{RefreshToken: refreshToken}
			var tok *system.Token
			if security {
				tok, err = system.New(c).RefreshSecurityToken(cmd.Context(), req)
			} else {
				tok, err = system.New(c).RefreshToken(cmd.Context(), req)
			}
			if err != nil {
				return err
			}

			return printTokenOutput(cmd, tok)
		},
	}
	cmd.Flags().StringVar(&refreshToken, "refresh-token", "", "refresh token")
	cmd.Flags().BoolVar(&security, "security", false, "refresh a security session")
	cobra.CheckErr(cmd.MarkFlagRequired("refresh-token"))

	return cmd
}

func printTokenOutput(cmd *cobra.Command, tok *system.Token) error {
	if jsonOutput() {
		return outputJSON(cmd.OutOrStdout(), tok)
	}
	return printToken(cmd.OutOrStdout(), tok)
}
