package cmd

import (
	"github.com/spf13/cobra"
)

func callCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "call <method> [key=value...]",
		Short: "Call any operation by name and print the raw response",
		Long: "Signs and sends method with the given parameters and prints the\n" +
			"decoded response body as JSON. Use it for operations without a\n" +
			"dedicated command.",
		Example: `  aectl call aliexpress.affiliate.category.get
  aectl call aliexpress.ds.product.get product_id=1005001234567890 ship_to_country=US`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			params, err := parseParams(args[1:])
			if err != nil {
				return err
			}

			c, err := newClient()
			if err != nil {
				return err
			}

			body, err := c.Call(cmd.Context(), args[0], params)
			if err != nil {
				return err
			}
			return outputJSON(cmd.OutOrStdout(), body)
		},
	}
}
