package cmd

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/donaldgifford/aliexpress/pkg/aliexpress/dropship"
)

func productCmd() *cobra.Command {
	var (
		shipTo   string
		currency string
		language string
	)

	cmd := &cobra.Command{
		Use:   "product <id>",
		Short: "Show a dropshipping product with its SKUs",
		Long: "Looks up a product for a destination country and prints its\n" +
			"attributes and purchasable variations.",
		Example: `  aectl product 1005001234567890
  aectl product 1005001234567890 --ship-to DE --currency EUR --language DE
  aectl product 1005001234567890 --output json`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := strconv.ParseInt(args[0], 10, 64)
			if err != nil {
				return fmt.Errorf("invalid product id %q: %w", args[0], err)
			}

			c, err := newClient()
			if err != nil {
				return err
			}

			res, err := dropship.New(c).ProductDetails(cmd.Context(), dropship.ProductRequest{
				ProductID:      id,
				ShipToCountry:  shipTo,
				TargetCurrency: currency,
				TargetLanguage: language,
			})
			if err != nil {
				return err
			}

			if jsonOutput() {
				return outputJSON(cmd.OutOrStdout(), res)
			}
			return printProductDetail(cmd.OutOrStdout(), &res.Result)
		},
	}
	cmd.Flags().StringVar(&shipTo, "ship-to", "US", "destination country (ISO 3166 alpha-2)")
	cmd.Flags().StringVar(&currency, "currency", "USD", "target currency")
	cmd.Flags().StringVar(&language, "language", "EN", "target language")

	return cmd
}
