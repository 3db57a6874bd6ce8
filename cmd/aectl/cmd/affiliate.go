package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/donaldgifford/aliexpress/pkg/aliexpress/affiliate"
)

func affiliateCmd() *cobra.Command {
	affiliateRoot := &cobra.Command{
		Use:   "affiliate",
		Short: "Query affiliate products",
		Long:  "Search the affiliate product catalogue.",
	}

	affiliateRoot.AddCommand(affiliateSearchCmd())

	return affiliateRoot
}

func affiliateSearchCmd() *cobra.Command {
	var (
		pageSize   int
		pageNo     int
		sort       string
		currency   string
		language   string
		shipTo     string
		trackingID string
	)

	cmd := &cobra.Command{
		Use:   "search <keywords>",
		Short: "Search affiliate products by keywords",
		Example: `  aectl affiliate search "usb c cable"
  aectl affiliate search "usb c cable" --page-size 20 --sort LAST_VOLUME_DESC
  aectl affiliate search "phone case" --ship-to FR --currency EUR --tracking-id default`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := newClient()
			if err != nil {
				return err
			}

			res, err := affiliate.New(c).QueryProducts(cmd.Context(), affiliate.ProductQueryRequest{
				ProductParams: affiliate.ProductParams{
					TargetCurrency: currency,
					TargetLanguage: language,
					TrackingID:     trackingID,
				},
				Keywords:      args[0],
				PageNo:        pageNo,
				PageSize:      pageSize,
				Sort:          sort,
				ShipToCountry: shipTo,
			})
			if err != nil {
				return err
			}

			if jsonOutput() {
				return outputJSON(cmd.OutOrStdout(), res)
			}

			w := cmd.OutOrStdout()
			if !res.OK() {
				return fmt.Errorf("affiliate search: resp_code %d: %s", res.RespCode, res.RespMsg)
			}
			if len(res.Products) == 0 {
				fmt.Fprintln(w, "No products found.")
				return nil
			}

			fmt.Fprintf(w, "Showing %d of %d products (page %d)\n\n",
				len(res.Products), res.TotalRecordCount, res.CurrentPageNo)
			return printAffiliateProductsTable(w, res.Products)
		},
	}
	cmd.Flags().IntVar(&pageSize, "page-size", 20, "results per page (max 50)")
	cmd.Flags().IntVar(&pageNo, "page", 1, "page number")
	cmd.Flags().StringVar(&sort, "sort", "", "sort order, e.g. SALE_PRICE_ASC, LAST_VOLUME_DESC")
	cmd.Flags().StringVar(&currency, "currency", "USD", "target currency")
	cmd.Flags().StringVar(&language, "language", "EN", "target language")
	cmd.Flags().StringVar(&shipTo, "ship-to", "", "destination country")
	cmd.Flags().StringVar(&trackingID, "tracking-id", "", "affiliate tracking id")

	return cmd
}
