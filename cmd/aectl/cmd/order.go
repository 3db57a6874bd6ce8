package cmd

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/donaldgifford/aliexpress/pkg/aliexpress/dropship"
)

func orderCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "order <id>",
		Short: "Show a dropshipping order",
		Long: "Looks up a placed order and prints its status, shipments and\n" +
			"product lines. Requires a session.",
		Example: `  aectl order 8100000001 --session 50000000000abcdef`,
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := strconv.ParseInt(args[0], 10, 64)
			if err != nil {
				return fmt.Errorf("invalid order id %q: %w", args[0], err)
			}

			c, err := newClient()
			if err != nil {
				return err
			}

			res, err := dropship.New(c).OrderDetails(cmd.Context(), dropship.OrderRequest{OrderID: id})
			if err != nil {
				return err
			}

			if jsonOutput() {
				return outputJSON(cmd.OutOrStdout(), res)
			}
			return printOrderDetail(cmd.OutOrStdout(), &res.Result)
		},
	}
}
