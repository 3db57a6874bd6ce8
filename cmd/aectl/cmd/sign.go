package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/donaldgifford/aliexpress/pkg/aliexpress"
)

func signCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "sign <method> [key=value...]",
		Short: "Print the signing base string and signature",
		Long: "Computes the signature of method and the given parameters with the\n" +
			"configured application secret. Nothing is sent; the parameters are\n" +
			"signed exactly as given, so include app_key, timestamp and the other\n" +
			"injected fields to reproduce a real request.",
		Example: `  aectl sign aliexpress.ds.product.get app_key=12345678 product_id=1005001234567890
  aectl sign /auth/token/create app_key=12345678 code=0_abc timestamp=1700000000000`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig()
			if err != nil {
				return err
			}

			params, err := parseParams(args[1:])
			if err != nil {
				return err
			}
			params["method"] = args[0]

			base := aliexpress.BaseString(params)
			sign := aliexpress.Sign(cfg.AliExpress.AppSecret, params)

			if jsonOutput() {
				return outputJSON(cmd.OutOrStdout(), map[string]string{
					"base_string": base,
					"sign":        sign,
				})
			}
			return printSignature(cmd.OutOrStdout(), params, base, sign)
		},
	}
}

// parseParams turns key=value arguments into Params. Values stay strings,
// which is how the platform signs them.
func parseParams(args []string) (aliexpress.Params, error) {
	params := aliexpress.Params{}
	for _, arg := range args {
		key, value, ok := strings.Cut(arg, "=")
		if !ok || key == "" {
			return nil, fmt.Errorf("invalid parameter %q: want key=value", arg)
		}
		if _, dup := params[key]; dup {
			return nil, fmt.Errorf("duplicate parameter %q", key)
		}
		params[key] = value
	}
	return params, nil
}
