// Package cmd implements the aectl CLI commands.
package cmd

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/donaldgifford/aliexpress/internal/config"
	"github.com/donaldgifford/aliexpress/pkg/aliexpress"
	"github.com/donaldgifford/aliexpress/pkg/logger"
)

var (
	cfgFile string
	rootCmd = &cobra.Command{
		Use:   "aectl",
		Short: "CLI client for the AliExpress Open Platform",
		Long: "aectl signs and sends AliExpress Open Platform requests.\n" +
			"It lets you look up dropshipping products and orders, search\n" +
			"affiliate products, manage sessions and call any operation by name.",
		SilenceUsage: true,
	}
)

// Root returns the root cobra command for documentation generation.
func Root() *cobra.Command {
	return rootCmd
}

// Execute runs the root command.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// persistent flags also readable as AECTL_* environment variables.
var boundFlags = []string{
	"output",
	"log-level",
	"log-format",
	"app-key",
	"app-secret",
	"session",
	"sync-url",
	"rest-url",
}

func init() {
	cobra.OnInitialize(initConfig)

	pf := rootCmd.PersistentFlags()
	pf.StringVar(&cfgFile, "config", "", "config file (YAML)")
	pf.String("output", "table", "output format (table, json)")
	pf.String("log-level", "", "log level (debug, info, warn, error)")
	pf.String("log-format", "", "log format (text, json, pretty)")
	pf.String("app-key", "", "application key")
	pf.String("app-secret", "", "application secret")
	pf.String("session", "", "session (access token)")
	pf.String("sync-url", "", "legacy gateway URL")
	pf.String("rest-url", "", "path-style gateway URL")

	for _, name := range boundFlags {
		cobra.CheckErr(viper.BindPFlag(name, pf.Lookup(name)))
	}

	rootCmd.AddCommand(signCmd())
	rootCmd.AddCommand(callCmd())
	rootCmd.AddCommand(tokenCmd())
	rootCmd.AddCommand(productCmd())
	rootCmd.AddCommand(affiliateCmd())
	rootCmd.AddCommand(orderCmd())
	rootCmd.AddCommand(versionCmd())
}

func initConfig() {
	viper.SetEnvPrefix("AECTL")
	viper.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	viper.AutomaticEnv()
}

// loadConfig reads --config when given and overlays flags and AECTL_*
// environment variables on top of it.
func loadConfig() (*config.Config, error) {
	cfg := &config.Config{}
	if cfgFile != "" {
		var err error
		if cfg, err = config.Read(cfgFile); err != nil {
			return nil, fmt.Errorf("loading config: %w", err)
		}
	}

	overlay(&cfg.AliExpress.AppKey, "app-key")
	overlay(&cfg.AliExpress.AppSecret, "app-secret")
	overlay(&cfg.AliExpress.Session, "session")
	overlay(&cfg.AliExpress.SyncURL, "sync-url")
	overlay(&cfg.AliExpress.RestURL, "rest-url")
	overlay(&cfg.Logging.Level, "log-level")
	overlay(&cfg.Logging.Format, "log-format")

	if err := config.Finalize(cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

func overlay(dst *string, key string) {
	if v := viper.GetString(key); v != "" {
		*dst = v
	}
}

func newClient() (*aliexpress.Client, error) {
	cfg, err := loadConfig()
	if err != nil {
		return nil, err
	}

	log := logger.New(cfg.Logging.Level, cfg.Logging.Format)
	return aliexpress.NewClient(cfg.AliExpress.Credentials(), cfg.AliExpress.Options(log)...)
}

func jsonOutput() bool {
	return viper.GetString("output") == "json"
}
