package cmd

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"refbook/internal/catalog"
	"refbook/internal/config"
	"refbook/internal/loader"

	"github.com/spf13/viper"
)

var cfgFile string
var appConfig config.Config

var rootCmd = &cobra.Command{
	Use:   "refbook",
	Short: "refbook - a field guide to refactoring techniques and code smells",
	Long: `refbook is a CLI reference over a Markdown corpus of refactoring
techniques and code smells. It answers lookups and keyword searches over the
catalog, lists entries by category, renders a single technique in the
terminal, and can export or serve the corpus as a static HTML site.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		return initializeConfig(cmd)
	},
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is ./refbook.yaml)")
}

func initializeConfig(_ *cobra.Command) error {
	v := viper.New()

	v.SetDefault("contentDir", "content")
	v.SetDefault("outputDir", "public")
	v.SetDefault("baseURL", "")

	if cfgFile != "" {
		v.SetConfigFile(cfgFile)
	} else {
		v.AddConfigPath(".")
		v.SetConfigName("refbook")
		v.SetConfigType("yaml")
	}

	v.SetEnvPrefix("REFBOOK")
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); ok {
			if cfgFile != "" {
				return fmt.Errorf("config file %s not found: %w", cfgFile, err)
			}
			// No config file is fine; defaults and environment cover everything.
		} else {
			return fmt.Errorf("failed to read config file: %w", err)
		}
	}

	if err := v.Unmarshal(&appConfig); err != nil {
		return fmt.Errorf("unable to decode config into struct: %w", err)
	}

	return nil
}

// loadCatalog builds the catalog from the configured content directory. Every
// subcommand goes through here; load failures (duplicate ids, unknown
// categories, missing manifest) abort the command.
func loadCatalog() (*catalog.Catalog, error) {
	cat, err := loader.Load(appConfig.ContentDir)
	if err != nil {
		return nil, fmt.Errorf("loading catalog from %q: %w", appConfig.ContentDir, err)
	}
	return cat, nil
}
