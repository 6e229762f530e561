// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package main is the entry point for the tabfetch CLI, a downloader for
// Guitar Pro tabs hosted on Songsterr.
package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/pdiddy/tabfetch/internal/fetch"
	"github.com/pdiddy/tabfetch/internal/prompt"
	"github.com/pdiddy/tabfetch/internal/songsterr"
	"github.com/pdiddy/tabfetch/internal/targets"
	"github.com/pdiddy/tabfetch/pkg/types"
)

// version is set at build time via ldflags.
var version = "dev"

const (
	defaultOutputDir  = "./output"
	defaultMaxResults = 20
	defaultTimeout    = 30 * time.Second

	// defaultUserAgent identifies the tool; the service rejects some
	// bare library client strings.
	defaultUserAgent = "Mozilla/5.0 (compatible; tabfetch/0.1)"
)

// rootCmd is the base command: it resolves and downloads every target
// given on the command line, from a file, or from stdin.
var rootCmd = &cobra.Command{
	Use:   "tabfetch [flags] [target]...",
	Short: "Download Guitar Pro tabs from Songsterr",
	Long: `tabfetch downloads Guitar Pro files from Songsterr. Targets are tab URLs,
or free-text search terms when --interactive is set. Targets can also be
read from a file or stdin with --file.

Without --interactive each tab's latest revision is downloaded; search
terms are rejected since picking a match needs a prompt. With
--interactive, search results and revisions are presented for selection.`,
	Example: `  tabfetch https://www.songsterr.com/a/wsa/pissgrave-rusted-wind-tab-s505453
  tabfetch -o ./tabs URL1 URL2
  tabfetch -i viagra boys sports
  tabfetch -f urls.txt
  cat urls.txt | tabfetch -f -`,
	Args:         cobra.ArbitraryArgs,
	SilenceUsage: true,
	RunE:         runRoot,
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().String("config", "", "config file (default: ./tabfetch.yaml or ~/.config/tabfetch/config.yaml)")

	rootCmd.Flags().BoolP("interactive", "i", false, "prompt to choose among search results and revisions")
	rootCmd.Flags().StringP("file", "f", "", "read targets from a file, one per line ('-' for stdin)")
	rootCmd.Flags().StringP("out", "o", "", "output directory (default ./output)")
	rootCmd.Flags().Int("max-results", 0, "maximum search results to display (default 20)")
	rootCmd.Flags().Duration("timeout", 0, "HTTP request timeout (default 30s)")
	rootCmd.Flags().Duration("delay", 0, "delay between consecutive downloads (default 0)")
	rootCmd.Flags().Bool("metadata", false, "write a YAML metadata record for each download")
}

func initConfig() {
	cfgFile, _ := rootCmd.PersistentFlags().GetString("config")
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.SetConfigName("tabfetch")
		viper.SetConfigType("yaml")
		viper.AddConfigPath(".")

		home, err := os.UserHomeDir()
		if err == nil {
			viper.AddConfigPath(filepath.Join(home, ".config", "tabfetch"))
		}
	}

	viper.SetEnvPrefix("TABFETCH")
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err == nil {
		fmt.Fprintln(os.Stderr, "Using config file:", viper.ConfigFileUsed())
	}
}

func runRoot(cmd *cobra.Command, args []string) error {
	interactive, _ := cmd.Flags().GetBool("interactive")
	filePath, _ := cmd.Flags().GetString("file")

	cfg := pipelineConfig(cmd)

	list := append([]string{}, args...)
	switch {
	case filePath != "":
		loaded, err := targets.Load(filePath, os.Stdin)
		if err != nil {
			return err
		}
		list = append(list, loaded...)
	case len(list) == 0 && !interactive && stdinIsPiped():
		loaded, err := targets.Load("-", os.Stdin)
		if err != nil {
			return err
		}
		list = append(list, loaded...)
	}
	list = targets.Dedupe(list)

	var prompter *prompt.Prompter
	if interactive {
		prompter = prompt.New(os.Stdin, os.Stdout)

		// Bare words in interactive mode are one search phrase, not
		// individual targets.
		if len(list) > 0 && !allURLs(list) {
			list = []string{strings.Join(list, " ")}
		}
		if len(list) == 0 {
			text, err := prompter.SearchText()
			if err != nil {
				return err
			}
			list = []string{text}
		}
	} else if len(list) == 0 {
		return fmt.Errorf("no targets: provide tab URLs, --file, or --interactive to search")
	}

	client := songsterr.New(cfg.Download.HTTPConfig)
	opts := fetch.Options{
		Interactive: interactive,
		MaxResults:  cfg.Search.MaxResults,
		Download:    cfg.Download,
		Prompter:    prompter,
	}

	result := fetch.FetchBatch(cmd.Context(), client, list, opts, os.Stdout)
	if result.HasFailures() {
		return fmt.Errorf("%d target(s) failed", result.Failed)
	}
	return nil
}

// pipelineConfig resolves settings with flags taking precedence over the
// config file, which takes precedence over built-in defaults.
func pipelineConfig(cmd *cobra.Command) types.PipelineConfig {
	out, _ := cmd.Flags().GetString("out")
	if out == "" {
		out = stringSetting("output_dir", defaultOutputDir)
	}
	maxResults, _ := cmd.Flags().GetInt("max-results")
	if maxResults == 0 {
		maxResults = intSetting("max_results", defaultMaxResults)
	}
	timeout, _ := cmd.Flags().GetDuration("timeout")
	if timeout == 0 {
		timeout = durationSetting("timeout", defaultTimeout)
	}
	delay, _ := cmd.Flags().GetDuration("delay")
	if delay == 0 {
		delay = durationSetting("download_delay", 0)
	}
	metadata, _ := cmd.Flags().GetBool("metadata")
	if !metadata {
		metadata = viper.GetBool("write_metadata")
	}

	httpCfg := types.HTTPConfig{
		Timeout:   timeout,
		UserAgent: stringSetting("user_agent", defaultUserAgent),
	}
	return types.PipelineConfig{
		Search: types.SearchConfig{
			HTTPConfig: httpCfg,
			MaxResults: maxResults,
		},
		Download: types.DownloadConfig{
			HTTPConfig:    httpCfg,
			OutputDir:     out,
			DownloadDelay: delay,
			WriteMetadata: metadata,
		},
	}
}

func stringSetting(key, fallback string) string {
	if viper.IsSet(key) {
		return viper.GetString(key)
	}
	return fallback
}

func intSetting(key string, fallback int) int {
	if viper.IsSet(key) {
		return viper.GetInt(key)
	}
	return fallback
}

func durationSetting(key string, fallback time.Duration) time.Duration {
	if viper.IsSet(key) {
		return viper.GetDuration(key)
	}
	return fallback
}

// allURLs reports whether every target is a direct tab URL.
func allURLs(list []string) bool {
	for _, t := range list {
		if songsterr.ClassifyTarget(t) != songsterr.TargetURL {
			return false
		}
	}
	return true
}

// stdinIsPiped reports whether stdin is connected to a pipe or file
// rather than a terminal.
func stdinIsPiped() bool {
	fi, err := os.Stdin.Stat()
	return err == nil && fi.Mode()&os.ModeCharDevice == 0
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
