package main

import (
	"net/http"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/pdiddy/paperwatch/internal/digest"
	"github.com/pdiddy/paperwatch/internal/secrets"
	"github.com/pdiddy/paperwatch/pkg/types"
)

var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Fetch recent papers and write the HTML digest",
	Long: `Run performs one fetch-filter-render pass: a single OpenAlex query over the
publication-date window, the journal allow-list filter, and an overwrite of
the output HTML file. A fetch failure degrades to an empty page and exits 0;
a render or write failure exits nonzero.`,
	RunE: runDigest,
}

func init() {
	runCmd.Flags().String("keyword", "", `search keyword (default "microfluidic")`)
	runCmd.Flags().Int("window", 0, "publication-date window in days (default 7)")
	runCmd.Flags().String("output", "", "output HTML file (default index.html)")
	runCmd.Flags().String("save", "", "also write a YAML snapshot of the run to this path")

	rootCmd.AddCommand(runCmd)
}

func runDigest(cmd *cobra.Command, args []string) error {
	cfg := types.WatchConfig{
		Keyword:      viper.GetString("keyword"),
		Journals:     viper.GetStringSlice("journals"),
		WindowDays:   viper.GetInt("window_days"),
		PerPage:      viper.GetInt("per_page"),
		OutputPath:   viper.GetString("output_path"),
		SnapshotPath: viper.GetString("snapshot_path"),
		Mailto:       secretDefault(secrets.OpenAlexEmailKey, viper.GetString("mailto")),
	}

	if kw, _ := cmd.Flags().GetString("keyword"); kw != "" {
		cfg.Keyword = kw
	}
	if window, _ := cmd.Flags().GetInt("window"); window > 0 {
		cfg.WindowDays = window
	}
	if output, _ := cmd.Flags().GetString("output"); output != "" {
		cfg.OutputPath = output
	}
	if save, _ := cmd.Flags().GetString("save"); save != "" {
		cfg.SnapshotPath = save
	}

	return digest.Run(cmd.Context(), &http.Client{}, types.Defaults(cfg), os.Stdout)
}
