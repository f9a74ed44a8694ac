package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/lintang-b-s/citypath/pkg/util"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

func main() {
	if err := newRootCommand().Execute(); err != nil {
		if !errors.Is(err, errConfiguration) {
			fmt.Fprintln(os.Stderr, err)
		}
		os.Exit(1)
	}
}

func newRootCommand() *cobra.Command {
	var configFile string

	cmd := &cobra.Command{
		Use:   "citypath START END METRIC ALGORITHM",
		Short: "Find a driving route between two cities",
		Long: "Find a driving route between two cities of a road network.\n\n" +
			"METRIC is one of distance, time, segment or scenic.\n" +
			"ALGORITHM is one of bfs, dfs, ids or astar.",
		Args:          cobra.ExactArgs(4),
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return util.ReadConfig(configFile)
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return runRoute(cmd.OutOrStdout(), args[0], args[1], args[2], args[3])
		},
	}

	flags := cmd.PersistentFlags()
	flags.StringVar(&configFile, "config", "", "config file (default ./data/config.yaml or ./config.yaml)")
	flags.String("segments", "", "road segments file, plain or .bz2")
	flags.String("gps", "", "city gps file, plain or .bz2")
	flags.String("log-level", "", "log level (debug, info, warn, error)")
	_ = viper.BindPFlag("ROAD_SEGMENTS_PATH", flags.Lookup("segments"))
	_ = viper.BindPFlag("CITY_GPS_PATH", flags.Lookup("gps"))
	_ = viper.BindPFlag("LOG_LEVEL", flags.Lookup("log-level"))

	cmd.AddCommand(newServeCommand(), newBatchCommand())
	return cmd
}
