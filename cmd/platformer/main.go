// platformer is a terminal platform game: run, jump, collect every coin and
// stay out of the lava.
//
// Usage:
//
//	platformer play            - Play the built-in level
//	platformer play --level f  - Play a level read from a plan file
//	platformer check <file>    - Validate a level plan
//	platformer config          - Print the effective configuration
//
// Global flags:
//
//	--fps <rate>         - Set tick rate (default: 60)
//	--seed <value>       - Set RNG seed for reproducible coin wobble
//	--log-file <path>    - Write logs to a rotating file (default: off)
//	--log-level <level>  - Minimum log level (default: info)
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	// Global flags
	flagFPS      int
	flagSeed     int64
	flagLogFile  string
	flagLogLevel string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "platformer",
	Short: "Platformer - a tile platform game in your terminal",
	Long: `Platformer is a small side-scrolling platform game for the terminal.
Collect every coin in the level without touching lava.

Available commands:
  play     - Play a level
  check    - Validate a level plan file
  config   - Print the effective configuration

Examples:
  platformer play
  platformer play --level ./levels/cave.txt --difficulty hard
  platformer check ./levels/cave.txt
  platformer config --difficulty easy`,
	SilenceUsage: true,
}

func init() {
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagLogFile, "log-file", "", "Write logs to this file (rotated)")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "info", "Log level: debug, info, warn, error")

	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(checkCmd)
	rootCmd.AddCommand(configCmd)
}
