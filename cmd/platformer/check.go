package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-platformer/internal/config"
	"github.com/vovakirdan/tui-platformer/internal/games/platformer"
)

var checkCmd = &cobra.Command{
	Use:   "check <file>",
	Short: "Validate a level plan",
	Long: `Parse a level plan and report its size and contents.

Legend:
  .  empty       #  wall        +  lava
  @  player      o  coin
  =  lava moving horizontally
  |  lava moving vertically
  v  dripping lava

Exits with status 1 and the offending line and column on error.`,
	Args: cobra.ExactArgs(1),
	Run:  runCheck,
}

func runCheck(cmd *cobra.Command, args []string) {
	plan, err := platformer.LoadPlan(args[0])
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	legend := platformer.DefaultLegend(config.DefaultPlatformerConfig().Hazards)
	level, err := platformer.ParseLevel(plan, legend)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %s: %v\n", args[0], err)
		os.Exit(1)
	}

	census := level.Census()
	fmt.Printf("%s: %dx%d\n", args[0], level.Width(), level.Height())
	fmt.Printf("  coins: %d\n", census[platformer.KindCoin])
	fmt.Printf("  moving lava: %d\n", census[platformer.KindLava])
}
