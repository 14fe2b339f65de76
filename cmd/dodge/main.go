// dodge is an arcade survival game for the terminal: steer a small
// character around a square field, dodge bouncing obstacles, eat food for
// score and grab power-ups.
//
// Usage:
//
//	dodge play               - Play a game
//	dodge menu               - Title menu with difficulty picker and scores
//	dodge serve              - Start SSH server for remote play
//	dodge scores             - Show high scores
//	dodge config             - Print the effective configuration
//
// Global flags:
//
//	--seed <value>  - Set RNG seed for reproducible gameplay
//	--db <path>     - Set database path (default: ~/.arcade/scores.db)
//	--log <path>    - Write logs to a file (default: discarded)
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	// Global flags
	flagSeed    int64
	flagDBPath  string
	flagLogPath string
	flagConfig  string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "dodge",
	Short: "Dodge - an arcade survival game for your terminal",
	Long: `Dodge is a terminal arcade survival game. Avoid the bouncing
obstacles, eat food to fill the level bar, and pick up power-ups.

Available commands:
  play     - Play a game directly
  menu     - Title menu with difficulty picker and scores
  serve    - Start SSH server for remote play
  scores   - View high scores
  config   - Print the effective configuration

Examples:
  dodge play
  dodge play --difficulty hard --seed 42
  dodge menu
  dodge serve --ssh :2222
  dodge scores --table`,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.arcade/scores.db", "Path to scores database")
	rootCmd.PersistentFlags().StringVar(&flagLogPath, "log", "", "Path to log file (empty = no logging)")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom game config YAML")

	// Add subcommands
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(menuCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(scoresCmd)
	rootCmd.AddCommand(configCmd)
}
