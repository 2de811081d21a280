// Package cmd implements the spantween CLI commands.
//
// The command structure follows standard Go CLI patterns with a root command
// that dispatches to subcommands (run, check, curves).
package cmd

import (
	"fmt"
	"os"
)

// Version information set at build time.
var (
	Version   = "0.1.0-dev"
	BuildTime = "unknown"
)

// Command represents a CLI command.
type Command struct {
	Name        string
	Short       string
	Long        string
	Usage       string
	Run         func(args []string) error
	SubCommands []*Command
}

var rootCmd = &Command{
	Name:  "spantween",
	Short: "spantween - time-span tweens driven by playback timers",
	Long: `spantween loads scene files describing span tween players and
steps them offline with a fixed frame delta, printing the resulting
target properties and player events.

Use "spantween <command> --help" for more information about a command.`,
	Usage: "spantween <command> [flags]",
}

// Commands registered with the CLI.
var commands = make(map[string]*Command)

// RegisterCommand adds a command to the CLI.
func RegisterCommand(cmd *Command) {
	commands[cmd.Name] = cmd
	rootCmd.SubCommands = append(rootCmd.SubCommands, cmd)
}

// Execute runs the CLI with the process arguments.
func Execute() error {
	return execute(os.Args[1:])
}

func execute(args []string) error {
	// Handle no arguments
	if len(args) == 0 {
		printHelp(rootCmd)
		return nil
	}

	switch args[0] {
	case "-h", "--help", "help":
		printHelp(rootCmd)
		return nil
	case "-v", "--version", "version":
		fmt.Printf("spantween version %s (built %s)\n", Version, BuildTime)
		return nil
	}

	// Find and execute the command
	cmdName := args[0]
	cmd, ok := commands[cmdName]
	if !ok {
		fmt.Fprintf(os.Stderr, "Error: unknown command %q\n\n", cmdName)
		printHelp(rootCmd)
		return fmt.Errorf("unknown command: %s", cmdName)
	}

	// Check for help flag on subcommand
	cmdArgs := args[1:]
	for _, arg := range cmdArgs {
		if arg == "-h" || arg == "--help" || arg == "help" {
			printCommandHelp(cmd)
			return nil
		}
	}

	return cmd.Run(cmdArgs)
}

func printHelp(cmd *Command) {
	fmt.Println(cmd.Long)
	fmt.Println()
	fmt.Println("Usage:")
	fmt.Printf("  %s\n", cmd.Usage)
	fmt.Println()
	fmt.Println("Commands:")
	for _, sub := range cmd.SubCommands {
		fmt.Printf("  %-14s %s\n", sub.Name, sub.Short)
	}
	fmt.Println()
	fmt.Println("Flags:")
	fmt.Println("  -h, --help           Show help for a command")
	fmt.Println("  -v, --version        Show version information")
	fmt.Println()
	fmt.Println("Environment:")
	fmt.Println("  SPANTWEEN_VERBOSE    Print stack traces with reported errors")
	fmt.Println()
	fmt.Println("Examples:")
	fmt.Println("  spantween run intro.yaml                 Step until all players finish")
	fmt.Println("  spantween run intro.yaml --duration 5s   Step five seconds of frames")
	fmt.Println("  spantween check intro.yaml               Validate a scene file")
}

func printCommandHelp(cmd *Command) {
	fmt.Println(cmd.Long)
	fmt.Println()
	fmt.Println("Usage:")
	fmt.Printf("  %s\n", cmd.Usage)
}
