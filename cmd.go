package main

import (
	"fmt"
	"log/slog"
	"slices"

	"github.com/spf13/cobra"

	"github.com/strive/selfadjusting/envconfig"
	"github.com/strive/selfadjusting/logutil"
)

// NewCLI 创建命令行入口，每个子命令运行一段演示
func NewCLI() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "selfadjusting",
		Short: "Self-adjusting (move-to-front) array and linked list demos",
		CompletionOptions: cobra.CompletionOptions{
			DisableDefaultCmd: true,
		},
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			// Disable usage printing on errors
			cmd.SilenceUsage = true

			level := envconfig.LogLevel()
			if verbose, _ := cmd.Flags().GetBool("verbose"); verbose && level > slog.LevelDebug {
				level = slog.LevelDebug
			}
			slog.SetDefault(logutil.NewLogger(cmd.ErrOrStderr(), level))
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return runDemo(cmd)
		},
	}

	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "Log debug information to stderr")
	rootCmd.PersistentFlags().Int("capacity", int(envconfig.Capacity()), "Initial capacity of the demo array")

	cobra.EnableCommandSorting = false

	demoCmd := &cobra.Command{
		Use:   "demo",
		Short: "Run the linked list demo followed by the array demo",
		Args:  cobra.ExactArgs(0),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runDemo(cmd)
		},
	}

	listCmd := &cobra.Command{
		Use:   "list",
		Short: "Run the self-adjusting linked list demo",
		Args:  cobra.ExactArgs(0),
		RunE: func(cmd *cobra.Command, args []string) error {
			return ListDemo(cmd.OutOrStdout())
		},
	}

	arrayCmd := &cobra.Command{
		Use:   "array",
		Short: "Run the self-adjusting array demo",
		Args:  cobra.ExactArgs(0),
		RunE: func(cmd *cobra.Command, args []string) error {
			capacity, err := capacityFlag(cmd)
			if err != nil {
				return err
			}
			return ArrayDemo(cmd.OutOrStdout(), capacity)
		},
	}

	cacheCmd := &cobra.Command{
		Use:   "cache",
		Short: "Run the LRU cache demo built on the linked list",
		Args:  cobra.ExactArgs(0),
		RunE: func(cmd *cobra.Command, args []string) error {
			return CacheDemo(cmd.OutOrStdout())
		},
	}

	appendEnvDocs(rootCmd)

	rootCmd.AddCommand(
		demoCmd,
		listCmd,
		arrayCmd,
		cacheCmd,
	)

	return rootCmd
}

func runDemo(cmd *cobra.Command) error {
	capacity, err := capacityFlag(cmd)
	if err != nil {
		return err
	}
	if err := ListDemo(cmd.OutOrStdout()); err != nil {
		return err
	}
	return ArrayDemo(cmd.OutOrStdout(), capacity)
}

func capacityFlag(cmd *cobra.Command) (int, error) {
	capacity, err := cmd.Flags().GetInt("capacity")
	if err != nil {
		return 0, err
	}
	if capacity < 0 {
		return 0, fmt.Errorf("capacity must not be negative: %d", capacity)
	}
	if capacity > envconfig.MaxCapacity {
		return 0, fmt.Errorf("capacity must not exceed %d: %d", envconfig.MaxCapacity, capacity)
	}
	return capacity, nil
}

func appendEnvDocs(cmd *cobra.Command) {
	envs := envconfig.AsMap()
	keys := make([]string, 0, len(envs))
	for k := range envs {
		keys = append(keys, k)
	}
	slices.Sort(keys)

	usage := "\nEnvironment Variables:\n"
	for _, k := range keys {
		usage += fmt.Sprintf("      %-24s   %s\n", envs[k].Name, envs[k].Description)
	}
	cmd.SetUsageTemplate(cmd.UsageTemplate() + usage)
}
