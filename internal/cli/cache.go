package cli

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
)

// cacheCommand creates the cache management command.
func (c *CLI) cacheCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "cache",
		Short: "Manage the analysis result cache",
	}

	cmd.AddCommand(c.cacheClearCommand())
	cmd.AddCommand(c.cachePathCommand())

	return cmd
}

// cacheClearCommand creates the "cache clear" subcommand. The file cache
// shards entries into two-character subdirectories of the cache root, so
// clearing removes the entry files shard by shard and then the empty shards.
func (c *CLI) cacheClearCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "clear",
		Short: "Clear all cached analysis results",
		RunE: func(cmd *cobra.Command, args []string) error {
			dir, err := cacheDir()
			if err != nil {
				return fmt.Errorf("get cache dir: %w", err)
			}

			shards, err := os.ReadDir(dir)
			if os.IsNotExist(err) {
				printInfo("Cache is empty")
				return nil
			}
			if err != nil {
				return fmt.Errorf("read cache dir: %w", err)
			}
			if len(shards) == 0 {
				printInfo("Cache is empty")
				return nil
			}

			removed := 0
			for _, shard := range shards {
				name := filepath.Join(dir, shard.Name())
				if !shard.IsDir() {
					if os.Remove(name) == nil {
						removed++
					}
					continue
				}
				entries, err := os.ReadDir(name)
				if err != nil {
					continue
				}
				for _, entry := range entries {
					if os.Remove(filepath.Join(name, entry.Name())) == nil {
						removed++
					}
				}
				// Only succeeds once the shard is empty.
				os.Remove(name)
			}

			printSuccess("Cleared %d cached entries", removed)
			printDetail("Directory: %s", dir)
			return nil
		},
	}
}

// cachePathCommand creates the "cache path" subcommand.
func (c *CLI) cachePathCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "path",
		Short: "Print the cache directory path",
		RunE: func(cmd *cobra.Command, args []string) error {
			dir, err := cacheDir()
			if err != nil {
				return fmt.Errorf("get cache dir: %w", err)
			}
			fmt.Println(dir)
			return nil
		},
	}
}
