package main

import (
	"github.com/spf13/cobra"

	"kerneljit/internal/cachedir"
)

// NewCacheCommand builds the cache command with its ls and clean
// subcommands.
func NewCacheCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "cache",
		Short: "Inspect and prune the kernel cache",
	}

	cmd.AddCommand(newCacheLsCommand(), newCacheCleanCommand())

	return cmd
}

func newCacheLsCommand() *cobra.Command {
	var dir string

	cmd := &cobra.Command{
		Use:   "ls",
		Short: "List cached sources, artifacts and listings",
		Args:  cobra.ExactArgs(0),
		RunE: func(cmd *cobra.Command, args []string) error {
			entries, err := cachedir.Entries(dir)
			if err != nil {
				return err
			}

			if len(entries) == 0 {
				cmd.Println("cache is empty")

				return nil
			}

			for _, e := range entries {
				cmd.Printf("%10d  %s\n", e.Size, e.Name)
			}

			return nil
		},
	}

	cmd.Flags().StringVar(&dir, "cache-dir", cachedir.DefaultDir(), "cache directory")

	return cmd
}

func newCacheCleanCommand() *cobra.Command {
	var dir string

	cmd := &cobra.Command{
		Use:   "clean",
		Short: "Remove all cached files",
		Args:  cobra.ExactArgs(0),
		RunE: func(cmd *cobra.Command, args []string) error {
			return cachedir.Clean(dir)
		},
	}

	cmd.Flags().StringVar(&dir, "cache-dir", cachedir.DefaultDir(), "cache directory")

	return cmd
}
