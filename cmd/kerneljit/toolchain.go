package main

import (
	"github.com/spf13/cobra"

	"kerneljit/toolchain"
)

// NewToolchainCommand builds the toolchain command, printing the profile
// the engine would use after defaults, profile file and environment
// overrides are applied.
func NewToolchainCommand() *cobra.Command {
	var profilePath string

	cmd := &cobra.Command{
		Use:   "toolchain",
		Short: "Print the resolved toolchain profile",
		Args:  cobra.ExactArgs(0),
		RunE: func(cmd *cobra.Command, args []string) error {
			p := toolchain.Default()

			if profilePath != "" {
				var err error

				p, err = toolchain.LoadFile(profilePath)
				if err != nil {
					return err
				}
			}

			data, err := toolchain.Marshal(p)
			if err != nil {
				return err
			}

			cmd.Print(string(data))

			return nil
		},
	}

	cmd.Flags().StringVar(&profilePath, "profile", "", "path to a toolchain profile YAML file")

	return cmd
}
