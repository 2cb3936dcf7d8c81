package commands

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
	"github.com/vallme2003/top-coder-challenge/pkg/services/config"
)

type ProfilesCmd struct {
	profilesPath string
}

func NewProfilesCmd() *cobra.Command {
	pc := &ProfilesCmd{}
	cmd := &cobra.Command{
		Use:   "profiles",
		Short: "List tuning profiles available in a profiles file",
		RunE:  pc.run,
	}

	cmd.Flags().StringVar(&pc.profilesPath, "profiles", "", "Path to the tuning profiles file")
	_ = cmd.MarkFlagRequired("profiles")

	return cmd
}

func (pc *ProfilesCmd) run(cmd *cobra.Command, args []string) error {
	registry, err := config.NewRegistry(pc.profilesPath)
	if err != nil {
		return fmt.Errorf("failed to load profiles from %s: %w", pc.profilesPath, err)
	}

	profiles, err := registry.GetProfiles(cmd.Context())
	if err != nil {
		return err
	}
	if len(profiles) == 0 {
		fmt.Fprintln(cmd.OutOrStdout(), "No profiles found")
		return nil
	}

	fmt.Fprintf(cmd.OutOrStdout(), "Available profiles:\n%s\n", strings.Join(profiles, "\n"))
	return nil
}
