package commands

import (
	"fmt"
	"maps"
	"slices"

	"github.com/spf13/cobra"
	"go.trai.ch/xcb/internal/core/domain"
)

func (c *CLI) newSettingsCmd() *cobra.Command {
	var (
		project       string
		workspace     string
		scheme        string
		configuration string
		action        string
		derivedData   string
		sdk           string
	)

	cmd := &cobra.Command{
		Use:   "settings",
		Short: "Print the build settings for each target of a project",
		RunE: func(cmd *cobra.Command, _ []string) error {
			args := domain.Arguments{
				ProjectPath:     project,
				Kind:            domain.KindProject,
				Scheme:          scheme,
				Configuration:   configuration,
				DerivedDataPath: derivedData,
				SDK:             sdk,
			}
			if workspace != "" {
				args.ProjectPath = workspace
				args.Kind = domain.KindWorkspace
			}

			records, err := c.app.Settings(cmd.Context(), args, domain.Action(action))
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			for _, record := range records {
				_, _ = fmt.Fprintf(out, "Target %s\n", record.Target)
				keys := slices.Sorted(maps.Keys(record.Settings))
				for _, key := range keys {
					_, _ = fmt.Fprintf(out, "    %s = %s\n", key, record.Settings[key])
				}
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&project, "project", "", "Path to the .xcodeproj to query")
	cmd.Flags().StringVar(&workspace, "workspace", "", "Path to the .xcworkspace to query")
	cmd.Flags().StringVar(&scheme, "scheme", "", "Scheme to query")
	cmd.Flags().StringVar(&configuration, "configuration", "", "Build configuration")
	cmd.Flags().StringVar(&action, "action", string(domain.ActionBuild), "Logical action to tag records with")
	cmd.Flags().StringVar(&derivedData, "derived-data", "", "Derived data path override")
	cmd.Flags().StringVar(&sdk, "sdk", "", "Restrict the query to a single SDK")
	cmd.MarkFlagsMutuallyExclusive("project", "workspace")

	return cmd
}
