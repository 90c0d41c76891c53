package main

import (
	"fmt"
	"strings"

	"github.com/reshetovitsme/audience-reach/internal/modules/audience/report"
	"github.com/reshetovitsme/audience-reach/internal/modules/preset/domain"
	"github.com/spf13/cobra"
)

func newPresetsCmd(root *rootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "presets",
		Short: "List saved filter models",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			presets, err := root.presets()
			if err != nil {
				return err
			}
			list, err := presets.List()
			if err != nil {
				return err
			}
			return render(cmd.OutOrStdout(), root.output, list, func() string {
				return presetsText(list)
			})
		},
	}

	cmd.AddCommand(
		newPresetShowCmd(root),
		newPresetSaveCmd(root),
		newPresetDeleteCmd(root),
	)
	return cmd
}

func newPresetShowCmd(root *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "show <name>",
		Short: "Show a saved filter model",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			presets, err := root.presets()
			if err != nil {
				return err
			}
			preset, err := presets.Get(args[0])
			if err != nil {
				return err
			}
			return render(cmd.OutOrStdout(), root.output, preset, func() string {
				return fmt.Sprintf("%s (updated %s)\n%s", preset.Name, preset.UpdatedAt.Format("2006-01-02 15:04"), report.Model(preset.Model))
			})
		},
	}
}

func newPresetSaveCmd(root *rootOptions) *cobra.Command {
	opts := &estimateOptions{rootOptions: root}

	cmd := &cobra.Command{
		Use:   "save <name> [key=value ...]",
		Short: "Save a filter model under a name",
		Long: `Save a filter model built the same way as for estimate.

Example:
  audiencectl presets save whales wallet=yes referrals=5 interests=defi,airdrop`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			model, err := opts.model(args[1:])
			if err != nil {
				return err
			}
			presets, err := root.presets()
			if err != nil {
				return err
			}
			preset, err := presets.Save(args[0], model, 0)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "✅ Saved preset %s with %d active filters\n", preset.Name, preset.Model.ActiveFilters())
			return nil
		},
	}

	cmd.Flags().StringVarP(&opts.file, "file", "f", "", "Filter model file (yaml or json)")
	cmd.Flags().StringVarP(&opts.preset, "preset", "p", "", "Start from another preset")
	cmd.MarkFlagsMutuallyExclusive("file", "preset")
	cmd.Flags().StringArrayVar(&opts.set, "set", nil, "Filter assignment key=value (repeatable)")
	return cmd
}

func newPresetDeleteCmd(root *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "delete <name>",
		Short: "Delete a saved filter model",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			presets, err := root.presets()
			if err != nil {
				return err
			}
			if err := presets.Delete(args[0]); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "🗑️ Deleted preset %s\n", strings.ToLower(args[0]))
			return nil
		},
	}
}

func presetsText(presets []*domain.Preset) string {
	if len(presets) == 0 {
		return "No presets saved"
	}

	var text strings.Builder
	for _, p := range presets {
		fmt.Fprintf(&text, "%-20s %2d filters  %-8s %s\n",
			p.Name, p.Model.ActiveFilters(), p.Model.Delivery.Channel, p.UpdatedAt.Format("2006-01-02"))
	}
	return strings.TrimRight(text.String(), "\n")
}
