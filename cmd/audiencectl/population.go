package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/reshetovitsme/audience-reach/internal/modules/audience/domain"
	populationDomain "github.com/reshetovitsme/audience-reach/internal/modules/population/domain"
	"github.com/samber/lo"
	"github.com/samber/oops"
	"github.com/spf13/cobra"
)

func newPopulationCmd(root *rootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "population",
		Short: "Show the population snapshot",
		Long: `Show the population snapshot the estimator works against.

The default snapshot is seeded into storage the first time it is read.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			stats, err := root.stats()
			if err != nil {
				return err
			}
			return render(cmd.OutOrStdout(), root.output, stats, func() string {
				return populationText(stats)
			})
		},
	}

	cmd.AddCommand(newPopulationImportCmd(root))
	return cmd
}

func newPopulationImportCmd(root *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "import <file>",
		Short: "Validate and store a population snapshot (yaml or json)",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			f, err := os.Open(args[0])
			if err != nil {
				return oops.With("file", args[0]).Wrap(err)
			}
			defer f.Close()

			var stats populationDomain.Stats
			if err := decodeFile(f, &stats); err != nil {
				return oops.With("file", args[0], "context", "failed to decode population stats").Wrap(err)
			}
			if err := stats.Validate(); err != nil {
				return err
			}

			repo, err := root.repository()
			if err != nil {
				return err
			}
			if err := repo.SaveStats(&stats); err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "✅ Imported population of %d users\n", stats.BaseTotal)
			return nil
		},
	}
}

func populationText(stats *populationDomain.Stats) string {
	var text strings.Builder

	fmt.Fprintf(&text, "Base population: %d\n", stats.BaseTotal)
	text.WriteString("\nSegments:\n")
	for _, s := range domain.Segments() {
		fmt.Fprintf(&text, "  %s %-9s %d\n", s.Icon, s.Name, stats.Segments[s.ID])
	}

	text.WriteString("\nChannels:\n")
	channels := lo.Filter(domain.ChannelNames(), func(name string, _ int) bool {
		_, ok := stats.Channels[domain.Channel(name)]
		return ok
	})
	for _, name := range channels {
		ch := domain.Channel(name)
		fmt.Fprintf(&text, "  %-9s %d users, %.0f%% of any audience\n", name, stats.Channels[ch], stats.Share(ch)*100)
	}
	fmt.Fprintf(&text, "\nGroup size: %d", stats.GroupSize)

	return text.String()
}
