package main

import (
	"fmt"
	"strings"

	"github.com/reshetovitsme/audience-reach/internal/modules/audience/domain"
	"github.com/spf13/cobra"
)

func newSegmentsCmd(root *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "segments",
		Short: "List the audience segments",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			segments := domain.Segments()
			return render(cmd.OutOrStdout(), root.output, segments, func() string {
				var text strings.Builder
				for _, s := range segments {
					fmt.Fprintf(&text, "%s %-9s %s\n", s.Icon, s.Name, s.Description)
				}
				return strings.TrimRight(text.String(), "\n")
			})
		},
	}
}
