package main

import (
	"os"

	"github.com/reshetovitsme/audience-reach/internal/modules/audience/domain"
	"github.com/reshetovitsme/audience-reach/internal/modules/audience/report"
	audienceService "github.com/reshetovitsme/audience-reach/internal/modules/audience/service"
	"github.com/samber/oops"
	"github.com/spf13/cobra"
)

type estimateOptions struct {
	*rootOptions
	file      string
	preset    string
	set       []string
	showModel bool
}

func newEstimateCmd(root *rootOptions) *cobra.Command {
	opts := &estimateOptions{rootOptions: root}

	cmd := &cobra.Command{
		Use:   "estimate [key=value ...]",
		Short: "Estimate reach for a filter model",
		Long: `Estimate the reach of a campaign.

The model starts from the defaults (custom audience, discord, dm, immediate),
is replaced by --preset or --file if given, then edited by every assignment in order.

Examples:
  audiencectl estimate xp=50-100 trust=70 wallet=yes
  audiencectl estimate --file campaign.yaml --set channel=line -o json
  audiencectl estimate --preset whales location=JP
  audiencectl estimate audience=global channel=telegram`,
		RunE: opts.run,
	}

	cmd.Flags().StringVarP(&opts.file, "file", "f", "", "Filter model file (yaml or json)")
	cmd.Flags().StringVarP(&opts.preset, "preset", "p", "", "Start from a saved preset")
	cmd.MarkFlagsMutuallyExclusive("file", "preset")
	cmd.Flags().StringArrayVar(&opts.set, "set", nil, "Filter assignment key=value (repeatable)")
	cmd.Flags().BoolVar(&opts.showModel, "show-model", false, "Print the resolved filter model before the estimate")
	return cmd
}

func (o *estimateOptions) run(cmd *cobra.Command, args []string) error {
	model, err := o.model(args)
	if err != nil {
		return err
	}

	stats, err := o.stats()
	if err != nil {
		return err
	}
	estimate := audienceService.New(stats).Estimate(model)

	w := cmd.OutOrStdout()
	return render(w, o.output, estimate, func() string {
		if o.showModel {
			return report.Model(model) + "\n\n" + report.Estimate(estimate)
		}
		return report.Estimate(estimate)
	})
}

func (o *estimateOptions) model(args []string) (domain.FilterModel, error) {
	model := domain.NewFilterModel()

	if o.preset != "" {
		presets, err := o.presets()
		if err != nil {
			return model, err
		}
		preset, err := presets.Get(o.preset)
		if err != nil {
			return model, err
		}
		model = preset.Model.Clone()
	}

	if o.file != "" {
		f, err := os.Open(o.file)
		if err != nil {
			return model, oops.With("file", o.file).Wrap(err)
		}
		defer f.Close()

		if err := decodeFile(f, &model); err != nil {
			return model, oops.With("file", o.file, "context", "failed to decode filter model").Wrap(err)
		}
	}

	assignments := append(append([]string{}, o.set...), args...)
	if err := model.ApplyAssignments(assignments); err != nil {
		return model, err
	}
	if err := model.Validate(); err != nil {
		return model, err
	}
	return model, nil
}
