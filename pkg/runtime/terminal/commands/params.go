package commands

import (
	"github.com/de-tools/dummy-atlas/pkg/models/domain"
	"github.com/spf13/cobra"
)

// paramFlags binds the dataset parameters shared by generate and export.
type paramFlags struct {
	category string
	years    int
	maxRows  int
	seed     uint64
}

func (p *paramFlags) register(cmd *cobra.Command, defaults domain.Params) {
	cmd.Flags().StringVar(&p.category, "category", string(defaults.Category), "Category slug or display name (e.g. cafe, カフェ)")
	cmd.Flags().IntVar(&p.years, "years", defaults.Years, "Number of calendar years to generate (1-5)")
	cmd.Flags().IntVar(&p.maxRows, "max-rows", defaults.MaxRows, "Number of most recent days to keep (1-2000)")
	cmd.Flags().Uint64Var(&p.seed, "seed", defaults.Seed, "Random seed, 0 picks one from the clock")
}

func (p *paramFlags) params() (domain.Params, error) {
	category, err := domain.ParseCategory(p.category)
	if err != nil {
		return domain.Params{}, err
	}
	params := domain.Params{
		Category: category,
		Years:    p.years,
		MaxRows:  p.maxRows,
		Seed:     p.seed,
	}
	return params, params.Validate()
}
