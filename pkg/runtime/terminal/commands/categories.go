package commands

import (
	"github.com/de-tools/dummy-atlas/pkg/models/domain"
	"github.com/de-tools/dummy-atlas/pkg/services/profiles"
	"github.com/spf13/cobra"
)

type profilesReporter interface {
	Handle(profiles []domain.Profile) error
}

type CategoriesCmd struct {
	registry profiles.Registry
	reporter profilesReporter
}

func NewCategoriesCmd(registry profiles.Registry, reporter profilesReporter) *cobra.Command {
	cc := &CategoriesCmd{registry: registry, reporter: reporter}
	return &cobra.Command{
		Use:   "categories",
		Short: "List supported categories and their demand profiles",
		RunE:  cc.run,
	}
}

func (cc *CategoriesCmd) run(cmd *cobra.Command, args []string) error {
	return cc.reporter.Handle(cc.registry.ListProfiles(cmd.Context()))
}
