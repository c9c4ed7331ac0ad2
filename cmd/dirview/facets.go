package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/huh"
	"github.com/spf13/cobra"

	"github.com/biobank-directory/dirview/internal/application/dto"
	"github.com/biobank-directory/dirview/internal/domain/entities"
	"github.com/biobank-directory/dirview/internal/infrastructure/container"
)

var (
	facetsOpts = DefaultCommonOptions()
	pickFacets bool
)

// facetsCmd prints the filter facets of the loaded directory.
var facetsCmd = &cobra.Command{
	Use:   "facets",
	Short: "Print the filter facets of the directory",
	Long: `Print the filter facets of the directory: the network features and the
juridical persons present in the dataset. With --pick, choose a selection per
facet interactively and print the ids of the matching networks.`,
	Args: cobra.NoArgs,
	RunE: withContainer(func(cc *CommandContext, _ *cobra.Command, _ []string) error {
		if err := facetsOpts.ValidateFlags(); err != nil {
			return err
		}
		ctx, cancel := facetsOpts.ApplyToContext(cc.Context)
		defer cancel()

		w, closeOut, err := facetsOpts.Writer()
		if err != nil {
			return err
		}
		defer closeOut()

		if pickFacets {
			return runFacetPick(ctx, cc.Container, w)
		}
		return runFacets(ctx, cc.Container, &facetsOpts, w)
	}),
}

func init() {
	rootCmd.AddCommand(facetsCmd)
	facetsOpts.RegisterFlags(facetsCmd)

	facetsCmd.Flags().BoolVar(&pickFacets, "pick", false, "Pick a selection interactively and print the matching network ids")
}

func runFacets(ctx context.Context, c *container.Container, opts *CommonOptions, w io.Writer) error {
	facets, err := c.NetworkService().Facets(ctx)
	if err != nil {
		return err
	}

	formatter, err := c.FormatterFactory().Create(opts.Format, w, opts.FormatterOptions(c.SystemConfig().UI.GetColorMode(), w))
	if err != nil {
		return err
	}
	if err := formatter.FormatFacets(facets); err != nil {
		return fmt.Errorf("failed to format output: %w", err)
	}
	return nil
}

func runFacetPick(ctx context.Context, c *container.Container, w io.Writer) error {
	if !isTerminal(os.Stdin) {
		return errors.New("--pick needs an interactive terminal")
	}

	facets, err := c.NetworkService().Facets(ctx)
	if err != nil {
		return err
	}

	selections := make(map[string][]string, len(facets))
	groups := make([]*huh.Group, 0, len(facets))
	values := make([]*[]string, len(facets))
	for i, facet := range facets {
		if len(facet.Options) == 0 {
			continue
		}
		values[i] = &[]string{}
		groups = append(groups, huh.NewGroup(facetMultiSelect(facet, values[i])))
	}
	if len(groups) == 0 {
		return errors.New("the directory has nothing to filter by")
	}

	if err := huh.NewForm(groups...).RunWithContext(ctx); err != nil {
		return fmt.Errorf("prompt canceled: %w", err)
	}

	for i, facet := range facets {
		if values[i] != nil && len(*values[i]) > 0 {
			selections[facet.Name] = *values[i]
		}
	}

	summaries, err := c.NetworkService().ListNetworks(ctx, dto.ListNetworksRequest{Selections: selections})
	if err != nil {
		return err
	}
	for _, s := range summaries {
		if _, err := fmt.Fprintln(w, s.ID); err != nil {
			return err
		}
	}
	return nil
}

// facetMultiSelect builds a multi-select over the options of facet, writing
// the chosen ids to value.
func facetMultiSelect(facet entities.Facet, value *[]string) *huh.MultiSelect[string] {
	opts := make([]huh.Option[string], 0, len(facet.Options))
	for _, o := range facet.Options {
		opts = append(opts, huh.NewOption(o.Label, o.ID))
	}
	return huh.NewMultiSelect[string]().
		Title(facet.Label).
		Options(opts...).
		Value(value)
}
