package main

import (
	"context"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/biobank-directory/dirview/internal/application/dto"
	domainservices "github.com/biobank-directory/dirview/internal/domain/services"
	"github.com/biobank-directory/dirview/internal/infrastructure/container"
)

var (
	networksOpts    = DefaultCommonOptions()
	featureFilter   []string
	juridicalFilter []string
	whereExpr       string
)

// networksCmd lists networks, optionally filtered.
var networksCmd = &cobra.Command{
	Use:   "networks",
	Short: "List the networks of the directory",
	Long: `List the networks of the directory.

Filtering:
  --feature common_mta,common_sops      Networks with ALL of these features
  --juridical-person "BBMRI-ERIC"       Networks of ANY of these juridical persons
  --where "juridical_person != ''"      Advanced filter expression`,
	Args: cobra.NoArgs,
	RunE: withContainer(func(cc *CommandContext, _ *cobra.Command, _ []string) error {
		if err := networksOpts.ValidateFlags(); err != nil {
			return err
		}
		ctx, cancel := networksOpts.ApplyToContext(cc.Context)
		defer cancel()

		w, closeOut, err := networksOpts.Writer()
		if err != nil {
			return err
		}
		defer closeOut()

		req := dto.ListNetworksRequest{
			Selections: buildSelections(featureFilter, juridicalFilter),
			Where:      whereExpr,
		}
		return runNetworks(ctx, cc.Container, req, &networksOpts, w)
	}),
}

func init() {
	rootCmd.AddCommand(networksCmd)
	networksOpts.RegisterFlags(networksCmd)

	networksCmd.Flags().StringSliceVar(&featureFilter, "feature", nil, "Require these features (comma-separated feature ids)")
	networksCmd.Flags().StringSliceVar(&juridicalFilter, "juridical-person", nil, "Match any of these juridical persons")
	networksCmd.Flags().StringVar(&whereExpr, "where", "", "Filter expression over network fields (e.g. \"common_mta && email != ''\")")
}

// buildSelections maps filter flags onto facet selections. Empty flags
// leave their facet unselected.
func buildSelections(features, juridicalPersons []string) map[string][]string {
	selections := make(map[string][]string, 2)
	if len(features) > 0 {
		selections[domainservices.FacetFeatures] = features
	}
	if len(juridicalPersons) > 0 {
		selections[domainservices.FacetJuridicalPerson] = juridicalPersons
	}
	return selections
}

func runNetworks(ctx context.Context, c *container.Container, req dto.ListNetworksRequest, opts *CommonOptions, w io.Writer) error {
	summaries, err := c.NetworkService().ListNetworks(ctx, req)
	if err != nil {
		return err
	}

	formatter, err := c.FormatterFactory().Create(opts.Format, w, opts.FormatterOptions(c.SystemConfig().UI.GetColorMode(), w))
	if err != nil {
		return err
	}
	if err := formatter.FormatSummaries(summaries); err != nil {
		return fmt.Errorf("failed to format output: %w", err)
	}
	return nil
}
