package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/charmbracelet/huh"
	"github.com/spf13/cobra"

	"github.com/biobank-directory/dirview/internal/domain/entities"
	"github.com/biobank-directory/dirview/internal/infrastructure/container"
	"github.com/biobank-directory/dirview/internal/ui/components"
)

const networkRoutePrefix = "/network/"

var networkOpts = DefaultCommonOptions()

// networkCmd prints the report card of one network.
var networkCmd = &cobra.Command{
	Use:   "network [path-or-id]",
	Short: "Print the report card of a network",
	Long: `Print the report card of a network: identity, contact and the common
collection details. The argument is either a network id ("n-001") or a route
("/network/n-001"). Without an argument an interactive terminal prompts for
the network.`,
	Args: cobra.MaximumNArgs(1),
	RunE: withContainer(func(cc *CommandContext, _ *cobra.Command, args []string) error {
		if err := networkOpts.ValidateFlags(); err != nil {
			return err
		}
		ctx, cancel := networkOpts.ApplyToContext(cc.Context)
		defer cancel()

		var arg string
		if len(args) == 1 {
			arg = args[0]
		} else {
			picked, err := promptNetwork(ctx, cc.Container)
			if err != nil {
				return err
			}
			arg = picked
		}

		w, closeOut, err := networkOpts.Writer()
		if err != nil {
			return err
		}
		defer closeOut()

		return runNetwork(ctx, cc.Container, networkRoute(arg), &networkOpts, w)
	}),
}

func init() {
	rootCmd.AddCommand(networkCmd)
	networkOpts.RegisterFlags(networkCmd)
}

// networkRoute turns a bare id into a network route; routes pass through.
func networkRoute(arg string) string {
	arg = strings.TrimSpace(arg)
	if strings.Contains(arg, "/") {
		return arg
	}
	return networkRoutePrefix + arg
}

// runNetwork navigates the store to route, loads the report and writes the
// card view model to w.
func runNetwork(ctx context.Context, c *container.Container, route string, opts *CommonOptions, w io.Writer) error {
	st := c.Store()
	st.Navigate(route)

	if err := st.LoadNetworkReportForRoute(ctx); err != nil {
		var notFound *entities.NetworkNotFoundError
		if errors.As(err, &notFound) {
			return fmt.Errorf("no network %q in %v", notFound.ID, c.DatasetPaths())
		}
		return err
	}

	formatter, err := c.FormatterFactory().Create(opts.Format, w, opts.FormatterOptions(c.SystemConfig().UI.GetColorMode(), w))
	if err != nil {
		return err
	}

	card := components.NewNetworkReportCard(st)
	if err := formatter.FormatReport(card.ViewModel()); err != nil {
		return fmt.Errorf("failed to format output: %w", err)
	}
	return nil
}

// promptNetwork asks for a network with a select prompt.
func promptNetwork(ctx context.Context, c *container.Container) (string, error) {
	if !isTerminal(os.Stdin) {
		return "", errors.New("a network id is required when stdin is not a terminal")
	}

	networks, err := c.NetworkService().Networks(ctx)
	if err != nil {
		return "", err
	}
	if len(networks) == 0 {
		return "", errors.New("the directory has no networks")
	}

	var id string
	err = huh.NewSelect[string]().
		Title("Network").
		Options(networkOptions(networks)...).
		Value(&id).
		Run()
	if err != nil {
		return "", fmt.Errorf("prompt canceled: %w", err)
	}
	return id, nil
}

// networkOptions builds prompt options labeled "Name (id)".
func networkOptions(networks []entities.Network) []huh.Option[string] {
	opts := make([]huh.Option[string], 0, len(networks))
	for i := range networks {
		n := &networks[i]
		opts = append(opts, huh.NewOption(fmt.Sprintf("%s (%s)", n.Title(), n.ID), n.ID))
	}
	return opts
}
