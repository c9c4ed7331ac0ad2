package main

import (
	"errors"
	"os"

	"github.com/spf13/cobra"

	"github.com/biobank-directory/dirview/internal/infrastructure/system"
	"github.com/biobank-directory/dirview/internal/ui/render"
	"github.com/biobank-directory/dirview/internal/ui/tui"
)

// browseCmd runs the interactive directory browser.
var browseCmd = &cobra.Command{
	Use:   "browse",
	Short: "Browse the directory interactively",
	Long: `Browse the directory in the terminal. The left pane holds one checkbox
filter group per facet, the right pane the matching networks. Enter on a
network opens its report card.

Keys: tab switches panes, up/down (k/j) move, space/enter toggle or open,
esc closes the report card, q quits.`,
	Args: cobra.NoArgs,
	RunE: withContainer(func(cc *CommandContext, _ *cobra.Command, _ []string) error {
		if !isTerminal(os.Stdout) {
			return errors.New("browse needs an interactive terminal")
		}

		facets, err := cc.Container.NetworkService().Facets(cc.Context)
		if err != nil {
			return err
		}

		ui := cc.Container.SystemConfig().UI
		m := tui.New(cc.Context, cc.Container.Store(), tui.Options{
			Logger:             cc.Logger,
			Facets:             facets,
			Styles:             browseStyles(ui.GetColorMode()),
			MaxVisibleOptions:  ui.GetMaxVisibleOptions(),
			InitiallyCollapsed: ui.InitiallyCollapsed,
		})
		return tui.Run(cc.Context, m)
	}),
}

func init() {
	rootCmd.AddCommand(browseCmd)
}

func browseStyles(mode system.ColorMode) render.Styles {
	if mode == system.ColorNever {
		return render.PlainStyles()
	}
	return render.DefaultStyles()
}
