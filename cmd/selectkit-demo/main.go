package main

import (
	"fmt"
	"os"

	"github.com/charmbracelet/huh"
	"github.com/spf13/cobra"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/tuikit/selectkit/catalog"
	"github.com/tuikit/selectkit/selectfield"
)

var version = "0.1.0"

var (
	flagMulti      bool
	flagCheckboxes bool
	flagModal      bool
	flagCatalog    string
	flagDefault    string
	flagNone       string
)

var rootCmd = &cobra.Command{
	Use:   "selectkit-demo",
	Short: "Interactive demo of the selectkit selection field",
	Long:  "selectkit-demo runs the selection field against a built-in or YAML-defined option collection and prints the final selection.",
	RunE:  run,
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Show version",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("selectkit-demo %s\n", version)
	},
}

func init() {
	rootCmd.Flags().BoolVar(&flagMulti, "multi", false, "multi-value selection")
	rootCmd.Flags().BoolVar(&flagCheckboxes, "checkboxes", false, "multi-value selection with checkbox rows")
	rootCmd.Flags().BoolVar(&flagModal, "modal", false, "present the menu as a full-screen modal")
	rootCmd.Flags().StringVar(&flagCatalog, "catalog", "", "load options from a YAML catalog file")
	rootCmd.Flags().StringVar(&flagDefault, "default", "", "initial selection (by option value)")
	rootCmd.Flags().StringVar(&flagNone, "none", selectfield.DefaultNoneLabel, "label of the clear-selection row (empty disables)")
	rootCmd.AddCommand(versionCmd)
}

// builtins are the demo option collections offered when no catalog file is
// given.
var builtins = map[string][]any{
	"fruits": {"apple", "banana", "cherry", "elderberry", "fig"},
	"regions": {
		map[string]any{"value": "us-east-1", "label": "US East (N. Virginia)"},
		map[string]any{"value": "us-west-2", "label": "US West (Oregon)"},
		map[string]any{"value": "eu-west-1", "label": "Europe (Ireland)"},
		map[string]any{"value": "ap-south-1", "label": "Asia Pacific (Mumbai)"},
	},
}

func run(cmd *cobra.Command, args []string) error {
	title := "Select"
	var options []any

	if flagCatalog != "" {
		c, err := catalog.Load(flagCatalog)
		if err != nil {
			return err
		}
		options = c.ToOptions()
		if c.Title != "" {
			title = c.Title
		}
	} else {
		choice := "fruits"
		err := huh.NewForm(
			huh.NewGroup(
				huh.NewSelect[string]().
					Title("Which demo collection?").
					Options(
						huh.NewOption("Fruits (string options)", "fruits"),
						huh.NewOption("Regions (record options)", "regions"),
					).
					Value(&choice),
			),
		).Run()
		if err != nil {
			return err
		}
		options = builtins[choice]
		title = choice
	}

	fieldOpts := []selectfield.FieldOption{
		selectfield.WithTitle(title),
		selectfield.WithPlaceholder("Pick from " + title),
		selectfield.WithWidth(40),
	}
	switch {
	case flagCheckboxes:
		fieldOpts = append(fieldOpts, selectfield.WithMode(selectfield.ModeCheckboxes))
	case flagMulti:
		fieldOpts = append(fieldOpts, selectfield.WithMode(selectfield.ModeMulti))
	}
	if flagModal {
		fieldOpts = append(fieldOpts, selectfield.WithMenu(selectfield.MenuModal))
	}
	if flagNone == "" {
		fieldOpts = append(fieldOpts, selectfield.WithoutNoneOption())
	} else {
		fieldOpts = append(fieldOpts, selectfield.WithNoneOption(flagNone))
	}
	if flagDefault != "" {
		def := any(flagDefault)
		if flagMulti || flagCheckboxes {
			fieldOpts = append(fieldOpts, selectfield.WithDefault([]any{def}))
		} else {
			fieldOpts = append(fieldOpts, selectfield.WithDefault(def))
		}
	}

	field := selectfield.New(options, fieldOpts...)
	field.Focus()

	model := demoModel{field: field, title: title}
	final, err := tea.NewProgram(model, tea.WithAltScreen()).Run()
	if err != nil {
		return err
	}

	if last := final.(demoModel).last; last != nil {
		fmt.Printf("selected: %v\n", last)
	} else {
		fmt.Println("nothing selected")
	}
	return nil
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
