package main

import (
	"context"
	"fmt"
	"io"
	"net/url"
	"strings"
	"unicode/utf8"

	"github.com/spf13/cobra"

	"github.com/kalambet/folio/internal/config"
	"github.com/kalambet/folio/internal/resume"
	"github.com/kalambet/folio/internal/storage"
	"github.com/kalambet/folio/internal/view"
)

// --- skills ---

var skillsCmd = &cobra.Command{
	Use:   "skills",
	Short: "Show skill bars from the running server",
	Long: `Show skill bars from the running server, highest proficiency first.

Examples:
  folio skills
  folio skills --category Languages`,
	RunE: func(cmd *cobra.Command, args []string) error {
		category, _ := cmd.Flags().GetString("category")

		client, err := newAPIClient()
		if err != nil {
			return err
		}
		return runSkills(cmd.Context(), client, cmd.OutOrStdout(), category)
	},
}

func init() {
	skillsCmd.Flags().String("category", resume.AllCategories, "only show skills in this category")
}

func runSkills(ctx context.Context, client *apiClient, w io.Writer, category string) error {
	resp, err := client.get(ctx, "/api/skills", url.Values{"category": {category}})
	if err != nil {
		return err
	}

	var sv view.SkillsView
	if err := decodeJSON(resp, &sv); err != nil {
		return err
	}

	if len(sv.Bars) == 0 {
		printWarning("No skills in category %q", sv.Selected)
		return nil
	}

	width := 0
	for _, b := range sv.Bars {
		width = max(width, utf8.RuneCountInString(b.Title))
	}
	for _, b := range sv.Bars {
		fmt.Fprintln(w, formatBar(b, width))
	}
	return nil
}

// --- categories ---

var categoriesCmd = &cobra.Command{
	Use:   "categories",
	Short: "List skill categories in display order",
	RunE: func(cmd *cobra.Command, args []string) error {
		client, err := newAPIClient()
		if err != nil {
			return err
		}
		return runCategories(cmd.Context(), client, cmd.OutOrStdout())
	},
}

func runCategories(ctx context.Context, client *apiClient, w io.Writer) error {
	resp, err := client.get(ctx, "/api/categories", nil)
	if err != nil {
		return err
	}

	var categories []view.CategoryButton
	if err := decodeJSON(resp, &categories); err != nil {
		return err
	}

	for _, c := range categories {
		if c.Color == "" {
			fmt.Fprintf(w, "  %s\n", c.Name)
			continue
		}
		fmt.Fprintf(w, "  %s %s\n", colorize(paletteANSI[c.Color], "■"), c.Name)
	}
	return nil
}

// --- background ---

var backgroundCmd = &cobra.Command{
	Use:   "background",
	Short: "Show education, work, research and languages",
	RunE: func(cmd *cobra.Command, args []string) error {
		client, err := newAPIClient()
		if err != nil {
			return err
		}
		return runBackground(cmd.Context(), client, cmd.OutOrStdout())
	},
}

func runBackground(ctx context.Context, client *apiClient, w io.Writer) error {
	resp, err := client.get(ctx, "/api/background", nil)
	if err != nil {
		return err
	}

	var bg view.BackgroundView
	if err := decodeJSON(resp, &bg); err != nil {
		return err
	}

	for i, s := range bg.Sections {
		if i > 0 {
			fmt.Fprintln(w)
		}
		fmt.Fprintln(w, colorize(colorBold, s.Title))
		for _, e := range s.Entries {
			title := e.Title
			if e.Link != "" {
				title += " " + colorize(colorDim, "<"+e.Link+">")
			}
			fmt.Fprintf(w, "  %s\n", title)
			for _, d := range e.Degrees {
				fmt.Fprintf(w, "    %s, %s\n", d.Title, d.Description)
			}
			if text := view.PlainText(e.Description); text != "" {
				for _, line := range strings.Split(text, "\n") {
					fmt.Fprintf(w, "    %s\n", line)
				}
			}
		}
	}

	if bg.Download.URL != "" {
		fmt.Fprintf(w, "\n%s %s\n", bg.Download.Label(), colorize(colorDim, bg.Download.URL))
	}
	return nil
}

// --- validate ---

var validateCmd = &cobra.Command{
	Use:   "validate [path]",
	Short: "Check resume data and the resume PDF",
	Long: `Check resume data and the resume PDF.

Without a path the configured data.path is checked (or the bundled sample).`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load()
		if err != nil {
			return err
		}
		if len(args) == 1 {
			cfg.Data.Path = args[0]
		}
		return runValidate(cfg)
	},
}

func runValidate(cfg config.Config) error {
	doc, err := storage.Load(cfg.Data.Path)
	if err != nil {
		printError("Resume data is invalid")
		return err
	}
	source := cfg.Data.Path
	if source == "" {
		source = "bundled sample"
	}
	printSuccess("Resume data OK (%s)", source)
	printStatus("Skills", "%d in %d categories", len(doc.Skills), len(resume.Categories(doc.Skills))-1)
	printStatus("Education", "%d", len(doc.Education))
	printStatus("Work", "%d", len(doc.Work))
	printStatus("Research", "%d", len(doc.Research))
	printStatus("Languages", "%d", len(doc.Languages))

	_, dl, err := resumePDF(cfg)
	if err != nil {
		printError("Resume PDF is invalid")
		return err
	}
	printSuccess("Resume PDF OK (%s)", dl.Name)
	printStatus("Pages", "%d", dl.Pages)
	if dl.Title != "" {
		printStatus("Title", "%s", dl.Title)
	} else {
		printWarning("Resume PDF has no document title")
	}
	return nil
}

// --- data ---

var dataCmd = &cobra.Command{
	Use:   "data",
	Short: "Manage resume data files",
}

var dataImportCmd = &cobra.Command{
	Use:   "import",
	Short: "Build a SQLite resume database from a JSON or YAML file",
	Long: `Build a SQLite resume database from a JSON or YAML file.

The database replaces any resume already stored in it and can then be used
as data.path.

Examples:
  folio data import --from resume.yaml --to resume.db`,
	RunE: func(cmd *cobra.Command, args []string) error {
		from, _ := cmd.Flags().GetString("from")
		to, _ := cmd.Flags().GetString("to")
		if from == "" || to == "" {
			return fmt.Errorf("--from and --to are required")
		}
		return runImport(from, to)
	},
}

func init() {
	dataImportCmd.Flags().String("from", "", "source .json or .yaml file")
	dataImportCmd.Flags().String("to", "", "destination .db file")
	dataCmd.AddCommand(dataImportCmd)
}

func runImport(from, to string) error {
	if f, err := storage.FormatOf(to); err != nil || f != storage.FormatSQLite {
		return fmt.Errorf("destination %s must be a .db or .sqlite file", to)
	}

	printStep("Reading %s", from)
	doc, err := storage.Load(from)
	if err != nil {
		return err
	}

	store, err := storage.Open(to, false)
	if err != nil {
		return err
	}
	defer store.Close()

	printStep("Writing %s", to)
	if err := store.ImportResume(doc); err != nil {
		return err
	}

	printSuccess("Imported %d skills and %d content items into %s",
		len(doc.Skills), len(doc.Education)+len(doc.Work)+len(doc.Research)+len(doc.Languages), to)
	return nil
}

// --- config ---

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Show or update configuration",
}

var configShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Show current configuration",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load()
		if err != nil {
			return err
		}

		w := cmd.OutOrStdout()
		for _, k := range config.ShowAll(cfg) {
			fmt.Fprintf(w, "  %s = %s %s\n", colorize(colorBold, k.Key), k.Value, colorize(colorDim, "("+k.EnvVar+")"))
		}
		return nil
	},
}

var configSetCmd = &cobra.Command{
	Use:   "set <key> <value>",
	Short: "Set a configuration value",
	Long:  "Set a configuration value.\n\nValid keys: " + strings.Join(config.ValidKeys(), ", "),
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		key, value := args[0], args[1]

		if err := config.SetKey(key, value); err != nil {
			return err
		}

		printSuccess("Set %s = %s", key, value)
		return nil
	},
}

func init() {
	configCmd.AddCommand(configShowCmd)
	configCmd.AddCommand(configSetCmd)
}
