package main

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/ShayCichocki/oulab/internal/catalog"
	"github.com/ShayCichocki/oulab/internal/i18n"
	"github.com/ShayCichocki/oulab/pkg/models"
)

var catalogCategory string

var catalogCmd = &cobra.Command{
	Use:   "catalog",
	Short: "List the bus tracks",
	Long: `List the tracks shown on the dashboard, grouped by category.

The built-in catalog is used unless catalog.file is configured.
Categories: preparation, operational.`,
	RunE: runCatalog,
}

func init() {
	catalogCmd.Flags().StringVar(&catalogCategory, "category", "", "Only list tracks in this category")
}

func runCatalog(cmd *cobra.Command, args []string) error {
	s, err := loadSettings()
	if err != nil {
		return err
	}
	return writeCatalog(cmd.OutOrStdout(), s.locale, s.catalog, models.Category(catalogCategory))
}

// writeCatalog prints the tracks of category, or of every category when empty.
func writeCatalog(w io.Writer, l i18n.Locale, cat *catalog.Catalog, category models.Category) error {
	categories := cat.Categories()
	if category != "" {
		if _, err := cat.Tracks(category); err != nil {
			return err
		}
		categories = []models.Category{category}
	}

	s := l.Strings()
	for i, c := range categories {
		tracks, err := cat.Tracks(c)
		if err != nil {
			return err
		}
		if i > 0 {
			fmt.Fprintln(w)
		}
		fmt.Fprintf(w, "%s (%s)\n", s.Category(c), c)
		for _, t := range tracks {
			printTrack(w, s, t)
		}
	}
	return nil
}
