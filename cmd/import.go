// Package cmd — import command.
// This is the main command that orchestrates an import:
// fetch → extraction cascade → tag normalization → render → write for URLs,
// and read-file → text section parsing for PDF/OCR text dumps.
//
// It handles flag validation, renderer selection, and the --all batch mode.
package cmd

import (
	"context"
	"fmt"
	"net/url"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"

	"github.com/gaurav-prasanna/recipepipe/core"
	"github.com/gaurav-prasanna/recipepipe/core/fetch"
	"github.com/gaurav-prasanna/recipepipe/core/output"
	"github.com/gaurav-prasanna/recipepipe/core/pipeline"
	"github.com/gaurav-prasanna/recipepipe/core/render"
	"github.com/gaurav-prasanna/recipepipe/core/tags"
	"github.com/gaurav-prasanna/recipepipe/core/textparse"
	"github.com/gaurav-prasanna/recipepipe/crawl"
)

// Flag variables.
var (
	flagAll        bool
	flagJSON       bool
	flagMarkdown   bool
	flagPDF        bool
	flagReviewTags bool
	flagOutputDir  string
)

var importCmd = &cobra.Command{
	Use:   "import <url|textfile>",
	Short: "Import a recipe from a URL or an extracted-text file",
	Long: `Import runs the extraction cascade over a recipe source and writes the
canonical recipe in the selected output format.

A URL argument is fetched and goes through structured-data extraction, the
HTML fallback scraper, and metadata supplementation. Any other argument is
read as a plain-text file (PDF-extracted or OCR output) and parsed by the
text section parser.

Examples:
  recipepipe import https://example.com/recipes/tacos --json
  recipepipe import scanned-recipe.txt --markdown --review-tags
  recipepipe import https://example.com --all --json --output_dir ./out`,
	Args: cobra.ExactArgs(1),
	RunE: runImport,
}

func init() {
	rootCmd.AddCommand(importCmd)

	importCmd.Flags().BoolVar(&flagAll, "all", false, "Discover and import all recipe pages on the site (URL sources only)")

	// Output format flags (mutually exclusive).
	importCmd.Flags().BoolVar(&flagJSON, "json", false, "Output canonical JSON")
	importCmd.Flags().BoolVar(&flagMarkdown, "markdown", false, "Output a Markdown recipe card")
	importCmd.Flags().BoolVar(&flagPDF, "pdf", false, "Output a PDF recipe card")

	importCmd.Flags().BoolVar(&flagReviewTags, "review-tags", false, "Print tag standardization changes before writing")
	importCmd.Flags().StringVar(&flagOutputDir, "output_dir", "", "Output directory (default: current directory)")
	_ = viper.BindPFlag("output_dir", importCmd.Flags().Lookup("output_dir"))
}

func runImport(cmd *cobra.Command, args []string) error {
	source := args[0]

	if err := validateFlags(source); err != nil {
		return err
	}

	log, err := buildLogger()
	if err != nil {
		return err
	}
	defer log.Sync() //nolint:errcheck

	renderer, err := selectRenderer()
	if err != nil {
		return err
	}

	writer, err := output.New(viper.GetString("output_dir"))
	if err != nil {
		return fmt.Errorf("initializing output writer: %w", err)
	}

	normalizer := tags.New(normalizerOptions()...)
	ctx := context.Background()

	if isURL(source) {
		fetcher := fetch.New()
		orch := pipeline.New(pipeline.WithLogger(log))
		if flagAll {
			return runBatch(ctx, source, fetcher, orch, normalizer, renderer, writer, log)
		}
		return runURL(ctx, source, fetcher, orch, normalizer, renderer, writer)
	}
	return runTextFile(source, normalizer, renderer, writer)
}

// runURL imports a single recipe page.
func runURL(
	ctx context.Context,
	rawURL string,
	fetcher core.Fetcher,
	orch *pipeline.Orchestrator,
	normalizer *tags.Normalizer,
	renderer core.Renderer,
	writer *output.Writer,
) error {
	recipe, err := importURL(ctx, rawURL, fetcher, orch, normalizer)
	if err != nil {
		return err
	}

	data, err := renderer.Render(recipe)
	if err != nil {
		return fmt.Errorf("render: %w", err)
	}

	path, err := writer.Write(rawURL, data, renderer.Extension())
	if err != nil {
		return err
	}
	fmt.Fprintf(os.Stdout, "✓ Written: %s\n", path)
	return nil
}

// runBatch discovers all recipe pages on the site and imports each.
func runBatch(
	ctx context.Context,
	rawURL string,
	fetcher core.Fetcher,
	orch *pipeline.Orchestrator,
	normalizer *tags.Normalizer,
	renderer core.Renderer,
	writer *output.Writer,
	log *zap.Logger,
) error {
	fmt.Fprintf(os.Stdout, "Discovering recipes from %s...\n", rawURL)

	urls, err := crawl.DiscoverRecipes(ctx, rawURL, fetcher)
	if err != nil {
		return fmt.Errorf("discovering recipes: %w", err)
	}

	log.Info("discovered recipe pages", zap.String("start", rawURL), zap.Int("count", len(urls)))
	fmt.Fprintf(os.Stdout, "Found %d recipe pages to import\n", len(urls))

	var errCount int
	for i, pageURL := range urls {
		fmt.Fprintf(os.Stdout, "[%d/%d] Importing %s\n", i+1, len(urls), pageURL)

		recipe, err := importURL(ctx, pageURL, fetcher, orch, normalizer)
		if err != nil {
			log.Warn("page import failed", zap.String("url", pageURL), zap.Error(err))
			fmt.Fprintf(os.Stderr, "  ✗ Error: %v\n", err)
			errCount++
			continue
		}

		data, err := renderer.Render(recipe)
		if err != nil {
			log.Warn("render failed", zap.String("url", pageURL), zap.Error(err))
			fmt.Fprintf(os.Stderr, "  ✗ Render error: %v\n", err)
			errCount++
			continue
		}

		path, err := writer.WriteBatch(pageURL, data, renderer.Extension())
		if err != nil {
			log.Warn("write failed", zap.String("url", pageURL), zap.Error(err))
			fmt.Fprintf(os.Stderr, "  ✗ Write error: %v\n", err)
			errCount++
			continue
		}
		log.Info("page imported", zap.String("url", pageURL), zap.String("path", path))
		fmt.Fprintf(os.Stdout, "  ✓ Written: %s\n", path)
	}

	log.Info("batch finished", zap.Int("imported", len(urls)-errCount), zap.Int("failed", errCount))
	if errCount > 0 {
		fmt.Fprintf(os.Stderr, "\n%d/%d recipes failed\n", errCount, len(urls))
	}
	return nil
}

// importURL fetches one page and runs it through the cascade and tag
// normalization.
func importURL(
	ctx context.Context,
	rawURL string,
	fetcher core.Fetcher,
	orch *pipeline.Orchestrator,
	normalizer *tags.Normalizer,
) (core.CanonicalRecipe, error) {
	result, err := fetcher.Fetch(ctx, rawURL)
	if err != nil {
		return core.CanonicalRecipe{}, fmt.Errorf("fetch: %w", err)
	}

	recipe, err := orch.Extract(core.RawDocument{
		Kind:     core.KindHTML,
		Body:     result.HTML,
		SourceID: rawURL,
	})
	if err != nil {
		return core.CanonicalRecipe{}, err
	}

	recipe.Tags = finalTags(recipe.Tags, normalizer)
	return recipe, nil
}

// runTextFile imports a PDF-extracted or OCR'd text dump.
func runTextFile(
	path string,
	normalizer *tags.Normalizer,
	renderer core.Renderer,
	writer *output.Writer,
) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("reading %s: %w", path, err)
	}

	frag, err := textparse.Parse(string(data))
	if err != nil {
		return err
	}
	if !frag.HasContent() {
		return fmt.Errorf("importing %s: %w", path, core.ErrNoRecipe)
	}

	recipe := frag.Canonical("")
	recipe.Tags = finalTags(recipe.Tags, normalizer)

	out, err := renderer.Render(recipe)
	if err != nil {
		return fmt.Errorf("render: %w", err)
	}

	written, err := writer.Write(path, out, renderer.Extension())
	if err != nil {
		return err
	}
	fmt.Fprintf(os.Stdout, "✓ Written: %s\n", written)
	return nil
}

// finalTags standardizes tags and, with --review-tags, prints what changed.
// The CLI is non-interactive: the report is informational and the
// standardized values are applied.
func finalTags(raw []string, normalizer *tags.Normalizer) []string {
	if !flagReviewTags {
		return normalizer.Standardize(raw)
	}

	mods := normalizer.StandardizeTracked(raw)
	var final []string
	for _, m := range mods {
		switch {
		case m.Standardized == "":
			fmt.Fprintf(os.Stdout, "  tag dropped: %q\n", m.Original)
		case m.WasModified:
			fmt.Fprintf(os.Stdout, "  tag changed: %q → %q\n", m.Original, m.Standardized)
			final = append(final, m.Standardized)
		default:
			final = append(final, m.Standardized)
		}
	}
	return final
}

// normalizerOptions reads rule-table extensions from the config file.
func normalizerOptions() []tags.Option {
	var opts []tags.Option
	if extra := viper.GetStringMapString("tags.synonyms"); len(extra) > 0 {
		opts = append(opts, tags.WithSynonyms(extra))
	}
	if words := viper.GetStringSlice("tags.noise_words"); len(words) > 0 {
		opts = append(opts, tags.WithNoiseWords(words...))
	}
	if junk := viper.GetStringSlice("tags.junk"); len(junk) > 0 {
		opts = append(opts, tags.WithJunkTags(junk...))
	}
	return opts
}

// isURL reports whether the argument is a fetchable URL rather than a file.
func isURL(arg string) bool {
	parsed, err := url.Parse(arg)
	return err == nil && (parsed.Scheme == "http" || parsed.Scheme == "https") && parsed.Host != ""
}

// validateFlags checks that exactly one output format is chosen and that
// --all is only used with URL sources.
func validateFlags(source string) error {
	formatCount := 0
	if flagJSON {
		formatCount++
	}
	if flagMarkdown {
		formatCount++
	}
	if flagPDF {
		formatCount++
	}

	if formatCount == 0 {
		return fmt.Errorf("exactly one output format is required: --json, --markdown, or --pdf")
	}
	if formatCount > 1 {
		return fmt.Errorf("only one output format allowed per run (got %d)", formatCount)
	}

	if flagAll && !isURL(source) {
		return fmt.Errorf("--all requires a URL source")
	}

	return nil
}

// selectRenderer creates the appropriate Renderer based on flags.
func selectRenderer() (core.Renderer, error) {
	switch {
	case flagJSON:
		return render.NewJSONRenderer(), nil
	case flagMarkdown:
		return render.NewMarkdownRenderer(), nil
	case flagPDF:
		return render.NewPDFRenderer(), nil
	default:
		return nil, fmt.Errorf("no output format selected")
	}
}
