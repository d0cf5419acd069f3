package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/mmynk/mealplanner/internal/calculator"
	"github.com/mmynk/mealplanner/internal/config"
	"github.com/mmynk/mealplanner/internal/metrics"
	"github.com/mmynk/mealplanner/internal/models"
	"github.com/mmynk/mealplanner/internal/service"
	"github.com/mmynk/mealplanner/internal/storage/sqlite"
	"github.com/mmynk/mealplanner/pkg/logging"
)

func main() {
	cfg, err := config.NewFromEnv()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load configuration: %v\n", err)
		os.Exit(1)
	}
	logger := logging.Setup(cfg.LogLevel, cfg.LogFormat)

	if len(os.Args) < 2 {
		printUsage(os.Stderr)
		os.Exit(1)
	}

	if err := run(context.Background(), cfg, logger, os.Args[1:], os.Stdout); err != nil {
		if errors.Is(err, errUsage) {
			printUsage(os.Stderr)
		}
		logger.Error("Command failed", "command", os.Args[1], "error", err)
		os.Exit(1)
	}
}

var errUsage = errors.New("unknown command")

// run executes one subcommand against the configured store.
func run(ctx context.Context, cfg *config.Config, logger *slog.Logger, args []string, out io.Writer) error {
	store, err := sqlite.New(cfg.DBPath, cfg.DocumentKey)
	if err != nil {
		return fmt.Errorf("failed to initialize storage: %w", err)
	}
	defer store.Close()
	logger.Debug("Storage initialized", "database", cfg.DBPath, "key", cfg.DocumentKey)

	registry := prometheus.NewRegistry()
	planner, err := service.NewPlanner(ctx, store, logger, service.WithMetrics(metrics.New(registry)))
	if err != nil {
		return err
	}

	switch args[0] {
	case "stats":
		err = statsCmd(planner, out)
	case "shopping":
		err = shoppingCmd(ctx, planner, args[1:], out)
	case "export":
		err = exportCmd(planner, args[1:], out)
	case "import":
		err = importCmd(ctx, planner, args[1:])
	case "reset":
		err = planner.Reset(ctx)
	default:
		return fmt.Errorf("%w: %s", errUsage, args[0])
	}
	if err != nil {
		return err
	}

	if cfg.MetricsFile != "" {
		if err := prometheus.WriteToTextfile(cfg.MetricsFile, registry); err != nil {
			return fmt.Errorf("failed to write metrics: %w", err)
		}
	}
	return nil
}

func statsCmd(p *service.Planner, out io.Writer) error {
	meals := p.MealStats()
	fmt.Fprintf(out, "Meals: %d (avg rating %.2f, total cost %.2f EUR, avg cost %.2f EUR)\n",
		meals.TotalMeals, meals.AverageRating, meals.TotalCost, meals.AverageCost)
	for _, c := range []models.Category{models.CategoryBreakfast, models.CategoryLunch, models.CategoryDinner, models.CategorySnack} {
		fmt.Fprintf(out, "  %-9s %d\n", c, meals.ByCategory[c])
	}
	if meals.MostCooked != nil {
		fmt.Fprintf(out, "Most cooked: %s (%dx)\n", meals.MostCooked.Name, meals.MostCooked.TimesCooked)
	}

	pe := p.PickyEaterStats()
	fmt.Fprintf(out, "Tried foods: %d (liked %d, disliked %d, neutral %d, success %d%%)\n",
		pe.TotalTried, pe.Liked, pe.Disliked, pe.Neutral, pe.SuccessRate)
	fmt.Fprintf(out, "Likes: %d, dislikes: %d\n", pe.LikeCount, pe.DislikeCount)

	hf := p.HelloFreshStats()
	fmt.Fprintf(out, "HelloFresh recipes: %d (converted %d, rated %d, avg rating %.2f)\n",
		hf.TotalRecipes, hf.ConvertedToMeals, hf.RatedRecipes, hf.AverageRating)

	top := p.MostUsedIngredients(calculator.DefaultIngredientLimit)
	if len(top) > 0 {
		fmt.Fprintln(out, "Most used ingredients:")
		for _, ing := range top {
			fmt.Fprintf(out, "  %s (%d)\n", ing.Name, ing.Count)
		}
	}
	return nil
}

func shoppingCmd(ctx context.Context, p *service.Planner, args []string, out io.Writer) error {
	fs := flag.NewFlagSet("shopping", flag.ContinueOnError)
	week := fs.String("week", p.CurrentWeekStart(), "any date in the week (yyyy-mm-dd)")
	save := fs.Bool("save", false, "replace the stored shopping list")
	by := fs.String("by", "supermarket", "group by supermarket or category")
	if err := fs.Parse(args); err != nil {
		return err
	}

	var items []models.ShoppingListItem
	var err error
	if *save {
		items, err = p.RegenerateShoppingList(ctx, *week)
	} else {
		items, err = p.PreviewShoppingList(*week)
	}
	if err != nil {
		return err
	}

	var grouping calculator.Grouping
	switch *by {
	case "supermarket":
		grouping = calculator.GroupBySupermarket(items)
	case "category":
		grouping = calculator.GroupByCategory(items)
	default:
		return fmt.Errorf("-by must be supermarket or category, got %q", *by)
	}

	if len(items) == 0 {
		fmt.Fprintln(out, "Nothing to buy.")
		return nil
	}
	for _, g := range grouping.Groups() {
		fmt.Fprintf(out, "%s:\n", g.Label)
		for _, item := range g.Items {
			mark := " "
			if item.Checked {
				mark = "x"
			}
			fmt.Fprintf(out, "  [%s] %s %g %s\n", mark, item.Name, item.Amount, item.Unit)
		}
	}
	return nil
}

func exportCmd(p *service.Planner, args []string, out io.Writer) error {
	fs := flag.NewFlagSet("export", flag.ContinueOnError)
	path := fs.String("o", "", "write to file instead of stdout")
	if err := fs.Parse(args); err != nil {
		return err
	}

	text, err := p.Export()
	if err != nil {
		return err
	}
	if *path == "" {
		_, err = fmt.Fprintln(out, text)
		return err
	}
	return os.WriteFile(*path, []byte(text+"\n"), 0644)
}

func importCmd(ctx context.Context, p *service.Planner, args []string) error {
	fs := flag.NewFlagSet("import", flag.ContinueOnError)
	path := fs.String("f", "", "exported document to import (required)")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if *path == "" {
		return errors.New("import requires -f")
	}

	data, err := os.ReadFile(*path)
	if err != nil {
		return fmt.Errorf("failed to read import file: %w", err)
	}
	return p.Import(ctx, strings.TrimSpace(string(data)))
}

func printUsage(w io.Writer) {
	fmt.Fprintln(w, "Usage: mealplanner <command> [arguments]")
	fmt.Fprintln(w, "")
	fmt.Fprintln(w, "Commands:")
	fmt.Fprintln(w, "  stats                                  Show meal, picky eater and HelloFresh statistics")
	fmt.Fprintln(w, "  shopping [-week date] [-by category] [-save]")
	fmt.Fprintln(w, "                                         Show the shopping list for a week")
	fmt.Fprintln(w, "  export [-o file]                       Print the document as JSON")
	fmt.Fprintln(w, "  import -f file                         Replace the document with an export")
	fmt.Fprintln(w, "  reset                                  Delete the stored document")
}
