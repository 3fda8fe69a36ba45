package cli

import (
	"fmt"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"nutrition/internal/domain"
)

func newSearchCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "search <query>",
		Short: "Search the food catalog by name or brand",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			d, err := setup(cmd.Context())
			if err != nil {
				return err
			}
			defer d.close()

			query := strings.Join(args, " ")
			items, err := d.search.Search(cmd.Context(), query)
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			if len(items) == 0 {
				_, _ = fmt.Fprintf(out, "No results found for %q\n", query)
				return nil
			}
			tw := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
			_, _ = fmt.Fprintln(tw, "ID\tNAME\tBRAND\tKCAL\tPROTEIN\tCARBS\tFAT\tSERVING")
			for _, f := range items {
				_, _ = fmt.Fprintf(tw, "%s\t%s\t%s\t%g\t%g\t%g\t%g\t%s\n",
					f.ID, f.Name, f.Brand, f.Calories, f.Protein, f.Carbs, f.Fat, f.ServingSize)
			}
			return tw.Flush()
		},
	}
}

func newStatsCmd() *cobra.Command {
	var goals domain.Goals
	cmd := &cobra.Command{
		Use:   "stats",
		Short: "Show today's totals against goals",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			d, err := setup(cmd.Context())
			if err != nil {
				return err
			}
			defer d.close()

			g := d.nutrition.Goals()
			flags := cmd.Flags()
			if flags.Changed("calories-goal") {
				g.Calories = goals.Calories
			}
			if flags.Changed("protein-goal") {
				g.Protein = goals.Protein
			}
			if flags.Changed("carbs-goal") {
				g.Carbs = goals.Carbs
			}
			if flags.Changed("fat-goal") {
				g.Fat = goals.Fat
			}

			s, err := d.nutrition.Stats(cmd.Context(), today(), g)
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			_, _ = fmt.Fprintf(out, "Calories: %g / %g kcal (%g left)\n", s.CaloriesEaten, s.CaloriesGoal, s.CaloriesLeft)
			_, _ = fmt.Fprintf(out, "Protein:  %g / %g g\n", s.Protein, s.ProteinGoal)
			_, _ = fmt.Fprintf(out, "Carbs:    %g / %g g\n", s.Carbs, s.CarbsGoal)
			_, _ = fmt.Fprintf(out, "Fat:      %g / %g g\n", s.Fat, s.FatGoal)
			return nil
		},
	}
	cmd.Flags().Float64Var(&goals.Calories, "calories-goal", 0, "override the calorie goal")
	cmd.Flags().Float64Var(&goals.Protein, "protein-goal", 0, "override the protein goal (g)")
	cmd.Flags().Float64Var(&goals.Carbs, "carbs-goal", 0, "override the carbs goal (g)")
	cmd.Flags().Float64Var(&goals.Fat, "fat-goal", 0, "override the fat goal (g)")
	return cmd
}

func newLogCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "log",
		Short: "List today's food log grouped by meal",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			d, err := setup(cmd.Context())
			if err != nil {
				return err
			}
			defer d.close()

			meals, err := d.nutrition.EntriesByMeal(cmd.Context(), today())
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			tw := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
			for _, mt := range []domain.MealType{domain.Breakfast, domain.Lunch, domain.Snack, domain.Dinner} {
				for _, e := range meals[mt] {
					_, _ = fmt.Fprintf(tw, "%s\t%s\t%s\t%g kcal\n", e.Time, mt, e.Name, e.Calories)
				}
			}
			return tw.Flush()
		},
	}
}
