package burnfit

import (
	"context"
	"database/sql"
	"fmt"
	"mime"
	"net/http"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/Lalitdesh1/BurnFit/internal/model"
	"github.com/Lalitdesh1/BurnFit/internal/provider/openfoodfacts"
	"github.com/Lalitdesh1/BurnFit/internal/service"
)

var intakeCmd = &cobra.Command{
	Use:   "intake",
	Short: "Log food you ate",
}

var (
	intakeDescription string
	intakeCalories    int
	intakePhoto       string
	intakeBarcode     string
	intakeEstimate    bool
	intakeDryRun      bool
)

var intakeAddCmd = &cobra.Command{
	Use:   "add",
	Short: "Log a meal manually, from a photo, a text estimate, or a barcode",
	Long: `Log a meal.

With --photo the image is sent to the vision model for a name and calorie
suggestion. With --estimate the --description is sent to the text model.
With --barcode the product is looked up on Open Food Facts. Explicit
--description or --calories always override a suggestion.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		sources := 0
		for _, set := range []bool{intakePhoto != "", intakeEstimate, intakeBarcode != ""} {
			if set {
				sources++
			}
		}
		if sources > 1 {
			return fmt.Errorf("use only one of --photo, --estimate, or --barcode")
		}
		if intakeEstimate && strings.TrimSpace(intakeDescription) == "" {
			return fmt.Errorf("--description is required with --estimate")
		}
		var image []byte
		if intakePhoto != "" {
			data, err := os.ReadFile(intakePhoto)
			if err != nil {
				return fmt.Errorf("read photo: %w", err)
			}
			image = data
		}

		return withTracker(cmd, true, func(ctx context.Context, sqldb *sql.DB, t *service.Tracker) error {
			diet := model.DietNone
			if t.Profile != nil {
				diet = t.Profile.DietaryPreference
			}

			draft := service.IntakeDraft{Description: strings.TrimSpace(intakeDescription), Calories: intakeCalories, Source: service.SourceManual}
			if intakeBarcode != "" {
				capture := service.IntakeCapture{Barcode: &openfoodfacts.Client{}}
				d, err := capture.FromBarcode(ctx, intakeBarcode)
				if err != nil {
					return err
				}
				draft = d.Override(stringPtrIfChanged(cmd, "description", intakeDescription), intakeCaloriesOverride(cmd))
				fmt.Fprintf(cmd.OutOrStdout(), "Found: %s (%d kcal per serving)\n", draftName(draft), draft.Calories)
			} else if image != nil || intakeEstimate {
				ai, err := loadAI(ctx, cmd, sqldb)
				if err != nil {
					return err
				}
				capture := service.IntakeCapture{Vision: ai.vision, Text: ai.text}
				if image != nil {
					draft = capture.FromPhoto(ctx, image, imageMIME(image, intakePhoto), diet)
					draft = draft.Override(stringPtrIfChanged(cmd, "description", intakeDescription), nil)
				} else {
					draft = capture.FromText(ctx, intakeDescription, diet)
				}
				draft = draft.Override(nil, intakeCaloriesOverride(cmd))
				fmt.Fprintf(cmd.OutOrStdout(), "Suggested: %s (%d kcal)\n", draftName(draft), draft.Calories)
			}

			if intakeDryRun {
				fmt.Fprintln(cmd.OutOrStdout(), "Dry run: nothing logged")
				return nil
			}
			e, err := service.SubmitIntake(ctx, t, draft)
			if err != nil {
				if draft.Source != service.SourceManual && draft.Calories <= 0 {
					return fmt.Errorf("%w; pass --calories to log it anyway", err)
				}
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Logged intake %s: %s (%d kcal)\n", e.ID, e.Description, e.Calories)
			return nil
		})
	},
}

func intakeCaloriesOverride(cmd *cobra.Command) *int {
	return intPtrIfChanged(cmd, "calories", intakeCalories)
}

func draftName(d service.IntakeDraft) string {
	if d.Description == "" {
		return service.DefaultMealDescription
	}
	return d.Description
}

// imageMIME sniffs the content first and falls back to the file extension.
func imageMIME(data []byte, path string) string {
	if ct := http.DetectContentType(data); strings.HasPrefix(ct, "image/") {
		return ct
	}
	if ct := mime.TypeByExtension(strings.ToLower(filepath.Ext(path))); strings.HasPrefix(ct, "image/") {
		return ct
	}
	return "image/jpeg"
}

func init() {
	rootCmd.AddCommand(intakeCmd)
	intakeCmd.AddCommand(intakeAddCmd)

	intakeAddCmd.Flags().StringVar(&intakeDescription, "description", "", "What you ate (default: Meal)")
	intakeAddCmd.Flags().IntVar(&intakeCalories, "calories", 0, "Calories (kcal), must be > 0")
	intakeAddCmd.Flags().StringVar(&intakePhoto, "photo", "", "Photo of the meal for a calorie suggestion")
	intakeAddCmd.Flags().StringVar(&intakeBarcode, "barcode", "", "Packaged food barcode (EAN/UPC) to look up")
	intakeAddCmd.Flags().BoolVar(&intakeEstimate, "estimate", false, "Estimate calories from --description")
	intakeAddCmd.Flags().BoolVar(&intakeDryRun, "dry-run", false, "Show the suggestion without logging it")
}
