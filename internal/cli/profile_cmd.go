package cli

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/alexanderramin/aura/internal/cli/formatter"
	"github.com/alexanderramin/aura/internal/domain"
	"github.com/alexanderramin/aura/internal/repository"
	"github.com/charmbracelet/huh"
	"github.com/spf13/cobra"
)

func newProfileCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "profile",
		Short: "Show or update your profile",
	}
	cmd.AddCommand(newProfileSetCmd(app), newProfileShowCmd(app))
	return cmd
}

func newProfileSetCmd(app *App) *cobra.Command {
	var p domain.UserProfile

	cmd := &cobra.Command{
		Use:   "set",
		Short: "Save your profile",
		Long: `Save your profile. Flags override the stored profile field by field.
Run without flags in a terminal to fill in a form instead.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			current, err := app.Profile.Get(ctx)
			switch {
			case errors.Is(err, repository.ErrNotFound):
				current = &domain.UserProfile{HealthIssue: domain.HealthNone}
			case err != nil:
				return err
			}

			var next domain.UserProfile
			if !anyFlagChanged(cmd, profileFlagNames) {
				if !app.interactive() {
					return fmt.Errorf("no profile fields given; see `aura profile set --help`")
				}
				next = *current
				if err := runProfileForm(&next); err != nil {
					return err
				}
			} else {
				next = mergeProfileFlags(cmd, *current, p)
			}

			if err := app.Profile.Save(ctx, &next); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s Profile saved.\n\n", formatter.StyleGreen.Render("✔"))
			fmt.Fprint(cmd.OutOrStdout(), formatter.FormatProfile(&next))
			return nil
		},
	}

	f := cmd.Flags()
	f.StringVar(&p.Name, "name", "", "your name")
	f.IntVar(&p.Age, "age", 0, "age in years")
	f.Var(genderFlag(&p.Gender), "gender", "Male, Female or Other")
	f.IntVar(&p.HeightCm, "height", 0, "height in cm")
	f.IntVar(&p.WeightKg, "weight", 0, "weight in kg")
	f.StringVar(&p.BloodGroup, "blood-group", "", "blood group, e.g. O+")
	f.Var(healthIssueFlag(&p.HealthIssue), "health-issue", "None, BP, Diabetes, PCOS, Thyroid, Asthma or Heart")
	f.Var(goalFlag(&p.Goal), "goal", "wellness goal, e.g. weight-loss")

	return cmd
}

var profileFlagNames = []string{
	"name", "age", "gender", "height", "weight", "blood-group", "health-issue", "goal",
}

func anyFlagChanged(cmd *cobra.Command, names []string) bool {
	for _, n := range names {
		if cmd.Flags().Changed(n) {
			return true
		}
	}
	return false
}

// mergeProfileFlags overlays the flags the user actually passed onto base.
func mergeProfileFlags(cmd *cobra.Command, base, flags domain.UserProfile) domain.UserProfile {
	changed := cmd.Flags().Changed
	if changed("name") {
		base.Name = flags.Name
	}
	if changed("age") {
		base.Age = flags.Age
	}
	if changed("gender") {
		base.Gender = flags.Gender
	}
	if changed("height") {
		base.HeightCm = flags.HeightCm
	}
	if changed("weight") {
		base.WeightKg = flags.WeightKg
	}
	if changed("blood-group") {
		base.BloodGroup = flags.BloodGroup
	}
	if changed("health-issue") {
		base.HealthIssue = flags.HealthIssue
	}
	if changed("goal") {
		base.Goal = flags.Goal
	}
	return base
}

// profileFields holds the form's string-typed inputs.
type profileFields struct {
	name, age, height, weight, bloodGroup string
	gender                                domain.Gender
	issue                                 domain.HealthIssue
	goal                                  domain.Goal
}

func newProfileFields(p domain.UserProfile) *profileFields {
	f := &profileFields{
		name:       p.Name,
		bloodGroup: p.BloodGroup,
		gender:     p.Gender,
		issue:      p.HealthIssue,
		goal:       p.Goal,
	}
	if p.Age > 0 {
		f.age = strconv.Itoa(p.Age)
	}
	if p.HeightCm > 0 {
		f.height = strconv.Itoa(p.HeightCm)
	}
	if p.WeightKg > 0 {
		f.weight = strconv.Itoa(p.WeightKg)
	}
	return f
}

// apply copies the form values into p. Numbers were validated by the form.
func (f *profileFields) apply(p *domain.UserProfile) {
	p.Name = strings.TrimSpace(f.name)
	p.Age, _ = strconv.Atoi(strings.TrimSpace(f.age))
	p.HeightCm, _ = strconv.Atoi(strings.TrimSpace(f.height))
	p.WeightKg, _ = strconv.Atoi(strings.TrimSpace(f.weight))
	p.BloodGroup = strings.TrimSpace(f.bloodGroup)
	p.Gender = f.gender
	p.HealthIssue = f.issue
	p.Goal = f.goal
}

func profileForm(f *profileFields) *huh.Form {
	goals := append([]huh.Option[domain.Goal]{huh.NewOption("No specific goal", domain.GoalNone)},
		labelOptions(domain.Goals)...)

	return huh.NewForm(
		huh.NewGroup(
			huh.NewInput().Title("Name").Value(&f.name).Validate(validateRequired),
			huh.NewInput().Title("Age").Value(&f.age).Validate(intInRange(1, 120)),
			huh.NewSelect[domain.Gender]().Title("Gender").
				Options(labelOptions([]domain.Gender{domain.GenderMale, domain.GenderFemale, domain.GenderOther})...).
				Value(&f.gender),
		),
		huh.NewGroup(
			huh.NewInput().Title("Height (cm)").Value(&f.height).Validate(intInRange(50, 250)),
			huh.NewInput().Title("Weight (kg)").Value(&f.weight).Validate(intInRange(20, 300)),
			huh.NewInput().Title("Blood group").Description("Optional").Value(&f.bloodGroup),
		),
		huh.NewGroup(
			huh.NewSelect[domain.HealthIssue]().Title("Health condition").
				Options(labelOptions(domain.HealthIssues)...).Value(&f.issue),
			huh.NewSelect[domain.Goal]().Title("Goal").Options(goals...).Value(&f.goal),
		),
	).WithTheme(auraHuhTheme())
}

func runProfileForm(p *domain.UserProfile) error {
	fields := newProfileFields(*p)
	if err := profileForm(fields).Run(); err != nil {
		return err
	}
	fields.apply(p)
	return nil
}

func newProfileShowCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "show",
		Short: "Show your saved profile",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := app.Profile.Get(cmd.Context())
			if errors.Is(err, repository.ErrNotFound) {
				fmt.Fprintln(cmd.OutOrStdout(), formatter.Dim("No profile yet. Run `aura profile set` to create one."))
				return nil
			}
			if err != nil {
				return err
			}
			fmt.Fprint(cmd.OutOrStdout(), formatter.FormatProfile(p))
			return nil
		},
	}
}
