// Package console runs the interactive nutrition session on a line-oriented
// terminal: profile, target, food selection, totals, comparison and advice.
package console

import (
	"context"
	"errors"
	"fmt"
	"io"
	"iter"
	"strconv"
	"strings"

	advicedto "haverfit/internal/modules/advice/dto"
	catalogdto "haverfit/internal/modules/catalog/dto"
	exercisedto "haverfit/internal/modules/exercise/dto"
	intake "haverfit/internal/modules/intake/domain"
	intakedto "haverfit/internal/modules/intake/dto"
	nutrition "haverfit/internal/modules/nutrition/domain"
	nutritiondto "haverfit/internal/modules/nutrition/dto"
	reportdto "haverfit/internal/modules/report/dto"
	apperrors "haverfit/internal/platform/errors"
	"haverfit/internal/platform/logging"
	"haverfit/internal/ui/prompt"
	"haverfit/internal/ui/theme"
)

type nutritionPort interface {
	ActivityLevels(ctx context.Context) []nutritiondto.ActivityOption
	Plan(ctx context.Context, input nutritiondto.ProfileInput) (nutritiondto.TargetOutput, error)
	Compare(ctx context.Context, target nutritiondto.TargetOutput, consumed nutritiondto.Nutrients) (nutritiondto.DeviationOutput, error)
}

type catalogPort interface {
	Listing(ctx context.Context) (iter.Seq[catalogdto.ListingEntry], error)
	AddFood(ctx context.Context, name string, calories, carb, protein, fat float64) (catalogdto.FoodOutput, error)
}

type intakePort interface {
	CheckEntry(ctx context.Context, text string) (intakedto.EntryOutput, error)
	Summarize(ctx context.Context, entries []intakedto.EntryOutput) (intakedto.SummaryOutput, error)
}

type advicePort interface {
	Advise(ctx context.Context, deviation nutritiondto.DeviationOutput, peaks []intakedto.PeakOutput) (advicedto.AdviseOutput, error)
}

type exercisePort interface {
	ListExercises(ctx context.Context) ([]exercisedto.ExerciseOutput, error)
	Plan(ctx context.Context, label int, weightLb, excess float64) (exercisedto.PlanOutput, error)
}

type reportPort interface {
	Save(ctx context.Context, input reportdto.SaveInput) (reportdto.SaveOutput, error)
}

// Ports are the module handlers a session talks to. Report may be nil when
// no report path is configured.
type Ports struct {
	Nutrition nutritionPort
	Catalog   catalogPort
	Intake    intakePort
	Advice    advicePort
	Exercise  exercisePort
	Report    reportPort
}

type Option func(*Session)

// WithReport writes a YAML summary to path at the end of the session.
func WithReport(path string) Option {
	return func(s *Session) { s.reportPath = path }
}

type Session struct {
	ports      Ports
	prompt     *prompt.Prompter
	out        io.Writer
	styles     theme.Styles
	reportPath string
}

func New(ports Ports, in io.Reader, out io.Writer, opts ...Option) *Session {
	s := &Session{
		ports:  ports,
		prompt: prompt.New(in, out),
		out:    out,
		styles: theme.NewStyles(out),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

const welcome = `Welcome to Haverfit.
This program provides you with information about how healthy you are currently eating. But for this to happen, it needs
some information from you. Don't worry, this program does not store any private information. :)`

// Run executes one session. A missing data file is reported and ends the
// session without an error. An impossible BMR is returned to the caller.
func (s *Session) Run(ctx context.Context) error {
	log := logging.FromContext(ctx)
	s.prompt.Say(welcome)

	profile, err := s.collectProfile(ctx)
	if err != nil {
		return err
	}
	target, err := s.ports.Nutrition.Plan(ctx, profile)
	if err != nil {
		return err
	}
	s.printTarget(target)

	entries, err := s.collectConsumption(ctx)
	if err != nil {
		if errors.Is(err, apperrors.ErrCatalogUnavailable) {
			s.prompt.Say("%s", err)
			log.Warn("session aborted", "error", err)
			return nil
		}
		return err
	}

	summary, err := s.ports.Intake.Summarize(ctx, entries)
	if err != nil {
		return err
	}
	s.printTotals(summary.Totals)

	deviation, err := s.ports.Nutrition.Compare(ctx, target, summary.Totals)
	if err != nil {
		return err
	}
	advice, err := s.ports.Advice.Advise(ctx, deviation, summary.Peaks)
	if err != nil {
		return err
	}
	s.printAdvice(advice)

	if advice.ExcessCalories > 0 {
		if err := s.exerciseAdvice(ctx, advice.ExcessCalories); err != nil {
			return err
		}
	}

	if s.reportPath != "" && s.ports.Report != nil {
		saved, err := s.ports.Report.Save(ctx, reportdto.SaveInput{
			Path:      s.reportPath,
			Profile:   profile,
			Target:    target,
			Totals:    summary.Totals,
			Deviation: deviation,
			Advice:    advice.Items,
		})
		if err != nil {
			return err
		}
		s.prompt.Say("%s", s.styles.Muted.Render(fmt.Sprintf("Session report %s written to %s", saved.ID, saved.Path)))
	}
	return nil
}

func (s *Session) collectProfile(ctx context.Context) (nutritiondto.ProfileInput, error) {
	p := s.prompt
	p.Say("Please enter the following information about yourself.")

	age, err := p.PositiveInt("Enter age: ")
	if err != nil {
		return nutritiondto.ProfileInput{}, err
	}
	if !nutrition.AgePlausible(age) {
		answer, err := p.Line(fmt.Sprintf("You have entered %d as your age. Is that correct? (y/n): ", age))
		if err != nil {
			return nutritiondto.ProfileInput{}, err
		}
		if strings.EqualFold(answer, "n") || strings.EqualFold(answer, "no") {
			if age, err = p.PositiveInt("Enter age: "); err != nil {
				return nutritiondto.ProfileInput{}, err
			}
		}
	}

	sex, err := p.Choice("Enter your biological sex (Male/Female): ", []string{"male", "female"}, "Enter either male or female.")
	if err != nil {
		return nutritiondto.ProfileInput{}, err
	}

	p.Say("Read below and enter a corresponding activity level:")
	levels := s.ports.Nutrition.ActivityLevels(ctx)
	choices := make([]string, 0, len(levels))
	for _, level := range levels {
		p.Say("%d. %s", level.Level, level.Description)
		choices = append(choices, strconv.Itoa(level.Level))
	}
	activityText, err := p.Choice(fmt.Sprintf("Enter an activity level (%s): ", strings.Join(choices, ",")), choices,
		fmt.Sprintf("Activity level has to be one of the %d values above.", len(choices)))
	if err != nil {
		return nutritiondto.ProfileInput{}, err
	}
	activity, _ := strconv.Atoi(activityText)

	system, err := p.Choice("Enter 1 for imperial system (inches and pounds) and 2 for metric system (kgs and cms): ",
		[]string{"1", "2"}, "Please enter 1 or 2 as your response.")
	if err != nil {
		return nutritiondto.ProfileInput{}, err
	}
	units, heightPrompt, weightPrompt := "imperial", "Enter height (in inches): ", "Enter weight (in pounds): "
	if system == "2" {
		units, heightPrompt, weightPrompt = "metric", "Enter height (in cms): ", "Enter weight (in kgs): "
	}
	height, err := p.PositiveFloat(heightPrompt)
	if err != nil {
		return nutritiondto.ProfileInput{}, err
	}
	weight, err := p.PositiveFloat(weightPrompt)
	if err != nil {
		return nutritiondto.ProfileInput{}, err
	}
	return nutritiondto.ProfileInput{
		Age:      age,
		Sex:      sex,
		Units:    units,
		Height:   height,
		Weight:   weight,
		Activity: activity,
	}, nil
}

func (s *Session) printTarget(t nutritiondto.TargetOutput) {
	s.prompt.Say("")
	s.prompt.Say("%s", s.styles.Header.Render("YOUR DAILY TARGET"))
	s.prompt.Say("Calories: %.0f", t.Calories)
	s.prompt.Say("Carbohydrates: %.1f-%.1f grams", t.MinCarb, t.MaxCarb)
	s.prompt.Say("Proteins: %.1f-%.1f grams", t.MinProtein, t.MaxProtein)
	s.prompt.Say("Fat: %.1f-%.1f grams", t.MinFat, t.MaxFat)
}

const listingIntro = `
The following will show a list of common breakfast, lunch, and dinner dishes in the Dining Center of
Haverford College.`

const ledgerIntro = `
Enter the label and the amount of serving that you would normally consume in a day for breakfast, lunch,
and dinner (Example: B1-3, B1 being the label and 3 being the serving). After each entry, press enter to input another
dish. The amount of serving can be in decimals as well. When finished, simply press enter one more time.
`

func (s *Session) collectConsumption(ctx context.Context) ([]intakedto.EntryOutput, error) {
	listing, err := s.ports.Catalog.Listing(ctx)
	if err != nil {
		return nil, err
	}
	s.prompt.Say(listingIntro)
	for entry := range listing {
		if entry.Header != "" {
			s.prompt.Say("")
			s.prompt.Say("%s", s.styles.Header.Render(entry.Header))
		}
		s.prompt.Say("%s: %s", entry.Food.Label, entry.Food.Name)
	}

	for {
		more, err := s.prompt.Confirm("Is there any other dish that you would like to add? (y/n): ")
		if err != nil {
			return nil, err
		}
		if !more {
			break
		}
		if err := s.addDish(ctx); err != nil {
			return nil, err
		}
	}

	s.prompt.Say(ledgerIntro)
	var entries []intakedto.EntryOutput
	for {
		text, err := s.prompt.Line("Enter label and serving: ")
		if err != nil {
			return nil, err
		}
		if text == "" {
			return entries, nil
		}
		entry, err := s.ports.Intake.CheckEntry(ctx, text)
		if err != nil {
			msg, ok := entryMessage(text, err)
			if !ok {
				return nil, err
			}
			s.prompt.Say("%s", msg)
			continue
		}
		entries = append(entries, entry)
	}
}

func entryMessage(text string, err error) (string, bool) {
	switch {
	case errors.Is(err, intake.ErrEntryFormat):
		return "Only the food label and serving amount should be entered", true
	case errors.Is(err, intake.ErrUnknownLabel):
		label, _, _ := strings.Cut(text, intake.EntrySeparator)
		return fmt.Sprintf("The label %s does not exist. Please enter an acceptable label.", strings.TrimSpace(label)), true
	case errors.Is(err, intake.ErrServingFormat):
		return "The value for amount of serving should be a number.", true
	case errors.Is(err, intake.ErrServingRange):
		return "The value for amount of serving should be a positive number.", true
	default:
		return "", false
	}
}

func (s *Session) addDish(ctx context.Context) error {
	p := s.prompt
	for {
		name, err := p.Line("Enter the name of the dish: ")
		if err != nil {
			return err
		}
		calories, err := p.PositiveFloat("Enter the amount of calories the dish contains per serving: ")
		if err != nil {
			return err
		}
		carb, err := p.PositiveFloat("Enter the amount of carbohydrates the dish contains per serving: ")
		if err != nil {
			return err
		}
		protein, err := p.PositiveFloat("Enter the amount of proteins the dish contains per serving: ")
		if err != nil {
			return err
		}
		fat, err := p.PositiveFloat("Enter the amount of fat the dish contains per serving: ")
		if err != nil {
			return err
		}
		food, err := s.ports.Catalog.AddFood(ctx, name, calories, carb, protein, fat)
		if errors.Is(err, apperrors.ErrInvalidInput) {
			p.Say("The dish could not be added (%s). Please try again.", err)
			continue
		}
		if err != nil {
			return err
		}
		p.Say("%s: %s was added.", food.Label, food.Name)
		return nil
	}
}

func (s *Session) printTotals(t nutritiondto.Nutrients) {
	s.prompt.Say("")
	s.prompt.Say("%s", s.styles.Header.Render("YOUR DAILY CONSUMPTION"))
	s.prompt.Say("Calories: %.1f", t.Calories)
	s.prompt.Say("Carbohydrates: %.1f grams", t.Carb)
	s.prompt.Say("Proteins: %.1f grams", t.Protein)
	s.prompt.Say("Fat: %.1f grams", t.Fat)
	s.prompt.Say("")
}

func (s *Session) printAdvice(advice advicedto.AdviseOutput) {
	for _, item := range advice.Items {
		style := s.styles.Good
		switch item.Direction {
		case "excess":
			style = s.styles.Excess
		case "deficit":
			style = s.styles.Deficit
		}
		for _, line := range strings.Split(item.Message, "\n") {
			s.prompt.Say("%s", style.Render(line))
		}
		s.prompt.Say("")
	}
}

func (s *Session) exerciseAdvice(ctx context.Context, excess float64) error {
	p := s.prompt
	want, err := p.Confirm("Do you wish to learn about exercises to burn the excess calories? (y/n): ")
	if err != nil || !want {
		return err
	}
	exercises, err := s.ports.Exercise.ListExercises(ctx)
	if errors.Is(err, apperrors.ErrCatalogUnavailable) {
		p.Say("%s", err)
		logging.FromContext(ctx).Warn("exercise advice skipped", "error", err)
		return nil
	}
	if err != nil {
		return err
	}
	p.Say("%s", s.styles.Header.Render("LIST OF EXERCISES"))
	for _, exercise := range exercises {
		p.Say("%s: %s", exercise.Label, exercise.Name)
	}
	label, err := p.PositiveInt("Enter the number of your favorite exercise: ")
	if err != nil {
		return err
	}
	weight, err := p.PositiveFloat("Enter your weight in lbs: ")
	if err != nil {
		return err
	}
	plan, err := s.ports.Exercise.Plan(ctx, label, weight, excess)
	if errors.Is(err, apperrors.ErrNotFound) {
		p.Say("The exercise number that you entered does not exist.")
		return nil
	}
	if err != nil {
		return err
	}
	p.Say("To burn your excess calories, you must do %s for %d minutes", plan.Name, plan.Minutes)
	return nil
}
