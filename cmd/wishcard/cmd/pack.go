package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/f3rmion/wishcard/internal/card"
	"github.com/f3rmion/wishcard/internal/export"
	"github.com/f3rmion/wishcard/internal/session"
	"github.com/f3rmion/wishcard/internal/synth"
	"github.com/f3rmion/wishcard/internal/variation"
)

var packCmd = &cobra.Command{
	Use:   "pack",
	Short: "Write a birthday pack for someone",
	Long: `Generate a birthday pack from a few facts about the person: a main wish,
a short message, a social caption, a short speech and hashtags.

Examples:
  wishcard pack --name Asha --relationship friend --tone funny
  wishcard pack --name Lena --relationship mother --tone heartfelt --memory "our trip to Lisbon"
  wishcard pack --name Tom --language de --card`,
	Args: cobra.NoArgs,
	RunE: runPack,
}

var (
	packForm card.GeneratorFormData
	packSeed uint64
	packCard bool
	packOut  string
)

func init() {
	rootCmd.AddCommand(packCmd)
	f := packCmd.Flags()
	f.StringVar(&packForm.Name, "name", "", "name of the birthday person")
	f.StringVar(&packForm.Relationship, "relationship", "friend", "friend, partner, mother, father, sibling, colleague, ...")
	f.StringVar(&packForm.Tone, "tone", "heartfelt", "heartfelt, funny, formal or poetic")
	f.StringVar(&packForm.Language, "language", "en", "language code or name")
	f.StringVar(&packForm.Personality, "personality", "", "a few words about them")
	f.StringVar(&packForm.Memory, "memory", "", "a shared memory to mention in the speech")
	f.Uint64Var(&packSeed, "seed", 0, "seed for repeatable phrasing (0 = random)")
	f.BoolVar(&packCard, "card", false, "also render the main wish as a card")
	f.StringVarP(&packOut, "out", "o", "", "output directory for --card (default from config)")
	addOutputFlags(packCmd)
}

type packResult struct {
	card.BirthdayPack `yaml:",inline"`
	Card              string `json:"card,omitempty" yaml:"card,omitempty"`
}

func runPack(cmd *cobra.Command, args []string) error {
	format, err := structuredFormat(cmd)
	if err != nil {
		return err
	}

	var rng synth.RNG
	if packSeed != 0 {
		rng = synth.NewSeededSource(packSeed)
	}
	ps := session.NewPack(packForm, rng)
	res := packResult{BirthdayPack: ps.Pack()}

	if packCard {
		app, err := newApp()
		if err != nil {
			return err
		}
		defer app.Close()

		job := export.Job{
			Content: ps.Content(),
			Theme:   app.pipeline.Resolver().Resolve(ps.Seed(), 0),
			Params:  variation.ParamsFor(0),
			Aspect:  card.ParseAspect(app.cfg.Render.Aspect),
			Tags:    []string{"birthday", "pack"},
		}
		a, err := app.pipeline.Render(cmd.Context(), job)
		if err != nil {
			return err
		}
		if res.Card, err = app.sink(packOut).Deliver(cmd.Context(), a); err != nil {
			return err
		}
	}

	out := cmd.OutOrStdout()
	if format != "" {
		return writeStructured(out, format, res)
	}

	p := res.BirthdayPack
	fmt.Fprintf(out, "Main wish\n  %s\n\n", p.MainWish)
	fmt.Fprintf(out, "Short message\n  %s\n\n", p.ShortMessage)
	fmt.Fprintf(out, "Caption\n  %s\n\n", p.Caption)
	fmt.Fprintf(out, "Speech\n  %s\n\n", p.Speech)
	fmt.Fprintf(out, "Hashtags\n  %s\n", p.Hashtags)
	if res.Card != "" {
		fmt.Fprintf(out, "\nCard saved to %s\n", res.Card)
	}
	return nil
}
