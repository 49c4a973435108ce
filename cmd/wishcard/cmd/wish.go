package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/f3rmion/wishcard/internal/sanitize"
	"github.com/f3rmion/wishcard/internal/synth"
)

var wishCmd = &cobra.Command{
	Use:   "wish <text>",
	Short: "Shorten any text into a card-safe wish",
	Long: `Clean up a wish so it fits on a card: strip instruction-like lines and
placeholders, then pad or trim it to 15-20 words ending with a celebration
emoji.

Examples:
  wishcard wish "Happy birthday! Hope your year is full of adventures"
  wishcard wish --seed 3 "$(cat long-message.txt)"`,
	Args: cobra.MinimumNArgs(1),
	RunE: runWish,
}

var wishSeed uint64

func init() {
	rootCmd.AddCommand(wishCmd)
	wishCmd.Flags().Uint64Var(&wishSeed, "seed", 0, "seed for repeatable padding and emoji (0 = random)")
}

func runWish(cmd *cobra.Command, args []string) error {
	var rng synth.RNG = synth.NewRandomSource()
	if wishSeed != 0 {
		rng = synth.NewSeededSource(wishSeed)
	}

	text := sanitize.StripInstructionLikeContent(strings.Join(args, " "))
	wish := sanitize.ConvertToShortWish(text, rng)
	if !sanitize.IsCardSafeWish(wish) {
		return fmt.Errorf("could not make a card-safe wish from the text")
	}
	fmt.Fprintln(cmd.OutOrStdout(), wish)
	return nil
}
