package cli

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/sant0-9/promptport/internal/prompt"
	"github.com/spf13/cobra"
)

var (
	convertFrom     string
	convertNegative string
	convertOut      string
)

var convertCmd = &cobra.Command{
	Use:   "convert [prompt]",
	Short: "Convert a prompt non-interactively",
	Long: `Convert a prompt given as arguments, or on stdin when no
arguments are present. When converting from NovelAI, tags with
negative weights are printed under a "Negative prompt:" header;
when converting from PixAI, --negative supplies the negative
prompt field and the output is a single NovelAI prompt.`,
	Example: `  promptport convert --from novelai "2::1girl::, -1::lowres::"
  promptport convert --from pixai --negative "lowres" "(1girl:1.2)"
  cat prompt.txt | promptport convert --from novelai`,
	Args: cobra.ArbitraryArgs,
	RunE: runConvert,
}

func init() {
	convertCmd.Flags().StringVar(&convertFrom, "from", "novelai",
		"Source syntax: novelai, pixai")
	convertCmd.Flags().StringVarP(&convertNegative, "negative", "n", "",
		"Negative prompt field (pixai source only)")
	convertCmd.Flags().StringVarP(&convertOut, "out", "o", "",
		"Write the result to a file instead of stdout")
	rootCmd.AddCommand(convertCmd)
}

func runConvert(cmd *cobra.Command, args []string) error {
	var dir prompt.Direction
	switch convertFrom {
	case "novelai":
		dir = prompt.NovelAIToPixAI
	case "pixai":
		dir = prompt.PixAIToNovelAI
	default:
		return fmt.Errorf("unknown source syntax %q (want novelai or pixai)", convertFrom)
	}

	text := strings.Join(args, " ")
	if len(args) == 0 {
		data, err := io.ReadAll(cmd.InOrStdin())
		if err != nil {
			return fmt.Errorf("failed to read stdin: %w", err)
		}
		text = strings.TrimSpace(string(data))
	}

	result := prompt.Convert(text, convertNegative, dir)

	out := result.Text
	if result.NegativeText != "" {
		out += "\n\nNegative prompt:\n" + result.NegativeText
	}

	if convertOut != "" {
		return os.WriteFile(convertOut, []byte(out+"\n"), 0644)
	}

	fmt.Fprintln(cmd.OutOrStdout(), out)
	return nil
}
