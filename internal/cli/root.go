package cli

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/sant0-9/promptport/internal/tui"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "promptport",
	Short: "Convert image-generation prompts between NovelAI and PixAI syntax",
	Long: `promptport converts weighted-tag prompts between the NovelAI syntax
(N::tag::, {} / [] emphasis) and the PixAI/Stable-Diffusion syntax
((tag:weight), () / [] emphasis), including the positive/negative
prompt split between the two ecosystems.

Run without arguments for the interactive converter, or use
"promptport convert" for scripting.`,
	CompletionOptions: cobra.CompletionOptions{
		DisableDefaultCmd: true,
	},
	SilenceUsage: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		p := tea.NewProgram(tui.NewApp(), tea.WithAltScreen())
		_, err := p.Run()
		return err
	},
}

// Execute runs the CLI. The version is injected by the build.
func Execute(version string) error {
	rootCmd.Version = version
	return rootCmd.Execute()
}
