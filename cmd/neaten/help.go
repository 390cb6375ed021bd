package neaten

import (
	"embed"
	"io"
	"io/fs"
	"os"

	"github.com/arthur-debert/neaten/pkg/cobrax/topics"
	"github.com/arthur-debert/neaten/pkg/report"
	"github.com/spf13/cobra"
)

//go:embed topics/*.md
var topicFiles embed.FS

// setupHelpTopics makes the embedded topics available as `neaten help <topic>`
func setupHelpTopics(rootCmd *cobra.Command) (*topics.TopicManager, error) {
	source, err := fs.Sub(topicFiles, "topics")
	if err != nil {
		return nil, err
	}
	return topics.Initialize(rootCmd, source, topics.Options{
		Extensions: []string{".md"},
		Renderer:   topicRenderer,
	})
}

func newTopicsCmd(tm *topics.TopicManager) *cobra.Command {
	return &cobra.Command{
		Use:   "topics",
		Short: MsgTopicsShort,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return tm.PrintList(cmd.OutOrStdout(), cmd.Root().Name())
		},
	}
}

// topicRenderer styles markdown only when it goes to a color terminal
func topicRenderer(w io.Writer) topics.Renderer {
	if f, ok := w.(*os.File); ok && report.DetectFormat(f) == report.FormatTerminal {
		return topics.NewGlamourRenderer()
	}
	return &topics.PlainRenderer{}
}
