// Package topics adds help topics to a Cobra command tree.
//
// A topic is a text or markdown document read from an fs.FS, usually an
// embedded directory. `app help <topic>` prints it, `app help topics` lists
// them and `app help <command>` keeps working as before. Topics named
// option-<flag> are also reachable as `app help --<flag>`.
package topics

import (
	"fmt"
	"io"
	"io/fs"
	"path"
	"sort"
	"strings"

	"github.com/arthur-debert/neaten/pkg/errors"
	"github.com/spf13/cobra"
)

const optionPrefix = "option-"

// TopicManager manages help topics for a Cobra application
type TopicManager struct {
	source       fs.FS
	topics       map[string]*Topic
	originalHelp func(*cobra.Command, []string)
	extensions   []string
	selectRender func(io.Writer) Renderer
}

// Topic represents a help topic
type Topic struct {
	Name     string
	FilePath string
	Content  string
}

// Format returns the file extension the topic was read from
func (t *Topic) Format() string {
	return path.Ext(t.FilePath)
}

// Options configures the TopicManager
type Options struct {
	// Extensions is the list of file extensions to consider as topics.
	// Defaults to [".txt", ".md"].
	Extensions []string

	// Renderer picks how a topic is formatted for the writer it is printed
	// to. Defaults to PlainRenderer for every writer.
	Renderer func(w io.Writer) Renderer
}

// New creates a TopicManager reading topics from source
func New(source fs.FS, opts Options) *TopicManager {
	tm := &TopicManager{
		source:       source,
		topics:       make(map[string]*Topic),
		extensions:   opts.Extensions,
		selectRender: opts.Renderer,
	}
	if len(tm.extensions) == 0 {
		tm.extensions = []string{".txt", ".md"}
	}
	if tm.selectRender == nil {
		tm.selectRender = func(io.Writer) Renderer { return &PlainRenderer{} }
	}
	return tm
}

// Load reads every topic file below the source root. A nil source has no
// topics.
func (tm *TopicManager) Load() error {
	if tm.source == nil {
		return nil
	}

	return fs.WalkDir(tm.source, ".", func(p string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() || !tm.supported(p) {
			return nil
		}

		content, err := fs.ReadFile(tm.source, p)
		if err != nil {
			return err
		}

		name := strings.TrimSuffix(path.Base(p), path.Ext(p))
		tm.topics[name] = &Topic{
			Name:     name,
			FilePath: p,
			Content:  string(content),
		}
		return nil
	})
}

func (tm *TopicManager) supported(p string) bool {
	ext := path.Ext(p)
	for _, valid := range tm.extensions {
		if ext == valid {
			return true
		}
	}
	return false
}

// GetTopic retrieves a topic by name. Flag-style names such as --dry-run
// resolve to the option-dry-run topic.
func (tm *TopicManager) GetTopic(name string) (*Topic, bool) {
	name = strings.TrimPrefix(name, "--")
	name = strings.TrimPrefix(name, "-")

	if topic, ok := tm.topics[name]; ok {
		return topic, true
	}
	topic, ok := tm.topics[optionPrefix+name]
	return topic, ok
}

// ListTopics returns all topic names, sorted
func (tm *TopicManager) ListTopics() []string {
	names := make([]string, 0, len(tm.topics))
	for name := range tm.topics {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Print renders topic to w
func (tm *TopicManager) Print(w io.Writer, topic *Topic) error {
	rendered := tm.selectRender(w).Render(topic.Content, topic.Format())
	_, err := io.WriteString(w, rendered)
	return err
}

// PrintList writes the topic index to w
func (tm *TopicManager) PrintList(w io.Writer, appName string) error {
	names := tm.ListTopics()
	if len(names) == 0 {
		_, err := fmt.Fprintln(w, "No help topics available.")
		return err
	}

	var general, options []string
	for _, name := range names {
		if strings.HasPrefix(name, optionPrefix) {
			options = append(options, strings.TrimPrefix(name, optionPrefix))
		} else {
			general = append(general, name)
		}
	}

	var b strings.Builder
	b.WriteString("Available help topics:\n")
	if len(general) > 0 {
		b.WriteString("\nGeneral topics:\n")
		for _, name := range general {
			fmt.Fprintf(&b, "  %s\n", name)
		}
	}
	if len(options) > 0 {
		b.WriteString("\nOption topics:\n")
		for _, name := range options {
			fmt.Fprintf(&b, "  --%s\n", name)
		}
	}
	fmt.Fprintf(&b, "\nUse '%s help <topic>' to read about a specific topic.\n", appName)

	_, err := io.WriteString(w, b.String())
	return err
}

// Initialize loads the topics from source and installs the topic-aware
// help command and help function on rootCmd.
func Initialize(rootCmd *cobra.Command, source fs.FS, opts Options) (*TopicManager, error) {
	tm := New(source, opts)
	if err := tm.Load(); err != nil {
		return nil, errors.Wrap(err, errors.ErrInternal, "failed to load help topics")
	}

	tm.originalHelp = rootCmd.HelpFunc()
	name := rootCmd.Name()

	helpCmd := &cobra.Command{
		Use:   "help [command or topic]",
		Short: "Help about any command or topic",
		Long: `Help provides help for any command or topic in the application.
Simply type ` + name + ` help [path to command or topic] for full details.

To see all available help topics:
  ` + name + ` help topics`,
		// Flag-style topics such as --dry-run arrive as arguments
		DisableFlagParsing: true,
		ValidArgsFunction: func(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
			completions := []string{"topics"}
			for _, c := range rootCmd.Commands() {
				if c.IsAvailableCommand() {
					completions = append(completions, c.Name())
				}
			}
			completions = append(completions, tm.ListTopics()...)
			return completions, cobra.ShellCompDirectiveNoFileComp
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			if len(args) == 0 {
				tm.originalHelp(rootCmd, args)
				return nil
			}
			if args[0] == "topics" {
				return tm.PrintList(out, name)
			}
			if topic, ok := tm.GetTopic(args[0]); ok {
				return tm.Print(out, topic)
			}

			target, rest, err := rootCmd.Find(args)
			if err != nil || target == rootCmd || len(rest) > 0 {
				return errors.Newf(errors.ErrInvalidInput, "unknown help topic %q", strings.Join(args, " "))
			}
			return target.Help()
		},
	}
	rootCmd.SetHelpCommand(helpCmd)

	rootCmd.SetHelpFunc(func(cmd *cobra.Command, args []string) {
		if len(args) > 0 && !strings.HasPrefix(args[0], "-") {
			if topic, ok := tm.GetTopic(args[0]); ok {
				_ = tm.Print(cmd.OutOrStdout(), topic)
				return
			}
		}
		tm.originalHelp(cmd, args)
	})

	return tm, nil
}
