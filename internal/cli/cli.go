// Package cli implements the asld command-line interface.
//
// The commands decode ActivityStreams documents with the codec and print
// them back out, either normalised or as a tree of the decoded variants.
//
// # Commands
//
//   - normalize: Decode a document and encode it again
//   - inspect: Print the decoded graph as a tree
//   - types: List the vocabulary types the codec knows
//   - new: Print a freshly constructed node of a type
//
// # Configuration
//
// Codec settings can be read from a TOML file passed with --config. Flags
// take precedence over the file.
package cli

import (
	"bytes"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	as "github.com/aluitink/ActivityStreams"
	"github.com/aluitink/ActivityStreams/internal/json"
)

// Log levels exported for use in main.go.
const (
	LogDebug = log.DebugLevel
	LogInfo  = log.InfoLevel
)

// CLI holds shared state for all commands.
type CLI struct {
	Logger *log.Logger

	in       io.Reader
	out      io.Writer
	renderer *lipgloss.Renderer

	configPath  string
	maxDepth    int
	dropUnknown bool
	keepEmpty   bool

	config Config
}

// New creates a new CLI reading documents from in and printing results to
// out. Logs go to errw.
func New(in io.Reader, out, errw io.Writer, level log.Level) *CLI {
	return &CLI{
		Logger:   newLogger(errw, level),
		in:       in,
		out:      out,
		renderer: lipgloss.NewRenderer(out),
		config:   DefaultConfig(),
	}
}

// SetLogLevel updates the logger's level.
func (c *CLI) SetLogLevel(level log.Level) {
	c.Logger.SetLevel(level)
}

// RootCommand creates the root cobra command with all subcommands registered.
func (c *CLI) RootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:          "asld",
		Short:        "asld decodes, normalises and inspects ActivityStreams documents",
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return c.loadSettings(cmd)
		},
	}

	flags := root.PersistentFlags()
	flags.StringVar(&c.configPath, "config", "", "TOML configuration file")
	flags.IntVar(&c.maxDepth, "max-depth", as.DefaultMaxDepth, "maximum nesting depth of documents")
	flags.BoolVar(&c.dropUnknown, "drop-unknown", false, "drop properties the vocabulary doesn't declare")
	flags.BoolVar(&c.keepEmpty, "keep-empty", false, "encode empty properties as empty arrays")

	root.AddCommand(c.normalizeCommand())
	root.AddCommand(c.inspectCommand())
	root.AddCommand(c.typesCommand())
	root.AddCommand(c.newCommand())

	return root
}

// loadSettings reads the configuration file and applies the flags the user
// set on top of it.
func (c *CLI) loadSettings(cmd *cobra.Command) error {
	if c.configPath != "" {
		cfg, undecoded, err := LoadConfig(c.configPath)
		if err != nil {
			return err
		}
		for _, key := range undecoded {
			c.Logger.Warn("unknown configuration key", "key", key, "file", c.configPath)
		}
		c.config = cfg
	}

	flags := cmd.Flags()
	if flags.Changed("max-depth") {
		c.config.Codec.MaxDepth = c.maxDepth
	}
	if flags.Changed("drop-unknown") {
		preserve := !c.dropUnknown
		c.config.Codec.PreserveUnknown = &preserve
	}
	if flags.Changed("keep-empty") {
		c.config.Codec.KeepEmpty = c.keepEmpty
	}

	c.Logger.Debug("settings",
		"max_depth", c.config.Codec.MaxDepth,
		"preserve_unknown", c.config.Codec.preserveUnknown(),
		"keep_empty", c.config.Codec.KeepEmpty,
	)
	return nil
}

// codec creates a codec from the current settings. Its logs go through the
// CLI's logger.
func (c *CLI) codec() *as.Codec {
	opts := append(c.config.Codec.Options(), as.WithLogger(slog.New(c.Logger)))
	return as.NewCodec(opts...)
}

// decode reads a document from the file named in args, or from the CLI's
// input when there's none or it's "-".
func (c *CLI) decode(args []string) (as.Node, error) {
	r := c.in
	name := "stdin"

	if len(args) > 0 && args[0] != "-" {
		f, err := os.Open(args[0])
		if err != nil {
			return nil, fmt.Errorf("open input: %w", err)
		}
		defer f.Close()
		r = f
		name = args[0]
	}

	n, err := c.codec().Decode(r)
	if err != nil {
		return nil, fmt.Errorf("decode %s: %w", name, err)
	}

	c.Logger.Debug("decoded document", "input", name, "type", n.Common().Type)
	return n, nil
}

// write encodes n to the CLI's output, indented unless indent is empty.
func (c *CLI) write(n as.Node, indent string) error {
	data := c.codec().Marshal(n)

	if indent != "" {
		var buf bytes.Buffer
		if err := json.Indent(&buf, data, "", indent); err != nil {
			return fmt.Errorf("indent output: %w", err)
		}
		data = buf.Bytes()
	}

	_, err := fmt.Fprintln(c.out, string(data))
	return err
}
