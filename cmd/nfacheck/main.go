// nfacheck reports whether a string holds a substring at the front, at the
// end or anywhere, by compiling the substring into an NFA and running it.
package main

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/carlmjohnson/versioninfo"
	"github.com/charmbracelet/fang"
	"github.com/spf13/cobra"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	automaton "github.com/geange/substring-automaton"
	"github.com/geange/substring-automaton/internal/config"
	"github.com/geange/substring-automaton/internal/log"
)

// Config holds the command line configuration
type Config struct {
	ConfigFile string
	Position   string
	LogLevel   string
	Dot        bool
}

// request is one check, after config and flags have been merged.
type request struct {
	alphabet *automaton.Alphabet
	position automaton.Position
	pattern  string
	input    string
	dot      bool
}

var title = cases.Title(language.English)

// newRootCommand creates the root cobra command
func newRootCommand() *cobra.Command {
	var cfg Config

	cmd := &cobra.Command{
		Use:   "nfacheck PATTERN INPUT",
		Short: "Check a string for a substring with an NFA",
		Long: `Compiles PATTERN into a nondeterministic finite automaton for the chosen
position and runs INPUT through it.

  front     INPUT is exactly PATTERN
  last      INPUT ends with PATTERN
  anywhere  INPUT contains PATTERN

Both strings must only use symbols of the configured alphabet (01abc unless
the configuration file says otherwise).`,
		Example: `  # Does 1011a contain 01?
  nfacheck -p anywhere 01 1011a

  # Does 001a end with 1a, printing the automaton as graphviz dot
  nfacheck -p last --dot 1a 001a`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			fileCfg, err := config.LoadFileOrDefault(cfg.ConfigFile)
			if err != nil {
				return fmt.Errorf("failed to load config: %w", err)
			}

			position := *fileCfg.Matcher.Position
			if cmd.Flags().Changed("position") {
				if position, err = automaton.ParsePosition(cfg.Position); err != nil {
					return err
				}
			}
			level := fileCfg.Logging.Level
			if cmd.Flags().Changed("log-level") {
				level = cfg.LogLevel
			}

			backend, err := log.New(fileCfg.Logging.File, level, fileCfg.Logging.Disable)
			if err != nil {
				return err
			}
			defer backend.Close()

			req := &request{
				alphabet: fileCfg.Matcher.GetAlphabet(),
				position: position,
				pattern:  args[0],
				input:    args[1],
				dot:      cfg.Dot,
			}
			return check(cmd.OutOrStdout(), backend, req)
		},
	}

	cmd.Flags().StringVarP(&cfg.ConfigFile, "config", "c", "", "configuration file")
	cmd.Flags().StringVarP(&cfg.Position, "position", "p", "anywhere", "where the substring must occur: front, last or anywhere")
	cmd.Flags().StringVar(&cfg.LogLevel, "log-level", "NOTICE", "logging level (DEBUG, INFO, NOTICE, WARNING, ERROR)")
	cmd.Flags().BoolVar(&cfg.Dot, "dot", false, "print the compiled automaton in graphviz dot format")

	return cmd
}

// check validates both strings, compiles the pattern and writes the verdict to w.
func check(w io.Writer, backend *log.Backend, req *request) error {
	logger := backend.GetLogger("nfacheck")

	if err := req.alphabet.Validate(req.input); err != nil {
		return fmt.Errorf("input: %w", err)
	}
	if err := req.alphabet.Validate(req.pattern); err != nil {
		return fmt.Errorf("substring: %w", err)
	}

	automata := automaton.NewAutomata(
		automaton.WithAlphabet(req.alphabet),
		automaton.WithLogger(backend.GetLogger("automaton")),
	)
	a, err := automata.Compile(req.pattern, req.position)
	if err != nil {
		return err
	}
	if req.dot {
		if _, err := io.WriteString(w, a.ToDot()); err != nil {
			return err
		}
	}

	accepted := automaton.Run(a, req.input)
	logger.Infof("%q at %v against %q: accepted=%v", req.pattern, req.position, req.input, accepted)

	_, err = fmt.Fprintln(w, verdict(req.pattern, req.position, accepted))
	return err
}

func verdict(pattern string, position automaton.Position, accepted bool) string {
	result := "Rejected!"
	if accepted {
		result = "Accepted!"
	}
	return fmt.Sprintf("Result: Contains '%s' at %s - %s", pattern, title.String(position.String()), result)
}

func main() {
	rootCmd := newRootCommand()

	if err := fang.Execute(
		context.Background(),
		rootCmd,
		fang.WithVersion(versioninfo.Short()),
	); err != nil {
		os.Exit(1)
	}
}
