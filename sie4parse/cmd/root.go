package cmd

import (
	"log/slog"
	"os"
	"time"

	"github.com/hako/durafmt"
	cc "github.com/ivanpirog/coloredcobra"
	"github.com/mattn/go-isatty"
	"github.com/plenert-macdonald/sie"
	"github.com/plenert-macdonald/sie/sie4parse/internal/codepage"
	"github.com/spf13/cobra"
)

var (
	configPath    string
	verbose       bool
	inputEncoding string
)

// rootCmd converts a SIE4 file to CSV and/or normalized SIE4
var rootCmd = &cobra.Command{
	Use:   "sie4parse FILENAME",
	Short: "SIE4 file parser",
	Long: `Parse a SIE4 accounting file and write it out as a CSV table with
one column per account, as a normalized SIE4 file, or both.`,
	Args:          cobra.ExactArgs(1),
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
		level := slog.LevelInfo
		if verbose {
			level = slog.LevelDebug
		}
		slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level})))

		return applyConfig(cmd, configPath)
	},
	RunE: func(_ *cobra.Command, args []string) error {
		return runConvert(args[0])
	},
}

// Execute runs the command line and returns the first error.
func Execute() error {
	if isatty.IsTerminal(os.Stdout.Fd()) {
		cc.Init(&cc.Config{
			RootCmd:  rootCmd,
			Headings: cc.HiCyan + cc.Bold + cc.Underline,
			Commands: cc.HiYellow + cc.Bold,
			Example:  cc.Italic,
			ExecName: cc.Bold,
			Flags:    cc.Bold,
		})
	}
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "Config file (default $HOME/"+defaultConfigName+").")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Log debug details to stderr.")
	rootCmd.PersistentFlags().StringVar(&inputEncoding, "input-encoding", codepage.PC8, "Encoding of the input file.")
}

// loadLedger parses filename, or standard input when filename is "-".
func loadLedger(filename string) (*sie.Ledger, error) {
	enc, err := codepage.Lookup(inputEncoding)
	if err != nil {
		return nil, err
	}

	start := time.Now()
	var l *sie.Ledger
	if filename == "-" {
		l, err = sie.Parse(codepage.NewReader(os.Stdin, enc))
	} else {
		l, err = sie.ParseFile(filename, enc)
	}
	if err != nil {
		return nil, err
	}

	slog.Debug("parsed SIE file",
		"file", filename,
		"accounts", l.Accounts.Len(),
		"headers", l.Headers.Len(),
		"entries", len(l.Entries),
		"elapsed", durafmt.ParseShort(time.Since(start)).String())
	return l, nil
}
