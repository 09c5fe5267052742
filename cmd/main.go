package main

import (
	"errors"
	"flag"
	"fmt"
	"log/slog"
	"os"

	"github.com/pterm/pterm"
	"github.com/pterm/pterm/putils"

	"github.com/luca-patrignani/blackjack/config"
	"github.com/luca-patrignani/blackjack/domain/blackjack"
	"github.com/luca-patrignani/blackjack/domain/session"
)

func main() {
	opts, err := parseFlags(os.Args[1:])
	if errors.Is(err, flag.ErrHelp) {
		os.Exit(0)
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "usage: %s [OPTIONS]\n%v\n", os.Args[0], err)
		os.Exit(2)
	}

	cfg, err := config.Load(opts.envFile)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	cfg = opts.apply(cfg)
	if err := cfg.Validate(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	// Create a new slog handler with the PTerm logger at the configured level
	handler := pterm.NewSlogHandler(pterm.DefaultLogger.WithLevel(logLevel(cfg.LogLevel)))
	logger := slog.New(handler)

	pterm.Print("\n")
	title, err := pterm.DefaultBigText.WithLetters(
		putils.LettersFromStringWithStyle("Black", pterm.FgRed.ToStyle()),
		putils.LettersFromStringWithStyle("jack", pterm.FgDarkGray.ToStyle()),
	).Srender()
	if err != nil {
		logger.Error(err.Error())
	}
	pterm.Print(title)
	pterm.Info.Printfln("Welcome to the Blackjack game. You start with $%d.", cfg.StartingBalance)
	logger.Debug("configuration", "shuffler", cfg.Shuffler, "seed", cfg.Seed, "plain", cfg.Plain)

	var input blackjack.Input = ptermInput{}
	if cfg.Plain {
		input = newLineInput(os.Stdin, os.Stdout)
	}

	table := blackjack.NewTable(cfg.NewShuffler(), input, blackjack.NewSlogReporter(logger))
	s := session.New(table, session.NewBankroll(cfg.StartingBalance), input, logger,
		session.WithRoundHook(printRound),
	)

	sum, err := s.Run()
	printSummary(sum, s.Ledger())
	if verr := s.Ledger().Verify(); verr != nil {
		logger.Error("round history is corrupted", "error", verr)
	}
	if err != nil {
		logger.Error("game aborted", "error", err)
		os.Exit(1)
	}
}

type options struct {
	envFile string
	seed    int64
	balance int
	secure  bool
	plain   bool
	level   string
	set     map[string]bool
}

func parseFlags(args []string) (options, error) {
	var o options
	fs := flag.NewFlagSet("blackjack", flag.ContinueOnError)
	fs.StringVar(&o.envFile, "env", "", "path of a .env file (default: .env when present)")
	fs.Int64Var(&o.seed, "seed", 0, "shuffle seed, 0 picks a random one")
	fs.IntVar(&o.balance, "balance", session.DefaultStartingBalance, "starting balance")
	fs.BoolVar(&o.secure, "secure", false, "shuffle with a cryptographic random stream")
	fs.BoolVar(&o.plain, "plain", false, "read answers line by line from stdin")
	fs.StringVar(&o.level, "log-level", "info", "trace, debug, info, warn or error")
	if err := fs.Parse(args); err != nil {
		return o, err
	}
	if fs.NArg() != 0 {
		return o, fmt.Errorf("unexpected arguments %v", fs.Args())
	}
	o.set = make(map[string]bool)
	fs.Visit(func(f *flag.Flag) { o.set[f.Name] = true })
	return o, nil
}

// apply overrides cfg with the flags given on the command line.
func (o options) apply(cfg config.Config) config.Config {
	if o.set["seed"] {
		cfg.Seed = o.seed
	}
	if o.set["balance"] {
		cfg.StartingBalance = o.balance
	}
	if o.set["secure"] {
		if o.secure {
			cfg.Shuffler = config.ShufflerSecure
		} else {
			cfg.Shuffler = config.ShufflerSeeded
		}
	}
	if o.set["plain"] {
		cfg.Plain = o.plain
	}
	if o.set["log-level"] {
		cfg.LogLevel = o.level
	}
	return cfg
}

func logLevel(level string) pterm.LogLevel {
	switch level {
	case "trace":
		return pterm.LogLevelTrace
	case "debug":
		return pterm.LogLevelDebug
	case "warn":
		return pterm.LogLevelWarn
	case "error":
		return pterm.LogLevelError
	}
	return pterm.LogLevelInfo
}
