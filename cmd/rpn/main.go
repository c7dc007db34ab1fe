package main

import (
	"flag"
	"io"
	"os"

	"github.com/rs/zerolog"
	"golang.org/x/term"
)

func main() {
	var (
		confname, inname string
		flags            Config
	)
	flag.StringVar(&confname, "config", "", "YAML configuration file")
	flag.StringVar(&inname, "in", "", "input file (default stdin if no args given)")
	registerFlags(flag.CommandLine, &flags)
	flag.Parse()

	boot := bootLogger()
	cfg, err := mergeConfig(confname, &flags, flag.Visit)
	if err != nil {
		boot.Fatal().Err(err).Str("path", confname).Msg("failed to load config")
	}

	level := logLevel(boot, cfg.LogLevel)
	zerolog.SetGlobalLevel(zerolog.TraceLevel)
	logger := zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).
		With().Timestamp().Str("service", "rpn").Logger().
		Level(level)

	s := newSession(os.Stdout, logger, cfg)
	if flag.NArg() > 0 && inname == "" {
		ok := true
		for _, arg := range flag.Args() {
			ok = s.eval(arg) && ok
		}
		if !ok {
			os.Exit(1)
		}
		return
	}

	var in io.Reader = os.Stdin
	switch inname {
	case "", "-":
		s.prompt = term.IsTerminal(int(os.Stdin.Fd()))
	default:
		f, err := os.Open(inname)
		if err != nil {
			logger.Fatal().Err(err).Msg("failed to open input")
		}
		defer f.Close()
		in = f
	}
	logger.Debug().Str("in", inname).Bool("prompt", s.prompt).Msg("starting")
	if err := s.run(in); err != nil {
		logger.Error().Err(err).Msg("input error")
		os.Exit(1)
	}
}

// registerFlags defines the flags that override configuration values.
func registerFlags(fs *flag.FlagSet, flags *Config) {
	def := DefaultConfig()
	fs.StringVar(&flags.Format, "fmt", def.Format, "result formatting string")
	fs.StringVar(&flags.Sentinel, "sentinel", def.Sentinel, "input line that ends the session")
	fs.StringVar(&flags.Prompt, "prompt", def.Prompt, "prompt shown when reading from a terminal")
	fs.StringVar(&flags.LogLevel, "log-level", def.LogLevel, "log level (trace, debug, info, warn, error)")
	fs.BoolVar(&flags.Echo, "echo", def.Echo, "print the postfix form of each expression")
	fs.BoolVar(&flags.Strict, "strict", def.Strict, "reject unclosed parentheses before evaluating")
}

// mergeConfig loads the configuration file, if any, and applies the flags
// that visit reports as set on top of it.
func mergeConfig(confname string, flags *Config, visit func(func(*flag.Flag))) (Config, error) {
	cfg := DefaultConfig()
	if confname != "" {
		c, err := LoadConfig(confname)
		if err != nil {
			return Config{}, err
		}
		cfg = c
	}
	visit(func(f *flag.Flag) { override(&cfg, flags, f.Name) })
	return cfg, nil
}

// override copies the value of an explicitly set flag into cfg.
func override(cfg, flags *Config, name string) {
	switch name {
	case "fmt":
		cfg.Format = flags.Format
	case "sentinel":
		cfg.Sentinel = flags.Sentinel
	case "prompt":
		cfg.Prompt = flags.Prompt
	case "log-level":
		cfg.LogLevel = flags.LogLevel
	case "echo":
		cfg.Echo = flags.Echo
	case "strict":
		cfg.Strict = flags.Strict
	}
}

// logLevel parses a level name, warning through boot and falling back to
// warn if it is not one.
func logLevel(boot *zerolog.Logger, name string) zerolog.Level {
	level, err := zerolog.ParseLevel(name)
	if err != nil {
		boot.Warn().Err(err).Str("log_level", name).Msg("unknown log level, using warn")
		return zerolog.WarnLevel
	}
	return level
}

// bootLogger is the logger used before the configuration is known.
func bootLogger() *zerolog.Logger {
	l := zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).With().Timestamp().Logger()
	return &l
}
