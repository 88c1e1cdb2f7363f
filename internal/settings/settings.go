package settings

import (
	"errors"
	"fakecopy/internal/log"
	"fakecopy/internal/mirror"
	"flag"
	"fmt"
	"io"
	"path/filepath"
)

const Program = "fakecopy"

//ErrUsage is wrapped by every error caused by a malformed command line.
var ErrUsage = errors.New("usage error")

type Settings struct {
	SrcDir          string
	DstDir          string
	PlaceholderSize int64
	Fill            byte
	SkipExisting    bool
	DryRun          bool
	Verbose         bool
	Quiet           bool
	LogLevel        log.Level
	LogJSON         bool
}

type rawFlags struct {
	fill  string
	level string
}

func defineFlags(flagSet *flag.FlagSet, stg *Settings, raw *rawFlags) {
	flagSet.Int64Var(&stg.PlaceholderSize, "size", mirror.DefaultPlaceholderSize,
		"length in bytes of every placeholder file")
	flagSet.StringVar(&raw.fill, "fill", string(mirror.DefaultFill),
		"single byte the placeholder files are filled with")
	flagSet.BoolVar(&stg.SkipExisting, "skip-existing", false,
		"if true, then files already present in the destination are kept as is, otherwise - they are truncated and rewritten")
	flagSet.BoolVar(&stg.DryRun, "dry", false,
		"if true, then only print what would be created, without writing anything")
	flagSet.BoolVar(&stg.Verbose, "verbose", false, "log every mirrored entry (forces the debug level)")
	flagSet.BoolVar(&stg.Quiet, "quiet", false, "do not print created paths, log warnings and errors only")
	flagSet.StringVar(&raw.level, "loglvl", string(log.InfoLevel),
		fmt.Sprintf("level of logging, permitted values are: %v, %v, %v, %v",
			log.DebugLevel, log.InfoLevel, log.WarnLevel, log.ErrorLevel),
	)
	flagSet.BoolVar(&stg.LogJSON, "logjson", false, "if true, then logs are written as JSON, otherwise - as plain text")
}

//Usage prints the invocation line and the flag defaults.
func Usage(w io.Writer) {
	flagSet := flag.NewFlagSet(Program, flag.ContinueOnError)
	flagSet.SetOutput(w)
	defineFlags(flagSet, new(Settings), new(rawFlags))
	fmt.Fprintf(w, "Usage: %s [flags] <source> <destination>\n\n", Program)
	fmt.Fprintln(w, "Replicates the visible directory tree of <source> into the existing <destination>,")
	fmt.Fprintln(w, "replacing every file with a small placeholder. Hidden entries are skipped.")
	fmt.Fprintln(w, "\nFlags:")
	flagSet.PrintDefaults()
}

//New parses the command arguments (without the program name).
//flag.ErrHelp is returned unwrapped when help was requested.
func New(commandArgs []string, errorHandling flag.ErrorHandling) (*Settings, error) {
	stg := new(Settings)
	raw := new(rawFlags)
	flagSet := flag.NewFlagSet(Program, errorHandling)
	flagSet.SetOutput(io.Discard)
	defineFlags(flagSet, stg, raw)

	if err := flagSet.Parse(commandArgs); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return nil, err
		}
		return nil, fmt.Errorf("%w: %v", ErrUsage, err)
	}

	if flagSet.NArg() != 2 {
		return nil, fmt.Errorf("%w: exactly two arguments (source and destination directories) are required, got %d",
			ErrUsage, flagSet.NArg())
	}
	if stg.PlaceholderSize < 0 {
		return nil, fmt.Errorf("%w: placeholder size must not be negative, got %d", ErrUsage, stg.PlaceholderSize)
	}
	if len(raw.fill) != 1 {
		return nil, fmt.Errorf("%w: fill must be exactly one byte, got %q", ErrUsage, raw.fill)
	}
	stg.Fill = raw.fill[0]
	if stg.Verbose && stg.Quiet {
		return nil, fmt.Errorf("%w: -verbose and -quiet cannot be used together", ErrUsage)
	}

	lvl, ok := log.ParseLevel(raw.level)
	if !ok {
		return nil, fmt.Errorf("%w: logging level %q does not exist", ErrUsage, raw.level)
	}
	switch {
	case stg.Verbose:
		lvl = log.DebugLevel
	case stg.Quiet && (lvl == log.DebugLevel || lvl == log.InfoLevel):
		lvl = log.WarnLevel
	}
	stg.LogLevel = lvl

	var err error
	if stg.SrcDir, err = filepath.Abs(flagSet.Arg(0)); err != nil {
		return nil, fmt.Errorf("path %q cannot be converted to absolute: %v", flagSet.Arg(0), err)
	}
	if stg.DstDir, err = filepath.Abs(flagSet.Arg(1)); err != nil {
		return nil, fmt.Errorf("path %q cannot be converted to absolute: %v", flagSet.Arg(1), err)
	}
	if stg.SrcDir == stg.DstDir {
		return nil, fmt.Errorf("%w: the source and destination directories cannot be the same", ErrUsage)
	}
	if mirror.Overlapping(realPath(stg.SrcDir), realPath(stg.DstDir)) {
		return nil, fmt.Errorf("%w: the source and destination directories cannot lie inside each other", ErrUsage)
	}

	return stg, nil
}

//realPath resolves symlinks when the path exists; a missing path is left for the mirror to report.
func realPath(path string) string {
	if resolved, err := filepath.EvalSymlinks(path); err == nil {
		return resolved
	}
	return path
}

//MirrorOptions converts the settings into options for the mirror.
func (stg *Settings) MirrorOptions(progress io.Writer) mirror.Options {
	opts := mirror.DefaultOptions(stg.SrcDir, stg.DstDir)
	opts.PlaceholderSize = stg.PlaceholderSize
	opts.Fill = stg.Fill
	opts.SkipExisting = stg.SkipExisting
	opts.DryRun = stg.DryRun
	if !stg.Quiet {
		opts.Progress = progress
	}
	return opts
}
