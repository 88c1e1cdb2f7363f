package mirror

import (
	"context"
	"fakecopy/internal/log"
	"fakecopy/internal/model"
	"fakecopy/pkg/helpers/iout"
	"fakecopy/pkg/helpers/run"
	"fmt"
	"io"
	"path/filepath"
	"time"

	"github.com/go-git/go-billy/v5"
)

const (
	DefaultPlaceholderSize int64 = 8
	DefaultFill            byte  = 'A'
)

//Options - what to mirror, where, and how the placeholders look.
type Options struct {
	Source          string
	Destination     string
	PlaceholderSize int64
	Fill            byte
	SkipExisting    bool // leave existing destination files untouched instead of truncating them
	DryRun          bool
	Progress        io.Writer // receives one destination path per written entry; nil discards
}

//DefaultOptions returns options with the default placeholder shape.
func DefaultOptions(src, dst string) Options {
	return Options{
		Source:          src,
		Destination:     dst,
		PlaceholderSize: DefaultPlaceholderSize,
		Fill:            DefaultFill,
	}
}

//Mirror replicates the visible part of a source tree into a destination tree,
//turning every file into a placeholder.
type Mirror struct {
	log  log.Logger
	fsys billy.Filesystem
	opts Options
}

func New(logger log.Logger, fsys billy.Filesystem, opts Options) *Mirror {
	opts.Source = filepath.Clean(opts.Source)
	opts.Destination = filepath.Clean(opts.Destination)
	if opts.Progress == nil {
		opts.Progress = io.Discard
	}
	return &Mirror{log: logger, fsys: fsys, opts: opts}
}

//Run walks the source tree once. It stops at the first failure, leaving whatever was already created.
func (m *Mirror) Run(ctx context.Context) (model.Summary, error) {
	var sum model.Summary
	start := time.Now()

	if err := m.preflight(); err != nil {
		return sum, err
	}

	m.log.Info("mirroring started",
		log.String("source", m.opts.Source),
		log.String("destination", m.opts.Destination),
		log.Int64("placeholderSize", m.opts.PlaceholderSize),
	)

	err := run.WithError(func() error { return m.walk(ctx, m.opts.Source, &sum) })
	sum.Took = time.Since(start)
	if err != nil {
		return sum, err
	}

	m.log.Info("mirroring finished",
		log.Int("dirs", sum.Dirs),
		log.Int("placeholders", sum.Placeholders),
		log.Int("skipped", sum.Skipped+sum.Reused),
		log.Duration("took", sum.Took),
	)
	return sum, nil
}

func (m *Mirror) preflight() error {
	if m.opts.PlaceholderSize < 0 {
		return fmt.Errorf("placeholder size must not be negative, got %d", m.opts.PlaceholderSize)
	}

	switch state, err := iout.StatPath(m.fsys, m.opts.Source); {
	case err != nil:
		return sourceError("stat", m.opts.Source, err)
	case state == iout.StateMissing:
		return newError(KindSourceNotFound, "stat", m.opts.Source, nil)
	case state == iout.StateFile:
		return newError(KindSourceUnreadable, "stat", m.opts.Source, iout.ErrNotDir)
	}

	switch state, err := iout.StatPath(m.fsys, m.opts.Destination); {
	case err != nil:
		return destinationError("stat", m.opts.Destination, err)
	case state == iout.StateMissing:
		return newError(KindDestinationNotFound, "stat", m.opts.Destination, nil)
	case state == iout.StateFile:
		return newError(KindDestinationConflict, "stat", m.opts.Destination, iout.ErrNotDir)
	}

	srcReal, err := iout.RealPath(m.fsys, m.opts.Source)
	if err != nil {
		return sourceError("resolve", m.opts.Source, err)
	}
	dstReal, err := iout.RealPath(m.fsys, m.opts.Destination)
	if err != nil {
		return destinationError("resolve", m.opts.Destination, err)
	}
	if Overlapping(srcReal, dstReal) {
		return newError(KindDestinationConflict, "stat", m.opts.Destination,
			fmt.Errorf("destination %q and source %q overlap", dstReal, srcReal))
	}
	return nil
}

type child struct {
	path string
	link bool
}

func (m *Mirror) walk(ctx context.Context, dir string, sum *model.Summary) error {
	infos, err := iout.ListDir(m.fsys, dir)
	if err != nil {
		return sourceError("readdir", dir, err)
	}

	var dirs, files []child
	for _, info := range infos {
		p := filepath.Join(dir, info.Name())
		if IsHidden(info.Name()) {
			m.log.Debug("hidden entry skipped", log.String("path", p))
			continue
		}
		c := child{path: p, link: iout.IsSymlink(info)}
		if iout.IsDirEntry(m.fsys, p, info) {
			dirs = append(dirs, c)
		} else {
			files = append(files, c)
		}
	}

	for _, d := range dirs {
		if err := ctx.Err(); err != nil {
			return fmt.Errorf("mirroring interrupted: %w", err)
		}
		if err := m.mirrorDir(d.path, sum); err != nil {
			return err
		}
	}
	for _, f := range files {
		if err := ctx.Err(); err != nil {
			return fmt.Errorf("mirroring interrupted: %w", err)
		}
		if err := m.mirrorFile(f.path, sum); err != nil {
			return err
		}
	}
	for _, d := range dirs {
		if d.link {
			continue // mirrored as an empty dir, never followed
		}
		if err := m.walk(ctx, d.path, sum); err != nil {
			return err
		}
	}
	return nil
}

func (m *Mirror) entry(kind model.EntryKind, src string) (model.Entry, error) {
	dst, err := Path(m.opts.Source, src, m.opts.Destination)
	if err != nil {
		return model.Entry{}, err
	}
	return model.Entry{Kind: kind, DstPath: dst}, nil
}

func (m *Mirror) mirrorDir(src string, sum *model.Summary) error {
	e, err := m.entry(model.KindDir, src)
	if err != nil {
		return err
	}

	if m.opts.DryRun {
		state, err := iout.StatPath(m.fsys, e.DstPath)
		switch {
		case err != nil:
			return destinationError("mkdir", e.DstPath, err)
		case state == iout.StateFile:
			return destinationError("mkdir", e.DstPath, iout.ErrNotDir)
		case state == iout.StateDir:
			e.Action = model.ActionReused
		default:
			e.Action = model.ActionPlanned
		}
		m.report(e, sum)
		return nil
	}

	created, err := iout.EnsureDirExists(m.fsys, e.DstPath)
	if err != nil {
		return destinationError("mkdir", e.DstPath, err)
	}
	e.Action = model.ActionReused
	if created {
		e.Action = model.ActionCreated
	}
	m.report(e, sum)
	return nil
}

func (m *Mirror) mirrorFile(src string, sum *model.Summary) error {
	e, err := m.entry(model.KindPlaceholder, src)
	if err != nil {
		return err
	}

	if m.opts.DryRun || m.opts.SkipExisting {
		state, err := iout.StatPath(m.fsys, e.DstPath)
		switch {
		case err != nil:
			return destinationError("create", e.DstPath, err)
		case state == iout.StateDir:
			return destinationError("create", e.DstPath, iout.ErrIsDir)
		case state == iout.StateFile && m.opts.SkipExisting:
			e.Action = model.ActionSkipped
			m.report(e, sum)
			return nil
		}
		if m.opts.DryRun {
			e.Action = model.ActionPlanned
			m.report(e, sum)
			return nil
		}
	}

	if err := iout.WritePlaceholder(m.fsys, e.DstPath, m.opts.PlaceholderSize, m.opts.Fill); err != nil {
		return destinationError("create", e.DstPath, err)
	}
	e.Action = model.ActionCreated
	m.report(e, sum)
	return nil
}

func (m *Mirror) report(e model.Entry, sum *model.Summary) {
	sum.Add(e, m.opts.PlaceholderSize)
	m.log.Debug(fmt.Sprintf("%s %s", e.Kind, e.Action), log.String("path", e.DstPath))
	if e.Written() {
		_, _ = fmt.Fprintln(m.opts.Progress, e.DstPath)
	}
}
