// Package rename moves a document to the filename derived from its metadata.
package rename

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/sirupsen/logrus"

	"github.com/refslug/refslug/internal/config"
	"github.com/refslug/refslug/internal/metadata"
	"github.com/refslug/refslug/internal/util"
)

var (
	// ErrTargetExists indicates another file already holds the derived name.
	ErrTargetExists = errors.New("target already exists")
	// ErrSourceMissing indicates the document to rename does not exist.
	ErrSourceMissing = errors.New("source document not found")
)

// fileSystem is the subset of file operations the renamer needs.
type fileSystem interface {
	Stat(string) (fs.FileInfo, error)
	// Move renames without replacing an existing destination.
	Move(string, string) error
	// Rename renames unconditionally; used only when source and target are the same file.
	Rename(string, string) error
}

type osFS struct{}

func (osFS) Stat(name string) (fs.FileInfo, error) { return os.Stat(name) }
func (osFS) Move(src, dst string) error            { return util.MoveNoClobber(src, dst) }
func (osFS) Rename(src, dst string) error          { return os.Rename(src, dst) }

// Plan describes a pending rename.
type Plan struct {
	Source string `json:"source" yaml:"source"`
	Target string `json:"target" yaml:"target"`
	Slug   string `json:"slug" yaml:"slug"`
	// NoOp is set when the document already carries the derived name.
	NoOp bool `json:"noop" yaml:"noop"`
	// CaseOnly is set when target names the source itself, as happens on
	// case-insensitive filesystems.
	CaseOnly bool `json:"caseOnly,omitempty" yaml:"caseOnly,omitempty"`
}

// Renamer plans and performs collision-checked renames.
type Renamer struct {
	opts *config.Options
	log  *logrus.Entry
	fs   fileSystem
}

// NewRenamer constructs a renamer with shared configuration.
func NewRenamer(opts *config.Options) *Renamer {
	return &Renamer{
		opts: opts,
		log:  opts.Logger().WithField("component", "rename"),
		fs:   osFS{},
	}
}

// Plan resolves the target path for source named after slug. The source
// extension is kept as is.
func (r *Renamer) Plan(source, slug string) (*Plan, error) {
	if slug == "" {
		return nil, metadata.ErrEmptySlug
	}
	abs, err := filepath.Abs(source)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve %s: %w", source, err)
	}
	info, err := r.fs.Stat(abs)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("%w: %s", ErrSourceMissing, source)
		}
		return nil, fmt.Errorf("failed to inspect %s: %w", source, err)
	}
	if info.IsDir() {
		return nil, fmt.Errorf("%s is a directory", source)
	}

	plan := &Plan{
		Source: abs,
		Target: filepath.Join(filepath.Dir(abs), slug+filepath.Ext(abs)),
		Slug:   slug,
	}
	if plan.Target == plan.Source {
		plan.NoOp = true
		return plan, nil
	}

	sameFile, err := r.checkTarget(plan, info)
	if err != nil {
		return nil, err
	}
	plan.CaseOnly = sameFile

	r.log.WithFields(logrus.Fields{
		"action": "plan",
		"source": plan.Source,
		"target": plan.Target,
	}).Info("Planned rename")
	return plan, nil
}

// Apply performs plan. The target is checked again right before the move so
// a file that appeared after planning is never overwritten.
func (r *Renamer) Apply(plan *Plan) error {
	fields := logrus.Fields{
		"action": "rename",
		"source": plan.Source,
		"target": plan.Target,
		"slug":   plan.Slug,
		"dryRun": r.opts.DryRun,
	}
	if plan.NoOp {
		r.log.WithFields(fields).Info("Document already has the derived name")
		return nil
	}

	info, err := r.fs.Stat(plan.Source)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return fmt.Errorf("%w: %s", ErrSourceMissing, plan.Source)
		}
		return fmt.Errorf("failed to inspect %s: %w", plan.Source, err)
	}
	sameFile, err := r.checkTarget(plan, info)
	if err != nil {
		return err
	}

	if r.opts.DryRun {
		r.log.WithFields(fields).Info("Dry run, document left in place")
		return nil
	}

	if sameFile {
		err = r.fs.Rename(plan.Source, plan.Target)
	} else {
		err = r.fs.Move(plan.Source, plan.Target)
	}
	if err != nil {
		if errors.Is(err, util.ErrDestinationExists) {
			r.log.WithFields(fields).Warn("Target appeared during rename")
			return fmt.Errorf("%w: %s", ErrTargetExists, plan.Target)
		}
		return fmt.Errorf("failed to rename %s: %w", plan.Source, err)
	}

	r.log.WithFields(fields).Info("Renamed document")
	return nil
}

// checkTarget fails with ErrTargetExists when the target is taken by another
// file. It reports true when the target resolves to the source itself.
func (r *Renamer) checkTarget(plan *Plan, source fs.FileInfo) (bool, error) {
	existing, err := r.fs.Stat(plan.Target)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return false, nil
		}
		return false, fmt.Errorf("failed to inspect %s: %w", plan.Target, err)
	}
	if os.SameFile(existing, source) {
		return true, nil
	}
	r.log.WithFields(logrus.Fields{
		"action": "plan",
		"source": plan.Source,
		"target": plan.Target,
	}).Warn("Target already exists")
	return false, fmt.Errorf("%w: %s", ErrTargetExists, plan.Target)
}
