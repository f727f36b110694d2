package webgui

import (
	"fmt"
	"os"
	"path/filepath"
	"unicode/utf8"

	"github.com/sirupsen/logrus"
)

type Options struct {
	// DryRun runs every stage but leaves the source file untouched.
	DryRun bool
}

// Report holds the size of each stage of a run.
type Report struct {
	DecodedBytes    int
	DeclaredSize    int
	HTMLChars       int
	PatchedChars    int
	CompressedBytes int
	LegacyRemoved   int
	CurrentRemoved  int
	Written         bool
}

// Run patches the GUI asset embedded in the source file at path. The file is
// replaced only after every stage has succeeded.
func Run(path string, opts Options) (Report, error) {
	var report Report

	raw, err := os.ReadFile(path)
	if err != nil {
		return report, &IOError{Op: "read", Path: path, Err: err}
	}

	asset, err := LocateAsset(string(raw))
	if err != nil {
		return report, fmt.Errorf("%s: %w", path, err)
	}
	report.DeclaredSize = asset.DeclaredSize

	compressed, err := DecodeByteArray(asset.Literal)
	if err != nil {
		return report, fmt.Errorf("decode GUI_HTML: %w", err)
	}
	report.DecodedBytes = len(compressed)
	logrus.Infof("[Patch] Extracted %d bytes", len(compressed))
	if asset.DeclaredSize >= 0 && asset.DeclaredSize != len(compressed) {
		logrus.Warnf("[Patch] GUI_HTML_SIZE is %d but the array holds %d bytes", asset.DeclaredSize, len(compressed))
	}

	html, err := Inflate(compressed)
	if err != nil {
		return report, fmt.Errorf("decompress GUI_HTML: %w", err)
	}
	report.HTMLChars = utf8.RuneCountInString(html)
	logrus.Infof("[Patch] Decompressed: %d chars", report.HTMLChars)

	patched, stats := Patch(html)
	report.LegacyRemoved = stats.LegacyRemoved
	report.CurrentRemoved = stats.CurrentRemoved
	if stats.LegacyRemoved > 0 {
		logrus.Infof("[Patch] Removed %d %s script(s)", stats.LegacyRemoved, LegacyFragment.Name)
	} else {
		logrus.Infof("[Patch] No %s script found", LegacyFragment.Name)
	}
	if stats.CurrentRemoved > 0 {
		logrus.Debugf("[Patch] Replaced %d earlier %s injection(s)", stats.CurrentRemoved, CurrentFragment.Name)
	}
	report.PatchedChars = utf8.RuneCountInString(patched)
	logrus.Infof("[Patch] Patched: %d chars", report.PatchedChars)

	recompressed, err := Deflate(patched)
	if err != nil {
		return report, fmt.Errorf("compress GUI_HTML: %w", err)
	}
	report.CompressedBytes = len(recompressed)
	logrus.Infof("[Patch] Recompressed: %d bytes (was %d)", len(recompressed), len(compressed))

	if opts.DryRun {
		logrus.Infoln("[Patch] Dry run, not writing", path)
		return report, nil
	}
	if err := writeFileAtomic(path, []byte(RenderSource(recompressed))); err != nil {
		return report, err
	}
	report.Written = true
	logrus.Infoln("[Patch] Updated", path)
	return report, nil
}

// writeFileAtomic writes through a temp file in the target directory so a
// crash never leaves a half-written source file.
func writeFileAtomic(path string, data []byte) error {
	mode := os.FileMode(0o644)
	if info, err := os.Stat(path); err == nil {
		mode = info.Mode().Perm()
	}

	tmp, err := os.CreateTemp(filepath.Dir(path), "."+filepath.Base(path)+".*.tmp")
	if err != nil {
		return &IOError{Op: "create temp for", Path: path, Err: err}
	}
	tmpPath := tmp.Name()

	success := false
	defer func() {
		if !success {
			os.Remove(tmpPath)
		}
	}()

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		return &IOError{Op: "write", Path: tmpPath, Err: err}
	}
	if err := tmp.Close(); err != nil {
		return &IOError{Op: "close", Path: tmpPath, Err: err}
	}
	if err := os.Chmod(tmpPath, mode); err != nil {
		return &IOError{Op: "chmod", Path: tmpPath, Err: err}
	}
	if err := os.Rename(tmpPath, path); err != nil {
		return &IOError{Op: "rename to", Path: path, Err: err}
	}
	success = true
	return nil
}
