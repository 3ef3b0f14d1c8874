// Package ljfile adapts the parse/stringify pair into a small atomic
// file envelope: WriteFile serializes a Value and writes it to disk via
// temp-file-plus-rename so a crash mid-write never leaves a partial
// file at the target path, and ReadFile parses a file back into a
// Value. WriteFile additionally re-parses its own output and checks it
// against the input by structural equality before committing, so a
// serializer defect can never silently corrupt a file on disk.
package ljfile

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/latticeforge/ljson/ljerr"
	"github.com/latticeforge/ljson/ljparse"
	"github.com/latticeforge/ljson/ljstringify"
	"github.com/latticeforge/ljson/ljvalue"
)

// WriteFile serializes v and atomically writes it to path, terminated
// by a single trailing newline. The write goes through a temp file in
// the same directory followed by an fsync and rename, so readers never
// observe a partially written file.
func WriteFile(path string, v *ljvalue.Value) error {
	body, err := ljstringify.Stringify(v)
	if err != nil {
		return fmt.Errorf("ljfile: stringify: %w", err)
	}

	reparsed, err := ljparse.Parse(body)
	if err != nil {
		return fmt.Errorf("ljfile: internal: re-parsing freshly stringified output failed: %w", err)
	}
	if !ljvalue.IsEqual(v, reparsed) {
		return ljerr.New(ljerr.InvalidValue, -1, "ljfile: internal: stringified output does not round-trip to an equal value")
	}

	data := make([]byte, len(body)+1)
	copy(data, body)
	data[len(body)] = '\n'
	return writeAtomic(path, data)
}

// ReadFile reads path and parses its contents into a Value. A single
// trailing newline, if present, is stripped before parsing.
func ReadFile(path string) (*ljvalue.Value, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("ljfile: read %s: %w", path, err)
	}
	if len(data) > 0 && data[len(data)-1] == '\n' {
		data = data[:len(data)-1]
	}
	v, err := ljparse.Parse(data)
	if err != nil {
		return nil, fmt.Errorf("ljfile: parse %s: %w", path, err)
	}
	return v, nil
}

// writeAtomic writes data to path via a temp file in the same
// directory, fsynced and renamed into place. On any failure the temp
// file is removed and no file is left at path.
func writeAtomic(path string, data []byte) error {
	dir := filepath.Dir(path)

	tmp, err := os.CreateTemp(dir, ".ljson-*.tmp")
	if err != nil {
		return fmt.Errorf("ljfile: create temp file: %w", err)
	}
	tmpPath := tmp.Name()

	committed := false
	defer func() {
		if !committed {
			tmp.Close()
			os.Remove(tmpPath)
		}
	}()

	if _, err := tmp.Write(data); err != nil {
		return fmt.Errorf("ljfile: write temp file: %w", err)
	}
	if err := tmp.Sync(); err != nil {
		return fmt.Errorf("ljfile: sync temp file: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("ljfile: close temp file: %w", err)
	}
	if err := os.Rename(tmpPath, path); err != nil {
		return fmt.Errorf("ljfile: rename temp to final: %w", err)
	}
	committed = true

	syncDir(dir)
	return nil
}

// syncDir best-effort fsyncs the directory entry so the rename itself
// survives a crash on POSIX filesystems. Errors are ignored; this is a
// durability improvement, not a correctness requirement.
func syncDir(dir string) {
	d, err := os.Open(dir)
	if err != nil {
		return
	}
	defer d.Close()
	d.Sync()
}
