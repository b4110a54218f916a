package cjlib

import (
	"fmt"
	"io"
	"os"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// Mode selects how Open prepares the backing file.
type Mode int

const (
	// ModeRead opens an existing file for Read, failing if it is absent.
	ModeRead Mode = iota
	// ModeCreate opens a file that need not exist yet, for both Read and
	// later Dump, starting from an empty root Object if the file is
	// absent or empty. Open does not create the file; Dump does.
	ModeCreate
)

// Document is the public facade over a Value tree and its backing file.
// A Document owns its root Value exclusively; Close tears the whole
// tree down in one pass. Distinct Documents share no mutable state
// except the package-level error Reporter.
//
// Grounded on the injectable-logger constructor style of
// edirooss-zmux-server/redis/client.go: Open accepts an optional
// *zap.Logger instead of reaching for a package-global, and tags every
// log line it emits with the Document's uuid for log correlation. Get,
// Stringify and WriteTo do not log.
type Document struct {
	id   uuid.UUID
	path string
	mode Mode
	root *Value
	log  *zap.Logger
}

// Open constructs a Document backed by the file at path. Under ModeRead
// the file must already exist and is not read automatically — call Read
// to populate the root. Under ModeCreate, a missing file is treated as
// an empty root Object. log may be nil, in which case a no-op logger is
// used (matching zap.NewNop()'s role as the silent default throughout
// the corpus's injectable-logger constructors).
func Open(path string, mode Mode, log *zap.Logger) (*Document, error) {
	if log == nil {
		log = zap.NewNop()
	}
	doc := &Document{
		id:   uuid.New(),
		path: path,
		mode: mode,
		root: NewObject(),
		log:  log.Named("cjlib.Document"),
	}

	if mode == ModeRead {
		if _, err := os.Stat(path); err != nil {
			return nil, report(newParseErr(InvalidJson, "", err.Error()))
		}
	}

	doc.log.Debug("document opened",
		zap.String("id", doc.id.String()),
		zap.String("path", path),
	)
	return doc, nil
}

// ID returns the Document's correlation id. It is never part of the
// JSON payload.
func (d *Document) ID() uuid.UUID {
	return d.id
}

// Root returns the Document's root Value.
func (d *Document) Root() *Value {
	return d.root
}

// SetRoot replaces the Document's root Value wholesale. Intended for
// callers that build a tree from a non-JSON source (the CLI's
// from-yaml subcommand, for one) and then want to reuse Stringify/Dump
// instead of re-serialising by hand.
func (d *Document) SetRoot(v *Value) {
	d.root = v
	d.log.Debug("root replaced", zap.String("id", d.id.String()))
}

// Close releases the Document's tree and logger resources. Go's garbage
// collector reclaims the tree's memory; Close exists to mirror an
// explicit-teardown contract, and is the point at which any buffered
// log state would be flushed.
func (d *Document) Close() error {
	d.log.Debug("document closed", zap.String("id", d.id.String()))
	d.root = nil
	return d.log.Sync()
}

// Read parses the Document's backing file and replaces the root with
// the parsed tree.
func (d *Document) Read() error {
	f, err := os.Open(d.path)
	if err != nil {
		if d.mode == ModeCreate && os.IsNotExist(err) {
			d.root = NewObject()
			return report(nil)
		}
		return report(newParseErr(InvalidJson, "", err.Error()))
	}
	defer f.Close()

	if fi, statErr := f.Stat(); statErr == nil && fi.Size() == 0 {
		d.root = NewObject()
		return report(nil)
	}

	v, err := Parse(f)
	if err != nil {
		d.log.Warn("read failed", zap.String("id", d.id.String()), zap.Error(err))
		return err
	}
	d.root = v
	d.log.Debug("document read", zap.String("id", d.id.String()))
	return nil
}

// requireObjectRoot returns the OrderedMap backing the root, or
// InvalidType if the root is not currently an Object (possible since
// any of the six JSON kinds may sit at the document root).
func (d *Document) requireObjectRoot() (*OrderedMap, error) {
	if d.root.Type() != Object {
		return nil, report(newTypeErr(""))
	}
	return d.root.objectValue, nil
}

// Set stores value under key in the Document's root Object.
func (d *Document) Set(key string, value *Value) error {
	om, err := d.requireObjectRoot()
	if err != nil {
		return err
	}
	if err := om.Insert(key, value); err != nil {
		return report(newParseErr(DuplicateKey, key, ""))
	}
	d.log.Debug("key set", zap.String("id", d.id.String()), zap.String("key", key))
	return report(nil)
}

// Get retrieves the Value stored under key in the Document's root
// Object.
func (d *Document) Get(key string) (*Value, error) {
	om, err := d.requireObjectRoot()
	if err != nil {
		return nil, err
	}
	v, ok := om.Search(key)
	if !ok {
		return nil, report(newDictErr(KeyNotFound, key))
	}
	return v, report(nil)
}

// Remove detaches and returns the Value stored under key.
func (d *Document) Remove(key string) (*Value, error) {
	om, err := d.requireObjectRoot()
	if err != nil {
		return nil, err
	}
	v, err := om.Remove(key)
	if err != nil {
		return nil, report(err)
	}
	d.log.Debug("key removed", zap.String("id", d.id.String()), zap.String("key", key))
	return v, report(nil)
}

// Stringify serialises the Document's root to JSON bytes.
func (d *Document) Stringify() ([]byte, error) {
	b, err := Serialize(d.root)
	if err != nil {
		return nil, report(err)
	}
	return b, report(nil)
}

// Dump truncates the backing file and writes Stringify's output to it.
func (d *Document) Dump() error {
	b, err := d.Stringify()
	if err != nil {
		return err
	}
	f, err := os.Create(d.path)
	if err != nil {
		return fmt.Errorf("cjlib: open sink for dump: %w", err)
	}
	defer f.Close()
	if _, err := f.Write(b); err != nil {
		return fmt.Errorf("cjlib: write dump: %w", err)
	}
	d.log.Debug("document dumped", zap.String("id", d.id.String()), zap.String("path", d.path))
	return nil
}

// WriteTo writes the Document's serialised form to w, bypassing the
// backing file. Useful for callers that already hold an io.Writer
// (the CLI's `cat` subcommand, for one).
func (d *Document) WriteTo(w io.Writer) (int64, error) {
	b, err := d.Stringify()
	if err != nil {
		return 0, err
	}
	n, err := w.Write(b)
	return int64(n), err
}
