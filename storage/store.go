package storage

import (
	"bytes"
	"crypto/sha256"
	stderrors "errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"sync"

	"chat-xml/errors"
	"chat-xml/schema"

	"github.com/beevik/etree"
	"github.com/google/renameio/v2"
)

// DefaultPath is where the data file lives when no path is configured.
const DefaultPath = "data/chat.xml"

// Validator is run against the whole document before any write is committed.
type Validator interface {
	Check(doc *etree.Document) error
}

// Store is the single owner of the data file. Every mutation goes through Update:
// copy the tree, mutate the copy, validate it, rewrite the whole file, swap.
//
// Writers inside one process are serialized by mu. Writers in other processes are
// not coordinated: the store remembers the checksum of the bytes it last read or
// wrote and refuses to overwrite a file that changed behind its back, returning
// errors.ErrConcurrentModification instead of silently losing that update.
type Store struct {
	path      string
	validator Validator
	log       *slog.Logger

	mu       sync.RWMutex
	doc      *etree.Document
	index    index
	checksum *[sha256.Size]byte
}

func NewStore(path string, validator Validator, log *slog.Logger) *Store {
	return &Store{path: path, validator: validator, log: log}
}

// Open creates a store and loads its file.
func Open(path string, validator Validator, log *slog.Logger) (*Store, error) {
	s := NewStore(path, validator, log)
	if err := s.Load(); err != nil {
		return nil, err
	}
	return s, nil
}

func (s *Store) Path() string {
	return s.path
}

// Load reads the data file into memory, creating an empty valid skeleton when the
// file does not exist. A file that is not well-formed or violates the schema is
// reported as *errors.StoreCorruptError and left untouched.
func (s *Store) Load() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.load()
}

// Reload discards the in-memory tree and reads the file again, typically after
// errors.ErrConcurrentModification.
func (s *Store) Reload() error {
	return s.Load()
}

func (s *Store) load() error {
	data, err := os.ReadFile(s.path)
	if stderrors.Is(err, fs.ErrNotExist) {
		return s.createSkeleton()
	}
	if err != nil {
		return fmt.Errorf("read data file %s: %w", s.path, err)
	}

	doc := etree.NewDocument()
	if err = doc.ReadFromBytes(data); err != nil {
		return &errors.StoreCorruptError{Path: s.path, Err: err}
	}
	if err = s.validator.Check(doc); err != nil {
		return &errors.StoreCorruptError{Path: s.path, Err: err}
	}

	sum := sha256.Sum256(data)
	s.doc, s.index, s.checksum = doc, buildIndex(doc.Root()), &sum
	s.log.Debug("Data file loaded", "path", s.path, "bytes", len(data))
	return nil
}

func (s *Store) createSkeleton() error {
	doc := skeleton()
	if err := s.validator.Check(doc); err != nil {
		return fmt.Errorf("empty document rejected by schema: %w", err)
	}
	if err := os.MkdirAll(filepath.Dir(s.path), 0o755); err != nil {
		return fmt.Errorf("create data directory: %w", err)
	}
	s.checksum = nil
	if err := s.persist(doc); err != nil {
		return err
	}
	s.doc, s.index = doc, buildIndex(doc.Root())
	s.log.Info("Data file created", "path", s.path)
	return nil
}

func skeleton() *etree.Document {
	doc := etree.NewDocument()
	doc.CreateProcInst("xml", `version="1.0" encoding="UTF-8"`)
	root := doc.CreateElement(schema.RootTag)
	root.CreateAttr("xmlns", schema.Namespace)
	for _, kind := range schema.Sections {
		root.CreateElement(kind.Container)
	}
	return doc
}

func (s *Store) ensureLoaded() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.doc != nil {
		return nil
	}
	return s.load()
}

// View runs fn against the committed document. fn must not retain the view.
func (s *Store) View(fn func(v *View) error) error {
	if err := s.ensureLoaded(); err != nil {
		return err
	}
	s.mu.RLock()
	defer s.mu.RUnlock()
	return fn(&View{reader: reader{doc: s.doc, index: s.index}})
}

// Update runs fn in a transaction. When fn succeeds and changed something, the new
// document is validated as a whole and the file is rewritten once. Any failure
// leaves both the in-memory tree and the file exactly as they were.
func (s *Store) Update(fn func(tx *Tx) error) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.doc == nil {
		if err := s.load(); err != nil {
			return err
		}
	}

	tx := newTx(s.doc.Copy())
	if err := fn(tx); err != nil {
		return err
	}
	if !tx.dirty() {
		return nil
	}
	if err := s.validator.Check(tx.doc); err != nil {
		s.log.Warn("Write rejected by schema", "path", s.path, "error", err)
		return err
	}
	if err := s.persist(tx.doc); err != nil {
		return err
	}
	s.doc, s.index = tx.doc, tx.index
	return nil
}

// persist rewrites the whole file atomically. Callers hold mu.
func (s *Store) persist(doc *etree.Document) error {
	if err := s.ensureUnchanged(); err != nil {
		return err
	}
	doc.Indent(2)
	data, err := doc.WriteToBytes()
	if err != nil {
		return fmt.Errorf("serialize document: %w", err)
	}
	if err = renameio.WriteFile(s.path, data, 0o644); err != nil {
		return fmt.Errorf("write data file %s: %w", s.path, err)
	}
	sum := sha256.Sum256(data)
	s.checksum = &sum
	s.log.Debug("Data file rewritten", "path", s.path, "bytes", len(data))
	return nil
}

func (s *Store) ensureUnchanged() error {
	current, err := os.ReadFile(s.path)
	switch {
	case stderrors.Is(err, fs.ErrNotExist):
		if s.checksum == nil {
			return nil
		}
		return errors.ErrConcurrentModification
	case err != nil:
		return fmt.Errorf("read data file %s: %w", s.path, err)
	}
	if s.checksum == nil {
		return errors.ErrConcurrentModification
	}
	if sum := sha256.Sum256(current); !bytes.Equal(sum[:], s.checksum[:]) {
		s.log.Warn("Data file changed on disk since last load", "path", s.path)
		return errors.ErrConcurrentModification
	}
	return nil
}

// FindElementByID looks up one element by kind and id.
func (s *Store) FindElementByID(kind Kind, id string) (Node, error) {
	var node Node
	err := s.View(func(v *View) error {
		n, ok := v.Find(kind, id)
		if !ok {
			return errors.ErrElementNotFound
		}
		node = n
		return nil
	})
	return node, err
}

// All returns every element of kind in document order.
func (s *Store) All(kind Kind) ([]Node, error) {
	var nodes []Node
	err := s.View(func(v *View) error {
		nodes = v.All(kind)
		return nil
	})
	return nodes, err
}

func (s *Store) AddElement(kind Kind, n Node) error {
	return s.Update(func(tx *Tx) error {
		return tx.Add(kind, n)
	})
}

func (s *Store) UpdateElement(kind Kind, n Node) error {
	return s.Update(func(tx *Tx) error {
		return tx.Replace(kind, n)
	})
}

func (s *Store) DeleteElementByID(kind Kind, id string) error {
	return s.Update(func(tx *Tx) error {
		return tx.Delete(kind, id)
	})
}

// Bytes serializes the committed document.
func (s *Store) Bytes() ([]byte, error) {
	if err := s.ensureLoaded(); err != nil {
		return nil, err
	}
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.doc.WriteToBytes()
}
