// Package store implements the object store reader: it locates,
// decompresses, and frames loose objects by hash from a repository's
// objects/ directory. Packfiles are out of scope (spec §1 Non-goals).
package store

import (
	"compress/zlib"
	"io"
	"os"
	"path/filepath"
	"strconv"

	"github.com/nivl-successor/gitlens/gerrors"
	"github.com/nivl-successor/gitlens/internal/cache"
	"github.com/nivl-successor/gitlens/internal/errutil"
	"github.com/nivl-successor/gitlens/internal/gitpath"
	"github.com/nivl-successor/gitlens/internal/readutil"
	"github.com/nivl-successor/gitlens/object"
	"github.com/nivl-successor/gitlens/oid"
	"golang.org/x/xerrors"
)

// DefaultCacheEntries bounds the optional in-memory object cache. Objects
// are immutable once read, so the cache never needs invalidation — only
// eviction (spec §5 "Cache policy").
const DefaultCacheEntries = 4096

// Store reads loose objects from a repository's objects/ directory.
// Multiple concurrent readers are safe; the store never writes.
type Store struct {
	root  string
	cache *cache.LRU
}

// Option configures a Store at construction time.
type Option func(*Store)

// WithCache enables a bounded LRU cache of maxEntries decoded objects. A
// maxEntries of zero disables caching entirely.
func WithCache(maxEntries int) Option {
	return func(s *Store) {
		if maxEntries > 0 {
			s.cache = cache.New(maxEntries)
		}
	}
}

// New creates a Store rooted at the given repository's .git directory
// (the directory containing HEAD, refs/, and objects/).
func New(root string, opts ...Option) *Store {
	s := &Store{root: root}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Read locates, decompresses, and frames the object with the given id.
// Returns gerrors.ErrNotFound if no loose object exists for id, and
// gerrors.ErrCorrupt if the object's framing is malformed.
func (s *Store) Read(id oid.Oid) (*object.Object, error) {
	if s.cache != nil {
		if v, ok := s.cache.Get(id); ok {
			if o, valid := v.(*object.Object); valid {
				return o, nil
			}
		}
	}

	o, err := s.readLoose(id)
	if err != nil {
		return nil, err
	}

	if s.cache != nil {
		s.cache.Add(id, o)
	}
	return o, nil
}

// Has reports whether an object with the given id exists in the store.
func (s *Store) Has(id oid.Oid) (bool, error) {
	_, err := s.Read(id)
	if err == nil {
		return true, nil
	}
	if xerrors.Is(err, gerrors.ErrNotFound) {
		return false, nil
	}
	return false, err
}

func (s *Store) looseObjectPath(id oid.Oid) string {
	return gitpath.ObjectPath(s.root, id.String())
}

// readLoose reads and decompresses a single loose object file, validating
// the "<kind> <size>\0<payload>" framing described in spec §4.1.
func (s *Store) readLoose(id oid.Oid) (o *object.Object, err error) {
	p := s.looseObjectPath(id)

	f, openErr := os.Open(p)
	if openErr != nil {
		if os.IsNotExist(openErr) {
			return nil, xerrors.Errorf("object %s: %w", id, gerrors.ErrNotFound)
		}
		return nil, xerrors.Errorf("object %s: %w", id, openErr)
	}
	defer errutil.Close(f, &err)

	zr, zErr := zlib.NewReader(f)
	if zErr != nil {
		return nil, xerrors.Errorf("object %s: decompression failed: %w: %w", id, gerrors.ErrCorrupt, zErr)
	}
	defer errutil.Close(zr, &err)

	raw, readErr := io.ReadAll(zr)
	if readErr != nil {
		return nil, xerrors.Errorf("object %s: %w: %w", id, gerrors.ErrCorrupt, readErr)
	}

	return frame(id, raw)
}

// frame validates and splits the decompressed "<kind> <size>\0<payload>"
// byte stream into a typed Object.
func frame(id oid.Oid, raw []byte) (*object.Object, error) {
	kindBytes := readutil.ReadTo(raw, ' ')
	if kindBytes == nil {
		return nil, xerrors.Errorf("object %s: %w: missing kind", id, gerrors.ErrCorrupt)
	}
	kind, err := object.KindFromString(string(kindBytes))
	if err != nil {
		return nil, xerrors.Errorf("object %s: %w: %s", id, gerrors.ErrCorrupt, err)
	}
	offset := len(kindBytes) + 1

	sizeBytes := readutil.ReadTo(raw[offset:], 0)
	if sizeBytes == nil {
		return nil, xerrors.Errorf("object %s: %w: missing size", id, gerrors.ErrCorrupt)
	}
	size, err := strconv.Atoi(string(sizeBytes))
	if err != nil {
		return nil, xerrors.Errorf("object %s: %w: invalid size %q", id, gerrors.ErrCorrupt, sizeBytes)
	}
	offset += len(sizeBytes) + 1

	payload := raw[offset:]
	if len(payload) != size {
		return nil, xerrors.Errorf("object %s: %w: declared size %d, got %d", id, gerrors.ErrCorrupt, size, len(payload))
	}

	return object.New(id, kind, payload), nil
}

// ResolveShortHash finds the single loose object whose hex id begins
// with prefix. Returns gerrors.ErrNotFound if none match, and
// gerrors.ErrCorrupt-adjacent ambiguity is surfaced as ErrNotFound too —
// the store has no ranking between ambiguous candidates. prefix must be
// at least 2 hex characters (the length of a shard directory name).
func (s *Store) ResolveShortHash(prefix string) (oid.Oid, error) {
	if len(prefix) < 2 {
		return oid.Null, xerrors.Errorf("prefix %q: %w", prefix, gerrors.ErrNotFound)
	}
	shard := prefix[:2]
	rest := prefix[2:]

	entries, err := os.ReadDir(gitpath.ObjectsShard(s.root, shard))
	if err != nil {
		return oid.Null, xerrors.Errorf("prefix %q: %w", prefix, gerrors.ErrNotFound)
	}

	var match string
	for _, e := range entries {
		if e.IsDir() {
			continue
		}
		if len(e.Name()) >= len(rest) && e.Name()[:len(rest)] == rest {
			if match != "" {
				return oid.Null, xerrors.Errorf("prefix %q: %w: ambiguous", prefix, gerrors.ErrNotFound)
			}
			match = e.Name()
		}
	}
	if match == "" {
		return oid.Null, xerrors.Errorf("prefix %q: %w", prefix, gerrors.ErrNotFound)
	}
	return oid.FromHex(shard + match)
}

// Root returns the repository root this store was opened against.
func (s *Store) Root() string {
	return s.root
}

// IsValidRepository reports whether root looks like a repository layout:
// it must contain an objects/ directory.
func IsValidRepository(root string) bool {
	info, err := os.Stat(filepath.Join(root, gitpath.ObjectsDir))
	return err == nil && info.IsDir()
}
