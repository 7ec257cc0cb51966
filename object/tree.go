package object

import (
	"bytes"
	"strconv"
	"strings"

	"github.com/nivl-successor/gitlens/internal/readutil"
	"github.com/nivl-successor/gitlens/oid"
	"golang.org/x/xerrors"
)

// EntryKind classifies a tree entry by its mode string.
type EntryKind int8

const (
	// EntryBlob is a regular file, mode beginning with "100".
	EntryBlob EntryKind = iota + 1
	// EntryTree is a sub-directory, mode "40000" or "040000".
	EntryTree
	// EntryCommit is a submodule (gitlink), mode "160000". Recognized
	// but never traversed.
	EntryCommit
	// EntryUnknown covers any other mode.
	EntryUnknown
)

// ClassifyMode determines an entry's kind from its raw octal mode
// string, per spec §3: "blob" if the mode starts with "100", "tree" if
// the mode is "40000" or "040000", "commit" (submodule) if "160000",
// otherwise "unknown".
func ClassifyMode(mode string) EntryKind {
	switch {
	case strings.HasPrefix(mode, "100"):
		return EntryBlob
	case mode == "40000" || mode == "040000":
		return EntryTree
	case mode == "160000":
		return EntryCommit
	default:
		return EntryUnknown
	}
}

// TreeEntry is one (mode, kind, name, child-hash) record inside a Tree,
// in the on-disk order they were stored.
type TreeEntry struct {
	Mode string
	Kind EntryKind
	Name string
	ID   oid.Oid
}

// Tree is an ordered sequence of entries making up a directory snapshot.
// Entry order is preserved exactly as read off disk; the Tree Differ
// depends on stable ordering for reproducible diffs.
type Tree struct {
	ID      oid.Oid
	Entries []TreeEntry
}

// DecodeTree parses a tree object's payload. The format has no leading
// entry count: the decoder walks entries until the payload is exhausted.
//
//	<mode-octal-ascii> SP <name-bytes> NUL <hash-20-raw-bytes>
func DecodeTree(id oid.Oid, payload []byte) (*Tree, error) {
	t := &Tree{ID: id}
	offset := 0
	for offset < len(payload) {
		modeBytes := readutil.ReadTo(payload[offset:], ' ')
		if modeBytes == nil {
			return nil, xerrors.Errorf("%w: could not find mode for entry at offset %d", ErrTreeInvalid, offset)
		}
		mode := string(modeBytes)
		if _, err := strconv.ParseInt(mode, 8, 32); err != nil {
			return nil, xerrors.Errorf("%w: invalid octal mode %q", ErrTreeInvalid, mode)
		}
		offset += len(modeBytes) + 1

		nameBytes := readutil.ReadTo(payload[offset:], 0)
		if nameBytes == nil {
			return nil, xerrors.Errorf("%w: could not find name for entry at offset %d", ErrTreeInvalid, offset)
		}
		name := strings.ToValidUTF8(string(nameBytes), "�")
		offset += len(nameBytes) + 1

		if offset+oid.Size > len(payload) {
			return nil, xerrors.Errorf("%w: truncated hash for entry %q", ErrTreeInvalid, name)
		}
		entryID, err := oid.FromRawBytes(payload[offset : offset+oid.Size])
		if err != nil {
			return nil, xerrors.Errorf("%w: invalid hash for entry %q", ErrTreeInvalid, name)
		}
		offset += oid.Size

		t.Entries = append(t.Entries, TreeEntry{
			Mode: mode,
			Kind: ClassifyMode(mode),
			Name: name,
			ID:   entryID,
		})
	}
	return t, nil
}

// Encode reproduces the tree's on-disk payload, preserving entry order.
func (t *Tree) Encode() []byte {
	buf := new(bytes.Buffer)
	for _, e := range t.Entries {
		buf.WriteString(e.Mode)
		buf.WriteByte(' ')
		buf.WriteString(e.Name)
		buf.WriteByte(0)
		buf.Write(e.ID.Bytes())
	}
	return buf.Bytes()
}
