// Package object decodes the four git object kinds (commit, tree, blob,
// tag) from their raw, already-decompressed payload bytes.
package object

import (
	"fmt"

	"github.com/nivl-successor/gitlens/oid"
	"golang.org/x/xerrors"
)

// Kind identifies which of the four object types a payload represents.
type Kind int8

// The four object kinds the store understands. Packed delta objects are
// out of scope (see spec §1 Non-goals).
const (
	KindCommit Kind = iota + 1
	KindTree
	KindBlob
	KindTag
)

// String renders the Kind the way it appears in the on-disk object
// header ("commit", "tree", "blob", "tag").
func (k Kind) String() string {
	switch k {
	case KindCommit:
		return "commit"
	case KindTree:
		return "tree"
	case KindBlob:
		return "blob"
	case KindTag:
		return "tag"
	default:
		panic(fmt.Sprintf("unknown object kind %d", k))
	}
}

// KindFromString parses the ascii header kind written on disk.
func KindFromString(s string) (Kind, error) {
	switch s {
	case "commit":
		return KindCommit, nil
	case "tree":
		return KindTree, nil
	case "blob":
		return KindBlob, nil
	case "tag":
		return KindTag, nil
	default:
		return 0, xerrors.Errorf("%w: unrecognized object kind %q", ErrInvalid, s)
	}
}

// Object is an immutable, content-addressed value: a kind plus its raw
// decoded payload. Objects are never mutated once built.
type Object struct {
	id      oid.Oid
	kind    Kind
	content []byte
}

// New wraps an already-known id with its kind and payload. Used by the
// store, which computes the id from the framed bytes it read from disk.
func New(id oid.Oid, kind Kind, content []byte) *Object {
	return &Object{id: id, kind: kind, content: content}
}

// ID returns the object's content address.
func (o *Object) ID() oid.Oid { return o.id }

// Kind returns the object's type.
func (o *Object) Kind() Kind { return o.kind }

// Size returns the length of the object's payload.
func (o *Object) Size() int { return len(o.content) }

// Bytes returns the object's raw payload.
func (o *Object) Bytes() []byte { return o.content }

// AsCommit decodes the object as a Commit. Returns an error if the
// object's kind isn't KindCommit.
func (o *Object) AsCommit() (*Commit, error) {
	if o.kind != KindCommit {
		return nil, xerrors.Errorf("%w: %s is not a commit", ErrInvalid, o.kind)
	}
	return DecodeCommit(o.id, o.content)
}

// AsTree decodes the object as a Tree.
func (o *Object) AsTree() (*Tree, error) {
	if o.kind != KindTree {
		return nil, xerrors.Errorf("%w: %s is not a tree", ErrInvalid, o.kind)
	}
	return DecodeTree(o.id, o.content)
}

// AsTag decodes the object as an annotated Tag.
func (o *Object) AsTag() (*Tag, error) {
	if o.kind != KindTag {
		return nil, xerrors.Errorf("%w: %s is not a tag", ErrInvalid, o.kind)
	}
	return DecodeTag(o.id, o.content)
}

// AsBlob wraps the object as a Blob.
func (o *Object) AsBlob() (*Blob, error) {
	if o.kind != KindBlob {
		return nil, xerrors.Errorf("%w: %s is not a blob", ErrInvalid, o.kind)
	}
	return DecodeBlob(o.id, o.content), nil
}
