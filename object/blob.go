package object

import "github.com/nivl-successor/gitlens/oid"

// Blob is a file's raw content bytes. Blobs carry no structure of their
// own; DecodeBlob exists only for symmetry with the other three kinds.
type Blob struct {
	ID      oid.Oid
	Content []byte
}

// DecodeBlob wraps a blob payload; blobs require no further parsing.
func DecodeBlob(id oid.Oid, payload []byte) *Blob {
	return &Blob{ID: id, Content: payload}
}
