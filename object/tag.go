package object

import (
	"strings"

	"github.com/nivl-successor/gitlens/internal/readutil"
	"github.com/nivl-successor/gitlens/oid"
	"golang.org/x/xerrors"
)

// Tag is a decoded annotated tag object: a target hash wrapped with its
// own identity, name, and message. Lightweight tags are not objects at
// all — see the refs package.
type Tag struct {
	ID      oid.Oid
	Target  oid.Oid
	Name    string
	Tagger  Identity
	Message string
}

// DecodeTag parses an annotated tag object's payload. Header-style like
// commits: recognizes "object <hex40>" as the target, "tag <name>" as
// the tag's own name, and "tagger <identity-line>". The message follows
// the first blank line. A missing "object" field leaves Target as the
// zero Oid; callers resolving a tag from a ref are expected to fall back
// to the ref's raw value in that case (spec §4.2.4).
func DecodeTag(id oid.Oid, payload []byte) (*Tag, error) {
	t := &Tag{ID: id}
	offset := 0
	for {
		line := readutil.ReadTo(payload[offset:], '\n')
		if line == nil {
			return nil, xerrors.Errorf("%w: tag headers never terminated by a blank line", ErrTagInvalid)
		}
		offset += len(line) + 1

		if len(line) == 0 {
			t.Message = strings.TrimSpace(toUTF8(payload[offset:]))
			break
		}

		key, value, ok := splitHeader(line)
		if !ok {
			return nil, xerrors.Errorf("%w: malformed header line %q", ErrTagInvalid, line)
		}

		switch key {
		case "object":
			target, err := oid.FromHex(value)
			if err != nil {
				return nil, xerrors.Errorf("%w: invalid target id %q", ErrTagInvalid, value)
			}
			t.Target = target
		case "tag":
			t.Name = value
		case "tagger":
			t.Tagger = ParseIdentity(toUTF8([]byte(value)))
		default:
			offset = skipContinuationLines(payload, offset)
		}
	}
	return t, nil
}
