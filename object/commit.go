package object

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/nivl-successor/gitlens/internal/readutil"
	"github.com/nivl-successor/gitlens/oid"
	"golang.org/x/xerrors"
)

// Commit is a decoded commit object: a tree snapshot plus ancestry and
// metadata. Message is the first physical line of the commit message;
// FullMessage is the entire message, leading/trailing whitespace trimmed.
type Commit struct {
	ID          oid.Oid
	TreeID      oid.Oid
	ParentIDs   []oid.Oid
	Author      Identity
	Committer   Identity
	Message     string
	FullMessage string
}

// DecodeCommit parses a commit object's payload.
//
// Header lines recognized, in order of first appearance: exactly one
// "tree <hex40>"; zero or more "parent <hex40>", preserved in file order;
// exactly one "author <identity-line>"; exactly one
// "committer <identity-line>". Any other header (e.g. "gpgsig") is
// skipped without error; a GPG signature's continuation lines (beginning
// with a single space) are consumed until a non-continuation line
// resumes header parsing. A blank line terminates the headers; the
// remainder is the message.
func DecodeCommit(id oid.Oid, payload []byte) (*Commit, error) {
	c := &Commit{ID: id}
	offset := 0
	for {
		line := readutil.ReadTo(payload[offset:], '\n')
		if line == nil {
			return nil, xerrors.Errorf("%w: commit headers never terminated by a blank line", ErrCommitInvalid)
		}
		offset += len(line) + 1

		if len(line) == 0 {
			c.FullMessage = strings.TrimSpace(toUTF8(payload[offset:]))
			c.Message = firstLine(c.FullMessage)
			break
		}

		key, value, ok := splitHeader(line)
		if !ok {
			return nil, xerrors.Errorf("%w: malformed header line %q", ErrCommitInvalid, line)
		}

		switch key {
		case "tree":
			treeID, err := oid.FromHex(value)
			if err != nil {
				return nil, xerrors.Errorf("%w: invalid tree id %q", ErrCommitInvalid, value)
			}
			c.TreeID = treeID
		case "parent":
			parentID, err := oid.FromHex(value)
			if err != nil {
				return nil, xerrors.Errorf("%w: invalid parent id %q", ErrCommitInvalid, value)
			}
			c.ParentIDs = append(c.ParentIDs, parentID)
		case "author":
			c.Author = ParseIdentity(toUTF8([]byte(value)))
		case "committer":
			c.Committer = ParseIdentity(toUTF8([]byte(value)))
		default:
			offset = skipContinuationLines(payload, offset)
		}
	}

	if c.TreeID.IsZero() {
		return nil, xerrors.Errorf("%w: commit has no tree", ErrCommitInvalid)
	}
	return c, nil
}

// Encode reproduces the commit's header region (tree, parents, author,
// committer, the blank separator, and the message terminated by a
// newline) in on-disk order. Optional headers such as gpgsig are not
// reproduced.
func (c *Commit) Encode() []byte {
	buf := new(bytes.Buffer)
	fmt.Fprintf(buf, "tree %s\n", c.TreeID.String())
	for _, p := range c.ParentIDs {
		fmt.Fprintf(buf, "parent %s\n", p.String())
	}
	fmt.Fprintf(buf, "author %s\n", c.Author.String())
	fmt.Fprintf(buf, "committer %s\n", c.Committer.String())
	buf.WriteByte('\n')
	buf.WriteString(c.FullMessage)
	buf.WriteByte('\n')
	return buf.Bytes()
}

// splitHeader splits a header line into its keyword and the remainder,
// separated by the first space.
func splitHeader(line []byte) (key, value string, ok bool) {
	kv := bytes.SplitN(line, []byte{' '}, 2)
	if len(kv) != 2 {
		return "", "", false
	}
	return string(kv[0]), string(kv[1]), true
}

// skipContinuationLines advances past every subsequent line that begins
// with a single space (the encoding used by git for multi-line header
// values such as gpgsig), returning the offset of the next header line.
func skipContinuationLines(payload []byte, offset int) int {
	for {
		peek := readutil.ReadTo(payload[offset:], '\n')
		if peek == nil || len(peek) == 0 || peek[0] != ' ' {
			return offset
		}
		offset += len(peek) + 1
	}
}

// firstLine returns s up to (excluding) its first newline.
func firstLine(s string) string {
	if i := strings.IndexByte(s, '\n'); i != -1 {
		return s[:i]
	}
	return s
}

// toUTF8 decodes b as UTF-8, substituting the replacement character for
// any invalid byte sequence (spec §4.2.1: "treat the payload as UTF-8
// lossy").
func toUTF8(b []byte) string {
	return strings.ToValidUTF8(string(b), "�")
}
