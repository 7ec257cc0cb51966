package object

import (
	"fmt"
	"regexp"
)

// identityLineRE matches "Name <email> timestamp +tzoffset" once the
// leading role keyword ("author "/"committer "/"tagger ") has been
// stripped by the caller.
var identityLineRE = regexp.MustCompile(`^(.+) <(.+)> (\d+) ([+-]\d{4})$`)

// Identity is an author/committer/tagger record: display name, email,
// Unix epoch seconds, and a "+HHMM"/"-HHMM" timezone offset.
type Identity struct {
	Name      string
	Email     string
	Timestamp int64
	Timezone  string
}

// unknownIdentity is the sentinel produced when a raw identity line
// cannot be parsed, per spec §3: recovered locally rather than failing.
var unknownIdentity = Identity{
	Name:      "Unknown",
	Email:     "unknown@example.com",
	Timestamp: 0,
	Timezone:  "+0000",
}

// ParseIdentity parses the remainder of an author/committer/tagger line
// after its role keyword has been stripped. On any mismatch it returns
// the sentinel Identity rather than an error — a malformed identity line
// is a recoverable condition (spec §7, "Malformed").
func ParseIdentity(raw string) Identity {
	m := identityLineRE.FindStringSubmatch(raw)
	if m == nil {
		return unknownIdentity
	}
	var ts int64
	if _, err := fmt.Sscanf(m[3], "%d", &ts); err != nil {
		return unknownIdentity
	}
	return Identity{
		Name:      m[1],
		Email:     m[2],
		Timestamp: ts,
		Timezone:  m[4],
	}
}

// String renders the identity the way it appears on disk:
// "Name <email> timestamp +tzoffset".
func (id Identity) String() string {
	return fmt.Sprintf("%s <%s> %d %s", id.Name, id.Email, id.Timestamp, id.Timezone)
}
