// Package history implements the commit history walker: a breadth-first
// traversal of the commit DAG from a root set, bounded by a visit cap
// (spec §4.4).
package history

import (
	"github.com/nivl-successor/gitlens/object"
	"github.com/nivl-successor/gitlens/oid"
	"github.com/sirupsen/logrus"
)

// ObjectReader is the narrow object-store dependency the walker needs.
type ObjectReader interface {
	Read(id oid.Oid) (*object.Object, error)
}

// Walker performs BFS traversal of the commit graph.
type Walker struct {
	store  ObjectReader
	logger logrus.FieldLogger
}

// New creates a Walker backed by store.
func New(store ObjectReader, logger logrus.FieldLogger) *Walker {
	if logger == nil {
		logger = logrus.StandardLogger()
	}
	return &Walker{store: store, logger: logger}
}

// Walk returns up to limit commits reachable from roots, in breadth-first
// order: a FIFO queue seeded with roots in the given order, dequeuing one
// hash at a time, skipping already-seen hashes, decoding and appending
// the commit, then enqueuing its parents in order. Commits that fail to
// decode are skipped rather than aborting the walk. The result is a BFS
// order, not a topological sort — two independent branches interleave by
// graph distance from the roots (spec §4.4).
func (w *Walker) Walk(roots []oid.Oid, limit int) []*object.Commit {
	if limit <= 0 {
		return nil
	}

	seen := make(map[oid.Oid]struct{}, len(roots))
	queue := make([]oid.Oid, len(roots))
	copy(queue, roots)

	var result []*object.Commit
	for len(queue) > 0 && len(result) < limit {
		id := queue[0]
		queue = queue[1:]

		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}

		commit, err := w.decodeCommit(id)
		if err != nil {
			w.logger.WithError(err).WithField("commit", id).Warn("skipping undecodable commit")
			continue
		}

		result = append(result, commit)
		queue = append(queue, commit.ParentIDs...)
	}
	return result
}

func (w *Walker) decodeCommit(id oid.Oid) (*object.Commit, error) {
	o, err := w.store.Read(id)
	if err != nil {
		return nil, err
	}
	return o.AsCommit()
}
