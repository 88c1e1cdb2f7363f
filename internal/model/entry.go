package model

//EntryKind tells what a mirrored entry is at the destination.
type EntryKind string

const (
	KindDir         EntryKind = "dir"
	KindPlaceholder EntryKind = "placeholder"
)

//Action is what the mirror did (or would do, in dry-run) with an entry.
type Action string

const (
	ActionCreated Action = "created"
	ActionReused  Action = "reused"  // directory already existed at the destination
	ActionSkipped Action = "skipped" // file already existed and skip-existing is on
	ActionPlanned Action = "planned" // dry-run
)

//Entry - one source entry and its mirror in the destination tree.
type Entry struct {
	Kind    EntryKind
	Action  Action
	DstPath string
}

//Written reports whether the entry caused a destination write (or would have, in dry-run).
func (e Entry) Written() bool {
	return e.Action == ActionCreated || e.Action == ActionPlanned
}
