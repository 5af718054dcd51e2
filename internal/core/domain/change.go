package domain

// ChangeType represents the type of filesystem change.
type ChangeType int

const (
	// ChangeCreated indicates a new file or directory.
	ChangeCreated ChangeType = iota

	// ChangeUpdated indicates a modified file.
	ChangeUpdated

	// ChangeDeleted indicates a removed or renamed path.
	ChangeDeleted
)

// String returns the change type name.
func (t ChangeType) String() string {
	switch t {
	case ChangeCreated:
		return "created"
	case ChangeUpdated:
		return "updated"
	case ChangeDeleted:
		return "deleted"
	default:
		return "unknown"
	}
}

// ChangeEvent reports a change under a watched root.
// Watch consumers rescan wholesale; the event only signals that a rescan is due.
type ChangeEvent struct {
	Type ChangeType
	Path string
}
