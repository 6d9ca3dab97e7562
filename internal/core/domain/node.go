package domain

// NodeKind classifies a Drive storage entry.
type NodeKind string

const (
	// KindFolder is a Drive folder.
	KindFolder NodeKind = "folder"
	// KindFile is a regular (non-folder, non-shortcut) Drive item.
	KindFile NodeKind = "file"
	// KindShortcut is a Drive shortcut referring to another entry by ID.
	KindShortcut NodeKind = "shortcut"
)

// RemoteNode is a storage entry as seen by the resolver and locator.
// Drive items may have multiple parents; shortcuts carry the target ID.
type RemoteNode struct {
	// ID is the Drive-assigned identifier.
	ID string
	// Name is the display name.
	Name string
	// Kind classifies the entry.
	Kind NodeKind
	// MIMEType is the raw Drive MIME type.
	MIMEType string
	// Parents are the IDs of the containing folders (zero or more).
	Parents []string
	// TargetID is the shortcut target identifier. Empty unless Kind is KindShortcut.
	TargetID string
	// WebViewLink is the browser link reported by the API, if any.
	WebViewLink string
	// Trashed reports whether the item is in the trash.
	Trashed bool
}

// EffectiveID returns the identifier the node resolves to: the shortcut
// target for shortcuts that carry one, otherwise the node's own ID.
// Shortcut chains are deliberately followed only one hop.
func (n RemoteNode) EffectiveID() string {
	if n.Kind == KindShortcut && n.TargetID != "" {
		return n.TargetID
	}
	return n.ID
}
