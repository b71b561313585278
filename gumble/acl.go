package gumble

// ACLGroup is one named group descriptor within a channel's ACL view,
// keyed by name the way the wire message keys groups.
type ACLGroup struct {
	Name             string
	Inherited        bool
	Inheritable      bool
	Add              []uint32
	Remove           []uint32
	InheritedMembers []uint32
}

// ACLEntry is a single ordered access control entry.
type ACLEntry struct {
	ApplyHere bool
	ApplySubs bool
	Inherited bool
	// UserID is set for a user-targeted entry; Group is set for a
	// group-targeted entry. Exactly one is meaningful per entry.
	UserID int32
	Group  string
	Grant  uint32
	Deny   uint32
}

// ACL is the full access-control view of one channel, populated only in
// response to an explicit QueryACL command and overwritten wholesale on
// each response.
type ACL struct {
	ChannelID uint32
	Inherit   bool
	Groups    map[string]*ACLGroup
	Entries   []*ACLEntry
}

// ACLEvent is delivered via EventListener.OnACL when a queried channel's
// ACL view arrives.
type ACLEvent struct {
	ACL *ACL
}
