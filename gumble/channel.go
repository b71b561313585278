package gumble

import "sync"

// ChannelChangeMask identifies which Channel fields changed in a
// ChannelChangeEvent, so a listener can react to e.g. only description
// updates without re-diffing the whole struct itself.
type ChannelChangeMask uint32

const (
	ChannelChangeCreated ChannelChangeMask = 1 << iota
	ChannelChangeRemoved
	ChannelChangeName
	ChannelChangeParent
	ChannelChangePosition
	ChannelChangeDescription
	ChannelChangeLinks
	ChannelChangeMaxUsers
)

// Channel is a node in the server's channel tree. Parent is
// stored as an id and resolved on demand through the owning Channels table,
// avoiding a weak/back-pointer type for the inherently cyclic parent <->
// children relationship.
type Channel struct {
	ID       uint32
	Name     string
	Position int32
	MaxUsers uint32
	Temporary bool

	parentID    uint32
	hasParent   bool
	description string
	descriptionHash []byte
	links       map[uint32]bool

	channels *Channels
}

// HasParent reports whether this channel has a parent (false only for the
// root channel, id 0).
func (c *Channel) HasParent() bool { return c.hasParent }

// Parent resolves the parent channel, or nil for the root channel or if the
// parent id no longer exists in the table.
func (c *Channel) Parent() *Channel {
	if !c.hasParent {
		return nil
	}
	return c.channels.get(c.parentID)
}

// ParentID returns the raw parent channel id; only meaningful if HasParent.
func (c *Channel) ParentID() uint32 { return c.parentID }

// Description returns the cached description text, which may be empty even
// when DescriptionHash is non-empty if the blob has not been fetched yet.
func (c *Channel) Description() string { return c.description }

// DescriptionHash returns the opaque blob hash identifying the channel's
// current description, or nil if the channel has none.
func (c *Channel) DescriptionHash() []byte { return c.descriptionHash }

// Links returns the set of channel ids this channel is linked to.
func (c *Channel) Links() []uint32 {
	out := make([]uint32, 0, len(c.links))
	for id := range c.links {
		out = append(out, id)
	}
	return out
}

// Children returns the channels whose parent is this channel.
func (c *Channel) Children() []*Channel {
	return c.channels.childrenOf(c.ID)
}

// snapshot captures the fields diffed for change detection and included
// (by name) in ChannelChangeEvent.Previous.
type channelSnapshot struct {
	Name        string
	ParentID    uint32
	HasParent   bool
	Position    int32
	Description string
	DescriptionHash []byte
	MaxUsers    uint32
	Temporary   bool
}

func (c *Channel) snapshot() channelSnapshot {
	return channelSnapshot{
		Name: c.Name, ParentID: c.parentID, HasParent: c.hasParent,
		Position: c.Position, Description: c.description,
		DescriptionHash: c.descriptionHash, MaxUsers: c.MaxUsers, Temporary: c.Temporary,
	}
}

// Channels is the Facade-owned, mutex-guarded channel table keyed by id;
// its mutex is never held across a callback dispatch.
type Channels struct {
	mu    sync.Mutex
	byID  map[uint32]*Channel
}

func newChannels() *Channels {
	return &Channels{byID: make(map[uint32]*Channel)}
}

// Get returns the channel with the given id, or nil.
func (cs *Channels) Get(id uint32) *Channel {
	cs.mu.Lock()
	defer cs.mu.Unlock()
	return cs.byID[id]
}

func (cs *Channels) get(id uint32) *Channel {
	// Internal variant used by Channel.Parent and the replicator. It takes
	// cs.mu itself, so callers must not already hold it. The returned
	// channel is a borrowed reference that may be momentarily stale,
	// matching the "borrowed reference on demand" design.
	cs.mu.Lock()
	defer cs.mu.Unlock()
	return cs.byID[id]
}

// Root returns the channel with id 0, or nil before it has been received.
func (cs *Channels) Root() *Channel { return cs.Get(0) }

// All returns every known channel, order unspecified.
func (cs *Channels) All() []*Channel {
	cs.mu.Lock()
	defer cs.mu.Unlock()
	out := make([]*Channel, 0, len(cs.byID))
	for _, c := range cs.byID {
		out = append(out, c)
	}
	return out
}

func (cs *Channels) childrenOf(parent uint32) []*Channel {
	cs.mu.Lock()
	defer cs.mu.Unlock()
	var out []*Channel
	for _, c := range cs.byID {
		if c.hasParent && c.parentID == parent {
			out = append(out, c)
		}
	}
	return out
}

// clear empties the table.
func (cs *Channels) clear() {
	cs.mu.Lock()
	defer cs.mu.Unlock()
	cs.byID = make(map[uint32]*Channel)
}

// ChannelChangeEvent is delivered via EventListener.OnChannelChange; Previous
// holds the channel's snapshot fields as they were before the update was
// applied, and Mask names the ones that changed.
type ChannelChangeEvent struct {
	Channel  *Channel
	Mask     ChannelChangeMask
	Previous channelSnapshot
}
