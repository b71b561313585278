package gumble

import "sync"

// EventListener is the callback surface an embedder implements (in whole or
// in part, via the Listener struct adapter below) to observe the Facade's
// view of the connection, channels, users, and chat. Dispatch never blocks
// the reader/dispatcher goroutine: every call runs on a worker from the
// callback pool (Config.CallbackWorkers, default 1).
type EventListener interface {
	OnConnect(e *ConnectEvent)
	OnDisconnect(e *DisconnectEvent)
	OnTextMessage(e *TextMessageEvent)
	OnChannelChange(e *ChannelChangeEvent)
	OnUserChange(e *UserChangeEvent)
	OnPermissionDenied(e *PermissionDeniedEvent)
	OnUserList(e *UserListEvent)
	OnACL(e *ACLEvent)
	OnBanList(e *BanListEvent)
	OnContextActionChange(e *ContextActionChangeEvent)
	OnServerConfig(e *ServerConfigEvent)
}

// AudioListener observes decoded inbound audio. Registered separately from
// EventListener because most embedders that care about audio do not care
// about chat/roster events, and vice versa.
type AudioListener interface {
	OnAudioStream(e *AudioStreamEvent)
}

// Listener is a struct of optional function fields satisfying EventListener;
// an embedder only fills in the callbacks it cares about. This replaces the
// "override a virtual method" pattern with a plain record of
// closures.
type Listener struct {
	Connect               func(e *ConnectEvent)
	Disconnect            func(e *DisconnectEvent)
	TextMessage           func(e *TextMessageEvent)
	ChannelChange         func(e *ChannelChangeEvent)
	UserChange            func(e *UserChangeEvent)
	PermissionDenied      func(e *PermissionDeniedEvent)
	UserList              func(e *UserListEvent)
	ACL                   func(e *ACLEvent)
	BanList               func(e *BanListEvent)
	ContextActionChange   func(e *ContextActionChangeEvent)
	ServerConfig          func(e *ServerConfigEvent)
}

func (l *Listener) OnConnect(e *ConnectEvent) {
	if l.Connect != nil {
		l.Connect(e)
	}
}
func (l *Listener) OnDisconnect(e *DisconnectEvent) {
	if l.Disconnect != nil {
		l.Disconnect(e)
	}
}
func (l *Listener) OnTextMessage(e *TextMessageEvent) {
	if l.TextMessage != nil {
		l.TextMessage(e)
	}
}
func (l *Listener) OnChannelChange(e *ChannelChangeEvent) {
	if l.ChannelChange != nil {
		l.ChannelChange(e)
	}
}
func (l *Listener) OnUserChange(e *UserChangeEvent) {
	if l.UserChange != nil {
		l.UserChange(e)
	}
}
func (l *Listener) OnPermissionDenied(e *PermissionDeniedEvent) {
	if l.PermissionDenied != nil {
		l.PermissionDenied(e)
	}
}
func (l *Listener) OnUserList(e *UserListEvent) {
	if l.UserList != nil {
		l.UserList(e)
	}
}
func (l *Listener) OnACL(e *ACLEvent) {
	if l.ACL != nil {
		l.ACL(e)
	}
}
func (l *Listener) OnBanList(e *BanListEvent) {
	if l.BanList != nil {
		l.BanList(e)
	}
}
func (l *Listener) OnContextActionChange(e *ContextActionChangeEvent) {
	if l.ContextActionChange != nil {
		l.ContextActionChange(e)
	}
}
func (l *Listener) OnServerConfig(e *ServerConfigEvent) {
	if l.ServerConfig != nil {
		l.ServerConfig(e)
	}
}

// Detacher removes a previously-attached listener.
type Detacher interface {
	Detach()
}

type detacher struct {
	detach func()
}

func (d detacher) Detach() { d.detach() }

// Listeners is a concurrency-safe collection of EventListener; events are
// handed to the attached listeners in no particular order.
// The zero value is ready to use.
type Listeners struct {
	mu    sync.Mutex
	items map[int]EventListener
	next  int
}

// Attach registers l and returns a Detacher that removes it again.
func (ls *Listeners) Attach(l EventListener) Detacher {
	ls.mu.Lock()
	defer ls.mu.Unlock()
	if ls.items == nil {
		ls.items = make(map[int]EventListener)
	}
	id := ls.next
	ls.next++
	ls.items[id] = l
	return detacher{detach: func() {
		ls.mu.Lock()
		defer ls.mu.Unlock()
		delete(ls.items, id)
	}}
}

func (ls *Listeners) snapshot() []EventListener {
	ls.mu.Lock()
	defer ls.mu.Unlock()
	out := make([]EventListener, 0, len(ls.items))
	for _, l := range ls.items {
		out = append(out, l)
	}
	return out
}

// AudioListeners is the AudioListener analogue of Listeners.
type AudioListeners struct {
	mu    sync.Mutex
	items map[int]AudioListener
	next  int
}

func (ls *AudioListeners) Attach(l AudioListener) Detacher {
	ls.mu.Lock()
	defer ls.mu.Unlock()
	if ls.items == nil {
		ls.items = make(map[int]AudioListener)
	}
	id := ls.next
	ls.next++
	ls.items[id] = l
	return detacher{detach: func() {
		ls.mu.Lock()
		defer ls.mu.Unlock()
		delete(ls.items, id)
	}}
}

func (ls *AudioListeners) snapshot() []AudioListener {
	ls.mu.Lock()
	defer ls.mu.Unlock()
	out := make([]AudioListener, 0, len(ls.items))
	for _, l := range ls.items {
		out = append(out, l)
	}
	return out
}

// dispatcher fans event callbacks out to a fixed worker pool, never
// blocking the caller. Before the first ServerSync it
// parks events it is told to stage so a half-initialized view is never
// observed by an embedder's callback.
type dispatcher struct {
	jobs    chan func()
	wg      sync.WaitGroup
	staging struct {
		mu      sync.Mutex
		active  bool
		pending []func()
	}
}

func newDispatcher(workers int) *dispatcher {
	if workers < 1 {
		workers = 1
	}
	d := &dispatcher{jobs: make(chan func(), 256)}
	d.staging.active = true
	d.wg.Add(workers)
	for i := 0; i < workers; i++ {
		go d.worker()
	}
	return d
}

func (d *dispatcher) worker() {
	defer d.wg.Done()
	for job := range d.jobs {
		d.runSafely(job)
	}
}

// runSafely executes job, logging and swallowing any panic so one bad
// callback never takes down the worker pool.
func (d *dispatcher) runSafely(job func()) {
	defer func() {
		if r := recover(); r != nil {
			defaultLogger().Error("gumble: callback panicked", "recover", r)
		}
	}()
	job()
}

// dispatch either enqueues job for immediate execution, or — while staging
// is active — appends it to the pending list to be released by commit().
func (d *dispatcher) dispatch(job func()) {
	d.staging.mu.Lock()
	if d.staging.active {
		d.staging.pending = append(d.staging.pending, job)
		d.staging.mu.Unlock()
		return
	}
	d.staging.mu.Unlock()
	d.jobs <- job
}

// commit atomically ends the staging period and flushes every pending job
// in the order it was recorded, called once ServerSync arrives.
func (d *dispatcher) commit() {
	d.staging.mu.Lock()
	pending := d.staging.pending
	d.staging.pending = nil
	d.staging.active = false
	d.staging.mu.Unlock()
	for _, job := range pending {
		d.jobs <- job
	}
}

// stop drains no further jobs but lets already-queued callbacks complete.
func (d *dispatcher) stop() {
	close(d.jobs)
	d.wg.Wait()
}
