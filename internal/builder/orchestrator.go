package builder

import (
	"fmt"
	"sync"
	"sync/atomic"

	"github.com/lumenlearn/pagecraft/internal/domain"
)

// Options configures per-page orchestrator behavior.
type Options struct {
	// AutoSelectOnAdd selects the newly appended section. The profile
	// builder does this; the landing builder does not.
	AutoSelectOnAdd bool
}

// ChangeFunc observes the envelope after every mutation. It is invoked
// outside the orchestrator lock with a snapshot, so observers may call
// back into the orchestrator.
type ChangeFunc func(Envelope)

// Orchestrator holds the authoritative in-memory section list for one
// editing session, the selected-section cursor, and the page-level flags.
// All mutations produce a new backing array. The design assumes a single
// editor per envelope; the mutex only serializes interleaved HTTP
// requests from that one session.
type Orchestrator struct {
	mu       sync.Mutex
	reg      *Registry
	opts     Options
	sections []Section
	selected int // -1 means no selection
	enabled  bool
	version  int
	navbar   *NavbarConfig
	onChange ChangeFunc
	saving   atomic.Bool
}

// NewOrchestrator creates an orchestrator over the given section type
// registry with an empty, disabled envelope.
func NewOrchestrator(reg *Registry, opts Options) *Orchestrator {
	return &Orchestrator{
		reg:      reg,
		opts:     opts,
		selected: -1,
	}
}

// SetOnChange installs the mutation observer. Must be called before the
// orchestrator is exposed to handlers.
func (o *Orchestrator) SetOnChange(fn ChangeFunc) {
	o.mu.Lock()
	o.onChange = fn
	o.mu.Unlock()
}

// Hydrate replaces the working state with the given envelope. Used once
// on mount and when recovering a draft. Selection is reset.
func (o *Orchestrator) Hydrate(env Envelope) {
	o.mu.Lock()
	o.sections = clone(env.Sections)
	o.enabled = env.Enabled
	o.version = env.SchemaVersion
	o.navbar = env.Navbar
	o.selected = -1
	o.mu.Unlock()
}

// AddSection factory-creates a section of the given tag and appends it.
// Selection moves to the new section only when AutoSelectOnAdd is set.
func (o *Orchestrator) AddSection(tag string) (Section, error) {
	s, err := o.reg.NewEmpty(tag)
	if err != nil {
		return nil, err
	}

	o.mu.Lock()
	o.sections = Append(o.sections, s)
	if o.opts.AutoSelectOnAdd {
		o.selected = len(o.sections) - 1
	}
	o.mu.Unlock()

	o.notify()
	return s, nil
}

// UpdateSection replaces the section at index with a fully-formed
// replacement. No validation happens at this layer; field-level hints are
// cosmetic and never gate a save.
func (o *Orchestrator) UpdateSection(index int, s Section) error {
	o.mu.Lock()
	if index < 0 || index >= len(o.sections) {
		o.mu.Unlock()
		return fmt.Errorf("%w: %d", domain.ErrIndexOutOfRange, index)
	}
	o.sections = ReplaceAt(o.sections, index, s)
	o.mu.Unlock()

	o.notify()
	return nil
}

// DeleteSection removes the section at index. If the deleted section was
// selected the selection is cleared; a selection past the deleted index
// shifts down so it keeps pointing at the same section.
func (o *Orchestrator) DeleteSection(index int) error {
	o.mu.Lock()
	if index < 0 || index >= len(o.sections) {
		o.mu.Unlock()
		return fmt.Errorf("%w: %d", domain.ErrIndexOutOfRange, index)
	}
	o.sections = RemoveAt(o.sections, index)
	switch {
	case o.selected == index:
		o.selected = -1
	case o.selected > index:
		o.selected--
	}
	o.mu.Unlock()

	o.notify()
	return nil
}

// Reorder removes the section at src and reinserts it at dst. The
// selection follows the moved section to its destination index.
func (o *Orchestrator) Reorder(src, dst int) error {
	o.mu.Lock()
	if src < 0 || src >= len(o.sections) || dst < 0 || dst >= len(o.sections) {
		o.mu.Unlock()
		return fmt.Errorf("%w: %d -> %d", domain.ErrIndexOutOfRange, src, dst)
	}
	o.sections = Move(o.sections, src, dst)
	o.selected = dst
	o.mu.Unlock()

	o.notify()
	return nil
}

// Select moves the cursor to the given index.
func (o *Orchestrator) Select(index int) error {
	o.mu.Lock()
	defer o.mu.Unlock()
	if index < 0 || index >= len(o.sections) {
		return fmt.Errorf("%w: %d", domain.ErrIndexOutOfRange, index)
	}
	o.selected = index
	return nil
}

// ClearSelection resets the cursor.
func (o *Orchestrator) ClearSelection() {
	o.mu.Lock()
	o.selected = -1
	o.mu.Unlock()
}

// Selected returns the cursor and whether a section is selected.
func (o *Orchestrator) Selected() (int, bool) {
	o.mu.Lock()
	defer o.mu.Unlock()
	return o.selected, o.selected >= 0
}

// Sections returns a snapshot copy of the section list.
func (o *Orchestrator) Sections() []Section {
	o.mu.Lock()
	defer o.mu.Unlock()
	return clone(o.sections)
}

// SetEnabled flips the page-level enabled flag.
func (o *Orchestrator) SetEnabled(enabled bool) {
	o.mu.Lock()
	o.enabled = enabled
	o.mu.Unlock()
	o.notify()
}

// Enabled reports the page-level enabled flag.
func (o *Orchestrator) Enabled() bool {
	o.mu.Lock()
	defer o.mu.Unlock()
	return o.enabled
}

// SetNavbar replaces the page-level navbar config.
func (o *Orchestrator) SetNavbar(nav *NavbarConfig) {
	o.mu.Lock()
	o.navbar = nav
	o.mu.Unlock()
	o.notify()
}

// SetSchemaVersion stamps the envelope's schema version.
func (o *Orchestrator) SetSchemaVersion(v int) {
	o.mu.Lock()
	o.version = v
	o.mu.Unlock()
}

// Envelope returns a snapshot of the full document.
func (o *Orchestrator) Envelope() Envelope {
	o.mu.Lock()
	defer o.mu.Unlock()
	return o.envelopeLocked()
}

func (o *Orchestrator) envelopeLocked() Envelope {
	return Envelope{
		Sections:      clone(o.sections),
		Enabled:       o.enabled,
		SchemaVersion: o.version,
		Navbar:        o.navbar,
	}
}

// BeginSave flips the in-flight guard. It returns false when a save is
// already running; the caller should surface domain.ErrSaveInFlight. The
// envelope stays editable while the save is in flight.
func (o *Orchestrator) BeginSave() bool {
	return o.saving.CompareAndSwap(false, true)
}

// EndSave releases the in-flight guard.
func (o *Orchestrator) EndSave() {
	o.saving.Store(false)
}

// Saving reports whether a save is in flight, so the UI can disable the
// save affordance.
func (o *Orchestrator) Saving() bool {
	return o.saving.Load()
}

func (o *Orchestrator) notify() {
	o.mu.Lock()
	fn := o.onChange
	env := o.envelopeLocked()
	o.mu.Unlock()
	if fn != nil {
		fn(env)
	}
}
