package styles

// SlotStatus tracks one palette slot's lifecycle.
type SlotStatus uint8

const (
	// StatusInitial marks storage that has not been constructed yet.
	StatusInitial SlotStatus = iota
	// StatusCreated marks storage constructed from the declared literal or
	// an inherited fallback during Finalize.
	StatusCreated
	// StatusLoaded marks storage constructed or overwritten from external
	// data (a cache blob, SetColor, or another table).
	StatusLoaded
)

// SlotDef is one color's compiled definition: its declared name, literal
// default channels, and the index of its fallback slot (-1 for none).
type SlotDef struct {
	Name       string
	R, G, B, A uint8
	Fallback   int
}

// LookupFunc resolves a color name to its slot index, or -1 when the name is
// not part of the palette. Generated modules compile the name set into a
// branching function of this shape.
type LookupFunc func(name []byte) int

// Palette is a table of color slots. It is created not ready: Finalize must
// run once before any read. No synchronization is provided; callers must
// establish a happens-before between Finalize and concurrent readers, for
// example by finalizing during single-threaded startup.
type Palette struct {
	defs   []SlotDef
	lookup LookupFunc
	cells  []ColorData
	status []SlotStatus
	ready  bool
}

// NewPalette builds an unfinalized palette over the given slot definitions.
func NewPalette(defs []SlotDef, lookup LookupFunc) *Palette {
	return &Palette{
		defs:   defs,
		lookup: lookup,
		cells:  make([]ColorData, len(defs)),
		status: make([]SlotStatus, len(defs)),
	}
}

// Len returns the slot count.
func (p *Palette) Len() int { return len(p.defs) }

// Color returns a handle to the slot's storage. The handle stays valid for
// the palette's lifetime and observes later overwrites.
func (p *Palette) Color(index int) Color {
	return Color{data: &p.cells[index]}
}

// Status returns the slot's current lifecycle state.
func (p *Palette) Status(index int) SlotStatus { return p.status[index] }

// Ready reports whether Finalize has run.
func (p *Palette) Ready() bool { return p.ready }

// Finalize resolves every slot still Initial, in declaration order. It is
// idempotent. Fallbacks resolve in a single left-to-right pass: a slot whose
// fallback is declared later falls through to its own literal default,
// because the fallback has not been constructed yet at that point. This
// ordering is part of the contract and pinned by tests; do not replace it
// with a multi-pass resolver.
func (p *Palette) Finalize() {
	if p.ready {
		return
	}
	p.ready = true

	for i, def := range p.defs {
		p.compute(i, def.Fallback, ColorData{R: def.R, G: def.G, B: def.B, A: def.A})
	}
}

func (p *Palette) compute(index, fallback int, value ColorData) {
	if p.status[index] != StatusInitial {
		return
	}
	if fallback >= 0 && p.status[fallback] != StatusInitial {
		p.cells[index] = p.cells[fallback]
		p.status[index] = StatusLoaded
		return
	}
	p.cells[index] = value
	p.status[index] = StatusCreated
}

func (p *Palette) setData(index int, value ColorData) {
	p.cells[index] = value
	p.status[index] = StatusLoaded
}

// Save serializes the table to exactly four bytes per slot in red, green,
// blue, alpha order. An unfinalized table is finalized first.
func (p *Palette) Save() []byte {
	if !p.ready {
		p.Finalize()
	}

	result := make([]byte, 0, len(p.cells)*4)
	for i := range p.cells {
		result = append(result, p.cells[i].R, p.cells[i].G, p.cells[i].B, p.cells[i].A)
	}
	return result
}

// Load replaces every slot from a cache blob. It rejects any buffer whose
// length is not exactly four bytes per slot and marks every slot Loaded on
// success, regardless of prior status.
func (p *Palette) Load(cache []byte) bool {
	if len(cache) != len(p.cells)*4 {
		return false
	}

	for i := range p.cells {
		p.setData(i, ColorData{
			R: cache[i*4+0],
			G: cache[i*4+1],
			B: cache[i*4+2],
			A: cache[i*4+3],
		})
	}
	return true
}

// SetColor overwrites one slot by name. It returns false when the name does
// not resolve.
func (p *Palette) SetColor(name []byte, r, g, b, a uint8) bool {
	index := p.lookup(name)
	if index < 0 {
		return false
	}
	p.setData(index, ColorData{R: r, G: g, B: b, A: a})
	return true
}

// SetColorFrom copies one already-Loaded slot's bytes into another, both
// resolved by name. It returns false when either name does not resolve or
// the source slot is not Loaded.
func (p *Palette) SetColorFrom(name, from []byte) bool {
	index := p.lookup(name)
	fromIndex := p.lookup(from)
	if index < 0 || fromIndex < 0 || p.status[fromIndex] != StatusLoaded {
		return false
	}
	p.setData(index, p.cells[fromIndex])
	return true
}

// Apply copies every Loaded slot from another table of the same shape. Slots
// the other table leaves unloaded revert to Initial here, destructing any
// storage this side holds; if this table had already been finalized and a
// slot reverted, Finalize runs again to fill the gaps.
func (p *Palette) Apply(other *Palette) {
	wasReady := p.ready
	for i := range p.defs {
		if other.status[i] == StatusLoaded {
			p.setData(i, other.cells[i])
		} else if p.status[i] != StatusInitial {
			p.cells[i] = ColorData{}
			p.status[i] = StatusInitial
			p.ready = false
		}
	}
	if wasReady && !p.ready {
		p.Finalize()
	}
}
