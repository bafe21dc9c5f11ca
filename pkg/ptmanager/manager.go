// Package ptmanager bundles the per-compilation-unit collaborators a real
// front end wires together around the CORE: the arena, the chosen factory
// implementation, a string-interning table, the registered module/UDP
// namespaces, and the attribute-instance side table (spec.md §6,
// SPEC_FULL §C.3/§C.4). None of this is itself parse-tree construction —
// it is the bookkeeping layer a parser driver needs to make repeated calls
// into ptfactory/parsestate add up to a coherent compilation unit.
package ptmanager

import (
	"github.com/matsunaga-lab/ym-verilog-pt/pkg/arena"
	"github.com/matsunaga-lab/ym-verilog-pt/pkg/pt"
	"github.com/matsunaga-lab/ym-verilog-pt/pkg/ptfactory"
	"github.com/matsunaga-lab/ym-verilog-pt/pkg/utils"
)

// Manager owns one Arena for the lifetime of a single source-file read,
// mirroring spec.md §5's "the parser owns the arena for the duration of a
// single read_file call".
type Manager struct {
	arena   *arena.Arena
	factory ptfactory.Factory

	strings map[string]string

	modules utils.OrderedMap[string, *pt.PtModule]
	udps    utils.OrderedMap[string, *pt.PtUdp]

	attrInst map[interface{}]*pt.PtAttrInst

	defNames map[string]bool
}

// New creates a Manager using factory implementation kind ("cpt" or "spt").
func New(kind string) *Manager {
	a := arena.New()
	return &Manager{
		arena:    a,
		factory:  ptfactory.New(kind, a),
		strings:  make(map[string]string),
		modules:  utils.NewOrderedMapFromList[string, *pt.PtModule](nil),
		udps:     utils.NewOrderedMapFromList[string, *pt.PtUdp](nil),
		attrInst: make(map[interface{}]*pt.PtAttrInst),
		defNames: make(map[string]bool),
	}
}

// Arena returns the bound allocator.
func (m *Manager) Arena() *arena.Arena { return m.arena }

// Factory returns the bound PT factory.
func (m *Manager) Factory() ptfactory.Factory { return m.factory }

// SaveString interns s, so repeated identifiers across a large source file
// share one backing string rather than allocating a distinct copy per
// occurrence (spec.md §6: the original's StrBuff-backed string pool).
func (m *Manager) SaveString(s string) string {
	if cached, ok := m.strings[s]; ok {
		return cached
	}
	m.strings[s] = s
	return s
}

// RegModule registers a completed module definition under its name. A
// second registration of the same name overwrites the first — duplicate-
// definition detection is the elaborator's job, not the parse-tree
// manager's (spec.md §1's scope boundary).
func (m *Manager) RegModule(mod *pt.PtModule) {
	m.modules.Set(mod.Name, mod)
	m.defNames[mod.Name] = true
}

// FindModule looks up a registered module by name.
func (m *Manager) FindModule(name string) (*pt.PtModule, bool) {
	return m.modules.Get(name)
}

// ModuleNames returns every registered module name, in registration order.
func (m *Manager) ModuleNames() []string {
	names := make([]string, 0, m.modules.Size())
	m.modules.Entries()(func(k string, _ *pt.PtModule) bool {
		names = append(names, k)
		return true
	})
	return names
}

// RegUdp registers a completed UDP definition under its name.
func (m *Manager) RegUdp(u *pt.PtUdp) {
	m.udps.Set(u.Name, u)
	m.defNames[u.Name] = true
}

// FindUdp looks up a registered UDP by name.
func (m *Manager) FindUdp(name string) (*pt.PtUdp, bool) {
	return m.udps.Get(name)
}

// DefNames reports the name of every module and UDP registered so far
// through RegModule/RegUdp (modules and UDPs share one namespace in
// Verilog), in no particular order. Names that instantiations refer to are
// not collected.
func (m *Manager) DefNames() []string {
	names := make([]string, 0, len(m.defNames))
	for n := range m.defNames {
		names = append(names, n)
	}
	return names
}

// RegAttrInst records an attribute instance against the node it decorates,
// using the node pointer's identity as the key (spec.md §6's reg_attrinst
// side table; see pt.PtAttrInst's doc comment for why attributes are not
// stored inline on every node).
func (m *Manager) RegAttrInst(node interface{}, inst *pt.PtAttrInst) {
	m.attrInst[node] = inst
}

// AttrInstOf returns the attribute instance registered for node, if any.
func (m *Manager) AttrInstOf(node interface{}) (*pt.PtAttrInst, bool) {
	inst, ok := m.attrInst[node]
	return inst, ok
}
