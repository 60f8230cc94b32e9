package testutil

import (
	"sort"
	"strings"
	"sync"
	"syscall"
	"time"

	"github.com/joshuapare/regkit/internal/format"
	"github.com/joshuapare/regkit/internal/regcodec"
	"github.com/joshuapare/regkit/internal/sysreg"
	"github.com/joshuapare/regkit/pkg/types"
)

// Operation names accepted by FailNext and FailOn, and counted by Calls.
const (
	OpOpen        = "Open"
	OpCreate      = "Create"
	OpClose       = "Close"
	OpQueryValue  = "QueryValue"
	OpSetValue    = "SetValue"
	OpEnumValue   = "EnumValue"
	OpEnumKey     = "EnumKey"
	OpQueryInfo   = "QueryInfo"
	OpDeleteValue = "DeleteValue"
	OpDeleteKey   = "DeleteKey"
)

// MemRegistry is an in-memory sysreg.Primitive. Key and value names are
// case-insensitive, value data is stored in its raw byte layout through
// regcodec, and handles opened with KEY_WOW64_32KEY see a separate tree.
// Access masks are enforced per handle the way Windows does, so a handle
// opened for reading cannot set values.
type MemRegistry struct {
	// Now stamps key modifications. Defaults to time.Now.
	Now func() time.Time

	mu      sync.Mutex
	roots   map[rootID]*memKey
	handles map[sysreg.Handle]*openKey
	next    sysreg.Handle
	faults  map[string][]fault
	calls   map[string]int
	denied  map[string]bool
}

type rootID struct {
	hive   types.Hive
	view32 bool
}

type memKey struct {
	name       string
	parent     *memKey
	children   map[string]*memKey
	values     map[string]*memValue
	valueOrder []string
	lastWrite  uint64
	deleted    bool
}

type memValue struct {
	name string
	typ  types.RegType
	raw  []byte
}

type openKey struct {
	key    *memKey
	access uint32
}

type fault struct {
	skip  int
	errno syscall.Errno
}

// NewMemRegistry returns an empty registry in which every hive exists.
func NewMemRegistry() *MemRegistry {
	return &MemRegistry{
		Now:     time.Now,
		roots:   make(map[rootID]*memKey),
		handles: make(map[sysreg.Handle]*openKey),
		next:    0x1000,
		faults:  make(map[string][]fault),
		calls:   make(map[string]int),
		denied:  make(map[string]bool),
	}
}

// FailNext makes the next call of op fail with errno.
func (m *MemRegistry) FailNext(op string, errno syscall.Errno) {
	m.FailOn(op, 0, errno)
}

// FailOn lets skip calls of op succeed and fails the one after with errno.
func (m *MemRegistry) FailOn(op string, skip int, errno syscall.Errno) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.faults[op] = append(m.faults[op], fault{skip: skip, errno: errno})
}

// DenyWrite makes opening or creating path with any write right fail with
// ERROR_ACCESS_DENIED. Read access stays allowed.
func (m *MemRegistry) DenyWrite(hive types.Hive, path string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.denied[denyKey(hive, path)] = true
}

// OpenHandles reports how many handles are currently open.
func (m *MemRegistry) OpenHandles() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.handles)
}

// Calls reports how many times op has been invoked.
func (m *MemRegistry) Calls(op string) int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.calls[op]
}

// TotalCalls reports the number of calls across all operations.
func (m *MemRegistry) TotalCalls() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	n := 0
	for _, c := range m.calls {
		n += c
	}
	return n
}

// KeyExists reports whether path exists under hive in the native view.
func (m *MemRegistry) KeyExists(hive types.Hive, path string) bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	_, ok := m.lookup(m.root(hive, false), path)
	return ok
}

// --- sysreg.Primitive ---

func (m *MemRegistry) Open(hive types.Hive, path string, access uint32) (sysreg.Handle, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if err := m.enter(OpOpen); err != nil {
		return 0, err
	}
	if m.writeDenied(hive, path, access) {
		return 0, sysreg.ErrorAccessDenied
	}
	k, ok := m.lookup(m.root(hive, access&sysreg.KeyWow64_32Key != 0), path)
	if !ok {
		return 0, sysreg.ErrorFileNotFound
	}
	return m.open(k, access), nil
}

func (m *MemRegistry) Create(hive types.Hive, path string, access uint32) (sysreg.Handle, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if err := m.enter(OpCreate); err != nil {
		return 0, err
	}
	if m.writeDenied(hive, path, access) {
		return 0, sysreg.ErrorAccessDenied
	}
	k := m.root(hive, access&sysreg.KeyWow64_32Key != 0)
	for _, seg := range segments(path) {
		child, ok := k.children[strings.ToLower(seg)]
		if !ok {
			child = m.newKey(seg, k)
			k.children[strings.ToLower(seg)] = child
			k.lastWrite = m.stamp()
		}
		k = child
	}
	return m.open(k, access), nil
}

func (m *MemRegistry) Close(h sysreg.Handle) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if err := m.enter(OpClose); err != nil {
		return err
	}
	if _, ok := m.handles[h]; !ok {
		return sysreg.ErrorInvalidHandle
	}
	delete(m.handles, h)
	return nil
}

func (m *MemRegistry) QueryValue(h sysreg.Handle, name string) (any, types.RegType, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	k, err := m.use(OpQueryValue, h, sysreg.KeyQueryValue)
	if err != nil {
		return nil, 0, err
	}
	v, ok := k.values[strings.ToLower(name)]
	if !ok {
		return nil, 0, sysreg.ErrorFileNotFound
	}
	data, err := regcodec.Decode(v.typ, v.raw)
	return data, v.typ, err
}

func (m *MemRegistry) SetValue(h sysreg.Handle, name string, typ types.RegType, data any) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	k, err := m.use(OpSetValue, h, sysreg.KeySetValue)
	if err != nil {
		return err
	}
	raw, err := regcodec.Encode(typ, data)
	if err != nil {
		return err
	}
	lower := strings.ToLower(name)
	if v, ok := k.values[lower]; ok {
		v.typ, v.raw = typ, raw
	} else {
		k.values[lower] = &memValue{name: name, typ: typ, raw: raw}
		k.valueOrder = append(k.valueOrder, lower)
	}
	k.lastWrite = m.stamp()
	return nil
}

func (m *MemRegistry) EnumValue(h sysreg.Handle, index int) (string, any, types.RegType, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	k, err := m.use(OpEnumValue, h, sysreg.KeyQueryValue)
	if err != nil {
		return "", nil, 0, err
	}
	if index < 0 || index >= len(k.valueOrder) {
		return "", nil, 0, sysreg.ErrorNoMoreItems
	}
	v := k.values[k.valueOrder[index]]
	data, err := regcodec.Decode(v.typ, v.raw)
	return v.name, data, v.typ, err
}

func (m *MemRegistry) EnumKey(h sysreg.Handle, index int) (string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	k, err := m.use(OpEnumKey, h, sysreg.KeyEnumerateSubKeys)
	if err != nil {
		return "", err
	}
	names := k.sortedChildren()
	if index < 0 || index >= len(names) {
		return "", sysreg.ErrorNoMoreItems
	}
	return names[index], nil
}

func (m *MemRegistry) QueryInfo(h sysreg.Handle) (sysreg.Info, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	k, err := m.use(OpQueryInfo, h, sysreg.KeyQueryValue)
	if err != nil {
		return sysreg.Info{}, err
	}
	return sysreg.Info{
		Subkeys:   uint32(len(k.children)),
		Values:    uint32(len(k.values)),
		LastWrite: k.lastWrite,
	}, nil
}

func (m *MemRegistry) DeleteValue(h sysreg.Handle, name string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	k, err := m.use(OpDeleteValue, h, sysreg.KeySetValue)
	if err != nil {
		return err
	}
	lower := strings.ToLower(name)
	if _, ok := k.values[lower]; !ok {
		return sysreg.ErrorFileNotFound
	}
	delete(k.values, lower)
	for i, n := range k.valueOrder {
		if n == lower {
			k.valueOrder = append(k.valueOrder[:i], k.valueOrder[i+1:]...)
			break
		}
	}
	k.lastWrite = m.stamp()
	return nil
}

func (m *MemRegistry) DeleteKey(parent sysreg.Handle, name string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	k, err := m.use(OpDeleteKey, parent, sysreg.KeyCreateSubKey)
	if err != nil {
		return err
	}
	target, ok := m.lookup(k, name)
	if !ok {
		return sysreg.ErrorFileNotFound
	}
	// RegDeleteKey refuses keys that still have subkeys.
	if len(target.children) > 0 {
		return sysreg.ErrorAccessDenied
	}
	delete(target.parent.children, strings.ToLower(target.name))
	target.deleted = true
	target.parent.lastWrite = m.stamp()
	return nil
}

// --- internals, called with mu held ---

func (m *MemRegistry) enter(op string) error {
	m.calls[op]++
	queue := m.faults[op]
	if len(queue) == 0 {
		return nil
	}
	if queue[0].skip > 0 {
		queue[0].skip--
		return nil
	}
	errno := queue[0].errno
	m.faults[op] = queue[1:]
	return errno
}

func (m *MemRegistry) use(op string, h sysreg.Handle, need uint32) (*memKey, error) {
	if err := m.enter(op); err != nil {
		return nil, err
	}
	oh, found := m.handles[h]
	if !found {
		return nil, sysreg.ErrorInvalidHandle
	}
	if oh.key.deleted {
		return nil, sysreg.ErrorKeyDeleted
	}
	if oh.access&need != need {
		return nil, sysreg.ErrorAccessDenied
	}
	return oh.key, nil
}

func (m *MemRegistry) open(k *memKey, access uint32) sysreg.Handle {
	m.next++
	h := m.next
	m.handles[h] = &openKey{key: k, access: access}
	return h
}

func (m *MemRegistry) root(hive types.Hive, view32 bool) *memKey {
	id := rootID{hive: hive, view32: view32}
	k, ok := m.roots[id]
	if !ok {
		k = m.newKey(hive.String(), nil)
		m.roots[id] = k
	}
	return k
}

func (m *MemRegistry) newKey(name string, parent *memKey) *memKey {
	return &memKey{
		name:      name,
		parent:    parent,
		children:  make(map[string]*memKey),
		values:    make(map[string]*memValue),
		lastWrite: m.stamp(),
	}
}

func (m *MemRegistry) lookup(k *memKey, path string) (*memKey, bool) {
	for _, seg := range segments(path) {
		child, ok := k.children[strings.ToLower(seg)]
		if !ok {
			return nil, false
		}
		k = child
	}
	return k, true
}

func (m *MemRegistry) writeDenied(hive types.Hive, path string, access uint32) bool {
	if access&(sysreg.KeySetValue|sysreg.KeyCreateSubKey) == 0 {
		return false
	}
	return m.denied[denyKey(hive, path)]
}

func (m *MemRegistry) stamp() uint64 {
	return format.TimeToFiletime(m.Now())
}

func (k *memKey) sortedChildren() []string {
	names := make([]string, 0, len(k.children))
	for _, c := range k.children {
		names = append(names, c.name)
	}
	sort.Slice(names, func(i, j int) bool {
		return strings.ToLower(names[i]) < strings.ToLower(names[j])
	})
	return names
}

func segments(path string) []string {
	var out []string
	for _, seg := range strings.Split(path, `\`) {
		if seg != "" {
			out = append(out, seg)
		}
	}
	return out
}

func denyKey(hive types.Hive, path string) string {
	return hive.String() + `\` + strings.ToLower(strings.Join(segments(path), `\`))
}
