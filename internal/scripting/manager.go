package scripting

import (
	"bufio"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	lua "github.com/yuin/gopher-lua"
	"github.com/yuin/gopher-lua/parse"
	"go.uber.org/zap"

	"github.com/cory-johannsen/armory/internal/game/inventory"
)

// Manager builds weapon behaviors from Lua scripts under a single directory.
// Each script is compiled once; every weapon instance gets its own VM.
//
// Manager is safe for concurrent use.
type Manager struct {
	scriptDir string
	instLimit int
	logger    *zap.Logger

	mu        sync.Mutex
	protos    map[string]*lua.FunctionProto
	behaviors []*Behavior
	closed    bool
}

// NewManager creates a Manager rooted at scriptDir.
//
// Precondition: logger must be non-nil; instLimit >= 0, 0 uses DefaultInstructionLimit.
// Postcondition: Returns a non-nil Manager with an empty compile cache.
func NewManager(scriptDir string, instLimit int, logger *zap.Logger) *Manager {
	if logger == nil {
		panic("scripting: NewManager: logger must not be nil")
	}
	return &Manager{
		scriptDir: scriptDir,
		instLimit: instLimit,
		logger:    logger,
		protos:    make(map[string]*lua.FunctionProto),
	}
}

// BehaviorFor implements inventory.BehaviorSource. Weapon types without a
// script get inventory.BaseBehavior.
//
// Precondition: cfg must be non-nil.
// Postcondition: returns an error when the script cannot be resolved,
// compiled or executed, or when the Manager is closed.
func (m *Manager) BehaviorFor(cfg *inventory.WeaponConfig) (inventory.Behavior, error) {
	if cfg.Script == "" {
		return inventory.BaseBehavior{}, nil
	}
	proto, err := m.compile(cfg.Script)
	if err != nil {
		return nil, err
	}

	L := NewSandboxedState()
	RegisterModules(L, cfg.Script, m.logger)
	err = RunLimited(L, m.instLimit, func() error {
		L.Push(L.NewFunctionFromProto(proto))
		return L.PCall(0, lua.MultRet, nil)
	})
	if err != nil {
		L.Close()
		return nil, fmt.Errorf("scripting: running %q for %q: %w", cfg.Script, cfg.ID, err)
	}

	b := &Behavior{L: L, script: cfg.Script, instLimit: m.instLimit, logger: m.logger}
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.closed {
		b.Close()
		return nil, fmt.Errorf("scripting: BehaviorFor %q: manager closed", cfg.ID)
	}
	m.behaviors = append(m.behaviors, b)
	m.logger.Debug("weapon script loaded",
		zap.String("weapon", cfg.ID),
		zap.String("script", cfg.Script),
	)
	return b, nil
}

// compile returns the cached bytecode for name, compiling it on first use.
// name must be a local path inside the script directory.
func (m *Manager) compile(name string) (*lua.FunctionProto, error) {
	if !filepath.IsLocal(name) {
		return nil, fmt.Errorf("scripting: script %q escapes script dir", name)
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	if proto, ok := m.protos[name]; ok {
		return proto, nil
	}

	path := filepath.Join(m.scriptDir, name)
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("scripting: opening %q: %w", path, err)
	}
	defer f.Close()

	chunk, err := parse.Parse(bufio.NewReader(f), name)
	if err != nil {
		return nil, fmt.Errorf("scripting: parsing %q: %w", path, err)
	}
	proto, err := lua.Compile(chunk, name)
	if err != nil {
		return nil, fmt.Errorf("scripting: compiling %q: %w", path, err)
	}
	m.protos[name] = proto
	return proto, nil
}

// Close releases every VM created by BehaviorFor. Later BehaviorFor calls fail.
func (m *Manager) Close() {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, b := range m.behaviors {
		b.Close()
	}
	m.behaviors = nil
	m.closed = true
}
