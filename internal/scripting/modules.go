package scripting

import (
	lua "github.com/yuin/gopher-lua"
	"go.uber.org/zap"
)

// RegisterModules registers the engine.* Lua tables into L. Log lines written
// from Lua carry the script name.
//
// Precondition: L must be from NewSandboxedState; logger must be non-nil.
// Postcondition: engine global is defined in L.
func RegisterModules(L *lua.LState, script string, logger *zap.Logger) {
	engine := L.NewTable()
	L.SetField(engine, "log", newLogModule(L, logger.With(zap.String("script", script))))
	L.SetGlobal("engine", engine)
}

func newLogModule(L *lua.LState, logger *zap.Logger) *lua.LTable {
	mod := L.NewTable()
	levels := map[string]func(string, ...zap.Field){
		"debug": logger.Debug,
		"info":  logger.Info,
		"warn":  logger.Warn,
		"error": logger.Error,
	}
	for name, write := range levels {
		L.SetField(mod, name, L.NewFunction(func(L *lua.LState) int {
			write(L.CheckString(1), zap.String("source", "lua"))
			return 0
		}))
	}
	return mod
}
