package field

// Hooks are optional callbacks fired synchronously from inside Tick, Reset and New. Nil fields
// are skipped. Callbacks must not call back into the engine.
type Hooks struct {
	// OnSpawn receives the catalog index of a piece that entered the field.
	OnSpawn func(shape int)
	// OnLock fires when the active piece is converted to settled cells.
	OnLock func()
	// OnRowsCleared fires after a lock that completed at least one row.
	OnRowsCleared func(rows int)
	// OnGameOver fires once, when a spawn collides with the stack.
	OnGameOver func()
}

func (e *Engine) notifySpawn(shape int) {
	for _, h := range e.hooks {
		if h.OnSpawn != nil {
			h.OnSpawn(shape)
		}
	}
}

func (e *Engine) notifyLock() {
	for _, h := range e.hooks {
		if h.OnLock != nil {
			h.OnLock()
		}
	}
}

func (e *Engine) notifyRowsCleared(rows int) {
	for _, h := range e.hooks {
		if h.OnRowsCleared != nil {
			h.OnRowsCleared(rows)
		}
	}
}

func (e *Engine) notifyGameOver() {
	for _, h := range e.hooks {
		if h.OnGameOver != nil {
			h.OnGameOver()
		}
	}
}
