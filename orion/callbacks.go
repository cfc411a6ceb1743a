package orion

// Callbacks are invoked synchronously on the render thread. Opened is
// called exactly once before any Loop, Loop once per presented frame
// and Closed exactly once after the last Loop.
type Callbacks interface {
	Opened()
	Loop()
	Closed()
}

// Funcs implements Callbacks using plain functions. Nil functions are skipped.
type Funcs struct {
	OnOpened func()
	OnLoop   func()
	OnClosed func()
}

func (f Funcs) Opened() {
	if f.OnOpened != nil {
		f.OnOpened()
	}
}

func (f Funcs) Loop() {
	if f.OnLoop != nil {
		f.OnLoop()
	}
}

func (f Funcs) Closed() {
	if f.OnClosed != nil {
		f.OnClosed()
	}
}
