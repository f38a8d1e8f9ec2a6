package kernel

// PanicInfo contains details about a recovered task panic.
type PanicInfo struct {
	TaskID TaskID
	Task   string
	Value  any
	Stack  []byte
}

// InPanicMode reports whether a task has panicked. Once set, the kernel
// stops running jobs and rejects spawns.
func (k *Kernel[M]) InPanicMode() bool {
	return k.panicked.Load()
}

// SetPanicHandler installs the handler invoked on the first task panic.
// It must not panic.
func (k *Kernel[M]) SetPanicHandler(fn func(PanicInfo)) {
	k.onPanic = fn
}

func (k *Kernel[M]) triggerPanic(info PanicInfo) {
	if !k.panicked.CompareAndSwap(false, true) {
		return
	}
	info.Stack = captureStack()
	if k.onPanic != nil {
		k.onPanic(info)
	}
}
