package locfmt

// FormatHookContext describes one formatting call as it flows through the
// hook chain.
type FormatHookContext struct {
	Op     string
	Locale string
	Value  any
	Result string
	Err    error
}

// FormatHook observes formatting calls. Before runs ahead of the backend,
// After runs once the result or error is known.
type FormatHook interface {
	Before(ctx FormatHookContext)
	After(ctx FormatHookContext)
}

// FormatHookFuncs adapts plain functions to the FormatHook interface. Nil
// fields are skipped.
type FormatHookFuncs struct {
	BeforeFunc func(ctx FormatHookContext)
	AfterFunc  func(ctx FormatHookContext)
}

func (h FormatHookFuncs) Before(ctx FormatHookContext) {
	if h.BeforeFunc != nil {
		h.BeforeFunc(ctx)
	}
}

func (h FormatHookFuncs) After(ctx FormatHookContext) {
	if h.AfterFunc != nil {
		h.AfterFunc(ctx)
	}
}
