package theme

// analyticsTheme forwards every hook to the embedded base theme and adds a
// page-view registration on client-side page activation.
type analyticsTheme struct {
	Theme
	inject func()
}

// WithAnalytics extends base so that every client page activation calls
// inject once. Server-side renders never call it. inject is fire and forget:
// nothing it does is observed here.
func WithAnalytics(base Theme, inject func()) Theme {
	if base == nil {
		base = NullTheme{}
	}
	return analyticsTheme{Theme: base, inject: inject}
}

func (t analyticsTheme) OnPageMount(mc MountContext) {
	t.Theme.OnPageMount(mc)
	if mc.SSR || t.inject == nil {
		return
	}
	t.inject()
}
