package theme

import "strings"

const (
	// MountPath receives the page activation beacon sent by client pages.
	MountPath = "/_docsite/mount"
	// RenderHeader marks server-side render requests. A value of "server"
	// sets MountContext.SSR.
	RenderHeader = "X-Docsite-Render"
)

const mountBeaconScript = `<script>
document.addEventListener("DOMContentLoaded", function () {
  if (navigator.sendBeacon) {
    navigator.sendBeacon("` + MountPath + `?path=" + encodeURIComponent(location.pathname));
  }
});
</script>`

// HeadEnd renders the head tags of the site, followed by the mount beacon
// when enabled. Themes place the result in their head extension partial.
func HeadEnd(ctx ParamContext) string {
	var b strings.Builder
	for _, tag := range ctx.Site().Head {
		b.WriteString(tag.HTML())
		b.WriteString("\n")
	}
	if ctx.MountBeacon() {
		b.WriteString(mountBeaconScript)
		b.WriteString("\n")
	}
	return b.String()
}
