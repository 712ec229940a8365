// Package hugo turns the site configuration into a Hugo site: hugo.yaml,
// the sidebar data file, theme layout overrides and i18n strings. It can
// also run the hugo binary to render the result.
package hugo
