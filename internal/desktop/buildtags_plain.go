//go:build !dev && !production && !bindings

package desktop

const wailsTagged = false
