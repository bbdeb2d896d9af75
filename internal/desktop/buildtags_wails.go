//go:build dev || production || bindings

package desktop

// wailsTagged reports whether the binary carries the build tags the wails
// runtime needs to open a window.
const wailsTagged = true
