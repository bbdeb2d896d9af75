// Package surface implements the host-agnostic paint step of osstat.
//
// A State owns the single Snapshot for the lifetime of the process. Each
// call to Tick re-samples the host at most once per SampleInterval,
// classifies the RAM and CPU percentages into Low, Medium and High, and
// returns the Frame a host should draw. Hosts (the desktop window and the
// terminal UI) call Tick again no sooner than RepaintInterval later.
package surface
