// Package watch re-validates datasets continuously: Watcher reacts to file
// changes (fsnotify, debounced), and Scheduler re-runs validation on a cron
// schedule. Both drive the same callback; the watch command wires them to
// the dataset validator and the metrics collector.
package watch
