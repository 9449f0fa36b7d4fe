// Package complete provides editor.Completer implementations: a fixed word
// list, filesystem paths, a chain of both, and a TTL cache in front of any of
// them.
package complete
