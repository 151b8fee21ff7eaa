//go:build js

package overlap

// anyPoint runs the scanners' existential search. Browsers get the
// sequential nested loop; the wasm runtime is single threaded.
func anyPoint(w, h, skip int, pred func(x, y int) bool) bool {
	return anyPointSeq(w, h, skip, pred)
}
