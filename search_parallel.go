//go:build !js

package overlap

// anyPoint runs the scanners' existential search. Native targets fan out
// across the worker pool; see search_sequential.go for the wasm form.
func anyPoint(w, h, skip int, pred func(x, y int) bool) bool {
	return anyPointPar(w, h, skip, pred)
}
