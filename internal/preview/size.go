// Package preview opens a desktop window showing a rendered design.
package preview

// maxWindow bounds the longer side of the initial window.
const maxWindow = 900

// windowSize scales w x h down, keeping the aspect ratio, so neither side
// exceeds limit.
func windowSize(w, h, limit int) (int, int) {
	if w <= limit && h <= limit {
		return w, h
	}
	if w >= h {
		return limit, max(1, h*limit/w)
	}
	return max(1, w*limit/h), limit
}
