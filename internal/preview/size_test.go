package preview

import "testing"

func TestWindowSize(t *testing.T) {
	tests := []struct {
		w, h, limit int
		ww, wh      int
	}{
		{400, 300, 900, 400, 300},
		{1800, 1200, 900, 900, 600},
		{1200, 2400, 900, 450, 900},
		{5000, 1, 900, 900, 1},
	}
	for _, tt := range tests {
		ww, wh := windowSize(tt.w, tt.h, tt.limit)
		if ww != tt.ww || wh != tt.wh {
			t.Errorf("windowSize(%d, %d, %d) = %d, %d, want %d, %d", tt.w, tt.h, tt.limit, ww, wh, tt.ww, tt.wh)
		}
	}
}
