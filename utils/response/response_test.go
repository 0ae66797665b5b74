package response

import "testing"

func TestCalculatePagination(t *testing.T) {
	cases := []struct {
		name      string
		page      int
		limit     int
		total     int64
		wantPage  int
		wantLimit int
		wantPages int
	}{
		{"exact division", 1, 10, 100, 1, 10, 10},
		{"partial last page", 2, 10, 95, 2, 10, 10},
		{"empty result", 1, 10, 0, 1, 10, 0},
		{"page below one is clamped", 0, 10, 50, 1, 10, 5},
		{"limit below one falls back to default", 1, 0, 50, 1, 10, 5},
		{"limit above max is capped", 1, 500, 250, 1, 100, 3},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := CalculatePagination(tc.page, tc.limit, tc.total)

			if got.CurrentPage != tc.wantPage {
				t.Errorf("CurrentPage = %d, want %d", got.CurrentPage, tc.wantPage)
			}
			if got.PerPage != tc.wantLimit {
				t.Errorf("PerPage = %d, want %d", got.PerPage, tc.wantLimit)
			}
			if got.Total != tc.total {
				t.Errorf("Total = %d, want %d", got.Total, tc.total)
			}
			if got.TotalPages != tc.wantPages {
				t.Errorf("TotalPages = %d, want %d", got.TotalPages, tc.wantPages)
			}
		})
	}
}
