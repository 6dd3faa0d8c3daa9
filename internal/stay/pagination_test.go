package stay

import "testing"

func TestPaginate(t *testing.T) {
	items := make([]int, 0, 45)
	for i := 0; i < 45; i++ {
		items = append(items, i)
	}

	cases := []struct {
		name      string
		page      int
		pageSize  int
		wantLen   int
		wantFirst int
		hasNext   bool
		hasPrev   bool
	}{
		{"first page", 1, 20, 20, 0, true, false},
		{"middle page", 2, 20, 20, 20, true, true},
		{"last partial page", 3, 20, 5, 40, false, true},
		{"past the end", 4, 20, 0, 0, false, true},
		{"defaults on zero values", 0, 0, 20, 0, true, false},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			p := Paginate(items, tc.page, tc.pageSize)
			if len(p.Items) != tc.wantLen {
				t.Fatalf("expected %d items, got %d", tc.wantLen, len(p.Items))
			}
			if tc.wantLen > 0 && p.Items[0] != tc.wantFirst {
				t.Fatalf("expected first item %d, got %d", tc.wantFirst, p.Items[0])
			}
			if p.HasNext != tc.hasNext || p.HasPrev != tc.hasPrev {
				t.Fatalf("pagination flags: next=%v prev=%v", p.HasNext, p.HasPrev)
			}
			if p.Total != 45 {
				t.Fatalf("expected total 45, got %d", p.Total)
			}
		})
	}
}
