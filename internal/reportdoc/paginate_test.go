package reportdoc

import (
	"fmt"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPaginate_PageCountAndConcatenation(t *testing.T) {
	for _, tc := range []struct {
		n, per, pages int
	}{
		{0, 20, 1},
		{1, 20, 1},
		{20, 20, 1},
		{21, 20, 2},
		{44, 22, 2},
		{45, 22, 3},
	} {
		t.Run(fmt.Sprintf("%d_por_%d", tc.n, tc.per), func(t *testing.T) {
			items := make([]int, tc.n)
			for i := range items {
				items[i] = i
			}

			pages := Paginate(items, tc.per)
			require.Len(t, pages, tc.pages)

			joined := []int{}
			for _, p := range pages {
				assert.LessOrEqual(t, len(p), tc.per)
				joined = append(joined, p...)
			}
			if diff := cmp.Diff(items, joined); diff != "" {
				t.Fatalf("concatenation differs (-want +got):\n%s", diff)
			}
		})
	}
}

func TestPaginate_EmptyInputIsOneEmptyPage(t *testing.T) {
	pages := Paginate([]string(nil), FamilyItemsPerPage)
	require.Len(t, pages, 1)
	assert.Empty(t, pages[0])
}

func TestPaginate_PagesDoNotAlias(t *testing.T) {
	items := []int{1, 2, 3, 4}
	pages := Paginate(items, 2)
	_ = append(pages[0], 99)
	assert.Equal(t, 3, items[2])
}

func TestFlatten_EmptyBlockHasOneMarker(t *testing.T) {
	items := Flatten([]Block{
		{Title: "Holstein", Rows: [][]string{{"A1"}, {"A2"}}},
		{Title: "Jersey"},
	})

	kinds := make([]ItemKind, 0, len(items))
	for _, it := range items {
		kinds = append(kinds, it.Kind)
	}
	want := []ItemKind{KindHeader, KindRow, KindRow, KindHeader, KindEmpty}
	if diff := cmp.Diff(want, kinds); diff != "" {
		t.Fatalf("kinds (-want +got):\n%s", diff)
	}
	assert.Equal(t, 1, items[4].Block)
}

func TestNeedsColumnHeader(t *testing.T) {
	page := []Item{
		{Kind: KindRow},
		{Kind: KindRow},
		{Kind: KindHeader},
		{Kind: KindRow},
		{Kind: KindHeader},
		{Kind: KindEmpty},
	}

	got := make([]bool, len(page))
	for i := range page {
		got[i] = NeedsColumnHeader(page, i)
	}
	assert.Equal(t, []bool{true, false, false, true, false, false}, got)
	assert.False(t, NeedsColumnHeader(page, 10))
}
