package catalog

import (
	"strconv"
	"testing"
)

func makeProducts(n int) []Product {
	out := make([]Product, n)
	for i := range out {
		out[i] = Product{URL: "/p/" + strconv.Itoa(i), Name: "P" + strconv.Itoa(i), Price: float64(i)}
	}
	return out
}

func TestPaginateSlices(t *testing.T) {
	list := makeProducts(45)
	slice, total, page := Paginate(list, 20, 2)
	if total != 3 || page != 2 {
		t.Fatalf("total=%d page=%d", total, page)
	}
	if len(slice) != 20 || slice[0].URL != "/p/20" {
		t.Fatalf("wrong slice start: len=%d first=%s", len(slice), slice[0].URL)
	}

	slice, _, page = Paginate(list, 20, 3)
	if page != 3 || len(slice) != 5 {
		t.Fatalf("last page should clip: page=%d len=%d", page, len(slice))
	}
}

func TestPaginateClampsStalePages(t *testing.T) {
	list := makeProducts(45)
	for _, requested := range []int{-10, 0, 99, 1 << 30} {
		slice, total, page := Paginate(list, 20, requested)
		if page < 1 || page > total {
			t.Fatalf("requested %d clamped to %d outside [1,%d]", requested, page, total)
		}
		if len(slice) > 20 {
			t.Fatalf("slice longer than page size: %d", len(slice))
		}
	}

	_, total, page := Paginate(list, 20, 99)
	if total != 3 || page != 3 {
		t.Fatalf("goToPage(99) with 3 pages should land on 3, got %d/%d", page, total)
	}
}

func TestPaginateEmptyList(t *testing.T) {
	slice, total, page := Paginate(nil, 20, 5)
	if total != 0 {
		t.Fatalf("empty list must report 0 pages, got %d", total)
	}
	if page != 1 || len(slice) != 0 {
		t.Fatalf("empty list: page=%d len=%d", page, len(slice))
	}
}

func TestPaginateGuardsPageSize(t *testing.T) {
	slice, total, _ := Paginate(makeProducts(25), 0, 1)
	if total != 2 || len(slice) != DefaultPageSize {
		t.Fatalf("zero page size should fall back to default: total=%d len=%d", total, len(slice))
	}
}

func labels(cs []PageControl) []string {
	out := make([]string, len(cs))
	for i, c := range cs {
		out[i] = c.Label
	}
	return out
}

func TestControlsSinglePage(t *testing.T) {
	if got := Controls(1, 1); len(got) != 0 {
		t.Fatalf("one page needs no controls, got %v", labels(got))
	}
	if got := Controls(1, 0); len(got) != 0 {
		t.Fatalf("no pages needs no controls, got %v", labels(got))
	}
}

func TestControlsSmallRange(t *testing.T) {
	got := Controls(2, 3)
	want := []string{"prev", "1", "2", "3", "next"}
	if len(got) != len(want) {
		t.Fatalf("got %v want %v", labels(got), want)
	}
	for i, w := range want {
		if got[i].Label != w {
			t.Fatalf("control %d: got %v want %v", i, labels(got), want)
		}
	}
	if !got[2].Active {
		t.Fatal("current page must be marked active")
	}
}

func TestControlsWindowWithEllipses(t *testing.T) {
	got := Controls(10, 20)
	want := []string{"prev", "1", "…", "8", "9", "10", "11", "12", "…", "20", "next"}
	if len(got) != len(want) {
		t.Fatalf("got %v want %v", labels(got), want)
	}
	for i, w := range want {
		if got[i].Label != w {
			t.Fatalf("control %d: got %v want %v", i, labels(got), want)
		}
	}
}

func TestControlsEdges(t *testing.T) {
	got := Controls(1, 20)
	want := []string{"1", "2", "3", "4", "5", "…", "20", "next"}
	if len(got) != len(want) {
		t.Fatalf("first page: got %v want %v", labels(got), want)
	}
	for i, w := range want {
		if got[i].Label != w {
			t.Fatalf("first page control %d: got %v", i, labels(got))
		}
	}

	got = Controls(20, 20)
	want = []string{"prev", "1", "…", "16", "17", "18", "19", "20"}
	if len(got) != len(want) {
		t.Fatalf("last page: got %v want %v", labels(got), want)
	}
	for i, w := range want {
		if got[i].Label != w {
			t.Fatalf("last page control %d: got %v", i, labels(got))
		}
	}
}

func TestControlsDeterministic(t *testing.T) {
	a := Controls(7, 13)
	b := Controls(7, 13)
	if len(a) != len(b) {
		t.Fatal("controls not deterministic")
	}
	for i := range a {
		if a[i] != b[i] {
			t.Fatalf("controls differ at %d", i)
		}
	}
}
