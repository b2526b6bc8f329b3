package helpers

import (
	"fmt"
	"reflect"
	"sort"
	"testing"
)

func TestSumDigits(t *testing.T) {
	cases := []struct {
		in   string
		want int
	}{
		{"123", 6},
		{"550", 0},
		{"999", 7},
		{"000", 0},
		{"128", 1},
		{"7", 7},
		{"", 0},
		{"12a3", 6},
		{"***", 0},
	}
	for _, tc := range cases {
		if got := SumDigits(tc.in); got != tc.want {
			t.Errorf("SumDigits(%q) = %d, want %d", tc.in, got, tc.want)
		}
	}
}

func TestReverse(t *testing.T) {
	cases := []struct{ in, want string }{
		{"055", "550"},
		{"123", "321"},
		{"5", "5"},
		{"", ""},
	}
	for _, tc := range cases {
		if got := Reverse(tc.in); got != tc.want {
			t.Errorf("Reverse(%q) = %q, want %q", tc.in, got, tc.want)
		}
	}
}

// Every two-digit combination must live in exactly one family: one of the
// ten jodi groups, the half bracket or the full bracket.
func TestFamilyPartition(t *testing.T) {
	seen := make(map[string]string)

	for key, members := range jodiFamilies {
		if len(members) != 8 {
			t.Errorf("family %s has %d members, want 8", key, len(members))
		}
		for _, m := range members {
			if prev, dup := seen[m]; dup {
				t.Errorf("%s appears in both %s and %s", m, prev, key)
			}
			seen[m] = key
		}
	}
	for key, members := range redFamilies {
		if len(members) != 10 {
			t.Errorf("bracket %s has %d members, want 10", key, len(members))
		}
		for _, m := range members {
			if prev, dup := seen[m]; dup {
				t.Errorf("%s appears in both %s and %s", m, prev, key)
			}
			seen[m] = key
		}
	}

	if len(seen) != 100 {
		t.Fatalf("families cover %d combinations, want 100", len(seen))
	}
	for i := 0; i < 100; i++ {
		jodi := fmt.Sprintf("%02d", i)
		if _, ok := seen[jodi]; !ok {
			t.Errorf("%s belongs to no family", jodi)
		}
	}
}

func TestFindFamily(t *testing.T) {
	got := FindFamily("17")
	want := []string{"12", "17", "21", "26", "62", "67", "71", "76"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("FindFamily(17) = %v, want %v", got, want)
	}

	// Bracket members are not grouping-family members.
	if got := FindFamily("05"); got != nil {
		t.Errorf("FindFamily(05) = %v, want nil", got)
	}
	if got := FindFamily("55"); got != nil {
		t.Errorf("FindFamily(55) = %v, want nil", got)
	}
}

func TestFindRedFamily(t *testing.T) {
	full := FindRedFamily("Full Bracket")
	if !Contains(full, "55") || Contains(full, "05") {
		t.Errorf("full bracket wrong: %v", full)
	}

	for _, answer := range []string{"Half Bracket", "half", "anything"} {
		half := FindRedFamily(answer)
		if !Contains(half, "05") || Contains(half, "55") {
			t.Errorf("FindRedFamily(%q) = %v, want half bracket", answer, half)
		}
	}
}

func TestParseSangam(t *testing.T) {
	cases := []struct {
		in   string
		want map[string]string
	}{
		{"Pana: 123, Ank: 4", map[string]string{"Pana": "123", "Ank": "4"}},
		{"Open: 123, Close: 456", map[string]string{"Open": "123", "Close": "456"}},
		{"Ank:7,Pana:890", map[string]string{"Ank": "7", "Pana": "890"}},
		{"no separator here", map[string]string{}},
		{"", map[string]string{}},
		{"Pana: , Ank: 4", map[string]string{"Ank": "4"}},
	}
	for _, tc := range cases {
		if got := ParseSangam(tc.in); !reflect.DeepEqual(got, tc.want) {
			t.Errorf("ParseSangam(%q) = %v, want %v", tc.in, got, tc.want)
		}
	}
}

func TestChunk(t *testing.T) {
	cases := []struct {
		name  string
		items []int
		size  int
		want  [][]int
	}{
		{"even split", []int{1, 2, 3, 4}, 2, [][]int{{1, 2}, {3, 4}}},
		{"remainder", []int{1, 2, 3, 4, 5}, 2, [][]int{{1, 2}, {3, 4}, {5}}},
		{"oversized chunk", []int{1, 2}, 10, [][]int{{1, 2}}},
		{"empty", nil, 3, nil},
		{"zero size", []int{1}, 0, nil},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := Chunk(tc.items, tc.size); !reflect.DeepEqual(got, tc.want) {
				t.Errorf("Chunk(%v, %d) = %v, want %v", tc.items, tc.size, got, tc.want)
			}
		})
	}
}

func TestChunkCoversAll(t *testing.T) {
	items := make([]string, 73)
	for i := range items {
		items[i] = fmt.Sprintf("uid-%03d", i)
	}
	var flat []string
	for _, chunk := range Chunk(items, 30) {
		if len(chunk) > 30 {
			t.Fatalf("chunk size %d exceeds 30", len(chunk))
		}
		flat = append(flat, chunk...)
	}
	sort.Strings(flat)
	sort.Strings(items)
	if !reflect.DeepEqual(flat, items) {
		t.Error("chunking lost or duplicated items")
	}
}
