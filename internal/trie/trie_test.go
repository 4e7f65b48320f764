package trie

import "testing"

func TestInsertAndSearch(t *testing.T) {
	tr := New[int]()
	tr.Insert("let", 1)
	tr.Insert("letter", 2)
	tr.Insert("==", 3)

	tests := []struct {
		seq   string
		want  int
		found bool
	}{
		{"let", 1, true},
		{"letter", 2, true},
		{"==", 3, true},
		{"le", 0, false},
		{"lets", 0, false},
		{"", 0, false},
	}

	for _, tt := range tests {
		t.Run(tt.seq, func(t *testing.T) {
			got, ok := tr.Search(tt.seq)
			if ok != tt.found {
				t.Fatalf("Search(%q) found = %v, want %v", tt.seq, ok, tt.found)
			}
			if ok && got != tt.want {
				t.Errorf("Search(%q) = %d, want %d", tt.seq, got, tt.want)
			}
		})
	}
}

func TestInsertOverwrites(t *testing.T) {
	tr := New[string]()
	tr.Insert("if", "first")
	tr.Insert("if", "second")

	got, ok := tr.Search("if")
	if !ok || got != "second" {
		t.Errorf("Search(\"if\") = %q, %v; want \"second\", true", got, ok)
	}
	if tr.Len() != 1 {
		t.Errorf("Len() = %d after duplicate insert, want 1", tr.Len())
	}
}

func TestLongestMatchPrefersLonger(t *testing.T) {
	tr := New[string]()
	tr.Insert("=", "assign")
	tr.Insert("==", "equals")
	tr.Insert("in", "in")
	tr.Insert("int", "int")

	tests := []struct {
		text    string
		offset  int
		wantLen int
		wantVal string
		found   bool
	}{
		{"== 1", 0, 2, "equals", true},
		{"= 1", 0, 1, "assign", true},
		{"int x", 0, 3, "int", true},
		{"in x", 0, 2, "in", true},
		{"x == y", 2, 2, "equals", true},
		{"abc", 0, 0, "", false},
		{"", 0, 0, "", false},
	}

	for _, tt := range tests {
		t.Run(tt.text, func(t *testing.T) {
			n, val, ok := tr.LongestMatch(tt.text, tt.offset)
			if ok != tt.found {
				t.Fatalf("LongestMatch(%q, %d) found = %v, want %v", tt.text, tt.offset, ok, tt.found)
			}
			if !ok {
				return
			}
			if n != tt.wantLen || val != tt.wantVal {
				t.Errorf("LongestMatch(%q, %d) = (%d, %q), want (%d, %q)",
					tt.text, tt.offset, n, val, tt.wantLen, tt.wantVal)
			}
		})
	}
}

// A strict prefix only wins when the longer sequence is not fully
// present in the text.
func TestLongestMatchPrefixProperty(t *testing.T) {
	tr := New[string]()
	tr.Insert("for", "short")
	tr.Insert("foreach", "long")

	if n, val, ok := tr.LongestMatch("foreach x", 0); !ok || n != 7 || val != "long" {
		t.Errorf("full text: got (%d, %q, %v), want (7, \"long\", true)", n, val, ok)
	}
	if n, val, ok := tr.LongestMatch("fore x", 0); !ok || n != 3 || val != "short" {
		t.Errorf("partial text: got (%d, %q, %v), want (3, \"short\", true)", n, val, ok)
	}
}

func TestLongestMatchNoChildAtStart(t *testing.T) {
	tr := New[int]()
	tr.Insert("while", 1)

	if _, _, ok := tr.LongestMatch("xwhile", 0); ok {
		t.Error("expected no match when the starting character has no child")
	}
	if _, _, ok := tr.LongestMatch("xwhile", 1); !ok {
		t.Error("expected match at offset 1")
	}
}
