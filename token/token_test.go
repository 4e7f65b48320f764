package token

import "testing"

func TestClassify(t *testing.T) {
	tests := []struct {
		text string
		want Kind
	}{
		{"let", Keyword},
		{"if", Keyword},
		{"function", Keyword},
		{"true", Keyword},
		{"x", Identifier},
		{"_name", Identifier},
		{"foo42", Identifier},
		{"42", Number},
		{"3.14", Number},
		{"1e9", Number},
		{"+", Symbol},
		{"==", Symbol},
		{"42abc", Symbol},
		{"", Symbol},
	}

	for _, tt := range tests {
		t.Run(tt.text, func(t *testing.T) {
			kind, _ := Classify(tt.text)
			if kind != tt.want {
				t.Errorf("Classify(%q) = %v, want %v", tt.text, kind, tt.want)
			}
		})
	}
}

func TestClassifyNumberValue(t *testing.T) {
	kind, num := Classify("3.5")
	if kind != Number || num != 3.5 {
		t.Errorf("Classify(\"3.5\") = (%v, %v), want (Number, 3.5)", kind, num)
	}
}

func TestIsIdentifier(t *testing.T) {
	tests := []struct {
		text string
		want bool
	}{
		{"x", true},
		{"_x", true},
		{"x1", true},
		{"1x", false},
		{"", false},
		{"a-b", false},
		{"a b", false},
	}

	for _, tt := range tests {
		if got := IsIdentifier(tt.text); got != tt.want {
			t.Errorf("IsIdentifier(%q) = %v, want %v", tt.text, got, tt.want)
		}
	}
}

func TestMakeStripsQuotes(t *testing.T) {
	tok := Make(`"hello"`, 2, 5, "body")
	if tok.Kind != String || tok.Text != "hello" {
		t.Errorf("Make(quoted) = (%v, %q), want (String, \"hello\")", tok.Kind, tok.Text)
	}
	if tok.Line != 2 || tok.Col != 5 || tok.Mode != "body" {
		t.Errorf("Make position = %d:%d mode=%q, want 2:5 mode=\"body\"", tok.Line, tok.Col, tok.Mode)
	}
}

func TestMakeNumber(t *testing.T) {
	tok := Make("42", 1, 1, "")
	if tok.Kind != Number || tok.Num != 42 {
		t.Errorf("Make(\"42\") = (%v, %v), want (Number, 42)", tok.Kind, tok.Num)
	}
}

func TestKindString(t *testing.T) {
	if EOF.String() != "EOF" || Keyword.String() != "keyword" {
		t.Errorf("unexpected kind names: %q, %q", EOF.String(), Keyword.String())
	}
}
