package block

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestBlock_Level(t *testing.T) {
	t.Parallel()

	tests := []struct {
		block Block
		want  int
	}{
		{Block{Heading, "# One"}, 1},
		{Block{Heading, "### Three"}, 3},
		{Block{Heading, "###### Six"}, 6},
		{Block{Paragraph, "# not a heading"}, 0},
	}

	for _, tt := range tests {
		if got := tt.block.Level(); got != tt.want {
			t.Errorf("%v.Level() = %d, want %d", tt.block, got, tt.want)
		}
	}
}

func TestBlock_Text(t *testing.T) {
	t.Parallel()

	if got := (Block{Heading, "##   Spaced out"}).Text(); got != "Spaced out" {
		t.Errorf("Text() = %q, want %q", got, "Spaced out")
	}
	if got := (Block{Paragraph, "plain"}).Text(); got != "plain" {
		t.Errorf("Text() = %q, want %q", got, "plain")
	}
}

func TestBlock_CodeParts(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		content  string
		wantLang string
		wantCode string
	}{
		{"with language", "python\ndef f():\n    pass", "python", "def f():\n    pass"},
		{"without language", "\ncode", "", "code"},
		{"language only", "go", "go", ""},
		{"padded language", " go \nx", "go", "x"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			b := Block{Code, tt.content}
			if got := b.Language(); got != tt.wantLang {
				t.Errorf("Language() = %q, want %q", got, tt.wantLang)
			}
			if got := b.Code(); got != tt.wantCode {
				t.Errorf("Code() = %q, want %q", got, tt.wantCode)
			}
		})
	}
}

func TestBlock_Items(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		block Block
		want  []string
	}{
		{
			name:  "flat unordered",
			block: Block{UnorderedList, "- This\n* is\n unordered 3"},
			want:  []string{"This", "is\nunordered 3"},
		},
		{
			name:  "nested unordered",
			block: Block{UnorderedList, "* item\n* another\n  * sub\n  * sub2\n* item3"},
			want:  []string{"item", "another\n* sub\n* sub2", "item3"},
		},
		{
			name:  "ordered keeps going across numbers",
			block: Block{OrderedList, "42. This\n12. is\n ordered 3"},
			want:  []string{"This", "is\nordered 3"},
		},
		{
			name:  "nested ordered",
			block: Block{OrderedList, "1. item\n2. another\n  1. sub\n  2. sub2\n3. last"},
			want:  []string{"item", "another\n1. sub\n2. sub2", "last"},
		},
		{
			name:  "indented list",
			block: Block{UnorderedList, "  - a\n  - b\n    - c"},
			want:  []string{"a", "b\n- c"},
		},
		{
			name:  "quote inside item",
			block: Block{UnorderedList, "- a\n  > q"},
			want:  []string{"a\n> q"},
		},
		{
			name:  "not a list",
			block: Block{Paragraph, "- a"},
			want:  nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			if diff := cmp.Diff(tt.want, tt.block.Items()); diff != "" {
				t.Errorf("Items() mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestType(t *testing.T) {
	t.Parallel()

	for _, typ := range []Type{Document, Quote, UnorderedList, OrderedList} {
		if !typ.IsContainer() {
			t.Errorf("%v.IsContainer() = false, want true", typ)
		}
	}
	for _, typ := range []Type{Paragraph, Heading, Code} {
		if typ.IsContainer() {
			t.Errorf("%v.IsContainer() = true, want false", typ)
		}
	}
	if got := Type(99).String(); got != "Type(99)" {
		t.Errorf("Type(99).String() = %q", got)
	}
}
