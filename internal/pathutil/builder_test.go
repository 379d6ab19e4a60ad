package pathutil

import "testing"

func TestPathBuilder_Render(t *testing.T) {
	p := &PathBuilder{}
	p.PushField("paths")
	p.PushKey("/pets")
	p.PushField("parameters")
	p.PushIndex(0)

	got := p.String()
	want := ".paths['/pets'].parameters[0]"
	if got != want {
		t.Errorf("String() = %q, want %q", got, want)
	}
	if p.Len() != 4 {
		t.Errorf("Len() = %d, want 4", p.Len())
	}
}

func TestPathBuilder_PushPop(t *testing.T) {
	p := &PathBuilder{}
	p.PushField("a")
	p.PushField("b")
	p.Pop()
	p.PushKey("c")

	got := p.String()
	want := ".a['c']"
	if got != want {
		t.Errorf("String() = %q, want %q", got, want)
	}
}

func TestPathBuilder_Empty(t *testing.T) {
	p := &PathBuilder{}
	p.Pop() // Should not panic
	if got := p.String(); got != "" {
		t.Errorf("String() on empty = %q, want empty", got)
	}
}

func TestPool_Reset(t *testing.T) {
	p := Get()
	p.PushField("servers")
	Put(p)

	q := Get()
	defer Put(q)
	if got := q.String(); got != "" {
		t.Errorf("pooled builder not reset: %q", got)
	}
}

func TestKeySegment(t *testing.T) {
	tests := map[string]string{
		"/pets": "['/pets']",
		"it's":  `['it\'s']`,
		`a\b`:   `['a\\b']`,
	}
	for key, want := range tests {
		if got := KeySegment(key); got != want {
			t.Errorf("KeySegment(%q) = %q, want %q", key, got, want)
		}
	}
}
