package walker

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPath_String(t *testing.T) {
	tests := []struct {
		name string
		path Path
		want string
	}{
		{name: "root", path: nil, want: ""},
		{name: "field", path: Path{Field("paths")}, want: ".paths"},
		{name: "key", path: Path{Field("paths"), Key("/pets")}, want: ".paths['/pets']"},
		{name: "quoted key", path: Path{Field("tags"), Key(`it's`)}, want: `.tags['it\'s']`},
		{name: "backslash key", path: Path{Key(`a\b`)}, want: `['a\\b']`},
		{name: "index", path: Path{Field("servers"), Index(1), Field("url")}, want: ".servers[1].url"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.path.String())
		})
	}
}

func TestPath_Strings(t *testing.T) {
	p := Path{Field("servers"), Index(0), Key("x")}
	assert.Equal(t, []string{"servers", "0", "x"}, p.Strings())
}

func TestPath_AppendDoesNotAlias(t *testing.T) {
	base := make(Path, 1, 8)
	base[0] = Field("a")

	left := base.Append(Field("b"))
	right := base.Append(Field("c"))

	assert.Equal(t, ".a.b", left.String())
	assert.Equal(t, ".a.c", right.String())
	assert.True(t, left[:1].Equal(base))
	assert.False(t, left.Equal(right))
}

func TestSegment_StringEscapesKey(t *testing.T) {
	assert.Equal(t, `['it\'s']`, Key("it's").String())
	assert.Equal(t, ".name", Field("name").String())
	assert.Equal(t, "[3]", Index(3).String())
}
