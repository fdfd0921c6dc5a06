package bindkit

import (
	"reflect"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/goresolve/bindkit/internal/testtypes"
)

func Test_StandardParamName(t *testing.T) {
	tests := []struct {
		name string
		want string
	}{
		{name: "Logger", want: "logger"},
		{name: "CatsRepository", want: "cats_repository"},
		{name: "SQLCatsRepository", want: "sql_cats_repository"},
		{name: "HTTPServer", want: "http_server"},
		{name: "ICatsRepository", want: "icats_repository"},
		{name: "A", want: "a"},
		{name: "ServiceA", want: "service_a"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, standardParamName(tt.name))
		})
	}
}

func Test_CanonicalName(t *testing.T) {
	tests := []struct {
		name string
		t    reflect.Type
		want string
	}{
		{
			name: "nil type",
			t:    nil,
			want: "",
		},
		{
			name: "named struct",
			t:    reflect.TypeFor[testtypes.Cat](),
			want: "Cat",
		},
		{
			name: "pointer shares the element name",
			t:    testtypes.TypeCat,
			want: "Cat",
		},
		{
			name: "interface",
			t:    testtypes.TypeCatsRepository,
			want: "CatsRepository",
		},
		{
			name: "anonymous struct",
			t:    reflect.TypeFor[struct{ A int }](),
			want: "",
		},
		{
			name: "slice",
			t:    reflect.TypeFor[[]testtypes.Cat](),
			want: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, canonicalName(tt.t))
		})
	}
}

func Test_Key_String(t *testing.T) {
	assert.Equal(t, "*testtypes.Cat", TypeKey(testtypes.TypeCat).String())
	assert.Equal(t, `"cat"`, NameKey("cat").String())
}

func Test_Key_IsZero(t *testing.T) {
	assert.True(t, Key{}.IsZero())
	assert.False(t, TypeKey(testtypes.TypeCat).IsZero())
	assert.False(t, NameKey("cat").IsZero())
}
