package util

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

type slug string

func (s slug) String() string { return "slug:" + string(s) }

func TestComputeParameterHashKnownVectors(t *testing.T) {
	cases := []struct {
		name   string
		params map[string]any
		want   string
	}{
		{"paging", map[string]any{"skip": 0, "limit": 10}, "e52cab7b2844dcdb"},
		{"listing filter", map[string]any{
			"skip": 0, "limit": 10, "status": nil, "category": "news", "tag": "", "search": "",
		}, "7fdb72ed2b6cbbdc"},
		{"escaping and numbers", map[string]any{
			"q":     "café <b>&\"\\\n",
			"flag":  true,
			"ratio": 2.0,
			"small": 0.1,
			"big":   1e16,
			"mil":   1000000.0,
		}, "0431424374f98a92"},
		{"astral", map[string]any{"emoji": "😀"}, "77b7a88f85b18c90"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, ComputeParameterHash(tc.params))
		})
	}
}

func TestComputeParameterHashEmpty(t *testing.T) {
	assert.Equal(t, AllParams, ComputeParameterHash(nil))
	assert.Equal(t, AllParams, ComputeParameterHash(map[string]any{}))
}

func TestComputeParameterHashStringifiesValues(t *testing.T) {
	// int 10 and "10" stringify identically
	assert.Equal(t,
		ComputeParameterHash(map[string]any{"limit": 10}),
		ComputeParameterHash(map[string]any{"limit": "10"}))
	assert.Equal(t,
		ComputeParameterHash(map[string]any{"s": slug("x")}),
		ComputeParameterHash(map[string]any{"s": "slug:x"}))
	assert.NotEqual(t,
		ComputeParameterHash(map[string]any{"limit": 10}),
		ComputeParameterHash(map[string]any{"limit": 11}))
}

func TestComputeParameterHashIsDeterministic(t *testing.T) {
	params := map[string]any{"a": 1, "b": "two", "c": false, "d": 3.5, "e": nil}
	first := ComputeParameterHash(params)
	for i := 0; i < 50; i++ {
		assert.Equal(t, first, ComputeParameterHash(params))
	}
	assert.Len(t, first, 16)
}

func TestParamString(t *testing.T) {
	var nilPtr *int
	n := 7
	assert.Equal(t, "None", paramString(nilPtr))
	assert.Equal(t, "7", paramString(&n))
	assert.Equal(t, "False", paramString(false))
	assert.Equal(t, "1e-05", paramString(1e-5))
	assert.Equal(t, "0.0001", paramString(1e-4))
	assert.Equal(t, "-3.0", paramString(-3.0))
	assert.Equal(t, "18446744073709551615", paramString(uint64(18446744073709551615)))
}

func TestBuildKey(t *testing.T) {
	assert.Equal(t, "cache:posts_list:v3:all", BuildKey(NSPostsList, 3, nil))
	assert.Equal(t, "cache:posts_list:v0:e52cab7b2844dcdb",
		BuildKey(NSPostsList, 0, map[string]any{"skip": 0, "limit": 10}))
	assert.Equal(t, "cache_version:tags", VersionKey(NSTags))
}
