// util/cache_key.go
package util

import (
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"math"
	"reflect"
	"sort"
	"strconv"
	"strings"
	"unicode/utf16"
)

// Cache namespaces. Each one owns a version counter; bumping it orphans every
// entry stored under the previous version.
const (
	NSPostsList      = "posts_list"
	NSPostDetail     = "post_detail"
	NSSearch         = "search"
	NSDashboardStats = "dashboard_stats"
	NSDashboardPosts = "dashboard_posts"
	NSCategories     = "categories"
	NSTags           = "tags"
	NSComments       = "comments"
)

// AllParams is the hash used when a read takes no parameters.
const AllParams = "all"

func VersionKey(namespace string) string {
	return "cache_version:" + namespace
}

func BuildKey(namespace string, version int64, params map[string]any) string {
	return fmt.Sprintf("cache:%s:v%d:%s", namespace, version, ComputeParameterHash(params))
}

// ComputeParameterHash derives a stable 16 hex character digest from a
// parameter set. Values are stringified, keys sorted and the result encoded
// as `{"k": "v", ...}` with ASCII-only escapes before hashing, so the same
// logical parameters always map to the same key regardless of map order.
func ComputeParameterHash(params map[string]any) string {
	if len(params) == 0 {
		return AllParams
	}
	keys := make([]string, 0, len(params))
	for k := range params {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	var b strings.Builder
	b.WriteByte('{')
	for i, k := range keys {
		if i > 0 {
			b.WriteString(", ")
		}
		writeASCIIString(&b, k)
		b.WriteString(": ")
		writeASCIIString(&b, paramString(params[k]))
	}
	b.WriteByte('}')

	sum := sha256.Sum256([]byte(b.String()))
	return hex.EncodeToString(sum[:])[:16]
}

func paramString(v any) string {
	switch t := v.(type) {
	case nil:
		return "None"
	case string:
		return t
	case bool:
		if t {
			return "True"
		}
		return "False"
	case float32:
		return floatString(float64(t), 32)
	case float64:
		return floatString(t, 64)
	case fmt.Stringer:
		return t.String()
	}
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return strconv.FormatInt(rv.Int(), 10)
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		return strconv.FormatUint(rv.Uint(), 10)
	case reflect.Pointer:
		if rv.IsNil() {
			return "None"
		}
		return paramString(rv.Elem().Interface())
	}
	return fmt.Sprint(v)
}

// floatString renders the shortest round-tripping form, switching to
// exponent notation below 1e-4 and from 1e16 up.
func floatString(f float64, bits int) string {
	switch {
	case math.IsNaN(f):
		return "nan"
	case math.IsInf(f, 1):
		return "inf"
	case math.IsInf(f, -1):
		return "-inf"
	}
	if f == 0 {
		if math.Signbit(f) {
			return "-0.0"
		}
		return "0.0"
	}
	e := strconv.FormatFloat(f, 'e', -1, bits)
	exp, _ := strconv.Atoi(e[strings.IndexByte(e, 'e')+1:])
	if exp < -4 || exp >= 16 {
		return e
	}
	s := strconv.FormatFloat(f, 'f', -1, bits)
	if !strings.ContainsRune(s, '.') {
		s += ".0"
	}
	return s
}

const hexDigits = "0123456789abcdef"

func writeASCIIString(b *strings.Builder, s string) {
	b.WriteByte('"')
	for _, r := range s {
		switch r {
		case '"':
			b.WriteString(`\"`)
		case '\\':
			b.WriteString(`\\`)
		case '\n':
			b.WriteString(`\n`)
		case '\r':
			b.WriteString(`\r`)
		case '\t':
			b.WriteString(`\t`)
		case '\b':
			b.WriteString(`\b`)
		case '\f':
			b.WriteString(`\f`)
		default:
			switch {
			case r < 0x20 || (r > 0x7e && r <= 0xffff):
				writeUnicodeEscape(b, r)
			case r > 0xffff:
				hi, lo := utf16.EncodeRune(r)
				writeUnicodeEscape(b, hi)
				writeUnicodeEscape(b, lo)
			default:
				b.WriteRune(r)
			}
		}
	}
	b.WriteByte('"')
}

func writeUnicodeEscape(b *strings.Builder, r rune) {
	b.WriteString(`\u`)
	b.WriteByte(hexDigits[(r>>12)&0xf])
	b.WriteByte(hexDigits[(r>>8)&0xf])
	b.WriteByte(hexDigits[(r>>4)&0xf])
	b.WriteByte(hexDigits[r&0xf])
}
