package value

import "testing"

func TestParsePrecedence(t *testing.T) {
	tests := []struct {
		raw  string
		kind Kind
	}{
		{"true", KindBool},
		{"false", KindBool},
		{"null", KindNull},
		{"42", KindNumber},
		{"-3.5", KindNumber},
		{`{"a":1}`, KindJSON},
		{`[1,2]`, KindJSON},
		{`"quoted"`, KindJSON},
		{"hello", KindString},
		{"", KindString},
		{"{broken", KindString},
		{"truethy", KindString},
	}

	for _, tt := range tests {
		if got := Parse(tt.raw).Kind(); got != tt.kind {
			t.Errorf("Parse(%q).Kind() = %v, want %v", tt.raw, got, tt.kind)
		}
	}
}

func TestBoolAndNumberAccessors(t *testing.T) {
	if b, ok := Parse("true").Bool(); !ok || !b {
		t.Errorf("Parse(true).Bool() = %v, %v", b, ok)
	}
	if n, ok := Parse("42").Number(); !ok || n != 42 {
		t.Errorf("Parse(42).Number() = %v, %v", n, ok)
	}
	if _, ok := Parse("x").Number(); ok {
		t.Errorf("string value must not report as number")
	}
}

func TestJSONAccessor(t *testing.T) {
	v := Parse(`{"a":1}`)
	j, ok := v.JSON()
	if !ok {
		t.Fatalf("JSON() reported wrong kind")
	}
	m, ok := j.(map[string]any)
	if !ok || m["a"] != float64(1) {
		t.Errorf("decoded JSON wrong: %v", j)
	}
}

func TestInterface(t *testing.T) {
	if Parse("null").Interface() != nil {
		t.Errorf("null should map to nil")
	}
	if Parse("7").Interface() != float64(7) {
		t.Errorf("number should map to float64")
	}
	if Parse("plain").Interface() != "plain" {
		t.Errorf("fallback should keep the raw string")
	}
}

func TestFormatRoundTrip(t *testing.T) {
	tests := []struct {
		in   any
		want string
	}{
		{nil, "null"},
		{true, "true"},
		{false, "false"},
		{42, "42"},
		{3.5, "3.5"},
		{"text", "text"},
		{map[string]int{"a": 1}, `{"a":1}`},
	}
	for _, tt := range tests {
		if got := Format(tt.in); got != tt.want {
			t.Errorf("Format(%v) = %q, want %q", tt.in, got, tt.want)
		}
	}
}
