package encode

import (
	"encoding/json"
	"testing"
)

func TestParseContentPreservesKeyOrder(t *testing.T) {
	v, err := ParseContent(`{"zebra": 1, "apple": 2, "mango": 3}`)
	if err != nil {
		t.Fatalf("ParseContent failed: %v", err)
	}

	obj, ok := v.(Object)
	if !ok {
		t.Fatalf("Expected Object, got %T", v)
	}
	want := []string{"zebra", "apple", "mango"}
	if len(obj) != len(want) {
		t.Fatalf("Expected %d fields, got %d", len(want), len(obj))
	}
	for i, f := range obj {
		if f.Key != want[i] {
			t.Errorf("Field %d key = %q, expected %q", i, f.Key, want[i])
		}
	}
}

func TestParseContentValues(t *testing.T) {
	v, err := ParseContent(`{"s": "text", "n": 42, "f": 1.5, "b": true, "z": null, "a": [1], "o": {}}`)
	if err != nil {
		t.Fatalf("ParseContent failed: %v", err)
	}
	obj := v.(Object)

	if s, _ := obj.Get("s"); s != "text" {
		t.Errorf("s = %v", s)
	}
	if n, _ := obj.Get("n"); n != json.Number("42") {
		t.Errorf("n = %v (%T)", n, n)
	}
	if b, _ := obj.Get("b"); b != true {
		t.Errorf("b = %v", b)
	}
	if z, _ := obj.Get("z"); z != nil {
		t.Errorf("z = %v", z)
	}
	if a, _ := obj.Get("a"); len(a.(Array)) != 1 {
		t.Errorf("a = %v", a)
	}
	if o, _ := obj.Get("o"); len(o.(Object)) != 0 {
		t.Errorf("o = %v", o)
	}
}

func TestParseContentRejectsMalformed(t *testing.T) {
	for _, content := range []string{
		`{"unterminated": `,
		`not json at all`,
		`{"a": 1} trailing`,
		``,
	} {
		if _, err := ParseContent(content); err == nil {
			t.Errorf("ParseContent(%q): expected error", content)
		}
	}
}

func TestObjectMarshalOrder(t *testing.T) {
	obj := Object{
		{Key: "b", Value: json.Number("1")},
		{Key: "a", Value: "x"},
	}
	out, err := json.Marshal(obj)
	if err != nil {
		t.Fatalf("Marshal failed: %v", err)
	}
	if string(out) != `{"b":1,"a":"x"}` {
		t.Errorf("Marshal = %s", out)
	}
}

func TestStringify(t *testing.T) {
	tests := []struct {
		input    Value
		expected string
	}{
		{nil, ""},
		{"plain", "plain"},
		{json.Number("3.14"), "3.14"},
		{true, "true"},
		{false, "false"},
		{Array{json.Number("1"), "a"}, `[1,"a"]`},
		{Object{{Key: "k", Value: "v"}}, `{"k":"v"}`},
	}

	for _, tt := range tests {
		if got := stringify(tt.input); got != tt.expected {
			t.Errorf("stringify(%v) = %q, expected %q", tt.input, got, tt.expected)
		}
	}
}

func TestColumnKeysUnion(t *testing.T) {
	rows := []Object{
		{{Key: "name", Value: "a"}},
		{{Key: "name", Value: "b"}, {Key: "age", Value: json.Number("3")}},
	}
	keys := columnKeys(rows)
	if len(keys) != 2 || keys[0] != "name" || keys[1] != "age" {
		t.Errorf("columnKeys = %v", keys)
	}
}
