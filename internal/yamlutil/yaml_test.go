package yamlutil

import (
	"bytes"
	"errors"
	"strings"
	"testing"
)

type sample struct {
	Name  string   `yaml:"name"`
	Count int      `yaml:"count"`
	Tags  []string `yaml:"tags"`
}

func TestUnmarshalStrict(t *testing.T) {
	t.Parallel()

	var got sample
	data := []byte("name: layout\ncount: 3\ntags:\n  - a\n  - b\n")
	if err := UnmarshalStrict(data, &got); err != nil {
		t.Fatalf("UnmarshalStrict: %v", err)
	}
	if got.Name != "layout" || got.Count != 3 || len(got.Tags) != 2 {
		t.Errorf("unexpected result: %+v", got)
	}
}

func TestUnmarshalStrictRejectsUnknownFields(t *testing.T) {
	t.Parallel()

	var got sample
	err := UnmarshalStrict([]byte("name: x\nbogus: y\n"), &got)
	if err == nil {
		t.Fatal("expected error for unknown field")
	}
}

func TestUnmarshalStrictValidation(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		data    []byte
		dest    any
		wantErr error
	}{
		{"nil data", nil, &sample{}, ErrNilData},
		{"empty data", []byte{}, &sample{}, ErrNilData},
		{"nil destination", []byte("name: x"), nil, ErrNilDestination},
		{"oversized input", bytes.Repeat([]byte("a"), MaxInputSize+1), &sample{}, ErrInputTooLarge},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := UnmarshalStrict(tt.data, tt.dest)
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("UnmarshalStrict error = %v, want %v", err, tt.wantErr)
			}
		})
	}
}

func TestMarshalRoundTrip(t *testing.T) {
	t.Parallel()

	in := sample{Name: "page", Count: 7, Tags: []string{"x"}}
	data, err := Marshal(in)
	if err != nil {
		t.Fatalf("Marshal: %v", err)
	}
	if !strings.Contains(string(data), "name: page") {
		t.Errorf("marshaled output missing field: %s", data)
	}

	var out sample
	if err := UnmarshalStrict(data, &out); err != nil {
		t.Fatalf("UnmarshalStrict: %v", err)
	}
	if out.Name != in.Name || out.Count != in.Count {
		t.Errorf("round trip mismatch: %+v != %+v", out, in)
	}
}
