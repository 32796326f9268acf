package pfapi

import "testing"

func TestExtractEntities(t *testing.T) {
	cases := []struct {
		name  string
		raw   string
		ok    bool
		count int
	}{
		{name: "results", raw: `{"results":[{"id":"1"},{"id":"2"}]}`, ok: true, count: 2},
		{name: "data", raw: `{"data":[{"id":"1"}]}`, ok: true, count: 1},
		{name: "results wins over data", raw: `{"results":[{"id":"1"}],"data":[{"id":"2"},{"id":"3"}]}`, ok: true, count: 1},
		{name: "empty array", raw: `{"results":[]}`, ok: true, count: 0},
		{name: "null container", raw: `{"results":null}`, ok: false},
		{name: "object container", raw: `{"data":{"id":"1"}}`, ok: false},
		{name: "absent", raw: `{"meta":{}}`, ok: false},
		{name: "invalid", raw: `not json`, ok: false},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			entities, ok := ExtractEntities([]byte(tc.raw))
			if ok != tc.ok {
				t.Fatalf("expected ok=%v, got %v", tc.ok, ok)
			}
			if len(entities) != tc.count {
				t.Fatalf("expected %d entities, got %d", tc.count, len(entities))
			}
		})
	}
}

func TestExtractSingle(t *testing.T) {
	cases := map[string]string{
		`{"id":"A"}`:               "A",
		`{"data":{"id":"B"}}`:      "B",
		`{"result":{"id":"C"}}`:    "C",
		`{"results":[{"id":"D"}]}`: "D",
		`{"data":[{"id":"E"},{}]}`: "E",
	}
	for raw, want := range cases {
		entity, ok := ExtractSingle([]byte(raw))
		if !ok {
			t.Fatalf("ExtractSingle(%s) not ok", raw)
		}
		if entity.ID() != want {
			t.Fatalf("ExtractSingle(%s) id = %q, want %q", raw, entity.ID(), want)
		}
	}
	if _, ok := ExtractSingle([]byte(`{"data":[]}`)); ok {
		t.Fatalf("expected empty list to be unusable")
	}
}
