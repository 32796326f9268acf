package upsert

import (
	"testing"

	"github.com/tidwall/gjson"
)

func TestTransformApply(t *testing.T) {
	cases := []struct {
		name      string
		transform Transform
		json      string
		want      string
	}{
		{name: "identity string", transform: Identity, json: `"  Dubai Marina "`, want: "Dubai Marina"},
		{name: "identity integer", transform: Identity, json: `3`, want: "3"},
		{name: "identity decimal", transform: Identity, json: `1250.50`, want: "1250.50"},
		{name: "identity bool", transform: Identity, json: `true`, want: "true"},
		{name: "identity null", transform: Identity, json: `null`, want: ""},
		{name: "identity object", transform: Identity, json: `{"a": 1}`, want: `{"a":1}`},
		{name: "text strips tags", transform: SanitizeText, json: `"<b>Sea</b> view<br/>apartment"`, want: "Sea view apartment"},
		{name: "text collapses whitespace", transform: SanitizeText, json: `"  two \n  lines\t"`, want: "two lines"},
		{name: "text unescapes entities", transform: SanitizeText, json: `"Tom &amp; Jerry"`, want: "Tom & Jerry"},
		{name: "text from number", transform: SanitizeText, json: `12`, want: "12"},
		{name: "email normalized", transform: SanitizeEmail, json: `" Agent@Example.COM "`, want: "agent@example.com"},
		{name: "email invalid", transform: SanitizeEmail, json: `"not-an-email"`, want: ""},
		{name: "url kept", transform: SanitizeURL, json: `"https://cdn.example.com/a.jpg"`, want: "https://cdn.example.com/a.jpg"},
		{name: "url scheme rejected", transform: SanitizeURL, json: `"javascript:alert(1)"`, want: ""},
		{name: "url garbage", transform: SanitizeURL, json: `"not a url"`, want: ""},
		{name: "serialize object", transform: SerializeStructure, json: `{ "type": "rera", "value": "123" }`, want: `{"type":"rera","value":"123"}`},
		{name: "serialize array", transform: SerializeStructure, json: `[1, 2]`, want: `[1,2]`},
		{name: "serialize empty array", transform: SerializeStructure, json: `[]`, want: ""},
		{name: "serialize scalar", transform: SerializeStructure, json: `"x"`, want: "x"},
		{name: "yes from true", transform: BooleanToYesNo, json: `true`, want: "yes"},
		{name: "no from false", transform: BooleanToYesNo, json: `false`, want: "no"},
		{name: "yes from string", transform: BooleanToYesNo, json: `"1"`, want: "yes"},
		{name: "no from zero", transform: BooleanToYesNo, json: `0`, want: "no"},
		{name: "bool unknown", transform: BooleanToYesNo, json: `"maybe"`, want: ""},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := tc.transform.Apply(gjson.Parse(tc.json))
			if got != tc.want {
				t.Fatalf("%s.Apply(%s) = %q, want %q", tc.transform, tc.json, got, tc.want)
			}
		})
	}
}

func TestTransformMissingValue(t *testing.T) {
	missing := gjson.Get(`{}`, "absent")
	for transform := range transformNames {
		if got := transform.Apply(missing); got != "" {
			t.Fatalf("%s on missing value = %q, want empty", transform, got)
		}
	}
}
