package upsert

import (
	"bytes"
	"encoding/json"
	"net/url"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/tidwall/gjson"
	"golang.org/x/net/html"
)

// Transform normalizes one source value into a stored field value.
type Transform int

const (
	Identity Transform = iota
	SanitizeText
	SanitizeEmail
	SanitizeURL
	SerializeStructure
	BooleanToYesNo
)

var transformNames = map[Transform]string{
	Identity:           "identity",
	SanitizeText:       "sanitizeText",
	SanitizeEmail:      "sanitizeEmail",
	SanitizeURL:        "sanitizeUrl",
	SerializeStructure: "serializeStructure",
	BooleanToYesNo:     "booleanToYesNo",
}

func (t Transform) String() string {
	if name, ok := transformNames[t]; ok {
		return name
	}
	return "unknown"
}

var validate = validator.New()

// Apply renders value. Missing and null values render as "".
func (t Transform) Apply(value gjson.Result) string {
	if !value.Exists() || value.Type == gjson.Null {
		return ""
	}
	switch t {
	case SanitizeText:
		return sanitizeText(value.String())
	case SanitizeEmail:
		return sanitizeEmail(value.String())
	case SanitizeURL:
		return sanitizeURL(value.String())
	case SerializeStructure:
		return serialize(value)
	case BooleanToYesNo:
		return yesNo(value)
	default:
		return identity(value)
	}
}

func identity(value gjson.Result) string {
	switch value.Type {
	case gjson.String:
		return strings.TrimSpace(value.Str)
	case gjson.Number:
		return value.Raw
	case gjson.True:
		return "true"
	case gjson.False:
		return "false"
	}
	return serialize(value)
}

// sanitizeText drops markup and control characters and collapses whitespace.
func sanitizeText(raw string) string {
	var text strings.Builder
	tokenizer := html.NewTokenizer(strings.NewReader(raw))
	for {
		switch tokenizer.Next() {
		case html.ErrorToken:
			return strings.Join(strings.Fields(text.String()), " ")
		case html.TextToken:
			text.WriteString(strings.Map(dropControl, string(tokenizer.Text())))
		case html.StartTagToken, html.EndTagToken, html.SelfClosingTagToken:
			text.WriteByte(' ')
		}
	}
}

func dropControl(r rune) rune {
	if r < 0x20 && r != '\n' && r != '\t' {
		return -1
	}
	return r
}

func sanitizeEmail(raw string) string {
	email := strings.ToLower(strings.TrimSpace(raw))
	if email == "" || validate.Var(email, "email") != nil {
		return ""
	}
	return email
}

func sanitizeURL(raw string) string {
	candidate := strings.TrimSpace(raw)
	if candidate == "" || validate.Var(candidate, "url") != nil {
		return ""
	}
	parsed, err := url.Parse(candidate)
	if err != nil || (parsed.Scheme != "http" && parsed.Scheme != "https") {
		return ""
	}
	return parsed.String()
}

func serialize(value gjson.Result) string {
	if !value.IsObject() && !value.IsArray() {
		return strings.TrimSpace(value.String())
	}
	var buf bytes.Buffer
	if err := json.Compact(&buf, []byte(value.Raw)); err != nil {
		return value.Raw
	}
	if buf.String() == "[]" || buf.String() == "{}" {
		return ""
	}
	return buf.String()
}

func yesNo(value gjson.Result) string {
	switch value.Type {
	case gjson.True:
		return "yes"
	case gjson.False:
		return "no"
	case gjson.Number:
		if value.Num != 0 {
			return "yes"
		}
		return "no"
	case gjson.String:
		switch strings.ToLower(strings.TrimSpace(value.Str)) {
		case "true", "yes", "1", "on":
			return "yes"
		case "false", "no", "0", "off":
			return "no"
		}
	}
	return ""
}
