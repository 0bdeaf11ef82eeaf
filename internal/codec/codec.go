// Package codec converts between the structured collections the wizard edits
// and the JSON-string encoding the submission payload carries.
//
// Every mutator follows the same shape: decode the encoded string, apply the
// change, re-encode, and return the new string for the caller to assign back.
// The encoded string is the only persisted form, so a mutation either
// completes or leaves the field untouched; the two representations can never
// drift apart. Malformed JSON decodes to an empty default rather than
// erroring, so bad prior data cannot crash the wizard.
package codec

import (
	"encoding/json"
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

// Canonical empty encodings.
const (
	EmptyObject = "{}"
	EmptyArray  = "[]"
)

// ValidationError is a user-input problem surfaced as an inline notice. It is
// never a reason to block a step transition or abort the wizard.
type ValidationError struct {
	Msg string
}

func (e *ValidationError) Error() string { return e.Msg }

func validationf(format string, args ...any) error {
	return &ValidationError{Msg: fmt.Sprintf(format, args...)}
}

// EnsureObject returns s if it parses as a JSON object, EmptyObject otherwise.
func EnsureObject(s string) string {
	var m map[string]json.RawMessage
	if err := json.Unmarshal([]byte(s), &m); err != nil || m == nil {
		return EmptyObject
	}
	return s
}

// EnsureArray returns s if it parses as a JSON array, EmptyArray otherwise.
func EnsureArray(s string) string {
	var a []json.RawMessage
	if err := json.Unmarshal([]byte(s), &a); err != nil || a == nil {
		return EmptyArray
	}
	return s
}

// AmenityMap decodes an encoded boolean-selection map such as
// propertyAmenities.
func AmenityMap(encoded string) map[string]bool {
	m := make(map[string]bool)
	if err := json.Unmarshal([]byte(encoded), &m); err != nil {
		return make(map[string]bool)
	}
	return m
}

// ToggleAmenity selects or deselects a named amenity and returns the new
// encoding. Toggling a name on and back off restores the prior encoding
// byte for byte.
func ToggleAmenity(encoded, name string, selected bool) string {
	m := AmenityMap(encoded)
	if selected {
		m[name] = true
	} else {
		delete(m, name)
	}
	return marshal(m)
}

// Options decodes an encoded ordered selection list such as paymentOptions.
func Options(encoded string) []string {
	var list []string
	if err := json.Unmarshal([]byte(encoded), &list); err != nil {
		return nil
	}
	return list
}

// ToggleOption adds or removes a label from an ordered selection list,
// preserving selection order. Adding an already-present label is a no-op.
func ToggleOption(encoded, label string, selected bool) string {
	list := Options(encoded)
	if selected {
		for _, v := range list {
			if v == label {
				return encoded
			}
		}
		return marshal(append(list, label))
	}
	out := make([]string, 0, len(list))
	for _, v := range list {
		if v != label {
			out = append(out, v)
		}
	}
	return marshal(out)
}

// LocalAmenityMap decodes the "category:name" → distance-in-minutes map.
func LocalAmenityMap(encoded string) map[string]string {
	m := make(map[string]string)
	if err := json.Unmarshal([]byte(encoded), &m); err != nil {
		return make(map[string]string)
	}
	return m
}

// AddLocalAmenity merges a nearby amenity into the encoded map under the
// category-qualified key "{category}:{name}". The same name can coexist under
// different categories; the same category and name overwrites. Missing
// fields or a non-numeric distance return a ValidationError.
func AddLocalAmenity(encoded, category, name, distance string) (string, error) {
	category = strings.TrimSpace(category)
	name = strings.TrimSpace(name)
	distance = strings.TrimSpace(distance)

	if category == "" {
		return encoded, validationf("select an amenity category first")
	}
	if name == "" || distance == "" {
		return encoded, validationf("amenity name and distance are required")
	}
	if _, err := strconv.ParseFloat(distance, 64); err != nil {
		return encoded, validationf("distance must be a number of minutes")
	}

	m := LocalAmenityMap(encoded)
	m[category+":"+name] = distance
	return marshal(m), nil
}

// RemoveKey deletes a map entry by key. An absent key is a no-op.
func RemoveKey(encoded, key string) string {
	m := LocalAmenityMap(encoded)
	delete(m, key)
	return marshal(m)
}

// Texts decodes an encoded free-text list such as keyFeatures.
func Texts(encoded string) []string {
	return Options(encoded)
}

// AppendText appends free text to an ordered list, rejecting empty or
// whitespace input and textual duplicates.
func AppendText(encoded, text string) (string, error) {
	text = strings.TrimSpace(text)
	if text == "" {
		return encoded, validationf("enter some text first")
	}
	list := Texts(encoded)
	for _, v := range list {
		if v == text {
			return encoded, validationf("%q has already been added", text)
		}
	}
	return marshal(append(list, text)), nil
}

// RemoveText removes a value from an ordered list. Absent values are a no-op.
func RemoveText(encoded, text string) string {
	return ToggleOption(encoded, text, false)
}

// videoLinkPattern matches a YouTube watch or short link with an 11-character
// video ID, the one video host the backend accepts.
var videoLinkPattern = regexp.MustCompile(
	`^https?://(www\.)?(youtube\.com/watch\?v=|youtu\.be/)[A-Za-z0-9_-]{11}([&?][^\s]*)?$`)

// IsValidVideoURL reports whether raw looks like an accepted video link.
func IsValidVideoURL(raw string) bool {
	return videoLinkPattern.MatchString(strings.TrimSpace(raw))
}

// AppendVideoLink validates a video URL and appends it, rejecting malformed
// links before the duplicate check is applied.
func AppendVideoLink(encoded, raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if !IsValidVideoURL(raw) {
		return encoded, validationf("not a valid video link")
	}
	return AppendText(encoded, raw)
}

// FAQs decodes the encoded question/answer list.
func FAQs(encoded string) []FAQ {
	var list []FAQ
	if err := json.Unmarshal([]byte(encoded), &list); err != nil {
		return nil
	}
	return list
}

// FAQ is one question/answer pair as stored in the encoded list.
type FAQ struct {
	Question string `json:"question"`
	Answer   string `json:"answer"`
}

// AppendFAQ appends a question/answer pair. The question is the equality key
// for the duplicate guard.
func AppendFAQ(encoded, question, answer string) (string, error) {
	question = strings.TrimSpace(question)
	answer = strings.TrimSpace(answer)
	if question == "" || answer == "" {
		return encoded, validationf("both a question and an answer are required")
	}
	list := FAQs(encoded)
	for _, f := range list {
		if f.Question == question {
			return encoded, validationf("that question has already been added")
		}
	}
	return marshal(append(list, FAQ{Question: question, Answer: answer})), nil
}

// RemoveFAQ deletes the pair whose question matches. Absent is a no-op.
func RemoveFAQ(encoded, question string) string {
	list := FAQs(encoded)
	out := make([]FAQ, 0, len(list))
	for _, f := range list {
		if f.Question != question {
			out = append(out, f)
		}
	}
	return marshal(out)
}

// marshal encodes v, which is always a map or slice of marshalable values.
// json.Marshal sorts map keys, so encodings are deterministic.
func marshal(v any) string {
	b, err := json.Marshal(v)
	if err != nil {
		// Unreachable for the types this package marshals.
		panic(err)
	}
	return string(b)
}
