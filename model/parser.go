package model

import (
	"encoding/json"
	"regexp"
	"strings"
)

// Models often wrap JSON replies in a markdown fence even when told not
// to. Extraction is two-stage: find a fenced block if one exists, then
// strictly decode, so "no fence" and "bad JSON" stay distinguishable.
var fencedBlockRe = regexp.MustCompile("(?s)```(?:json)?\\s*(.*?)\\s*```")

// ExtractFencedBlock returns the interior of the first fenced code block
// and true, or ("", false) when the reply contains no fence.
func ExtractFencedBlock(s string) (string, bool) {
	m := fencedBlockRe.FindStringSubmatch(s)
	if m == nil {
		return "", false
	}
	return m[1], true
}

// DecodeStructured parses a free-form model reply into out. A fenced
// block's interior is preferred; otherwise the whole reply is parsed as
// JSON directly. Decode failure is reported as MalformedOutputError.
func DecodeStructured(reply string, out any) error {
	jsonText := strings.TrimSpace(reply)
	if inner, ok := ExtractFencedBlock(reply); ok {
		jsonText = inner
	}
	if err := json.Unmarshal([]byte(jsonText), out); err != nil {
		return &MalformedOutputError{Raw: reply, Err: err}
	}
	return nil
}
