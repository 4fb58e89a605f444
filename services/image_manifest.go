package services

import (
	"encoding/json"
	"strings"
)

// The images column holds one of three historical encodings: NULL, a JSON
// array of filenames, or a single bare filename written before the JSON
// format existed. DecodeImageManifest accepts all of them and never
// fails; a malformed manifest must not take down a listing request.
func DecodeImageManifest(raw *string) []string {
	if raw == nil {
		return []string{}
	}
	value := strings.TrimSpace(*raw)
	if value == "" {
		return []string{}
	}

	var images []string
	if err := json.Unmarshal([]byte(value), &images); err == nil {
		return images
	}

	// Legacy rows stored a single filename with no brackets.
	if !strings.HasPrefix(value, "[") && !strings.HasSuffix(value, "]") {
		return []string{value}
	}
	return []string{}
}

// EncodeImageManifest serializes a filename list for storage. An empty
// list encodes as NULL, not "[]", matching legacy rows where "no images"
// was always NULL.
func EncodeImageManifest(images []string) *string {
	if len(images) == 0 {
		return nil
	}
	encoded, err := json.Marshal(images)
	if err != nil {
		return nil
	}
	value := string(encoded)
	return &value
}
