// Movie Mixer - Pair-Based Hybrid Movie Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/moviemixer

package recommend

import (
	"strings"

	"github.com/goccy/go-json"
)

// NormalizeTags converts a serialized tag list into a flat
// whitespace-joined token string.
//
// The input is a JSON array of objects each carrying a "name" attribute,
// e.g. `[{"id": 28, "name": "Action"}, {"id": 12, "name": "Adventure"}]`.
// Names are joined in source order, duplicates included.
//
// Malformed input is never fatal: decoding failures, a missing or
// non-string "name" on any element, the empty-list sentinel "[]", and
// missing input all normalize to the empty string. One bad tag list must
// not block recommendations for the rest of the catalog.
func NormalizeTags(raw string) string {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" || trimmed == "[]" {
		return ""
	}

	var entries []map[string]interface{}
	if err := json.Unmarshal([]byte(trimmed), &entries); err != nil {
		return ""
	}

	names := make([]string, 0, len(entries))
	for _, entry := range entries {
		name, ok := entry["name"].(string)
		if !ok {
			return ""
		}
		names = append(names, name)
	}

	return strings.Join(names, " ")
}

// ComposeDocument concatenates the normalized genre string, a single
// separating space, and the normalized keyword string, in that fixed
// order. Empty inputs still yield the single separator; the tokenizer
// treats extra whitespace as a no-op boundary, so no special-casing is
// needed.
func ComposeDocument(genreTags, keywordTags string) string {
	return genreTags + " " + keywordTags
}
