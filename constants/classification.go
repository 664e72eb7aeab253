package constants

import "strings"

// Classification is the drawing category assigned by the classification stage.
type Classification string

const (
	PartDrawing     Classification = "PartDrawing"     // single machined part
	UnitDrawing     Classification = "UnitDrawing"     // sub-assembly of parts
	AssemblyDrawing Classification = "AssemblyDrawing" // full assembly
	Unclassified    Classification = "Unclassified"
)

var allClassifications = []Classification{
	PartDrawing,
	UnitDrawing,
	AssemblyDrawing,
	Unclassified,
}

// ClassificationStrings returns the category labels offered to the model.
func ClassificationStrings() []string {
	out := make([]string, 0, len(allClassifications)-1)
	for _, c := range allClassifications {
		if c == Unclassified {
			continue
		}
		out = append(out, string(c))
	}
	return out
}

// CanonicalizeClassification maps a model-returned label onto the closed
// category set. The source drawings label categories in Japanese, so those
// labels are accepted as synonyms.
func CanonicalizeClassification(input string) (Classification, bool) {
	if input == "" {
		return Unclassified, false
	}

	normalized := strings.ToLower(strings.TrimSpace(input))

	synonyms := map[string]Classification{
		"部品図":      PartDrawing,
		"part":     PartDrawing,
		"ユニット図":    UnitDrawing,
		"unit":     UnitDrawing,
		"組図":       AssemblyDrawing,
		"組立図":      AssemblyDrawing,
		"assembly": AssemblyDrawing,
	}

	if c, ok := synonyms[normalized]; ok {
		return c, true
	}

	for _, c := range allClassifications {
		if normalized == strings.ToLower(string(c)) {
			return c, true
		}
	}

	return Unclassified, false
}
