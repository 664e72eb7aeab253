package anthropic

import (
	"strings"

	"github.com/takuya-okamoto/zumenkan/internal/ai"
)

const rotationPrompt = `You are looking at one page of a mechanical engineering drawing.
Decide how the image must be rotated clockwise so that the drawing reads upright:
the title block sits in the bottom-right corner and text reads left to right.
Answer with ONLY a JSON object: {"angle": 0|90|180|270, "confidence": 0-100, "reason": "..."}.
The confidence is how certain you are of the angle, 0 to 100.`

func fieldsPrompt(fieldNames []string) string {
	var b strings.Builder
	b.WriteString("Read the title block of this engineering drawing. Field labels are usually Japanese.\n")
	b.WriteString("Extract the following fields: ")
	b.WriteString(strings.Join(fieldNames, ", "))
	b.WriteString(".\n")
	b.WriteString(`For each field report its value exactly as printed, a confidence 0-100,
and if visible the pixel bounding box of the value (x, y, width, height, origin top-left).
Omit fields that are not present on the page.
Answer with ONLY JSON: {"fields": [{"name": "...", "value": "...", "confidence": 0-100, "x": 0, "y": 0, "width": 0, "height": 0}]}.`)
	return b.String()
}

func classificationPrompt(classes []string) string {
	var b strings.Builder
	b.WriteString("Classify this engineering drawing as one of: ")
	b.WriteString(strings.Join(classes, ", "))
	b.WriteString(".\n")
	b.WriteString(`A part drawing shows a single machined component with dimensions.
A unit drawing shows a small sub-assembly. An assembly drawing shows the full
machine with numbered balloons and a parts list.
Answer with ONLY JSON: {"classification": "...", "confidence": 0-100, "reason": "..."}.`)
	return b.String()
}

const balloonsPrompt = `List every numbered balloon callout on this assembly drawing.
For each balloon report its number, the part name from the parts list when readable,
the quantity, a confidence 0-100, and the balloon's pixel position (x, y, origin top-left).
If the page has no balloons answer with an empty list.
Answer with ONLY JSON: {"balloons": [{"balloon_number": 1, "part_name": "...", "quantity": 1, "confidence": 0-100, "x": 0, "y": 0}]}.`

const revisionsPrompt = `Read the revision-history table of this engineering drawing, usually in a corner.
For each row report the revision symbol or number, the date exactly as printed,
the change description, the author, and a confidence 0-100.
If the page has no revision table answer with an empty list.
Answer with ONLY JSON: {"revisions": [{"revision_number": "A", "date": "...", "description": "...", "author": "...", "confidence": 0-100}]}.`

func summaryPrompt(sc ai.SummaryContext) string {
	var b strings.Builder
	b.WriteString("Write a short Japanese summary (2-4 sentences) of this engineering drawing: ")
	b.WriteString("what the part or assembly is, its key dimensions or materials, and anything unusual.\n")
	if sc.Classification != "" {
		b.WriteString("The drawing was classified as: ")
		b.WriteString(sc.Classification)
		b.WriteString(".\n")
	}
	if len(sc.Fields) > 0 {
		b.WriteString("Known title-block fields:\n")
		for _, f := range sc.Fields {
			b.WriteString("- ")
			b.WriteString(f.Name)
			b.WriteString(": ")
			b.WriteString(f.Value)
			b.WriteString("\n")
		}
	}
	b.WriteString("Also report the geometric features you observe (holes, threads, symmetry, ")
	b.WriteString("overall form) under \"shape_features\" as a free-form JSON object.\n")
	b.WriteString(`Answer with ONLY JSON: {"summary": "...", "shape_features": {}}.`)
	return b.String()
}
