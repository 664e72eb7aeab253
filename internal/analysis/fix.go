package analysis

// The scanner OCR reliably misreads the fourth character of NA-series
// drawing numbers. The trigger conditions are deliberately narrow; widening
// them risks corrupting valid codes that merely share the prefix.
const (
	drawingNumberPrefix   = "NA"
	drawingNumberMinLen   = 9
	drawingNumberFixIndex = 3 // position 4, 1-indexed
	drawingNumberFixChar  = 'T'
)

// CorrectDrawingNumber coerces the known misread position of an NA-series
// drawing number. Values outside the pattern pass through unchanged.
func CorrectDrawingNumber(value string) string {
	if len(value) < drawingNumberMinLen {
		return value
	}
	if value[:len(drawingNumberPrefix)] != drawingNumberPrefix {
		return value
	}
	if value[drawingNumberFixIndex] == drawingNumberFixChar {
		return value
	}
	b := []byte(value)
	b[drawingNumberFixIndex] = drawingNumberFixChar
	return string(b)
}
