package constants

import "strings"

// AllowedExtensions holds the accepted upload extensions. TIFF inputs are
// converted to PDF before entering the pipeline.
var AllowedExtensions = map[string]bool{
	"pdf":  true,
	"tif":  true,
	"tiff": true,
}

// TiffExtensions identifies inputs that need PDF conversion on ingest.
var TiffExtensions = map[string]bool{
	"tif":  true,
	"tiff": true,
}

// NormalizeExt lowercases and trims the dot from a file extension.
func NormalizeExt(ext string) string {
	return strings.ToLower(strings.TrimPrefix(ext, "."))
}

// PlaceholderToken substitutes for canonical filename components that could
// not be extracted.
const PlaceholderToken = "unknown"
