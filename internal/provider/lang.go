// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package provider

import "strings"

// languageNames maps provider language codes (MARC three-letter codes from
// Open Library, ISO 639-1 two-letter codes from Gutendex) to human-readable
// names. Unknown codes pass through uppercased.
var languageNames = map[string]string{
	"eng": "English",
	"hin": "Hindi",
	"san": "Sanskrit",
	"ben": "Bengali",
	"tam": "Tamil",
	"tel": "Telugu",
	"mar": "Marathi",
	"guj": "Gujarati",
	"urd": "Urdu",
	"pan": "Punjabi",
	"pli": "Pali",
	"tib": "Tibetan",
	"fre": "French",
	"ger": "German",
	"spa": "Spanish",
	"ita": "Italian",
	"rus": "Russian",
	"chi": "Chinese",
	"jpn": "Japanese",
	"ara": "Arabic",
	"en":  "English",
	"hi":  "Hindi",
	"sa":  "Sanskrit",
	"bn":  "Bengali",
	"ta":  "Tamil",
	"te":  "Telugu",
	"mr":  "Marathi",
	"gu":  "Gujarati",
	"ur":  "Urdu",
	"pa":  "Punjabi",
	"fr":  "French",
	"de":  "German",
	"es":  "Spanish",
	"it":  "Italian",
	"ru":  "Russian",
	"zh":  "Chinese",
	"ja":  "Japanese",
	"ar":  "Arabic",
}

// LanguageName maps a provider language code to a human-readable name.
func LanguageName(code string) string {
	code = strings.ToLower(strings.TrimSpace(code))
	if code == "" {
		return ""
	}
	if name, ok := languageNames[code]; ok {
		return name
	}
	return strings.ToUpper(code)
}

// IsLanguageCode reports whether s looks like an unmapped short code rather
// than a human-readable language name.
func IsLanguageCode(s string) bool {
	return len(s) <= 3 && s == strings.ToLower(s)
}
