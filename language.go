package textpipe

import (
	"strings"
	"unicode"

	"github.com/abadojack/whatlanggo"
	"go.uber.org/zap"
)

// LanguageUnknown is the code reported when detection finds nothing usable.
const LanguageUnknown = "un"

// detectLanguage returns the ISO 639-1 code for text and whether the
// detection is considered reliable. When detection is inconclusive the hint
// language is returned instead, flagged unreliable; text without letters
// yields LanguageUnknown.
func detectLanguage(text, hint string, logger *zap.Logger) (string, bool) {
	if !hasLetter(text) {
		return LanguageUnknown, false
	}

	info := whatlanggo.Detect(text)
	code := info.Lang.Iso6391()
	if code == "" {
		code = LanguageUnknown
	}

	reliable := info.IsReliable() && code != LanguageUnknown
	if !reliable && hint != "" {
		logger.Debug("language detection unreliable, falling back to hint",
			zap.String("detected", code),
			zap.Float64("confidence", info.Confidence),
			zap.String("hint", hint))
		return hint, false
	}

	logger.Debug("language detected",
		zap.String("language", code),
		zap.Float64("confidence", info.Confidence),
		zap.Bool("reliable", reliable))
	return code, reliable
}

func hasLetter(text string) bool {
	return strings.IndexFunc(text, unicode.IsLetter) >= 0
}
