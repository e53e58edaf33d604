package textutil

import (
	"regexp"
	"strconv"
	"strings"
)

// Spanish words for the numbers the TTS mispronounces as digits.
var numberWords = map[int]string{
	0: "cero", 1: "uno", 2: "dos", 3: "tres", 4: "cuatro",
	5: "cinco", 6: "seis", 7: "siete", 8: "ocho", 9: "nueve",
	10: "diez", 11: "once", 12: "doce", 13: "trece", 14: "catorce",
	15: "quince", 16: "dieciséis", 17: "diecisiete", 18: "dieciocho",
	19: "diecinueve", 20: "veinte", 21: "veintiuno", 22: "veintidós",
	23: "veintitrés", 24: "veinticuatro", 25: "veinticinco", 26: "veintiséis",
	27: "veintisiete", 28: "veintiocho", 29: "veintinueve", 30: "treinta",
	40: "cuarenta", 50: "cincuenta", 60: "sesenta", 70: "setenta",
	80: "ochenta", 90: "noventa", 100: "cien",
}

var (
	clockPattern      = regexp.MustCompile(`\b(\d{1,2}):(\d{2})\b`)
	numberPattern     = regexp.MustCompile(`\b\d{1,3}\b`)
	ellipsisPattern   = regexp.MustCompile(`\.{2,}`)
	whitespacePattern = regexp.MustCompile(`\s+`)
)

// numberToWords converts 0-100 to its Spanish word form. Numbers outside
// that range come back unchanged.
func numberToWords(n int) string {
	if word, ok := numberWords[n]; ok {
		return word
	}
	if n > 30 && n < 100 {
		tens := (n / 10) * 10
		ones := n % 10
		return numberWords[tens] + " y " + numberWords[ones]
	}
	return strconv.Itoa(n)
}

// ConvertNumbers rewrites digits 0-100 (and hh:mm clock forms) as Spanish
// words so the TTS pronounces them naturally.
func ConvertNumbers(text string) string {
	text = clockPattern.ReplaceAllStringFunc(text, func(match string) string {
		parts := clockPattern.FindStringSubmatch(match)
		hour, _ := strconv.Atoi(parts[1])
		minute, _ := strconv.Atoi(parts[2])
		if minute == 0 {
			return numberToWords(hour)
		}
		return numberToWords(hour) + " " + numberToWords(minute)
	})

	return numberPattern.ReplaceAllStringFunc(text, func(match string) string {
		n, err := strconv.Atoi(match)
		if err != nil || n > 100 {
			return match
		}
		return numberToWords(n)
	})
}

// CleanForTTS prepares text for speech synthesis: numbers become words,
// ellipses collapse to a period, long dashes become commas, and
// whitespace runs collapse to single spaces.
func CleanForTTS(text string) string {
	cleaned := ConvertNumbers(text)
	cleaned = ellipsisPattern.ReplaceAllString(cleaned, ".")
	cleaned = strings.ReplaceAll(cleaned, "—", ",")
	cleaned = strings.ReplaceAll(cleaned, "–", ",")
	cleaned = whitespacePattern.ReplaceAllString(cleaned, " ")
	return strings.TrimSpace(cleaned)
}
