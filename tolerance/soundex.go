package tolerance

import "strings"

// soundexDigits maps each letter to its Soundex digit per Manning,
// Raghavan & Schütze (chapter 3.4): bfpv→1, cgjkqsxz→2, dt→3, l→4,
// mn→5, r→6; vowels and h, w, y → 0.
var soundexDigits = map[byte]byte{
	'b': '1', 'f': '1', 'p': '1', 'v': '1',
	'c': '2', 'g': '2', 'j': '2', 'k': '2', 'q': '2', 's': '2', 'x': '2', 'z': '2',
	'd': '3', 't': '3',
	'l': '4',
	'm': '5', 'n': '5',
	'r': '6',
	'a': '0', 'e': '0', 'i': '0', 'o': '0', 'u': '0', 'h': '0', 'w': '0', 'y': '0',
}

// SoundexCode produces the 4-character Soundex code for a lowercase
// word: keep the first letter, translate the rest with soundexDigits,
// collapse consecutive equal digits, drop zeros, pad/truncate to 4
// characters.
func SoundexCode(word string) string {
	if word == "" {
		return "0000"
	}

	code := make([]byte, 0, 4)
	code = append(code, word[0])

	// Seeded to a sentinel rather than the first letter's own digit,
	// matching the grounded produce_soundex_code: a second letter
	// sharing the first letter's code is not collapsed away (e.g.
	// "pfister" keeps both 'f' and the next code digit).
	var prevDigit byte = '-'
	for i := 1; i < len(word); i++ {
		digit := soundexDigits[word[i]]
		if digit != prevDigit {
			if digit != '0' {
				code = append(code, digit)
			}
			prevDigit = digit
		}
	}

	if len(code) > 4 {
		code = code[:4]
	}
	for len(code) < 4 {
		code = append(code, '0')
	}
	return strings.ToUpper(string(code[:1])) + string(code[1:])
}

// SoundexIndex maps a 4-character Soundex code to the set of
// vocabulary words sharing it.
type SoundexIndex map[string][]string

// BuildSoundexIndex computes the Soundex code of every dictionary word
// and groups words by code.
func BuildSoundexIndex(dict Dictionary) SoundexIndex {
	idx := make(SoundexIndex)
	for word := range dict {
		code := SoundexCode(word)
		idx[code] = append(idx[code], word)
	}
	return idx
}
