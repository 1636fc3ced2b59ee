package confusable

// homoglyphs maps script look-alikes to the Latin letter they imitate.
//
// NFKD already collapses the compatibility blocks (fullwidth forms,
// mathematical alphanumerics, enclosed and modifier letters), so this
// table only needs the cross-script confusables that Unicode considers
// distinct letters in their own right. Keys are lowercase; lookup
// happens after case folding.
//
// Entries follow the UTS #39 confusables data, trimmed to the pairs
// that actually show up in chat-filter evasion.
var homoglyphs = map[rune]rune{
	// Latin and ASCII internal confusables, per UTS #39: capital I,
	// the digits 0 and 1, and the vertical bar all read as letters
	// inside a word. Keys here are consulted before case folding, so
	// 'I' maps while 'i' stays itself.
	'I': 'l',
	'|': 'l',
	'1': 'l',
	'0': 'o',

	// Cyrillic
	'а': 'a', // U+0430
	'в': 'b', // U+0432
	'е': 'e', // U+0435
	'ё': 'e', // U+0451
	'з': '3', // U+0437
	'і': 'i', // U+0456
	'ї': 'i', // U+0457
	'ј': 'j', // U+0458
	'к': 'k', // U+043A
	'м': 'm', // U+043C
	'н': 'h', // U+043D
	'о': 'o', // U+043E
	'р': 'p', // U+0440
	'с': 'c', // U+0441
	'т': 't', // U+0442
	'у': 'y', // U+0443
	'х': 'x', // U+0445
	'ь': 'b', // U+044C
	'ѕ': 's', // U+0455
	'ѡ': 'w', // U+0461
	'ѵ': 'v', // U+0475
	'ԁ': 'd', // U+0501
	'ԛ': 'q', // U+051B
	'ԝ': 'w', // U+051D

	// Greek
	'α': 'a', // U+03B1
	'β': 'b', // U+03B2
	'γ': 'y', // U+03B3
	'ε': 'e', // U+03B5
	'η': 'n', // U+03B7
	'ι': 'i', // U+03B9
	'κ': 'k', // U+03BA
	'μ': 'u', // U+03BC
	'ν': 'v', // U+03BD
	'ο': 'o', // U+03BF
	'ρ': 'p', // U+03C1
	'τ': 't', // U+03C4
	'υ': 'u', // U+03C5
	'χ': 'x', // U+03C7
	'ω': 'w', // U+03C9

	// Armenian
	'օ': 'o', // U+0585
	'ѳ': 'o', // U+0473 (Cyrillic fita)
	'ա': 'w', // U+0561
	'ս': 'u', // U+057D

	// Other Latin-adjacent letters
	'ı': 'i', // U+0131 dotless i
	'ƒ': 'f', // U+0192
	'ł': 'l', // U+0142
	'ø': 'o', // U+00F8
	'đ': 'd', // U+0111
	'ħ': 'h', // U+0127
	'ŧ': 't', // U+0167
	'ƅ': 'b', // U+0185
	'ɑ': 'a', // U+0251
	'ɡ': 'g', // U+0261
	'ʏ': 'y', // U+028F
	'ʙ': 'b', // U+0299
	'ɪ': 'i', // U+026A
	'ᴀ': 'a', // U+1D00
	'ᴄ': 'c', // U+1D04
	'ᴅ': 'd', // U+1D05
	'ᴇ': 'e', // U+1D07
	'ᴊ': 'j', // U+1D0A
	'ᴋ': 'k', // U+1D0B
	'ᴍ': 'm', // U+1D0D
	'ᴏ': 'o', // U+1D0F
	'ᴘ': 'p', // U+1D18
	'ᴛ': 't', // U+1D1B
	'ᴜ': 'u', // U+1D1C
	'ᴠ': 'v', // U+1D20
	'ᴡ': 'w', // U+1D21
	'ᴢ': 'z', // U+1D22

	// Currency and symbol substitutions ("gr@ss", "ca$h")
	'€': 'e', // U+20AC
	'¢': 'c', // U+00A2
	'¥': 'y', // U+00A5
	'§': 's', // U+00A7
	'$': 's',
	'@': 'a',
}

// TableSize returns the number of explicit homoglyph mappings.
// Useful for sanity checks and the CLI's diagnostics output.
func TableSize() int {
	return len(homoglyphs)
}
