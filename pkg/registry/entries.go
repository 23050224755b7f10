// Copyright (C) 2025 Aleutian AI (jinterlante@aleutian.ai)
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
// See the LICENSE.txt file for the full license text.
//
// NOTE: This work is subject to additional terms under AGPL v3 Section 7.
// See the NOTICE.txt file for details regarding AI system attribution.

package registry

// builtinEntries is the built-in catalog. Keep entries grouped by
// class and sorted by code point within each group; the coverage test
// walks these groups.
var builtinEntries = []Entry{
	// --- ASCII controls ---
	{
		Rune:     '\t',
		Name:     "Tab",
		Code:     "U+0009",
		Glyph:    "→",
		LongName: "CHARACTER TABULATION",
		Example: "Invoice\t1042\tpaid\n" +
			"Invoice\t1043\topen",
		Usage: "Column alignment in TSV exports and legacy CAT tool " +
			"formats. Replacing a tab with spaces silently breaks " +
			"downstream field splitting.",
	},
	{
		Rune:     '\n',
		Name:     "Line Feed",
		Code:     "U+000A",
		Glyph:    "LF",
		LongName: "LINE FEED (LF)",
		Example: "First paragraph of the notice.\n" +
			"Second paragraph that must stay separate.",
		Usage: "Paragraph and segment boundaries. A dropped line feed " +
			"merges two translation segments and desynchronizes " +
			"segment-aligned bilingual files.",
	},
	{
		Rune:     '\r',
		Name:     "Carriage Return",
		Code:     "U+000D",
		Glyph:    "CR",
		LongName: "CARRIAGE RETURN (CR)",
		Example: "Windows-authored copy deck line one.\r\n" +
			"Line two keeps the CR before the LF.",
		Usage: "Half of the Windows CRLF line ending. Stripping only " +
			"the CR produces files that some TMS importers reject as " +
			"mixed line endings.",
	},

	// --- No-break and fixed-width space family ---
	{
		Rune:     '\u00A0',
		Name:     "No-Break Space",
		Code:     "U+00A0",
		Glyph:    "NBSP",
		LongName: "NO-BREAK SPACE",
		Example: "Le prix est de 1\u00A0000\u00A0€.\n" +
			"La réponse est\u00A0: oui.",
		Usage: "French typography requires a no-break space before " +
			"high punctuation and inside number groups. Replacing it " +
			"with a plain space allows the punctuation to wrap onto " +
			"its own line.",
	},
	{
		Rune:     '\u2002',
		Name:     "En Space",
		Code:     "U+2002",
		Glyph:    "ENSP",
		LongName: "EN SPACE",
		Example: "Chapter 4\u2002Getting Started\n" +
			"Chapter 5\u2002Advanced Topics",
		Usage: "Fixed en-width gap in headings and numbered lists. " +
			"Collapsing it to a plain space changes typeset spacing " +
			"in print-ready deliverables.",
	},
	{
		Rune:     '\u2003',
		Name:     "Em Space",
		Code:     "U+2003",
		Glyph:    "EMSP",
		LongName: "EM SPACE",
		Example: "Q:\u2003What does this setting do?\n" +
			"A:\u2003It controls the export format.",
		Usage: "Em-width indentation in Q&A and dialogue layouts. " +
			"Substitution with ordinary spaces breaks visual " +
			"alignment across locales.",
	},
	{
		Rune:     '\u2007',
		Name:     "Figure Space",
		Code:     "U+2007",
		Glyph:    "FSP",
		LongName: "FIGURE SPACE",
		Example: "Item A\u2007\u2007128.00\n" +
			"Item B\u20071024.50",
		Usage: "Digit-width, non-breaking padding for numeric columns. " +
			"A plain space is narrower and breaks right-aligned " +
			"figures in tabular output.",
	},
	{
		Rune:     '\u2009',
		Name:     "Thin Space",
		Code:     "U+2009",
		Glyph:    "THSP",
		LongName: "THIN SPACE",
		Example: "25\u2009km/h on urban roads.\n" +
			"Valid from 1\u2009January\u20092026.",
		Usage: "SI style separates values from units with a thin " +
			"space. Dropping it fuses number and unit; widening it " +
			"to a plain space permits a bad wrap.",
	},
	{
		Rune:     '\u200A',
		Name:     "Hair Space",
		Code:     "U+200A",
		Glyph:    "HSP",
		LongName: "HAIR SPACE",
		Example: "“\u200AQuoted phrase\u200A” with hairline padding.\n" +
			"A—\u200Adash with breathing room.",
		Usage: "Hairline kerning around quotes and dashes in " +
			"typeset copy. Removal makes punctuation collide; a " +
			"plain space is visibly too wide.",
	},
	{
		Rune:     '\u202F',
		Name:     "Narrow No-Break Space",
		Code:     "U+202F",
		Glyph:    "NNBSP",
		LongName: "NARROW NO-BREAK SPACE",
		Example: "Départ à 14\u202F30.\n" +
			"Prix\u202F: 42\u202F€",
		Usage: "Mandated by French and Mongolian orthography before " +
			"punctuation and in times. Replacing it with NBSP or a " +
			"plain space is a visible typographic regression.",
	},
	{
		Rune:     '\u3000',
		Name:     "Ideographic Space",
		Code:     "U+3000",
		Glyph:    "IDSP",
		LongName: "IDEOGRAPHIC SPACE",
		Example: "　第一章　はじめに\n" +
			"　第二章　基本操作",
		Usage: "Full-width space used for CJK indentation and " +
			"alignment. Swapping in an ASCII space misaligns " +
			"full-width text grids.",
	},

	// --- Zero-width characters ---
	{
		Rune:     '\u200B',
		Name:     "Zero Width Space",
		Code:     "U+200B",
		Glyph:    "ZWSP",
		LongName: "ZERO WIDTH SPACE",
		Example: "ที่ประชุม\u200Bรับทราบ\u200Bรายงาน\n" +
			"verylongcompound\u200Bproductname",
		Usage: "Invisible break opportunity in scripts written " +
			"without spaces (Thai, Khmer) and in long identifiers. " +
			"Removing it causes overflow; an accidental one splits " +
			"searchable terms.",
	},
	{
		Rune:     '\u200C',
		Name:     "Zero Width Non-Joiner",
		Code:     "U+200C",
		Glyph:    "ZWNJ",
		LongName: "ZERO WIDTH NON-JOINER",
		Example: "می\u200Cخواهم (Persian: \"I want\")\n" +
			"Auf\u200Clage (German ligature control)",
		Usage: "Blocks cursive joining in Persian and ligature " +
			"formation in German. Dropping it changes letterforms " +
			"and, in Persian, produces misspelled words.",
	},
	{
		Rune:     '\u200D',
		Name:     "Zero Width Joiner",
		Code:     "U+200D",
		Glyph:    "ZWJ",
		LongName: "ZERO WIDTH JOINER",
		Example: "श्र\u200Dीमान (forces a conjunct form)\n" +
			"👩\u200D💻 (emoji profession sequence)",
		Usage: "Forces joined letterforms in Indic scripts and glues " +
			"emoji ZWJ sequences. Removal renders separate glyphs " +
			"where a single fused glyph is expected.",
	},

	// --- Soft hyphen ---
	{
		Rune:     '\u00AD',
		Name:     "Soft Hyphen",
		Code:     "U+00AD",
		Glyph:    "SHY",
		LongName: "SOFT HYPHEN",
		Example: "Donau\u00ADdampf\u00ADschiff\u00ADfahrt\n" +
			"Ver\u00ADant\u00ADwor\u00ADtung",
		Usage: "Invisible hyphenation hint for long German and Dutch " +
			"compounds. Stripping it forces overflow in narrow UI " +
			"columns; a literal hyphen in its place corrupts the word.",
	},

	// --- Line and paragraph separators ---
	{
		Rune:     '\u2028',
		Name:     "Line Separator",
		Code:     "U+2028",
		Glyph:    "LS",
		LongName: "LINE SEPARATOR",
		Example: "Street address\u2028Postal code and city\n" +
			"(a line break that is not a new paragraph)",
		Usage: "Unicode line break that is not a paragraph break. " +
			"Some JSON encoders and browsers treat it as a line " +
			"terminator, so an unnoticed one breaks embedded scripts.",
	},
	{
		Rune:     '\u2029',
		Name:     "Paragraph Separator",
		Code:     "U+2029",
		Glyph:    "PS",
		LongName: "PARAGRAPH SEPARATOR",
		Example: "Terms of service, clause one.\u2029" +
			"Clause two begins a new paragraph.\n" +
			"(a hard paragraph break without a line feed)",
		Usage: "Explicit paragraph boundary emitted by some word " +
			"processors. Converting it to LF changes paragraph " +
			"styling on reimport.",
	},

	// --- Bidirectional controls ---
	{
		Rune:     '\u061C',
		Name:     "Arabic Letter Mark",
		Code:     "U+061C",
		Glyph:    "ALM",
		LongName: "ARABIC LETTER MARK",
		Example: "\u061C+971 4 123 4567 :الهاتف\n" +
			"(keeps the phone number ordered in Arabic context)",
		Usage: "Invisible Arabic-script anchor for weakly directional " +
			"characters. Omitting it reorders digits and plus signs " +
			"in Arabic phone numbers.",
	},
	{
		Rune:     '\u200E',
		Name:     "Left-To-Right Mark",
		Code:     "U+200E",
		Glyph:    "LRM",
		LongName: "LEFT-TO-RIGHT MARK",
		Example: "מחיר: 25.00\u200E $\n" +
			"(keeps \"$\" on the correct side in Hebrew text)",
		Usage: "Anchors neutral punctuation to LTR context inside RTL " +
			"text. Without it, trailing currency symbols and " +
			"parentheses jump to the wrong side.",
	},
	{
		Rune:     '\u200F',
		Name:     "Right-To-Left Mark",
		Code:     "U+200F",
		Glyph:    "RLM",
		LongName: "RIGHT-TO-LEFT MARK",
		Example: "پرونده\u200F.txt\n" +
			"(keeps the extension after the RTL filename)",
		Usage: "Anchors neutral characters to RTL context. Omitting " +
			"it displays mixed filenames and citations in scrambled " +
			"order.",
	},
	{
		Rune:     '\u202A',
		Name:     "Left-To-Right Embedding",
		Code:     "U+202A",
		Glyph:    "LRE",
		LongName: "LEFT-TO-RIGHT EMBEDDING",
		Example: "التقرير \u202AQ3 Revenue Summary\u202C جاهز\n" +
			"(embeds an English title in Arabic prose)",
		Usage: "Legacy embedding for an LTR phrase in RTL prose; must " +
			"be closed by PDF (U+202C). An unmatched embedding " +
			"corrupts the layout of everything after it.",
	},
	{
		Rune:     '\u202B',
		Name:     "Right-To-Left Embedding",
		Code:     "U+202B",
		Glyph:    "RLE",
		LongName: "RIGHT-TO-LEFT EMBEDDING",
		Example: "The phrase \u202Bمرحبا بالعالم\u202C appears inline.\n" +
			"(embeds Arabic in English prose)",
		Usage: "Legacy embedding for an RTL phrase in LTR prose. " +
			"Dropping the mark while keeping its PDF terminator " +
			"leaves an unbalanced bidi stack.",
	},
	{
		Rune:     '\u202C',
		Name:     "Pop Directional Formatting",
		Code:     "U+202C",
		Glyph:    "PDF",
		LongName: "POP DIRECTIONAL FORMATTING",
		Example: "\u202Bنص\u202C back to base direction.\n" +
			"(terminates the preceding embedding)",
		Usage: "Closes LRE/RLE/LRO/RLO. Deleting a PDF but not its " +
			"opener lets the embedding leak across the rest of the " +
			"string.",
	},
	{
		Rune:     '\u202D',
		Name:     "Left-To-Right Override",
		Code:     "U+202D",
		Glyph:    "LRO",
		LongName: "LEFT-TO-RIGHT OVERRIDE",
		Example: "Part code \u202DA-19-ب\u202C must read left to right.\n" +
			"(forces strict visual order)",
		Usage: "Forces LTR display regardless of character types; " +
			"used for part numbers mixing scripts. Also a known " +
			"spoofing vector, so every occurrence deserves review.",
	},
	{
		Rune:     '\u202E',
		Name:     "Right-To-Left Override",
		Code:     "U+202E",
		Glyph:    "RLO",
		LongName: "RIGHT-TO-LEFT OVERRIDE",
		Example: "invoice\u202Efdp.exe\n" +
			"(displays as \"invoiceexe.pdf\" — a spoofing classic)",
		Usage: "Forces RTL display of LTR text. Legitimate in rare " +
			"typesetting cases; in filenames and URLs it is almost " +
			"always an attack and must be flagged.",
	},
	{
		Rune:     '\u2066',
		Name:     "Left-To-Right Isolate",
		Code:     "U+2066",
		Glyph:    "LRI",
		LongName: "LEFT-TO-RIGHT ISOLATE",
		Example: "الرحلة \u2066LH-440\u2069 تقلع غداً\n" +
			"(isolates the flight number from Arabic context)",
		Usage: "Modern replacement for embeddings: isolates an LTR " +
			"run so it cannot reorder its RTL surroundings. Omission " +
			"lets flight codes and SKUs scramble adjacent text.",
	},
	{
		Rune:     '\u2067',
		Name:     "Right-To-Left Isolate",
		Code:     "U+2067",
		Glyph:    "RLI",
		LongName: "RIGHT-TO-LEFT ISOLATE",
		Example: "Reviewed by \u2067سارة\u2069 on Monday.\n" +
			"(isolates the Arabic name in English prose)",
		Usage: "Isolates an RTL run inside LTR text. Without it, " +
			"neighboring punctuation attaches to the wrong side of " +
			"the name.",
	},
	{
		Rune:     '\u2068',
		Name:     "First Strong Isolate",
		Code:     "U+2068",
		Glyph:    "FSI",
		LongName: "FIRST STRONG ISOLATE",
		Example: "User said: \u2068{user_message}\u2069\n" +
			"(direction decided by the substituted content)",
		Usage: "Isolates a run whose direction is unknown until " +
			"runtime, the correct wrapper for user-generated " +
			"placeholders. Omitting it lets one RTL comment reorder " +
			"the whole template.",
	},
	{
		Rune:     '\u2069',
		Name:     "Pop Directional Isolate",
		Code:     "U+2069",
		Glyph:    "PDI",
		LongName: "POP DIRECTIONAL ISOLATE",
		Example: "\u2066code\u2069 ends the isolate here.\n" +
			"(terminates LRI/RLI/FSI)",
		Usage: "Closes the matching isolate initiator. A missing PDI " +
			"extends the isolate to the end of paragraph and shifts " +
			"everything after it.",
	},

	// --- Byte order mark / word joiner ---
	{
		Rune:     '\uFEFF',
		Name:     "Byte Order Mark",
		Code:     "U+FEFF",
		Glyph:    "BOM",
		LongName: "ZERO WIDTH NO-BREAK SPACE",
		Example: "\uFEFFkey=value\n" +
			"(an invisible first character in an exported file)",
		Usage: "UTF-8 signature at file start; mid-string it is a " +
			"legacy word joiner. A stray BOM breaks exact-match " +
			"string comparison and shell shebang parsing.",
	},
	{
		Rune:     '\u2060',
		Name:     "Word Joiner",
		Code:     "U+2060",
		Glyph:    "WJ",
		LongName: "WORD JOINER",
		Example: "Model X\u20604 must not wrap between X and 4.\n" +
			"§\u20609 stays glued to its number.",
		Usage: "Zero-width no-break glue, the modern replacement for " +
			"mid-string BOM. Removing it allows product names and " +
			"section references to split across lines.",
	},
}
