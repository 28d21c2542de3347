// SPDX-License-Identifier: MIT

// Package alphabet defines the set of symbols a text model accepts and the
// subset of those symbols treated as letters.
//
// 🚀 What is an Alphabet?
//
//	An ordered, de-duplicated list of runes. The first K entries are letters
//	(they may appear inside words); the rest are "others" such as punctuation
//	and whitespace, which the counter replaces with a space when it builds the
//	cleaned text used for word statistics.
//
// ✨ Key properties:
//   - Letters ⊆ Symbols by construction.
//   - The byte-order mark (U+FEFF) is never a symbol.
//   - Line breaks of a definition source are layout, not symbols.
//   - Enumeration order is the definition order and is used as the fixed row
//     and column order of symbol transition tables.
//
// ⚙️ Usage:
//
//	a, err := alphabet.ParseLanguage(f, alphabet.Danish)
//	if err != nil { ... }
//	a.IsLetter('æ') // true
//
// Complexity: parsing is O(n) in the definition length; lookups are O(1).
package alphabet
