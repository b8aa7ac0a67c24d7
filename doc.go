// Package wikifmt renders game text templates as display text or wiki
// markup.
//
// Templates are authored by game designers and reference runtime
// arguments positionally. The central entry points are [Formatter.Format]
// for plain text with arguments and [Formatter.FormatWiki] for static text
// destined for a wiki page.
//
// # Placeholders
//
// A placeholder is "#" followed by a 1-based argument index, an optional
// modifier and an optional "%":
//
//	#1        raw form
//	#1[i]     integer with thousands separators
//	#1[f2]    float rounded to 2 digits ("[f]" means 0 digits)
//	#1[i]%    any form with "%": numeric values are scaled by 100
//
// Anything else, including a "#" without digits, is copied through. A
// placeholder whose index is outside the argument list fails with
// [ErrPlaceholderIndexOutOfRange]; this is the only error FormatPlain returns.
//
//	s, err := wikifmt.FormatPlain("Deals #1[i]% damage", wikifmt.Uint(uint32(125)))
//	// s == "Deals 12,500% damage"
//
// # Values
//
// Arguments are [Value]s: [Text], [Signed], [Unsigned] or [Floating].
// Use [Int], [Uint] and [Float] to widen Go numbers, [OptionalUint] for
// the "absent means zero" storage idiom, and [ValueOf] for dynamic input.
// Rounding is half away from zero and always happens at render time.
//
// # Wiki Mode
//
// FormatWiki rewrites the rich-text tags of a [Vocabulary] into wiki
// markup (or strips them when [Config.MediaWikiSyntax] is false). The
// default vocabulary knows b, i, color, u, quote and join:
//
//	<u>Burn</u>          {{Tooltip|Burn}} when Burn is a glossary term
//	<color=#f00>x</color> <span style="color:#ff0000">x</span>
//	<join=1>             the default phrasing of text join 1
//
// Glossary membership and text joins come from a caller supplied
// [GameData]; [Glossary] is an in-memory implementation loadable from YAML
// with [LoadGlossary]. Implement [TermLinker] to control link markup.
//
// # Batches
//
// [LoadRequests] reads a YAML list of [Request]s, [Formatter.RenderAll]
// renders them, and [Write] or [WriteIter] export the resulting
// [Entry] values as plain, json, jsonl, yaml, csv, tsv, markdown,
// wikitable, table, properties or go-template=<tmpl> output.
package wikifmt
