// Package pdfdoc models a formatted text document as an in-memory tree of
// sections, paragraphs and styled runs.
//
// The tree is built once, through a Builder, then treated as immutable.
// Two serializers walk it: package docjson persists it as round-trippable
// JSON, and package render lays it out into pages of drawing commands for
// an external graphics backend (package fpdfback provides one).
//
// Styles inherit by field-wise override: a run's effective style is the
// document default style, overridden by the paragraph style, overridden
// by the run style. Unset fields fall through to the next outer level.
//
// Example:
//
//	doc := pdfdoc.NewBuilder(nil).
//	    AddParagraph(pdfdoc.Style{}.WithAlign(pdfdoc.AlignLeft)).
//	    AddRun("Hello ", pdfdoc.Style{}.WithWeight(pdfdoc.WeightBold)).
//	    AddText("World").
//	    Document()
//
// A document and its builder are confined to a single goroutine for
// their entire lifetime; nothing in this module locks.
package pdfdoc
