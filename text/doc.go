// Package text provides the text handling shared by deck builders and
// exporters.
//
// # Normalisation
//
// Slide text often arrives from scripts or definition files that went
// through the wrong code page on the way. [RepairMojibake] reverses UTF-8
// that was decoded as Mac Roman (for example "‚Ä¢" back to "•"), and
// [Normalize] additionally applies Unicode NFC so that composed and
// decomposed accents compare equal:
//
//	title := text.Normalize(raw)
//
// # Direction
//
// [DetectDirection] reports the dominant writing direction of a string so
// exporters can mark right-to-left paragraphs.
//
// # Measurement
//
// [EstimateWidth] and [CountLines] approximate how much room a string needs
// at a given font size. They are heuristics based on glyph classes, not font
// metrics, and are meant for layout warnings rather than typesetting.
package text
