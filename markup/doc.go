// Package markup converts between Markdown and documents.
//
// Parse reads CommonMark with goldmark and keeps what the document model
// can hold: headings, paragraphs, code blocks and flat lists with nesting
// recorded as a style stack, plus bold, italic, code and link marks.
// Write renders a document back to Markdown.
package markup
