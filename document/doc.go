// Package document implements the pure, linear-offset document model for
// inkwell.
//
// Every node occupies an open and a close position in the linear model. The
// root is the exception: it spans the whole model without wrapping positions.
// Content nodes (paragraphs, headings, preformatted blocks) are the leaves;
// each of their characters carries an AnnotationSet.
//
// Offsets are 0-based positions between linear items. Ranges are half-open
// over items: [Start, End).
package document
