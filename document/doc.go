// Package document implements the line-structured document model behind
// bland's live markdown editing.
//
// A Document is an ordered sequence of Lines. Each Line carries an explicit
// Kind derived from its text prefix, an optional syntax marker holding the
// matched prefix ("# ", "- ", ...), and the remaining content as one or more
// text spans. Reformatting a line rewrites that structure; the cursor is kept
// as a logical grapheme column over the line's full raw text and is only
// translated to (node, offset) carets at the boundary.
//
// Coordinates are 0-based (Row, Col) in grapheme clusters.
package document
