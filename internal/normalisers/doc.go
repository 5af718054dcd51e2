// Package normalisers turns raw snippet files into domain documents.
// frontmatter splits and parses the leading metadata block; markdown loads
// a file and fills in titles, descriptions and tags from it.
package normalisers
