// Package connectors holds the sources snippets are discovered from.
// The filesystem connector walks snippet folders and watches them for
// changes.
package connectors
