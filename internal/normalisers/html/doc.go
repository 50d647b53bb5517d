// Package html reads contracts saved as web pages. Script, style and head
// elements are dropped; block elements become line breaks.
package html
