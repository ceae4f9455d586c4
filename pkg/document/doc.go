// Package document provides the parsed representation of a markdown input:
// front-matter fields decoded from the leading YAML block plus the body
// that remains. Workflows consume ParsedDocument values read-only.
package document
