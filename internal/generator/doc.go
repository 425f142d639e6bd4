// Package generator turns a digit sequence into the dictionary nouns whose
// consonants spell it. It builds one regular expression per number and
// scans the whole dictionary text with it.
package generator
