// Package versions compares tolerant dotted version strings and checks
// installed tools against the minimums declared in the version manifest.
//
// Tool output is not standardized ("go version go1.24.1 linux/amd64",
// "v20.1.0", "git version 2.43.0"), so extraction and comparison are
// deliberately forgiving: a leading letter tag is stripped, missing
// trailing segments count as zero and pre-release or build suffixes do
// not take part in ordering.
package versions
