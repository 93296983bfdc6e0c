// Package dataprocessing contains the spreadsheet normalization pipeline that
// turns messy production-log rows into canonical ProductionRecord entries.
//
// The pipeline is a pure, single-pass batch transform: header labels are
// reduced to accent- and punctuation-insensitive skeletons, cell values are
// parsed through Brazilian-locale numeric and Excel-serial temporal rules,
// semantic columns are resolved through ordered label tables with fuzzy regex
// fallback, and derived metrics (downtime, operational hours, throughput) are
// computed with documented fallback chains. Every parser degrades to nil on
// malformed input; the only condition that drops a row is an unresolvable date.
package dataprocessing
