// Package language holds the heuristic that tells translated text apart from
// untranslated English.
//
// External catalogs with sparse Chinese metadata frequently answer a zh-CN
// request with the English string unchanged. IsEffectivelyEnglish catches that
// so reconciliation never records an English-looking value as a translation.
// It is a character-ratio heuristic, not language identification.
package language
