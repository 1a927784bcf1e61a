// SPDX-License-Identifier: MIT
// Package: blossomtrace/builder
//
// id_fn.go - vertex ID schemes.
package builder

import (
	"fmt"
	"strconv"
	"strings"
)

// IDFn generates a vertex identifier from its zero-based index.
// It must be pure: the same idx always yields the same string.
type IDFn func(idx int) string

// DefaultIDFn returns the decimal string of idx, e.g. 0→"0", 42→"42".
func DefaultIDFn(idx int) string {
	return strconv.Itoa(idx)
}

// SymbolIDFn returns the uppercase Latin letter for idx in [0..25].
// Panics outside that range.
func SymbolIDFn(idx int) string {
	if idx < 0 || idx > 25 {
		panic(fmt.Sprintf("SymbolIDFn: idx must be in [0,25], got %d", idx))
	}

	return string('A' + rune(idx))
}

// ExcelColumnIDFn returns the spreadsheet column name for idx:
// 0→"A", 25→"Z", 26→"AA". Panics if idx < 0.
// Complexity: O(log26 idx).
func ExcelColumnIDFn(idx int) string {
	if idx < 0 {
		panic(fmt.Sprintf("ExcelColumnIDFn: idx must be ≥ 0, got %d", idx))
	}
	var runes []rune
	for i := idx; i >= 0; i = i/26 - 1 {
		runes = append(runes, rune('A'+(i%26)))
	}
	for i, j := 0, len(runes)-1; i < j; i, j = i+1, j-1 {
		runes[i], runes[j] = runes[j], runes[i]
	}

	return string(runes)
}

// AlphanumericIDFn returns idx in base 36: 10→"a", 36→"10". Panics if idx < 0.
func AlphanumericIDFn(idx int) string {
	if idx < 0 {
		panic(fmt.Sprintf("AlphanumericIDFn: idx must be ≥ 0, got %d", idx))
	}

	return strconv.FormatInt(int64(idx), 36)
}

// HexIDFn returns idx in lowercase hexadecimal. Panics if idx < 0.
func HexIDFn(idx int) string {
	if idx < 0 {
		panic(fmt.Sprintf("HexIDFn: idx must be ≥ 0, got %d", idx))
	}

	return strconv.FormatInt(int64(idx), 16)
}

// PrefixIDFn returns prefix + decimal index, e.g. "v0", "v1", ...
func PrefixIDFn(prefix string) IDFn {
	return func(idx int) string {
		return prefix + strconv.Itoa(idx)
	}
}

// OneBasedIDFn returns the decimal string of idx+1, so vertices read 1..n.
func OneBasedIDFn(idx int) string {
	return strconv.Itoa(idx + 1)
}

// IDScheme resolves a scheme name to an IDFn:
// "decimal", "one", "symbol", "excel", "alnum", "hex", or "prefix:<p>".
func IDScheme(name string) (IDFn, error) {
	switch name {
	case "", "decimal":
		return DefaultIDFn, nil
	case "one":
		return OneBasedIDFn, nil
	case "symbol":
		return SymbolIDFn, nil
	case "excel":
		return ExcelColumnIDFn, nil
	case "alnum":
		return AlphanumericIDFn, nil
	case "hex":
		return HexIDFn, nil
	}
	if p, ok := strings.CutPrefix(name, "prefix:"); ok && p != "" {
		return PrefixIDFn(p), nil
	}

	return nil, fmt.Errorf("IDScheme(%q): %w", name, ErrConstructFailed)
}

// WithSymbolIDs sets the ID scheme to SymbolIDFn.
func WithSymbolIDs() BuilderOption { return WithIDScheme(SymbolIDFn) }

// WithExcelColumnIDs sets the ID scheme to ExcelColumnIDFn.
func WithExcelColumnIDs() BuilderOption { return WithIDScheme(ExcelColumnIDFn) }

// WithOneBasedIDs sets the ID scheme to OneBasedIDFn.
func WithOneBasedIDs() BuilderOption { return WithIDScheme(OneBasedIDFn) }

// WithPrefixIDs sets the ID scheme to PrefixIDFn(prefix).
func WithPrefixIDs(prefix string) BuilderOption { return WithIDScheme(PrefixIDFn(prefix)) }
