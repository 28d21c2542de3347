// SPDX-License-Identifier: MIT

package generator

import "fmt"

// Kind selects a generative strategy.
type Kind int

const (
	// Independent draws every symbol from the unigram table.
	Independent Kind = 1
	// SymbolChain conditions each symbol on the previous one.
	SymbolChain Kind = 2
	// WordChain conditions each word on the previous one.
	WordChain Kind = 3
)

// Kinds lists every valid selector in order.
var Kinds = []Kind{Independent, SymbolChain, WordChain}

// ParseKind validates a numeric model selector.
func ParseKind(n int) (Kind, error) {
	k := Kind(n)
	if !k.Valid() {
		return 0, fmt.Errorf("got %d: %w", n, ErrInvalidKind)
	}
	return k, nil
}

// Valid reports whether k is one of the three models.
func (k Kind) Valid() bool { return k >= Independent && k <= WordChain }

// NeedsPairs reports whether the model uses symbol pair statistics.
func (k Kind) NeedsPairs() bool { return k == SymbolChain }

// NeedsWords reports whether the model uses word statistics.
func (k Kind) NeedsWords() bool { return k == WordChain }

// Separator returns the string placed between emitted units.
func (k Kind) Separator() string {
	if k == WordChain {
		return " "
	}
	return ""
}

func (k Kind) String() string {
	switch k {
	case Independent:
		return "independent"
	case SymbolChain:
		return "symbol-chain"
	case WordChain:
		return "word-chain"
	default:
		return fmt.Sprintf("Kind(%d)", int(k))
	}
}
