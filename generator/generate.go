// SPDX-License-Identifier: MIT

package generator

import (
	"fmt"
	"strings"

	"github.com/katalvlaran/lvtext/sampler"
)

// Sequence is the result of one generation run.
type Sequence struct {
	Kind     Kind
	Units    []string
	Text     string
	Restarts int
}

// Generate produces exactly n units from m. A nil sampler is replaced by a
// clock-seeded one.
//
// Errors: ErrNilModel, ErrLength, ErrContinuity, and sampler errors.
// Complexity: O(n · k log k) for k candidates per draw.
func Generate(m Model, n int, s *sampler.Sampler) (*Sequence, error) {
	if m == nil {
		return nil, ErrNilModel
	}
	if n <= 1 {
		return nil, fmt.Errorf("got %d: %w", n, ErrLength)
	}
	if s == nil {
		s = sampler.New()
	}

	seq := &Sequence{Kind: m.Kind(), Units: make([]string, 0, n)}
	var err error
	if m.chained() {
		err = walkChain(m, n, s, seq)
	} else {
		err = drawIndependent(m, n, s, seq)
	}
	if err != nil {
		return nil, err
	}
	seq.Text = strings.Join(seq.Units, m.Kind().Separator())

	return seq, nil
}

func drawIndependent(m Model, n int, s *sampler.Sampler, seq *Sequence) error {
	for len(seq.Units) < n {
		l, err := m.first(s)
		if err != nil {
			return err
		}
		seq.Units = append(seq.Units, m.unit(l.head))
	}
	return nil
}

// walkChain emits the seed pair, then the second unit of every following pair.
func walkChain(m Model, n int, s *sampler.Sampler, seq *Sequence) error {
	seed := func() (link, error) {
		l, err := m.first(s)
		if err != nil {
			return link{}, err
		}
		seq.Units = append(seq.Units, m.unit(l.head))
		if len(seq.Units) < n {
			seq.Units = append(seq.Units, m.unit(l.tail))
		}
		return l, nil
	}

	cur, err := seed()
	if err != nil {
		return err
	}
	for len(seq.Units) < n {
		nxt, ok, err := m.next(s, cur)
		if err != nil {
			return err
		}
		if !ok {
			seq.Restarts++
			if cur, err = seed(); err != nil {
				return err
			}
			continue
		}
		if nxt.head != cur.tail {
			return fmt.Errorf("%q then %q: %w", m.unit(cur.tail), m.unit(nxt.head), ErrContinuity)
		}
		if !m.follows(nxt.head, nxt.tail) {
			return fmt.Errorf("%q never followed %q: %w", m.unit(nxt.tail), m.unit(nxt.head), ErrContinuity)
		}
		seq.Units = append(seq.Units, m.unit(nxt.tail))
		cur = nxt
	}

	return nil
}
