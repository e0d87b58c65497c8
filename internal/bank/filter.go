package bank

import "github.com/prepmate/prepmate/internal/taxonomy"

// Filter is the typed set of content constraints recognized when
// narrowing a candidate pool. Zero values mean "no constraint".
type Filter struct {
	Section    taxonomy.Section
	DomainID   string
	SkillIDs   []string
	Tier       DifficultyTier
	ExcludeIDs []string
}

// Relax returns a copy of the filter with the narrowest remaining
// content constraint removed: skills first, then tier, then domain.
// ok is false when nothing was left to relax.
func (f Filter) Relax() (Filter, bool) {
	switch {
	case len(f.SkillIDs) > 0:
		f.SkillIDs = nil
		return f, true
	case f.Tier != "":
		f.Tier = ""
		return f, true
	case f.DomainID != "":
		f.DomainID = ""
		return f, true
	}
	return f, false
}

// Matches reports whether an item satisfies the filter.
func (f Filter) Matches(it Item) bool {
	for _, id := range f.ExcludeIDs {
		if it.ID == id {
			return false
		}
	}
	if f.Tier != "" && it.Tier != f.Tier {
		return false
	}
	if len(f.SkillIDs) > 0 {
		found := false
		for _, id := range f.SkillIDs {
			if it.SkillID == id {
				found = true
				break
			}
		}
		if !found {
			return false
		}
	}
	if f.DomainID != "" {
		d, err := it.Domain()
		if err != nil || d.ID != f.DomainID {
			return false
		}
	}
	if f.Section != "" {
		sec, err := it.Section()
		if err != nil || sec != f.Section {
			return false
		}
	}
	return true
}

// Pool supplies filtered candidate items. The in-memory Bank and any
// store-backed implementation both satisfy it.
type Pool interface {
	Candidates(f Filter) []Item
}

// Bank is an in-memory item pool.
type Bank struct {
	items []Item
}

// NewBank creates a Bank over the given items.
func NewBank(items []Item) *Bank {
	return &Bank{items: items}
}

// Items returns all items in the bank.
func (b *Bank) Items() []Item {
	result := make([]Item, len(b.items))
	copy(result, b.items)
	return result
}

// Candidates returns the calibrated items matching the filter.
func (b *Bank) Candidates(f Filter) []Item {
	var result []Item
	for _, it := range b.items {
		if _, ok := it.Params(); !ok {
			continue
		}
		if f.Matches(it) {
			result = append(result, it)
		}
	}
	return result
}
