package entities

import "strings"

// LinenCatalog is the static linen type lookup supplied by the configuration layer.
//
// Aliases maps the free-text item names captured at collection ("drap", "serviette")
// to linen type ids. Names are matched case-insensitively.
type LinenCatalog struct {
	Types          []LinenType
	Aliases        map[string]string
	DefaultAliasID string

	byID map[string]LinenType
}

func NewLinenCatalog(types []LinenType, aliases map[string]string, defaultAliasID string) *LinenCatalog {
	c := &LinenCatalog{
		Types:          types,
		Aliases:        make(map[string]string, len(aliases)),
		DefaultAliasID: defaultAliasID,
		byID:           make(map[string]LinenType, len(types)),
	}
	for _, t := range types {
		c.byID[t.ID] = t
	}
	for name, id := range aliases {
		c.Aliases[strings.ToLower(strings.TrimSpace(name))] = id
	}
	return c
}

func (c *LinenCatalog) Lookup(id string) (LinenType, bool) {
	if c == nil {
		return LinenType{}, false
	}
	t, ok := c.byID[id]
	return t, ok
}

// CategoryOf returns the category of a linen type, falling back to DefaultLinenCategory.
func (c *LinenCatalog) CategoryOf(id string) LinenCategory {
	t, ok := c.Lookup(id)
	if !ok || !t.Category.IsValid() {
		return DefaultLinenCategory
	}
	return t.Category
}

// ResolveAlias maps a collected item name to a linen type id.
// Unknown names resolve to DefaultAliasID; ok reports whether the name was known.
func (c *LinenCatalog) ResolveAlias(name string) (id string, ok bool) {
	if c == nil {
		return "", false
	}
	if id, found := c.Aliases[strings.ToLower(strings.TrimSpace(name))]; found {
		return id, true
	}
	return c.DefaultAliasID, false
}

// EstimateWeightGrams returns pieces × average weight of the type (500 g when unknown).
func (c *LinenCatalog) EstimateWeightGrams(id string, pieces int) int64 {
	if pieces <= 0 {
		return 0
	}
	avg := DefaultPieceWeightGrams
	if t, ok := c.Lookup(id); ok && t.AverageWeightGrams > 0 {
		avg = t.AverageWeightGrams
	}
	return avg * int64(pieces)
}
