package isa

import (
	"iter"
	"slices"
	"strings"
)

// Catalog is the process-wide, read-only registry of instruction-variant
// descriptors and aliases. It is constructed once at startup and never
// mutated.
type Catalog struct {
	tables  []GroupTable
	opcodes map[string]*Descriptor
	aliases map[string]*Alias
}

// NewCatalog builds a catalog from group tables and an alias table.
// Construction validates every data-model invariant: field windows in range
// and disjoint, mnemonics unique (case-insensitive), alias bases present.
// Any failure is a configuration error that should abort startup.
func NewCatalog(tables []GroupTable, aliases []Alias) (cat *Catalog, err error) {
	cat = &Catalog{
		tables:  tables,
		opcodes: make(map[string]*Descriptor),
		aliases: make(map[string]*Alias),
	}

	for ng := range tables {
		table := &tables[ng]
		for nd := range table.Entries {
			desc := &table.Entries[nd]
			desc.Group = table.Group

			err = desc.validate()
			if err != nil {
				return
			}

			key := strings.ToUpper(desc.Name)
			_, dup := cat.opcodes[key]
			if dup {
				err = &ErrDescriptor{Name: desc.Name, Err: ErrDuplicateMnemonic(desc.Name)}
				return
			}
			cat.opcodes[key] = desc
		}
	}

	for na := range aliases {
		alias := &aliases[na]
		key := strings.ToUpper(alias.Name)
		_, dup := cat.aliases[key]
		if !dup {
			_, dup = cat.opcodes[key]
		}
		if dup {
			err = &ErrDescriptor{Name: alias.Name, Err: ErrDuplicateMnemonic(alias.Name)}
			return
		}
		base, ok := cat.opcodes[strings.ToUpper(alias.BaseOp)]
		if !ok {
			err = &ErrDescriptor{Name: alias.Name, Err: ErrAliasBase(alias.BaseOp)}
			return
		}
		for field := range alias.Locks {
			_, ok = base.Field(field)
			if !ok {
				err = &ErrDescriptor{Name: alias.Name, Err: ErrFieldWindow(field)}
				return
			}
		}
		cat.aliases[key] = alias
	}

	return
}

// Lookup finds a descriptor by mnemonic, case-insensitively.
func (cat *Catalog) Lookup(mnemonic string) (desc *Descriptor, err error) {
	desc, ok := cat.opcodes[strings.ToUpper(mnemonic)]
	if !ok {
		err = ErrUnknownOpcode(mnemonic)
	}
	return
}

// LookupAlias finds an alias by mnemonic, case-insensitively.
func (cat *Catalog) LookupAlias(mnemonic string) (alias *Alias, err error) {
	alias, ok := cat.aliases[strings.ToUpper(mnemonic)]
	if !ok {
		err = ErrUnknownAlias(mnemonic)
	}
	return
}

// ByGroup returns the group's descriptors in declaration order.
func (cat *Catalog) ByGroup(group Group) (descs []*Descriptor) {
	for ng := range cat.tables {
		table := &cat.tables[ng]
		if table.Group != group {
			continue
		}
		for nd := range table.Entries {
			descs = append(descs, &table.Entries[nd])
		}
	}
	return
}

// GroupByName finds a group tag by name, case-insensitively.
func (cat *Catalog) GroupByName(name string) (group Group, err error) {
	for _, table := range cat.tables {
		if strings.EqualFold(table.Group.String(), name) {
			group = table.Group
			return
		}
	}
	err = ErrUnknownGroup(name)
	return
}

// All iterates groups and their descriptors in declaration order.
func (cat *Catalog) All() iter.Seq2[Group, []*Descriptor] {
	return func(yield func(Group, []*Descriptor) bool) {
		for _, table := range cat.tables {
			if !yield(table.Group, cat.ByGroup(table.Group)) {
				return
			}
		}
	}
}

// Opcodes returns all canonical mnemonics, sorted.
func (cat *Catalog) Opcodes() (names []string) {
	for _, desc := range cat.opcodes {
		names = append(names, desc.Name)
	}
	slices.Sort(names)
	return
}

// Resolve rewrites a mnemonic through the alias table. A mnemonic without an
// alias entry is returned unchanged (upper-cased) with the caller locks
// untouched. An alias resolves to its base mnemonic with the alias locks
// merged in; a caller lock always wins over an alias lock for the same
// field.
func (cat *Catalog) Resolve(mnemonic string, callerLocks Locks) (canonical string, merged Locks) {
	canonical = strings.ToUpper(mnemonic)

	alias, ok := cat.aliases[canonical]
	if !ok {
		merged = callerLocks
		return
	}

	canonical = strings.ToUpper(alias.BaseOp)
	merged = callerLocks.Clone()
	for field, value := range alias.Locks {
		_, held := merged[field]
		if !held {
			merged[field] = value
		}
	}

	return
}
