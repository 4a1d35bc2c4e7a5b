package uspoof

import (
	"sync"

	"github.com/haukened/idn-display/internal/idn/uset"
)

//go:generate go run maketables.go -version 15.0.0 -output tables.go

var recommendedSet = sync.OnceValue(func() *uset.Set {
	return uset.NewBuilder().AddTable(recommendedTable).Freeze()
})

var inclusionSet = sync.OnceValue(func() *uset.Set {
	return uset.NewBuilder().AddTable(inclusionTable).Freeze()
})

// RecommendedSet returns the frozen set of scalars recommended for use in
// identifiers: UTS #39 Identifier_Status=Allowed minus the Inclusion type.
// Technical, obsolete and uncommon-use scalars of recommended scripts are
// not members. It is computed once and shared.
func RecommendedSet() *uset.Set { return recommendedSet() }

// InclusionSet returns the frozen set of scalars in the identifier inclusion list.
func InclusionSet() *uset.Set { return inclusionSet() }
