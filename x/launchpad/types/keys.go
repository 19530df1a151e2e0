package types

const (
	// ModuleName defines the module name
	ModuleName = "launchpad"

	// StoreKey defines the primary module store key
	StoreKey = ModuleName

	// MemStoreKey defines the in-memory store key
	MemStoreKey = "mem_" + ModuleName

	// RouterKey defines the module's message routing key
	RouterKey = ModuleName

	// QuerierRoute defines the module's query routing key
	QuerierRoute = ModuleName
)

// VenueKind selects the liquidity venue a campaign finalizes into.
const (
	VenueKindPair         = "pair"
	VenueKindConcentrated = "concentrated"
	VenueKindSingleton    = "singleton"
)

// ValidVenueKind reports whether kind names a supported liquidity venue.
func ValidVenueKind(kind string) bool {
	switch kind {
	case VenueKindPair, VenueKindConcentrated, VenueKindSingleton:
		return true
	}
	return false
}
