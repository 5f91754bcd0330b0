// Package blacklist holds the fixed set of member names whose change
// notifications are always suppressed.
//
// The names fall into two groups: aliases of a canonical networked field
// (marking both would replicate the same bytes twice), and fields the host
// only changes through its own validated paths (item identity, ownership,
// competitive rank). The set is built once at init and cannot be modified.
package blacklist

import "sort"

var names = [...]string{
	"m_bIsValveDS",
	"m_bIsQuestEligible",
	"m_iItemDefinitionIndex", // cannot be set outside the host item system
	"m_iEntityLevel",
	"m_iItemIDHigh",
	"m_iItemIDLow",
	"m_iAccountID",
	"m_iEntityQuality",

	"m_bInitialized",
	"m_szCustomName",
	"m_iAttributeDefinitionIndex",
	"m_iRawValue32",
	"m_iRawInitialValue32",
	"m_flValue",        // network alias of m_iRawValue32
	"m_flInitialValue", // network alias of m_iRawInitialValue32
	"m_bSetBonus",
	"m_nRefundableCurrency",

	"m_OriginalOwnerXuidLow",
	"m_OriginalOwnerXuidHigh",

	"m_nFallbackPaintKit",
	"m_nFallbackSeed",
	"m_flFallbackWear",
	"m_nFallbackStatTrak",

	"m_iCompetitiveWins",
	"m_iCompetitiveRanking",
	"m_iCompetitiveRankType",
	"m_iCompetitiveRankingPredicted_Win",
	"m_iCompetitiveRankingPredicted_Loss",
	"m_iCompetitiveRankingPredicted_Tie",

	"m_nActiveCoinRank",
	"m_nMusicID",
}

var set = func() map[string]struct{} {
	m := make(map[string]struct{}, len(names))
	for _, n := range names {
		m[n] = struct{}{}
	}
	return m
}()

// Contains reports whether notifications for the named member are suppressed.
// Matching is exact and case-sensitive, like the host's member names.
func Contains(name string) bool {
	_, ok := set[name]
	return ok
}

// Len returns the number of suppressed names.
func Len() int { return len(set) }

// Names returns a sorted copy of the suppressed names.
func Names() []string {
	out := make([]string, len(names))
	copy(out, names[:])
	sort.Strings(out)
	return out
}
