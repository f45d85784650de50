// Package tier classifies energy consumption into discrete voltage tiers.
//
// A Table holds one EU/t ceiling per tier. Lookups pick the lowest tier
// whose ceiling covers the value, with ties going to the lower tier and
// values beyond the last ceiling clamped to the top tier:
//
//	t, _ := tier.NewTable([]int64{32, 128, 512, 2048})
//	t.TierFor(480)   // 2
//	t.TierFor(9000)  // 3 (clamped)
//
// Default returns the GregTech table (ULV through MAX).
package tier
