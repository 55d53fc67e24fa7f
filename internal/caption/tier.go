package caption

import "github.com/kosearch/subcollect/internal/model"

// tierDescriptions maps each tier to its human-readable ranking
var tierDescriptions = map[int]string{
	1: "Manual KR + Manual EN (Best)",
	2: "English → Translation (Good)",
	3: "Manual Korean only",
	4: "Auto Korean only (Low)",
}

// ClassifyTier maps a (korean, english) caption type pair to a priority tier.
// The rules are evaluated in order and the first match wins:
//
//	1: both tracks are manual
//	2: any English track exists (manual or auto), regardless of Korean
//	3: manual Korean with no English track at all
//	4: everything else
//
// Presence of an English track dominates once rule 1 is excluded; this is
// deliberate and not a "best available" heuristic.
func ClassifyTier(koType, enType model.CaptionType) int {
	switch {
	case koType == model.CaptionManual && enType == model.CaptionManual:
		return 1
	case enType == model.CaptionManual || enType == model.CaptionAuto:
		return 2
	case koType == model.CaptionManual:
		return 3
	default:
		return 4
	}
}

// TierDescription returns the ranking description for a tier, or empty string
func TierDescription(tier int) string {
	return tierDescriptions[tier]
}
