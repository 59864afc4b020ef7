// README: Index-aligned merge of partial day updates into a running itinerary.
package itinerary

// MergeDays applies a partial update to the caller-owned running itinerary:
// day i in the update replaces day i in the running state, and days beyond
// the current length are appended. The update is copied, never aliased.
func MergeDays(dst *Itinerary, update PartialUpdate) {
	for i, day := range update.Days {
		if i < len(dst.Days) {
			dst.Days[i] = day
		} else {
			dst.Days = append(dst.Days, day)
		}
	}
}
