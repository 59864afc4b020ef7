// README: Monthly AI message allowance definitions.
package quota

import "errors"

// ErrQuotaExceeded is returned when a user has no AI messages left this month.
var ErrQuotaExceeded = errors.New("monthly message quota exceeded")

// DefaultMessages is the number of AI requests granted per calendar month.
// Both chat turns and itinerary generations consume one each.
const DefaultMessages = 200
