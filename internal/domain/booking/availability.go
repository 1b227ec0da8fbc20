package booking

// IsAvailable reports whether a hotel can take one more booking for a
// date, given its capacity and the count of bookings already persisted
// for that exact hotel+date pair. A capacity of 0 is never available.
func IsAvailable(capacity, existingCount int) bool {
	return existingCount < capacity
}

// CanAcceptBooking is the acceptance gate used before persisting a new
// booking. The check is advisory: the data layer must re-verify it inside
// the same transaction that inserts the booking.
func CanAcceptBooking(capacity, existingCount int) bool {
	return IsAvailable(capacity, existingCount)
}
