package booking

// IsAvailable reports whether the candidate interval conflicts with none of
// the room's existing booked intervals. Pure predicate: it performs no
// storage access and mutates nothing.
//
// The seven conflict conditions below are kept exactly as the reference
// behavior defines them. Condition 2 rejects any candidate whose check-out
// precedes the existing check-out, which also covers candidates lying wholly
// BEFORE the existing interval; that is broader than a plain overlap test.
// Do not reduce these to the textbook half-open interval check without a
// product decision.
func IsAvailable(candidate StayInterval, existing []StayInterval) bool {
	for _, booked := range existing {
		if conflicts(candidate, booked) {
			return false
		}
	}
	return true
}

func conflicts(candidate, booked StayInterval) bool {
	// 1. Exact check-in date match
	return candidate.checkIn.Equal(booked.checkIn) ||

		// 2. Candidate check-out strictly precedes existing check-out
		candidate.checkOut.Before(booked.checkOut) ||

		// 3. Candidate check-in strictly inside the existing interval
		(candidate.checkIn.After(booked.checkIn) &&
			candidate.checkIn.Before(booked.checkOut)) ||

		// 4. Candidate starts before and ends exactly at existing check-out
		(candidate.checkIn.Before(booked.checkIn) &&
			candidate.checkOut.Equal(booked.checkOut)) ||

		// 5. Candidate fully envelops the existing interval
		(candidate.checkIn.Before(booked.checkIn) &&
			candidate.checkOut.After(booked.checkOut)) ||

		// 6. Back-to-back reversed match
		(candidate.checkIn.Equal(booked.checkOut) &&
			candidate.checkOut.Equal(booked.checkIn)) ||

		// 7. Degenerate same-day candidate starting at existing check-out
		(candidate.checkIn.Equal(booked.checkOut) &&
			candidate.checkOut.Equal(candidate.checkIn))
}
