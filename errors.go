package parcelindex

// DestinationNotFound - Custom error to inform that no parcels were found for a destination
type DestinationNotFound struct {
	msg string
}

// Error - Used to notify that the destination was not found
func (E DestinationNotFound) Error() string {
	if E.msg == "" {
		return "destination not found"
	}
	return E.msg
}

// Is - Matches any DestinationNotFound regardless of message, so errors.Is(err, DestinationNotFound{}) works
// also for errors carrying the destination in their message
func (E DestinationNotFound) Is(target error) bool {
	_, ok := target.(DestinationNotFound)
	return ok
}

// InvalidParcel - Custom error to inform that a parcel was refused before reaching the index
type InvalidParcel struct {
	msg string
}

// Error - Used to notify that the parcel was refused
func (E InvalidParcel) Error() string {
	if E.msg == "" {
		return "invalid parcel"
	}
	return E.msg
}

// Is - Matches any InvalidParcel regardless of message
func (E InvalidParcel) Is(target error) bool {
	_, ok := target.(InvalidParcel)
	return ok
}
