package reservation

// ReservationType classifies the travel provider behind a booking.
type ReservationType string

const (
	TypeFlight     ReservationType = "flight"
	TypeHotel      ReservationType = "hotel"
	TypeRentalCar  ReservationType = "rentalCar"
	TypeActivity   ReservationType = "activity"
	TypeRestaurant ReservationType = "restaurant"
	TypeTrain      ReservationType = "train"
	TypeBus        ReservationType = "bus"
	TypeFerry      ReservationType = "ferry"
	TypeOther      ReservationType = "other"
)

func (rt ReservationType) String() string {
	return string(rt)
}

func (rt ReservationType) IsValid() bool {
	switch rt {
	case TypeFlight, TypeHotel, TypeRentalCar, TypeActivity, TypeRestaurant,
		TypeTrain, TypeBus, TypeFerry, TypeOther:
		return true
	default:
		return false
	}
}

// ReservationStatus tracks the booking lifecycle.
type ReservationStatus string

const (
	StatusNotBooked ReservationStatus = "notBooked"
	StatusPending   ReservationStatus = "pending"
	StatusConfirmed ReservationStatus = "confirmed"
	StatusPaid      ReservationStatus = "paid"
	StatusCancelled ReservationStatus = "cancelled"
	StatusCompleted ReservationStatus = "completed"
)

func (rs ReservationStatus) String() string {
	return string(rs)
}

func (rs ReservationStatus) IsValid() bool {
	switch rs {
	case StatusNotBooked, StatusPending, StatusConfirmed, StatusPaid,
		StatusCancelled, StatusCompleted:
		return true
	default:
		return false
	}
}

// IsSettled returns true once no further booking action is expected.
func (rs ReservationStatus) IsSettled() bool {
	return rs == StatusPaid || rs == StatusCancelled || rs == StatusCompleted
}

// GetAllReservationTypes returns all valid reservation types.
func GetAllReservationTypes() []ReservationType {
	return []ReservationType{
		TypeFlight, TypeHotel, TypeRentalCar, TypeActivity, TypeRestaurant,
		TypeTrain, TypeBus, TypeFerry, TypeOther,
	}
}

// GetAllReservationStatuses returns all valid reservation statuses.
func GetAllReservationStatuses() []ReservationStatus {
	return []ReservationStatus{
		StatusNotBooked, StatusPending, StatusConfirmed, StatusPaid,
		StatusCancelled, StatusCompleted,
	}
}
