package entity

type Train struct {
	ID             int64  `db:"id" json:"id"`
	Name           string `db:"name" json:"name"`
	Route          string `db:"route" json:"route"`
	TotalSeats     int    `db:"total_seats" json:"total_seats"`
	AvailableSeats int    `db:"available_seats" json:"available_seats"`
	Fare           int64  `db:"fare" json:"fare"`
	Departure      string `db:"departure" json:"departure"`
	Arrival        string `db:"arrival" json:"arrival"`
}

// Valid reports whether the id, seat counters and fare are within range.
func (t Train) Valid() bool {
	return t.ID > 0 &&
		t.TotalSeats >= 0 &&
		t.AvailableSeats >= 0 &&
		t.AvailableSeats <= t.TotalSeats &&
		t.Fare > 0
}

func DemoTrains() []Train {
	return []Train{
		{ID: 101, Name: "Express A", Route: "Delhi to Mumbai", TotalSeats: 100, AvailableSeats: 85, Fare: 1500, Departure: "08:00 AM", Arrival: "08:00 PM"},
		{ID: 102, Name: "Express B", Route: "Mumbai to Bangalore", TotalSeats: 80, AvailableSeats: 45, Fare: 1200, Departure: "10:00 AM", Arrival: "08:00 PM"},
		{ID: 103, Name: "Express C", Route: "Bangalore to Chennai", TotalSeats: 120, AvailableSeats: 60, Fare: 900, Departure: "06:00 AM", Arrival: "02:00 PM"},
	}
}
