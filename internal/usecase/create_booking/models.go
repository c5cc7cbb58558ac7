package create_booking

import "github.com/jaysonsaraujo/phm-app/internal/domain"

// Request запрос на создание бронирования венчания
type Request struct {
	Date        string // YYYY-MM-DD
	Time        string // HH:MM
	LocationID  int64
	CelebrantID int64
	BrideName   string
	BridePhone  string
	GroomName   string
	GroomPhone  string
	Notes       *string
}

// Response результат создания бронирования
type Response struct {
	Booking *domain.Booking
}
