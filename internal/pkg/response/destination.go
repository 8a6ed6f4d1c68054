package response

// Destination names the screen a client should show next.
// Clients map these to their own routes.
type Destination string

const (
	DestHome          Destination = "home"
	DestLogin         Destination = "login"
	DestBookingDetail Destination = "booking_detail"
	DestMyBookings    Destination = "my_bookings"
	DestCheckout      Destination = "checkout"
	DestDemoPay       Destination = "demo_pay"
)
