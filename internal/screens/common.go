package screens

// Route names one screen in the navigation stack.
type Route string

const (
	RouteGetStarted Route = "GetStarted"
	RouteLogin      Route = "DriverLoginAndSignUp"
	RouteMenu       Route = "DriverMenu"
	RouteProfile    Route = "DriverProfile"
	RouteRankboard  Route = "DriverRankboard"
	RouteCreateTrip Route = "DriverCreateTrip"
	RouteEditTrip   Route = "DriverEditTrip"
	RouteNavigation Route = "NavigationScreen"
	RouteBookings   Route = "DriverViewBookings"
)

// Notifier surfaces one-shot user notifications; every failure path
// returns control to an interactive screen through it.
type Notifier interface {
	Notify(title, message string)
}

// Navigator pushes and pops screens. Screens never hold each other
// directly; they only know route names.
type Navigator interface {
	Navigate(route Route)
	GoBack()
}
