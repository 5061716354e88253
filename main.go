package main

import (
	"bufio"
	"context"
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"

	"driverapp/internal/api"
	"driverapp/internal/config"
	"driverapp/internal/domain/models"
	"driverapp/internal/geo"
	"driverapp/internal/screens"
	"driverapp/internal/services"
	"driverapp/internal/session"
	"driverapp/internal/utils"
)

func main() {
	env, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}
	utils.SetLogLevel(env.LogLevel)

	store, err := session.Open(env.SessionFile)
	if err != nil {
		log.Fatalf("failed to open session store: %v", err)
	}

	app := newApp(env, store)
	app.shell.Start()
	app.run()
}

// app is the terminal front end: it owns the screen stack and doubles
// as the Notifier/Navigator the screens are wired with.
type app struct {
	in    *bufio.Scanner
	stack []screens.Route

	env     config.Env
	session *session.Store

	shell    *screens.Shell
	login    *screens.LoginScreen
	menu     *screens.MenuScreen
	profile  *screens.ProfileScreen
	rank     *screens.RankboardScreen
	form     *screens.TripFormScreen
	trips    *screens.TripListScreen
	bookings *screens.BookingListScreen
	navview  *screens.NavigationScreen
}

func newApp(env config.Env, store *session.Store) *app {
	a := &app{
		in:      bufio.NewScanner(os.Stdin),
		env:     env,
		session: store,
	}

	client := api.New(env.APIBaseURL, store, env.Timeout())
	geocoder := &geo.Geocoder{BaseURL: env.GeocodeURL, APIKey: env.MapsAPIKey}
	places := &geo.Places{BaseURL: env.PlacesURL, APIKey: env.MapsAPIKey}
	directions := &geo.Directions{BaseURL: env.DirectionsURL, APIKey: env.MapsAPIKey}
	picker := &screens.LocationPicker{Geocoder: geocoder, Places: places, Notifier: a}

	a.shell = &screens.Shell{Session: store, Nav: a}
	a.login = screens.NewLoginScreen(client, store, a, a)
	a.menu = &screens.MenuScreen{Session: store, Notifier: a, Nav: a}
	a.profile = &screens.ProfileScreen{Session: store, Nav: a}
	a.rank = &screens.RankboardScreen{Provider: screens.StaticRankboard{}, Nav: a}
	a.form = &screens.TripFormScreen{API: client, Session: store, Notifier: a, Nav: a, Picker: picker}
	a.trips = &screens.TripListScreen{API: client, Session: store, Notifier: a, Nav: a}
	a.bookings = &screens.BookingListScreen{API: client, Notifier: a, Nav: a, Docs: services.DocsService{}}
	a.navview = &screens.NavigationScreen{Directions: directions, Notifier: a, Nav: a}
	return a
}

// Notify implements screens.Notifier.
func (a *app) Notify(title, message string) {
	fmt.Printf("\n[%s] %s\n", title, message)
}

// Navigate implements screens.Navigator.
func (a *app) Navigate(route screens.Route) {
	a.stack = append(a.stack, route)
}

// GoBack implements screens.Navigator.
func (a *app) GoBack() {
	if len(a.stack) > 1 {
		a.stack = a.stack[:len(a.stack)-1]
	}
}

func (a *app) current() screens.Route {
	if len(a.stack) == 0 {
		return screens.RouteGetStarted
	}
	return a.stack[len(a.stack)-1]
}

func (a *app) run() {
	ctx := context.Background()
	for {
		switch a.current() {
		case screens.RouteGetStarted:
			fmt.Println("\n=== Ride Share Driver ===")
			if a.prompt("Press Enter to get started (q to quit)") == "q" {
				return
			}
			a.Navigate(screens.RouteLogin)
		case screens.RouteLogin:
			if !a.runLogin(ctx) {
				return
			}
		case screens.RouteMenu:
			if !a.runMenu(ctx) {
				return
			}
		case screens.RouteProfile:
			a.runProfile()
		case screens.RouteRankboard:
			a.runRankboard()
		case screens.RouteCreateTrip:
			a.runTripForm(ctx)
		case screens.RouteEditTrip:
			a.runTripList(ctx)
		case screens.RouteBookings:
			a.runBookings(ctx)
		case screens.RouteNavigation:
			a.runNavigation(ctx)
		default:
			a.GoBack()
		}
	}
}

func (a *app) runLogin(ctx context.Context) bool {
	mode := "Login"
	if !a.login.IsLogin {
		mode = "Sign Up"
	}
	fmt.Printf("\n--- %s --- (t to toggle, q to quit)\n", mode)

	first := a.prompt("Email")
	switch first {
	case "q":
		return false
	case "t":
		a.login.Toggle()
		return true
	}
	a.login.Email = first
	a.login.Password = a.prompt("Password")

	if a.login.IsLogin {
		_ = a.login.Login(ctx)
		return true
	}

	a.login.Username = a.prompt("User Name")
	a.login.Vehicle = a.prompt("Vehicle Model")
	a.login.PhoneNumber = a.prompt("Mobile Number")
	a.login.ConfirmPassword = a.prompt("Confirm Password")
	if err := a.login.SignUp(ctx); err == nil && a.login.SuccessPopupVisible {
		a.Notify("Success", "Account Created Successfully!!")
		a.login.CloseSuccessPopup()
	} else if a.login.ErrorPopupVisible {
		a.Notify("Error", "Account Creation Failed!!")
		a.login.CloseErrorPopup()
	}
	return true
}

func (a *app) runMenu(ctx context.Context) bool {
	_ = ctx
	fmt.Println("\n--- Driver Menu ---")
	fmt.Println("1) Create Trip  2) Edit Trips  3) Profile  4) Rankboard  5) Logout  q) Quit")
	switch a.prompt("Choose") {
	case "1":
		a.menu.OpenCreateTrip()
	case "2":
		a.menu.OpenEditTrip()
	case "3":
		a.menu.OpenProfile()
	case "4":
		a.menu.OpenRankboard()
	case "5":
		a.menu.Logout()
		a.stack = []screens.Route{screens.RouteGetStarted}
	case "q":
		return false
	}
	return true
}

func (a *app) runProfile() {
	fmt.Println("\n--- Profile ---")
	if profile, ok := a.profile.Profile(); ok {
		fmt.Printf("Username: %s\nEmail: %s\nPhone: %s\nVehicle: %s\n",
			profile.Username, profile.Email, profile.PhoneNumber, profile.Vehicle)
	} else {
		fmt.Println("Loading user data...")
	}
	a.prompt("Enter to go back")
	a.profile.Back()
}

func (a *app) runRankboard() {
	fmt.Println("\n--- Rankboard ---")
	for i, e := range a.rank.Entries() {
		fmt.Printf("%d) %s | %s | trips=%d | %.1f stars\n", i+1, e.Driver, e.Vehicle, e.Trips, e.Stars)
	}
	a.prompt("Enter to go back")
	a.rank.Back()
}

func (a *app) runTripForm(ctx context.Context) {
	fmt.Println("\n--- Create a New Trip ---")

	a.form.OpenStartPicker()
	a.pickLocation(ctx, "start location")
	a.form.ConfirmPickedLocation()

	a.form.OpenDestinationPicker()
	a.pickLocation(ctx, "destination")
	a.form.ConfirmPickedLocation()

	a.form.Details.SeatsAvailable = a.prompt("Seats Available")
	a.form.Details.PricePerSeat = a.prompt("Price Per Seat")
	a.form.Details.Date = a.prompt("Date (YYYY-MM-DD)")
	a.form.Details.Description = a.prompt("Description")

	if err := a.form.Submit(ctx); err == nil {
		a.Notify("Success", "Trip Listed Successfully!!")
		a.form.CloseSuccessPopup()
		return
	}
	if a.form.FailurePopupVisible {
		a.Notify("Error", "Trip Listing Error!!")
		a.form.CloseFailurePopup()
	}
	a.GoBack()
}

// pickLocation drives the picker's two input paths from the terminal.
func (a *app) pickLocation(ctx context.Context, what string) {
	picker := a.form.Picker
	fmt.Printf("Select %s: enter \"lat,lng\" or s to search\n", what)
	input := a.prompt("Location")

	if input == "s" {
		query := a.prompt("Search for a location")
		predictions := picker.Search(ctx, query)
		for i, p := range predictions {
			fmt.Printf("%d) %s\n", i+1, p.Description)
		}
		if choice, err := strconv.Atoi(a.prompt("Pick")); err == nil && choice >= 1 && choice <= len(predictions) {
			picker.SelectPlace(ctx, predictions[choice-1])
		}
		return
	}

	parts := strings.SplitN(input, ",", 2)
	if len(parts) != 2 {
		return
	}
	lat, latErr := strconv.ParseFloat(strings.TrimSpace(parts[0]), 64)
	lng, lngErr := strconv.ParseFloat(strings.TrimSpace(parts[1]), 64)
	if latErr != nil || lngErr != nil {
		return
	}
	picker.SelectCoordinate(ctx, lat, lng)
	fmt.Printf("Selected: %s\n", picker.Selected.Address)
}

func (a *app) runTripList(ctx context.Context) {
	fmt.Println("\n--- Your Trips ---")
	if err := a.trips.Load(ctx); err != nil {
		a.GoBack()
		return
	}
	if len(a.trips.Cards) == 0 {
		fmt.Println("No trips published yet.")
		a.prompt("Enter to go back")
		a.GoBack()
		return
	}

	for i, card := range a.trips.Cards {
		fmt.Printf("%d) %s | %s | seats=%d | %s | %s\n",
			i+1, card.Title(), card.FormattedDate(),
			card.Trip.SeatsAvailable, card.PriceLabel(), card.Displayed())
	}
	choice, err := strconv.Atoi(a.prompt("Pick a trip (0 to go back)"))
	if err != nil || choice < 1 || choice > len(a.trips.Cards) {
		a.GoBack()
		return
	}
	a.runTripCard(ctx, a.trips.Cards[choice-1])
}

func (a *app) runTripCard(ctx context.Context, card *screens.TripCard) {
	fmt.Printf("\nTrip %s (%s)\n", card.Title(), card.Displayed())
	fmt.Println("1) Change status  2) View bookings  3) Navigate  0) Back")
	switch a.prompt("Choose") {
	case "1":
		fmt.Println("Status: 1) Available 2) InProgress 3) Completed 4) Cancelled")
		targets := []string{"Available", "InProgress", "Completed", "Cancelled"}
		if n, err := strconv.Atoi(a.prompt("Target")); err == nil && n >= 1 && n <= len(targets) {
			a.changeStatus(ctx, card, targets[n-1])
		}
	case "2":
		a.bookings.TripID = card.Trip.ID
		a.trips.OpenBookings()
	case "3":
		a.navview.Start = card.Trip.StartLocation
		a.navview.Destination = card.Trip.Destination
		a.trips.OpenNavigation()
	}
}

func (a *app) changeStatus(ctx context.Context, card *screens.TripCard, target string) {
	status, err := models.ParseTripStatus(target)
	if err != nil {
		return
	}
	card.SelectStatus(status)
	if !card.ConfirmVisible {
		return
	}
	fmt.Println(card.ConfirmMessage())
	if a.prompt("y/n") == "y" {
		_ = card.Confirm(ctx)
	} else {
		card.Cancel()
	}
}

func (a *app) runBookings(ctx context.Context) {
	fmt.Println("\n--- Passenger Bookings ---")
	if err := a.bookings.Load(ctx); err != nil {
		a.GoBack()
		return
	}

	for i, p := range a.bookings.Passengers {
		fmt.Printf("%d) %s | %s | seats=%d | total=%s | payment=%s\n",
			i+1, p.Name, p.Phone, p.Seats(),
			utils.FormatRupees(a.bookings.TotalPrice(p)), p.PaymentOrPending())
	}

	fmt.Println("c <n>) confirm payment  m) export manifest  r <n>) receipt  0) back")
	input := strings.Fields(a.prompt("Choose"))
	if len(input) == 0 {
		a.bookings.Back()
		return
	}

	switch input[0] {
	case "c":
		if len(input) == 2 {
			if n, err := strconv.Atoi(input[1]); err == nil {
				a.bookings.SelectPassenger(n - 1)
				if a.bookings.ConfirmVisible {
					fmt.Println(a.bookings.ConfirmMessage())
					if a.prompt("y/n") == "y" {
						_ = a.bookings.ConfirmPayment(ctx)
					} else {
						a.bookings.CancelConfirm()
					}
				}
			}
		}
	case "m":
		if data, filename, err := a.bookings.ExportManifest(); err == nil {
			a.saveExport(filename, data)
		}
	case "r":
		if len(input) == 2 {
			if n, err := strconv.Atoi(input[1]); err == nil {
				if data, filename, err := a.bookings.ExportReceipt(n - 1); err == nil {
					a.saveExport(filename, data)
				}
			}
		}
	default:
		a.bookings.Back()
	}
}

func (a *app) saveExport(filename string, data []byte) {
	if err := os.WriteFile(filename, data, 0o644); err != nil {
		a.Notify("Error", "Failed to save "+filename)
		return
	}
	a.Notify("Saved", filename)
}

func (a *app) runNavigation(ctx context.Context) {
	fmt.Println("\n--- Navigation ---")
	start, dest := a.navview.Markers()
	fmt.Printf("From: %s\nTo:   %s\n", start.Address, dest.Address)

	if err := a.navview.Load(ctx); err == nil {
		fmt.Printf("Route: %d points, %s, %s\n",
			len(a.navview.Path), a.navview.Route.Distance, a.navview.Route.Duration)
	} else {
		fmt.Println("Route unavailable; showing markers only.")
	}
	a.prompt("Enter to go back")
	a.navview.Back()
}

func (a *app) prompt(label string) string {
	fmt.Printf("%s: ", label)
	if !a.in.Scan() {
		return "q"
	}
	return strings.TrimSpace(a.in.Text())
}
