package console

import (
	"bufio"
	"context"
	stderrors "errors"
	"fmt"
	"io"
	"strconv"
	"strings"
	"text/tabwriter"

	accountRequest "railway-reservation/internal/module/account/models/request"
	accountUsecases "railway-reservation/internal/module/account/usecases"
	bookingEntity "railway-reservation/internal/module/booking/models/entity"
	"railway-reservation/internal/module/booking/models/response"
	bookingUsecases "railway-reservation/internal/module/booking/usecases"
	catalogUsecases "railway-reservation/internal/module/catalog/usecases"
	"railway-reservation/internal/module/session"
	"railway-reservation/internal/pkg/errors"
	"railway-reservation/internal/pkg/log"
)

const width = 60

// Console is the interactive text front end. It owns one Session and reads
// commands line by line until Exit or end of input.
type Console struct {
	Accounts accountUsecases.Usecase
	Catalog  catalogUsecases.Usecase
	Booking  bookingUsecases.Usecase
	Log      log.Logger
	Currency string

	in      *bufio.Scanner
	out     io.Writer
	session session.Session
}

func New(in io.Reader, out io.Writer, currency string, log log.Logger,
	accounts accountUsecases.Usecase, catalog catalogUsecases.Usecase, booking bookingUsecases.Usecase) *Console {
	return &Console{
		Accounts: accounts,
		Catalog:  catalog,
		Booking:  booking,
		Log:      log,
		Currency: currency,
		in:       bufio.NewScanner(in),
		out:      out,
	}
}

// Run shows the main menu until the user exits. End of input is a normal
// exit, any other returned error comes from ctx.
func (c *Console) Run(ctx context.Context) error {
	err := c.mainMenu(ctx)
	if stderrors.Is(err, io.EOF) {
		c.println()
		return nil
	}
	return err
}

func (c *Console) mainMenu(ctx context.Context) error {
	for {
		if err := ctx.Err(); err != nil {
			return err
		}

		c.header("RAILWAY RESERVATION SYSTEM")
		c.menu("Login", "Register", "Exit")
		choice, err := c.readInt("Enter your choice (1-3): ")
		if err != nil {
			return err
		}

		switch choice {
		case 1:
			ok, err := c.login(ctx)
			if err != nil {
				return err
			}
			if ok {
				if err := c.userMenu(ctx); err != nil {
					return err
				}
			}
		case 2:
			if err := c.register(ctx); err != nil {
				return err
			}
		case 3:
			c.println("Thank you for using Railway Reservation System!")
			return nil
		default:
			c.println("Invalid choice! Please try again.")
		}
	}
}

func (c *Console) userMenu(ctx context.Context) error {
	for {
		if err := ctx.Err(); err != nil {
			return err
		}

		handle, _ := c.session.Current()
		c.header("RAILWAY RESERVATION SYSTEM - Welcome " + handle.Username)
		c.menu("View Available Trains", "View Train Details", "Book Ticket", "Cancel Ticket", "View My Bookings", "Logout")
		choice, err := c.readInt("Enter your choice (1-6): ")
		if err != nil {
			return err
		}

		switch choice {
		case 1:
			c.viewTrains(ctx)
		case 2:
			err = c.viewTrainDetails(ctx)
		case 3:
			err = c.bookTicket(ctx)
		case 4:
			err = c.cancelTicket(ctx)
		case 5:
			c.viewBookings(ctx)
		case 6:
			c.session.Logout()
			c.println("Thank you for using Railway Reservation System!")
			return nil
		default:
			c.println("Invalid choice! Please try again.")
		}
		if err != nil {
			return err
		}
	}
}

func (c *Console) register(ctx context.Context) error {
	c.header("USER REGISTRATION")
	username, err := c.readLine("Enter username: ")
	if err != nil {
		return err
	}
	password, err := c.readLine("Enter password: ")
	if err != nil {
		return err
	}
	confirm, err := c.readLine("Confirm password: ")
	if err != nil {
		return err
	}

	err = c.Accounts.Register(ctx, &accountRequest.Register{
		Username:        username,
		Password:        password,
		ConfirmPassword: confirm,
	})
	if err != nil {
		c.fail(ctx, err)
		return nil
	}
	c.println("Registration successful! You can now login.")
	return nil
}

func (c *Console) login(ctx context.Context) (bool, error) {
	c.header("USER LOGIN")
	username, err := c.readLine("Enter username: ")
	if err != nil {
		return false, err
	}
	password, err := c.readLine("Enter password: ")
	if err != nil {
		return false, err
	}

	if _, err := c.session.Login(ctx, c.Accounts, username, password); err != nil {
		c.fail(ctx, err)
		return false, nil
	}
	c.println("Login successful!")
	return true, nil
}

func (c *Console) viewTrains(ctx context.Context) {
	c.header("AVAILABLE TRAINS")
	trains, err := c.Catalog.ListTrains(ctx)
	if err != nil {
		c.fail(ctx, err)
		return
	}

	tw := tabwriter.NewWriter(c.out, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "Train ID\tTrain Name\tRoute\tAvailable Seats\tFare\t")
	for _, t := range trains {
		fmt.Fprintf(tw, "%d\t%s\t%s\t%d\t%s\t\n", t.ID, t.Name, t.Route, t.AvailableSeats, c.money(t.Fare))
	}
	_ = tw.Flush()
	c.println()
}

func (c *Console) viewTrainDetails(ctx context.Context) error {
	c.viewTrains(ctx)
	trainID, err := c.readInt("Enter Train ID to view details: ")
	if err != nil {
		return err
	}

	train, err := c.Catalog.GetTrain(ctx, int64(trainID))
	if err != nil {
		c.fail(ctx, err)
		return nil
	}

	c.header("DETAILS - " + train.Name)
	c.printf("Train ID:          %d\n", train.ID)
	c.printf("Train Name:        %s\n", train.Name)
	c.printf("Route:             %s\n", train.Route)
	c.printf("Total Seats:       %d\n", train.TotalSeats)
	c.printf("Available Seats:   %d\n", train.AvailableSeats)
	c.printf("Fare per Ticket:   %s\n", c.money(train.Fare))
	c.printf("Departure Time:    %s\n", train.Departure)
	c.printf("Arrival Time:      %s\n", train.Arrival)
	c.println()
	return nil
}

func (c *Console) bookTicket(ctx context.Context) error {
	handle, _ := c.session.Current()
	c.viewTrains(ctx)

	trainID, err := c.readInt("Enter Train ID to book: ")
	if err != nil {
		return err
	}
	if _, err := c.Catalog.GetTrain(ctx, int64(trainID)); err != nil {
		c.fail(ctx, err)
		return nil
	}

	seats, err := c.readInt("Enter number of seats to book: ")
	if err != nil {
		return err
	}
	quote, err := c.Booking.Quote(ctx, int64(trainID), seats)
	if err != nil {
		c.fail(ctx, err)
		return nil
	}

	c.println()
	c.println("Booking Summary:")
	c.printf("Train Name:    %s\n", quote.TrainName)
	c.printf("Route:         %s\n", quote.Route)
	c.printf("Seats:         %d\n", quote.Seats)
	c.printf("Fare/Seat:     %s\n", c.money(quote.FarePerSeat))
	c.printf("Total Fare:    %s\n", c.money(quote.TotalFare))

	ok, err := c.confirm("Confirm booking?")
	if err != nil {
		return err
	}
	if !ok {
		c.println("Booking cancelled!")
		return nil
	}

	booking, err := c.Booking.Book(ctx, handle, int64(trainID), seats)
	if err != nil {
		c.fail(ctx, err)
		return nil
	}

	ticket := response.FromBooking(booking)
	c.banner("BOOKING CONFIRMED!")
	c.printf("Booking ID:       %d\n", ticket.BookingID)
	c.printf("Train:            %s\n", ticket.TrainName)
	c.printf("Seats Booked:     %d\n", ticket.Seats)
	c.printf("Total Amount:     %s\n", c.money(ticket.TotalFare))
	c.printf("Booking Date:     %s\n", ticket.BookingDate)
	c.printf("Status:           %s\n", ticket.Status)
	c.println(strings.Repeat("*", width))
	return nil
}

func (c *Console) cancelTicket(ctx context.Context) error {
	handle, _ := c.session.Current()
	c.header("CANCEL TICKET")

	bookings, err := c.Booking.ListBookings(ctx, handle)
	if err != nil {
		c.fail(ctx, err)
		return nil
	}
	if len(bookings) == 0 {
		c.println("You have no bookings to cancel!")
		return nil
	}

	c.println("Your Bookings:")
	c.println()
	for _, b := range bookings {
		if b.Active() {
			c.printf("Booking ID: %d | Train: %s | Seats: %d | Fare: %s\n", b.ID, b.TrainName, b.Seats, c.money(b.TotalFare))
		}
	}
	c.println()

	bookingID, err := c.readInt("Enter Booking ID to cancel: ")
	if err != nil {
		return err
	}

	var target *bookingEntity.Booking
	for i := range bookings {
		if bookings[i].ID == int64(bookingID) && bookings[i].Active() {
			target = &bookings[i]
			break
		}
	}
	if target == nil {
		c.fail(ctx, errors.ErrBookingNotFound)
		return nil
	}

	refund, _ := bookingEntity.Refund(target.TotalFare)
	ok, err := c.confirm(fmt.Sprintf("Cancel booking ID %d? This will refund %s.", target.ID, c.money(refund)))
	if err != nil {
		return err
	}
	if !ok {
		c.println("Cancellation aborted!")
		return nil
	}

	receipt, err := c.Booking.Cancel(ctx, handle, target.ID)
	if err != nil {
		c.fail(ctx, err)
		return nil
	}

	c.banner("CANCELLATION CONFIRMED!")
	c.printf("Booking ID:       %d\n", receipt.BookingID)
	c.printf("Train:            %s\n", receipt.TrainName)
	c.printf("Original Amount:  %s\n", c.money(receipt.OriginalAmount))
	c.printf("Cancellation Fee: %s\n", c.money(receipt.CancellationFee))
	c.printf("Refund Amount:    %s\n", c.money(receipt.RefundAmount))
	c.printf("Status:           %s\n", receipt.Status)
	c.println(strings.Repeat("*", width))
	return nil
}

func (c *Console) viewBookings(ctx context.Context) {
	handle, _ := c.session.Current()
	c.header("YOUR BOOKINGS")

	bookings, err := c.Booking.ListBookings(ctx, handle)
	if err != nil {
		c.fail(ctx, err)
		return
	}
	if len(bookings) == 0 {
		c.println("You have no bookings yet!")
		return
	}

	tw := tabwriter.NewWriter(c.out, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "ID\tTrain Name\tSeats\tAmount\tDate\tStatus\t")
	for _, b := range bookings {
		t := response.FromBooking(b)
		fmt.Fprintf(tw, "%d\t%s\t%d\t%s\t%s\t%s\t\n", t.BookingID, t.TrainName, t.Seats, c.money(t.TotalFare), t.BookingDate, t.Status)
	}
	_ = tw.Flush()
	c.println()
}

// fail prints the error and keeps the menu loop alive. Persistence failures
// are also logged since their text is not meant for the passenger.
func (c *Console) fail(ctx context.Context, err error) {
	if errors.TypeOf(err) == errors.Persistence {
		if c.Log != nil {
			c.Log.Error(ctx, "console operation failed", err)
		}
		c.println("Something went wrong, please try again.")
		return
	}
	if ce, ok := errors.As(err); ok {
		c.println(ce.Message)
		return
	}
	c.println(err.Error())
}

func (c *Console) readLine(prompt string) (string, error) {
	c.printf("%s", prompt)
	if !c.in.Scan() {
		if err := c.in.Err(); err != nil {
			return "", err
		}
		return "", io.EOF
	}
	return strings.TrimSpace(c.in.Text()), nil
}

// readInt prompts until the line parses as an integer.
func (c *Console) readInt(prompt string) (int, error) {
	for {
		line, err := c.readLine(prompt)
		if err != nil {
			return 0, err
		}
		n, err := strconv.Atoi(line)
		if err == nil {
			return n, nil
		}
		c.println("Invalid input. Please enter a valid number.")
	}
}

// confirm accepts only "yes", in any case.
func (c *Console) confirm(question string) (bool, error) {
	answer, err := c.readLine("\n" + question + " (yes/no): ")
	if err != nil {
		return false, err
	}
	return strings.EqualFold(answer, "yes"), nil
}

func (c *Console) money(amount int64) string {
	return c.Currency + strconv.FormatInt(amount, 10)
}

func (c *Console) header(title string) {
	c.println(strings.Repeat("=", width))
	c.println(center(title))
	c.println(strings.Repeat("=", width))
}

func (c *Console) banner(title string) {
	c.println()
	c.println(strings.Repeat("*", width))
	c.println(center(title))
	c.println(strings.Repeat("*", width))
}

func (c *Console) menu(options ...string) {
	for i, option := range options {
		c.printf("%d. %s\n", i+1, option)
	}
	c.println()
}

func (c *Console) printf(format string, args ...interface{}) {
	fmt.Fprintf(c.out, format, args...)
}

func (c *Console) println(args ...interface{}) {
	fmt.Fprintln(c.out, args...)
}

func center(s string) string {
	n := len([]rune(s))
	if n >= width {
		return s
	}
	return strings.Repeat(" ", (width-n)/2) + s
}
