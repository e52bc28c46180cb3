package console

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/BruksfildServices01/estate-agency/internal/clock"
	domainmeeting "github.com/BruksfildServices01/estate-agency/internal/domain/meeting"
	domainrealestate "github.com/BruksfildServices01/estate-agency/internal/domain/realestate"
	"github.com/BruksfildServices01/estate-agency/internal/models"
	"github.com/BruksfildServices01/estate-agency/internal/service"
)

const dateLayout = "2006-01-02"

// Console drives one interactive session over stdin. It owns no business
// rules: it prompts, parses and reports, and everything else is the
// services' problem.
type Console struct {
	in  *bufio.Scanner
	eof bool
	tz  string

	clients     *service.ClientService
	realEstates *service.RealEstateService
	meetings    *service.MeetingService
	agreements  *service.AgreementService
	employees   *service.EmployeeService
}

func New(
	tz string,
	clients *service.ClientService,
	realEstates *service.RealEstateService,
	meetings *service.MeetingService,
	agreements *service.AgreementService,
	employees *service.EmployeeService,
) *Console {
	return &Console{
		in:          bufio.NewScanner(os.Stdin),
		tz:          tz,
		clients:     clients,
		realEstates: realEstates,
		meetings:    meetings,
		agreements:  agreements,
		employees:   employees,
	}
}

// ======================================================
// MAIN LOOP
// ======================================================

func (c *Console) Run(ctx context.Context) {
	fmt.Println("Welcome to the Real Estate Agency console app. Please choose an action")

	for !c.eof {
		fmt.Println("\nEnter '0' to register as a new client")
		fmt.Println("Enter '1' to login and confirm your identity.")
		fmt.Println("Enter '2' to Exit.")

		switch c.readLine() {
		case "0":
			c.registerClient(ctx)
		case "1":
			c.login(ctx)
		case "2":
			return
		default:
			fmt.Println("Invalid option. Please enter '0', '1' or '2'.")
		}
	}
}

func (c *Console) registerClient(ctx context.Context) {
	fmt.Println("Please enter your registration details:")

	client := &models.Client{
		FirstName:   c.prompt("1. Enter your first name: "),
		LastName:    c.prompt("2. Enter your last name: "),
		Email:       c.prompt("3. Enter your email: "),
		PhoneNumber: c.prompt("4. Enter your phone number: "),
		// the registration date is validated as strictly past
		RegistrationDate: clock.NowIn(c.tz).Add(-time.Second),
	}

	if err := c.clients.Create(ctx, client); err != nil {
		fmt.Println("\n" + err.Error())
		fmt.Println("Please try again.")
		return
	}

	fmt.Println("\nThank you for registration!")
	c.userActions(ctx, client)
}

func (c *Console) login(ctx context.Context) {
	fmt.Println("Please enter your logIn details:")
	email := c.prompt("Please enter your email: ")
	phone := c.prompt("Please enter your phone number: ")

	byEmail, err := c.clients.GetByEmail(ctx, email)
	if err != nil {
		fmt.Println("\n" + err.Error())
		fmt.Println("Please try again.")
		return
	}
	byPhone, err := c.clients.GetByPhoneNumber(ctx, phone)
	if err != nil {
		fmt.Println("\n" + err.Error())
		fmt.Println("Please try again.")
		return
	}
	if byEmail.ID != byPhone.ID {
		fmt.Println("Email and phone don't match")
		return
	}

	fmt.Printf("\nYou've successfully logged in. Hello %s!\n", byEmail.FirstName)
	c.userActions(ctx, byEmail)
}

func (c *Console) userActions(ctx context.Context, client *models.Client) {
	for !c.eof {
		fmt.Println("\nNow choose an action (write a number):")
		fmt.Println("1. Put new real estate up for sale.")
		fmt.Println("2. View real estate by type.")
		fmt.Println("3. View all real estates.")
		fmt.Println("4. View my real estates.")
		fmt.Println("5. Order real estate.")
		fmt.Println("6. Delete account.")
		fmt.Println("7. View my agreement.")
		fmt.Println("8. View my meetings.")
		fmt.Println("9. Settings.")
		fmt.Println("10. Exit.")

		switch c.prompt("Enter your choice: ") {
		case "1":
			c.createRealEstate(ctx, client)
		case "2":
			c.viewRealEstateByType(ctx)
		case "3":
			c.viewAllRealEstates(ctx)
		case "4":
			c.viewMyRealEstates(ctx, client)
		case "5":
			c.orderRealEstate(ctx, client)
		case "6":
			if c.deleteAccount(ctx, client) {
				return
			}
		case "7":
			c.viewMyAgreement(ctx, client)
		case "8":
			c.viewMyMeetings(ctx, client)
		case "9":
			c.settings(ctx, client)
		case "10":
			return
		default:
			fmt.Println("Invalid option.")
		}
	}
}

// ======================================================
// REAL ESTATE
// ======================================================

func (c *Console) createRealEstate(ctx context.Context, client *models.Client) {
	fmt.Println("Please enter real estate address details:")
	address := models.Address{
		Country:   c.prompt("1. Enter country: "),
		Region:    c.prompt("2. Enter region: "),
		City:      c.prompt("3. Enter city: "),
		Street:    c.prompt("4. Enter street: "),
		Building:  c.prompt("5. Enter building: "),
		Apartment: c.prompt("6. Enter apartment: "),
	}

	fmt.Println("Please enter real estate details:")
	price, err := strconv.ParseFloat(c.prompt("1. Enter price: "), 64)
	if err != nil {
		fmt.Println("Invalid price. Please try again.")
		return
	}
	description := c.prompt("2. Enter description: ")

	reType := c.chooseType()

	metrics := c.prompt("4. Enter real estate metrics: ")
	rooms, err := strconv.Atoi(c.prompt("5. Enter rooms: "))
	if err != nil {
		fmt.Println("Invalid room count. Please try again.")
		return
	}

	re := &models.RealEstate{
		Type:        string(reType),
		Price:       price,
		Description: description,
		Metrics:     metrics,
		Rooms:       rooms,
		Address:     address,
	}

	if err := c.realEstates.Create(ctx, re, client.ID); err != nil {
		fmt.Println("\n" + err.Error())
		fmt.Println("Please try again.")
		return
	}

	fmt.Println("\nThanks! You've successfully created a real estate!")
}

// chooseType re-prompts until a valid type is picked.
func (c *Console) chooseType() domainrealestate.Type {
	for !c.eof {
		fmt.Println("Choose type of Real Estate. Enter 1 or 2.")
		fmt.Println("\t1. Apartment")
		fmt.Println("\t2. Building")
		switch c.readLine() {
		case "1":
			return domainrealestate.TypeApartment
		case "2":
			return domainrealestate.TypeBuilding
		default:
			fmt.Println("Invalid real estate type. Try again")
		}
	}
	return ""
}

func (c *Console) viewRealEstateByType(ctx context.Context) {
	fmt.Println("Choose what type of Real Estate you are looking for (enter 1 or 2)")
	t := c.chooseType()

	res, err := c.realEstates.GetAllByType(ctx, t)
	if err != nil {
		fmt.Println(err.Error())
		return
	}
	if len(res) == 0 {
		fmt.Println("\nNo real estates by this type")
		return
	}
	for _, re := range res {
		fmt.Println(describeRealEstate(&re))
	}
}

func (c *Console) viewAllRealEstates(ctx context.Context) {
	res, err := c.realEstates.GetAll(ctx)
	if err != nil {
		fmt.Println(err.Error())
		return
	}
	for _, re := range res {
		fmt.Println(describeRealEstate(&re) + "\n")
	}
}

func (c *Console) viewMyRealEstates(ctx context.Context, client *models.Client) {
	res, err := c.realEstates.GetAllBySeller(ctx, client)
	if err != nil {
		fmt.Println(err.Error())
		return
	}
	if len(res) == 0 {
		fmt.Println("You do not have real estates")
		return
	}
	for _, re := range res {
		fmt.Println(describeRealEstate(&re))
	}
}

// ======================================================
// ORDERING / PAYMENT
// ======================================================

func (c *Console) orderRealEstate(ctx context.Context, client *models.Client) {
	fmt.Println("You want to create a meet to view Real Estate or you are ready to buy?")
	fmt.Println("1. Create a meeting")
	fmt.Println("2. Create an order")

	switch c.readLine() {
	case "1":
		employee, err := c.chooseEmployee(ctx)
		if err != nil {
			fmt.Println(err.Error())
			return
		}
		c.createMeeting(ctx, client, employee)
	case "2":
		c.createAgreement(ctx, client)
	}
}

func (c *Console) createAgreement(ctx context.Context, client *models.Client) {
	open, err := c.agreements.GetByClientID(ctx, client.ID)
	if err != nil {
		fmt.Println(err.Error())
		return
	}
	if open != nil {
		fmt.Println("You cannot have more than one Real Estate agreement open. Please pay for your agreement")
		c.askForPayment(ctx, client)
		return
	}

	id, ok := c.promptID("Enter the id of Real Estate you want to buy: ")
	if !ok {
		return
	}

	re, err := c.realEstates.GetByID(ctx, id)
	if err != nil {
		fmt.Println(err.Error())
		return
	}
	fmt.Printf("The price of Real Estate %.2f\n", re.Price)

	ag := &models.Agreement{Date: clock.NowIn(c.tz)}
	if err := c.agreements.Create(ctx, ag, re.ID, client.ID); err != nil {
		fmt.Println(err.Error())
		return
	}

	fmt.Println("Your agreement is ready")
	fmt.Printf("Reference %s, amount %.2f, duration %s, status %s\n",
		ag.Reference, ag.Amount, ag.Duration, ag.Status)
	c.askForPayment(ctx, client)
}

func (c *Console) askForPayment(ctx context.Context, client *models.Client) {
	fmt.Println("Please pay for your agreement")
	fmt.Println("Enter 1 to pay, or 0 to exit")

	switch c.readLine() {
	case "1":
		if err := c.agreements.Pay(ctx, client.ID); err != nil {
			fmt.Println(err.Error())
			return
		}
		fmt.Println("Thank you for paying for agreement")
	case "0":
	default:
		fmt.Println("Invalid option")
	}
}

func (c *Console) viewMyAgreement(ctx context.Context, client *models.Client) {
	ag, err := c.agreements.GetByClientID(ctx, client.ID)
	if err != nil {
		fmt.Println(err.Error())
		return
	}
	if ag == nil {
		fmt.Println("You have no open agreement")
		return
	}
	fmt.Printf("Agreement %s: amount %.2f, duration %s, status %s, real estate id %d\n",
		ag.Reference, ag.Amount, ag.Duration, ag.Status, ag.RealEstateID)
}

// ======================================================
// MEETINGS
// ======================================================

func (c *Console) createMeeting(ctx context.Context, client *models.Client, employee *models.Employee) {
	dateStr := c.prompt("Input what date you want to make a view (yyyy-mm-dd): ")
	date, err := time.ParseInLocation(dateLayout, dateStr, clock.Location(c.tz))
	if err != nil {
		fmt.Println("Enter your date in the yyyy-mm-dd format")
		return
	}

	id, ok := c.promptID("Enter the id of Real Estate you want to view: ")
	if !ok {
		return
	}
	re, err := c.realEstates.GetByID(ctx, id)
	if err != nil {
		fmt.Println(err.Error())
		return
	}

	m := &models.Meeting{
		MeetingDateTime: date,
		InquiryDate:     clock.NowIn(c.tz).Add(-time.Second),
		Status:          domainmeeting.StatusPending,
	}

	if err := c.meetings.Create(ctx, m, re.ID, client.ID, employee.ID); err != nil {
		fmt.Println(err.Error())
		fmt.Println("Error occurred. Meeting could not be created.")
		return
	}

	fmt.Printf("Your meeting will be at %s with %s %s\n",
		date.Format(dateLayout), employee.FirstName, employee.LastName)
}

func (c *Console) chooseEmployee(ctx context.Context) (*models.Employee, error) {
	emps, err := c.employees.GetAll(ctx)
	if err != nil {
		return nil, err
	}

	fmt.Println("Here is the list of employees, choose one:")
	for _, emp := range emps {
		fmt.Printf("%d. %s %s\n", emp.ID, emp.FirstName, emp.LastName)
	}

	id, ok := c.promptID("Enter the id of the employee: ")
	if !ok {
		return nil, fmt.Errorf("invalid employee id")
	}
	return c.employees.GetByID(ctx, id)
}

func (c *Console) viewMyMeetings(ctx context.Context, client *models.Client) {
	meetings, err := c.meetings.GetByClient(ctx, client)
	if err != nil {
		fmt.Println(err.Error())
		return
	}
	if len(meetings) == 0 {
		fmt.Println("You have no meetings")
		return
	}

	fmt.Println("All your meetings:")
	for _, m := range meetings {
		fmt.Printf("%d. %s at real estate %d with %s %s (%s)\n",
			m.ID, m.MeetingDateTime.Format(dateLayout), m.RealEstateID,
			m.Employee.FirstName, m.Employee.LastName, m.Status)
	}

	id, ok := c.promptID("Input the id of the meeting you want to change: ")
	if !ok {
		return
	}
	m, err := c.meetings.GetByID(ctx, id)
	if err != nil {
		fmt.Println(err.Error())
		return
	}

	fmt.Println("If you need, you can change the date of the meeting, or employee")
	fmt.Println("1. Change date")
	fmt.Println("2. Change employee")
	fmt.Println("3. Exit")

	switch c.readLine() {
	case "1":
		dateStr := c.prompt("Input the new date (yyyy-mm-dd): ")
		date, err := time.ParseInLocation(dateLayout, dateStr, clock.Location(c.tz))
		if err != nil {
			fmt.Println("Enter your date in the yyyy-mm-dd format")
			return
		}
		domainmeeting.Reschedule(m, date)
	case "2":
		employee, err := c.chooseEmployee(ctx)
		if err != nil {
			fmt.Println(err.Error())
			return
		}
		domainmeeting.Reassign(m, employee)
	case "3":
		return
	default:
		fmt.Println("Invalid option")
		return
	}

	if err := c.meetings.Update(ctx, m, m.RealEstateID, client.ID, m.EmployeeID); err != nil {
		fmt.Println(err.Error())
		return
	}
	fmt.Println("Your meeting has been updated")
}

// ======================================================
// SETTINGS / ACCOUNT
// ======================================================

func (c *Console) settings(ctx context.Context, client *models.Client) {
	fmt.Println("SETTINGS")
	fmt.Println("1. Change phone number")
	fmt.Println("2. Change email")

	prevEmail, prevPhone := client.Email, client.PhoneNumber

	switch c.readLine() {
	case "1":
		client.PhoneNumber = c.prompt("Input your new phone number: ")
	case "2":
		client.Email = c.prompt("Input your new email: ")
	default:
		return
	}

	if err := c.clients.Update(ctx, client); err != nil {
		// a refused change must not linger on the session's client
		client.Email, client.PhoneNumber = prevEmail, prevPhone
		fmt.Println(err.Error())
		return
	}

	// keep the agreement's embedded client snapshot in sync
	ag, err := c.agreements.GetByClientID(ctx, client.ID)
	if err != nil {
		fmt.Println(err.Error())
		return
	}
	if ag != nil {
		ag.Client = *client
		if err := c.agreements.Update(ctx, ag); err != nil {
			fmt.Println(err.Error())
		}
	}
}

// deleteAccount reports whether the account is gone and the session over.
func (c *Console) deleteAccount(ctx context.Context, client *models.Client) bool {
	fmt.Println("Do you really want to delete your account?")
	fmt.Println("Choose an action (enter 1 or 2):")
	fmt.Println("1. YES")
	fmt.Println("2. Exit")

	if c.readLine() != "1" {
		return false
	}
	if err := c.clients.DeleteByID(ctx, client.ID); err != nil {
		fmt.Println(err.Error())
		return false
	}
	return true
}

// ======================================================
// INPUT HELPERS
// ======================================================

func (c *Console) readLine() string {
	if !c.in.Scan() {
		c.eof = true
		return ""
	}
	return strings.TrimSpace(c.in.Text())
}

func (c *Console) prompt(label string) string {
	fmt.Print(label)
	return c.readLine()
}

func (c *Console) promptID(label string) (uint, bool) {
	id, err := strconv.ParseUint(c.prompt(label), 10, 64)
	if err != nil {
		fmt.Println("Invalid id")
		return 0, false
	}
	return uint(id), true
}

func describeRealEstate(re *models.RealEstate) string {
	return fmt.Sprintf(
		"#%d %s, %.2f, %d rooms, %s at %s, %s, %s, %s %s/%s (available: %t)",
		re.ID, re.Type, re.Price, re.Rooms, re.Metrics,
		re.Address.Country, re.Address.Region, re.Address.City,
		re.Address.Street, re.Address.Building, re.Address.Apartment,
		re.Available,
	)
}
