package structs

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/katalvlaran/golessons/curriculum"
)

// Sentinel errors for BankAccount operations.
var (
	// ErrInsufficientFunds is returned when a withdrawal exceeds the balance.
	ErrInsufficientFunds = errors.New("structs: insufficient funds")

	// ErrNonPositiveAmount is returned for zero or negative amounts.
	ErrNonPositiveAmount = errors.New("structs: amount must be positive")
)

// Person is this lesson's throwaway example type.
type Person struct {
	Name string
	Age  int
}

// Greet is a value-receiver method: it reads, never mutates.
func (p Person) Greet() string {
	return fmt.Sprintf("Hi, I'm %s (%d)", p.Name, p.Age)
}

// Birthday uses a pointer receiver because it mutates the Person.
// With a value receiver the increment would hit a copy and vanish.
func (p *Person) Birthday() {
	p.Age++
}

// Employee embeds Person: Employee has no Name field of its own, yet
// e.Name and e.Greet() work through promotion.
type Employee struct {
	Person
	Company string
}

// Badge overrides nothing; it just uses promoted fields alongside its own.
func (e Employee) Badge() string {
	return fmt.Sprintf("%s @ %s", e.Name, e.Company)
}

// BankAccount demonstrates the constructor-plus-methods shape most Go
// types take. The balance is unexported: the methods are the API.
type BankAccount struct {
	owner   string
	balance int // cents, to stay honest about money
}

// NewBankAccount is the conventional constructor.
func NewBankAccount(owner string, openingCents int) *BankAccount {
	return &BankAccount{owner: owner, balance: openingCents}
}

// Deposit adds cents to the balance.
func (a *BankAccount) Deposit(cents int) error {
	if cents <= 0 {
		return fmt.Errorf("%w: deposit of %d", ErrNonPositiveAmount, cents)
	}
	a.balance += cents
	return nil
}

// Withdraw removes cents from the balance if covered.
func (a *BankAccount) Withdraw(cents int) error {
	if cents <= 0 {
		return fmt.Errorf("%w: withdrawal of %d", ErrNonPositiveAmount, cents)
	}
	if cents > a.balance {
		return fmt.Errorf("%w: have %d, want %d", ErrInsufficientFunds, a.balance, cents)
	}
	a.balance -= cents
	return nil
}

// Balance reports the current balance in cents.
func (a *BankAccount) Balance() int {
	return a.balance
}

// Lesson describes this package to the curriculum.
func Lesson() curriculum.Lesson {
	return curriculum.Lesson{
		Number:   8,
		Slug:     "structs",
		Title:    "Structs, methods, embedding",
		Part:     curriculum.PartFundamentals,
		Synopsis: "literals, value vs pointer receivers, embedding, anonymous structs",
		Topics:   []string{"struct", "methods", "receivers", "embedding", "promotion"},
		Run:      Run,
	}
}

// Run prints the annotated demonstration.
func Run(_ context.Context, w io.Writer) error {
	nb := curriculum.NewNotebook(w)
	nb.Heading("Structs, methods, embedding")

	nb.Step("Literals: keyed beats positional")
	ada := Person{Name: "Ada", Age: 36}
	nb.Sayf("Person{Name: \"Ada\", Age: 36} -> %+v", ada)
	nb.Say("Positional Person{\"Ada\", 36} compiles too, until someone reorders")
	nb.Say("the fields. Keyed literals survive refactors; prefer them.")

	nb.Step("Value receiver vs pointer receiver")
	nb.Sayf("ada.Greet() -> %q", ada.Greet())
	copyOf := ada
	copyOf.Birthday() // pointer receiver, but on its own copy
	nb.Sayf("after copy.Birthday(): copy is %d, ada is %d", copyOf.Age, ada.Age)
	ada.Birthday()
	nb.Sayf("after ada.Birthday():  ada is %d (Go auto-took &ada)", ada.Age)

	nb.Step("Embedding promotes fields and methods")
	e := Employee{Person: Person{Name: "Grace", Age: 47}, Company: "Navy"}
	nb.Sayf("e.Name (promoted)    -> %s", e.Name)
	nb.Sayf("e.Greet() (promoted) -> %q", e.Greet())
	nb.Sayf("e.Badge()            -> %q", e.Badge())
	nb.Say("This is composition: Employee HAS a Person. There is no subtype")
	nb.Say("relationship, and no virtual dispatch to reason about.")

	nb.Step("Unexported fields make methods the API")
	acct := NewBankAccount("ada", 10_00)
	_ = acct.Deposit(5_00)
	err := acct.Withdraw(20_00)
	nb.Sayf("Deposit 5.00, Withdraw 20.00 -> err: %v", err)
	nb.Sayf("Balance -> %d cents (invariant held: no negative balances)", acct.Balance())

	nb.Step("Anonymous structs for one-off shapes")
	point := struct{ X, Y int }{X: 1, Y: 2}
	nb.Sayf("struct{ X, Y int }{1, 2} -> %+v", point)
	nb.Say("Handy in tests and table-driven cases; no package-level clutter.")

	nb.Step("Structs compare by value, when comparable")
	nb.Sayf("Person{\"Ada\", 37} == ada -> %v", Person{Name: "Ada", Age: 37} == ada)
	nb.Say("All fields comparable means the struct is comparable. Slices,")
	nb.Say("maps, and functions inside a struct remove that property.")

	nb.Takeaways(
		"methods are functions with a receiver; pointer receivers mutate",
		"embedding is composition with promotion, not inheritance",
		"unexported fields plus a New constructor protect invariants",
	)
	return nb.Err()
}
