package structs_test

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/golessons/curriculum"
	"github.com/katalvlaran/golessons/lessons/structs"
)

func TestLessonMetadata(t *testing.T) {
	l := structs.Lesson()
	require.NoError(t, l.Validate())
	assert.Equal(t, 8, l.Number)
	assert.Equal(t, "structs", l.Slug)
	assert.Equal(t, curriculum.PartFundamentals, l.Part)
}

func TestBirthdayMutatesThroughPointerReceiver(t *testing.T) {
	p := structs.Person{Name: "Ada", Age: 36}

	cp := p
	cp.Birthday()
	assert.Equal(t, 37, cp.Age)
	assert.Equal(t, 36, p.Age, "the copy aged, the original did not")

	p.Birthday()
	assert.Equal(t, 37, p.Age)
}

func TestEmployeePromotion(t *testing.T) {
	e := structs.Employee{
		Person:  structs.Person{Name: "Grace", Age: 47},
		Company: "Navy",
	}
	assert.Equal(t, "Grace", e.Name)
	assert.Equal(t, "Hi, I'm Grace (47)", e.Greet())
	assert.Equal(t, "Grace @ Navy", e.Badge())

	e.Birthday()
	assert.Equal(t, 48, e.Age, "promoted pointer method reaches the embedded Person")
}

func TestBankAccountInvariants(t *testing.T) {
	acct := structs.NewBankAccount("ada", 10_00)

	require.NoError(t, acct.Deposit(5_00))
	assert.Equal(t, 15_00, acct.Balance())

	err := acct.Withdraw(20_00)
	assert.ErrorIs(t, err, structs.ErrInsufficientFunds)
	assert.Equal(t, 15_00, acct.Balance(), "failed withdrawal must not change the balance")

	require.NoError(t, acct.Withdraw(15_00))
	assert.Equal(t, 0, acct.Balance())
}

func TestBankAccountRejectsNonPositiveAmounts(t *testing.T) {
	acct := structs.NewBankAccount("ada", 100)

	assert.ErrorIs(t, acct.Deposit(0), structs.ErrNonPositiveAmount)
	assert.ErrorIs(t, acct.Deposit(-5), structs.ErrNonPositiveAmount)
	assert.ErrorIs(t, acct.Withdraw(0), structs.ErrNonPositiveAmount)
	assert.Equal(t, 100, acct.Balance())
}

func TestRunWritesDemonstration(t *testing.T) {
	var sb strings.Builder
	require.NoError(t, structs.Lesson().Run(context.Background(), &sb))

	out := sb.String()
	assert.Contains(t, out, "Structs, methods, embedding")
	assert.Contains(t, out, "copy is 37, ada is 36")
	assert.Contains(t, out, "Grace @ Navy")
	assert.Contains(t, out, "Balance -> 1500 cents")
	assert.Contains(t, out, "Key takeaways:")
}
