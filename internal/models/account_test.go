package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAccount_Deposit(t *testing.T) {
	t.Run("adds to the balance", func(t *testing.T) {
		acc := NewAccount("ACC-1", FromMinorUnits(1000))

		err := acc.Deposit(FromMinorUnits(500))

		require.NoError(t, err)
		assert.Equal(t, int64(1500), acc.Balance().MinorUnits())
	})

	t.Run("rejects negative amounts", func(t *testing.T) {
		acc := NewAccount("ACC-1", FromMinorUnits(1000))

		err := acc.Deposit(FromMinorUnits(-1))

		assert.ErrorIs(t, err, ErrNegativeAmount)
		assert.Equal(t, int64(1000), acc.Balance().MinorUnits(), "balance must be unchanged")
	})
}

func TestAccount_Withdraw(t *testing.T) {
	t.Run("subtracts from the balance", func(t *testing.T) {
		acc := NewAccount("ACC-1", FromMinorUnits(1000))

		err := acc.Withdraw(FromMinorUnits(400))

		require.NoError(t, err)
		assert.Equal(t, int64(600), acc.Balance().MinorUnits())
	})

	t.Run("allows withdrawing the full balance", func(t *testing.T) {
		acc := NewAccount("ACC-1", FromMinorUnits(1000))

		err := acc.Withdraw(FromMinorUnits(1000))

		require.NoError(t, err)
		assert.Equal(t, int64(0), acc.Balance().MinorUnits())
	})

	t.Run("rejects amounts above the balance", func(t *testing.T) {
		acc := NewAccount("ACC-1", FromMinorUnits(1000))

		err := acc.Withdraw(FromMinorUnits(1001))

		assert.ErrorIs(t, err, ErrInsufficientFunds)
		assert.Equal(t, int64(1000), acc.Balance().MinorUnits(), "balance must be unchanged")
	})

	t.Run("rejects negative amounts", func(t *testing.T) {
		acc := NewAccount("ACC-1", FromMinorUnits(1000))

		err := acc.Withdraw(FromMinorUnits(-1))

		assert.ErrorIs(t, err, ErrNegativeAmount)
		assert.Equal(t, int64(1000), acc.Balance().MinorUnits(), "balance must be unchanged")
	})
}

// Depositing and withdrawing the same amount returns the balance to its
// original value.
func TestAccount_DepositWithdrawInverse(t *testing.T) {
	acc := NewAccount("ACC-1", FromMinorUnits(730))

	for _, units := range []int64{0, 1, 100, 730, 99999} {
		amount := FromMinorUnits(units)
		require.NoError(t, acc.Deposit(amount))
		require.NoError(t, acc.Withdraw(amount))
		assert.Equal(t, int64(730), acc.Balance().MinorUnits(), "amount %d", units)
	}
}
