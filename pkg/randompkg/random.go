// Package randompkg provides functionality for generating random application items.
package randompkg

import (
	"crypto/rand"
	"fmt"
	"math/big"
	"strings"

	"github.com/shopspring/decimal"
)

const alphabet = "abcdefghijklmnopqrstuvwxyz"

// Intn is a shortcut for generating a random integer between 0 and max using crypto/rand.
func Intn(max int) int64 {
	nBig, err := rand.Int(rand.Reader, big.NewInt(int64(max)))
	if err != nil {
		panic(err)
	}

	return nBig.Int64()
}

// IntBetween generates a random integer in [min, max].
func IntBetween(min, max int) int64 {
	return int64(min) + Intn(max-min+1)
}

// String generates a random string of length n.
func String(n int) string {
	var sb strings.Builder

	k := len(alphabet)

	for i := 0; i < n; i++ {
		c := alphabet[Intn(k)]

		_ = sb.WriteByte(c) // The returned err is always nil.
	}

	return sb.String()
}

// Owner generates a random owner name.
func Owner() string {
	return String(6)
}

// Reference generates a random correlation reference.
func Reference() string {
	return fmt.Sprintf("ref-%s", String(12))
}

// Purpose generates a random loan purpose.
func Purpose() string {
	purposes := []string{"Home renovation", "School fees", "Medical bills", "Business stock", "Car repair"}
	return purposes[Intn(len(purposes))]
}

// MoneyAmountBetween generates a random amount of money in [min, max] with cent precision.
func MoneyAmountBetween(min, max int64) decimal.Decimal {
	cents := IntBetween(int(min*100), int(max*100))
	return decimal.New(cents, -2)
}

// Role picks a random identity role.
func Role() string {
	roles := []string{"ADMIN", "MEMBER"}
	return roles[Intn(len(roles))]
}
