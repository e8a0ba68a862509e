package models

import (
	"errors"
	"strconv"
	"time"

	"github.com/goccy/go-json"
)

// RegisterRequest is the input for account registration
type RegisterRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// CredentialsRequest carries the username/password pair sent with every paid call
type CredentialsRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// StoreRequest is the input for storing a sentence
type StoreRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
	Sentence string `json:"sentence"`
}

// StatusResponse is the generic sentence-service reply
type StatusResponse struct {
	Status  int    `json:"status"`
	Message string `json:"msg"`
}

// StoreResponse is returned after a sentence was saved
type StoreResponse struct {
	Status  int    `json:"status"`
	Message string `json:"msg"`
	Credits int64  `json:"credits"`
}

// RetrieveResponse is returned after a sentence was read
type RetrieveResponse struct {
	Status   int    `json:"status"`
	Sentence string `json:"sentence"`
	Credits  int64  `json:"credits"`
}

// BalanceResponse is returned by the balance check
type BalanceResponse struct {
	Status  int   `json:"status"`
	Credits int64 `json:"credits"`
}

// AdminTokenRequest is the operator login
type AdminTokenRequest struct {
	Password string `json:"password"`
}

// AdminTokenResponse carries a signed admin token
type AdminTokenResponse struct {
	Token     string    `json:"token"`
	ExpiresAt time.Time `json:"expiresAt"`
}

// RefillRequest adds credits to an account
type RefillRequest struct {
	Username string `json:"username"`
	Amount   int64  `json:"amount"`
}

// CalculatorRequest holds the two operands as raw number literals so that
// integers stay exact. Pointers distinguish a missing operand from an explicit zero.
type CalculatorRequest struct {
	X *json.Number `json:"x"`
	Y *json.Number `json:"y"`
}

// Valid reports whether every present operand is a number literal.
// The decoder also accepts quoted values, which may hold arbitrary text.
func (r CalculatorRequest) Valid() bool {
	for _, n := range []*json.Number{r.X, r.Y} {
		if n == nil {
			continue
		}
		if _, err := strconv.ParseFloat(n.String(), 64); err != nil && !errors.Is(err, strconv.ErrRange) {
			return false
		}
	}
	return true
}

// CalculatorResponse is the calculator reply; Message is either the
// numeric result or an error text.
type CalculatorResponse struct {
	Message    any `json:"Message"`
	StatusCode int `json:"Status Code"`
}

// AddTwoNumsResponse is the reply of the greeting app's adder
type AddTwoNumsResponse struct {
	Z any `json:"z"`
}

// Phone is an entry of the greeting app's /bye profile
type Phone struct {
	Name   string `json:"phone_name"`
	Number string `json:"phone_number"`
}

// Profile is the document served by /bye
type Profile struct {
	Name   string  `json:"name"`
	Age    int     `json:"age"`
	Phones []Phone `json:"phones"`
}

// ErrorResponse mirrors echo's HTTPError body
type ErrorResponse struct {
	Message string `json:"message"`
}

// RefillResponse reports the balance after an admin refill
type RefillResponse struct {
	Status  int    `json:"status"`
	Message string `json:"msg"`
	Credits int64  `json:"credits"`
}
