package models

// Codes carried in the "status" field of sentence-service responses.
// The transport status stays 200 for all of them.
const (
	StatusOK                  = 200
	StatusInsufficientCredits = 301
	StatusWrongCredentials    = 302
	StatusUserExists          = 303
	StatusUnknownUser         = 304
	StatusInvalidInput        = 305
)

// Codes carried in the "Status Code" field of calculator responses.
const (
	CalcStatusOK               = 200
	CalcStatusMissingOperand   = 301
	CalcStatusDivideByZero     = 302
	CalcStatusUnknownOperation = 307
)
