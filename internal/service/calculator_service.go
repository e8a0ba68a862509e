package service

import (
	"math/big"
	"strconv"

	"github.com/goccy/go-json"

	"github.com/SimpnicServerTeam/scs-sentence-server/internal/models"
)

var _ CalculatorGenerator = (*CalculatorService)(nil)

// Calculator operations
const (
	OpAdd      = "add"
	OpSubtract = "subtract"
	OpMultiply = "multiply"
	OpDivide   = "divide"
)

const (
	msgMissingOperand   = "At least one of operand inputs {x, y} is missing"
	msgDivideByZero     = "Divide by zero error"
	msgUnknownOperation = "Unknown operation"
)

// CalculatorService is the stateless four-function calculator. Integer
// operands are added, subtracted and multiplied exactly; a float operand
// makes the result a float64, and division always yields a float64.
type CalculatorService struct{}

func NewCalculatorService() *CalculatorService {
	return &CalculatorService{}
}

// operand is a parsed number literal. integer is nil for non-integer literals.
type operand struct {
	integer *big.Int
	float   float64
}

func (o operand) isZero() bool {
	if o.integer != nil {
		return o.integer.Sign() == 0
	}
	return o.float == 0
}

// parseOperand returns false for a missing or non-numeric literal.
func parseOperand(n *json.Number) (operand, bool) {
	if n == nil {
		return operand{}, false
	}
	if i, ok := new(big.Int).SetString(n.String(), 10); ok {
		f, _ := new(big.Float).SetInt(i).Float64()
		return operand{integer: i, float: f}, true
	}
	f, err := strconv.ParseFloat(n.String(), 64)
	if err != nil {
		if ne, ok := err.(*strconv.NumError); !ok || ne.Err != strconv.ErrRange {
			return operand{}, false
		}
	}
	return operand{float: f}, true
}

// Calculate never fails; problems are reported through the response status code.
func (s *CalculatorService) Calculate(operation string, req models.CalculatorRequest) models.CalculatorResponse {
	switch operation {
	case OpAdd, OpSubtract, OpMultiply, OpDivide:
	default:
		return models.CalculatorResponse{Message: msgUnknownOperation, StatusCode: models.CalcStatusUnknownOperation}
	}

	x, okX := parseOperand(req.X)
	y, okY := parseOperand(req.Y)
	if !okX || !okY {
		return models.CalculatorResponse{Message: msgMissingOperand, StatusCode: models.CalcStatusMissingOperand}
	}
	if operation == OpDivide && y.isZero() {
		return models.CalculatorResponse{Message: msgDivideByZero, StatusCode: models.CalcStatusDivideByZero}
	}

	return models.CalculatorResponse{Message: compute(operation, x, y), StatusCode: models.CalcStatusOK}
}

func compute(operation string, x, y operand) any {
	if x.integer != nil && y.integer != nil {
		switch operation {
		case OpAdd:
			return new(big.Int).Add(x.integer, y.integer)
		case OpSubtract:
			return new(big.Int).Sub(x.integer, y.integer)
		case OpMultiply:
			return new(big.Int).Mul(x.integer, y.integer)
		}
		q, _ := new(big.Rat).SetFrac(x.integer, y.integer).Float64()
		return q
	}

	switch operation {
	case OpAdd:
		return x.float + y.float
	case OpSubtract:
		return x.float - y.float
	case OpMultiply:
		return x.float * y.float
	}
	return x.float / y.float
}
