package router

import (
	"context"
	"strconv"
	"strings"
	"unicode"

	"github.com/google/cel-go/cel"
	"github.com/siherrmann/notegraph/helper"
	"github.com/siherrmann/notegraph/model"
)

// fillerPhrases are stripped before the expression check so conversational
// framings like "what is 2+2" still reach the evaluator
var fillerPhrases = []string{
	"what is",
	"what's",
	"how much is",
	"calculate",
	"calc",
	"compute",
	"evaluate",
	"equals",
	"?",
}

// CalculatorHandler evaluates plain arithmetic utterances. Anything that is
// not obviously an arithmetic expression declines silently so the utterance
// falls through to retrieval.
type CalculatorHandler struct {
	env *cel.Env
}

// NewCalculatorHandler creates a new arithmetic handler
func NewCalculatorHandler() (*CalculatorHandler, error) {
	env, err := cel.NewEnv()
	if err != nil {
		return nil, helper.NewError("new cel environment", err)
	}
	return &CalculatorHandler{env: env}, nil
}

// Handle strips filler phrases, verifies the rest looks like a numeric
// expression, and evaluates it. Malformed expressions decline, they never
// surface as errors.
func (h *CalculatorHandler) Handle(ctx context.Context, utterance string, session *Session) *model.Response {
	expression := strings.ToLower(utterance)
	for _, filler := range fillerPhrases {
		expression = strings.ReplaceAll(expression, filler, "")
	}
	expression = strings.TrimSpace(expression)

	if !isArithmetic(expression) {
		return nil
	}

	result, ok := h.evaluate(expression)
	if !ok {
		return nil
	}

	return &model.Response{Text: result}
}

// isArithmetic allows only digits, arithmetic operators, parentheses,
// spaces, a decimal point, and the exponent marker e, and requires at
// least one digit
func isArithmetic(expression string) bool {
	hasDigit := false
	for _, r := range expression {
		switch {
		case unicode.IsDigit(r):
			hasDigit = true
		case strings.ContainsRune("+-*/().% ^", r):
		case r == 'e':
		default:
			return false
		}
	}
	return hasDigit
}

// evaluate runs the expression through CEL and formats the numeric result
func (h *CalculatorHandler) evaluate(expression string) (string, bool) {
	ast, issues := h.env.Compile(expression)
	if issues != nil && issues.Err() != nil {
		return "", false
	}

	program, err := h.env.Program(ast)
	if err != nil {
		return "", false
	}

	out, _, err := program.Eval(cel.NoVars())
	if err != nil {
		return "", false
	}

	switch value := out.Value().(type) {
	case int64:
		return strconv.FormatInt(value, 10), true
	case uint64:
		return strconv.FormatUint(value, 10), true
	case float64:
		return strconv.FormatFloat(value, 'f', -1, 64), true
	default:
		return "", false
	}
}
