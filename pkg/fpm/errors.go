package fpm

// Kind is a stable, programmatically matchable error identifier. UI code
// switches on Kind rather than parsing error strings.
type Kind string

const (
	KindNaN                         Kind = "NAN_ERROR"
	KindNegativeInput               Kind = "NEGATIVE_INPUT"
	KindInsufficientQty             Kind = "INSUFFICIENT_QTY"
	KindInsufficientLiquidity       Kind = "INSUFFICIENT_LIQUIDITY"
	KindInsufficientBaseTokenQty    Kind = "INSUFFICIENT_BASE_TOKEN_QTY"
	KindInsufficientQuoteTokenQty   Kind = "INSUFFICIENT_QUOTE_TOKEN_QTY"
	KindInsufficientBaseQty         Kind = "INSUFFICIENT_BASE_QTY"
	KindInsufficientQuoteQty        Kind = "INSUFFICIENT_QUOTE_QTY"
	KindInsufficientBaseQtyDesired  Kind = "INSUFFICIENT_BASE_QTY_DESIRED"
	KindInsufficientQuoteQtyDesired Kind = "INSUFFICIENT_QUOTE_QTY_DESIRED"
	KindInsufficientDecay           Kind = "INSUFFICIENT_DECAY"
	KindInsufficientChangeInDecay   Kind = "INSUFFICIENT_CHANGE_IN_DECAY"
	KindNoQuoteDecay                Kind = "NO_QUOTE_DECAY"
	KindInsufficientTokenQty        Kind = "INSUFFICIENT_TOKEN_QTY"
)

// Error is the error type raised by every function in fpm and elasticmath.
// It carries a stable Kind for callers that need to switch on error
// identity rather than message text.
type Error struct {
	Kind Kind
	Msg  string
}

func (e *Error) Error() string {
	return string(e.Kind) + ": " + e.Msg
}

// New builds an *Error with the given kind and message.
func New(kind Kind, msg string) *Error {
	return &Error{Kind: kind, Msg: msg}
}

// Is reports whether err is an *Error of the given kind.
func Is(err error, kind Kind) bool {
	var fe *Error
	if ae, ok := err.(*Error); ok {
		fe = ae
	} else {
		return false
	}
	return fe.Kind == kind
}
