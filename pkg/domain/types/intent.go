package types

import "strings"

// Intent represents one of the fixed conversational intents handled by
// canned logic instead of the generative model.
type Intent string

const (
	IntentBuyProduct    Intent = "buy_a_product"
	IntentViewPolicies  Intent = "view_your_policies"
	IntentMakeClaim     Intent = "make_a_claim"
	IntentMakeComplaint Intent = "make_a_complaint"
)

// AllIntents returns all recognized intents
func AllIntents() []Intent {
	return []Intent{
		IntentBuyProduct,
		IntentViewPolicies,
		IntentMakeClaim,
		IntentMakeComplaint,
	}
}

// IsValid checks if the intent is valid
func (i Intent) IsValid() bool {
	switch i {
	case IntentBuyProduct,
		IntentViewPolicies,
		IntentMakeClaim,
		IntentMakeComplaint:
		return true
	default:
		return false
	}
}

// String returns the string representation of the intent
func (i Intent) String() string {
	return string(i)
}

// ParseIntent normalizes the user input (trimmed, case-insensitive) and
// matches it against the closed set of intent phrases. The match must be
// exact; partial matches fall through to the generative path.
func ParseIntent(input string) (Intent, bool) {
	switch strings.ToLower(strings.TrimSpace(input)) {
	case "buy a product":
		return IntentBuyProduct, true
	case "view your policies":
		return IntentViewPolicies, true
	case "make a claim":
		return IntentMakeClaim, true
	case "make a complaint":
		return IntentMakeComplaint, true
	default:
		return "", false
	}
}
