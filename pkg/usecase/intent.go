package usecase

import "github.com/heirs-lab/prince/pkg/domain/types"

// respondToIntent maps a recognized intent to its canned response. Pure;
// no retrieval or generation is involved.
func respondToIntent(intent types.Intent) string {
	switch intent {
	case types.IntentBuyProduct:
		return "What category of insurance would you like? Options: Life, Health, Motor, Personal Accident."
	case types.IntentViewPolicies:
		return "Please provide your policy number to view details."
	case types.IntentMakeClaim:
		return "To make a claim, please upload the necessary documents."
	case types.IntentMakeComplaint:
		return "Please describe your issue so we can assist you promptly."
	default:
		return "I'm here to help with your insurance needs!"
	}
}
