package model

// PolicyType distinguishes offer policies from plain set policies.
type PolicyType string

const (
	PolicyTypeSet   PolicyType = "set"
	PolicyTypeOffer PolicyType = "offer"
)

// ODRLUseAction is the ODRL action type used by the built-in policy templates.
const ODRLUseAction = "http://www.w3.org/ns/odrl/2/use"

// Policy is a minimal ODRL-style policy: a list of permissions plus the
// offer-scoped target/assigner fields.
type Policy struct {
	Type        PolicyType   `json:"type,omitempty"`
	Target      string       `json:"target,omitempty"`
	Assigner    string       `json:"assigner,omitempty"`
	Permissions []Permission `json:"permissions"`
}

// Permission allows an action subject to constraints.
type Permission struct {
	Action      string       `json:"action"`
	Constraints []Constraint `json:"constraints,omitempty"`
}

// Constraint is an atomic left-operator-right condition.
type Constraint struct {
	Left     string `json:"left"`
	Operator string `json:"operator"`
	Right    string `json:"right"`
}

func credentialPolicy(credential string) Policy {
	return Policy{
		Permissions: []Permission{{
			Action: ODRLUseAction,
			Constraints: []Constraint{{
				Left:     credential,
				Operator: "eq",
				Right:    "active",
			}},
		}},
	}
}

// MembershipPolicy requires an active MembershipCredential. It is the
// default template for negotiations and the policy created by onboarding.
func MembershipPolicy() Policy {
	return credentialPolicy("MembershipCredential")
}

// ManufacturerPolicy requires an active ManufacturerCredential.
func ManufacturerPolicy() Policy {
	return credentialPolicy("ManufacturerCredential")
}

// PolicyTemplate looks up a policy template by name. An empty name selects
// the membership template.
func PolicyTemplate(name string) (Policy, bool) {
	switch name {
	case "", "membership":
		return MembershipPolicy(), true
	case "manufacturer":
		return ManufacturerPolicy(), true
	default:
		return Policy{}, false
	}
}
