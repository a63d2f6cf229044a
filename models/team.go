// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import (
	"fmt"
	"time"
)

// Default values applied by [TeamCredential.Reset] when the corresponding
// field is empty after normalization.
var (
	DefaultApprovedRoles = []string{"administrator"}
	DefaultHelpdesks     = []string{"helpscout"}
)

// TeamCredential represents one vendor-side account configuration: the key
// pair used to authenticate against the remote vault API and the set of
// requester roles allowed to redeem access keys for this team.
//
// AccountID is unique across all teams. PublicKey and PrivateKey are opaque
// fixed-format strings issued by the vault service; both are non-empty while
// the team is active. PrivateKey is secret — it is sealed at rest by the
// store layer and must never appear in logs or JSON output.
type TeamCredential struct {
	// AccountID is the unique identifier of the vault account this team
	// maps to. Used as the primary key at the persistence layer.
	AccountID string `json:"account_id"`

	// PublicKey is the account's public API key.
	PublicKey string `json:"public_key"`

	// PrivateKey is the account's secret API key. Both outbound auth
	// headers are derived from it. Never serialized.
	PrivateKey string `json:"-"`

	// ApprovedRoles lists the requester roles permitted to redeem access
	// keys for this team. Defaults to ["administrator"] when empty.
	ApprovedRoles []string `json:"approved_roles"`

	// Helpdesks lists the help-desk integrations enabled for this team.
	// Defaults to ["helpscout"] when empty.
	Helpdesks []string `json:"helpdesk"`

	// HelpdeskSettings carries genuinely dynamic per-helpdesk extension
	// data that has no fixed schema. Nested object-like values are
	// normalized to string-keyed maps by Reset.
	HelpdeskSettings map[string]any `json:"helpdesk_settings,omitempty"`

	// CreatedAt is the timestamp when the team was first configured.
	CreatedAt time.Time `json:"created_at"`
}

// TableName returns the name of the database table
// associated with the TeamCredential model.
func (t TeamCredential) TableName() string {
	return "teams"
}

// Active reports whether the team carries the full key material required
// for authenticated vault calls.
func (t TeamCredential) Active() bool {
	return t.AccountID != "" && t.PublicKey != "" && t.PrivateKey != ""
}

// RoleApproved reports whether role is present in the team's approved-roles
// set.
func (t TeamCredential) RoleApproved(role string) bool {
	for _, approved := range t.ApprovedRoles {
		if approved == role {
			return true
		}
	}
	return false
}

// Reset rebuilds the credential from values, discarding all previous state.
//
// values uses the persisted field names (account_id, public_key, private_key,
// approved_roles, helpdesk, helpdesk_settings). Nested object-like values are
// walked one level deep and coerced to plain string-keyed maps, because the
// remote API hands back loosely typed JSON objects. After the rebuild,
// ApprovedRoles falls back to [DefaultApprovedRoles] and Helpdesks to
// [DefaultHelpdesks] when empty.
//
// Unknown keys in values are rejected with an error naming the key, so a
// typo in a settings payload surfaces instead of being silently dropped.
func (t *TeamCredential) Reset(values map[string]any) error {
	next := TeamCredential{CreatedAt: t.CreatedAt}

	for key, raw := range values {
		switch key {
		case "account_id":
			next.AccountID = toString(raw)
		case "public_key":
			next.PublicKey = toString(raw)
		case "private_key":
			next.PrivateKey = toString(raw)
		case "approved_roles":
			next.ApprovedRoles = toStringSlice(raw)
		case "helpdesk":
			next.Helpdesks = toStringSlice(raw)
		case "helpdesk_settings":
			next.HelpdeskSettings = NormalizeMap(raw)
		default:
			return fmt.Errorf("%w: %q", ErrInvalidTeamKey, key)
		}
	}

	if len(next.ApprovedRoles) == 0 {
		next.ApprovedRoles = append([]string(nil), DefaultApprovedRoles...)
	}
	if len(next.Helpdesks) == 0 {
		next.Helpdesks = append([]string(nil), DefaultHelpdesks...)
	}

	*t = next
	return nil
}

// NormalizeMap coerces an object-like value into a plain string-keyed map,
// walking one level of nesting so that nested objects become string-keyed
// maps too. Non-map input yields nil.
func NormalizeMap(raw any) map[string]any {
	src, ok := raw.(map[string]any)
	if !ok {
		return nil
	}

	out := make(map[string]any, len(src))
	for k, v := range src {
		if nested, ok := v.(map[string]any); ok {
			inner := make(map[string]any, len(nested))
			for nk, nv := range nested {
				inner[nk] = nv
			}
			out[k] = inner
			continue
		}
		out[k] = v
	}
	return out
}

func toString(raw any) string {
	switch v := raw.(type) {
	case string:
		return v
	case fmt.Stringer:
		return v.String()
	case float64:
		// JSON numbers decode to float64; account ids are integral.
		return fmt.Sprintf("%.0f", v)
	case int:
		return fmt.Sprintf("%d", v)
	case int64:
		return fmt.Sprintf("%d", v)
	default:
		return ""
	}
}

func toStringSlice(raw any) []string {
	switch v := raw.(type) {
	case []string:
		return append([]string(nil), v...)
	case []any:
		out := make([]string, 0, len(v))
		for _, item := range v {
			if s := toString(item); s != "" {
				out = append(out, s)
			}
		}
		return out
	case string:
		if v == "" {
			return nil
		}
		return []string{v}
	default:
		return nil
	}
}
