package authx

import "github.com/innoverse/admin/sdk/meta"

// Token represents an opaque bearer token used to authenticate to the
// Innoverse admin API.
type Token struct {
	meta.TypeMeta `json:",inline" bson:",inline"`
	Value         string `json:"value" bson:"value"`
}

// NewToken returns a Token whose value is the provided string.
func NewToken(value string) Token {
	return Token{
		TypeMeta: meta.TypeMeta{
			APIVersion: meta.APIVersion,
			Kind:       "Token",
		},
		Value: value,
	}
}
