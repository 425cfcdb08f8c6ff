package models

// Tokens grant later access to, and modification of, one application.
type Tokens struct {
	AccessToken string
	UpdateToken string
}
