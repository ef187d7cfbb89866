package domain

// Principal is the caller identity resolved from the security context.
// The session key itself never leaves the context; only its presence does.
type Principal struct {
	UserID      int64
	UserName    string
	HasUserKey  bool
	Permissions []string
}

// IsAnonymous reports whether no identity was forwarded with the request.
func (p *Principal) IsAnonymous() bool {
	return p == nil || (p.UserID == 0 && p.UserName == "")
}
