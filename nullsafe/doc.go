// Package nullsafe replaces nested nil checks along accessor paths with a
// fluent chain that short-circuits on the first nil, in the manner of the
// null-conditional operator (user?.email?.domain) found in other
// languages.
//
// Safely reading len(user.Email.Domain) when any link may be nil:
//
//	email  := nullsafe.Call(nullsafe.Of(user), func(u *User) *Email { return u.Email })
//	domain := nullsafe.Call(email, func(e *Email) *string { return e.Domain })
//	length := nullsafe.Get(domain, func(d *string) int { return len(*d) })
//
// in place of:
//
//	length := 0
//	if user != nil && user.Email != nil && user.Email.Domain != nil {
//	    length = len(*user.Email.Domain)
//	}
//
// Each step is pure wiring: callbacks run only on present values, and the
// chain never constructs errors of its own — [Chain.GetOrFail] hands back
// exactly the error the caller supplied.
//
// # Choosing a terminal
//
//	c.Get()             // value, or zero value when absent
//	c.GetOrDefault(d)   // value, or d
//	c.GetOrFail(err)    // (value, nil), or (zero, err)
//	nullsafe.Get(c, fn) // one last projection and out
//
// Because Go zero values are real values, Get alone cannot distinguish a
// wrapped zero from absence; [Chain.IsPresent] can.
package nullsafe
