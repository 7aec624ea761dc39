package session

// Package session contains domain-level types for the teacher login session.
// It is pure and free of transport/adapter concerns.

// Session is the client-side record of the teacher login state.
// Token is the opaque bearer credential issued by the backend; only the
// token survives a reload. TeacherName and Authenticated are re-derived
// from a backend probe and are never persisted.
type Session struct {
	Token       string
	TeacherName string
	// Authenticated is true iff Token and TeacherName are present and the
	// last backend probe confirmed the token is still valid.
	Authenticated bool
}

// LoggedOut returns the empty, unauthenticated session.
func LoggedOut() Session {
	return Session{}
}

// Hydrated returns a session carrying a persisted token that has not yet
// been confirmed by a probe.
func Hydrated(token string) Session {
	return Session{Token: token}
}

// Authenticated returns a confirmed session for the named teacher.
func Authenticated(token, teacherName string) Session {
	return Session{
		Token:         token,
		TeacherName:   teacherName,
		Authenticated: true,
	}
}

// IsLoggedIn reports whether the session is in the LOGGED_IN state.
func (s Session) IsLoggedIn() bool {
	return s.Authenticated && s.Token != "" && s.TeacherName != ""
}

// HasToken reports whether a persisted credential is available. A hydrated
// token gates mutations; its validity is settled by the backend on use.
func (s Session) HasToken() bool {
	return s.Token != ""
}
