package usecase

// Session is the caller's identity, resolved once by the auth middleware
// and passed explicitly into the usecases that need it. Nothing below the
// handler layer looks identity up ambiently.
type Session struct {
	UserID        int64
	Username      string
	Authenticated bool
}

func AnonymousSession() Session {
	return Session{}
}
