package session

import "golang.org/x/oauth2"

// TokenSource adapts the session for HTTP stacks that consume an
// oauth2.TokenSource. The source reflects whatever access credential the
// session currently holds; it never triggers a refresh itself.
func (s *Session) TokenSource() oauth2.TokenSource {
	return tokenSource{session: s}
}

type tokenSource struct {
	session *Session
}

func (ts tokenSource) Token() (*oauth2.Token, error) {
	accessToken := ts.session.AccessToken()
	if accessToken == "" {
		return nil, NotAuthenticatedErr
	}
	return &oauth2.Token{AccessToken: accessToken, TokenType: "Bearer"}, nil
}
