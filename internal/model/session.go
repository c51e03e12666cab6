package model

import "time"

// Session represents a photo shooting session. Unrelated to HTTP sessions:
// it groups photos taken on a given date around a set of theme keywords.
type Session struct {
	ID        string
	UserID    string
	Location  *string
	Date      time.Time
	Title     *string
	Keywords  StringList
	CreatedAt time.Time
}

// CreateSessionRequest represents a session creation request.
// Date is a YYYY-MM-DD string.
type CreateSessionRequest struct {
	Title    string   `json:"title"`
	Location *string  `json:"location"`
	Date     string   `json:"date"`
	Keywords []string `json:"keywords"`
}

// UpdateKeywordsRequest represents a keyword replacement request.
type UpdateKeywordsRequest struct {
	Keywords []string `json:"keywords"`
}

// SessionResponse represents a session in API responses.
type SessionResponse struct {
	ID        string    `json:"id"`
	UserID    string    `json:"user_id"`
	Title     *string   `json:"title"`
	Location  *string   `json:"location"`
	Date      string    `json:"date"`
	Keywords  []string  `json:"keywords"`
	CreatedAt time.Time `json:"created_at"`
}

// NewSessionResponse converts a Session to its API representation.
func NewSessionResponse(s *Session) SessionResponse {
	keywords := []string(s.Keywords)
	if keywords == nil {
		keywords = []string{}
	}
	return SessionResponse{
		ID:        s.ID,
		UserID:    s.UserID,
		Title:     s.Title,
		Location:  s.Location,
		Date:      s.Date.Format("2006-01-02"),
		Keywords:  keywords,
		CreatedAt: s.CreatedAt,
	}
}
