package service

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/storylens/storylens-go/internal/model"
	"github.com/storylens/storylens-go/internal/repository"
)

var (
	ErrTitleRequired    = errors.New("title is required")
	ErrInvalidDate      = errors.New("date must be in YYYY-MM-DD format")
	ErrKeywordTooLong   = errors.New("each keyword must be at most 30 characters")
	ErrTooManyKeywords  = errors.New("a session can have up to 10 keywords")
	ErrMonthWithoutYear = errors.New("year is required when month is provided")
	ErrYearOutOfRange   = errors.New("year must be between 2000 and 2100")
	ErrMonthOutOfRange  = errors.New("month must be between 1 and 12")
	ErrSessionNotFound  = errors.New("session not found")
)

const (
	maxKeywords      = 10
	maxKeywordLength = 30
	defaultPageSize  = 50
	maxPageSize      = 100
)

// ListSessionsQuery carries the pagination and date filter parameters of a
// session listing.
type ListSessionsQuery struct {
	Skip  int
	Limit int
	Year  *int
	Month *int
}

// SessionService handles shooting session business logic.
type SessionService struct {
	sessions *repository.SessionRepository
}

// NewSessionService creates a new SessionService.
func NewSessionService(sessions *repository.SessionRepository) *SessionService {
	return &SessionService{sessions: sessions}
}

// Create creates a shooting session owned by the caller.
func (s *SessionService) Create(ctx context.Context, userID string, req model.CreateSessionRequest) (model.SessionResponse, error) {
	if req.Title == "" {
		return model.SessionResponse{}, ErrTitleRequired
	}

	date, err := time.Parse("2006-01-02", req.Date)
	if err != nil {
		return model.SessionResponse{}, ErrInvalidDate
	}

	keywords, err := normalizeKeywords(req.Keywords)
	if err != nil {
		return model.SessionResponse{}, err
	}

	session := &model.Session{
		ID:        uuid.New().String(),
		UserID:    userID,
		Title:     &req.Title,
		Location:  req.Location,
		Date:      date,
		Keywords:  keywords,
		CreatedAt: time.Now().UTC(),
	}

	if err := s.sessions.Create(ctx, session); err != nil {
		return model.SessionResponse{}, err
	}

	return model.NewSessionResponse(session), nil
}

// List returns the caller's sessions, optionally narrowed to a year or a
// year/month. A month without a year is a validation error, not silently
// ignored.
func (s *SessionService) List(ctx context.Context, userID string, q ListSessionsQuery) ([]model.SessionResponse, error) {
	if q.Month != nil && q.Year == nil {
		return nil, ErrMonthWithoutYear
	}
	if q.Year != nil && (*q.Year < 2000 || *q.Year > 2100) {
		return nil, ErrYearOutOfRange
	}
	if q.Month != nil && (*q.Month < 1 || *q.Month > 12) {
		return nil, ErrMonthOutOfRange
	}

	filter := repository.SessionListFilter{
		Skip:  max(q.Skip, 0),
		Limit: normalizeLimit(q.Limit),
	}
	if q.Year != nil {
		from, to := dateRange(*q.Year, q.Month)
		filter.From = &from
		filter.To = &to
	}

	sessions, err := s.sessions.List(ctx, userID, filter)
	if err != nil {
		return nil, err
	}

	result := make([]model.SessionResponse, len(sessions))
	for i := range sessions {
		result[i] = model.NewSessionResponse(&sessions[i])
	}
	return result, nil
}

// UpdateKeywords replaces the keyword list of a session owned by the caller.
func (s *SessionService) UpdateKeywords(ctx context.Context, userID, sessionID string, raw []string) (model.SessionResponse, error) {
	session, err := s.sessions.GetOwned(ctx, sessionID, userID)
	if err != nil {
		if errors.Is(err, repository.ErrSessionNotFound) {
			return model.SessionResponse{}, ErrSessionNotFound
		}
		return model.SessionResponse{}, err
	}

	keywords, err := normalizeKeywords(raw)
	if err != nil {
		return model.SessionResponse{}, err
	}

	if err := s.sessions.UpdateKeywords(ctx, session.ID, keywords); err != nil {
		return model.SessionResponse{}, err
	}

	session.Keywords = keywords
	return model.NewSessionResponse(session), nil
}

// normalizeKeywords trims and deduplicates a raw keyword list. Duplicates
// are matched case-insensitively; the first occurrence keeps its original
// casing and position. The single source of truth for the keyword rules:
// both session creation and the keyword update endpoint go through here.
func normalizeKeywords(raw []string) (model.StringList, error) {
	normalized := model.StringList{}
	seen := make(map[string]struct{})

	for _, keyword := range raw {
		item := strings.TrimSpace(keyword)
		if item == "" {
			continue
		}
		if len([]rune(item)) > maxKeywordLength {
			return nil, ErrKeywordTooLong
		}
		lower := strings.ToLower(item)
		if _, ok := seen[lower]; ok {
			continue
		}
		normalized = append(normalized, item)
		seen[lower] = struct{}{}
	}

	if len(normalized) > maxKeywords {
		return nil, ErrTooManyKeywords
	}

	return normalized, nil
}

// dateRange builds the half-open [from, to) range for a year or year/month
// filter. December rolls over into January of the next year.
func dateRange(year int, month *int) (from, to time.Time) {
	if month == nil {
		from = time.Date(year, time.January, 1, 0, 0, 0, 0, time.UTC)
		to = time.Date(year+1, time.January, 1, 0, 0, 0, 0, time.UTC)
		return from, to
	}

	from = time.Date(year, time.Month(*month), 1, 0, 0, 0, 0, time.UTC)
	if *month == 12 {
		to = time.Date(year+1, time.January, 1, 0, 0, 0, 0, time.UTC)
	} else {
		to = time.Date(year, time.Month(*month+1), 1, 0, 0, 0, 0, time.UTC)
	}
	return from, to
}

func normalizeLimit(limit int) int {
	if limit <= 0 {
		return defaultPageSize
	}
	return min(limit, maxPageSize)
}
